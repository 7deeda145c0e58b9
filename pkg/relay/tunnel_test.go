//go:build unit

// Copyright 2024 Alexandre Mahdhaoui
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package relay_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/chmigrate/pkg/process"
	"github.com/alexandremahdhaoui/chmigrate/pkg/relay"
)

// fakeForwarder binds the UNIX-LISTEN path it is given by creating it, then exits.
const fakeForwarder = `#!/bin/sh
p="${1#UNIX-LISTEN:}"
p="${p%,reuseaddr}"
touch "$p"
sleep 0.1
`

func writeScript(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "forwarder.sh")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))

	return path
}

func fastWait() relay.WaitOptions {
	return relay.WaitOptions{
		PollInterval:    5 * time.Millisecond,
		MaxPollInterval: 20 * time.Millisecond,
		Timeout:         5 * time.Second,
	}
}

func TestTunnel(t *testing.T) {
	ctx := context.Background()
	runner := process.NewRunner(nil)

	t.Run("ControlFirst", func(t *testing.T) {
		sock := filepath.Join(t.TempDir(), "vm-migr-recv")

		tun, err := relay.New(runner, relay.Config{
			ListenSpec:      relay.TCPListen(49152),
			ConnectSpec:     relay.UnixClient(sock),
			ReadySocketPath: sock,
			Control: process.Spec{
				Name: "receive-migration",
				Path: "sh",
				Args: []string{"-c", `touch "$0"; sleep 0.1`, sock},
			},
			Order:         relay.ControlFirst,
			ForwarderPath: "true",
			Wait:          fastWait(),
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"TCP-LISTEN:49152,reuseaddr", "UNIX-CLIENT:" + sock}, tun.ForwarderSpec().Args)

		require.NoError(t, tun.Start(ctx))
		assert.ErrorIs(t, tun.Start(ctx), relay.ErrTunnelAlreadyStarted)

		res, err := tun.Join(ctx)
		require.NoError(t, err)
		assert.True(t, res.Control.Success())
		assert.True(t, res.Forwarder.Success())

		// the ready socket is cleaned up once the pair is joined.
		_, err = os.Stat(sock)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("ForwarderFirst", func(t *testing.T) {
		sock := filepath.Join(t.TempDir(), "vm-migr-send")

		tun, err := relay.New(runner, relay.Config{
			ListenSpec:      relay.UnixListen(sock),
			ConnectSpec:     relay.TCPConnect("127.0.0.1", 49152),
			ReadySocketPath: sock,
			Control:         process.Spec{Name: "send-migration", Path: "true"},
			Order:           relay.ForwarderFirst,
			ForwarderPath:   writeScript(t, fakeForwarder),
			Wait:            fastWait(),
		})
		require.NoError(t, err)

		require.NoError(t, tun.Start(ctx))
		_, err = tun.Join(ctx)
		require.NoError(t, err)
	})

	t.Run("StaleSocketIsRemoved", func(t *testing.T) {
		sock := filepath.Join(t.TempDir(), "vm-migr-recv")
		require.NoError(t, os.WriteFile(sock, nil, 0o600))

		// the control command never binds the socket: the stale entry must not be
		// mistaken for readiness.
		tun, err := relay.New(runner, relay.Config{
			ReadySocketPath: sock,
			Control:         process.Spec{Name: "receive-migration", Path: "sleep", Args: []string{"60"}},
			ForwarderPath:   "true",
			Wait: relay.WaitOptions{
				PollInterval: 5 * time.Millisecond,
				Timeout:      100 * time.Millisecond,
			},
		})
		require.NoError(t, err)

		assert.ErrorIs(t, tun.Start(ctx), relay.ErrSocketWaitTimeout)
	})

	t.Run("ControlExitsBeforeReady", func(t *testing.T) {
		sock := filepath.Join(t.TempDir(), "vm-migr-recv")

		tun, err := relay.New(runner, relay.Config{
			ReadySocketPath: sock,
			Control:         process.Spec{Name: "receive-migration", Path: "false"},
			ForwarderPath:   "true",
			Wait:            fastWait(),
		})
		require.NoError(t, err)

		assert.ErrorIs(t, tun.Start(ctx), relay.ErrExitedBeforeReady)
	})

	t.Run("ForwarderSpawnFails", func(t *testing.T) {
		sock := filepath.Join(t.TempDir(), "vm-migr-recv")

		tun, err := relay.New(runner, relay.Config{
			ReadySocketPath: sock,
			Control: process.Spec{
				Name: "receive-migration",
				Path: "sh",
				Args: []string{"-c", `touch "$0"; sleep 60`, sock},
			},
			ForwarderPath: "/nonexistent/socat",
			Wait:          fastWait(),
		})
		require.NoError(t, err)

		err = tun.Start(ctx)
		assert.ErrorIs(t, err, process.ErrSpawn)

		_, err = os.Stat(sock)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("JoinFailureKillsPeer", func(t *testing.T) {
		sock := filepath.Join(t.TempDir(), "vm-migr-recv")

		tun, err := relay.New(runner, relay.Config{
			ReadySocketPath: sock,
			Control: process.Spec{
				Name: "receive-migration",
				Path: "sh",
				Args: []string{"-c", `touch "$0"; sleep 60`, sock},
			},
			ForwarderPath: "false",
			Wait:          fastWait(),
		})
		require.NoError(t, err)
		require.NoError(t, tun.Start(ctx))

		done := make(chan error, 1)
		go func() {
			_, err := tun.Join(ctx)
			done <- err
		}()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, process.ErrProcessWait)
			assert.ErrorIs(t, err, process.ErrNonZeroExit)
		case <-time.After(10 * time.Second):
			t.Fatal("join did not return after the forwarder failed")
		}
	})

	t.Run("AbortBeforeStart", func(t *testing.T) {
		tun, err := relay.New(runner, relay.Config{
			ReadySocketPath: filepath.Join(t.TempDir(), "s"),
			Control:         process.Spec{Path: "true"},
		})
		require.NoError(t, err)

		tun.Abort(ctx)
		assert.True(t, tun.Aborted())
		assert.ErrorIs(t, tun.Start(ctx), relay.ErrTunnelAborted)
	})

	t.Run("AbortWhileStarting", func(t *testing.T) {
		sock := filepath.Join(t.TempDir(), "vm-migr-recv")

		// the control command never binds the socket: Start only returns because the
		// tunnel is aborted.
		tun, err := relay.New(runner, relay.Config{
			ReadySocketPath: sock,
			Control:         process.Spec{Name: "receive-migration", Path: "sleep", Args: []string{"60"}},
			ForwarderPath:   "true",
			Wait:            fastWait(),
		})
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() { done <- tun.Start(ctx) }()

		time.Sleep(50 * time.Millisecond)
		tun.Abort(ctx)

		select {
		case err := <-done:
			assert.Error(t, err)
		case <-time.After(4 * time.Second):
			t.Fatal("start did not return after the tunnel was aborted")
		}
	})

	t.Run("JoinBeforeStart", func(t *testing.T) {
		tun, err := relay.New(runner, relay.Config{
			ReadySocketPath: filepath.Join(t.TempDir(), "s"),
			Control:         process.Spec{Path: "true"},
		})
		require.NoError(t, err)

		_, err = tun.Join(ctx)
		assert.ErrorIs(t, err, relay.ErrTunnelNotStarted)
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		_, err := relay.New(runner, relay.Config{ReadySocketPath: "/tmp/x"})
		assert.Error(t, err)

		_, err = relay.New(runner, relay.Config{Control: process.Spec{Path: "true"}})
		assert.Error(t, err)
	})
}
