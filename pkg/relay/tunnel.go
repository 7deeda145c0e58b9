/*
Copyright 2024 Alexandre Mahdhaoui

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package relay pairs a hypervisor control command bound to a local socket with a socat
// forwarder exposing that socket on the network, or the other way around.
//
// The presence of the local socket on disk is the only readiness signal: the process that
// binds it is always started first, and the second process is started once
// WaitForLocalSocket observed it.
//
// Destination side (control first):
//
//	ch-remote receive-migration unix:<sock>     # binds <sock>
//	socat TCP-LISTEN:<port>,reuseaddr UNIX-CLIENT:<sock>
//
// Source side (forwarder first):
//
//	socat UNIX-LISTEN:<sock>,reuseaddr TCP:<host>:<port>   # binds <sock>
//	ch-remote send-migration unix:<sock>
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/alexandremahdhaoui/chmigrate/pkg/process"
)

var (
	ErrTunnelAlreadyStarted = errors.New("tunnel already started")
	ErrTunnelNotStarted     = errors.New("tunnel not started")
	ErrTunnelAborted        = errors.New("tunnel aborted")
	ErrExitedBeforeReady    = errors.New("process exited before its socket was ready")

	errForwarderPathRequired = errors.New("forwarder path is required")
	errControlSpecRequired   = errors.New("control spec is required")
)

// DefaultForwarderPath is the forwarder executable used when none is configured.
const DefaultForwarderPath = "socat"

// Order tells which of the two processes binds the ready socket.
type Order int

const (
	// ControlFirst starts the control command, which binds the socket, before the forwarder.
	ControlFirst Order = iota
	// ForwarderFirst starts the forwarder, which binds the socket, before the control command.
	ForwarderFirst
)

// TCPListen is a forwarder listen address accepting one connection on port.
func TCPListen(port int) string {
	return fmt.Sprintf("TCP-LISTEN:%d,reuseaddr", port)
}

// TCPConnect is a forwarder connect address dialing host:port.
func TCPConnect(host string, port int) string {
	return "TCP:" + net.JoinHostPort(host, strconv.Itoa(port))
}

// UnixListen is a forwarder listen address binding a local socket.
func UnixListen(path string) string {
	return fmt.Sprintf("UNIX-LISTEN:%s,reuseaddr", path)
}

// UnixClient is a forwarder connect address dialing a local socket.
func UnixClient(path string) string {
	return fmt.Sprintf("UNIX-CLIENT:%s", path)
}

// Config describes a tunnel.
type Config struct {
	// ListenSpec is what the forwarder binds to.
	ListenSpec string
	// ConnectSpec is what the forwarder forwards to.
	ConnectSpec string
	// ReadySocketPath is the local socket whose existence signals that the first process is ready.
	ReadySocketPath string
	// Control is the hypervisor control command paired with the forwarder.
	Control process.Spec
	Order   Order

	// ForwarderPath defaults to DefaultForwarderPath.
	ForwarderPath string
	Wait          WaitOptions
}

// Result holds the exit status of both processes after a successful Join.
type Result struct {
	Control   process.ExitStatus
	Forwarder process.ExitStatus
}

// Tunnel is a relay pair. Start, Join and Abort are safe to call from different goroutines.
type Tunnel struct {
	cfg    Config
	runner process.Runner

	mu        sync.Mutex
	control   process.Handle
	forwarder process.Handle
	started   bool
	// aborted is set by Abort. Processes spawned afterwards by a concurrent Start are killed.
	aborted bool
}

// New returns a Tunnel that spawns its processes with runner.
func New(runner process.Runner, cfg Config) (*Tunnel, error) {
	if cfg.ForwarderPath == "" {
		cfg.ForwarderPath = DefaultForwarderPath
	}
	if cfg.Control.Path == "" {
		return nil, errControlSpecRequired
	}
	if cfg.ReadySocketPath == "" {
		return nil, errSocketPathRequired
	}
	if cfg.Control.Name == "" {
		cfg.Control.Name = "control"
	}

	return &Tunnel{
		cfg:    cfg,
		runner: runner,
	}, nil
}

// ForwarderSpec is the command line of the forwarder process.
func (t *Tunnel) ForwarderSpec() process.Spec {
	return process.Spec{
		Name: "forwarder",
		Path: t.cfg.ForwarderPath,
		Args: []string{t.cfg.ListenSpec, t.cfg.ConnectSpec},
	}
}

// Start spawns both processes in order. On failure, anything already spawned is killed and
// the ready socket is removed before returning.
func (t *Tunnel) Start(ctx context.Context) error {
	if t.cfg.ForwarderPath == "" {
		return errForwarderPathRequired
	}

	t.mu.Lock()
	switch {
	case t.aborted:
		t.mu.Unlock()
		return ErrTunnelAborted
	case t.started:
		t.mu.Unlock()
		return ErrTunnelAlreadyStarted
	}
	t.started = true
	t.mu.Unlock()

	if err := RemoveStaleSocket(t.cfg.ReadySocketPath); err != nil {
		return err
	}

	firstSpec, secondSpec := t.cfg.Control, t.ForwarderSpec()
	if t.cfg.Order == ForwarderFirst {
		firstSpec, secondSpec = secondSpec, firstSpec
	}

	controlFirst := t.cfg.Order != ForwarderFirst

	first, err := t.runner.Start(ctx, firstSpec)
	if err != nil {
		return err
	}
	if !t.set(ctx, first, controlFirst) {
		return ErrTunnelAborted
	}

	waitOpts := t.cfg.Wait
	waitOpts.Check = func() error {
		if first.Exited() {
			return fmt.Errorf("%w: %s", ErrExitedBeforeReady, firstSpec.Name)
		}
		return nil
	}

	if err := WaitForLocalSocket(ctx, t.cfg.ReadySocketPath, waitOpts); err != nil {
		t.Abort(ctx)
		return err
	}

	second, err := t.runner.Start(ctx, secondSpec)
	if err != nil {
		t.Abort(ctx)
		return err
	}
	if !t.set(ctx, second, !controlFirst) {
		return ErrTunnelAborted
	}

	slog.InfoContext(ctx, "relay_started",
		"socket", t.cfg.ReadySocketPath,
		"listen", t.cfg.ListenSpec,
		"connect", t.cfg.ConnectSpec,
		"control", t.cfg.Control.Name,
	)

	return nil
}

// Join waits for both processes to exit. When one of them fails, the other one is killed
// instead of being waited for. The ready socket is removed in every case.
func (t *Tunnel) Join(ctx context.Context) (Result, error) {
	control, forwarder := t.handles()
	if control == nil || forwarder == nil {
		return Result{}, ErrTunnelNotStarted
	}

	defer func() { _ = RemoveStaleSocket(t.cfg.ReadySocketPath) }()

	var result Result

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		status, err := control.Wait(gctx)
		if err != nil {
			return err
		}
		result.Control = status
		return process.CheckExit(control.Spec(), status)
	})

	g.Go(func() error {
		status, err := forwarder.Wait(gctx)
		if err != nil {
			return err
		}
		result.Forwarder = status
		return process.CheckExit(forwarder.Spec(), status)
	})

	if err := g.Wait(); err != nil {
		t.Abort(ctx)
		return result, errors.Join(err, process.ErrProcessWait)
	}

	return result, nil
}

// Abort kills both processes and removes the ready socket. It is idempotent. A Start running
// concurrently fails with ErrTunnelAborted and kills whatever it spawns afterwards.
func (t *Tunnel) Abort(ctx context.Context) {
	t.mu.Lock()
	t.aborted = true
	control, forwarder := t.control, t.forwarder
	t.mu.Unlock()

	for _, h := range []process.Handle{forwarder, control} {
		if h == nil {
			continue
		}
		if err := h.Kill(); err != nil {
			slog.WarnContext(ctx, "relay_kill_failed", "name", h.Spec().Name, "error", err.Error())
		}
	}

	if err := RemoveStaleSocket(t.cfg.ReadySocketPath); err != nil {
		slog.WarnContext(ctx, "relay_socket_cleanup_failed", "error", err.Error())
	}
}

// set records h. It returns false and kills h when the tunnel was aborted in the meantime.
func (t *Tunnel) set(ctx context.Context, h process.Handle, isControl bool) bool {
	t.mu.Lock()
	aborted := t.aborted
	if !aborted {
		if isControl {
			t.control = h
		} else {
			t.forwarder = h
		}
	}
	t.mu.Unlock()

	if aborted {
		if err := h.Kill(); err != nil {
			slog.WarnContext(ctx, "relay_kill_failed", "name", h.Spec().Name, "error", err.Error())
		}
		_ = RemoveStaleSocket(t.cfg.ReadySocketPath)
	}

	return !aborted
}

// Aborted reports whether Abort was called.
func (t *Tunnel) Aborted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.aborted
}

func (t *Tunnel) handles() (process.Handle, process.Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.control, t.forwarder
}
