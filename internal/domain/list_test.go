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

package domain_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"libvirt.org/go/libvirtxml"

	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/pkg/process"
	"github.com/alexandremahdhaoui/chmigrate/pkg/relay"
)

func newDef(t *testing.T, name string) *libvirtxml.Domain {
	t.Helper()

	def, err := domain.NewDefinition(domain.DefinitionConfig{Name: name})
	require.NoError(t, err)

	return def
}

func TestList(t *testing.T) {
	t.Run("AddGetRemove", func(t *testing.T) {
		l := domain.NewList()
		def := newDef(t, "vm0")

		d, err := l.Add(def, domain.AddLive)
		require.NoError(t, err)
		assert.Equal(t, "vm0", d.Name())
		assert.Equal(t, uuid.MustParse(def.UUID), d.UUID())
		assert.Equal(t, 1, d.ID())
		assert.False(t, d.Persistent())

		got, err := l.Get("vm0")
		require.NoError(t, err)
		assert.Same(t, d, got)

		got, err = l.GetByUUID(d.UUID())
		require.NoError(t, err)
		assert.Same(t, d, got)

		l.Remove(d)
		_, err = l.Get("vm0")
		assert.ErrorIs(t, err, domain.ErrDomainNotFound)
		_, err = l.GetByUUID(d.UUID())
		assert.ErrorIs(t, err, domain.ErrDomainNotFound)

		// removing twice is a no-op.
		l.Remove(d)
		l.Remove(nil)
	})

	t.Run("GeneratesUUID", func(t *testing.T) {
		l := domain.NewList()
		def := newDef(t, "vm0")
		def.UUID = ""

		d, err := l.Add(def, 0)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, d.UUID())
		assert.Equal(t, d.UUID().String(), def.UUID)
		assert.Equal(t, -1, d.ID())
	})

	t.Run("SameNameOtherUUID", func(t *testing.T) {
		l := domain.NewList()

		_, err := l.Add(newDef(t, "vm0"), domain.AddLive)
		require.NoError(t, err)

		_, err = l.Add(newDef(t, "vm0"), domain.AddLive)
		assert.ErrorIs(t, err, domain.ErrRegistration)
	})

	t.Run("SameUUIDOtherName", func(t *testing.T) {
		l := domain.NewList()
		def := newDef(t, "vm0")

		_, err := l.Add(def, domain.AddLive)
		require.NoError(t, err)

		other := newDef(t, "vm1")
		other.UUID = def.UUID

		_, err = l.Add(other, domain.AddLive)
		assert.ErrorIs(t, err, domain.ErrRegistration)
	})

	t.Run("CheckLive", func(t *testing.T) {
		l := domain.NewList()
		def := newDef(t, "vm0")

		d, err := l.Add(def, domain.AddLive|domain.AddCheckLive)
		require.NoError(t, err)

		// registered but not started yet: the identity can be updated in place.
		again, err := l.Add(def, domain.AddLive|domain.AddCheckLive)
		require.NoError(t, err)
		assert.Same(t, d, again)

		d.SetState(domain.StateRunning, int(domain.RunningBooted))

		_, err = l.Add(def, domain.AddLive|domain.AddCheckLive)
		assert.ErrorIs(t, err, domain.ErrRegistration)
	})

	t.Run("Reserve", func(t *testing.T) {
		l := domain.NewList()
		def := newDef(t, "vm0")
		flags := domain.AddLive | domain.AddCheckLive | domain.AddReserve

		d, err := l.Add(def, flags)
		require.NoError(t, err)

		// a second registration cannot reuse the domain while the first one runs.
		_, err = l.Add(def, flags)
		assert.ErrorIs(t, err, domain.ErrRegistration)

		l.Unreserve(d)

		again, err := l.Add(def, flags)
		require.NoError(t, err)
		assert.Same(t, d, again)
		l.Unreserve(again)

		// nor while it holds a migration session.
		d.SetMigrationSession(domain.NewMigrationSession(domain.RoleDestination, time.Now()))
		_, err = l.Add(def, flags)
		assert.ErrorIs(t, err, domain.ErrRegistration)
	})

	t.Run("InvalidDefinition", func(t *testing.T) {
		l := domain.NewList()

		_, err := l.Add(nil, 0)
		assert.ErrorIs(t, err, domain.ErrRegistration)

		def := newDef(t, "vm0")
		def.UUID = "not-a-uuid"
		_, err = l.Add(def, 0)
		assert.ErrorIs(t, err, domain.ErrRegistration)
	})

	t.Run("RemoveInactive", func(t *testing.T) {
		l := domain.NewList()

		transient, err := l.Add(newDef(t, "transient"), domain.AddLive)
		require.NoError(t, err)
		persistent, err := l.Add(newDef(t, "persistent"), domain.AddLive|domain.AddPersistent)
		require.NoError(t, err)

		transient.SetState(domain.StateRunning, 0)
		l.RemoveInactive(transient)
		assert.Equal(t, 2, l.Len())

		transient.SetState(domain.StateShutoff, int(domain.ShutoffMigrated))
		persistent.SetState(domain.StateShutoff, int(domain.ShutoffDestroyed))
		l.RemoveInactive(transient)
		l.RemoveInactive(persistent)

		require.Equal(t, 1, l.Len())
		assert.Equal(t, "persistent", l.List()[0].Name())
	})

	t.Run("ListIsSorted", func(t *testing.T) {
		l := domain.NewList()
		for _, name := range []string{"c", "a", "b"} {
			_, err := l.Add(newDef(t, name), 0)
			require.NoError(t, err)
		}

		var names []string
		for _, d := range l.List() {
			names = append(names, d.Name())
		}
		assert.Equal(t, []string{"a", "b", "c"}, names)
	})
}

func TestDomain(t *testing.T) {
	l := domain.NewList()
	d, err := l.Add(newDef(t, "vm0"), domain.AddLive)
	require.NoError(t, err)

	t.Run("State", func(t *testing.T) {
		state, _ := d.State()
		assert.Equal(t, domain.StateShutoff, state)
		assert.False(t, d.IsActive())

		d.SetState(domain.StatePaused, int(domain.PausedMigration))
		state, reason := d.State()
		assert.Equal(t, domain.StatePaused, state)
		assert.Equal(t, int(domain.PausedMigration), reason)
		assert.True(t, d.IsActive())
		assert.Equal(t, 1, d.ID())

		d.SetState(domain.StateShutoff, int(domain.ShutoffMigrated))
		assert.Equal(t, -1, d.ID())
	})

	t.Run("Private", func(t *testing.T) {
		d.SetAPISocket("/run/vm0-socket")
		assert.Equal(t, "/run/vm0-socket", d.APISocket())
		assert.Nil(t, d.VMM())

		s := domain.NewMigrationSession(domain.RoleDestination, time.Now())
		d.SetMigrationSession(s)
		assert.Same(t, s, d.MigrationSession())

		d.SetMigrationSession(nil)
		assert.Nil(t, d.MigrationSession())
	})

	t.Run("Handle", func(t *testing.T) {
		h := d.Handle()
		assert.Equal(t, "vm0", h.Name)
		assert.Equal(t, d.UUID(), h.UUID)
	})
}

func TestMigrationSession(t *testing.T) {
	s := domain.NewMigrationSession(domain.RoleDestination, time.Now())
	assert.Equal(t, domain.PhaseIdle, s.Phase())
	assert.NotEqual(t, uuid.Nil, s.ID)

	// releasing a session without port is a no-op, and does not prevent a later lease from
	// being released.
	require.NoError(t, s.ReleasePort())

	var released []int
	s.LeasePort(49152, func(port int) error {
		released = append(released, port)
		return nil
	})
	assert.Equal(t, 49152, s.Port())

	require.NoError(t, s.ReleasePort())
	require.NoError(t, s.ReleasePort())
	assert.Equal(t, []int{49152}, released)

	s.SetURI("tcp:hostB:49152")
	s.SetPhase(domain.PhasePrepared)
	assert.Equal(t, "tcp:hostB:49152", s.URI())

	// aborting a session without relay only moves it to the aborted phase, and a relay
	// attached afterwards is aborted right away.
	s.Abort(context.Background())
	assert.Equal(t, domain.PhaseAborted, s.Phase())

	tun, err := relay.New(process.NewRunner(nil), relay.Config{
		ReadySocketPath: filepath.Join(t.TempDir(), "vm0-migr-recv"),
		Control:         process.Spec{Path: "true"},
	})
	require.NoError(t, err)

	s.AttachTunnel(context.Background(), tun, "vm0-migr-recv")
	assert.Same(t, tun, s.Tunnel())
	assert.Equal(t, "vm0-migr-recv", s.SocketPath())
	assert.ErrorIs(t, tun.Start(context.Background()), relay.ErrTunnelAborted)

	assert.Equal(t, "destination", s.Role.String())
	assert.Equal(t, "prepared", domain.PhasePrepared.String())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", domain.StateRunning.String())
	assert.Equal(t, "crashed", domain.StateCrashed.String())
	assert.True(t, domain.StateCrashed.Active())
	assert.False(t, domain.StateShutoff.Active())
	assert.Equal(t, "unknown(99)", domain.State(99).String())
}
