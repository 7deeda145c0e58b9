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

package controller_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/chmigrate/internal/controller"
	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/internal/util/mocks/mockhypervisor"
	"github.com/alexandremahdhaoui/chmigrate/pkg/api"
	"github.com/alexandremahdhaoui/chmigrate/pkg/portalloc"
)

func document(t *testing.T, name string) string {
	t.Helper()

	def, err := domain.NewDefinition(domain.DefinitionConfig{Name: name})
	require.NoError(t, err)
	doc, err := domain.FormatDefinition(def)
	require.NoError(t, err)

	return doc
}

func expectStop(hv *mockhypervisor.MockHypervisor, reason domain.ShutoffReason) {
	hv.EXPECT().Stop(mock.Anything, mock.Anything, reason).
		RunAndReturn(func(_ context.Context, d *domain.Domain, reason domain.ShutoffReason) error {
			d.SetState(domain.StateShutoff, int(reason))
			return nil
		}).Once()
}

func TestDomains(t *testing.T) {
	ctx := domain.ContextWithOwner(context.Background(), "req-1")

	var (
		list *domain.List
		hv   *mockhypervisor.MockHypervisor
		ctrl controller.Domains
	)

	setup := func(t *testing.T) {
		t.Helper()

		list = domain.NewList()
		hv = mockhypervisor.NewMockHypervisor(t)
		ctrl = controller.NewDomains(list, hv)
	}

	t.Run("Define", func(t *testing.T) {
		setup(t)
		hv.EXPECT().APISocketPath("vm0").Return("/run/chmigrate/vm0-socket")

		h, err := ctrl.Define(ctx, api.DefineRequest{Definition: document(t, "vm0")})
		require.NoError(t, err)
		assert.Equal(t, "vm0", h.Name)
		assert.Equal(t, 1, h.ID)

		d, err := list.Get("vm0")
		require.NoError(t, err)
		assert.Equal(t, "/run/chmigrate/vm0-socket", d.APISocket())
		state, reason := d.State()
		assert.Equal(t, domain.StateRunning, state)
		assert.Equal(t, int(domain.RunningBooted), reason)

		t.Run("Conflict", func(t *testing.T) {
			doc, err := domain.FormatDefinition(d.Definition())
			require.NoError(t, err)

			_, err = ctrl.Define(ctx, api.DefineRequest{Definition: doc, APISocket: "/tmp/other"})
			assert.ErrorIs(t, err, domain.ErrRegistration)
			assert.ErrorIs(t, err, controller.ErrDefine)
		})

		t.Run("Invalid", func(t *testing.T) {
			_, err := ctrl.Define(ctx, api.DefineRequest{Definition: "not a document"})
			assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
		})
	})

	t.Run("GetAndList", func(t *testing.T) {
		setup(t)

		for _, name := range []string{"vm1", "vm0"} {
			_, err := ctrl.Define(ctx, api.DefineRequest{
				Definition: document(t, name),
				APISocket:  "/tmp/" + name,
				Persistent: name == "vm0",
			})
			require.NoError(t, err)
		}

		info, err := ctrl.Get(ctx, "vm0")
		require.NoError(t, err)
		assert.Equal(t, "vm0", info.Name)
		assert.Equal(t, "running", info.State)
		assert.True(t, info.Persistent)
		assert.Equal(t, "query", info.Job)
		assert.Equal(t, "req-1", info.JobOwner)
		assert.Contains(t, info.Definition, "<name>vm0</name>")
		assert.Nil(t, info.Migration)

		all := ctrl.List(ctx)
		require.Len(t, all, 2)
		assert.Equal(t, "vm0", all[0].Name)
		assert.Equal(t, "vm1", all[1].Name)
		assert.Equal(t, "none", all[0].Job)
		assert.Empty(t, all[0].Definition)

		_, err = ctrl.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrDomainNotFound)
	})

	t.Run("Destroy", func(t *testing.T) {
		t.Run("PreemptsModify", func(t *testing.T) {
			setup(t)
			_, err := ctrl.Define(ctx, api.DefineRequest{Definition: document(t, "vm0"), APISocket: "/tmp/vm0"})
			require.NoError(t, err)

			d, err := list.Get("vm0")
			require.NoError(t, err)

			lease, err := d.Job().BeginJob(ctx, domain.JobModify, "migration")
			require.NoError(t, err)
			defer lease.EndJob()

			// the holder rolls back as soon as its lease is preempted.
			jobCtx, cancel := lease.Context(ctx)
			defer cancel()

			go func() {
				<-jobCtx.Done()
				lease.EndJob()
			}()

			expectStop(hv, domain.ShutoffDestroyed)

			done := make(chan error, 1)
			go func() { done <- ctrl.Destroy(ctx, "vm0") }()

			select {
			case err := <-done:
				require.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("destroy was blocked by a modify job")
			}

			assert.ErrorIs(t, context.Cause(jobCtx), domain.ErrJobPreempted)

			_, err = list.Get("vm0")
			assert.ErrorIs(t, err, domain.ErrDomainNotFound)
		})

		t.Run("PreemptedHolderNeverReleases", func(t *testing.T) {
			list = domain.NewList(domain.WithJobWaitTimeout(50 * time.Millisecond))
			hv = mockhypervisor.NewMockHypervisor(t)
			ctrl = controller.NewDomains(list, hv)

			_, err := ctrl.Define(ctx, api.DefineRequest{Definition: document(t, "vm0"), APISocket: "/tmp/vm0"})
			require.NoError(t, err)

			d, err := list.Get("vm0")
			require.NoError(t, err)

			lease, err := d.Job().BeginJob(ctx, domain.JobModify, "stuck")
			require.NoError(t, err)
			defer lease.EndJob()

			expectStop(hv, domain.ShutoffDestroyed)

			require.NoError(t, ctrl.Destroy(ctx, "vm0"))
			assert.True(t, lease.Preempted())

			_, err = list.Get("vm0")
			assert.ErrorIs(t, err, domain.ErrDomainNotFound)
		})

		t.Run("ReleasesMigrationPort", func(t *testing.T) {
			setup(t)
			_, err := ctrl.Define(ctx, api.DefineRequest{Definition: document(t, "vm0"), APISocket: "/tmp/vm0"})
			require.NoError(t, err)

			d, err := list.Get("vm0")
			require.NoError(t, err)

			ports, err := portalloc.New(50000, 50000)
			require.NoError(t, err)
			port, err := ports.Acquire()
			require.NoError(t, err)

			s := domain.NewMigrationSession(domain.RoleDestination, time.Now())
			s.LeasePort(port, ports.Release)
			s.SetPhase(domain.PhasePrepared)
			d.SetMigrationSession(s)

			info, err := ctrl.Get(ctx, "vm0")
			require.NoError(t, err)
			require.NotNil(t, info.Migration)
			assert.Equal(t, "destination", info.Migration.Role)
			assert.Equal(t, "prepared", info.Migration.Phase)
			assert.Equal(t, 50000, info.Migration.Port)

			expectStop(hv, domain.ShutoffDestroyed)

			require.NoError(t, ctrl.Destroy(ctx, "vm0"))
			assert.Zero(t, ports.InUse())
			assert.Equal(t, domain.PhaseAborted, s.Phase())
		})

		t.Run("KeepsPersistentDefinition", func(t *testing.T) {
			setup(t)
			_, err := ctrl.Define(ctx, api.DefineRequest{
				Definition: document(t, "vm0"),
				APISocket:  "/tmp/vm0",
				Persistent: true,
			})
			require.NoError(t, err)

			expectStop(hv, domain.ShutoffDestroyed)

			require.NoError(t, ctrl.Destroy(ctx, "vm0"))

			d, err := list.Get("vm0")
			require.NoError(t, err)
			assert.False(t, d.IsActive())
			assert.Equal(t, -1, d.ID())
		})

		t.Run("NotFound", func(t *testing.T) {
			setup(t)
			assert.ErrorIs(t, ctrl.Destroy(ctx, "vm0"), domain.ErrDomainNotFound)
		})
	})
}
