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

package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/internal/driver/server"
	"github.com/alexandremahdhaoui/chmigrate/internal/migration"
	"github.com/alexandremahdhaoui/chmigrate/internal/util/mocks/mockcontroller"
	"github.com/alexandremahdhaoui/chmigrate/internal/util/mocks/mockmigration"
	"github.com/alexandremahdhaoui/chmigrate/pkg/api"
	"github.com/alexandremahdhaoui/chmigrate/pkg/portalloc"
	"github.com/alexandremahdhaoui/chmigrate/pkg/process"
)

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(server.RequestIDHeader, "req-1")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))

	return out
}

func TestStatusFromError(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want int
	}{
		{err: migration.ErrValidation, want: http.StatusBadRequest},
		{err: migration.ErrInvalidMigrationURI, want: http.StatusBadRequest},
		{err: errors.Join(errors.New("eof"), server.ErrBadRequest), want: http.StatusBadRequest},
		{err: domain.ErrInvalidDefinition, want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: vm0", domain.ErrDomainNotFound), want: http.StatusNotFound},
		{err: domain.ErrRegistration, want: http.StatusConflict},
		{err: domain.ErrJobPreempted, want: http.StatusConflict},
		{err: migration.ErrPhaseOrder, want: http.StatusConflict},
		{err: migration.ErrNoMigrationSession, want: http.StatusConflict},
		{err: errors.Join(domain.ErrJobTimeout, domain.ErrJobBusy), want: http.StatusServiceUnavailable},
		{err: portalloc.ErrPortExhausted, want: http.StatusServiceUnavailable},
		{err: errors.Join(process.ErrSpawn), want: http.StatusInternalServerError},
	} {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, server.StatusFromError(tc.err))
		})
	}
}

func TestServer(t *testing.T) {
	var (
		domains *mockcontroller.MockDomains
		orch    *mockmigration.MockOrchestrator
		h       http.Handler
	)

	setup := func(t *testing.T) {
		t.Helper()

		domains = mockcontroller.NewMockDomains(t)
		orch = mockmigration.NewMockOrchestrator(t)

		var err error
		h, err = server.NewHandler(server.New(domains, orch))
		require.NoError(t, err)
	}

	vmUUID := uuid.New()

	t.Run("ListDomains", func(t *testing.T) {
		setup(t)
		domains.EXPECT().List(mock.Anything).Return([]api.Domain{
			{Handle: api.Handle{Name: "vm0", UUID: vmUUID, ID: 1}, State: "running", Job: "none"},
		})

		rr := do(t, h, http.MethodGet, api.DomainsPath, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "req-1", rr.Header().Get(server.RequestIDHeader))

		out := decodeBody[[]api.Domain](t, rr)
		require.Len(t, out, 1)
		assert.Equal(t, "vm0", out[0].Name)
		assert.Equal(t, vmUUID, out[0].UUID)
	})

	t.Run("ListDomainsEmpty", func(t *testing.T) {
		setup(t)
		domains.EXPECT().List(mock.Anything).Return(nil)

		rr := do(t, h, http.MethodGet, api.DomainsPath, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("DefineDomain", func(t *testing.T) {
		setup(t)
		domains.EXPECT().Define(mock.Anything, api.DefineRequest{Definition: "<domain/>", Persistent: true}).
			RunAndReturn(func(ctx context.Context, _ api.DefineRequest) (api.Handle, error) {
				assert.True(t, strings.HasPrefix(domain.OwnerFromContext(ctx), "req-1@"))
				return api.Handle{Name: "vm0", UUID: vmUUID, ID: 1}, nil
			})

		rr := do(t, h, http.MethodPost, api.DomainsPath, api.DefineRequest{Definition: "<domain/>", Persistent: true})
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, 1, decodeBody[api.Handle](t, rr).ID)
	})

	t.Run("GetDomainNotFound", func(t *testing.T) {
		setup(t)
		domains.EXPECT().Get(mock.Anything, "vm0").Return(api.Domain{}, fmt.Errorf("%w: %q", domain.ErrDomainNotFound, "vm0"))

		rr := do(t, h, http.MethodGet, api.DomainPath("vm0"), nil)
		require.Equal(t, http.StatusNotFound, rr.Code)

		e := decodeBody[api.Error](t, rr)
		assert.Equal(t, http.StatusNotFound, e.Code)
		assert.Contains(t, e.Message, "domain not found")
	})

	t.Run("DestroyDomain", func(t *testing.T) {
		setup(t)
		domains.EXPECT().Destroy(mock.Anything, "vm0").Return(nil)

		rr := do(t, h, http.MethodDelete, api.DomainPath("vm0"), nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("BadBody", func(t *testing.T) {
		setup(t)

		req := httptest.NewRequest(http.MethodPost, api.PreparePath, strings.NewReader("{"))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(server.RequestIDHeader))
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		setup(t)

		rr := do(t, h, http.MethodPost, api.PreparePath, map[string]string{"name": "vm0-copy"})
		require.Equal(t, http.StatusBadRequest, rr.Code)

		e := decodeBody[api.Error](t, rr)
		assert.Equal(t, http.StatusBadRequest, e.Code)
		assert.Contains(t, e.Message, "definition")
	})

	t.Run("WrongFieldType", func(t *testing.T) {
		setup(t)

		rr := do(t, h, http.MethodPost, api.MigrationPath("vm0", api.PhaseConfirm), map[string]string{"cancelled": "yes"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("WrongMethod", func(t *testing.T) {
		setup(t)

		rr := do(t, h, http.MethodPut, api.DomainPath("vm0"), nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("Begin", func(t *testing.T) {
		setup(t)
		orch.EXPECT().SrcBegin(mock.Anything, "vm0", "").Return(migration.BeginResult{Definition: "<domain/>"}, nil)

		rr := do(t, h, http.MethodPost, api.MigrationPath("vm0", api.PhaseBegin), api.BeginRequest{})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "<domain/>", decodeBody[api.BeginResponse](t, rr).Definition)
	})

	t.Run("BeginValidationError", func(t *testing.T) {
		setup(t)
		orch.EXPECT().SrcBegin(mock.Anything, "vm0", "").
			Return(migration.BeginResult{}, fmt.Errorf("%w: domain has assigned host devices", migration.ErrValidation))

		rr := do(t, h, http.MethodPost, api.MigrationPath("vm0", api.PhaseBegin), api.BeginRequest{})
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeBody[api.Error](t, rr).Message, "domain has assigned host devices")
	})

	t.Run("Prepare", func(t *testing.T) {
		setup(t)
		session := uuid.New()
		orch.EXPECT().DstPrepare(mock.Anything, migration.PrepareRequest{Definition: "<domain/>", Name: "vm0-copy"}).
			Return(migration.PrepareResult{
				URI:     "tcp:hostB:49152",
				Session: session,
				Domain:  api.Handle{Name: "vm0-copy", UUID: vmUUID, ID: 3},
			}, nil)

		rr := do(t, h, http.MethodPost, api.PreparePath, api.PrepareRequest{Definition: "<domain/>", Name: "vm0-copy"})
		require.Equal(t, http.StatusOK, rr.Code)

		out := decodeBody[api.PrepareResponse](t, rr)
		assert.Equal(t, "tcp:hostB:49152", out.URI)
		assert.Equal(t, session, out.Session)
		assert.Equal(t, "vm0-copy", out.Domain.Name)
	})

	t.Run("PreparePortExhausted", func(t *testing.T) {
		setup(t)
		orch.EXPECT().DstPrepare(mock.Anything, mock.Anything).Return(migration.PrepareResult{}, portalloc.ErrPortExhausted)

		rr := do(t, h, http.MethodPost, api.PreparePath, api.PrepareRequest{Definition: "<domain/>"})
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("Perform", func(t *testing.T) {
		setup(t)
		orch.EXPECT().SrcPerform(mock.Anything, migration.PerformRequest{Name: "vm0", URI: "tcp:hostB:49152"}).
			Return(nil, nil)

		rr := do(t, h, http.MethodPost, api.MigrationPath("vm0", api.PhasePerform), api.PerformRequest{URI: "tcp:hostB:49152"})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Finish", func(t *testing.T) {
		setup(t)
		orch.EXPECT().DstFinish(mock.Anything, migration.FinishRequest{
			Name:          "vm0",
			StartRunning:  true,
			RunningReason: domain.RunningMigrated,
			PausedReason:  domain.PausedMigration,
		}).Return(api.Handle{Name: "vm0", UUID: vmUUID, ID: 3}, nil)

		rr := do(t, h, http.MethodPost, api.MigrationPath("vm0", api.PhaseFinish), api.FinishRequest{
			StartRunning:  true,
			RunningReason: int(domain.RunningMigrated),
			PausedReason:  int(domain.PausedMigration),
		})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 3, decodeBody[api.Handle](t, rr).ID)
	})

	t.Run("Confirm", func(t *testing.T) {
		setup(t)
		orch.EXPECT().SrcConfirm(mock.Anything, "vm0", true).Return(nil)

		rr := do(t, h, http.MethodPost, api.MigrationPath("vm0", api.PhaseConfirm), api.ConfirmRequest{Cancelled: true})
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Abort", func(t *testing.T) {
		setup(t)
		orch.EXPECT().DstAbort(mock.Anything, "vm0").Return(fmt.Errorf("%w: vm0", migration.ErrNoMigrationSession))

		rr := do(t, h, http.MethodPost, api.MigrationPath("vm0", api.PhaseAbort), nil)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		setup(t)

		rr := do(t, h, http.MethodGet, "/v1/unknown", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
