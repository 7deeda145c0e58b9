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

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/chmigrate/pkg/api"
	"github.com/alexandremahdhaoui/chmigrate/pkg/client"
)

// peer is a fake chmigrated recording the calls it serves.
type peer struct {
	t    *testing.T
	name string
	log  *[]string
	mu   *sync.Mutex

	// fail maps a phase to the status it answers with.
	fail map[string]int
	// hang makes perform run until the client gives up.
	hang *atomic.Bool

	begin   api.BeginRequest
	prepare api.PrepareRequest
	perform api.PerformRequest
	finish  api.FinishRequest
	confirm []api.ConfirmRequest
	auth    string
}

func newPeer(t *testing.T, name string, log *[]string, mu *sync.Mutex) (*peer, client.Client) {
	t.Helper()

	p := &peer{t: t, name: name, log: log, mu: mu, fail: map[string]int{}, hang: new(atomic.Bool)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+api.DomainsPath, func(w http.ResponseWriter, r *http.Request) {
		p.auth = r.Header.Get("Authorization")
		p.reply(w, "list", http.StatusOK, []api.Domain{{Handle: api.Handle{Name: "vm0", ID: 1}, State: "running"}})
	})
	mux.HandleFunc("DELETE "+api.DomainsPath+"/{name}", func(w http.ResponseWriter, r *http.Request) {
		p.reply(w, "destroy", http.StatusNoContent, nil)
	})
	mux.HandleFunc("POST "+api.DomainsPath+"/{name}/migration/{phase}", func(w http.ResponseWriter, r *http.Request) {
		phase := r.PathValue("phase")
		switch phase {
		case api.PhaseBegin:
			p.decode(r, &p.begin)
			p.reply(w, phase, http.StatusOK, api.BeginResponse{Definition: "<domain><name>vm0</name></domain>"})
		case api.PhasePerform:
			p.decode(r, &p.perform)
			p.reply(w, phase, http.StatusOK, api.PerformResponse{})
		case api.PhaseFinish:
			p.decode(r, &p.finish)
			p.reply(w, phase, http.StatusOK, api.Handle{Name: r.PathValue("name"), ID: 7})
		case api.PhaseConfirm:
			var req api.ConfirmRequest
			p.decode(r, &req)
			p.confirm = append(p.confirm, req)
			if req.Cancelled {
				phase = "cancel"
			}
			p.reply(w, phase, http.StatusNoContent, nil)
		case api.PhaseAbort:
			p.reply(w, phase, http.StatusNoContent, nil)
		}
	})
	mux.HandleFunc("POST "+api.PreparePath, func(w http.ResponseWriter, r *http.Request) {
		p.decode(r, &p.prepare)
		name := p.prepare.Name
		if name == "" {
			name = "vm0"
		}
		p.reply(w, api.PhasePrepare, http.StatusOK, api.PrepareResponse{
			URI:     "tcp:hostB:49152",
			Session: uuid.New(),
			Domain:  api.Handle{Name: name, ID: 7},
		})
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p.hang.Load() && strings.HasSuffix(r.URL.Path, "/migration/"+api.PhasePerform) {
			p.mu.Lock()
			*p.log = append(*p.log, p.name+":"+api.PhasePerform)
			p.mu.Unlock()

			<-r.Context().Done()
			return
		}

		p.mu.Lock()
		defer p.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	return p, client.New(srv.URL+"/", client.WithToken("s3cr3t"))
}

func (p *peer) setFail(phase string, code int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail[phase] = code
}

// snapshot copies the recorded requests once no handler runs.
func (p *peer) snapshot() peer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return *p
}

func calls(mu *sync.Mutex, log *[]string) []string {
	mu.Lock()
	defer mu.Unlock()
	return append([]string(nil), *log...)
}

func (p *peer) decode(r *http.Request, v any) {
	assert.NoError(p.t, json.NewDecoder(r.Body).Decode(v))
}

func (p *peer) reply(w http.ResponseWriter, phase string, status int, body any) {
	*p.log = append(*p.log, p.name+":"+phase)

	if code, ok := p.fail[phase]; ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(api.Error{Code: code, Message: phase + " failed"})
		return
	}

	if body == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient(t *testing.T) {
	var (
		log []string
		mu  sync.Mutex
	)

	p, c := newPeer(t, "a", &log, &mu)
	ctx := context.Background()

	t.Run("ListDomains", func(t *testing.T) {
		domains, err := c.ListDomains(ctx)
		require.NoError(t, err)
		require.Len(t, domains, 1)
		assert.Equal(t, "vm0", domains[0].Name)
		assert.Equal(t, "Bearer s3cr3t", p.snapshot().auth)
	})

	t.Run("APIError", func(t *testing.T) {
		p.setFail("destroy", http.StatusServiceUnavailable)

		err := c.DestroyDomain(ctx, "vm0")
		require.ErrorIs(t, err, client.ErrAPI)
		assert.True(t, client.IsStatus(err, http.StatusServiceUnavailable))
		assert.False(t, client.IsStatus(err, http.StatusNotFound))
		assert.Contains(t, err.Error(), "destroy failed")
	})

	t.Run("NonAPIError", func(t *testing.T) {
		_, err := c.GetDomain(ctx, "vm0")
		require.ErrorIs(t, err, client.ErrAPI)
		assert.True(t, client.IsStatus(err, http.StatusMethodNotAllowed) || client.IsStatus(err, http.StatusNotFound))
	})

	t.Run("Unreachable", func(t *testing.T) {
		_, err := client.New("http://127.0.0.1:1").ListDomains(ctx)
		assert.ErrorIs(t, err, client.ErrRequest)
	})
}

func TestMigrate(t *testing.T) {
	setup := func(t *testing.T) (*peer, *peer, client.Client, client.Client, func() []string) {
		t.Helper()

		var (
			log []string
			mu  sync.Mutex
		)

		src, srcClient := newPeer(t, "src", &log, &mu)
		dst, dstClient := newPeer(t, "dst", &log, &mu)

		return src, dst, srcClient, dstClient, func() []string { return calls(&mu, &log) }
	}

	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		src, dst, srcClient, dstClient, log := setup(t)

		h, err := client.Migrate(ctx, srcClient, dstClient, "vm0", client.MigrateOptions{DestinationName: "vm0-copy"})
		require.NoError(t, err)
		assert.Equal(t, "vm0-copy", h.Name)
		assert.Equal(t, 7, h.ID)

		assert.Equal(t, []string{"src:begin", "dst:prepare", "src:perform", "dst:finish", "src:confirm"}, log())
		srcState, dstState := src.snapshot(), dst.snapshot()
		assert.Equal(t, "<domain><name>vm0</name></domain>", dstState.prepare.Definition)
		assert.Equal(t, "vm0-copy", dstState.prepare.Name)
		assert.Equal(t, "tcp:hostB:49152", srcState.perform.URI)
		assert.True(t, dstState.finish.StartRunning)
		assert.Equal(t, client.RunningReasonMigrated, dstState.finish.RunningReason)
		assert.Equal(t, []api.ConfirmRequest{{Cancelled: false}}, srcState.confirm)
	})

	t.Run("Paused", func(t *testing.T) {
		src, dst, srcClient, dstClient, _ := setup(t)

		_, err := client.Migrate(ctx, srcClient, dstClient, "vm0", client.MigrateOptions{Paused: true, Definition: "<domain/>"})
		require.NoError(t, err)
		dstState := dst.snapshot()
		assert.Equal(t, "<domain/>", src.snapshot().begin.Override)
		assert.False(t, dstState.finish.StartRunning)
		assert.Equal(t, client.PausedReasonMigration, dstState.finish.PausedReason)
	})

	t.Run("BeginFailure", func(t *testing.T) {
		src, _, srcClient, dstClient, log := setup(t)
		src.setFail(api.PhaseBegin, http.StatusBadRequest)

		_, err := client.Migrate(ctx, srcClient, dstClient, "vm0", client.MigrateOptions{})
		require.ErrorIs(t, err, client.ErrMigrate)
		assert.True(t, client.IsStatus(err, http.StatusBadRequest))
		assert.Equal(t, []string{"src:begin"}, log())
	})

	t.Run("PrepareFailureCancelsSource", func(t *testing.T) {
		_, dst, srcClient, dstClient, log := setup(t)
		dst.setFail(api.PhasePrepare, http.StatusServiceUnavailable)

		_, err := client.Migrate(ctx, srcClient, dstClient, "vm0", client.MigrateOptions{})
		require.ErrorIs(t, err, client.ErrMigrate)
		assert.Equal(t, []string{"src:begin", "dst:prepare", "src:cancel"}, log())
	})

	t.Run("PerformFailureCompensates", func(t *testing.T) {
		src, _, srcClient, dstClient, log := setup(t)
		src.setFail(api.PhasePerform, http.StatusInternalServerError)

		_, err := client.Migrate(ctx, srcClient, dstClient, "vm0", client.MigrateOptions{})
		require.ErrorIs(t, err, client.ErrMigrate)
		assert.Equal(t, []string{"src:begin", "dst:prepare", "src:perform", "dst:abort", "src:cancel"}, log())
	})

	t.Run("CompensatesAfterCallerDeadline", func(t *testing.T) {
		src, _, srcClient, dstClient, log := setup(t)
		src.hang.Store(true)

		deadline, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()

		_, err := client.Migrate(deadline, srcClient, dstClient, "vm0", client.MigrateOptions{
			CompensationTimeout: 5 * time.Second,
		})
		require.ErrorIs(t, err, client.ErrMigrate)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotContains(t, err.Error(), "aborting destination")
		assert.NotContains(t, err.Error(), "cancelling source")
		assert.Equal(t, []string{"src:begin", "dst:prepare", "src:perform", "dst:abort", "src:cancel"}, log())
	})

	t.Run("FinishFailureCompensates", func(t *testing.T) {
		_, dst, srcClient, dstClient, log := setup(t)
		dst.setFail(api.PhaseFinish, http.StatusInternalServerError)
		// nothing left to abort is not a failure.
		dst.setFail(api.PhaseAbort, http.StatusConflict)

		_, err := client.Migrate(ctx, srcClient, dstClient, "vm0", client.MigrateOptions{})
		require.ErrorIs(t, err, client.ErrMigrate)
		assert.NotContains(t, err.Error(), "aborting destination")
		assert.Equal(t, []string{"src:begin", "dst:prepare", "src:perform", "dst:finish", "dst:abort", "src:cancel"}, log())
	})

	t.Run("CompensationFailureIsReported", func(t *testing.T) {
		src, _, srcClient, dstClient, _ := setup(t)
		src.setFail(api.PhasePerform, http.StatusInternalServerError)
		src.setFail("cancel", http.StatusInternalServerError)

		_, err := client.Migrate(ctx, srcClient, dstClient, "vm0", client.MigrateOptions{})
		require.ErrorIs(t, err, client.ErrMigrate)
		assert.Contains(t, err.Error(), "cancelling source")
	})

	t.Run("ConfirmFailureKeepsHandle", func(t *testing.T) {
		src, _, srcClient, dstClient, _ := setup(t)
		src.setFail(api.PhaseConfirm, http.StatusServiceUnavailable)

		h, err := client.Migrate(ctx, srcClient, dstClient, "vm0", client.MigrateOptions{})
		require.ErrorIs(t, err, client.ErrMigrate)
		assert.Equal(t, 7, h.ID)
	})
}
