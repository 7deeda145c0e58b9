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

package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/chmigrate/internal/util/gracefulshutdown"
	"github.com/alexandremahdhaoui/chmigrate/internal/util/httputil"
)

func TestTokenAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, tc := range []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{name: "disabled", token: "", header: "", want: http.StatusNoContent},
		{name: "valid", token: "s3cr3t", header: "Bearer s3cr3t", want: http.StatusNoContent},
		{name: "missing", token: "s3cr3t", header: "", want: http.StatusUnauthorized},
		{name: "wrong", token: "s3cr3t", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "basic", token: "s3cr3t", header: "Basic czNjcjN0", want: http.StatusUnauthorized},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/domains", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			httputil.TokenAuth(ok, tc.token).ServeHTTP(rr, req)

			assert.Equal(t, tc.want, rr.Code)
			if tc.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"code":401,"message":"unauthorized"}`, rr.Body.String())
				assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

type exitRecorder struct {
	mu     sync.Mutex
	called bool
	code   int
}

func (r *exitRecorder) exit(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.called {
		r.called, r.code = true, code
	}
}

func (r *exitRecorder) get() (bool, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.called, r.code
}

func TestServe(t *testing.T) {
	t.Run("GracefulShutdown", func(t *testing.T) {
		rec := &exitRecorder{}
		gs := gracefulshutdown.NewWithExit("test", rec.exit)

		servers := map[string]*http.Server{
			"api": {
				Addr:    "127.0.0.1:0",
				Handler: http.NotFoundHandler(),
			},
		}

		go httputil.Serve(servers, gs)

		time.Sleep(100 * time.Millisecond)
		gs.CancelFunc()()

		require.Eventually(t, func() bool { called, _ := rec.get(); return called }, 2*time.Second, 10*time.Millisecond)
		_, code := rec.get()
		assert.Equal(t, 0, code)
	})

	t.Run("ListenError", func(t *testing.T) {
		rec := &exitRecorder{}
		gs := gracefulshutdown.NewWithExit("test", rec.exit)

		blocker := httptest.NewServer(http.NotFoundHandler())
		defer blocker.Close()

		servers := map[string]*http.Server{
			"api": {
				Addr:    blocker.Listener.Addr().String(),
				Handler: http.NotFoundHandler(),
			},
		}

		go httputil.Serve(servers, gs)

		require.Eventually(t, func() bool { called, _ := rec.get(); return called }, 2*time.Second, 10*time.Millisecond)
		_, code := rec.get()
		assert.Equal(t, 1, code)
	})
}
