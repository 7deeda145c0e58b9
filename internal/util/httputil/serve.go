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

package httputil

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/alexandremahdhaoui/chmigrate/internal/util/gracefulshutdown"
)

type contextKey string

// ServerNameContextKey holds the name of the server a request was received by.
const ServerNameContextKey contextKey = "server_name"

// ShutdownTimeout bounds the shutdown of each server.
const ShutdownTimeout = time.Minute

// Serve runs servers until the context of gs is done, then shuts them down. A server with a
// TLSConfig serves TLS using the certificates of that config. A server failing to listen
// initiates the shutdown with exit code 1.
func Serve(servers map[string]*http.Server, gs *gracefulshutdown.GracefulShutdown) {
	for name, server := range servers {
		ctx := context.WithValue(gs.Context(), ServerNameContextKey, name)

		server.BaseContext = func(_ net.Listener) context.Context {
			return ctx
		}

		gs.WaitGroup().Add(1)

		go func() {
			slog.InfoContext(ctx, "server_listening", "server", name, "addr", server.Addr, "tls", server.TLSConfig != nil)

			if err := listenAndServe(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.ErrorContext(ctx, "server_failed", "server", name, "error", err.Error())

				// Done must come first: Shutdown waits for the wait group.
				gs.WaitGroup().Done()
				gs.Shutdown(1)

				return
			}

			gs.WaitGroup().Done()
			gs.Shutdown(0)
		}()
	}

	gs.Ready()

	<-gs.Context().Done()

	for name, server := range servers {
		go func() {
			ctx := context.WithValue(context.Background(), ServerNameContextKey, name)

			ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.ErrorContext(ctx, "server_shutdown_failed", "server", name, "error", err.Error())
				return
			}

			slog.InfoContext(ctx, "server_stopped", "server", name)
		}()
	}
}

func listenAndServe(server *http.Server) error {
	if server.TLSConfig != nil {
		return server.ListenAndServeTLS("", "")
	}
	return server.ListenAndServe()
}
