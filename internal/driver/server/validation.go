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

package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"

	"github.com/alexandremahdhaoui/chmigrate/pkg/generated/chmigrateserver"
)

// maxBodyBytes bounds request bodies. Definitions are the largest payloads.
const maxBodyBytes = 4 << 20

// ValidationMiddleware rejects requests that do not match the embedded API document with a
// 400. Requests to unknown routes are passed to next, which answers them.
func ValidationMiddleware(next http.Handler) (http.Handler, error) {
	doc, err := chmigrateserver.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("loading api document: %w", err)
	}

	// Match any host: the daemon may be reached through several names.
	doc.Servers = nil

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building api router: %w", err)
	}

	options := &openapi3filter.Options{
		// Bearer tokens are checked by httputil.TokenAuth.
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}

		route, pathParams, err := router.FindRoute(r)
		if routeErr := (*routers.RouteError)(nil); errors.As(err, &routeErr) {
			// unknown path or method
			next.ServeHTTP(w, r)
			return
		} else if err != nil {
			writeError(w, r, errors.Join(err, ErrBadRequest))
			return
		}

		if err := openapi3filter.ValidateRequest(r.Context(), &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: pathParams,
			Route:      route,
			Options:    options,
		}); err != nil {
			writeError(w, r, errors.Join(err, ErrBadRequest))
			return
		}

		next.ServeHTTP(w, r)
	}), nil
}
