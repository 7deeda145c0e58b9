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
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexandremahdhaoui/chmigrate/internal/controller"
	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/internal/migration"
	"github.com/alexandremahdhaoui/chmigrate/pkg/api"
	"github.com/alexandremahdhaoui/chmigrate/pkg/generated/chmigrateserver"
	"github.com/alexandremahdhaoui/chmigrate/pkg/portalloc"
)

// ErrBadRequest is returned when a request does not match the API document.
var ErrBadRequest = errors.New("bad request")

// New returns the handlers of the management API.
func New(domains controller.Domains, orch migration.Orchestrator) chmigrateserver.StrictServerInterface {
	return &server{
		domains: domains,
		orch:    orch,
	}
}

// NewHandler serves ssi behind request validation and RequestMiddleware.
func NewHandler(ssi chmigrateserver.StrictServerInterface) (http.Handler, error) {
	strict := chmigrateserver.NewStrictHandlerWithOptions(ssi, nil, chmigrateserver.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, r, errors.Join(err, ErrBadRequest))
		},
		ResponseErrorHandlerFunc: writeError,
	})

	h := chmigrateserver.HandlerWithOptions(strict, chmigrateserver.StdHTTPServerOptions{
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, r, errors.Join(err, ErrBadRequest))
		},
	})

	validated, err := ValidationMiddleware(h)
	if err != nil {
		return nil, err
	}

	return RequestMiddleware(validated), nil
}

var _ chmigrateserver.StrictServerInterface = (*server)(nil)

type server struct {
	domains controller.Domains
	orch    migration.Orchestrator
}

// ---------------------------------------------------- DOMAINS ----------------------------------------------------- //

func (s *server) ListDomains(
	ctx context.Context,
	_ chmigrateserver.ListDomainsRequestObject,
) (chmigrateserver.ListDomainsResponseObject, error) {
	out := s.domains.List(ctx)
	if out == nil {
		out = []api.Domain{}
	}

	return chmigrateserver.ListDomains200JSONResponse(out), nil
}

func (s *server) DefineDomain(
	ctx context.Context,
	request chmigrateserver.DefineDomainRequestObject,
) (chmigrateserver.DefineDomainResponseObject, error) {
	h, err := s.domains.Define(ctx, *request.Body)
	if err != nil {
		body := errorBody(ctx, err)
		return chmigrateserver.DefineDomaindefaultJSONResponse{Body: body, StatusCode: body.Code}, nil
	}

	return chmigrateserver.DefineDomain201JSONResponse(h), nil
}

func (s *server) GetDomain(
	ctx context.Context,
	request chmigrateserver.GetDomainRequestObject,
) (chmigrateserver.GetDomainResponseObject, error) {
	info, err := s.domains.Get(ctx, request.Name)
	if err != nil {
		body := errorBody(ctx, err)
		return chmigrateserver.GetDomaindefaultJSONResponse{Body: body, StatusCode: body.Code}, nil
	}

	return chmigrateserver.GetDomain200JSONResponse(info), nil
}

func (s *server) DestroyDomain(
	ctx context.Context,
	request chmigrateserver.DestroyDomainRequestObject,
) (chmigrateserver.DestroyDomainResponseObject, error) {
	if err := s.domains.Destroy(ctx, request.Name); err != nil {
		body := errorBody(ctx, err)
		return chmigrateserver.DestroyDomaindefaultJSONResponse{Body: body, StatusCode: body.Code}, nil
	}

	return chmigrateserver.DestroyDomain204Response{}, nil
}

// --------------------------------------------------- MIGRATION ---------------------------------------------------- //

func (s *server) BeginMigration(
	ctx context.Context,
	request chmigrateserver.BeginMigrationRequestObject,
) (chmigrateserver.BeginMigrationResponseObject, error) {
	res, err := s.orch.SrcBegin(ctx, request.Name, request.Body.Override)
	if err != nil {
		body := errorBody(ctx, err)
		return chmigrateserver.BeginMigrationdefaultJSONResponse{Body: body, StatusCode: body.Code}, nil
	}

	return chmigrateserver.BeginMigration200JSONResponse{Definition: res.Definition, Cookie: res.Cookie}, nil
}

func (s *server) PrepareMigration(
	ctx context.Context,
	request chmigrateserver.PrepareMigrationRequestObject,
) (chmigrateserver.PrepareMigrationResponseObject, error) {
	res, err := s.orch.DstPrepare(ctx, migration.PrepareRequest{
		Definition: request.Body.Definition,
		Cookie:     request.Body.Cookie,
		Name:       request.Body.Name,
	})
	if err != nil {
		body := errorBody(ctx, err)
		return chmigrateserver.PrepareMigrationdefaultJSONResponse{Body: body, StatusCode: body.Code}, nil
	}

	return chmigrateserver.PrepareMigration200JSONResponse{
		URI:     res.URI,
		Session: res.Session,
		Domain:  res.Domain,
		Cookie:  res.Cookie,
	}, nil
}

func (s *server) PerformMigration(
	ctx context.Context,
	request chmigrateserver.PerformMigrationRequestObject,
) (chmigrateserver.PerformMigrationResponseObject, error) {
	out, err := s.orch.SrcPerform(ctx, migration.PerformRequest{
		Name:   request.Name,
		URI:    request.Body.URI,
		Cookie: request.Body.Cookie,
	})
	if err != nil {
		body := errorBody(ctx, err)
		return chmigrateserver.PerformMigrationdefaultJSONResponse{Body: body, StatusCode: body.Code}, nil
	}

	return chmigrateserver.PerformMigration200JSONResponse{Cookie: out}, nil
}

func (s *server) FinishMigration(
	ctx context.Context,
	request chmigrateserver.FinishMigrationRequestObject,
) (chmigrateserver.FinishMigrationResponseObject, error) {
	h, err := s.orch.DstFinish(ctx, migration.FinishRequest{
		Name:          request.Name,
		Cookie:        request.Body.Cookie,
		StartRunning:  request.Body.StartRunning,
		RunningReason: domain.RunningReason(request.Body.RunningReason),
		PausedReason:  domain.PausedReason(request.Body.PausedReason),
	})
	if err != nil {
		body := errorBody(ctx, err)
		return chmigrateserver.FinishMigrationdefaultJSONResponse{Body: body, StatusCode: body.Code}, nil
	}

	return chmigrateserver.FinishMigration200JSONResponse(h), nil
}

func (s *server) ConfirmMigration(
	ctx context.Context,
	request chmigrateserver.ConfirmMigrationRequestObject,
) (chmigrateserver.ConfirmMigrationResponseObject, error) {
	if err := s.orch.SrcConfirm(ctx, request.Name, request.Body.Cancelled); err != nil {
		body := errorBody(ctx, err)
		return chmigrateserver.ConfirmMigrationdefaultJSONResponse{Body: body, StatusCode: body.Code}, nil
	}

	return chmigrateserver.ConfirmMigration204Response{}, nil
}

func (s *server) AbortMigration(
	ctx context.Context,
	request chmigrateserver.AbortMigrationRequestObject,
) (chmigrateserver.AbortMigrationResponseObject, error) {
	if err := s.orch.DstAbort(ctx, request.Name); err != nil {
		body := errorBody(ctx, err)
		return chmigrateserver.AbortMigrationdefaultJSONResponse{Body: body, StatusCode: body.Code}, nil
	}

	return chmigrateserver.AbortMigration204Response{}, nil
}

// ----------------------------------------------------- HELPERS ---------------------------------------------------- //

// StatusFromError maps an error to the status code of the response reporting it.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, migration.ErrValidation),
		errors.Is(err, migration.ErrInvalidMigrationURI),
		errors.Is(err, domain.ErrInvalidDefinition):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDomainNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRegistration),
		errors.Is(err, domain.ErrJobPreempted),
		errors.Is(err, migration.ErrPhaseOrder),
		errors.Is(err, migration.ErrNoMigrationSession):
		return http.StatusConflict
	case errors.Is(err, domain.ErrJobBusy),
		errors.Is(err, domain.ErrJobTimeout),
		errors.Is(err, portalloc.ErrPortExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorBody builds the api.Error reporting err. Server errors are logged.
func errorBody(ctx context.Context, err error) api.Error {
	status := StatusFromError(err)

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request_failed",
			"request_id", GetRequestID(ctx),
			"status", status,
			"error", err.Error(),
		)
	}

	return api.Error{Code: status, Message: err.Error()}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody(r.Context(), err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(r.Context(), "response_encoding_failed", "error", err.Error())
	}
}
