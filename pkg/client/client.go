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

// Package client talks to the chmigrated management API.
package client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alexandremahdhaoui/chmigrate/pkg/api"
	"github.com/alexandremahdhaoui/chmigrate/pkg/generated/chmigrateclient"
)

var (
	// ErrRequest is returned when a request cannot be sent or its response cannot be read.
	ErrRequest = errors.New("api request failed")
	// ErrAPI is returned with the *api.Error of a non-2xx response.
	ErrAPI = errors.New("api returned an error")
)

// DefaultTimeout bounds a single API call. Perform and Finish return when the stream is over,
// which can take minutes for large guests.
const DefaultTimeout = 30 * time.Minute

// ---------------------------------------------------- INTERFACE --------------------------------------------------- //

// Client is a chmigrated endpoint.
type Client interface {
	// Endpoint returns the base URL of the daemon.
	Endpoint() string

	ListDomains(ctx context.Context) ([]api.Domain, error)
	GetDomain(ctx context.Context, name string) (api.Domain, error)
	DefineDomain(ctx context.Context, req api.DefineRequest) (api.Handle, error)
	DestroyDomain(ctx context.Context, name string) error

	Begin(ctx context.Context, name string, req api.BeginRequest) (api.BeginResponse, error)
	Prepare(ctx context.Context, req api.PrepareRequest) (api.PrepareResponse, error)
	Perform(ctx context.Context, name string, req api.PerformRequest) (api.PerformResponse, error)
	Finish(ctx context.Context, name string, req api.FinishRequest) (api.Handle, error)
	Confirm(ctx context.Context, name string, cancelled bool) error
	Abort(ctx context.Context, name string) error
}

// Option configures a Client.
type Option func(c *client)

// WithToken sends token as a bearer token.
func WithToken(token string) Option {
	return func(c *client) {
		c.token = token
	}
}

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.http = hc
	}
}

// WithTLSConfig connects to https endpoints with tlsConfig.
func WithTLSConfig(tlsConfig *tls.Config) Option {
	return func(c *client) {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = tlsConfig
		c.http = &http.Client{Timeout: c.http.Timeout, Transport: transport}
	}
}

// New returns a Client for the daemon listening at endpoint, e.g. "http://hostA:30443".
func New(endpoint string, opts ...Option) Client {
	c := &client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		http:     &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	clientOpts := []chmigrateclient.ClientOption{chmigrateclient.WithHTTPClient(c.http)}
	if c.token != "" {
		clientOpts = append(clientOpts, chmigrateclient.WithRequestEditorFn(bearer(c.token)))
	}

	c.api, c.err = chmigrateclient.NewClientWithResponses(c.endpoint, clientOpts...)

	return c
}

// IsStatus reports whether err carries an API error with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// ----------------------------------------------------- CLIENT ----------------------------------------------------- //

type client struct {
	endpoint string
	token    string
	http     *http.Client

	api chmigrateclient.ClientWithResponsesInterface
	// err is set when the generated client could not be built.
	err error
}

func (c *client) Endpoint() string {
	return c.endpoint
}

func (c *client) ListDomains(ctx context.Context) ([]api.Domain, error) {
	if c.err != nil {
		return nil, errors.Join(c.err, ErrRequest)
	}

	res, err := c.api.ListDomainsWithResponse(ctx)
	if err := check(res, err, http.StatusOK, res != nil && res.JSON200 != nil); err != nil {
		return nil, err
	}

	return *res.JSON200, nil
}

func (c *client) GetDomain(ctx context.Context, name string) (api.Domain, error) {
	if c.err != nil {
		return api.Domain{}, errors.Join(c.err, ErrRequest)
	}

	res, err := c.api.GetDomainWithResponse(ctx, name)
	if err := check(res, err, http.StatusOK, res != nil && res.JSON200 != nil); err != nil {
		return api.Domain{}, err
	}

	return *res.JSON200, nil
}

func (c *client) DefineDomain(ctx context.Context, req api.DefineRequest) (api.Handle, error) {
	if c.err != nil {
		return api.Handle{}, errors.Join(c.err, ErrRequest)
	}

	res, err := c.api.DefineDomainWithResponse(ctx, req)
	if err := check(res, err, http.StatusCreated, res != nil && res.JSON201 != nil); err != nil {
		return api.Handle{}, err
	}

	return *res.JSON201, nil
}

func (c *client) DestroyDomain(ctx context.Context, name string) error {
	if c.err != nil {
		return errors.Join(c.err, ErrRequest)
	}

	res, err := c.api.DestroyDomainWithResponse(ctx, name)
	return check(res, err, http.StatusNoContent, true)
}

func (c *client) Begin(ctx context.Context, name string, req api.BeginRequest) (api.BeginResponse, error) {
	if c.err != nil {
		return api.BeginResponse{}, errors.Join(c.err, ErrRequest)
	}

	res, err := c.api.BeginMigrationWithResponse(ctx, name, req)
	if err := check(res, err, http.StatusOK, res != nil && res.JSON200 != nil); err != nil {
		return api.BeginResponse{}, err
	}

	return *res.JSON200, nil
}

func (c *client) Prepare(ctx context.Context, req api.PrepareRequest) (api.PrepareResponse, error) {
	if c.err != nil {
		return api.PrepareResponse{}, errors.Join(c.err, ErrRequest)
	}

	res, err := c.api.PrepareMigrationWithResponse(ctx, req)
	if err := check(res, err, http.StatusOK, res != nil && res.JSON200 != nil); err != nil {
		return api.PrepareResponse{}, err
	}

	return *res.JSON200, nil
}

func (c *client) Perform(ctx context.Context, name string, req api.PerformRequest) (api.PerformResponse, error) {
	if c.err != nil {
		return api.PerformResponse{}, errors.Join(c.err, ErrRequest)
	}

	res, err := c.api.PerformMigrationWithResponse(ctx, name, req)
	if err := check(res, err, http.StatusOK, res != nil && res.JSON200 != nil); err != nil {
		return api.PerformResponse{}, err
	}

	return *res.JSON200, nil
}

func (c *client) Finish(ctx context.Context, name string, req api.FinishRequest) (api.Handle, error) {
	if c.err != nil {
		return api.Handle{}, errors.Join(c.err, ErrRequest)
	}

	res, err := c.api.FinishMigrationWithResponse(ctx, name, req)
	if err := check(res, err, http.StatusOK, res != nil && res.JSON200 != nil); err != nil {
		return api.Handle{}, err
	}

	return *res.JSON200, nil
}

func (c *client) Confirm(ctx context.Context, name string, cancelled bool) error {
	if c.err != nil {
		return errors.Join(c.err, ErrRequest)
	}

	res, err := c.api.ConfirmMigrationWithResponse(ctx, name, api.ConfirmRequest{Cancelled: cancelled})
	return check(res, err, http.StatusNoContent, true)
}

func (c *client) Abort(ctx context.Context, name string) error {
	if c.err != nil {
		return errors.Join(c.err, ErrRequest)
	}

	res, err := c.api.AbortMigrationWithResponse(ctx, name)
	return check(res, err, http.StatusNoContent, true)
}

// ----------------------------------------------------- HELPERS ---------------------------------------------------- //

// response is implemented by the generated response types.
type response interface {
	StatusCode() int
}

// check turns the outcome of a generated call into ErrRequest or ErrAPI. decoded reports
// whether the expected body was read.
func check(res response, err error, want int, decoded bool) error {
	if err != nil {
		return errors.Join(err, ErrRequest)
	}

	code := res.StatusCode()
	if code < 200 || code > 299 {
		return errors.Join(apiError(res), ErrAPI)
	}

	if code != want || !decoded {
		return errors.Join(fmt.Errorf("unexpected response %d, want %d", code, want), ErrRequest)
	}

	return nil
}

// apiError reads the api.Error of a failed response, falling back to the raw body for
// replies that do not come from chmigrated (e.g. a proxy).
func apiError(res response) *api.Error {
	code := res.StatusCode()

	var (
		body []byte
		def  *api.Error
	)

	switch r := res.(type) {
	case *chmigrateclient.ListDomainsResponse:
		body, def = r.Body, r.JSONDefault
	case *chmigrateclient.GetDomainResponse:
		body, def = r.Body, r.JSONDefault
	case *chmigrateclient.DefineDomainResponse:
		body, def = r.Body, r.JSONDefault
	case *chmigrateclient.DestroyDomainResponse:
		body, def = r.Body, r.JSONDefault
	case *chmigrateclient.BeginMigrationResponse:
		body, def = r.Body, r.JSONDefault
	case *chmigrateclient.PrepareMigrationResponse:
		body, def = r.Body, r.JSONDefault
	case *chmigrateclient.PerformMigrationResponse:
		body, def = r.Body, r.JSONDefault
	case *chmigrateclient.FinishMigrationResponse:
		body, def = r.Body, r.JSONDefault
	case *chmigrateclient.ConfirmMigrationResponse:
		body, def = r.Body, r.JSONDefault
	case *chmigrateclient.AbortMigrationResponse:
		body, def = r.Body, r.JSONDefault
	}

	if def != nil && def.Code != 0 {
		out := *def
		return &out
	}

	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(code)
	}

	return &api.Error{Code: code, Message: message}
}

// bearer sets the Authorization header of every request.
func bearer(token string) chmigrateclient.RequestEditorFn {
	return func(_ context.Context, req *http.Request) error {
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}
