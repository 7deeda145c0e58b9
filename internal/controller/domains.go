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

package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"k8s.io/utils/clock"

	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/internal/hypervisor"
	"github.com/alexandremahdhaoui/chmigrate/internal/migration"
	"github.com/alexandremahdhaoui/chmigrate/pkg/api"
)

var (
	ErrDefine  = errors.New("defining domain")
	ErrGet     = errors.New("getting domain")
	ErrDestroy = errors.New("destroying domain")
)

// ---------------------------------------------------- INTERFACE --------------------------------------------------- //

// Domains serves the domain operations that are not migration phases. Each one holds the
// job matching its effect on the domain.
type Domains interface {
	// Define registers a domain whose hypervisor was started outside of this driver. The api
	// socket defaults to the one the hypervisor would use for the domain name.
	Define(ctx context.Context, req api.DefineRequest) (domain.Handle, error)
	// Get returns the named domain under a Query job.
	Get(ctx context.Context, name string) (api.Domain, error)
	// List returns every domain without taking any job.
	List(ctx context.Context) []api.Domain
	// Destroy stops the named domain under a Destroy job, which never waits for a Query or
	// Modify job to be granted. The job it preempts is given the job wait timeout to roll
	// back before the domain is torn down. A migration in flight is torn down.
	Destroy(ctx context.Context, name string) error
}

// --------------------------------------------------- CONSTRUCTORS ------------------------------------------------- //

// Option configures Domains.
type Option func(*domains)

// WithClock sets the clock used to time job waits.
func WithClock(c clock.Clock) Option {
	return func(d *domains) {
		d.clock = c
	}
}

// WithMetrics records job waits.
func WithMetrics(m *migration.Metrics) Option {
	return func(d *domains) {
		d.metrics = m
	}
}

// NewDomains returns Domains serving the domains of list.
func NewDomains(list *domain.List, hv hypervisor.Hypervisor, opts ...Option) Domains {
	d := &domains{
		list:  list,
		hv:    hv,
		clock: clock.RealClock{},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// ---------------------------------------------------- DOMAINS ----------------------------------------------------- //

type domains struct {
	list    *domain.List
	hv      hypervisor.Hypervisor
	clock   clock.Clock
	metrics *migration.Metrics
}

func (c *domains) beginJob(ctx context.Context, d *domain.Domain, kind domain.JobKind) (*domain.JobLease, error) {
	start := c.clock.Now()
	lease, err := d.Job().BeginJob(ctx, kind, domain.OwnerFromContext(ctx))
	c.metrics.ObserveJobWait(kind, c.clock.Since(start), err)

	return lease, err
}

func (c *domains) Define(ctx context.Context, req api.DefineRequest) (domain.Handle, error) {
	def, err := domain.ParseDefinition(req.Definition)
	if err != nil {
		return domain.Handle{}, errors.Join(err, ErrDefine)
	}

	flags := domain.AddLive | domain.AddCheckLive | domain.AddReserve
	if req.Persistent {
		flags |= domain.AddPersistent
	}

	d, err := c.list.Add(def, flags)
	if err != nil {
		return domain.Handle{}, errors.Join(err, ErrDefine)
	}
	defer c.list.Unreserve(d)

	lease, err := c.beginJob(ctx, d, domain.JobModify)
	if err != nil {
		c.list.RemoveInactive(d)
		return domain.Handle{}, errors.Join(err, ErrDefine)
	}
	defer lease.EndJob()

	if cur, err := c.list.Get(def.Name); err != nil || cur != d {
		return domain.Handle{}, errors.Join(
			fmt.Errorf("%w: domain %q was removed while waiting for its job", domain.ErrRegistration, def.Name),
			ErrDefine)
	}

	socket := req.APISocket
	if socket == "" {
		socket = c.hv.APISocketPath(def.Name)
	}

	d.SetAPISocket(socket)
	d.SetState(domain.StateRunning, int(domain.RunningBooted))

	slog.InfoContext(ctx, "domain_defined",
		"domain", def.Name,
		"uuid", d.UUID().String(),
		"api_socket", socket,
		"persistent", req.Persistent,
	)

	return d.Handle(), nil
}

func (c *domains) Get(ctx context.Context, name string) (api.Domain, error) {
	d, err := c.list.Get(name)
	if err != nil {
		return api.Domain{}, errors.Join(err, ErrGet)
	}

	lease, err := c.beginJob(ctx, d, domain.JobQuery)
	if err != nil {
		return api.Domain{}, errors.Join(err, ErrGet)
	}
	defer lease.EndJob()

	info := snapshot(d)

	doc, err := domain.FormatDefinition(d.Definition())
	if err != nil {
		return api.Domain{}, errors.Join(err, ErrGet)
	}
	info.Definition = doc

	return info, nil
}

func (c *domains) List(_ context.Context) []api.Domain {
	all := c.list.List()

	out := make([]api.Domain, 0, len(all))
	for _, d := range all {
		out = append(out, snapshot(d))
	}

	return out
}

func (c *domains) Destroy(ctx context.Context, name string) error {
	d, err := c.list.Get(name)
	if err != nil {
		return errors.Join(err, ErrDestroy)
	}

	lease, err := c.beginJob(ctx, d, domain.JobDestroy)
	if err != nil {
		return errors.Join(err, ErrDestroy)
	}
	defer lease.EndJob()

	// A phase preempted by this job rolls back once its relay is gone.
	if s := d.MigrationSession(); s != nil {
		s.Abort(ctx)
	}

	lease.WaitPreempted(ctx)

	if s := d.MigrationSession(); s != nil {
		s.Abort(ctx)

		if err := s.ReleasePort(); err != nil {
			slog.WarnContext(ctx, "migration_port_release_failed", "port", s.Port(), "error", err.Error())
		}

		d.SetMigrationSession(nil)

		slog.InfoContext(ctx, "migration_torn_down", "domain", name, "session", s.ID.String(), "role", s.Role.String())
	}

	if d.IsActive() {
		if err := c.hv.Stop(ctx, d, domain.ShutoffDestroyed); err != nil {
			return errors.Join(err, ErrDestroy)
		}
	}

	c.list.RemoveInactive(d)

	slog.InfoContext(ctx, "domain_destroyed", "domain", name)

	return nil
}

func snapshot(d *domain.Domain) api.Domain {
	state, reason := d.State()
	kind, owner := d.Job().Active()

	info := api.Domain{
		Handle:     d.Handle(),
		State:      state.String(),
		Reason:     reason,
		Persistent: d.Persistent(),
		Job:        kind.String(),
		JobOwner:   owner,
	}

	if s := d.MigrationSession(); s != nil {
		info.Migration = &api.Migration{
			Session:   s.ID,
			Role:      s.Role.String(),
			Phase:     s.Phase().String(),
			StartedAt: s.StartedAt,
			URI:       s.URI(),
			Port:      s.Port(),
		}
	}

	return info
}
