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

package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"libvirt.org/go/libvirtxml"

	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/pkg/chremote"
	"github.com/alexandremahdhaoui/chmigrate/pkg/cookie"
	"github.com/alexandremahdhaoui/chmigrate/pkg/relay"
)

func (o *orchestrator) SrcBegin(ctx context.Context, name, override string) (_ BeginResult, err error) {
	defer o.observe(ctx, PhaseBegin, name, o.clock.Now(), &err)

	d, err := o.lookup(name)
	if err != nil {
		return BeginResult{}, err
	}

	lease, err := o.beginJob(ctx, d)
	if err != nil {
		return BeginResult{}, err
	}
	defer lease.EndJob()

	if err := checkMigratable(d); err != nil {
		return BeginResult{}, err
	}

	if s := d.MigrationSession(); s != nil && s.Phase() == domain.PhasePerformed {
		return BeginResult{}, fmt.Errorf("%w: domain %q has a performed migration waiting for confirmation",
			ErrPhaseOrder, name)
	}

	def := d.Definition()

	if override != "" {
		if def, err = parseOverride(d, override); err != nil {
			return BeginResult{}, err
		}
	}

	doc, err := domain.FormatDefinition(def)
	if err != nil {
		return BeginResult{}, err
	}

	var out []byte
	if err := cookie.BakeTo(cookie.New(), &out); err != nil {
		return BeginResult{}, err
	}

	hostname, err := o.hostname()
	if err != nil {
		return BeginResult{}, fmt.Errorf("resolving hostname: %w", err)
	}

	s := domain.NewMigrationSession(domain.RoleSource, o.clock.Now())
	s.SourceHostname = hostname
	s.SetPhase(domain.PhaseBegun)
	d.SetMigrationSession(s)

	slog.InfoContext(ctx, "migration_begun", "domain", name, "session", s.ID.String())

	return BeginResult{Definition: doc, Cookie: out}, nil
}

// checkMigratable rejects configurations that cannot be migrated. It has no side effects.
func checkMigratable(d *domain.Domain) error {
	if !d.IsActive() {
		return fmt.Errorf("%w: domain %q is not running", ErrValidation, d.Name())
	}

	if len(domain.HostDevices(d.Definition())) > 0 {
		return fmt.Errorf("%w: domain has assigned host devices", ErrValidation)
	}

	return nil
}

func parseOverride(d *domain.Domain, override string) (*libvirtxml.Domain, error) {
	def, err := domain.ParseDefinition(override)
	if err != nil {
		return nil, errors.Join(err, ErrValidation)
	}

	if def.Name != d.Name() {
		return nil, fmt.Errorf("%w: override renames domain %q to %q", ErrValidation, d.Name(), def.Name)
	}

	if def.UUID != "" && def.UUID != d.UUID().String() {
		return nil, fmt.Errorf("%w: override changes the uuid of domain %q", ErrValidation, d.Name())
	}

	if len(domain.HostDevices(def)) > 0 {
		return nil, fmt.Errorf("%w: domain has assigned host devices", ErrValidation)
	}

	return def, nil
}

func (o *orchestrator) SrcPerform(ctx context.Context, req PerformRequest) (_ []byte, err error) {
	defer o.observe(ctx, PhasePerform, req.Name, o.clock.Now(), &err)

	cookie.Eat(req.Cookie)

	host, port, err := ParseURI(req.URI)
	if err != nil {
		return nil, err
	}

	d, err := o.lookup(req.Name)
	if err != nil {
		return nil, err
	}

	lease, err := o.beginJob(ctx, d)
	if err != nil {
		return nil, err
	}
	defer lease.EndJob()

	jobCtx, cancel := lease.Context(ctx)
	defer cancel()

	s := d.MigrationSession()
	if s == nil || s.Role != domain.RoleSource {
		return nil, fmt.Errorf("%w: domain %q was not begun", ErrNoMigrationSession, req.Name)
	}

	if phase := s.Phase(); phase != domain.PhaseBegun {
		return nil, fmt.Errorf("%w: cannot perform a migration in phase %s", ErrPhaseOrder, phase)
	}

	if !d.IsActive() {
		return nil, fmt.Errorf("%w: domain %q is not running", ErrValidation, req.Name)
	}

	socket := o.socketPath(d.Name(), sendSocketSuffix)
	remote := chremote.New(o.remotePath, d.APISocket())

	tunnel, err := relay.New(o.runner, relay.Config{
		ListenSpec:      relay.UnixListen(socket),
		ConnectSpec:     relay.TCPConnect(host, port),
		ReadySocketPath: socket,
		Control:         remote.SendMigrationCommand(socket),
		Order:           relay.ForwarderFirst,
		ForwarderPath:   o.forwarderPath,
		Wait:            o.socketWait,
	})
	if err != nil {
		return nil, err
	}

	s.SetURI(req.URI)
	s.AttachTunnel(ctx, tunnel, socket)
	s.SetPhase(domain.PhasePerforming)

	if err := tunnel.Start(jobCtx); err != nil {
		s.Abort(context.WithoutCancel(ctx))
		return nil, interrupted(lease, req.Name, err)
	}

	result, err := tunnel.Join(jobCtx)
	if err = interrupted(lease, req.Name, err); err != nil {
		s.Abort(context.WithoutCancel(ctx))
		return nil, err
	}

	s.SetPhase(domain.PhasePerformed)
	d.SetState(domain.StatePaused, int(domain.PausedMigration))

	slog.InfoContext(ctx, "migration_performed",
		"domain", req.Name,
		"uri", req.URI,
		"forwarder_exit", result.Forwarder.Code,
		"control_exit", result.Control.Code,
	)

	var out []byte
	if err := cookie.BakeTo(cookie.New(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (o *orchestrator) SrcConfirm(ctx context.Context, name string, cancelled bool) (err error) {
	defer o.observe(ctx, PhaseConfirm, name, o.clock.Now(), &err)

	d, err := o.lookup(name)
	if err != nil {
		return err
	}

	lease, err := o.beginJob(ctx, d)
	if err != nil {
		return err
	}
	defer lease.EndJob()

	s := d.MigrationSession()
	if s == nil || s.Role != domain.RoleSource {
		return fmt.Errorf("%w: domain %q has no outgoing migration", ErrNoMigrationSession, name)
	}

	if t := s.Tunnel(); t != nil {
		t.Abort(ctx)
	}

	if cancelled {
		if state, _ := d.State(); state == domain.StatePaused {
			if err := o.hv.Resume(ctx, d, domain.RunningMigrationCanceled); err != nil {
				return err
			}
		}

		s.SetPhase(domain.PhaseAborted)
		d.SetMigrationSession(nil)

		slog.InfoContext(ctx, "migration_cancelled", "domain", name, "session", s.ID.String())

		return nil
	}

	if phase := s.Phase(); phase != domain.PhasePerformed {
		return fmt.Errorf("%w: cannot confirm a migration in phase %s", ErrPhaseOrder, phase)
	}

	if err := o.hv.Stop(ctx, d, domain.ShutoffMigrated); err != nil {
		return err
	}

	s.SetPhase(domain.PhaseConfirmed)
	d.SetMigrationSession(nil)
	o.list.RemoveInactive(d)

	slog.InfoContext(ctx, "migration_confirmed", "domain", name, "session", s.ID.String())

	return nil
}
