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
	"fmt"
	"log/slog"

	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/pkg/chremote"
	"github.com/alexandremahdhaoui/chmigrate/pkg/cookie"
	"github.com/alexandremahdhaoui/chmigrate/pkg/relay"
)

func (o *orchestrator) DstPrepare(ctx context.Context, req PrepareRequest) (_ PrepareResult, err error) {
	name, start := req.Name, o.clock.Now()
	defer func() { o.observe(ctx, PhasePrepare, name, start, &err) }()

	cookie.Eat(req.Cookie)

	def, err := domain.ParseDefinition(req.Definition)
	if err != nil {
		return PrepareResult{}, err
	}

	originalName := def.Name
	if req.Name != "" {
		def.Name = req.Name
	}
	name = def.Name

	hostname, err := o.hostname()
	if err != nil {
		return PrepareResult{}, fmt.Errorf("resolving hostname: %w", err)
	}

	d, err := o.list.Add(def, domain.AddLive|domain.AddCheckLive|domain.AddReserve)
	if err != nil {
		return PrepareResult{}, err
	}
	defer o.list.Unreserve(d)

	lease, err := o.beginJob(ctx, d)
	if err != nil {
		o.list.RemoveInactive(d)
		return PrepareResult{}, err
	}
	defer lease.EndJob()

	jobCtx, cancel := lease.Context(ctx)
	defer cancel()

	if cur, err := o.list.Get(name); err != nil || cur != d {
		return PrepareResult{}, fmt.Errorf("%w: domain %q was removed while waiting for its job",
			domain.ErrRegistration, name)
	}

	if d.IsActive() || d.MigrationSession() != nil {
		return PrepareResult{}, fmt.Errorf("%w: domain %q is already active", domain.ErrRegistration, name)
	}

	s := domain.NewMigrationSession(domain.RoleDestination, o.clock.Now())
	s.DestHostname = hostname
	if originalName != name {
		s.OriginalName = originalName
	}

	// Published before anything is leased or spawned, so that a destroy granted meanwhile
	// finds the session and tears it down.
	d.SetMigrationSession(s)

	var hvStarted bool

	defer func() {
		if err == nil {
			return
		}

		rctx := context.WithoutCancel(ctx)

		s.Abort(rctx)
		o.releasePort(rctx, s)

		if hvStarted {
			if stopErr := o.hv.Stop(rctx, d, domain.ShutoffFailed); stopErr != nil {
				slog.WarnContext(rctx, "migration_rollback_stop_failed", "domain", name, "error", stopErr.Error())
			}
		}

		d.SetMigrationSession(nil)
		d.SetState(domain.StateShutoff, int(domain.ShutoffFailed))
		o.list.RemoveInactive(d)

		slog.InfoContext(rctx, "migration_prepare_rolled_back", "domain", name)
	}()

	port, err := o.ports.Acquire()
	if err != nil {
		return PrepareResult{}, err
	}
	s.LeasePort(port, o.ports.Release)
	o.metrics.setLeasedPorts(o.ports.InUse())

	if err := interrupted(lease, name, nil); err != nil {
		return PrepareResult{}, err
	}

	if err := interrupted(lease, name, o.hv.StartPaused(jobCtx, d)); err != nil {
		// StartPaused cleans up after itself when it fails. A preemption noticed after it
		// succeeded leaves the domain active.
		hvStarted = d.IsActive()
		return PrepareResult{}, err
	}
	hvStarted = true

	socket := o.socketPath(name, receiveSocketSuffix)
	remote := chremote.New(o.remotePath, d.APISocket())

	tunnel, err := relay.New(o.runner, relay.Config{
		ListenSpec:      relay.TCPListen(port),
		ConnectSpec:     relay.UnixClient(socket),
		ReadySocketPath: socket,
		Control:         remote.ReceiveMigrationCommand(socket),
		Order:           relay.ControlFirst,
		ForwarderPath:   o.forwarderPath,
		Wait:            o.socketWait,
	})
	if err != nil {
		return PrepareResult{}, err
	}
	s.AttachTunnel(ctx, tunnel, socket)

	if err := interrupted(lease, name, tunnel.Start(jobCtx)); err != nil {
		return PrepareResult{}, err
	}

	var out []byte
	if err := cookie.BakeTo(cookie.New(), &out); err != nil {
		return PrepareResult{}, err
	}

	s.SetURI(FormatURI(hostname, port))
	s.SetPhase(domain.PhasePrepared)

	// the final check happens after the session is committed: a destroy granted from now
	// on finds a prepared session.
	if err := interrupted(lease, name, nil); err != nil {
		return PrepareResult{}, err
	}

	slog.InfoContext(ctx, "migration_prepared",
		"domain", name,
		"session", s.ID.String(),
		"uri", s.URI(),
		"socket", socket,
	)

	return PrepareResult{
		URI:     s.URI(),
		Session: s.ID,
		Domain:  d.Handle(),
		Cookie:  out,
	}, nil
}

func (o *orchestrator) DstFinish(ctx context.Context, req FinishRequest) (_ domain.Handle, err error) {
	defer o.observe(ctx, PhaseFinish, req.Name, o.clock.Now(), &err)

	cookie.Eat(req.Cookie)

	d, err := o.lookup(req.Name)
	if err != nil {
		return domain.Handle{}, err
	}

	lease, err := o.beginJob(ctx, d)
	if err != nil {
		return domain.Handle{}, err
	}
	defer lease.EndJob()

	jobCtx, cancel := lease.Context(ctx)
	defer cancel()

	s := d.MigrationSession()
	if s == nil || s.Role != domain.RoleDestination {
		return domain.Handle{}, fmt.Errorf("%w: domain %q has no incoming migration", ErrNoMigrationSession, req.Name)
	}

	if phase := s.Phase(); phase != domain.PhasePrepared {
		return domain.Handle{}, fmt.Errorf("%w: cannot finish a migration in phase %s", ErrPhaseOrder, phase)
	}

	tunnel := s.Tunnel()
	if tunnel == nil {
		return domain.Handle{}, fmt.Errorf("%w: domain %q has no relay", ErrNoMigrationSession, req.Name)
	}

	// The stream is over once the relay is joined, whatever its outcome.
	defer o.releasePort(ctx, s)

	if _, err := tunnel.Join(jobCtx); err != nil {
		o.failIncoming(ctx, d, s)
		return domain.Handle{}, interrupted(lease, req.Name, err)
	}

	if err := interrupted(lease, req.Name, nil); err != nil {
		o.failIncoming(ctx, d, s)
		return domain.Handle{}, err
	}

	if err := o.hv.FinishStartup(jobCtx, d, req.StartRunning, req.RunningReason, req.PausedReason); err != nil {
		o.failIncoming(ctx, d, s)
		return domain.Handle{}, interrupted(lease, req.Name, err)
	}

	s.SetPhase(domain.PhaseFinished)
	d.SetMigrationSession(nil)

	h := d.Handle()
	state, reason := d.State()

	slog.InfoContext(ctx, "migration_finished",
		"domain", req.Name,
		"session", s.ID.String(),
		"state", state.String(),
		"reason", reason,
	)

	return h, nil
}

// failIncoming leaves a domain whose incoming stream failed in an error state. Its hypervisor
// and registration are kept until DstAbort or a destroy cleans them up.
func (o *orchestrator) failIncoming(ctx context.Context, d *domain.Domain, s *domain.MigrationSession) {
	s.Abort(context.WithoutCancel(ctx))
	d.SetState(domain.StateCrashed, int(domain.CrashedMigrationFailed))
}

func (o *orchestrator) DstAbort(ctx context.Context, name string) (err error) {
	defer o.observe(ctx, PhaseAbort, name, o.clock.Now(), &err)

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
	if s == nil || s.Role != domain.RoleDestination {
		return fmt.Errorf("%w: domain %q has no incoming migration", ErrNoMigrationSession, name)
	}

	s.Abort(ctx)
	o.releasePort(ctx, s)

	if err := o.hv.Stop(ctx, d, domain.ShutoffFailed); err != nil {
		return err
	}

	d.SetMigrationSession(nil)
	o.list.RemoveInactive(d)

	slog.InfoContext(ctx, "migration_aborted", "domain", name, "session", s.ID.String())

	return nil
}
