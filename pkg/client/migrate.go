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

package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexandremahdhaoui/chmigrate/pkg/api"
)

// ErrMigrate is returned by Migrate when a phase fails. The error also carries the error of
// the failed phase and of every compensation step that failed.
var ErrMigrate = errors.New("migration failed")

// Reason codes recorded on the destination domain once the migration completes. They match
// the running and paused reasons of the domain state model.
const (
	RunningReasonMigrated = 2
	PausedReasonMigration = 2
)

// MigrateOptions tune a peer-to-peer migration.
type MigrateOptions struct {
	// DestinationName renames the domain on the destination.
	DestinationName string
	// Definition replaces the live definition sent to the destination.
	Definition string
	// Paused leaves the domain paused on the destination.
	Paused bool
	// CompensationTimeout bounds the calls rolling back a failed migration. Defaults to
	// DefaultCompensationTimeout.
	CompensationTimeout time.Duration
}

// DefaultCompensationTimeout bounds the calls rolling back a failed migration. They run
// even when the context passed to Migrate is done, which is the usual cause of the failure.
const DefaultCompensationTimeout = 2 * time.Minute

// compensate runs the rollback steps of a failed migration with a context detached from the
// cancellation of ctx.
func (o MigrateOptions) compensate(ctx context.Context, steps ...func(context.Context) error) error {
	timeout := o.CompensationTimeout
	if timeout <= 0 {
		timeout = DefaultCompensationTimeout
	}

	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	errs := make([]error, 0, len(steps))
	for _, step := range steps {
		errs = append(errs, step(cctx))
	}

	return errors.Join(errs...)
}

// Migrate moves the running domain name from src to dst.
//
// The phases run in order: Begin on src, Prepare on dst, Perform on src, Finish on dst and
// Confirm on src. A failed Prepare cancels the source session. A failed Perform aborts the
// destination and cancels the source, which resumes the domain. A failed Finish does the
// same. The returned handle is the domain on dst.
func Migrate(ctx context.Context, src, dst Client, name string, opts MigrateOptions) (api.Handle, error) {
	log := slog.With("domain", name, "source", src.Endpoint(), "destination", dst.Endpoint())

	begin, err := src.Begin(ctx, name, api.BeginRequest{Override: opts.Definition})
	if err != nil {
		return api.Handle{}, phaseError(api.PhaseBegin, err)
	}
	log.DebugContext(ctx, "migration_phase_done", "phase", api.PhaseBegin)

	prepared, err := dst.Prepare(ctx, api.PrepareRequest{
		Definition: begin.Definition,
		Cookie:     begin.Cookie,
		Name:       opts.DestinationName,
	})
	if err != nil {
		return api.Handle{}, errors.Join(
			phaseError(api.PhasePrepare, err),
			opts.compensate(ctx, cancelSource(src, name)),
		)
	}

	dstName := prepared.Domain.Name
	log = log.With("session", prepared.Session.String(), "uri", prepared.URI)
	log.InfoContext(ctx, "migration_phase_done", "phase", api.PhasePrepare)

	performed, err := src.Perform(ctx, name, api.PerformRequest{URI: prepared.URI, Cookie: prepared.Cookie})
	if err != nil {
		return api.Handle{}, errors.Join(
			phaseError(api.PhasePerform, err),
			opts.compensate(ctx, abortDestination(dst, dstName), cancelSource(src, name)),
		)
	}
	log.InfoContext(ctx, "migration_phase_done", "phase", api.PhasePerform)

	h, err := dst.Finish(ctx, dstName, api.FinishRequest{
		Cookie:        performed.Cookie,
		StartRunning:  !opts.Paused,
		RunningReason: RunningReasonMigrated,
		PausedReason:  PausedReasonMigration,
	})
	if err != nil {
		return api.Handle{}, errors.Join(
			phaseError(api.PhaseFinish, err),
			opts.compensate(ctx, abortDestination(dst, dstName), cancelSource(src, name)),
		)
	}
	log.InfoContext(ctx, "migration_phase_done", "phase", api.PhaseFinish)

	if err := src.Confirm(ctx, name, false); err != nil {
		// The domain runs on dst: the source leftovers are reported, not rolled back.
		return h, phaseError(api.PhaseConfirm, err)
	}
	log.InfoContext(ctx, "migration_completed", "id", h.ID)

	return h, nil
}

func phaseError(phase string, err error) error {
	return errors.Join(fmt.Errorf("%s: %w", phase, err), ErrMigrate)
}

func cancelSource(src Client, name string) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := src.Confirm(ctx, name, true); err != nil {
			return fmt.Errorf("cancelling source: %w", err)
		}
		return nil
	}
}

// abortDestination tolerates a destination that has nothing left to abort.
func abortDestination(dst Client, name string) func(context.Context) error {
	return func(ctx context.Context) error {
		err := dst.Abort(ctx, name)
		if err == nil || IsStatus(err, http.StatusNotFound) || IsStatus(err, http.StatusConflict) {
			return nil
		}
		return fmt.Errorf("aborting destination: %w", err)
	}
}
