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
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/clock"

	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/internal/hypervisor"
	"github.com/alexandremahdhaoui/chmigrate/pkg/chremote"
	"github.com/alexandremahdhaoui/chmigrate/pkg/portalloc"
	"github.com/alexandremahdhaoui/chmigrate/pkg/process"
	"github.com/alexandremahdhaoui/chmigrate/pkg/relay"
)

const (
	PhaseBegin   = "begin"
	PhasePrepare = "prepare"
	PhasePerform = "perform"
	PhaseFinish  = "finish"
	PhaseConfirm = "confirm"
	PhaseAbort   = "abort"

	receiveSocketSuffix = "-migr-recv"
	sendSocketSuffix    = "-migr-send"
)

// ---------------------------------------------------- INTERFACE --------------------------------------------------- //

// BeginResult is returned by SrcBegin.
type BeginResult struct {
	// Definition is the domain definition document to send to the destination.
	Definition string
	Cookie     []byte
}

// PrepareRequest is the input of DstPrepare.
type PrepareRequest struct {
	Definition string
	Cookie     []byte
	// Name renames the domain on the destination when set.
	Name string
}

// PrepareResult is returned by DstPrepare.
type PrepareResult struct {
	// URI is the endpoint the source must send the migration stream to.
	URI     string
	Session uuid.UUID
	Domain  domain.Handle
	Cookie  []byte
}

// PerformRequest is the input of SrcPerform.
type PerformRequest struct {
	Name   string
	URI    string
	Cookie []byte
}

// FinishRequest is the input of DstFinish.
type FinishRequest struct {
	Name          string
	Cookie        []byte
	StartRunning  bool
	RunningReason domain.RunningReason
	PausedReason  domain.PausedReason
}

// Orchestrator runs the phases of a live migration. Every phase holds a Modify job on the
// domain for its whole duration and releases every resource it acquired when it fails.
type Orchestrator interface {
	// SrcBegin validates that the named domain can be migrated and returns its definition.
	// override replaces the live definition in the returned document when not empty.
	SrcBegin(ctx context.Context, name, override string) (BeginResult, error)
	// DstPrepare registers the incoming domain, starts its hypervisor paused and opens the
	// relay receiving the migration stream.
	DstPrepare(ctx context.Context, req PrepareRequest) (PrepareResult, error)
	// SrcPerform streams the state of the domain to the URI returned by DstPrepare.
	SrcPerform(ctx context.Context, req PerformRequest) ([]byte, error)
	// DstFinish waits for the incoming stream to be drained and starts the domain.
	DstFinish(ctx context.Context, req FinishRequest) (domain.Handle, error)
	// SrcConfirm finalizes the source. When cancelled is false the source hypervisor is stopped
	// and the transient domain deregistered, otherwise the source domain is resumed.
	SrcConfirm(ctx context.Context, name string, cancelled bool) error
	// DstAbort tears an incoming migration down. The relay is killed, the port released, the
	// hypervisor stopped and the domain deregistered.
	DstAbort(ctx context.Context, name string) error
}

// --------------------------------------------------- CONSTRUCTORS ------------------------------------------------- //

// Option configures an Orchestrator.
type Option func(*orchestrator)

// WithClock sets the clock used to time phases.
func WithClock(c clock.Clock) Option {
	return func(o *orchestrator) {
		o.clock = c
	}
}

// WithHostname overrides the hostname advertised in migration URIs.
func WithHostname(hostname string) Option {
	return func(o *orchestrator) {
		if hostname != "" {
			o.hostname = func() (string, error) { return hostname, nil }
		}
	}
}

// WithStateDir sets the directory holding the migration sockets.
func WithStateDir(dir string) Option {
	return func(o *orchestrator) {
		o.stateDir = dir
	}
}

// WithRemotePath sets the hypervisor control utility.
func WithRemotePath(path string) Option {
	return func(o *orchestrator) {
		o.remotePath = path
	}
}

// WithForwarderPath sets the relay forwarder executable.
func WithForwarderPath(path string) Option {
	return func(o *orchestrator) {
		o.forwarderPath = path
	}
}

// WithSocketWait bounds the wait for relay sockets.
func WithSocketWait(opts relay.WaitOptions) Option {
	return func(o *orchestrator) {
		o.socketWait = opts
	}
}

// WithMetrics records phase and job metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *orchestrator) {
		o.metrics = m
	}
}

// New returns an Orchestrator for the domains of list.
func New(
	list *domain.List,
	ports portalloc.Allocator,
	hv hypervisor.Hypervisor,
	runner process.Runner,
	opts ...Option,
) Orchestrator {
	o := &orchestrator{
		list:          list,
		ports:         ports,
		hv:            hv,
		runner:        runner,
		clock:         clock.RealClock{},
		hostname:      os.Hostname,
		stateDir:      hypervisor.DefaultStateDir,
		remotePath:    chremote.DefaultPath,
		forwarderPath: relay.DefaultForwarderPath,
		socketWait:    relay.DefaultWaitOptions(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

type orchestrator struct {
	list   *domain.List
	ports  portalloc.Allocator
	hv     hypervisor.Hypervisor
	runner process.Runner

	clock         clock.Clock
	hostname      func() (string, error)
	stateDir      string
	remotePath    string
	forwarderPath string
	socketWait    relay.WaitOptions
	metrics       *Metrics
}

// ----------------------------------------------------- HELPERS ---------------------------------------------------- //

func (o *orchestrator) lookup(name string) (*domain.Domain, error) {
	return o.list.Get(name)
}

func (o *orchestrator) beginJob(ctx context.Context, d *domain.Domain) (*domain.JobLease, error) {
	start := o.clock.Now()
	lease, err := d.Job().BeginJob(ctx, domain.JobModify, domain.OwnerFromContext(ctx))
	o.metrics.ObserveJobWait(domain.JobModify, o.clock.Since(start), err)

	return lease, err
}

// observe logs and records the outcome of a phase. It is meant to be deferred with a pointer
// to the named error result of the phase.
func (o *orchestrator) observe(ctx context.Context, phase, name string, start time.Time, err *error) {
	elapsed := o.clock.Since(start)
	o.metrics.observePhase(phase, elapsed, *err)

	if *err != nil {
		slog.ErrorContext(ctx, "migration_phase_failed",
			"phase", phase,
			"domain", name,
			"duration", elapsed.String(),
			"error", (*err).Error(),
		)
		return
	}

	slog.InfoContext(ctx, "migration_phase_succeeded",
		"phase", phase,
		"domain", name,
		"duration", elapsed.String(),
	)
}

func (o *orchestrator) socketPath(name, suffix string) string {
	return filepath.Join(o.stateDir, name+suffix)
}

func (o *orchestrator) releasePort(ctx context.Context, s *domain.MigrationSession) {
	if err := s.ReleasePort(); err != nil {
		slog.WarnContext(ctx, "migration_port_release_failed", "port", s.Port(), "error", err.Error())
	}
	o.metrics.setLeasedPorts(o.ports.InUse())
}

// interrupted returns err joined with domain.ErrJobPreempted when a destroy was granted over
// lease. With a nil err, it only returns an error when the lease was preempted.
func interrupted(lease *domain.JobLease, name string, err error) error {
	if !lease.Preempted() {
		return err
	}
	return errors.Join(err, fmt.Errorf("%w: domain %q", domain.ErrJobPreempted, name))
}
