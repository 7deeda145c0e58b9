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

package hypervisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/pkg/chremote"
	"github.com/alexandremahdhaoui/chmigrate/pkg/process"
	"github.com/alexandremahdhaoui/chmigrate/pkg/relay"
)

var (
	// ErrStart is returned when the hypervisor process could not be brought up.
	ErrStart = errors.New("failed to start hypervisor")
	// ErrControl is returned when a control command sent to a running hypervisor fails.
	ErrControl = errors.New("hypervisor control command failed")
	// ErrStop is returned when the hypervisor process could not be stopped.
	ErrStop = errors.New("failed to stop hypervisor")

	errNoAPISocket = errors.New("domain has no api socket")
)

const (
	// DefaultBinaryPath is the hypervisor executable used when none is configured.
	DefaultBinaryPath = "cloud-hypervisor"
	// DefaultStateDir holds the api and migration sockets.
	DefaultStateDir = "/run/chmigrate"
	// DefaultStopTimeout bounds the graceful shutdown of a hypervisor process.
	DefaultStopTimeout = 10 * time.Second
)

// ---------------------------------------------------- INTERFACE --------------------------------------------------- //

// Hypervisor starts and drives the hypervisor process backing a domain.
type Hypervisor interface {
	// StartPaused spawns a hypervisor process with no guest for d, ready to receive an incoming
	// migration. d is left Paused with reason PausedMigration.
	StartPaused(ctx context.Context, d *domain.Domain) error
	// FinishStartup completes the startup of a domain whose state was received. The guest runs
	// when startRunning is true and stays paused otherwise, and the given reason is recorded.
	FinishStartup(
		ctx context.Context,
		d *domain.Domain,
		startRunning bool,
		runningReason domain.RunningReason,
		pausedReason domain.PausedReason,
	) error
	// Resume resumes the guest of d.
	Resume(ctx context.Context, d *domain.Domain, reason domain.RunningReason) error
	// Stop shuts the hypervisor process of d down, killing it when it does not exit in time.
	Stop(ctx context.Context, d *domain.Domain, reason domain.ShutoffReason) error
	// APISocketPath returns the api socket of the hypervisor backing the domain called name.
	APISocketPath(name string) string
}

// --------------------------------------------------- CONSTRUCTORS ------------------------------------------------- //

// Option configures the Cloud Hypervisor implementation.
type Option func(*cloudHypervisor)

// WithStateDir sets the directory holding the api sockets.
func WithStateDir(dir string) Option {
	return func(c *cloudHypervisor) {
		c.stateDir = dir
	}
}

// WithBinaryPath sets the hypervisor executable.
func WithBinaryPath(path string) Option {
	return func(c *cloudHypervisor) {
		c.binaryPath = path
	}
}

// WithRemotePath sets the control utility.
func WithRemotePath(path string) Option {
	return func(c *cloudHypervisor) {
		c.remotePath = path
	}
}

// WithSocketWait bounds the wait for the api socket.
func WithSocketWait(opts relay.WaitOptions) Option {
	return func(c *cloudHypervisor) {
		c.wait = opts
	}
}

// WithStopTimeout bounds the graceful shutdown.
func WithStopTimeout(d time.Duration) Option {
	return func(c *cloudHypervisor) {
		c.stopTimeout = d
	}
}

// New returns a Hypervisor driving Cloud Hypervisor processes spawned with runner.
func New(runner process.Runner, opts ...Option) Hypervisor {
	c := &cloudHypervisor{
		runner:      runner,
		stateDir:    DefaultStateDir,
		binaryPath:  DefaultBinaryPath,
		remotePath:  chremote.DefaultPath,
		wait:        relay.DefaultWaitOptions(),
		stopTimeout: DefaultStopTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ------------------------------------------------ CLOUD HYPERVISOR ------------------------------------------------ //

type cloudHypervisor struct {
	runner      process.Runner
	stateDir    string
	binaryPath  string
	remotePath  string
	wait        relay.WaitOptions
	stopTimeout time.Duration
}

func (c *cloudHypervisor) APISocketPath(name string) string {
	return filepath.Join(c.stateDir, name+"-socket")
}

func (c *cloudHypervisor) StartPaused(ctx context.Context, d *domain.Domain) error {
	name := d.Name()
	socket := c.APISocketPath(name)

	if err := relay.RemoveStaleSocket(socket); err != nil {
		return errors.Join(err, ErrStart)
	}

	spec := process.Spec{
		Name: "cloud-hypervisor",
		Path: c.binaryPath,
		Args: []string{"--api-socket", "path=" + socket},
	}

	h, err := c.runner.Start(ctx, spec)
	if err != nil {
		return errors.Join(err, ErrStart)
	}

	waitOpts := c.wait
	waitOpts.Check = func() error {
		if h.Exited() {
			return fmt.Errorf("%w: %s", relay.ErrExitedBeforeReady, spec.Name)
		}
		return nil
	}

	if err := relay.WaitForLocalSocket(ctx, socket, waitOpts); err != nil {
		_ = h.Kill()
		_ = relay.RemoveStaleSocket(socket)
		return errors.Join(err, ErrStart)
	}

	d.SetAPISocket(socket)
	d.SetVMM(h)
	d.SetState(domain.StatePaused, int(domain.PausedMigration))

	slog.InfoContext(ctx, "hypervisor_started", "domain", name, "api_socket", socket, "pid", h.PID())

	return nil
}

func (c *cloudHypervisor) FinishStartup(
	ctx context.Context,
	d *domain.Domain,
	startRunning bool,
	runningReason domain.RunningReason,
	pausedReason domain.PausedReason,
) error {
	if !startRunning {
		d.SetState(domain.StatePaused, int(pausedReason))
		return nil
	}

	return c.Resume(ctx, d, runningReason)
}

func (c *cloudHypervisor) Resume(ctx context.Context, d *domain.Domain, reason domain.RunningReason) error {
	remote, err := c.remote(d)
	if err != nil {
		return errors.Join(err, ErrControl)
	}

	if err := process.Run(ctx, c.runner, remote.ResumeCommand()); err != nil {
		return errors.Join(err, ErrControl)
	}

	d.SetState(domain.StateRunning, int(reason))
	slog.InfoContext(ctx, "hypervisor_resumed", "domain", d.Name())

	return nil
}

func (c *cloudHypervisor) Stop(ctx context.Context, d *domain.Domain, reason domain.ShutoffReason) error {
	var errs []error

	stopCtx, cancel := context.WithTimeout(ctx, c.stopTimeout)
	defer cancel()

	if remote, err := c.remote(d); err == nil {
		if err := process.Run(stopCtx, c.runner, remote.ShutdownVMMCommand()); err != nil {
			slog.WarnContext(ctx, "hypervisor_shutdown_failed", "domain", d.Name(), "error", err.Error())
		}
	}

	if vmm := d.VMM(); vmm != nil {
		if _, err := vmm.Wait(stopCtx); err != nil {
			slog.WarnContext(ctx, "hypervisor_kill", "domain", d.Name(), "pid", vmm.PID())

			if err := vmm.Kill(); err != nil {
				errs = append(errs, err)
			}
		}
		d.SetVMM(nil)
	}

	if socket := d.APISocket(); socket != "" {
		if err := relay.RemoveStaleSocket(socket); err != nil {
			errs = append(errs, err)
		}
		d.SetAPISocket("")
	}

	d.SetState(domain.StateShutoff, int(reason))

	if len(errs) > 0 {
		return errors.Join(append(errs, ErrStop)...)
	}

	slog.InfoContext(ctx, "hypervisor_stopped", "domain", d.Name(), "reason", int(reason))

	return nil
}

func (c *cloudHypervisor) remote(d *domain.Domain) (chremote.Remote, error) {
	socket := d.APISocket()
	if socket == "" {
		return chremote.Remote{}, fmt.Errorf("%w: %s", errNoAPISocket, d.Name())
	}
	return chremote.New(c.remotePath, socket), nil
}
