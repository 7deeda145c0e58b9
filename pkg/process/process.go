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

// Package process spawns, waits for and kills the external commands chmigrate drives:
// relay forwarders, hypervisor control commands and the hypervisor itself.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/alexandremahdhaoui/chmigrate/pkg/execcontext"
)

var (
	// ErrSpawn is returned when the executable cannot be started.
	ErrSpawn = errors.New("failed to spawn process")
	// ErrProcessWait is returned when waiting for a process fails or the process was terminated by a signal.
	ErrProcessWait = errors.New("failed to wait for process")
	// ErrNonZeroExit is returned by Run and CheckExit when a process exits with a non-zero status.
	ErrNonZeroExit = errors.New("process exited with non-zero status")
	// ErrKill is returned when a process could not be signaled.
	ErrKill = errors.New("failed to kill process")

	errEmptyPath = errors.New("spec path must not be empty")
)

// ---------------------------------------------------- INTERFACE --------------------------------------------------- //

// Spec describes a command to run.
type Spec struct {
	// Name identifies the process in logs, e.g. "forwarder" or "receive-migration".
	Name string
	// Path is the executable, resolved through $PATH when it contains no separator.
	Path string
	Args []string
	// Stdout and Stderr default to discarding the output.
	Stdout io.Writer
	Stderr io.Writer
}

// ExitStatus is the outcome of a process that ran to completion.
type ExitStatus struct {
	Code int
}

// Success reports whether the process exited with status 0.
func (s ExitStatus) Success() bool {
	return s.Code == 0
}

// CheckExit turns a non-zero ExitStatus into an error.
func CheckExit(spec Spec, status ExitStatus) error {
	if status.Success() {
		return nil
	}
	return fmt.Errorf("%w: %s exited with status %d", ErrNonZeroExit, spec.Name, status.Code)
}

// Handle is a started process.
type Handle interface {
	// Spec returns the spec the process was started from.
	Spec() Spec
	// PID returns the OS process id.
	PID() int
	// Wait blocks until the process exits or ctx is done. It may be called several times and
	// from several goroutines; every call observes the same outcome. When ctx is done first, the
	// process keeps running and ctx.Err() is returned.
	Wait(ctx context.Context) (ExitStatus, error)
	// Kill terminates the process. It is best-effort: killing an exited process is not an error.
	Kill() error
	// Exited reports whether the process has already exited.
	Exited() bool
}

// Runner starts processes.
type Runner interface {
	// Start launches the process described by spec without waiting for it.
	Start(ctx context.Context, spec Spec) (Handle, error)
}

// Run starts spec and waits for it to exit successfully.
func Run(ctx context.Context, runner Runner, spec Spec) error {
	h, err := runner.Start(ctx, spec)
	if err != nil {
		return err
	}

	status, err := h.Wait(ctx)
	if err != nil {
		_ = h.Kill()
		return err
	}

	return CheckExit(spec, status)
}

// --------------------------------------------------- CONSTRUCTORS ------------------------------------------------- //

// NewRunner returns a Runner executing commands on the local host with execCtx applied.
func NewRunner(execCtx execcontext.Context) Runner {
	if execCtx == nil {
		execCtx = execcontext.Empty()
	}
	return &runner{execCtx: execCtx}
}

// ----------------------------------------------------- RUNNER ----------------------------------------------------- //

type runner struct {
	execCtx execcontext.Context
}

func (r *runner) Start(ctx context.Context, spec Spec) (Handle, error) {
	if spec.Path == "" {
		return nil, errors.Join(errEmptyPath, ErrSpawn)
	}

	cmd := execcontext.Command(r.execCtx, spec.Path, spec.Args...)
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr
	// Put the child in its own process group so that signals sent to the daemon are not
	// forwarded to relays that are still draining a migration stream.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return nil, errors.Join(fmt.Errorf("starting %s: %w", spec.Name, err), ErrSpawn)
	}

	slog.DebugContext(ctx, "process_started",
		"name", spec.Name,
		"pid", cmd.Process.Pid,
		"cmd", execcontext.FormatCmd(r.execCtx, append([]string{spec.Path}, spec.Args...)...),
	)

	h := &handle{
		spec: spec,
		cmd:  cmd,
		done: make(chan struct{}),
	}

	go h.reap()

	return h, nil
}

// ----------------------------------------------------- HANDLE ----------------------------------------------------- //

type handle struct {
	spec Spec
	cmd  *exec.Cmd

	done   chan struct{}
	status ExitStatus
	err    error

	killOnce sync.Once
	killErr  error
}

// reap is the only caller of cmd.Wait.
func (h *handle) reap() {
	defer close(h.done)

	err := h.cmd.Wait()
	if err == nil {
		h.status = ExitStatus{Code: 0}
		return
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		h.err = errors.Join(err, ErrProcessWait)
		return
	}

	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	if ok && ws.Signaled() {
		h.err = errors.Join(
			fmt.Errorf("%s terminated by signal %s", h.spec.Name, ws.Signal()),
			ErrProcessWait,
		)
		return
	}

	h.status = ExitStatus{Code: exitErr.ExitCode()}
}

func (h *handle) Spec() Spec {
	return h.spec
}

func (h *handle) PID() int {
	return h.cmd.Process.Pid
}

func (h *handle) Wait(ctx context.Context) (ExitStatus, error) {
	select {
	case <-h.done:
		return h.status, h.err
	case <-ctx.Done():
		return ExitStatus{}, ctx.Err()
	}
}

func (h *handle) Exited() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

func (h *handle) Kill() error {
	if h.Exited() {
		return nil
	}

	h.killOnce.Do(func() {
		// The process leads its own group: children it forked, e.g. by a wrapper script, are
		// killed with it.
		err := syscall.Kill(-h.PID(), syscall.SIGKILL)
		if err == nil || errors.Is(err, syscall.ESRCH) {
			return
		}

		if err := h.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			h.killErr = errors.Join(fmt.Errorf("killing %s (pid %d): %w", h.spec.Name, h.PID(), err), ErrKill)
		}
	})

	return h.killErr
}
