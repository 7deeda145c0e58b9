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

package gracefulshutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultHookTimeout bounds the hooks run by Shutdown.
const DefaultHookTimeout = 30 * time.Second

// Hook releases a resource when the process shuts down.
type Hook func(ctx context.Context) error

type namedHook struct {
	name string
	fn   Hook
}

// GracefulShutdown owns the lifetime of the process: a context cancelled on SIGTERM or SIGINT,
// a wait group of the goroutines that must finish before exiting, and the hooks run once they
// did.
type GracefulShutdown struct {
	ctx    context.Context
	cancel context.CancelFunc
	name   string

	once      sync.Once
	readyOnce sync.Once
	wg        *sync.WaitGroup

	// ready is closed by Ready, once every WaitGroup.Add call was made.
	ready chan struct{}

	hooksMu     sync.Mutex
	hooks       []namedHook
	hookTimeout time.Duration

	exitFunc func(int)
}

// NewWithExit creates a GracefulShutdown calling exitFunc instead of os.Exit.
func NewWithExit(name string, exitFunc func(int)) *GracefulShutdown {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)

	gs := &GracefulShutdown{
		ctx:         ctx,
		cancel:      cancel,
		name:        name,
		wg:          &sync.WaitGroup{},
		ready:       make(chan struct{}),
		hookTimeout: DefaultHookTimeout,
		exitFunc:    exitFunc,
	}

	// Shutdown runs at least once when the context is done.
	go func() {
		select {
		case <-gs.ready:
			<-ctx.Done()
		case <-ctx.Done():
			slog.Warn("shutdown_before_ready", "name", name)
		}
		gs.Shutdown(0)
	}()

	return gs
}

// New creates a GracefulShutdown exiting the process with os.Exit.
func New(name string) *GracefulShutdown {
	return NewWithExit(name, os.Exit)
}

// SetHookTimeout changes the deadline given to the hooks.
func (s *GracefulShutdown) SetHookTimeout(d time.Duration) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()

	s.hookTimeout = d
}

// OnShutdown registers a hook. Hooks run in reverse registration order, after every goroutine
// of the wait group is done.
func (s *GracefulShutdown) OnShutdown(name string, fn Hook) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()

	s.hooks = append(s.hooks, namedHook{name: name, fn: fn})
}

// Shutdown cancels the context, waits for the wait group, runs the hooks and exits with
// exitCode. Only the first call has an effect; it blocks until the hooks returned.
func (s *GracefulShutdown) Shutdown(exitCode int) {
	s.once.Do(func() {
		slog.InfoContext(s.ctx, "shutting_down", "name", s.name, "exit_code", exitCode)

		s.cancel()
		s.wg.Wait()

		if s.runHooks() && exitCode == 0 {
			exitCode = 1
		}

		s.exitFunc(exitCode)
	})
}

// runHooks reports whether a hook failed.
func (s *GracefulShutdown) runHooks() bool {
	s.hooksMu.Lock()
	hooks := append([]namedHook(nil), s.hooks...)
	timeout := s.hookTimeout
	s.hooksMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	failed := false

	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i].fn(ctx); err != nil {
			slog.ErrorContext(ctx, "shutdown_hook_failed", "hook", hooks[i].name, "error", err.Error())
			failed = true
		}
	}

	return failed
}

// Context returns the context cancelled when the shutdown starts.
func (s *GracefulShutdown) Context() context.Context {
	return s.ctx
}

// CancelFunc returns the function starting the shutdown.
func (s *GracefulShutdown) CancelFunc() context.CancelFunc {
	return s.cancel
}

// WaitGroup returns the wait group awaited by Shutdown.
func (s *GracefulShutdown) WaitGroup() *sync.WaitGroup {
	return s.wg
}

// Ready signals that every WaitGroup.Add call was made. It must be called before the context
// is cancelled, otherwise a warning is logged. Only the first call has an effect.
func (s *GracefulShutdown) Ready() {
	s.readyOnce.Do(func() {
		close(s.ready)
	})
}
