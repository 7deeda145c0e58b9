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

package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"k8s.io/apimachinery/pkg/util/wait"
)

var (
	// ErrSocketWaitTimeout is returned when the local socket did not appear before the deadline.
	ErrSocketWaitTimeout = errors.New("timed out waiting for local socket")

	errSocketPathRequired = errors.New("socket path is required")
)

const (
	DefaultPollInterval    = 10 * time.Millisecond
	DefaultMaxPollInterval = 1 * time.Second
	DefaultSocketTimeout   = 30 * time.Second
)

// WaitOptions bounds WaitForLocalSocket.
type WaitOptions struct {
	// PollInterval is the first delay between two checks. It doubles on every check up to
	// MaxPollInterval.
	PollInterval    time.Duration
	MaxPollInterval time.Duration
	// Timeout is the overall deadline.
	Timeout time.Duration
	// Check is called before every check; a non-nil error aborts the wait with that error.
	// It is used to stop waiting for a socket whose owner already exited.
	Check func() error
}

// DefaultWaitOptions returns the options used when none are configured.
func DefaultWaitOptions() WaitOptions {
	return WaitOptions{
		PollInterval:    DefaultPollInterval,
		MaxPollInterval: DefaultMaxPollInterval,
		Timeout:         DefaultSocketTimeout,
	}
}

func (o WaitOptions) withDefaults() WaitOptions {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.MaxPollInterval < o.PollInterval {
		o.MaxPollInterval = max(o.PollInterval, DefaultMaxPollInterval)
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultSocketTimeout
	}
	return o
}

// WaitForLocalSocket blocks until a filesystem entry exists at path.
//
// Changes to the parent directory are watched with fsnotify so that the socket is usually
// observed as soon as it is bound; the exponential backoff poll covers filesystems without
// inotify support. The wait never exceeds opts.Timeout.
func WaitForLocalSocket(ctx context.Context, path string, opts WaitOptions) error {
	if path == "" {
		return errSocketPathRequired
	}

	opts = opts.withDefaults()

	waitCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	if watcher, err := fsnotify.NewWatcher(); err == nil {
		defer func() { _ = watcher.Close() }()

		if err := watcher.Add(filepath.Dir(path)); err == nil {
			events, errs = watcher.Events, watcher.Errors
		} else {
			slog.DebugContext(ctx, "socket_watch_unavailable", "path", path, "error", err.Error())
		}
	}

	backoff := wait.Backoff{
		Duration: opts.PollInterval,
		Factor:   2,
		Cap:      opts.MaxPollInterval,
		Steps:    math.MaxInt32,
	}

	start := time.Now()

	// the poll interval only grows when the timer fires; watch events trigger an extra check.
	timer := time.NewTimer(backoff.Step())
	defer timer.Stop()

	for {
		if opts.Check != nil {
			if err := opts.Check(); err != nil {
				return err
			}
		}

		if exists(path) {
			slog.DebugContext(ctx, "socket_ready", "path", path, "waited", time.Since(start).String())
			return nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}

			return fmt.Errorf("%w: %s after %s", ErrSocketWaitTimeout, path, opts.Timeout)
		case _, ok := <-events:
			if !ok {
				events = nil
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			slog.DebugContext(ctx, "socket_watch_error", "path", path, "error", err.Error())
		case <-timer.C:
			timer.Reset(backoff.Step())
		}
	}
}

// RemoveStaleSocket removes a leftover entry at path. A missing path is not an error.
func RemoveStaleSocket(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing stale socket %s: %w", path, err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
