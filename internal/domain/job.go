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

package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

var (
	// ErrJobTimeout is returned by BeginJob when the job could not be acquired in time.
	ErrJobTimeout = errors.New("timed out waiting for domain job")
	// ErrJobBusy is returned by BeginJob when the caller gave up waiting before the timeout.
	ErrJobBusy = errors.New("domain job is busy")
	// ErrJobPreempted is the cause of the context of a lease preempted by a Destroy job.
	ErrJobPreempted = errors.New("domain job preempted by destroy")

	errInvalidJobKind = errors.New("invalid job kind")
)

// DefaultJobWaitTimeout bounds how long BeginJob waits for the current holder.
const DefaultJobWaitTimeout = 30 * time.Second

// JobKind is the class of operation holding a domain.
type JobKind int

const (
	JobNone JobKind = iota
	// JobQuery does not change any state.
	JobQuery
	// JobDestroy destroys the domain. It cannot be blocked out by other jobs.
	JobDestroy
	// JobModify may change state.
	JobModify
)

func (k JobKind) String() string {
	switch k {
	case JobNone:
		return "none"
	case JobQuery:
		return "query"
	case JobDestroy:
		return "destroy"
	case JobModify:
		return "modify"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// JobOption configures a Job.
type JobOption func(*Job)

// WithClock sets the clock the wait timeout is measured with.
func WithClock(c clock.Clock) JobOption {
	return func(j *Job) {
		j.clock = c
	}
}

// WithJobWaitTimeout overrides DefaultJobWaitTimeout.
func WithJobWaitTimeout(d time.Duration) JobOption {
	return func(j *Job) {
		if d > 0 {
			j.waitTimeout = d
		}
	}
}

// Job serializes the operations run against one domain.
//
// At most one Query or Modify job is active at a time. A Destroy job has its own slot: it is
// granted while another job is active and it blocks every new acquisition until it ends. Two
// Destroy jobs still exclude each other. The job it is granted over is preempted: its lease
// reports it, and the holder is expected to roll back and release it.
type Job struct {
	clock       clock.Clock
	waitTimeout time.Duration

	mu sync.Mutex

	active      JobKind
	owner       string
	activeSince time.Time
	activeGen   uint64
	activeLease *JobLease

	destroyOwner string
	destroyGen   uint64

	gen uint64
	// released is closed and replaced on every release to wake up all waiters.
	released chan struct{}
}

// NewJob returns an idle Job.
func NewJob(opts ...JobOption) *Job {
	j := &Job{
		clock:       clock.RealClock{},
		waitTimeout: DefaultJobWaitTimeout,
		released:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(j)
	}

	return j
}

// JobLease is the ticket returned by BeginJob.
type JobLease struct {
	job  *Job
	kind JobKind
	gen  uint64
	once sync.Once

	// preempted is closed when a Destroy job is granted over this lease.
	preempted   chan struct{}
	preemptOnce sync.Once
	// done is closed when the lease is released.
	done chan struct{}
	// victim is the lease a Destroy lease preempted, if any.
	victim *JobLease
}

func newJobLease(j *Job, kind JobKind) *JobLease {
	return &JobLease{
		job:       j,
		kind:      kind,
		gen:       j.gen,
		preempted: make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Kind returns the kind the lease was acquired for.
func (l *JobLease) Kind() JobKind {
	return l.kind
}

// Preempted reports whether a Destroy job was granted over the lease.
func (l *JobLease) Preempted() bool {
	select {
	case <-l.preempted:
		return true
	default:
		return false
	}
}

// Context returns a child of parent cancelled with ErrJobPreempted as cause when the lease
// is preempted. The returned cancel func must be called once the job is over.
func (l *JobLease) Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	stop := make(chan struct{})

	go func() {
		select {
		case <-l.preempted:
			cancel(ErrJobPreempted)
		case <-stop:
		case <-ctx.Done():
		}
	}()

	var once sync.Once

	return ctx, func() {
		once.Do(func() {
			close(stop)
			cancel(context.Canceled)
		})
	}
}

// WaitPreempted blocks until the job preempted by this Destroy lease is released, for at
// most the wait timeout of the job. It returns false when the preempted holder did not
// release it in time.
func (l *JobLease) WaitPreempted(ctx context.Context) bool {
	if l.victim == nil {
		return true
	}

	timer := l.job.clock.NewTimer(l.job.waitTimeout)
	defer timer.Stop()

	select {
	case <-l.victim.done:
		return true
	case <-timer.C():
	case <-ctx.Done():
	}

	slog.WarnContext(ctx, "job_preempted_holder_still_running",
		"kind", l.victim.kind.String(),
		"timeout", l.job.waitTimeout.String(),
	)

	return false
}

func (l *JobLease) preempt() {
	l.preemptOnce.Do(func() { close(l.preempted) })
}

// EndJob releases the job and wakes up every waiter. Only the first call has an effect, so
// that a lease released on an error path and again by a deferred call cannot release a job
// acquired by somebody else in between.
func (l *JobLease) EndJob() {
	if l == nil {
		return
	}
	l.once.Do(func() {
		l.job.release(l)
	})
}

// BeginJob acquires the job for kind on behalf of owner.
//
// JobDestroy is granted immediately unless another Destroy job is active. Other kinds wait
// for the active job to end, for at most the configured wait timeout, after which
// ErrJobTimeout is returned and nothing is acquired.
func (j *Job) BeginJob(ctx context.Context, kind JobKind, owner string) (*JobLease, error) {
	if kind != JobQuery && kind != JobModify && kind != JobDestroy {
		return nil, fmt.Errorf("%w: %s", errInvalidJobKind, kind)
	}

	var timer clock.Timer

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		j.mu.Lock()
		if j.freeLocked(kind) {
			lease := j.acquireLocked(kind, owner)
			j.mu.Unlock()

			return lease, nil
		}

		released := j.released
		holderKind, holder := j.holderLocked()
		j.mu.Unlock()

		if timer == nil {
			slog.DebugContext(ctx, "job_wait",
				"kind", kind.String(),
				"owner", owner,
				"holder_kind", holderKind.String(),
				"holder", holder,
			)

			timer = j.clock.NewTimer(j.waitTimeout)
		}

		select {
		case <-released:
		case <-timer.C():
			return nil, fmt.Errorf("%w: cannot acquire %s job for %q after %s: %s job held by %q",
				ErrJobTimeout, kind, owner, j.waitTimeout, holderKind, holder)
		case <-ctx.Done():
			return nil, errors.Join(ctx.Err(), ErrJobBusy)
		}
	}
}

// Active returns the kind and owner of the job currently holding the domain. A Destroy job
// takes precedence over the job it preempted.
func (j *Job) Active() (JobKind, string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.holderLocked()
}

// ActiveSince returns when the current Query or Modify job was acquired.
func (j *Job) ActiveSince() (time.Time, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.activeSince, j.active != JobNone
}

func (j *Job) freeLocked(kind JobKind) bool {
	if j.destroyGen != 0 {
		return false
	}
	if kind == JobDestroy {
		return true
	}
	return j.active == JobNone
}

func (j *Job) acquireLocked(kind JobKind, owner string) *JobLease {
	j.gen++
	lease := newJobLease(j, kind)

	if kind == JobDestroy {
		j.destroyGen = j.gen
		j.destroyOwner = owner

		if j.active != JobNone && j.activeLease != nil {
			lease.victim = j.activeLease
			lease.victim.preempt()
		}
	} else {
		j.active = kind
		j.owner = owner
		j.activeGen = j.gen
		j.activeSince = j.clock.Now()
		j.activeLease = lease
	}

	return lease
}

func (j *Job) holderLocked() (JobKind, string) {
	if j.destroyGen != 0 {
		return JobDestroy, j.destroyOwner
	}
	return j.active, j.owner
}

func (j *Job) release(l *JobLease) {
	j.mu.Lock()
	defer j.mu.Unlock()

	switch {
	case l.kind == JobDestroy && j.destroyGen == l.gen:
		j.destroyGen = 0
		j.destroyOwner = ""
	case l.kind != JobDestroy && j.activeGen == l.gen && j.active != JobNone:
		j.active = JobNone
		j.owner = ""
		j.activeGen = 0
		j.activeSince = time.Time{}
		j.activeLease = nil
	default:
		return
	}

	close(l.done)
	close(j.released)
	j.released = make(chan struct{})
}
