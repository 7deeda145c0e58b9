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

// Package portalloc leases the TCP ports that destination hosts listen on during migrations.
package portalloc

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"

	"k8s.io/apimachinery/pkg/util/sets"
)

var (
	// ErrPortExhausted is returned by Acquire when every port of the range is leased.
	ErrPortExhausted = errors.New("no free migration port")
	// ErrPortNotLeased is returned by Release for a port that is not currently leased.
	ErrPortNotLeased = errors.New("port is not leased")
	// ErrInvalidRange is returned by New for an empty or out-of-bounds range.
	ErrInvalidRange = errors.New("invalid port range")
)

const (
	// DefaultMin and DefaultMax bound the default migration port range.
	DefaultMin = 49152
	DefaultMax = 49215
)

// ---------------------------------------------------- INTERFACE --------------------------------------------------- //

// Allocator leases ports of a fixed range. It is safe for concurrent use.
type Allocator interface {
	// Acquire leases the lowest free port of the range.
	Acquire() (int, error)
	// Release returns a leased port to the pool. Every successful Acquire must be matched by
	// exactly one Release.
	Release(port int) error
	// InUse returns the number of leased ports.
	InUse() int
}

// Option configures an Allocator.
type Option func(*allocator)

// WithBindCheck makes Acquire skip ports that another process already listens on.
func WithBindCheck() Option {
	return func(a *allocator) {
		a.available = canBind
	}
}

// WithAvailabilityFunc replaces the check deciding whether a free port may be leased.
func WithAvailabilityFunc(f func(port int) bool) Option {
	return func(a *allocator) {
		a.available = f
	}
}

// --------------------------------------------------- CONSTRUCTORS ------------------------------------------------- //

// New returns an Allocator for the inclusive range [low, high].
func New(low, high int, opts ...Option) (Allocator, error) {
	if low <= 0 || high > 65535 || low > high {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, low, high)
	}

	a := &allocator{
		low:       low,
		high:      high,
		leased:    sets.New[int](),
		available: func(int) bool { return true },
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// --------------------------------------------------- ALLOCATOR ---------------------------------------------------- //

type allocator struct {
	low, high int

	mu        sync.Mutex
	leased    sets.Set[int]
	available func(port int) bool
}

func (a *allocator) Acquire() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for port := a.low; port <= a.high; port++ {
		if a.leased.Has(port) || !a.available(port) {
			continue
		}

		a.leased.Insert(port)

		return port, nil
	}

	return 0, fmt.Errorf("%w in range [%d, %d]", ErrPortExhausted, a.low, a.high)
}

func (a *allocator) Release(port int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.leased.Has(port) {
		return fmt.Errorf("%w: %d", ErrPortNotLeased, port)
	}

	a.leased.Delete(port)

	return nil
}

func (a *allocator) InUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.leased.Len()
}

func canBind(port int) bool {
	l, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = l.Close()
	return true
}
