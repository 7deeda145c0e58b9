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
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"libvirt.org/go/libvirtxml"
)

var (
	// ErrRegistration is returned by Add when the definition conflicts with a registered domain.
	ErrRegistration = errors.New("domain registration failed")
	// ErrDomainNotFound is returned by lookups.
	ErrDomainNotFound = errors.New("domain not found")
)

// AddFlags alter how List.Add registers a definition.
type AddFlags uint

const (
	// AddLive registers the definition as the live definition of an active domain.
	AddLive AddFlags = 1 << iota
	// AddCheckLive rejects the definition when a domain with the same identity is active.
	AddCheckLive
	// AddPersistent marks the domain as persistent. Domains are transient otherwise and are
	// dropped from the list when they stop.
	AddPersistent
	// AddReserve reserves the domain for the caller until it calls Unreserve. A reserved
	// domain cannot be added again, which keeps a second request from reusing a domain whose
	// registration is still in flight.
	AddReserve
)

// List holds the domains known to the driver, indexed by name and UUID.
type List struct {
	jobOpts []JobOption

	mu     sync.RWMutex
	byUUID map[uuid.UUID]*Domain
	byName map[string]*Domain
	nextID int
}

// NewList returns an empty list. jobOpts configure the Job of every domain it creates.
func NewList(jobOpts ...JobOption) *List {
	return &List{
		jobOpts: jobOpts,
		byUUID:  make(map[uuid.UUID]*Domain),
		byName:  make(map[string]*Domain),
		nextID:  1,
	}
}

// Add registers def.
//
// A definition without UUID gets a random one. When a domain with the same UUID exists, it
// must have the same name; it is then updated in place, unless AddCheckLive is set and the
// domain is active or migrating, or AddReserve is set and the domain is reserved. A domain
// with the same name but another UUID is always a conflict.
func (l *List) Add(def *libvirtxml.Domain, flags AddFlags) (*Domain, error) {
	if def == nil || def.Name == "" {
		return nil, errors.Join(ErrInvalidDefinition, ErrRegistration)
	}

	id, err := definitionUUID(def)
	if err != nil {
		return nil, errors.Join(err, ErrRegistration)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if existing, ok := l.byUUID[id]; ok {
		if existing.Name() != def.Name {
			return nil, fmt.Errorf("%w: domain %q is already defined with uuid %s",
				ErrRegistration, existing.Name(), id)
		}

		if flags&AddCheckLive != 0 {
			if existing.IsActive() {
				return nil, fmt.Errorf("%w: domain %q is already active", ErrRegistration, def.Name)
			}
			if existing.MigrationSession() != nil {
				return nil, fmt.Errorf("%w: domain %q has a migration in flight", ErrRegistration, def.Name)
			}
		}

		if flags&AddReserve != 0 && !existing.reserve() {
			return nil, fmt.Errorf("%w: domain %q is being registered by another request",
				ErrRegistration, def.Name)
		}

		existing.setDefinition(def)
		l.markLiveLocked(existing, flags)

		return existing, nil
	}

	if existing, ok := l.byName[def.Name]; ok {
		return nil, fmt.Errorf("%w: domain %q already exists with uuid %s",
			ErrRegistration, def.Name, existing.UUID())
	}

	d := newDomain(def, id, l.jobOpts...)
	d.persistent = flags&AddPersistent != 0
	d.reserved = flags&AddReserve != 0
	l.markLiveLocked(d, flags)

	l.byUUID[id] = d
	l.byName[def.Name] = d

	slog.Debug("domain_registered", "name", def.Name, "uuid", id.String(), "id", d.ID())

	return d, nil
}

func (l *List) markLiveLocked(d *Domain, flags AddFlags) {
	if flags&AddLive == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.id < 0 {
		d.id = l.nextID
		l.nextID++
	}
}

// Unreserve ends the reservation taken by Add with AddReserve.
func (l *List) Unreserve(d *Domain) {
	if d != nil {
		d.unreserve()
	}
}

// Remove drops d from the list. Removing a domain that is not registered is a no-op.
func (l *List) Remove(d *Domain) {
	if d == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if cur, ok := l.byUUID[d.UUID()]; !ok || cur != d {
		return
	}

	delete(l.byUUID, d.UUID())
	delete(l.byName, d.Name())

	slog.Debug("domain_removed", "name", d.Name(), "uuid", d.UUID().String())
}

// RemoveInactive drops d when it is transient and no longer active.
func (l *List) RemoveInactive(d *Domain) {
	if d.Persistent() || d.IsActive() {
		return
	}
	l.Remove(d)
}

// Get looks a domain up by name.
func (l *List) Get(name string) (*Domain, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	d, ok := l.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDomainNotFound, name)
	}

	return d, nil
}

// GetByUUID looks a domain up by UUID.
func (l *List) GetByUUID(id uuid.UUID) (*Domain, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	d, ok := l.byUUID[id]
	if !ok {
		return nil, fmt.Errorf("%w: uuid %s", ErrDomainNotFound, id)
	}

	return d, nil
}

// List returns the registered domains sorted by name.
func (l *List) List() []*Domain {
	l.mu.RLock()
	out := make([]*Domain, 0, len(l.byName))
	for _, d := range l.byName {
		out = append(out, d)
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out
}

// Len returns the number of registered domains.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.byName)
}
