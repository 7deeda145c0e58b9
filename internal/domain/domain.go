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
	"sync"

	"github.com/google/uuid"
	"libvirt.org/go/libvirtxml"

	"github.com/alexandremahdhaoui/chmigrate/pkg/api"
	"github.com/alexandremahdhaoui/chmigrate/pkg/process"
)

// Handle identifies a domain to API callers.
type Handle = api.Handle

// Domain is a virtual machine record.
type Domain struct {
	uuid uuid.UUID
	job  *Job

	mu         sync.RWMutex
	def        *libvirtxml.Domain
	id         int
	state      State
	reason     int
	persistent bool
	// reserved is set while a request registering the domain with AddReserve runs.
	reserved bool
	private  Private
}

func newDomain(def *libvirtxml.Domain, id uuid.UUID, jobOpts ...JobOption) *Domain {
	return &Domain{
		uuid:  id,
		job:   NewJob(jobOpts...),
		def:   def,
		id:    -1,
		state: StateShutoff,
	}
}

// Job returns the job serializing the operations on the domain.
func (d *Domain) Job() *Job {
	return d.job
}

func (d *Domain) UUID() uuid.UUID {
	return d.uuid
}

func (d *Domain) Name() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.def.Name
}

// ID returns the runtime id, -1 when inactive.
func (d *Domain) ID() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.id
}

// Definition returns the live definition. Callers must not modify it.
func (d *Domain) Definition() *libvirtxml.Domain {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.def
}

func (d *Domain) setDefinition(def *libvirtxml.Domain) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.def = def
}

// State returns the state and its reason.
func (d *Domain) State() (State, int) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.state, d.reason
}

// SetState records a state transition. reason must be one of the reason types matching state.
func (d *Domain) SetState(state State, reason int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = state
	d.reason = reason

	if !state.Active() {
		d.id = -1
	}
}

// IsActive reports whether the domain is backed by a hypervisor process.
func (d *Domain) IsActive() bool {
	state, _ := d.State()
	return state.Active()
}

// Persistent reports whether the domain outlives its hypervisor process.
func (d *Domain) Persistent() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.persistent
}

// Handle returns the identity of the domain.
func (d *Domain) Handle() Handle {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return Handle{Name: d.def.Name, UUID: d.uuid, ID: d.id}
}

func (d *Domain) APISocket() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.private.APISocket
}

func (d *Domain) SetAPISocket(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.private.APISocket = path
}

// VMM returns the hypervisor process spawned for the domain, nil when the process was
// started outside of this driver.
func (d *Domain) VMM() process.Handle {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.private.VMM
}

func (d *Domain) SetVMM(h process.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.private.VMM = h
}

// MigrationSession returns the in-flight migration session, if any.
func (d *Domain) MigrationSession() *MigrationSession {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.private.Migration
}

// SetMigrationSession replaces the migration session. A nil session clears it.
func (d *Domain) SetMigrationSession(s *MigrationSession) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.private.Migration = s
}

func (d *Domain) reserve() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.reserved {
		return false
	}
	d.reserved = true

	return true
}

func (d *Domain) unreserve() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.reserved = false
}
