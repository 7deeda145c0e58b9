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
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexandremahdhaoui/chmigrate/pkg/process"
	"github.com/alexandremahdhaoui/chmigrate/pkg/relay"
)

// MigrationRole tells which end of a migration a session belongs to.
type MigrationRole int

const (
	RoleSource MigrationRole = iota
	RoleDestination
)

func (r MigrationRole) String() string {
	if r == RoleDestination {
		return "destination"
	}
	return "source"
}

// MigrationPhase is the position of a session in the migration protocol.
type MigrationPhase int

const (
	PhaseIdle MigrationPhase = iota
	PhaseBegun
	PhasePrepared
	PhasePerforming
	PhasePerformed
	PhaseFinished
	PhaseConfirmed
	PhaseAborted
)

func (p MigrationPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBegun:
		return "begun"
	case PhasePrepared:
		return "prepared"
	case PhasePerforming:
		return "performing"
	case PhasePerformed:
		return "performed"
	case PhaseFinished:
		return "finished"
	case PhaseConfirmed:
		return "confirmed"
	case PhaseAborted:
		return "aborted"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// MigrationSession is the migration state kept in a domain's private area between phases.
//
// ID, Role, StartedAt and the hostnames are set before the session is published on the
// domain and never change afterwards. The other fields are read by snapshots and by Destroy
// while a phase runs, so they are only reachable through the guarded accessors.
type MigrationSession struct {
	ID        uuid.UUID
	Role      MigrationRole
	StartedAt time.Time

	SourceHostname string
	DestHostname   string
	// OriginalName is the name of the incoming definition when it was renamed on prepare.
	OriginalName string

	mu    sync.Mutex
	phase MigrationPhase
	// uri is the endpoint the source dials, "tcp:<host>:<port>".
	uri string
	// port is the leased port the destination forwarder listens on. Zero on the source.
	port int
	// socketPath is the local socket of the relay: the receive socket on the destination,
	// the send socket on the source.
	socketPath string
	tunnel     *relay.Tunnel
	// portRelease is cleared once the port was given back.
	portRelease func(int) error
}

// NewMigrationSession returns a session in PhaseIdle.
func NewMigrationSession(role MigrationRole, now time.Time) *MigrationSession {
	return &MigrationSession{
		ID:        uuid.New(),
		Role:      role,
		StartedAt: now,
		phase:     PhaseIdle,
	}
}

func (s *MigrationSession) Phase() MigrationPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *MigrationSession) SetPhase(p MigrationPhase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = p
}

func (s *MigrationSession) URI() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uri
}

func (s *MigrationSession) SetURI(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uri = uri
}

func (s *MigrationSession) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port
}

func (s *MigrationSession) SocketPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.socketPath
}

func (s *MigrationSession) Tunnel() *relay.Tunnel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tunnel
}

// AttachTunnel records the relay of the session before it is started, so that Abort can
// reach it while it starts. A session already aborted aborts t right away.
func (s *MigrationSession) AttachTunnel(ctx context.Context, t *relay.Tunnel, socket string) {
	s.mu.Lock()
	s.tunnel = t
	s.socketPath = socket
	aborted := s.phase == PhaseAborted
	s.mu.Unlock()

	if aborted {
		t.Abort(ctx)
	}
}

// Abort kills the relay of the session, if any, and moves it to PhaseAborted.
func (s *MigrationSession) Abort(ctx context.Context) {
	s.mu.Lock()
	t := s.tunnel
	s.phase = PhaseAborted
	s.mu.Unlock()

	if t != nil {
		t.Abort(ctx)
	}
}

// LeasePort records port and the function giving it back.
func (s *MigrationSession) LeasePort(port int, release func(int) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.port = port
	s.portRelease = release
}

// ReleasePort gives the leased port back. Only the first call following LeasePort has an
// effect.
func (s *MigrationSession) ReleasePort() error {
	s.mu.Lock()
	port, release := s.port, s.portRelease
	s.portRelease = nil
	s.mu.Unlock()

	if release == nil {
		return nil
	}
	return release(port)
}

// Private is the per-domain state owned by the driver. It may only be mutated while
// holding a Modify or Destroy job.
type Private struct {
	// APISocket is the control socket of the hypervisor process.
	APISocket string
	// VMM is the hypervisor process when it was spawned by this driver.
	VMM process.Handle
	// Migration is the in-flight migration session, if any.
	Migration *MigrationSession
}
