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

import "fmt"

// State is the lifecycle state of a domain. Values and reasons follow libvirt's numbering so
// that they can be reported to management tools unchanged.
type State int

const (
	StateNoState State = iota
	StateRunning
	StateBlocked
	StatePaused
	StateShutdown
	StateShutoff
	StateCrashed
)

func (s State) String() string {
	switch s {
	case StateNoState:
		return "nostate"
	case StateRunning:
		return "running"
	case StateBlocked:
		return "blocked"
	case StatePaused:
		return "paused"
	case StateShutdown:
		return "shutdown"
	case StateShutoff:
		return "shutoff"
	case StateCrashed:
		return "crashed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Active reports whether a hypervisor process backs a domain in this state.
func (s State) Active() bool {
	switch s {
	case StateRunning, StateBlocked, StatePaused, StateShutdown, StateCrashed:
		return true
	default:
		return false
	}
}

type RunningReason int

const (
	RunningUnknown RunningReason = iota
	RunningBooted
	RunningMigrated
	RunningRestored
	RunningFromSnapshot
	RunningUnpaused
	RunningMigrationCanceled
)

type PausedReason int

const (
	PausedUnknown PausedReason = iota
	PausedUser
	PausedMigration
)

type ShutoffReason int

const (
	ShutoffUnknown ShutoffReason = iota
	ShutoffShutdown
	ShutoffDestroyed
	ShutoffCrashed
	ShutoffMigrated
	ShutoffSaved
	ShutoffFailed
)

type CrashedReason int

const (
	CrashedUnknown CrashedReason = iota
	CrashedPanicked
	// CrashedMigrationFailed marks a destination domain whose incoming stream could not be
	// drained. It stays registered until it is aborted or destroyed.
	CrashedMigrationFailed
)
