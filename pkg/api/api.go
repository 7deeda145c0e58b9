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

// Package api holds the types exchanged with the chmigrated management API.
package api

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

const (
	// DomainsPath lists (GET) and defines (POST) domains.
	DomainsPath = "/v1/domains"
	// PreparePath prepares an incoming migration (POST).
	PreparePath = "/v1/migrations/prepare"

	PhaseBegin   = "begin"
	PhasePrepare = "prepare"
	PhasePerform = "perform"
	PhaseFinish  = "finish"
	PhaseConfirm = "confirm"
	PhaseAbort   = "abort"
)

// DomainPath gets (GET) or destroys (DELETE) the named domain.
func DomainPath(name string) string {
	return DomainsPath + "/" + url.PathEscape(name)
}

// MigrationPath runs a migration phase of the named domain (POST).
func MigrationPath(name, phase string) string {
	return DomainPath(name) + "/migration/" + phase
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Handle identifies a domain.
type Handle struct {
	Name string    `json:"name"`
	UUID uuid.UUID `json:"uuid"`
	// ID is the runtime id, -1 for inactive domains.
	ID int `json:"id"`
}

// Migration describes the in-flight migration of a domain.
type Migration struct {
	Session   uuid.UUID `json:"session"`
	Role      string    `json:"role"`
	Phase     string    `json:"phase"`
	StartedAt time.Time `json:"startedAt"`
	URI       string    `json:"uri,omitempty"`
	Port      int       `json:"port,omitempty"`
}

// Domain is a snapshot of a domain.
type Domain struct {
	Handle

	State      string `json:"state"`
	Reason     int    `json:"reason"`
	Persistent bool   `json:"persistent"`
	// Job is the kind of the job held on the domain, "none" when idle.
	Job       string     `json:"job"`
	JobOwner  string     `json:"jobOwner,omitempty"`
	Migration *Migration `json:"migration,omitempty"`
	// Definition is only set when a single domain is requested.
	Definition string `json:"definition,omitempty"`
}

// DefineRequest registers a domain whose hypervisor is already running.
type DefineRequest struct {
	Definition string `json:"definition"`
	APISocket  string `json:"apiSocket,omitempty"`
	Persistent bool   `json:"persistent,omitempty"`
}

type BeginRequest struct {
	// Override replaces the live definition sent to the destination.
	Override string `json:"override,omitempty"`
}

type BeginResponse struct {
	Definition string `json:"definition"`
	Cookie     []byte `json:"cookie,omitempty"`
}

type PrepareRequest struct {
	Definition string `json:"definition"`
	Cookie     []byte `json:"cookie,omitempty"`
	// Name renames the domain on the destination.
	Name string `json:"name,omitempty"`
}

type PrepareResponse struct {
	URI     string    `json:"uri"`
	Session uuid.UUID `json:"session"`
	Domain  Handle    `json:"domain"`
	Cookie  []byte    `json:"cookie,omitempty"`
}

type PerformRequest struct {
	URI    string `json:"uri"`
	Cookie []byte `json:"cookie,omitempty"`
}

type PerformResponse struct {
	Cookie []byte `json:"cookie,omitempty"`
}

type FinishRequest struct {
	Cookie       []byte `json:"cookie,omitempty"`
	StartRunning bool   `json:"startRunning"`
	// RunningReason and PausedReason are the domain state reasons recorded once the domain
	// runs or stays paused.
	RunningReason int `json:"runningReason,omitempty"`
	PausedReason  int `json:"pausedReason,omitempty"`
}

type ConfirmRequest struct {
	Cancelled bool `json:"cancelled"`
}
