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

// Package chremote builds the command lines of the Cloud Hypervisor control utility.
//
//	ch-remote --api-socket=<api-socket> <subcommand> [unix:<path>]
package chremote

import (
	"github.com/alexandremahdhaoui/chmigrate/pkg/process"
)

const (
	// DefaultPath is the control utility used when none is configured.
	DefaultPath = "ch-remote"

	ReceiveMigration = "receive-migration"
	SendMigration    = "send-migration"
	Resume           = "resume"
	ShutdownVMM      = "shutdown-vmm"
)

// Remote targets one hypervisor instance through its API socket.
type Remote struct {
	// Path is the control utility, defaults to DefaultPath.
	Path      string
	APISocket string
}

// New returns a Remote for the hypervisor listening on apiSocket.
func New(path, apiSocket string) Remote {
	if path == "" {
		path = DefaultPath
	}
	return Remote{Path: path, APISocket: apiSocket}
}

// Command returns the spec running subcommand with the optional endpoint arguments.
func (r Remote) Command(subcommand string, args ...string) process.Spec {
	path := r.Path
	if path == "" {
		path = DefaultPath
	}

	return process.Spec{
		Name: subcommand,
		Path: path,
		Args: append([]string{"--api-socket=" + r.APISocket, subcommand}, args...),
	}
}

// ReceiveMigrationCommand makes the hypervisor bind socketPath and receive a migration stream from it.
func (r Remote) ReceiveMigrationCommand(socketPath string) process.Spec {
	return r.Command(ReceiveMigration, UnixEndpoint(socketPath))
}

// SendMigrationCommand makes the hypervisor stream its state into socketPath.
// It returns once the hypervisor reports the send as complete.
func (r Remote) SendMigrationCommand(socketPath string) process.Spec {
	return r.Command(SendMigration, UnixEndpoint(socketPath))
}

func (r Remote) ResumeCommand() process.Spec {
	return r.Command(Resume)
}

func (r Remote) ShutdownVMMCommand() process.Spec {
	return r.Command(ShutdownVMM)
}

// UnixEndpoint formats a local socket endpoint argument.
func UnixEndpoint(path string) string {
	return "unix:" + path
}
