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

package migration

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

var (
	// ErrValidation is returned when a domain cannot be migrated in its current configuration.
	ErrValidation = errors.New("domain is not migratable")
	// ErrNoMigrationSession is returned by phases that need a session the domain does not have.
	ErrNoMigrationSession = errors.New("no migration session")
	// ErrPhaseOrder is returned when a phase is called out of order.
	ErrPhaseOrder = errors.New("migration phase out of order")
	// ErrInvalidMigrationURI is returned by ParseURI.
	ErrInvalidMigrationURI = errors.New("invalid migration uri")
)

const uriScheme = "tcp:"

// FormatURI returns the endpoint the source dials to reach the destination forwarder.
func FormatURI(host string, port int) string {
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return fmt.Sprintf("%s%s:%d", uriScheme, host, port)
}

// ParseURI splits a "tcp:<host>:<port>" migration URI.
func ParseURI(uri string) (string, int, error) {
	rest, ok := strings.CutPrefix(uri, uriScheme)
	if !ok {
		return "", 0, fmt.Errorf("%w: %q: scheme must be tcp", ErrInvalidMigrationURI, uri)
	}

	// "tcp://host:port" is accepted as well.
	rest = strings.TrimPrefix(rest, "//")

	host, portStr, err := net.SplitHostPort(rest)
	if err != nil {
		return "", 0, errors.Join(fmt.Errorf("%w: %q", ErrInvalidMigrationURI, uri), err)
	}

	if host == "" {
		return "", 0, fmt.Errorf("%w: %q: empty host", ErrInvalidMigrationURI, uri)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("%w: %q: invalid port %q", ErrInvalidMigrationURI, uri, portStr)
	}

	return host, port, nil
}
