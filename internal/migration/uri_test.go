//go:build unit

// Copyright 2024 Alexandre Mahdhaoui
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/chmigrate/internal/migration"
)

func TestURI(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		assert.Equal(t, "tcp:hostB:49152", migration.FormatURI("hostB", 49152))
		assert.Equal(t, "tcp:[::1]:49152", migration.FormatURI("::1", 49152))
	})

	t.Run("Parse", func(t *testing.T) {
		for _, tc := range []struct {
			uri  string
			host string
			port int
		}{
			{uri: "tcp:hostB:49152", host: "hostB", port: 49152},
			{uri: "tcp://10.0.0.2:50000", host: "10.0.0.2", port: 50000},
			{uri: "tcp:[::1]:49152", host: "::1", port: 49152},
		} {
			t.Run(tc.uri, func(t *testing.T) {
				host, port, err := migration.ParseURI(tc.uri)
				require.NoError(t, err)
				assert.Equal(t, tc.host, host)
				assert.Equal(t, tc.port, port)
			})
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, uri := range []string{
			"",
			"unix:/tmp/sock",
			"tcp:hostB",
			"tcp::49152",
			"tcp:hostB:0",
			"tcp:hostB:70000",
			"tcp:hostB:port",
		} {
			t.Run(uri, func(t *testing.T) {
				_, _, err := migration.ParseURI(uri)
				assert.ErrorIs(t, err, migration.ErrInvalidMigrationURI)
			})
		}
	})
}
