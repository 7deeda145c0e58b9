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

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/internal/migration"
	"github.com/alexandremahdhaoui/chmigrate/internal/util/mocks/mockmigration"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	t.Setenv(ConfigPathEnvKey, configPath)
}

func TestLoadConfig(t *testing.T) {
	t.Run("AllFields", func(t *testing.T) {
		writeConfig(t, `
stateDir: /var/run/ch
hostname: hostB.example.com
migrationPorts:
  min: 50000
  max: 50010
  bindCheck: true
binaries:
  cloudHypervisor: /usr/bin/cloud-hypervisor
  remote: /usr/bin/ch-remote
  forwarder: /usr/bin/socat
exec:
  envs:
    LANG: C
  prependCmd: ["sudo", "-E"]
socketWait:
  initialInterval: 5ms
  maxInterval: 500ms
  timeout: 1m
jobWaitTimeout: 10s
stopTimeout: 3s
apiServer:
  port: 9000
  token: s3cr3t
  tls:
    enabled: true
    clientAuth: require
    certPath: /etc/chmigrate/tls.crt
    keyPath: /etc/chmigrate/tls.key
    caPath: /etc/chmigrate/ca.crt
probesServer:
  port: 9001
  livenessPath: /live
  readinessPath: /ready
metricsServer:
  port: 9002
  path: /m
logging:
  development: true
  level: debug
`)

		config, err := loadConfig()
		require.NoError(t, err)

		assert.Equal(t, "/var/run/ch", config.StateDir)
		assert.Equal(t, "hostB.example.com", config.Hostname)
		assert.Equal(t, 50000, config.MigrationPorts.Min)
		assert.Equal(t, 50010, config.MigrationPorts.Max)
		assert.True(t, config.MigrationPorts.BindCheck)
		assert.Equal(t, "/usr/bin/socat", config.Binaries.Forwarder)
		assert.Equal(t, map[string]string{"LANG": "C"}, config.Exec.Envs)
		assert.Equal(t, []string{"sudo", "-E"}, config.Exec.PrependCmd)
		assert.Equal(t, 5*time.Millisecond, config.SocketWait.InitialInterval.Duration)
		assert.Equal(t, 500*time.Millisecond, config.SocketWait.MaxInterval.Duration)
		assert.Equal(t, time.Minute, config.SocketWait.Timeout.Duration)
		assert.Equal(t, 10*time.Second, config.JobWaitTimeout.Duration)
		assert.Equal(t, 3*time.Second, config.StopTimeout.Duration)
		assert.Equal(t, 9000, config.APIServer.Port)
		assert.Equal(t, "s3cr3t", config.APIServer.Token)
		assert.True(t, config.APIServer.TLS.Enabled)
		assert.Equal(t, "require", config.APIServer.TLS.ClientAuth)
		assert.Equal(t, "/etc/chmigrate/ca.crt", config.APIServer.TLS.CAPath)
		assert.Equal(t, "/ready", config.ProbesServer.ReadinessPath)
		assert.Equal(t, "/m", config.MetricsServer.Path)
		assert.True(t, config.Logging.Development)
		assert.Equal(t, "debug", config.Logging.Level)
	})

	t.Run("Defaults", func(t *testing.T) {
		writeConfig(t, "{}")

		config, err := loadConfig()
		require.NoError(t, err)

		assert.Equal(t, "/run/chmigrate", config.StateDir)
		assert.Equal(t, 49152, config.MigrationPorts.Min)
		assert.Equal(t, 49215, config.MigrationPorts.Max)
		assert.Equal(t, "cloud-hypervisor", config.Binaries.CloudHypervisor)
		assert.Equal(t, "ch-remote", config.Binaries.Remote)
		assert.Equal(t, "socat", config.Binaries.Forwarder)
		assert.Equal(t, 30*time.Second, config.JobWaitTimeout.Duration)
		assert.Equal(t, 30*time.Second, config.SocketWait.Timeout.Duration)
		assert.Equal(t, 30443, config.APIServer.Port)
		assert.Equal(t, "/healthz", config.ProbesServer.LivenessPath)
		assert.Equal(t, "/metrics", config.MetricsServer.Path)
		assert.Empty(t, config.APIServer.Token)
		assert.False(t, config.APIServer.TLS.Enabled)
	})

	for _, tc := range []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "InvertedRange", content: "migrationPorts: {min: 50010, max: 50000}", wantErr: errInvalidConfig},
		{name: "RangeOutOfBounds", content: "migrationPorts: {min: 65000, max: 70000}", wantErr: errInvalidConfig},
		{name: "NegativeTimeout", content: "jobWaitTimeout: -1s", wantErr: errInvalidConfig},
		{name: "InvalidPort", content: "apiServer: {port: 70000}", wantErr: errInvalidConfig},
		{name: "InvalidDuration", content: "jobWaitTimeout: soon", wantErr: errParseConfig},
		{name: "InvalidYAML", content: "invalid: yaml: content: [", wantErr: errParseConfig},
	} {
		t.Run(tc.name, func(t *testing.T) {
			writeConfig(t, tc.content)

			config, err := loadConfig()
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, config)
		})
	}

	t.Run("MissingEnvVar", func(t *testing.T) {
		t.Setenv(ConfigPathEnvKey, "")

		config, err := loadConfig()
		assert.ErrorIs(t, err, errConfigPathUnset)
		assert.Contains(t, err.Error(), ConfigPathEnvKey)
		assert.Nil(t, config)
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		t.Setenv(ConfigPathEnvKey, "/non/existent/path/config.yaml")

		config, err := loadConfig()
		assert.ErrorIs(t, err, errReadConfig)
		assert.Nil(t, config)
	})
}

func TestProbesServer(t *testing.T) {
	config, err := parseConfig([]byte("{}"))
	require.NoError(t, err)

	ready := new(atomic.Bool)
	srv := setupProbesServer(config, ready)

	probe := func(path string) int {
		rr := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, probe("/healthz"))
	assert.Equal(t, http.StatusServiceUnavailable, probe("/readyz"))

	ready.Store(true)
	assert.Equal(t, http.StatusOK, probe("/readyz"))
	assert.Equal(t, ":8081", srv.Addr)
}

func TestMetricsServer(t *testing.T) {
	config, err := parseConfig([]byte("{}"))
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	metrics := migration.NewMetrics(registry)
	metrics.ObserveJobWait(domain.JobModify, time.Millisecond, nil)

	srv := setupMetricsServer(config, registry)

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "chmigrate_")
}

func TestAbortIncomingMigrations(t *testing.T) {
	list := domain.NewList()

	add := func(name string, role *domain.MigrationRole) {
		def, err := domain.NewDefinition(domain.DefinitionConfig{Name: name})
		require.NoError(t, err)

		d, err := list.Add(def, domain.AddLive)
		require.NoError(t, err)

		if role != nil {
			d.SetMigrationSession(domain.NewMigrationSession(*role, time.Now()))
		}
	}

	dst, src := domain.RoleDestination, domain.RoleSource
	add("incoming", &dst)
	add("outgoing", &src)
	add("idle", nil)

	orch := mockmigration.NewMockOrchestrator(t)
	orch.EXPECT().DstAbort(context.Background(), "incoming").Return(nil).Once()

	require.NoError(t, abortIncomingMigrations(context.Background(), list, orch))
}
