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

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/internal/hypervisor"
	"github.com/alexandremahdhaoui/chmigrate/internal/util/tlsutil"
	"github.com/alexandremahdhaoui/chmigrate/pkg/chremote"
	"github.com/alexandremahdhaoui/chmigrate/pkg/portalloc"
	"github.com/alexandremahdhaoui/chmigrate/pkg/relay"
)

// ConfigPathEnvKey is the environment variable key for the config file path.
const ConfigPathEnvKey = "CHMIGRATED_CONFIG_PATH"

var (
	errConfigPathUnset = errors.New("config path environment variable must be set")
	errReadConfig      = errors.New("reading config file")
	errParseConfig     = errors.New("parsing config")
	errInvalidConfig   = errors.New("invalid config")
)

// Config is used to configure chmigrated.
type Config struct {
	// StateDir holds the hypervisor API sockets and the migration sockets.
	StateDir string `json:"stateDir"`
	// Hostname is advertised in migration URIs. Defaults to the OS hostname.
	Hostname string `json:"hostname"`

	// MigrationPorts is the inclusive range of ports leased to incoming migrations.
	MigrationPorts struct {
		Min int `json:"min"`
		Max int `json:"max"`
		// BindCheck skips ports that another process already binds.
		BindCheck bool `json:"bindCheck"`
	} `json:"migrationPorts"`

	// Binaries are the external programs driven by the daemon. They are resolved through $PATH.
	Binaries struct {
		CloudHypervisor string `json:"cloudHypervisor"`
		Remote          string `json:"remote"`
		Forwarder       string `json:"forwarder"`
	} `json:"binaries"`

	// Exec is applied to every spawned command.
	Exec struct {
		Envs map[string]string `json:"envs"`
		// PrependCmd is prepended to every command, e.g. ["sudo", "-E"].
		PrependCmd []string `json:"prependCmd"`
	} `json:"exec"`

	// SocketWait bounds the wait for the sockets of spawned processes.
	SocketWait struct {
		InitialInterval metav1.Duration `json:"initialInterval"`
		MaxInterval     metav1.Duration `json:"maxInterval"`
		Timeout         metav1.Duration `json:"timeout"`
	} `json:"socketWait"`

	// JobWaitTimeout bounds how long an operation waits for the job of a busy domain.
	JobWaitTimeout metav1.Duration `json:"jobWaitTimeout"`
	// StopTimeout bounds the graceful shutdown of a hypervisor before it is killed.
	StopTimeout metav1.Duration `json:"stopTimeout"`

	// APIServer is the configuration for the management API server.
	APIServer struct {
		// Port is the port for the API server.
		Port int `json:"port"`
		// Token, when set, must be sent as a bearer token by every client.
		Token string `json:"token"`
		// TLS serves the API over TLS, optionally verifying client certificates.
		TLS tlsutil.ServerConfig `json:"tls"`
	} `json:"apiServer"`

	// ProbesServer is the configuration for the probes server.
	ProbesServer struct {
		// LivenessPath is the path for the liveness probe.
		LivenessPath string `json:"livenessPath"`
		// ReadinessPath is the path for the readiness probe.
		ReadinessPath string `json:"readinessPath"`
		// Port is the port for the probes server.
		Port int `json:"port"`
	} `json:"probesServer"`

	// MetricsServer is the configuration for the metrics server.
	MetricsServer struct {
		// Path is the path for the metrics server.
		Path string `json:"path"`
		// Port is the port for the metrics server.
		Port int `json:"port"`
	} `json:"metricsServer"`

	Logging struct {
		Development bool   `json:"development"`
		Level       string `json:"level"`
	} `json:"logging"`
}

// loadConfig loads the configuration from the file specified in the CHMIGRATED_CONFIG_PATH
// environment variable.
func loadConfig() (*Config, error) {
	configPath := os.Getenv(ConfigPathEnvKey)
	if configPath == "" {
		return nil, fmt.Errorf("%w: %s", errConfigPathUnset, ConfigPathEnvKey)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Join(err, errReadConfig)
	}

	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Join(err, errParseConfig)
	}

	config.setDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) setDefaults() {
	defaultString(&c.StateDir, hypervisor.DefaultStateDir)

	if c.MigrationPorts.Min == 0 && c.MigrationPorts.Max == 0 {
		c.MigrationPorts.Min, c.MigrationPorts.Max = portalloc.DefaultMin, portalloc.DefaultMax
	}

	defaultString(&c.Binaries.CloudHypervisor, hypervisor.DefaultBinaryPath)
	defaultString(&c.Binaries.Remote, chremote.DefaultPath)
	defaultString(&c.Binaries.Forwarder, relay.DefaultForwarderPath)

	defaultDuration(&c.SocketWait.InitialInterval, relay.DefaultPollInterval)
	defaultDuration(&c.SocketWait.MaxInterval, relay.DefaultMaxPollInterval)
	defaultDuration(&c.SocketWait.Timeout, relay.DefaultSocketTimeout)
	defaultDuration(&c.JobWaitTimeout, domain.DefaultJobWaitTimeout)
	defaultDuration(&c.StopTimeout, hypervisor.DefaultStopTimeout)

	defaultInt(&c.APIServer.Port, 30443)

	defaultString(&c.ProbesServer.LivenessPath, "/healthz")
	defaultString(&c.ProbesServer.ReadinessPath, "/readyz")
	defaultInt(&c.ProbesServer.Port, 8081)

	defaultString(&c.MetricsServer.Path, "/metrics")
	defaultInt(&c.MetricsServer.Port, 8080)
}

func (c *Config) validate() error {
	var errs []error

	if c.MigrationPorts.Min < 1 || c.MigrationPorts.Max > 65535 || c.MigrationPorts.Min > c.MigrationPorts.Max {
		errs = append(errs, fmt.Errorf("migrationPorts: invalid range [%d, %d]",
			c.MigrationPorts.Min, c.MigrationPorts.Max))
	}

	if c.SocketWait.InitialInterval.Duration < 0 || c.SocketWait.Timeout.Duration < 0 {
		errs = append(errs, errors.New("socketWait: durations must not be negative"))
	}

	if c.JobWaitTimeout.Duration < 0 {
		errs = append(errs, errors.New("jobWaitTimeout must not be negative"))
	}

	for name, port := range map[string]int{
		"apiServer":     c.APIServer.Port,
		"probesServer":  c.ProbesServer.Port,
		"metricsServer": c.MetricsServer.Port,
	} {
		if port < 1 || port > 65535 {
			errs = append(errs, fmt.Errorf("%s: invalid port %d", name, port))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append(errs, errInvalidConfig)...)
	}

	return nil
}

func defaultString(s *string, v string) {
	if *s == "" {
		*s = v
	}
}

func defaultInt(i *int, v int) {
	if *i == 0 {
		*i = v
	}
}

func defaultDuration(d *metav1.Duration, v time.Duration) {
	if d.Duration == 0 {
		d.Duration = v
	}
}
