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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/alexandremahdhaoui/chmigrate/internal/controller"
	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
	"github.com/alexandremahdhaoui/chmigrate/internal/driver/server"
	"github.com/alexandremahdhaoui/chmigrate/internal/hypervisor"
	"github.com/alexandremahdhaoui/chmigrate/internal/migration"
	"github.com/alexandremahdhaoui/chmigrate/internal/util/gracefulshutdown"
	"github.com/alexandremahdhaoui/chmigrate/internal/util/httputil"
	"github.com/alexandremahdhaoui/chmigrate/internal/util/logging"
	"github.com/alexandremahdhaoui/chmigrate/internal/util/tlsutil"
	"github.com/alexandremahdhaoui/chmigrate/pkg/execcontext"
	"github.com/alexandremahdhaoui/chmigrate/pkg/portalloc"
	"github.com/alexandremahdhaoui/chmigrate/pkg/process"
	"github.com/alexandremahdhaoui/chmigrate/pkg/relay"
)

const Name = "chmigrated"

var (
	Version        = "dev" //nolint:gochecknoglobals // set by ldflags
	CommitSHA      = "n/a" //nolint:gochecknoglobals // set by ldflags
	BuildTimestamp = "n/a" //nolint:gochecknoglobals // set by ldflags
)

// ------------------------------------------------- Main ----------------------------------------------------------- //

func main() {
	_, _ = fmt.Fprintf(
		os.Stdout,
		"Starting %s version %s (%s) %s\n",
		Name,
		Version,
		CommitSHA,
		BuildTimestamp,
	)

	gs := gracefulshutdown.New(Name)
	ctx := gs.Context()

	// --------------------------------------------- Config --------------------------------------------------------- //

	config, err := loadConfig()
	if err != nil {
		slog.ErrorContext(ctx, "loading chmigrated configuration", "error", err.Error())
		gs.Shutdown(1)
	}

	level, err := logging.ParseLevel(config.Logging.Level)
	if err != nil {
		slog.ErrorContext(ctx, "parsing log level", "error", err.Error())
		gs.Shutdown(1)
	}

	logger, err := logging.Setup(logging.Options{Development: config.Logging.Development, Level: level})
	if err != nil {
		slog.ErrorContext(ctx, "setting up logging", "error", err.Error())
		gs.Shutdown(1)
	}

	if err := os.MkdirAll(config.StateDir, 0o750); err != nil {
		slog.ErrorContext(ctx, "creating state directory", "dir", config.StateDir, "error", err.Error())
		gs.Shutdown(1)
	}

	// --------------------------------------------- Adapters ------------------------------------------------------- //

	runner := process.NewRunner(execcontext.New(config.Exec.Envs, config.Exec.PrependCmd))

	portOpts := []portalloc.Option{}
	if config.MigrationPorts.BindCheck {
		portOpts = append(portOpts, portalloc.WithBindCheck())
	}

	ports, err := portalloc.New(config.MigrationPorts.Min, config.MigrationPorts.Max, portOpts...)
	if err != nil {
		slog.ErrorContext(ctx, "creating port allocator", "error", err.Error())
		gs.Shutdown(1)
	}

	socketWait := relay.WaitOptions{
		PollInterval:    config.SocketWait.InitialInterval.Duration,
		MaxPollInterval: config.SocketWait.MaxInterval.Duration,
		Timeout:         config.SocketWait.Timeout.Duration,
	}

	hv := hypervisor.New(runner,
		hypervisor.WithStateDir(config.StateDir),
		hypervisor.WithBinaryPath(config.Binaries.CloudHypervisor),
		hypervisor.WithRemotePath(config.Binaries.Remote),
		hypervisor.WithSocketWait(socketWait),
		hypervisor.WithStopTimeout(config.StopTimeout.Duration),
	)

	// --------------------------------------------- Controller ----------------------------------------------------- //

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics := migration.NewMetrics(registry)

	list := domain.NewList(domain.WithJobWaitTimeout(config.JobWaitTimeout.Duration))

	orch := migration.New(list, ports, hv, runner,
		migration.WithHostname(config.Hostname),
		migration.WithStateDir(config.StateDir),
		migration.WithRemotePath(config.Binaries.Remote),
		migration.WithForwarderPath(config.Binaries.Forwarder),
		migration.WithSocketWait(socketWait),
		migration.WithMetrics(metrics),
	)

	domains := controller.NewDomains(list, hv, controller.WithMetrics(metrics))

	gs.OnShutdown("flush-logs", func(context.Context) error {
		if u, ok := logger.GetSink().(zapr.Underlier); ok {
			_ = u.GetUnderlying().Sync()
		}
		return nil
	})

	gs.OnShutdown("abort-incoming-migrations", func(ctx context.Context) error {
		return abortIncomingMigrations(ctx, list, orch)
	})

	// --------------------------------------------- App ------------------------------------------------------------ //

	apiTLS, err := tlsutil.BuildServerConfig(config.APIServer.TLS)
	if err != nil {
		slog.ErrorContext(ctx, "building api server TLS config", "error", err.Error())
		gs.Shutdown(1)
	}

	apiHandler, err := server.NewHandler(server.New(domains, orch))
	if err != nil {
		slog.ErrorContext(ctx, "building api handler", "error", err.Error())
		gs.Shutdown(1)
	}

	apiServer := &http.Server{ //nolint:exhaustruct
		Addr:              fmt.Sprintf(":%d", config.APIServer.Port),
		Handler:           httputil.TokenAuth(apiHandler, config.APIServer.Token),
		TLSConfig:         apiTLS,
		ReadHeaderTimeout: time.Second,
	}

	ready := new(atomic.Bool)
	ready.Store(true)

	// --------------------------------------------- Run Server ----------------------------------------------------- //

	httputil.Serve(map[string]*http.Server{
		"api":     apiServer,
		"metrics": setupMetricsServer(config, registry),
		"probes":  setupProbesServer(config, ready),
	}, gs)

	ready.Store(false)
	slog.Info("gracefully stopping", "binary", Name)

	gs.Shutdown(0)
}

// abortIncomingMigrations aborts the migrations this host receives: their relays and paused
// hypervisors would be orphaned once the daemon exits.
func abortIncomingMigrations(ctx context.Context, list *domain.List, orch migration.Orchestrator) error {
	var errs []error

	for _, d := range list.List() {
		s := d.MigrationSession()
		if s == nil || s.Role != domain.RoleDestination {
			continue
		}

		if err := orch.DstAbort(ctx, d.Name()); err != nil && !errors.Is(err, migration.ErrNoMigrationSession) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
