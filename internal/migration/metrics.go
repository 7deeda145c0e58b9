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
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// Metrics are the migration metrics. A nil *Metrics records nothing.
type Metrics struct {
	PhaseTotal    *prometheus.CounterVec
	PhaseDuration *prometheus.HistogramVec
	JobWait       *prometheus.HistogramVec
	LeasedPorts   prometheus.Gauge
}

// NewMetrics creates the migration metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PhaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chmigrate",
			Subsystem: "migration",
			Name:      "phases_total",
			Help:      "Migration phases run, by phase and result.",
		}, []string{"phase", "result"}),
		PhaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "chmigrate",
			Subsystem: "migration",
			Name:      "phase_duration_seconds",
			Help:      "Duration of migration phases in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300, 900},
		}, []string{"phase"}),
		JobWait: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "chmigrate",
			Subsystem: "job",
			Name:      "wait_duration_seconds",
			Help:      "Time spent waiting to acquire a domain job, by job kind and result.",
			Buckets:   []float64{0.001, 0.01, 0.1, 1, 5, 10, 30},
		}, []string{"kind", "result"}),
		LeasedPorts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "chmigrate",
			Subsystem: "migration",
			Name:      "leased_ports",
			Help:      "Migration ports currently leased.",
		}),
	}

	reg.MustRegister(m.PhaseTotal, m.PhaseDuration, m.JobWait, m.LeasedPorts)

	return m
}

func (m *Metrics) observePhase(phase string, d time.Duration, err error) {
	if m == nil {
		return
	}

	m.PhaseTotal.WithLabelValues(phase, result(err)).Inc()
	m.PhaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

// ObserveJobWait records the time spent in BeginJob.
func (m *Metrics) ObserveJobWait(kind domain.JobKind, d time.Duration, err error) {
	if m == nil {
		return
	}

	m.JobWait.WithLabelValues(kind.String(), result(err)).Observe(d.Seconds())
}

func (m *Metrics) setLeasedPorts(n int) {
	if m == nil {
		return
	}

	m.LeasedPorts.Set(float64(n))
}

func result(err error) string {
	if err != nil {
		return resultFailure
	}
	return resultSuccess
}
