// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package docstring

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// metricsDocstring holds Prometheus metrics for the docstring pipeline.
type metricsDocstring struct {
	once     sync.Once
	registry *prometheus.Registry

	// Parsing
	parsed       prometheus.Counter
	unrecognized prometheus.Counter
	degraded     prometheus.Counter

	// Injection
	injected  prometheus.Counter
	unmatched prometheus.Counter

	// Boundary
	unavailable     prometheus.Counter
	installFailures prometheus.Counter

	// Durations
	formatDuration prometheus.Histogram
}

var docMetrics metricsDocstring

func (m *metricsDocstring) init() {
	m.once.Do(func() {
		m.registry = prometheus.NewRegistry()

		m.parsed = prometheus.NewCounter(prometheus.CounterOpts{Name: "sigdoc_documents_parsed_total", Help: "Raw docstrings parsed"})
		m.unrecognized = prometheus.NewCounter(prometheus.CounterOpts{Name: "sigdoc_documents_unrecognized_total", Help: "Raw docstrings that are not a signature"})
		m.degraded = prometheus.NewCounter(prometheus.CounterOpts{Name: "sigdoc_arguments_degraded_total", Help: "Argument tokens that matched no pattern"})

		m.injected = prometheus.NewCounter(prometheus.CounterOpts{Name: "sigdoc_descriptions_injected_total", Help: "Argument descriptions injected"})
		m.unmatched = prometheus.NewCounter(prometheus.CounterOpts{Name: "sigdoc_prose_keys_unmatched_total", Help: "Prose keys naming no argument"})

		m.unavailable = prometheus.NewCounter(prometheus.CounterOpts{Name: "sigdoc_sources_unavailable_total", Help: "Functions with no usable raw docstring"})
		m.installFailures = prometheus.NewCounter(prometheus.CounterOpts{Name: "sigdoc_install_failures_total", Help: "Rendered docstrings the sink rejected"})

		buckets := []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1}
		m.formatDuration = prometheus.NewHistogram(prometheus.HistogramOpts{Name: "sigdoc_format_seconds", Help: "Duration of parse, inject and render for one function", Buckets: buckets})

		m.registry.MustRegister(
			m.parsed, m.unrecognized, m.degraded,
			m.injected, m.unmatched,
			m.unavailable, m.installFailures,
			m.formatDuration,
		)
	})
}

// record helpers - used by Injector
func recordParsed() { docMetrics.init(); docMetrics.parsed.Inc() }
func recordUnrecognized() { docMetrics.init(); docMetrics.unrecognized.Inc() }
func recordDegraded(n int) { docMetrics.init(); docMetrics.degraded.Add(float64(n)) }
func recordInjected(n int) { docMetrics.init(); docMetrics.injected.Add(float64(n)) }
func recordUnmatched(n int) { docMetrics.init(); docMetrics.unmatched.Add(float64(n)) }
func recordUnavailable() { docMetrics.init(); docMetrics.unavailable.Inc() }
func recordInstallFailure() { docMetrics.init(); docMetrics.installFailures.Inc() }
func observeFormat(start time.Time) { docMetrics.init(); docMetrics.formatDuration.Observe(time.Since(start).Seconds()) }

// Gatherer exposes the pipeline metrics, for example to a promhttp handler.
func Gatherer() prometheus.Gatherer {
	docMetrics.init()
	return docMetrics.registry
}

// WriteMetrics writes the pipeline metrics in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func WriteMetrics(w io.Writer) error {
	families, err := Gatherer().Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
