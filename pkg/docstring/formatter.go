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
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the batch concurrency used when none is configured.
const DefaultWorkers = 4

// FormatterConfig configures a Formatter.
type FormatterConfig struct {
	// Workers bounds the number of functions processed concurrently.
	// Values <= 0 select DefaultWorkers.
	Workers int

	// OnProgress, when set, is called once per function after it has been
	// processed, whatever the outcome. It may be called concurrently.
	OnProgress func(function string)
}

// Failure records a function whose docstring could not be installed.
type Failure struct {
	Function string `json:"function"`
	Error    string `json:"error"`
}

// Report is the outcome of a FormatAll run. All lists are sorted by name.
type Report struct {
	Formatted []string  `json:"formatted"`
	Skipped   []string  `json:"skipped"`
	Failed    []Failure `json:"failed,omitempty"`
}

// Formatter runs an Injector over many functions.
type Formatter struct {
	injector   *Injector
	workers    int
	onProgress func(string)
	logger     *slog.Logger
}

// NewFormatter creates a Formatter. A nil logger falls back to slog.Default().
func NewFormatter(injector *Injector, cfg FormatterConfig, logger *slog.Logger) *Formatter {
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Formatter{
		injector:   injector,
		workers:    workers,
		onProgress: cfg.OnProgress,
		logger:     logger,
	}
}

// FormatAll formats and installs the docstrings of names, looking argument
// prose up in prose (which may be nil).
//
// A failed install does not stop the other functions: failures are collected
// in the report and returned joined. Context cancellation stops the run and
// is returned as is, together with the partial report.
func (f *Formatter) FormatAll(ctx context.Context, names []string, prose ProseProvider) (*Report, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)

	var (
		mu       sync.Mutex
		report   = &Report{Formatted: []string{}, Skipped: []string{}}
		failures = make(map[string]error)
	)

	for _, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			var body map[string]string
			if prose != nil {
				body = prose.ProseFor(name)
			}

			installed, err := f.injector.Inject(gctx, name, body)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
			}

			mu.Lock()
			switch {
			case err != nil:
				failures[name] = err
			case installed:
				report.Formatted = append(report.Formatted, name)
			default:
				report.Skipped = append(report.Skipped, name)
			}
			mu.Unlock()

			if f.onProgress != nil {
				f.onProgress(name)
			}
			return nil
		})
	}

	waitErr := g.Wait()

	sort.Strings(report.Formatted)
	sort.Strings(report.Skipped)
	failed := make([]string, 0, len(failures))
	for name := range failures {
		failed = append(failed, name)
	}
	sort.Strings(failed)
	errs := make([]error, 0, len(failed))
	for _, name := range failed {
		report.Failed = append(report.Failed, Failure{Function: name, Error: failures[name].Error()})
		errs = append(errs, failures[name])
	}

	if waitErr != nil {
		return report, waitErr
	}

	f.logger.Info("docstring.format.done",
		"formatted", len(report.Formatted),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed),
	)
	return report, errors.Join(errs...)
}
