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
	"fmt"
	"log/slog"
	"time"

	"github.com/kraklabs/sigdoc/internal/contract"
	"github.com/kraklabs/sigdoc/pkg/sigparse"
)

// Injector rewrites the docstring of one function at a time: it reads the raw
// docstring from a Source, parses it, injects argument prose, renders it and
// hands the result to a Sink.
//
// Injector holds no per-call state and is safe for concurrent use when the
// Source and Sink are.
type Injector struct {
	source Source
	sink   Sink
	logger *slog.Logger
}

// NewInjector creates an Injector. A nil logger falls back to slog.Default().
func NewInjector(source Source, sink Sink, logger *slog.Logger) *Injector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Injector{
		source: source,
		sink:   sink,
		logger: logger,
	}
}

// Inject formats the docstring of name with the given argument prose and
// installs it.
//
// It returns false with a nil error when there is nothing to do: the source
// has no docstring for name, the docstring is too large, or it is not a
// recognizable signature. Install failures are returned wrapped, so
// errors.Is(err, ErrFunctionNotFound) identifies a wrong function name.
func (in *Injector) Inject(ctx context.Context, name string, prose map[string]string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	doc, rendered, ok := in.Format(name, prose)
	if !ok {
		return false, nil
	}

	if err := in.sink.Install(name, rendered); err != nil {
		recordInstallFailure()
		in.logger.Warn("docstring.install.failed",
			"function", name,
			"err", err,
		)
		return false, fmt.Errorf("install docstring for %q: %w", name, err)
	}

	in.logger.Debug("docstring.install.ok",
		"function", name,
		"arguments", len(doc.Arguments),
	)
	return true, nil
}

// Format runs the read, parse, inject and render steps for name without
// installing anything. The boolean is false when there is nothing to format.
func (in *Injector) Format(name string, prose map[string]string) (*sigparse.FunctionDocument, string, bool) {
	start := time.Now()

	raw, ok := in.source.RawDoc(name)
	if !ok {
		recordUnavailable()
		in.logger.Debug("docstring.source.unavailable", "function", name)
		return nil, "", false
	}
	if res := contract.ValidateRawDoc(raw); !res.OK {
		recordUnavailable()
		in.logger.Warn("docstring.source.rejected",
			"function", name,
			"reason", res.Message,
		)
		return nil, "", false
	}

	doc := sigparse.Parse(raw)
	if doc.Empty() {
		recordUnrecognized()
		in.logger.Debug("docstring.parse.unrecognized", "function", name)
		return nil, "", false
	}
	recordParsed()

	if n := countDegraded(&doc); n > 0 {
		recordDegraded(n)
		in.logger.Debug("docstring.parse.degraded_arguments",
			"function", name,
			"count", n,
		)
	}

	res := InjectProse(&doc, prose)
	recordInjected(res.Injected)
	if len(res.Unmatched) > 0 {
		recordUnmatched(len(res.Unmatched))
		in.logger.Debug("docstring.inject.unmatched_keys",
			"function", name,
			"keys", res.Unmatched,
		)
	}

	rendered := Render(&doc)
	observeFormat(start)
	return &doc, rendered, true
}

// countDegraded counts arguments whose token matched neither pattern.
func countDegraded(doc *sigparse.FunctionDocument) int {
	n := 0
	for _, arg := range doc.Arguments {
		if arg.Name == "" {
			n++
		}
	}
	return n
}
