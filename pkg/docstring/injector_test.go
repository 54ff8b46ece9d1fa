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
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is a Source and Sink over two maps. Functions present in raw
// but absent from installable are readable but reject installs.
type memoryStore struct {
	mu          sync.Mutex
	raw         map[string]string
	installable map[string]bool
	installed   map[string]string
	installs    int
}

func newMemoryStore(raw map[string]string) *memoryStore {
	installable := make(map[string]bool, len(raw))
	for name := range raw {
		installable[name] = true
	}
	return &memoryStore{raw: raw, installable: installable, installed: map[string]string{}}
}

func (s *memoryStore) RawDoc(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.raw[name]
	return doc, ok
}

func (s *memoryStore) Install(name, doc string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.installable[name] {
		return fmt.Errorf("%s: %w", name, ErrFunctionNotFound)
	}
	s.installed[name] = doc
	s.installs++
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInjector_Inject(t *testing.T) {
	store := newMemoryStore(map[string]string{
		"foo": "foo(a: int, b: float = 1.0) -> open3d::Foo\n\nDoes foo.",
	})
	in := NewInjector(store, store, discardLogger())

	installed, err := in.Inject(context.Background(), "foo", map[string]string{"b": "Scale.", "zz": "stale"})
	require.NoError(t, err)
	assert.True(t, installed)

	want := "foo(a, b=1.0)\n\nDoes foo.\n\nArgs:\n    a (int)\n    b (float, optional): Scale.\n\nReturns:\n    open3d.Foo\n"
	assert.Equal(t, want, store.installed["foo"])
}

func TestInjector_Idempotent(t *testing.T) {
	store := newMemoryStore(map[string]string{"foo": "foo(a: int) -> None"})
	in := NewInjector(store, store, discardLogger())

	_, err := in.Inject(context.Background(), "foo", nil)
	require.NoError(t, err)
	first := store.installed["foo"]

	_, err = in.Inject(context.Background(), "foo", nil)
	require.NoError(t, err)
	assert.Equal(t, first, store.installed["foo"])
}

func TestInjector_NothingToDo(t *testing.T) {
	store := newMemoryStore(map[string]string{
		"builtin": "A plain docstring without a signature.",
	})
	in := NewInjector(store, store, discardLogger())

	for _, name := range []string{"missing", "builtin"} {
		t.Run(name, func(t *testing.T) {
			installed, err := in.Inject(context.Background(), name, map[string]string{"a": "x"})
			assert.NoError(t, err)
			assert.False(t, installed)
		})
	}
	assert.Zero(t, store.installs)
}

func TestInjector_OversizedDocIsSkipped(t *testing.T) {
	t.Setenv("SIGDOC_MAX_DOC_BYTES", "32")
	store := newMemoryStore(map[string]string{
		"big": "big(a: int) -> None\n\n" + strings.Repeat("long summary ", 10),
	})
	in := NewInjector(store, store, discardLogger())

	installed, err := in.Inject(context.Background(), "big", nil)
	assert.NoError(t, err)
	assert.False(t, installed)
}

func TestInjector_InstallFailureIsReported(t *testing.T) {
	store := newMemoryStore(map[string]string{"foo": "foo(a: int) -> None"})
	store.installable["foo"] = false
	in := NewInjector(store, store, discardLogger())

	installed, err := in.Inject(context.Background(), "foo", nil)
	require.Error(t, err)
	assert.False(t, installed)
	assert.True(t, errors.Is(err, ErrFunctionNotFound))
	assert.Contains(t, err.Error(), `"foo"`)
}

func TestInjector_CanceledContext(t *testing.T) {
	store := newMemoryStore(map[string]string{"foo": "foo(a: int) -> None"})
	in := NewInjector(store, store, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := in.Inject(ctx, "foo", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, store.installs)
}

func TestInjector_Format(t *testing.T) {
	store := newMemoryStore(map[string]string{"foo": "foo(a: int, b: int) -> None"})
	in := NewInjector(store, store, nil)

	doc, rendered, ok := in.Format("foo", map[string]string{"a": "first arg"})
	require.True(t, ok)
	require.NotNil(t, doc)
	assert.Equal(t, "first arg", doc.Arguments[0].Description)
	assert.Contains(t, rendered, "    a (int): first arg\n")
	assert.Zero(t, store.installs)
}

func TestInjector_Metrics(t *testing.T) {
	docMetrics.init()
	parsed := testutil.ToFloat64(docMetrics.parsed)
	degraded := testutil.ToFloat64(docMetrics.degraded)
	injected := testutil.ToFloat64(docMetrics.injected)
	unmatched := testutil.ToFloat64(docMetrics.unmatched)
	unavailable := testutil.ToFloat64(docMetrics.unavailable)
	failures := testutil.ToFloat64(docMetrics.installFailures)

	store := newMemoryStore(map[string]string{
		"foo": "foo(a: int, *args, b: int = 2) -> None",
		"bar": "bar(x: int) -> None",
	})
	store.installable["bar"] = false
	in := NewInjector(store, store, discardLogger())

	_, err := in.Inject(context.Background(), "foo", map[string]string{"a": "A", "b": "B", "c": "C"})
	require.NoError(t, err)
	_, err = in.Inject(context.Background(), "bar", nil)
	require.Error(t, err)
	_, err = in.Inject(context.Background(), "missing", nil)
	require.NoError(t, err)

	assert.Equal(t, parsed+2, testutil.ToFloat64(docMetrics.parsed))
	assert.Equal(t, degraded, testutil.ToFloat64(docMetrics.degraded))
	assert.Equal(t, injected+2, testutil.ToFloat64(docMetrics.injected))
	assert.Equal(t, unmatched+1, testutil.ToFloat64(docMetrics.unmatched))
	assert.Equal(t, unavailable+1, testutil.ToFloat64(docMetrics.unavailable))
	assert.Equal(t, failures+1, testutil.ToFloat64(docMetrics.installFailures))
}

func TestWriteMetrics(t *testing.T) {
	recordParsed()

	var buf strings.Builder
	require.NoError(t, WriteMetrics(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE sigdoc_documents_parsed_total counter")
	assert.Contains(t, out, "sigdoc_format_seconds_bucket")
}
