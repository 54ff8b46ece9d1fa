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

package stubs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/kraklabs/sigdoc/pkg/catalog"
)

// Loader extracts signatures from Python stub files.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger falls back to slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadFile parses the stub at path. The catalog module is the file name
// without its extension.
func (l *Loader) LoadFile(ctx context.Context, path string) (*catalog.Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stub %s: %w", path, err)
	}
	module := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return l.Parse(ctx, content, module)
}

// Parse extracts the module-level functions of a stub into a catalog.
// When a name is defined more than once (typing.overload), the first
// definition wins.
func (l *Loader) Parse(ctx context.Context, content []byte, module string) (*catalog.Catalog, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if errorCount := countErrors(root); errorCount > 0 {
			l.logger.Warn("stubs.treesitter.syntax_errors",
				"module", module,
				"error_count", errorCount,
			)
		}
		// Continue - Tree-sitter is error-tolerant
	}

	cat := catalog.New(module)
	for i := 0; i < int(root.NamedChildCount()); i++ {
		fn := functionDefinition(root.NamedChild(i))
		if fn == nil {
			continue
		}

		nameNode := fn.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		name := nameNode.Content(content)
		if _, exists := cat.RawDoc(name); exists {
			l.logger.Debug("stubs.function.duplicate", "module", module, "function", name)
			continue
		}

		if err := cat.Add(name, synthesize(fn, name, content)); err != nil {
			l.logger.Warn("stubs.function.rejected",
				"module", module,
				"function", name,
				"err", err,
			)
		}
	}

	l.logger.Debug("stubs.parse.done", "module", module, "functions", cat.Len())
	return cat, nil
}

// functionDefinition unwraps decorated definitions and returns nil for
// anything that is not a function.
func functionDefinition(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	switch node.Type() {
	case "function_definition":
		return node
	case "decorated_definition":
		return functionDefinition(node.ChildByFieldName("definition"))
	}
	return nil
}

// synthesize builds "name(params) -> ret" plus the docstring as summary.
func synthesize(fn *sitter.Node, name string, content []byte) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("(")
	if params := fn.ChildByFieldName("parameters"); params != nil {
		b.WriteString(strings.Join(parameterTokens(params, content), ", "))
	}
	b.WriteString(")")

	if ret := fn.ChildByFieldName("return_type"); ret != nil {
		b.WriteString(" -> ")
		b.WriteString(squash(ret.Content(content)))
	}

	if doc := leadingDocstring(fn, content); doc != "" {
		b.WriteString("\n\n")
		b.WriteString(doc)
	}
	return b.String()
}

// parameterTokens renders each parameter as "name: type = default", the
// spacing the binding generator uses.
func parameterTokens(params *sitter.Node, content []byte) []string {
	tokens := make([]string, 0, params.NamedChildCount())
	for i := 0; i < int(params.NamedChildCount()); i++ {
		child := params.NamedChild(i)
		switch child.Type() {
		case "comment":
			continue

		case "typed_parameter":
			// typed_parameter has no name field; the name is its first named child.
			var name string
			if child.NamedChildCount() > 0 {
				name = child.NamedChild(0).Content(content)
			}
			token := name
			if typ := child.ChildByFieldName("type"); typ != nil {
				token += ": " + squash(typ.Content(content))
			}
			tokens = append(tokens, token)

		case "typed_default_parameter", "default_parameter":
			var token string
			if n := child.ChildByFieldName("name"); n != nil {
				token = n.Content(content)
			}
			if typ := child.ChildByFieldName("type"); typ != nil {
				token += ": " + squash(typ.Content(content))
			}
			if value := child.ChildByFieldName("value"); value != nil {
				token += " = " + squash(value.Content(content))
			}
			tokens = append(tokens, token)

		default:
			// identifier, splats and the bare "*" / "/" separators
			tokens = append(tokens, squash(child.Content(content)))
		}
	}
	return tokens
}

// leadingDocstring returns the string literal opening the function body,
// without quotes and surrounding whitespace.
func leadingDocstring(fn *sitter.Node, content []byte) string {
	body := fn.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	stmt := body.NamedChild(0)
	if stmt.Type() != "expression_statement" || stmt.NamedChildCount() == 0 {
		return ""
	}
	str := stmt.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}
	return unquote(str.Content(content))
}

// unquote strips a Python string prefix and its quotes.
func unquote(s string) string {
	s = strings.TrimLeft(s, "rRuUbBfF")
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if len(s) >= 2*len(q) && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			s = s[len(q) : len(s)-len(q)]
			break
		}
	}
	return strings.TrimSpace(s)
}

// squash collapses runs of whitespace, including newlines, to single spaces.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// countErrors counts ERROR and MISSING nodes below node.
func countErrors(node *sitter.Node) int {
	if node == nil {
		return 0
	}
	count := 0
	if node.IsError() || node.IsMissing() {
		count++
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		count += countErrors(node.Child(i))
	}
	return count
}
