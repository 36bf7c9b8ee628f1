// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse parses indentation-structured configuration text into a new Tree.
//
// The indent argument is the number of whitespace columns that represent one
// nesting level in the text. Additional tree options (CommentTokens,
// WithLogger) may be supplied.
//
// Example:
//
//	running, err := netcfg.Parse(text, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	section, err := running.Section(netcfg.RenderBlock, "router bgp 65000")
//
// Returns an error only if the tree configuration is invalid (e.g. indent < 1).
func Parse(text string, indent int, opts ...func(*Tree)) (*Tree, error) {
	opts = append([]func(*Tree){Indent(indent)}, opts...)
	tree, err := NewTree(opts...)
	if err != nil {
		return nil, err
	}
	tree.Load(text)
	return tree, nil
}

// Load replaces the tree contents with the parse of text
func (t *Tree) Load(text string) {
	nodes, orphans := parseLines(text, t.indent, t.commentTokens)
	t.nodes = nodes

	t.logger.Debug("configuration parsed",
		"nodes", len(nodes),
		"orphans", orphans,
		"indent", t.indent)
}

// LoadFile reads a configuration file and loads its contents into the tree
func (t *Tree) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		t.logger.Debug("configuration file read failed",
			"path", path,
			"error", err.Error())
		// the file name is enough; the directory may be sensitive
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	t.Load(string(data))
	return nil
}

// ignoreLine reports whether text starts with one of the comment tokens
func ignoreLine(text string, tokens []string) bool {
	for _, token := range tokens {
		if token != "" && strings.HasPrefix(text, token) {
			return true
		}
	}
	return false
}

// leadingWhitespace counts the whitespace characters that prefix line
func leadingWhitespace(line string) int {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	return utf8.RuneCountInString(line[:len(line)-len(trimmed)])
}

// parseLines converts text into the flat node sequence of a tree.
//
// Ancestor stack and output are local to the call. A nested line deeper than
// the current stack allows is kept in the output but not linked to any
// parent; the number of such orphans is returned alongside the nodes.
func parseLines(text string, indent int, commentTokens []string) ([]*Node, int) {
	var (
		ancestors []*Node
		nodes     []*Node
		orphans   int
	)

	for _, line := range strings.Split(text, "\n") {
		raw := strings.TrimSuffix(line, "\r")
		text := cleanText(raw)
		if text == "" || ignoreLine(text, commentTokens) {
			continue
		}

		node := newNode(text, raw)
		level := leadingWhitespace(raw) / indent

		// Top-level line, or indented by less than one unit
		if level == 0 {
			ancestors = []*Node{node}
			nodes = append(nodes, node)
			continue
		}

		depth := min(level, len(ancestors))
		node.Parents = append([]*Node(nil), ancestors[:depth]...)

		if level > len(ancestors) {
			orphans++
			nodes = append(nodes, node)
			continue
		}

		ancestors = append(ancestors[:level], node)
		parent := ancestors[level-1]
		parent.Children = append(parent.Children, node)

		nodes = append(nodes, node)
	}

	return nodes, orphans
}
