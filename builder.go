// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Add appends desired configuration lines to the tree.
//
// Without parents, each line becomes a top-level node unless an equal
// top-level node already exists. With parents, the ancestor chain is resolved
// position by position: existing nodes at each cumulative path are reused,
// missing ancestors are created with an indentation of position*indent
// columns. Lines are then added below the final ancestor with an indentation
// of len(parents)*indent columns, skipping lines already present there.
//
// Calling Add twice with the same arguments leaves the tree unchanged the
// second time.
//
// Example:
//
//	candidate, _ := netcfg.NewTree(netcfg.Indent(3))
//	candidate.Add([]string{"remote-as 65001", "description peer-a"},
//	    "router bgp 65000", "neighbor 1.1.1.1")
func (t *Tree) Add(lines []string, parents ...string) {
	if len(parents) == 0 {
		for _, line := range lines {
			node := newNode(line, line)
			if t.contains(node) {
				continue
			}
			t.nodes = append(t.nodes, node)
		}
		return
	}

	ancestors := make([]*Node, 0, len(parents))
	created := 0
	for i, p := range parents {
		if existing, ok := t.Get(parents[:i+1]...); ok {
			ancestors = append(ancestors, existing)
			continue
		}

		node := newNode(p, pad(p, i*t.indent))
		if len(ancestors) > 0 {
			node.Parents = append([]*Node(nil), ancestors...)
			parent := ancestors[len(ancestors)-1]
			parent.Children = append(parent.Children, node)
		}
		t.nodes = append(t.nodes, node)
		ancestors = append(ancestors, node)
		created++
	}

	parent := ancestors[len(ancestors)-1]
	added := 0
	for _, line := range lines {
		if parent.hasChildText(line) {
			continue
		}
		node := newNode(line, pad(line, len(parents)*t.indent))
		node.Parents = append([]*Node(nil), ancestors...)
		parent.Children = append(parent.Children, node)
		t.nodes = append(t.nodes, node)
		added++
	}

	t.logger.Debug("lines added",
		"parents", len(parents),
		"created_parents", created,
		"added", added,
		"skipped", len(lines)-added)
}

// Replace rewrites an existing line in place.
//
// The last node whose text matches one of the patterns (case-insensitive),
// whose text differs from replace and whose parent texts equal the requested
// parents gets its text replaced; its raw line keeps the original indentation.
// When nothing matches and AddIfMissing is set, replace is added under the
// requested parents instead.
//
// Example:
//
//	err := candidate.Replace("description uplink",
//	    netcfg.ReplaceRegex(`^description `),
//	    netcfg.ReplaceParents("interface Ethernet1/1"),
//	    netcfg.AddIfMissing(true))
//
// Returns an error wrapping ErrInvalidArgument when neither ReplaceText nor
// ReplaceRegex is given, or when a pattern does not compile.
func (t *Tree) Replace(replace string, mods ...func(*ReplaceReq)) error {
	req := &ReplaceReq{}
	for _, mod := range mods {
		mod(req)
	}

	if req.Text == "" && len(req.Regex) == 0 {
		return fmt.Errorf("replace: %w: missing required arguments (text or regex)", ErrInvalidArgument)
	}

	exprs := req.Regex
	if len(exprs) == 0 {
		exprs = []string{"^" + regexp.QuoteMeta(req.Text) + "$"}
	}

	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return fmt.Errorf("replace: %w: %v", ErrInvalidArgument, err)
		}
		patterns = append(patterns, re)
	}

	var match *Node
	for _, node := range t.nodes {
		if node.Text == replace || !node.hasParentTexts(req.Parents) {
			continue
		}
		for _, re := range patterns {
			if re.MatchString(node.Text) {
				match = node
				break
			}
		}
	}

	if match != nil {
		indent := len(match.Raw) - len(strings.TrimLeftFunc(match.Raw, unicode.IsSpace))
		t.logger.Debug("line replaced",
			"old", match.Text,
			"new", replace)
		match.Text = replace
		match.Raw = pad(replace, indent)
		return nil
	}

	if req.AddIfMissing {
		t.Add([]string{replace}, req.Parents...)
	}
	return nil
}

// contains reports whether a structurally equal node is in the flat sequence
func (t *Tree) contains(n *Node) bool {
	for _, node := range t.nodes {
		if node.Equal(n) {
			return true
		}
	}
	return false
}

// pad prefixes s with offset spaces
func pad(s string, offset int) string {
	if offset <= 0 {
		return s
	}
	return strings.Repeat(" ", offset) + s
}
