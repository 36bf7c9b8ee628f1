// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import (
	"fmt"
	"regexp"
	"strings"
)

// Default tree configuration values
const (
	// DefaultIndent is used when no Indent option is given
	DefaultIndent = 1

	// DefaultRunningIndent is the nesting unit of retrieved device configuration
	DefaultRunningIndent = 2

	// DefaultCandidateIndent is the nesting unit commonly used for candidate
	// trees so that synthesized lines never collide with retrieved indentation
	DefaultCandidateIndent = 3
)

// DefaultCommentTokens are the line prefixes skipped by the parser
var DefaultCommentTokens = []string{"#", "!"}

// Tree is an ordered collection of configuration nodes.
//
// The flat sequence is kept in parse/insertion order. Every node's Parents
// chain consists of nodes of the same tree. A Tree is not safe for concurrent
// mutation; independent trees can be used from separate goroutines freely.
type Tree struct {
	// nodes is the flat sequence in parse/insertion order
	nodes []*Node

	// indent is the number of columns per nesting level
	indent int

	// commentTokens are the line prefixes ignored while parsing
	commentTokens []string

	logger Logger
}

// NewTree creates an empty Tree with the given options
//
// Example:
//
//	candidate, err := netcfg.NewTree(netcfg.Indent(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	candidate.Add([]string{"remote-as 65001"}, "router bgp 65000", "neighbor 1.1.1.1")
//
// Returns an error if the configuration is invalid.
func NewTree(opts ...func(*Tree)) (*Tree, error) {
	tree := &Tree{
		indent:        DefaultIndent,
		commentTokens: DefaultCommentTokens,
		logger:        &NoOpLogger{},
	}

	for _, opt := range opts {
		opt(tree)
	}

	if err := tree.validateConfig(); err != nil {
		return nil, err
	}

	return tree, nil
}

// validateConfig validates tree configuration
func (t *Tree) validateConfig() error {
	if t.indent < 1 {
		return fmt.Errorf("%w: indent must be positive, got: %d", ErrInvalidArgument, t.indent)
	}
	return nil
}

// Indent returns the number of whitespace columns per nesting level
func (t *Tree) Indent() int {
	return t.indent
}

// Len returns the number of nodes in the flat sequence
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Items returns the flat node sequence in parse/insertion order
//
// Returns a copy of the slice; the nodes themselves are shared.
func (t *Tree) Items() []*Node {
	result := make([]*Node, len(t.nodes))
	copy(result, t.nodes)
	return result
}

// Get returns the first node whose text equals the last path element and
// whose parent texts equal the preceding elements.
//
// Example:
//
//	node, ok := tree.Get("router bgp 65000", "neighbor 1.1.1.1")
//	if !ok {
//	    // not configured yet
//	}
func (t *Tree) Get(path ...string) (*Node, bool) {
	if len(path) == 0 {
		return nil, false
	}
	text := path[len(path)-1]
	parents := path[:len(path)-1]
	for _, node := range t.nodes {
		if node.Text == text && node.hasParentTexts(parents) {
			return node, true
		}
	}
	return nil, false
}

// Children returns the direct children of the node at path
//
// Returns a copy of the child slice; use Add to extend the tree.
func (t *Tree) Children(path ...string) ([]*Node, bool) {
	node, ok := t.Get(path...)
	if !ok {
		return nil, false
	}
	result := make([]*Node, len(node.Children))
	copy(result, node.Children)
	return result, true
}

// ExpandSection returns node followed by a pre-order traversal of its
// descendants. Nodes already visited are skipped.
func (t *Tree) ExpandSection(node *Node) []*Node {
	if node == nil {
		return nil
	}
	visited := make(map[*Node]bool)
	return expandSection(node, visited, nil)
}

func expandSection(node *Node, visited map[*Node]bool, section []*Node) []*Node {
	visited[node] = true
	section = append(section, node)
	for _, child := range node.Children {
		if visited[child] {
			continue
		}
		section = expandSection(child, visited, section)
	}
	return section
}

// SectionNodes returns the node at path and all of its descendants
//
// Returns ErrPathNotFound if the path does not resolve.
func (t *Tree) SectionNodes(path ...string) ([]*Node, error) {
	node, ok := t.Get(path...)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, truncatePath(strings.Join(path, " > ")))
	}
	return t.ExpandSection(node), nil
}

// SectionLines renders the section at path as individual lines.
//
// RenderBlock yields the raw line of every section node, RenderSet yields the
// "set ..." line of every node below the section root.
//
// Example:
//
//	lines, err := tree.SectionLines(netcfg.RenderSet, "interfaces", "ge-0/0/0")
//	// [set interfaces ge-0/0/0 unit 0 ...]
func (t *Tree) SectionLines(mode RenderMode, path ...string) ([]string, error) {
	if err := ValidateRenderMode(mode); err != nil {
		return nil, err
	}
	section, err := t.SectionNodes(path...)
	if err != nil {
		return nil, err
	}
	return renderLines(section, mode), nil
}

// Section renders the section at path as a single newline-joined text
//
// Example:
//
//	config, err := running.Section(netcfg.RenderBlock, "router bgp 65000", "neighbor 1.1.1.1")
//	if errors.Is(err, netcfg.ErrPathNotFound) {
//	    // neighbor does not exist yet
//	}
func (t *Tree) Section(mode RenderMode, path ...string) (string, error) {
	lines, err := t.SectionLines(mode, path...)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// String reconstructs the configuration text from all top-level sections
func (t *Tree) String() string {
	var b strings.Builder
	for _, node := range t.nodes {
		if len(node.Parents) > 0 {
			continue
		}
		for _, line := range renderLines(t.ExpandSection(node), RenderBlock) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}

// Lines returns the path-compressed "set" view of the tree.
//
// A node's line is skipped when the next node's line starts with it, so
// only the most specific line of a chain is kept.
func (t *Tree) Lines() []string {
	var lines []string
	for i, node := range t.nodes {
		line := node.Line()
		if i+1 < len(t.nodes) && strings.HasPrefix(t.nodes[i+1].Line(), line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Match is the result of a Search
type Match struct {
	// Text is the complete matched text
	Text string

	// Groups holds the unnamed capture groups in pattern order
	Groups []string

	// Named holds the named capture groups
	Named map[string]string
}

// Search runs expr, anchored at the start of a line, against the
// configuration text. With a path, only the child texts of that node are
// searched.
//
// Example:
//
//	m, err := running.Search(`router bgp (?P<asn>\d+)`)
//	if err == nil && m != nil {
//	    asn := m.Named["asn"]
//	}
//
// Returns nil when nothing matches or the path has no children. An invalid
// expression returns an error wrapping ErrInvalidArgument.
func (t *Tree) Search(expr string, path ...string) (*Match, error) {
	re, err := regexp.Compile(`(?m)^` + expr)
	if err != nil {
		return nil, fmt.Errorf("%w: search pattern: %v", ErrInvalidArgument, err)
	}

	var data string
	if len(path) > 0 {
		children, ok := t.Children(path...)
		if !ok || len(children) == 0 {
			return nil, nil
		}
		texts := make([]string, len(children))
		for i, c := range children {
			texts[i] = c.Text
		}
		data = strings.Join(texts, "\n")
	} else {
		data = t.String()
	}

	sub := re.FindStringSubmatch(data)
	if sub == nil {
		return nil, nil
	}

	match := &Match{Text: sub[0]}
	for i, name := range re.SubexpNames() {
		if i == 0 {
			continue
		}
		if name == "" {
			match.Groups = append(match.Groups, sub[i])
			continue
		}
		if match.Named == nil {
			match.Named = make(map[string]string)
		}
		match.Named[name] = sub[i]
	}
	return match, nil
}

// FindAll returns all non-overlapping matches of expr in the configuration
// text. Each entry holds the full match followed by its submatches.
func (t *Tree) FindAll(expr string) ([][]string, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: find pattern: %v", ErrInvalidArgument, err)
	}
	return re.FindAllStringSubmatch(t.String(), -1), nil
}

// truncatePath truncates a path for error messages
//
// Returns the first 100 characters of the path followed by "..." if longer.
func truncatePath(path string) string {
	if len(path) <= 100 {
		return path
	}
	return path[:100] + "..."
}
