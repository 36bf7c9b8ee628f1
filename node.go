// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import "strings"

// structuralChars are stripped from a line to obtain its canonical text
const structuralChars = "{};"

// Node represents one logical configuration line and its position in the
// configuration hierarchy.
//
// Parents are shared references into the same Tree, root first and the
// immediate parent last. Children are the directly nested lines in insertion
// order.
type Node struct {
	// Text is the canonical command text ('{', '}' and ';' removed, trimmed)
	Text string

	// Raw is the original line including its indentation
	Raw string

	// Parents is the ancestor chain, root first
	Parents []*Node

	// Children are the directly nested nodes
	Children []*Node
}

// newNode creates a detached node with the given canonical and raw text
func newNode(text, raw string) *Node {
	return &Node{Text: text, Raw: raw}
}

// cleanText returns the canonical text of a raw configuration line
func cleanText(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if strings.ContainsRune(structuralChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// Equal reports whether two nodes are structurally equal.
//
// Nodes are equal when their Text matches and their Parents are pairwise
// equal under the same definition. Raw text and children are never
// consulted, so nodes of independently parsed trees compare by content.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n == other {
		return true
	}
	if n.Text != other.Text || len(n.Parents) != len(other.Parents) {
		return false
	}
	for i := range n.Parents {
		if !n.Parents[i].Equal(other.Parents[i]) {
			return false
		}
	}
	return true
}

// Line returns the flattened assignment form of the node:
// "set", each parent text and the node text joined by single spaces.
//
// Example:
//
//	tree, _ := netcfg.Parse("router bgp 65000\n  neighbor 1.1.1.1", 2)
//	node, _ := tree.Get("router bgp 65000", "neighbor 1.1.1.1")
//	fmt.Println(node.Line()) // set router bgp 65000 neighbor 1.1.1.1
func (n *Node) Line() string {
	parts := make([]string, 0, len(n.Parents)+2)
	parts = append(parts, "set")
	for _, p := range n.Parents {
		parts = append(parts, p.Text)
	}
	parts = append(parts, n.Text)
	return strings.Join(parts, " ")
}

// Path returns the parent texts followed by the node's own text
func (n *Node) Path() []string {
	path := make([]string, 0, len(n.Parents)+1)
	for _, p := range n.Parents {
		path = append(path, p.Text)
	}
	return append(path, n.Text)
}

// String returns the raw line
func (n *Node) String() string {
	return n.Raw
}

// hasParentTexts reports whether the node's parent texts equal path
func (n *Node) hasParentTexts(path []string) bool {
	if len(n.Parents) != len(path) {
		return false
	}
	for i, p := range n.Parents {
		if p.Text != path[i] {
			return false
		}
	}
	return true
}

// hasChildText reports whether a direct child has the given text
func (n *Node) hasChildText(text string) bool {
	for _, c := range n.Children {
		if c.Text == text {
			return true
		}
	}
	return false
}
