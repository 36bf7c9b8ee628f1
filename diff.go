// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import "fmt"

// Difference computes the ordered commands that bring running toward candidate.
//
// It is equivalent to candidate.Difference(running, mods...).
func Difference(candidate, running *Tree, mods ...func(*DiffReq)) ([]string, error) {
	if candidate == nil || running == nil {
		return nil, fmt.Errorf("%w: difference requires two trees", ErrInvalidArgument)
	}
	return candidate.Difference(running, mods...)
}

// Updates returns the nodes of t that are missing from reference under the
// requested match mode, in source order, before replace-mode substitution.
//
// A Path that does not resolve in either tree yields an empty scope.
func (t *Tree) Updates(reference *Tree, mods ...func(*DiffReq)) ([]*Node, error) {
	if reference == nil {
		return nil, fmt.Errorf("%w: reference tree is nil", ErrInvalidArgument)
	}

	req, err := newDiffReq(mods)
	if err != nil {
		return nil, err
	}

	return t.updates(reference, req), nil
}

// newDiffReq builds a validated DiffReq from modifiers
func newDiffReq(mods []func(*DiffReq)) (*DiffReq, error) {
	req := &DiffReq{
		Match:   MatchLine,
		Replace: ReplaceLine,
	}
	for _, mod := range mods {
		mod(req)
	}
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("difference: %w", err)
	}
	return req, nil
}

func (t *Tree) updates(reference *Tree, req *DiffReq) []*Node {
	source := t.scope(req.Path)
	var updates []*Node

	switch req.Match {
	case MatchStrict:
		current := reference.scope(req.Path)
		for i, node := range source {
			if i >= len(current) || !node.Equal(current[i]) {
				updates = append(updates, node)
			}
		}

	case MatchExact:
		current := reference.scope(req.Path)
		if len(current) != len(source) {
			return append(updates, source...)
		}
		for i, node := range source {
			if !node.Equal(current[i]) {
				return append(updates, source...)
			}
		}

	default:
		index := reference.textIndex()
		for _, node := range source {
			if !containsEqual(index[node.Text], node) {
				updates = append(updates, node)
			}
		}
	}

	return updates
}

// Difference computes the ordered raw command lines that transform reference
// toward t.
//
// Every update is emitted together with its ancestor chain; parents always
// precede their children and each distinct raw line appears once. With
// ReplaceBlock, a nested update is replaced by its immediate parent.
//
// Example:
//
//	running, _ := netcfg.Parse(runningText, 2)
//	candidate, _ := netcfg.NewTree(netcfg.Indent(3))
//	candidate.Add([]string{"remote-as 65001"}, "router bgp 65000", "neighbor 1.1.1.1")
//
//	commands, err := candidate.Difference(running)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Returns an error only for invalid modes or a nil reference tree.
func (t *Tree) Difference(reference *Tree, mods ...func(*DiffReq)) ([]string, error) {
	if reference == nil {
		return nil, fmt.Errorf("%w: reference tree is nil", ErrInvalidArgument)
	}

	req, err := newDiffReq(mods)
	if err != nil {
		return nil, err
	}

	updates := t.updates(reference, req)

	diffs := newHierarchy()
	for _, update := range updates {
		if req.Replace == ReplaceBlock && len(update.Parents) > 0 {
			update = update.Parents[len(update.Parents)-1]
		}
		chain := make([]string, 0, len(update.Parents)+2)
		for _, p := range update.Parents {
			chain = append(chain, p.Raw)
		}
		chain = append(chain, update.Raw)
		diffs.put(chain)

		if req.ExpandChildren {
			for _, child := range update.Children {
				diffs.put(append(chain, child.Raw))
			}
		}
	}

	commands := diffs.flatten(make([]string, 0, len(updates)))

	t.logger.Debug("difference computed",
		"match", req.Match,
		"replace", req.Replace,
		"path", len(req.Path),
		"updates", len(updates),
		"commands", len(commands))

	return commands, nil
}

// scope returns the nodes compared by a difference: the children of path,
// or the whole flat sequence when no path is given
func (t *Tree) scope(path []string) []*Node {
	if len(path) == 0 {
		return t.nodes
	}
	children, _ := t.Children(path...)
	return children
}

// textIndex groups the flat sequence by node text
func (t *Tree) textIndex() map[string][]*Node {
	index := make(map[string][]*Node, len(t.nodes))
	for _, node := range t.nodes {
		index[node.Text] = append(index[node.Text], node)
	}
	return index
}

// containsEqual reports whether nodes holds a node structurally equal to n
func containsEqual(nodes []*Node, n *Node) bool {
	for _, node := range nodes {
		if node.Equal(n) {
			return true
		}
	}
	return false
}

// hierarchy is an insertion-ordered prefix tree of raw lines
type hierarchy struct {
	order    []string
	children map[string]*hierarchy
}

func newHierarchy() *hierarchy {
	return &hierarchy{children: map[string]*hierarchy{}}
}

// put records path, reusing existing prefixes
func (h *hierarchy) put(path []string) {
	current := h
	for _, key := range path {
		child, exists := current.children[key]
		if !exists {
			child = newHierarchy()
			current.children[key] = child
			current.order = append(current.order, key)
		}
		current = child
	}
}

// flatten appends all keys in pre-order to out
func (h *hierarchy) flatten(out []string) []string {
	for _, key := range h.order {
		out = append(out, key)
		out = h.children[key].flatten(out)
	}
	return out
}
