// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newCandidate returns an empty tree with the candidate indent
func newCandidate(t *testing.T) *Tree {
	t.Helper()
	tree, err := NewTree(Indent(DefaultCandidateIndent))
	if err != nil {
		t.Fatalf("NewTree() returned error: %v", err)
	}
	return tree
}

// TestDifferenceLine tests the default line match mode
func TestDifferenceLine(t *testing.T) {
	running := mustParse(t, runningConfig, 2)

	tests := []struct {
		name  string
		build func(*Tree)
		want  []string
	}{
		{
			name: "missing leaf emits ancestor chain",
			build: func(c *Tree) {
				c.Add([]string{"remote-as 65001", "description peer-b"}, "router bgp 65000", "neighbor 1.1.1.1")
			},
			want: []string{
				"router bgp 65000",
				"   neighbor 1.1.1.1",
				"      description peer-b",
			},
		},
		{
			name: "missing parent precedes its children",
			build: func(c *Tree) {
				c.Add([]string{"remote-as 65003"}, "router bgp 65000", "neighbor 3.3.3.3")
			},
			want: []string{
				"router bgp 65000",
				"   neighbor 3.3.3.3",
				"      remote-as 65003",
			},
		},
		{
			name: "present configuration yields nothing",
			build: func(c *Tree) {
				c.Add([]string{"hostname r1"})
				c.Add([]string{"remote-as 65002"}, "router bgp 65000", "neighbor 2.2.2.2")
			},
			want: []string{},
		},
		{
			name: "top-level change",
			build: func(c *Tree) {
				c.Add([]string{"hostname r2"})
			},
			want: []string{"hostname r2"},
		},
		{
			name: "updates are grouped under the first emitted parent",
			build: func(c *Tree) {
				c.Add([]string{"mtu 9000"}, "interface Ethernet1/1")
				c.Add([]string{"hostname r2"})
				c.Add([]string{"no shutdown"}, "interface Ethernet1/1")
			},
			want: []string{
				"interface Ethernet1/1",
				"   mtu 9000",
				"   no shutdown",
				"hostname r2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := newCandidate(t)
			tt.build(candidate)

			got, err := candidate.Difference(running)
			if err != nil {
				t.Fatalf("Difference() returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Difference() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestDifferenceSameTextDifferentParents tests that equality includes the ancestor chain
func TestDifferenceSameTextDifferentParents(t *testing.T) {
	running := mustParse(t, "interface Ethernet1/1\n  shutdown\ninterface Ethernet1/2", 2)
	candidate := newCandidate(t)
	candidate.Add([]string{"shutdown"}, "interface Ethernet1/2")

	got, err := candidate.Difference(running)
	if err != nil {
		t.Fatalf("Difference() returned error: %v", err)
	}
	want := []string{"interface Ethernet1/2", "   shutdown"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Difference() mismatch (-want +got):\n%s", diff)
	}
}

// TestDifferenceIdempotent tests that a tree has no difference to itself
func TestDifferenceIdempotent(t *testing.T) {
	running := mustParse(t, runningConfig, 2)
	again := mustParse(t, runningConfig, 2)

	for _, mode := range []MatchMode{MatchLine, MatchStrict, MatchExact} {
		t.Run(string(mode), func(t *testing.T) {
			got, err := again.Difference(running, DiffMatch(mode))
			if err != nil {
				t.Fatalf("Difference() returned error: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("Expected no commands, got %v", got)
			}
		})
	}
}

// TestDifferenceMatchModes tests strict and exact positional comparison
func TestDifferenceMatchModes(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		running   string
		mode      MatchMode
		want      []string
	}{
		{
			name:      "strict reports differing and extra positions",
			candidate: "a\nb\nc",
			running:   "a\nx",
			mode:      MatchStrict,
			want:      []string{"b", "c"},
		},
		{
			name:      "strict ignores extra running lines",
			candidate: "a",
			running:   "a\nb",
			mode:      MatchStrict,
			want:      []string{},
		},
		{
			name:      "exact reissues everything on one difference",
			candidate: "a\nb\nc",
			running:   "a\nx\nc",
			mode:      MatchExact,
			want:      []string{"a", "b", "c"},
		},
		{
			name:      "exact reissues on length mismatch",
			candidate: "a",
			running:   "a\nb",
			mode:      MatchExact,
			want:      []string{"a"},
		},
		{
			name:      "line ignores order",
			candidate: "b\na",
			running:   "a\nb",
			mode:      MatchLine,
			want:      []string{},
		},
		{
			name:      "strict detects reordering",
			candidate: "b\na",
			running:   "a\nb",
			mode:      MatchStrict,
			want:      []string{"b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := mustParse(t, tt.candidate, 1)
			running := mustParse(t, tt.running, 1)

			got, err := candidate.Difference(running, DiffMatch(tt.mode))
			if err != nil {
				t.Fatalf("Difference() returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Difference() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestDifferencePath tests restricting the comparison to a section
func TestDifferencePath(t *testing.T) {
	candidate := mustParse(t, "router bgp 1\n neighbor a\n neighbor b\nhostname x", 1)
	running := mustParse(t, "router bgp 1\n neighbor b\n neighbor a\nhostname y", 1)

	tests := []struct {
		name string
		mods []func(*DiffReq)
		want []string
	}{
		{
			name: "line mode within path",
			mods: []func(*DiffReq){DiffPath("router bgp 1")},
			want: []string{},
		},
		{
			name: "strict mode within path",
			mods: []func(*DiffReq){DiffPath("router bgp 1"), DiffMatch(MatchStrict)},
			want: []string{"router bgp 1", " neighbor a", " neighbor b"},
		},
		{
			name: "missing path",
			mods: []func(*DiffReq){DiffPath("router ospf 1")},
			want: []string{},
		},
		{
			name: "whole tree",
			mods: nil,
			want: []string{"hostname x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := candidate.Difference(running, tt.mods...)
			if err != nil {
				t.Fatalf("Difference() returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Difference() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestDifferenceBlock tests block replacement and child expansion
func TestDifferenceBlock(t *testing.T) {
	running := mustParse(t, "interface Eth1\n  description old\nhostname r1", 2)
	candidate := mustParse(t, "interface Eth1\n  description new\n  mtu 9000\nhostname r2", 2)

	tests := []struct {
		name string
		mods []func(*DiffReq)
		want []string
	}{
		{
			name: "line",
			mods: nil,
			want: []string{"interface Eth1", "  description new", "  mtu 9000", "hostname r2"},
		},
		{
			name: "block collapses nested updates",
			mods: []func(*DiffReq){DiffReplace(ReplaceBlock)},
			want: []string{"interface Eth1", "hostname r2"},
		},
		{
			name: "block with children",
			mods: []func(*DiffReq){DiffReplace(ReplaceBlock), DiffExpandChildren(true)},
			want: []string{"interface Eth1", "  description new", "  mtu 9000", "hostname r2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := candidate.Difference(running, tt.mods...)
			if err != nil {
				t.Fatalf("Difference() returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Difference() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestDifferenceErrors tests invalid requests
func TestDifferenceErrors(t *testing.T) {
	running := mustParse(t, runningConfig, 2)
	candidate := newCandidate(t)

	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "invalid match mode",
			run: func() error {
				_, err := candidate.Difference(running, DiffMatch("fuzzy"))
				return err
			},
		},
		{
			name: "invalid replace mode",
			run: func() error {
				_, err := candidate.Difference(running, DiffReplace("section"))
				return err
			},
		},
		{
			name: "nil reference",
			run: func() error {
				_, err := candidate.Difference(nil)
				return err
			},
		},
		{
			name: "nil candidate",
			run: func() error {
				_, err := Difference(nil, running)
				return err
			},
		},
		{
			name: "updates with nil reference",
			run: func() error {
				_, err := candidate.Updates(nil)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got: %v", err)
			}
		})
	}
}

// TestUpdates tests the raw update nodes before emission
func TestUpdates(t *testing.T) {
	running := mustParse(t, runningConfig, 2)
	candidate := newCandidate(t)
	candidate.Add([]string{"remote-as 65009", "description peer-a"}, "router bgp 65000", "neighbor 1.1.1.1")

	updates, err := candidate.Updates(running)
	if err != nil {
		t.Fatalf("Updates() returned error: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("Expected 1 update, got %d", len(updates))
	}
	if diff := cmp.Diff([]string{"router bgp 65000", "neighbor 1.1.1.1", "remote-as 65009"}, updates[0].Path()); diff != "" {
		t.Errorf("Update path mismatch (-want +got):\n%s", diff)
	}

	pkg, err := Difference(candidate, running)
	if err != nil {
		t.Fatalf("Difference() returned error: %v", err)
	}
	method, _ := candidate.Difference(running)
	if diff := cmp.Diff(method, pkg); diff != "" {
		t.Errorf("Package and method results differ (-method +package):\n%s", diff)
	}
}
