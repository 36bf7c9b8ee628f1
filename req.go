// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import "fmt"

// MatchMode decides when a source node counts as already present in the
// reference tree
type MatchMode string

const (
	// MatchLine treats a node as present if a structurally equal node exists
	// anywhere in the reference tree (default)
	MatchLine MatchMode = "line"

	// MatchStrict compares source and reference scopes index by index
	MatchStrict MatchMode = "strict"

	// MatchExact reports the whole source scope if any position differs
	MatchExact MatchMode = "exact"
)

// ReplaceMode decides how an update is emitted
type ReplaceMode string

const (
	// ReplaceLine emits each update as itself (default)
	ReplaceLine ReplaceMode = "line"

	// ReplaceBlock emits the immediate parent of a nested update instead
	ReplaceBlock ReplaceMode = "block"
)

// ParseMatchMode converts a string into a MatchMode
func ParseMatchMode(s string) (MatchMode, error) {
	switch m := MatchMode(s); m {
	case MatchLine, MatchStrict, MatchExact:
		return m, nil
	case "":
		return MatchLine, nil
	default:
		return "", fmt.Errorf("%w: invalid match mode: %s (must be 'line', 'strict', or 'exact')", ErrInvalidArgument, s)
	}
}

// ParseReplaceMode converts a string into a ReplaceMode
func ParseReplaceMode(s string) (ReplaceMode, error) {
	switch r := ReplaceMode(s); r {
	case ReplaceLine, ReplaceBlock:
		return r, nil
	case "":
		return ReplaceLine, nil
	default:
		return "", fmt.Errorf("%w: invalid replace mode: %s (must be 'line' or 'block')", ErrInvalidArgument, s)
	}
}

// DiffReq holds the parameters of a Difference call
//
// It is built from request modifiers; the zero value compares whole trees
// with MatchLine and ReplaceLine.
//
// Example:
//
//	commands, err := candidate.Difference(running,
//	    netcfg.DiffPath("router bgp 65000"),
//	    netcfg.DiffMatch(netcfg.MatchStrict))
type DiffReq struct {
	// Path restricts the comparison to the children of this node
	Path []string

	// Match is the matching discipline
	Match MatchMode

	// Replace is the emission discipline
	Replace ReplaceMode

	// ExpandChildren also emits the direct children of every update
	ExpandChildren bool
}

// validate checks the modes of the request
func (r *DiffReq) validate() error {
	if _, err := ParseMatchMode(string(r.Match)); err != nil {
		return err
	}
	if _, err := ParseReplaceMode(string(r.Replace)); err != nil {
		return err
	}
	return nil
}

// ReplaceReq holds the parameters of a Replace call
type ReplaceReq struct {
	// Text is a literal line text to look for
	Text string

	// Regex are patterns to look for; they take precedence over Text
	Regex []string

	// Parents is the parent text chain the matched node must have
	Parents []string

	// AddIfMissing adds the replacement under Parents when nothing matches
	AddIfMissing bool
}

// ApplyReq holds the parameters of an Apply call
type ApplyReq struct {
	// RunningConfig is pre-retrieved running configuration text.
	// When empty, it is requested from the device, so an empty running
	// configuration can only come from the device itself.
	RunningConfig string

	// Indent is the nesting unit of the running configuration
	Indent int

	// CheckMode computes the commands without configuring the device
	CheckMode bool

	// Save persists the configuration after a change
	Save bool

	// Diff are the modifiers passed to Difference
	Diff []func(*DiffReq)
}
