// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import "fmt"

// RenderMode selects how a configuration section is rendered
type RenderMode string

// Render modes for Section and SectionLines
const (
	// RenderBlock renders the raw, indentation-preserving lines (default)
	RenderBlock RenderMode = "block"

	// RenderSet renders flattened "set ..." lines, one per node below the
	// section root
	RenderSet RenderMode = "set"
)

// ValidRenderModes contains the list of valid render modes
var ValidRenderModes = []RenderMode{
	RenderBlock,
	RenderSet,
}

// ValidateRenderMode checks if the render mode is valid
//
// The empty mode is accepted and treated as RenderBlock.
//
// Example:
//
//	if err := netcfg.ValidateRenderMode("set"); err != nil {
//	    log.Fatal(err)
//	}
func ValidateRenderMode(mode RenderMode) error {
	if mode == "" {
		return nil
	}
	for _, valid := range ValidRenderModes {
		if mode == valid {
			return nil
		}
	}
	return fmt.Errorf("%w: invalid render mode: %s (valid values: block, set)", ErrInvalidArgument, mode)
}

// renderLines renders an expanded section in the given mode
func renderLines(section []*Node, mode RenderMode) []string {
	if mode == RenderSet {
		if len(section) < 2 {
			return []string{}
		}
		lines := make([]string, 0, len(section)-1)
		for _, node := range section[1:] {
			lines = append(lines, node.Line())
		}
		return lines
	}

	lines := make([]string, 0, len(section))
	for _, node := range section {
		lines = append(lines, node.Raw)
	}
	return lines
}
