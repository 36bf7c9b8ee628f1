// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package netcfg provides a hierarchical model of indentation-structured
// network device configuration (CLI running-config style text).
//
// The library parses configuration text into a tree of lines, lets callers
// build a candidate tree describing desired state, and computes the ordered,
// hierarchy-correct list of commands needed to bring the running
// configuration to the candidate.
//
// # Quick Start
//
// Parse the running configuration and build a candidate:
//
//	running, err := netcfg.Parse(runningText, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	candidate, err := netcfg.NewTree(netcfg.Indent(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	candidate.Add([]string{"remote-as 65001", "description peer-a"},
//	    "router bgp 65000", "neighbor 1.1.1.1")
//
//	commands, err := candidate.Difference(running)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// router bgp 65000
//	//    neighbor 1.1.1.1
//	//       remote-as 65001
//	//       description peer-a
//
// # Sections and Value Extraction
//
// Existing feature configuration is extracted as a section and scraped with
// patterns:
//
//	config, err := running.Section(netcfg.RenderBlock, "router bgp 65000", "neighbor 1.1.1.1")
//	if errors.Is(err, netcfg.ErrPathNotFound) {
//	    // not configured
//	}
//	m, _ := running.Search(`router bgp (?P<asn>\d+)`)
//
// RenderSet renders a section as flattened "set ..." lines instead of
// indented blocks.
//
// # Difference Modes
//
// Match modes decide which candidate lines count as changed:
//   - MatchLine: line is missing anywhere in the running tree (default)
//   - MatchStrict: positional comparison within the compared scope
//   - MatchExact: the whole scope is reissued on any positional difference
//
// Replace modes decide what is emitted for a change:
//   - ReplaceLine: the changed line itself (default)
//   - ReplaceBlock: the enclosing parent block
//
// # Applying Changes
//
// Apply runs the complete reconcile flow against any Device implementation:
//
//	res, err := netcfg.Apply(ctx, device, candidate, netcfg.CheckMode(true))
//	fmt.Println(res.GetValue("updates.#").Int())
//
// # Thread Safety
//
// A Tree is not safe for concurrent mutation. Difference only reads both
// trees, and distinct trees never share nodes, so separate trees can be
// parsed, built and compared from separate goroutines.
//
// # References
//
//   - gjson: https://github.com/tidwall/gjson
//   - sjson: https://github.com/tidwall/sjson
//   - zerolog: https://github.com/rs/zerolog
//   - go-diff: https://github.com/sergi/go-diff
package netcfg
