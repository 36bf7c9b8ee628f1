// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Line prefixes used by TextDiff
const (
	diffPrefixInsert = "+ "
	diffPrefixDelete = "- "
	diffPrefixEqual  = "  "
)

// TextDiff returns a line-by-line diff of two configuration texts.
//
// Each output line is the input line prefixed with "+ " (only in after),
// "- " (only in before) or two spaces (in both). Unlike Difference, this is a
// purely textual comparison meant for reporting.
//
// Example:
//
//	fmt.Println(netcfg.TextDiff(running.String(), candidate.String()))
func TextDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(terminate(before), terminate(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []string
	for _, d := range diffs {
		prefix := diffPrefixEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = diffPrefixInsert
		case diffmatchpatch.DiffDelete:
			prefix = diffPrefixDelete
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, prefix+strings.TrimSuffix(line, "\n"))
		}
	}
	return strings.Join(out, "\n")
}

// TextDiff returns the line diff between other's text and t's text
func (t *Tree) TextDiff(other *Tree) string {
	return TextDiff(other.String(), t.String())
}

// terminate makes sure non-empty text ends with a newline so the last line
// is compared as a whole line
func terminate(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}
