// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

// Tree configuration options using the functional options pattern

// Indent sets the number of whitespace columns per nesting level (default: 1)
//
// The indent is used both to compute the nesting level of parsed lines and
// to indent lines synthesized by Add.
func Indent(columns int) func(*Tree) {
	return func(t *Tree) {
		t.indent = columns
	}
}

// CommentTokens sets the line prefixes ignored while parsing (default: "#", "!")
//
// Passing no tokens disables comment handling.
func CommentTokens(tokens ...string) func(*Tree) {
	return func(t *Tree) {
		t.commentTokens = append([]string(nil), tokens...)
	}
}

// WithLogger configures a custom logger for the tree
//
// By default, trees use NoOpLogger which discards all log messages.
//
// Example:
//
//	logger := netcfg.NewDefaultLogger(netcfg.LogLevelDebug)
//	running, _ := netcfg.Parse(text, 2, netcfg.WithLogger(logger))
func WithLogger(logger Logger) func(*Tree) {
	return func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Request modifiers for Difference

// DiffPath restricts a difference to the children of the node at path
//
// A path that does not exist in a tree yields an empty scope for that tree.
//
// Example:
//
//	commands, err := candidate.Difference(running,
//	    netcfg.DiffPath("router bgp 65000", "neighbor 1.1.1.1"),
//	    netcfg.DiffMatch(netcfg.MatchExact))
func DiffPath(path ...string) func(*DiffReq) {
	return func(req *DiffReq) {
		req.Path = append([]string(nil), path...)
	}
}

// DiffMatch sets the matching discipline (default: MatchLine)
func DiffMatch(mode MatchMode) func(*DiffReq) {
	return func(req *DiffReq) {
		req.Match = mode
	}
}

// DiffReplace sets the emission discipline (default: ReplaceLine)
//
// Example:
//
//	// reissue the enclosing block of every nested change
//	commands, err := candidate.Difference(running,
//	    netcfg.DiffReplace(netcfg.ReplaceBlock))
func DiffReplace(mode ReplaceMode) func(*DiffReq) {
	return func(req *DiffReq) {
		req.Replace = mode
	}
}

// DiffExpandChildren also emits the direct children of every update
// (default: false)
//
// Combined with ReplaceBlock this reissues a changed block including its body.
func DiffExpandChildren(enabled bool) func(*DiffReq) {
	return func(req *DiffReq) {
		req.ExpandChildren = enabled
	}
}

// Request modifiers for Replace

// ReplaceText looks for a line whose text equals text (case-insensitive)
func ReplaceText(text string) func(*ReplaceReq) {
	return func(req *ReplaceReq) {
		req.Text = text
	}
}

// ReplaceRegex looks for a line whose text matches any of the expressions
// (case-insensitive). Expressions take precedence over ReplaceText.
func ReplaceRegex(exprs ...string) func(*ReplaceReq) {
	return func(req *ReplaceReq) {
		req.Regex = append(req.Regex, exprs...)
	}
}

// ReplaceParents sets the parent chain the replaced line must have
func ReplaceParents(parents ...string) func(*ReplaceReq) {
	return func(req *ReplaceReq) {
		req.Parents = append([]string(nil), parents...)
	}
}

// AddIfMissing adds the replacement when no line matches (default: false)
func AddIfMissing(enabled bool) func(*ReplaceReq) {
	return func(req *ReplaceReq) {
		req.AddIfMissing = enabled
	}
}

// Request modifiers for Apply

// RunningConfig supplies already retrieved running configuration text,
// skipping Device.RunningConfig
//
// An empty text counts as not supplied: Apply then asks the device. To
// reconcile against an empty configuration, use a Device whose
// RunningConfig returns "".
func RunningConfig(text string) func(*ApplyReq) {
	return func(req *ApplyReq) {
		req.RunningConfig = text
	}
}

// RunningIndent sets the nesting unit of the running configuration
// (default: DefaultRunningIndent)
func RunningIndent(columns int) func(*ApplyReq) {
	return func(req *ApplyReq) {
		req.Indent = columns
	}
}

// CheckMode computes the commands without configuring the device (default: false)
func CheckMode(enabled bool) func(*ApplyReq) {
	return func(req *ApplyReq) {
		req.CheckMode = enabled
	}
}

// SaveConfig saves the device configuration after a change (default: false)
//
// Saving requires the device to implement ConfigSaver.
func SaveConfig(enabled bool) func(*ApplyReq) {
	return func(req *ApplyReq) {
		req.Save = enabled
	}
}

// WithDiff passes difference modifiers to Apply
//
// Example:
//
//	res, err := netcfg.Apply(ctx, device, candidate,
//	    netcfg.WithDiff(netcfg.DiffReplace(netcfg.ReplaceBlock)))
func WithDiff(mods ...func(*DiffReq)) func(*ApplyReq) {
	return func(req *ApplyReq) {
		req.Diff = append(req.Diff, mods...)
	}
}
