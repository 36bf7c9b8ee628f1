// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Result represents the outcome of an Apply call
type Result struct {
	// Changed indicates that commands were computed (and sent, unless CheckMode)
	Changed bool

	// Updates contains the commands, trimmed, in emission order
	Updates []string

	// CheckMode indicates that the commands were not sent
	CheckMode bool

	// Saved indicates that the device configuration was saved
	Saved bool
}

// JSON returns the result as a JSON string.
//
// The document has the keys "changed", "check_mode", "saved" and, when
// commands were computed, "updates". Returns an empty string if building
// the document fails.
//
// Example:
//
//	res, _ := netcfg.Apply(ctx, device, candidate)
//	fmt.Println(res.JSON())
//	// {"changed":true,"check_mode":false,"saved":false,"updates":["router bgp 65000",...]}
func (r Result) JSON() string {
	var err error
	str := "{}"

	set := func(path string, value any) {
		if err != nil {
			return
		}
		str, err = sjson.Set(str, path, value)
	}

	set("changed", r.Changed)
	set("check_mode", r.CheckMode)
	set("saved", r.Saved)
	if len(r.Updates) > 0 {
		set("updates", r.Updates)
	}

	if err != nil {
		return ""
	}
	return str
}

// GetValue retrieves a value from the JSON form of the result using a gjson path.
//
// Example:
//
//	first := res.GetValue("updates.0").String()
//	count := res.GetValue("updates.#").Int()
func (r Result) GetValue(path string) gjson.Result {
	jsonStr := r.JSON()
	if jsonStr == "" {
		return gjson.Result{}
	}
	return gjson.Get(jsonStr, path)
}
