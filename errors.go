// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound is returned when a path does not resolve to a node.
	// It signals a recoverable resolution miss, not a data problem.
	ErrPathNotFound = errors.New("path not found")

	// ErrInvalidArgument is returned when a call violates its contract
	// (missing required argument, unknown mode, invalid pattern)
	ErrInvalidArgument = errors.New("invalid argument")
)

// ApplyError represents a failed Apply step with operation context
type ApplyError struct {
	// Operation name that failed (running-config, configure, save)
	Operation string

	// Human-readable error message
	Message string

	// InternalMsg contains detailed error information for internal logging
	InternalMsg string

	// Err is the underlying error, if any
	Err error
}

// Error implements the error interface
func (e *ApplyError) Error() string {
	return fmt.Sprintf("netcfg: %s failed: %s", e.Operation, e.Message)
}

// DetailedError returns the full error message including internal details
//
// This should only be used in secure logging contexts where sensitive information
// disclosure is acceptable (e.g., server-side logs, debug output).
//
// Example:
//
//	var applyErr *netcfg.ApplyError
//	if errors.As(err, &applyErr) {
//	    log.Debug(applyErr.DetailedError())
//	}
func (e *ApplyError) DetailedError() string {
	if e.InternalMsg == "" {
		return e.Error()
	}
	return fmt.Sprintf("netcfg: %s failed: %s (internal: %s)",
		e.Operation, e.Message, e.InternalMsg)
}

// Unwrap returns the underlying error
func (e *ApplyError) Unwrap() error {
	return e.Err
}
