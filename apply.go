// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import (
	"context"
	"fmt"
	"strings"
)

// Device is the transport collaborator used by Apply.
//
// Implementations retrieve the running configuration as a single text and
// send command lines to the device. Retries and timeouts belong to the
// implementation.
type Device interface {
	// RunningConfig returns the current configuration text of the device
	RunningConfig(ctx context.Context) (string, error)

	// Configure sends the commands to the device in order
	Configure(ctx context.Context, commands []string) error
}

// ConfigSaver is implemented by devices that can persist their configuration
type ConfigSaver interface {
	SaveConfig(ctx context.Context) error
}

// Apply reconciles a device with a candidate tree.
//
// The running configuration (from RunningConfig or the device) is parsed with
// the running indent, the commands are computed with candidate.Difference and
// sent to the device unless CheckMode is set. With SaveConfig, a device that
// implements ConfigSaver is asked to persist the change.
//
// Example:
//
//	candidate, _ := netcfg.NewTree(netcfg.Indent(netcfg.DefaultCandidateIndent))
//	candidate.Add([]string{"remote-as 65001"}, "router bgp 65000", "neighbor 1.1.1.1")
//
//	res, err := netcfg.Apply(ctx, device, candidate, netcfg.SaveConfig(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.JSON())
//
// Returns the Result and an *ApplyError if a device step fails.
func Apply(ctx context.Context, device Device, candidate *Tree, mods ...func(*ApplyReq)) (Result, error) {
	if candidate == nil {
		return Result{}, fmt.Errorf("apply: %w: candidate tree is nil", ErrInvalidArgument)
	}

	req := &ApplyReq{
		Indent: DefaultRunningIndent,
	}
	for _, mod := range mods {
		mod(req)
	}

	logger := candidate.logger
	res := Result{CheckMode: req.CheckMode}

	text := req.RunningConfig
	if text == "" {
		if device == nil {
			return res, fmt.Errorf("apply: %w: no device and no running configuration", ErrInvalidArgument)
		}
		if err := checkContextCancellation(ctx); err != nil {
			return res, err
		}
		running, err := device.RunningConfig(ctx)
		if err != nil {
			logger.Error("running configuration retrieval failed",
				"error", err.Error())
			return res, &ApplyError{
				Operation:   "running-config",
				Message:     "failed to retrieve running configuration",
				InternalMsg: err.Error(),
				Err:         err,
			}
		}
		text = running
	}

	running, err := Parse(text, req.Indent,
		CommentTokens(candidate.commentTokens...),
		WithLogger(logger))
	if err != nil {
		return res, fmt.Errorf("apply: %w", err)
	}

	commands, err := candidate.Difference(running, req.Diff...)
	if err != nil {
		return res, fmt.Errorf("apply: %w", err)
	}
	for i, c := range commands {
		commands[i] = strings.TrimSpace(c)
	}

	if len(commands) == 0 {
		logger.Debug("configuration already in desired state")
		return res, nil
	}

	res.Changed = true
	res.Updates = commands

	if req.CheckMode {
		logger.Info("check mode, commands not sent",
			"commands", len(commands))
		return res, nil
	}

	if device == nil {
		return res, fmt.Errorf("apply: %w: device is nil", ErrInvalidArgument)
	}
	if err := checkContextCancellation(ctx); err != nil {
		return res, err
	}

	logger.Debug("configuring device",
		"commands", strings.Join(commands, "; "))

	if err := device.Configure(ctx, commands); err != nil {
		logger.Error("configuration failed",
			"commands", len(commands),
			"error", err.Error())
		return res, &ApplyError{
			Operation:   "configure",
			Message:     fmt.Sprintf("failed to apply %d commands", len(commands)),
			InternalMsg: err.Error(),
			Err:         err,
		}
	}

	logger.Info("device configured",
		"commands", len(commands))

	if req.Save {
		saver, ok := device.(ConfigSaver)
		if !ok {
			logger.Warn("device cannot save configuration, skipping save")
			return res, nil
		}
		if err := checkContextCancellation(ctx); err != nil {
			return res, err
		}
		if err := saver.SaveConfig(ctx); err != nil {
			logger.Error("configuration save failed",
				"error", err.Error())
			return res, &ApplyError{
				Operation:   "save",
				Message:     "failed to save configuration",
				InternalMsg: err.Error(),
				Err:         err,
			}
		}
		res.Saved = true
	}

	return res, nil
}

// checkContextCancellation returns the context error if ctx is done
func checkContextCancellation(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("apply: %w", ctx.Err())
	default:
		return nil
	}
}
