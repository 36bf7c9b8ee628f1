// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the Logger interface
//
// Key-value pairs become zerolog fields; a trailing key without value is
// logged with the value "<MISSING>", as DefaultLogger does.
//
// Example:
//
//	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	running, _ := netcfg.Parse(text, 2,
//	    netcfg.WithLogger(netcfg.NewZerologLogger(zl)))
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// Debug logs a debug message with structured key-value pairs
func (z *ZerologLogger) Debug(msg string, keysAndValues ...any) {
	z.emit(z.logger.Debug(), msg, keysAndValues)
}

// Info logs an informational message with structured key-value pairs
func (z *ZerologLogger) Info(msg string, keysAndValues ...any) {
	z.emit(z.logger.Info(), msg, keysAndValues)
}

// Warn logs a warning message with structured key-value pairs
func (z *ZerologLogger) Warn(msg string, keysAndValues ...any) {
	z.emit(z.logger.Warn(), msg, keysAndValues)
}

// Error logs an error message with structured key-value pairs
func (z *ZerologLogger) Error(msg string, keysAndValues ...any) {
	z.emit(z.logger.Error(), msg, keysAndValues)
}

func (z *ZerologLogger) emit(event *zerolog.Event, msg string, keysAndValues []any) {
	// nil when the level is disabled
	if event == nil {
		return
	}

	fields := make(map[string]interface{}, (len(keysAndValues)+1)/2)
	forEachLogPair(keysAndValues, func(key, value any) {
		fields[fmt.Sprintf("%v", key)] = value
	})

	event.Fields(fields).Msg(msg)
}
