// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package netcfg

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"
)

// MaxLogValueLength limits the length of log values. Configuration lines
// can be arbitrarily long; values longer than this are truncated.
const MaxLogValueLength = 1024

// Logger receives progress messages from parsing, diffing and Apply.
//
// Arguments after msg are alternating keys and values, for example
// "commands", []string{"router bgp 65000"}. Implementations shipped here are
// DefaultLogger, ZerologLogger and NoOpLogger (the default). Other logging
// libraries plug in through a small adapter:
//
//	type SlogAdapter struct {
//	    logger *slog.Logger
//	}
//
//	func (s *SlogAdapter) Debug(msg string, keysAndValues ...any) {
//	    s.logger.Debug(msg, keysAndValues...)
//	}
//	// ... Info, Warn and Error likewise
//
//	tree, _ := netcfg.NewTree(netcfg.WithLogger(&SlogAdapter{logger: slog.Default()}))
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// LogLevel is the minimum severity a DefaultLogger writes.
//
// Parsing and diffing report at Debug, Apply reports the pushed commands at
// Info, and a device that cannot save reports at Warn.
type LogLevel int

const (
	// LogLevelDebug also shows parse statistics and computed differences
	LogLevelDebug LogLevel = iota

	// LogLevelInfo shows what Apply sent or, in check mode, would send
	LogLevelInfo

	// LogLevelWarn shows recoverable device problems
	LogLevelWarn

	// LogLevelError shows failed device operations only
	LogLevelError

	// LogLevelNone silences the logger
	LogLevelNone
)

var logLevelNames = [...]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
	LogLevelNone:  "NONE",
}

// String returns the upper-case level name used as line prefix
func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(logLevelNames) {
		return fmt.Sprintf("UNKNOWN(%d)", int(l))
	}
	return logLevelNames[l]
}

// missingLogValue stands in for the value of a trailing key
const missingLogValue = "<MISSING>"

// forEachLogPair calls fn for every key-value pair. A trailing key is
// paired with missingLogValue.
func forEachLogPair(keysAndValues []any, fn func(key, value any)) {
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fn(keysAndValues[i], keysAndValues[i+1])
		} else {
			fn(keysAndValues[i], missingLogValue)
		}
	}
}

// DefaultLogger writes one line per call through the standard log package.
//
// Lines look like "[INFO] device configured commands=3" where every
// value is flattened by sanitizeLogValue, so a multi-line configuration
// block never spans more than one log line.
type DefaultLogger struct {
	level LogLevel
}

// NewDefaultLogger creates a DefaultLogger writing level and above
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	return &DefaultLogger{level: level}
}

func (l *DefaultLogger) Debug(msg string, keysAndValues ...any) {
	l.write(LogLevelDebug, msg, keysAndValues)
}

func (l *DefaultLogger) Info(msg string, keysAndValues ...any) {
	l.write(LogLevelInfo, msg, keysAndValues)
}

func (l *DefaultLogger) Warn(msg string, keysAndValues ...any) {
	l.write(LogLevelWarn, msg, keysAndValues)
}

func (l *DefaultLogger) Error(msg string, keysAndValues ...any) {
	l.write(LogLevelError, msg, keysAndValues)
}

func (l *DefaultLogger) write(level LogLevel, msg string, keysAndValues []any) {
	if level < l.level {
		return
	}
	log.Println(formatLogLine(level, msg, keysAndValues))
}

// formatLogLine renders "[LEVEL] msg key=value ...". Only keys and values
// are sanitized; messages are constant strings of this package.
func formatLogLine(level LogLevel, msg string, keysAndValues []any) string {
	var b strings.Builder
	b.Grow(len(msg) + 8 + len(keysAndValues)*24)

	b.WriteByte('[')
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(msg)

	forEachLogPair(keysAndValues, func(key, value any) {
		b.WriteByte(' ')
		b.WriteString(sanitizeLogValue(key))
		b.WriteByte('=')
		b.WriteString(sanitizeLogValue(value))
	})

	return b.String()
}

// sanitizeLogValue makes a log value safe to print on a single line.
//
// Configuration text routinely contains newlines and tabs; they are replaced
// by spaces so one log call always yields one log line. Other control
// characters and ANSI escapes become '.', zero-width characters are dropped
// and overlong values are truncated.
func sanitizeLogValue(val any) string {
	str := fmt.Sprintf("%v", val)

	if len(str) > MaxLogValueLength {
		str = str[:MaxLogValueLength] + "...[TRUNCATED]"
	}

	var builder strings.Builder
	builder.Grow(len(str))

	for i := 0; i < len(str); {
		r, size := utf8.DecodeRuneInString(str[i:])
		i += size

		switch {
		case r == utf8.RuneError && size <= 1:
			builder.WriteRune('.')
		case r == 0x200B, r == 0x200C, r == 0x200D, r == 0xFEFF:
			// zero-width
		case r == 0x202E, r == '\n', r == '\r', r == '\t', r == 0x0C:
			builder.WriteRune(' ')
		case r < 32 || r == 127:
			builder.WriteRune('.')
		default:
			builder.WriteRune(r)
		}
	}

	return builder.String()
}

// NoOpLogger drops every message. Trees use it unless WithLogger is given.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(_ string, _ ...any) {}
func (n *NoOpLogger) Info(_ string, _ ...any)  {}
func (n *NoOpLogger) Warn(_ string, _ ...any)  {}
func (n *NoOpLogger) Error(_ string, _ ...any) {}
