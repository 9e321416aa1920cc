/*
Copyright 2026 The KubeLB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package ui provides user-facing output for the ingress-report CLI.
// It handles confirmations, warnings, and summaries separately from
// diagnostic logging, so reports and logs can be redirected independently.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"k8c.io/ingress-report/internal/logger"
)

// Output manages user-facing output with support for different verbosity levels.
type Output struct {
	writer   io.Writer
	logger   *logger.Logger
	enableUI bool
}

// New creates a new Output instance writing to stdout.
func New() *Output {
	return &Output{
		writer:   os.Stdout,
		logger:   logger.Get(),
		enableUI: true,
	}
}

// NewWithWriter creates a new Output instance with a custom writer.
func NewWithWriter(w io.Writer) *Output {
	return &Output{
		writer:   w,
		logger:   logger.Get(),
		enableUI: true,
	}
}

// SetUIEnabled controls whether user-facing output is shown.
func (o *Output) SetUIEnabled(enabled bool) {
	o.enableUI = enabled
}

// Status displays a status message to the user at verbosity level 1.
func (o *Output) Status(format string, args ...any) {
	if o.logger.ShouldLog(1) && o.enableUI {
		fmt.Fprintf(o.writer, format+"\n", args...)
	}
}

// StatusDetailed displays a detailed status message at verbosity level 2.
func (o *Output) StatusDetailed(format string, args ...any) {
	if o.logger.ShouldLog(2) && o.enableUI {
		fmt.Fprintf(o.writer, format+"\n", args...)
	}
}

// Success displays a success message with a checkmark.
func (o *Output) Success(format string, args ...any) {
	if o.logger.ShouldLog(1) && o.enableUI {
		msg := fmt.Sprintf(format, args...)
		if logger.ShouldUseEmoji() {
			fmt.Fprintf(o.writer, "✅ %s\n", msg)
		} else {
			fmt.Fprintf(o.writer, "✓ %s\n", msg)
		}
	}
}

// Error displays an error message to the user.
func (o *Output) Error(format string, args ...any) {
	if o.logger.ShouldLog(0) && o.enableUI {
		msg := fmt.Sprintf(format, args...)
		if logger.ShouldUseEmoji() {
			fmt.Fprintf(o.writer, "❌ %s\n", msg)
		} else {
			fmt.Fprintf(o.writer, "✗ %s\n", msg)
		}
	}
}

// Warning displays a warning message to the user.
// Warnings always print regardless of verbosity: they are part of the
// report contract, not diagnostics.
func (o *Output) Warning(format string, args ...any) {
	if o.enableUI {
		msg := fmt.Sprintf(format, args...)
		if logger.ShouldUseEmoji() {
			fmt.Fprintf(o.writer, "⚠️  %s\n", msg)
		} else {
			fmt.Fprintf(o.writer, "Warning: %s\n", msg)
		}
	}
}

// Info displays an informational message.
func (o *Output) Info(format string, args ...any) {
	if o.logger.ShouldLog(1) && o.enableUI {
		fmt.Fprintf(o.writer, format+"\n", args...)
	}
}

// Header displays a section header.
func (o *Output) Header(title string) {
	if o.enableUI {
		fmt.Fprintf(o.writer, "\n%s\n", title)
		if logger.ShouldUseColor() {
			fmt.Fprintf(o.writer, "\033[2m%s\033[0m\n", strings.Repeat("─", len([]rune(title))))
		} else {
			fmt.Fprintf(o.writer, "%s\n", strings.Repeat("-", len([]rune(title))))
		}
	}
}

// Global convenience instance
var defaultOutput = New()

// Status displays a status message using the default output.
func Status(format string, args ...any) {
	defaultOutput.Status(format, args...)
}

// StatusDetailed displays a detailed status message using the default output.
func StatusDetailed(format string, args ...any) {
	defaultOutput.StatusDetailed(format, args...)
}

// Success displays a success message using the default output.
func Success(format string, args ...any) {
	defaultOutput.Success(format, args...)
}

// Error displays an error message using the default output.
func Error(format string, args ...any) {
	defaultOutput.Error(format, args...)
}

// Warning displays a warning message using the default output.
func Warning(format string, args ...any) {
	defaultOutput.Warning(format, args...)
}

// Info displays an informational message using the default output.
func Info(format string, args ...any) {
	defaultOutput.Info(format, args...)
}

// Header displays a section header using the default output.
func Header(title string) {
	defaultOutput.Header(title)
}
