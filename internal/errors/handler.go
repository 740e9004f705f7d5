// Package errors routes user-facing errors and notices to the CLI or the TUI.
package errors

import (
	"fmt"
)

// ErrorHandler is the interface for error handling.
// The CLI prints to the console, the TUI shows a status line.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console surface CLIHandler writes to.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler handles errors by printing to stdout/stderr.
type CLIHandler struct {
	colors ColorOutput
}

var _ ErrorHandler = (*CLIHandler)(nil)

// NewCLIHandler panics on a nil output.
func NewCLIHandler(colors ColorOutput) *CLIHandler {
	if colors == nil {
		panic("NewCLIHandler: colors output dependency cannot be nil")
	}
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string)   { h.colors.Error(msg) }
func (h *CLIHandler) Warning(msg string) { h.colors.Warning(msg) }
func (h *CLIHandler) Info(msg string)    { h.colors.Info(msg) }
func (h *CLIHandler) Success(msg string) { h.colors.Success(msg) }

// Report sends err to h as an error, prefixed with what was being done.
// A nil err is ignored.
func Report(h ErrorHandler, action string, err error) {
	if err == nil || h == nil {
		return
	}
	if action == "" {
		h.Error(err.Error())
		return
	}
	h.Error(fmt.Sprintf("%s: %v", action, err))
}
