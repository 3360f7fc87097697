// Package errors turns flow failures into user-facing messages for the CLI
// and the terminal UI.
package errors

import (
	"fmt"
	"sync"

	"github.com/cristianoliveira/shelf/internal/input"
)

// ErrorHandler reports messages to the user.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console surface used by CLIHandler.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler prints messages through a ColorOutput.
type CLIHandler struct {
	mu     sync.Mutex
	colors ColorOutput
}

var _ ErrorHandler = (*CLIHandler)(nil)

func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Success(msg)
}

// Operation names a user flow that can fail.
type Operation string

const (
	OpLoad   Operation = "loading"
	OpSave   Operation = "saving"
	OpDelete Operation = "deleting"
)

// Describe renders err as a single sanitized line prefixed by the failed
// operation, e.g. "Error loading: fetch products: status 500".
func Describe(op Operation, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error %s: %s", op, input.Sanitize(err.Error()))
}

// OpError tags err with the operation it failed. Its message is the
// Describe line.
type OpError struct {
	Op  Operation
	Err error
}

func (e *OpError) Error() string { return Describe(e.Op, e.Err) }

func (e *OpError) Unwrap() error { return e.Err }

// Wrap returns nil for a nil err and an *OpError otherwise.
func Wrap(op Operation, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}
