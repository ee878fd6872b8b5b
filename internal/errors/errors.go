package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/feeder/internal/logger"
)

var (
	ErrRange          = errors.New("amount out of range")
	ErrNotFound       = errors.New("schedule slot not found")
	ErrBusy           = errors.New("another slot is being edited")
	ErrManualOnly     = errors.New("amount can only be changed in Manual mode")
	ErrNotEditing     = errors.New("no slot is being edited")
	ErrUnknownMode    = errors.New("unknown mode")
	ErrUnknownPreset  = errors.New("unknown preset")
	ErrUnknownCommand = errors.New("unknown command")
)

// RangeError reports an amount outside the allowed bounds
type RangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("amount %d out of range %d-%d grams", e.Value, e.Min, e.Max)
}

func (e *RangeError) Is(target error) bool { return target == ErrRange }

// NotFoundError reports a slot id outside the fixed slot set
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("schedule slot %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// BusyError reports an edit request while another slot is open for editing
type BusyError struct {
	Active string
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("slot %q is being edited: finish or cancel the current edit first", e.Active)
}

func (e *BusyError) Is(target error) bool { return target == ErrBusy }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
