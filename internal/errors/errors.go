package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/daymood/internal/lock"
	"github.com/julianstephens/daymood/internal/logger"
	"github.com/julianstephens/daymood/internal/records"
)

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

// UserMessage returns the short text shown to the user for validation and
// storage errors, falling back to the error text.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, records.ErrDuplicateHabit):
		return "Habit already exists"
	case stderrors.Is(err, records.ErrBlankHabit):
		return "Habit title cannot be empty"
	case stderrors.Is(err, records.ErrHabitTooLong):
		return "Habit title is too long"
	case stderrors.Is(err, records.ErrUnknownHabit):
		return "That habit is not in your list"
	case stderrors.Is(err, records.ErrBlankName):
		return "Please enter your name"
	case stderrors.Is(err, records.ErrInvalidMoodIndex):
		return "Please select a mood"
	case stderrors.Is(err, lock.ErrLocked):
		return "Another daymood process is saving, try again in a moment"
	case stderrors.Is(err, records.ErrStorageWrite):
		return "Could not save, please try again"
	default:
		return err.Error()
	}
}

// Fatal logs err in full, prints its user message and exits with code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Formatf("%s", UserMessage(err)))
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
