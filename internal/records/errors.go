package records

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageWrite is matched by every *StorageWriteError.
	ErrStorageWrite = errors.New("storage write failed")
	// ErrStorageRead is matched by every *StorageReadError. Reads never return
	// it to callers; it only appears in logs.
	ErrStorageRead = errors.New("storage read failed")

	ErrInvalidMoodIndex = errors.New("invalid mood index")
	ErrDuplicateHabit   = errors.New("habit already exists")
	ErrUnknownHabit     = errors.New("habit not found")
	ErrBlankHabit       = errors.New("habit title cannot be empty")
	ErrHabitTooLong     = errors.New("habit title is too long")
	ErrBlankName        = errors.New("name cannot be empty")
)

// StorageWriteError reports a failed durable write. The value under Key is
// unchanged when this is returned.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("failed to write %q: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

func (e *StorageWriteError) Is(target error) bool { return target == ErrStorageWrite }

// StorageReadError reports a failed or malformed read of Key.
type StorageReadError struct {
	Key string
	Err error
	// Malformed is set when the value was read but could not be decoded.
	Malformed bool
}

func (e *StorageReadError) Error() string {
	if e.Malformed {
		return fmt.Sprintf("malformed value under %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("failed to read %q: %v", e.Key, e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

func (e *StorageReadError) Is(target error) bool { return target == ErrStorageRead }

func duplicateHabit(title string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateHabit, title)
}

func invalidMood(m int) error {
	return fmt.Errorf("%w: %d (expected 0..%d)", ErrInvalidMoodIndex, m, maxMoodIndex)
}
