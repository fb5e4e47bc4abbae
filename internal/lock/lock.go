// Package lock enforces the single local writer: mutating commands hold a
// lock file in the config directory for their duration.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/daymood/internal/constants"
	"github.com/julianstephens/daymood/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid

	// ErrLocked is returned when another live process holds the lock.
	ErrLocked = errors.New("another daymood process is writing")
)

// Lock is a held writer lock. The file stores "pid|token"; the token lets
// Release refuse to remove a lock that was taken over after going stale.
type Lock struct {
	path  string
	token string
}

// Acquire takes the writer lock in dir. A lock left behind by a process that
// is no longer running is replaced.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	path := filepath.Join(dir, constants.LockFileName)

	for attempt := 0; attempt < 2; attempt++ {
		l, err := create(path)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("failed to create lock file: %w", err)
		}

		pid, err := readPID(path)
		if err == nil && pid != getpidFunc() && alive(pid) {
			return nil, fmt.Errorf("%w (pid %d)", ErrLocked, pid)
		}

		logger.Warn("Removing stale lock file", "path", path, "pid", pid)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale lock: %w", err)
		}
	}
	return nil, ErrLocked
}

func create(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := uuid.NewString()
	if _, err := fmt.Fprintf(f, "%d|%s", getpidFunc(), token); err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	return &Lock{path: path, token: token}, nil
}

func readPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	parts := strings.SplitN(strings.TrimSpace(string(data)), "|", 2)
	if len(parts) != 2 {
		return 0, errors.New("lock file is malformed")
	}
	return strconv.Atoi(parts[0])
}

func alive(pid int) bool {
	p, err := findProcessFunc(pid)
	return err == nil && p != nil
}

// Release removes the lock file if it still belongs to this holder.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	parts := strings.SplitN(strings.TrimSpace(string(data)), "|", 2)
	if len(parts) != 2 || parts[1] != l.token {
		logger.Warn("Lock file owned by another holder, leaving it", "path", l.path)
		return nil
	}
	return os.Remove(l.path)
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
