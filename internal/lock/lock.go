// Package lock keeps one control session per config directory.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/feeder/internal/constants"
	"github.com/julianstephens/feeder/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

var ErrLocked = errors.New("another feeder session is running")

// Lock is a held lockfile
type Lock struct {
	path string
	pid  int
}

// Holder describes the process named in a lockfile
type Holder struct {
	PID   int
	Owner string
}

// Acquire creates <dir>/feeder.lock naming the current process and owner
// (the command holding it). A lockfile left by a process that no longer
// runs is replaced.
func Acquire(dir, owner string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	path := filepath.Join(dir, constants.LockfileName)

	holder, err := readLockfile(path)
	switch {
	case err == nil:
		if running(holder.PID) {
			return nil, fmt.Errorf("%w (pid %d, %s)", ErrLocked, holder.PID, holder.Owner)
		}
		logger.Warn("Removing stale lockfile", "path", path, "pid", holder.PID)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
		}
	case os.IsNotExist(err):
	default:
		logger.Warn("Replacing unreadable lockfile", "path", path, "error", err)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove lockfile: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to create lockfile: %w", err)
	}
	defer f.Close()

	pid := getpidFunc()
	if _, err := fmt.Fprintf(f, "%d|%s\n", pid, owner); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	logger.Debug("Lock acquired", "path", path, "owner", owner)
	return &Lock{path: path, pid: pid}, nil
}

// Release removes the lockfile if it still names this process
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	holder, err := readLockfile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if holder.PID != l.pid {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

// Path returns the lockfile path
func (l *Lock) Path() string { return l.path }

func readLockfile(path string) (Holder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Holder{}, err
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return Holder{}, errors.New("lockfile is malformed")
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return Holder{}, errors.New("invalid process ID in lockfile")
	}
	return Holder{PID: pid, Owner: parts[1]}, nil
}

func running(pid int) bool {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return false
	}
	return strings.HasPrefix(process.Executable(), constants.AppName)
}
