package lock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/feeder/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func stubProcesses(t *testing.T, running map[int]string) {
	t.Helper()
	oldFind, oldPid := findProcessFunc, getpidFunc
	t.Cleanup(func() {
		findProcessFunc = oldFind
		getpidFunc = oldPid
	})
	findProcessFunc = func(pid int) (ps.Process, error) {
		exe, ok := running[pid]
		if !ok {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: exe}, nil
	}
	getpidFunc = func() int { return 4242 }
}

func TestAcquireAndRelease(t *testing.T) {
	stubProcesses(t, nil)
	dir := t.TempDir()

	l, err := Acquire(dir, "tui")
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, constants.LockfileName))
	if err != nil {
		t.Fatalf("lockfile not written: %v", err)
	}
	if string(content) != "4242|tui\n" {
		t.Errorf("lockfile content = %q", content)
	}

	if err := l.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, err := os.Stat(l.Path()); !os.IsNotExist(err) {
		t.Errorf("lockfile still present after Release()")
	}
}

func TestAcquire_HeldByRunningProcess(t *testing.T) {
	stubProcesses(t, map[int]string{777: "feeder"})
	dir := t.TempDir()
	path := filepath.Join(dir, constants.LockfileName)
	if err := os.WriteFile(path, []byte("777|serve\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Acquire(dir, "tui")
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("Acquire() error = %v, want ErrLocked", err)
	}
}

func TestAcquire_ReplacesStaleLock(t *testing.T) {
	tests := []struct {
		name    string
		content string
		running map[int]string
	}{
		{"process gone", "777|serve\n", nil},
		{"pid reused by other program", "777|serve\n", map[int]string{777: "bash"}},
		{"malformed", "garbage", nil},
		{"bad pid", "abc|tui", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubProcesses(t, tt.running)
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, constants.LockfileName), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			l, err := Acquire(dir, "tui")
			if err != nil {
				t.Fatalf("Acquire() error = %v", err)
			}
			defer l.Release()

			holder, err := readLockfile(l.Path())
			if err != nil {
				t.Fatal(err)
			}
			if holder.PID != 4242 || holder.Owner != "tui" {
				t.Errorf("holder = %+v, want 4242/tui", holder)
			}
		})
	}
}

func TestRelease_LeavesForeignLock(t *testing.T) {
	stubProcesses(t, nil)
	dir := t.TempDir()

	l, err := Acquire(dir, "serve")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(l.Path(), []byte("999|tui\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := l.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, err := os.Stat(l.Path()); err != nil {
		t.Errorf("foreign lockfile removed: %v", err)
	}
}

func TestRelease_Nil(t *testing.T) {
	var l *Lock
	if err := l.Release(); err != nil {
		t.Errorf("Release() on nil lock = %v", err)
	}
}
