// Package lock implements the single-writer process lock over a working
// copy's state directory (spec component L).
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/renamify-go/renamify/pkg/types"
)

// StaleAfter is the age past which a lock is considered abandoned even
// if its owning pid happens to still be running (spec.md 4.12).
const StaleAfter = 5 * time.Minute

// FileName is the lock's basename inside the state directory.
const FileName = "renamify.lock"

// Lock represents an acquired process lock. Release must be called to
// clean it up; a Lock value obtained any other way must not be used.
type Lock struct {
	path    string
	content string
}

// Path returns the lock file path inside stateDir.
func Path(stateDir string) string {
	return filepath.Join(stateDir, FileName)
}

// Acquire attempts to take the single-writer lock in stateDir, reclaiming
// a stale lock (dead pid, or age >= StaleAfter) before retrying. Returns
// types.ErrLockHeld if a live, fresh lock already exists.
func Acquire(stateDir string) (*Lock, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating state dir %s: %v", types.ErrIO, stateDir, err)
	}
	path := Path(stateDir)

	if reclaimed, err := reclaimIfStale(path); err != nil {
		return nil, err
	} else if !reclaimed {
		if held, pid, err := isHeld(path); err != nil {
			return nil, err
		} else if held {
			return nil, fmt.Errorf("%w (pid %d, lock file %s)", types.ErrLockHeld, pid, path)
		}
	}

	content := fmt.Sprintf("%d:%d", os.Getpid(), time.Now().Unix())
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: lock file %s", types.ErrLockHeld, path)
		}
		return nil, fmt.Errorf("%w: creating lock %s: %v", types.ErrIO, path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("%w: writing lock %s: %v", types.ErrIO, path, err)
	}

	return &Lock{path: path, content: content}, nil
}

// Release removes the lock file, but only if its content still matches
// what Acquire wrote -- guarding against releasing a lock that a stale
// reclaim has since handed to a different process.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: reading lock %s: %v", types.ErrIO, l.path, err)
	}
	if string(data) != l.content {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: removing lock %s: %v", types.ErrIO, l.path, err)
	}
	return nil
}

// isHeld reports whether the lock at path is currently held by a live,
// non-stale process.
func isHeld(path string) (held bool, pid int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, fmt.Errorf("%w: reading lock %s: %v", types.ErrIO, path, err)
	}
	pid, ts, ok := parseLockContent(string(data))
	if !ok {
		// Unreadable content: treat as held conservatively rather than
		// silently overwriting a lock we don't understand.
		return true, 0, nil
	}
	age := time.Since(time.Unix(ts, 0))
	if age >= StaleAfter {
		return false, pid, nil
	}
	return IsProcessRunning(pid), pid, nil
}

// reclaimIfStale removes path if it is owned by a dead or stale process,
// reporting whether it did so.
func reclaimIfStale(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: reading lock %s: %v", types.ErrIO, path, err)
	}
	pid, ts, ok := parseLockContent(string(data))
	if !ok {
		return false, nil
	}
	age := time.Since(time.Unix(ts, 0))
	if age < StaleAfter && IsProcessRunning(pid) {
		return false, nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("%w: removing stale lock %s: %v", types.ErrIO, path, err)
	}
	return true, nil
}

func parseLockContent(s string) (pid int, ts int64, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	p, err1 := strconv.Atoi(parts[0])
	t, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return p, t, true
}
