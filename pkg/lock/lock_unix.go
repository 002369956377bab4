//go:build unix

package lock

import (
	"os"
	"syscall"
)

// IsProcessRunning reports whether pid identifies a live process, using
// signal 0 (the POSIX "does this process exist" probe -- no signal is
// actually delivered).
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	if err == syscall.ESRCH {
		return false
	}
	// EPERM means the process exists but we can't signal it -- still running.
	return err == syscall.EPERM
}
