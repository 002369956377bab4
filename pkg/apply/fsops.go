// Package apply executes a Plan's content edits and path renames
// atomically against the working tree, writing per-file backups and a
// reverse patch for audit, and rolling back on any mid-apply failure
// (spec component J).
package apply

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

// Checksum returns the hex-encoded SHA-256 of data, used for
// HistoryEntry.AffectedFiles and for the pre-flight/undo integrity
// checks.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ChecksumFile reads path and returns its checksum.
func ChecksumFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", types.ErrIO, path, err)
	}
	return Checksum(data), nil
}

// WriteFileAtomic writes data to a sibling temp file in path's directory,
// fsyncs it, then renames it over path. This guarantees the write is
// atomic from any concurrent reader's point of view.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", types.ErrIO, dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".renamify-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", types.ErrIO, dir, err)
	}
	tmpName := tmp.Name()
	success := false
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: writing %s: %v", types.ErrIO, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: fsync %s: %v", types.ErrIO, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", types.ErrIO, tmpName, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", types.ErrIO, tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: renaming %s to %s: %v", types.ErrIO, tmpName, path, err)
	}
	success = true
	return nil
}

// CopyFile copies src's bytes over dst atomically, creating dst's parent
// directories as needed. Used by undo to restore a file from its backup.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("%w: reading backup %s: %v", types.ErrIO, src, err)
	}
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(src); err == nil {
		perm = info.Mode().Perm()
	}
	return WriteFileAtomic(dst, data, perm)
}

// RenamePath renames from to to, applying a two-step rename via a
// temporary name when the change is case-only on what may be a
// case-insensitive filesystem -- otherwise a same-case rename silently
// no-ops on such filesystems instead of changing the stored casing.
// Callers must not rely on the intermediate name being observable.
func RenamePath(from, to string) error {
	if from == to {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", types.ErrIO, filepath.Dir(to), err)
	}
	if !isCaseOnlyRename(from, to) {
		if err := os.Rename(from, to); err != nil {
			return fmt.Errorf("%w: renaming %s to %s: %v", types.ErrIO, from, to, err)
		}
		return nil
	}
	tmp := to + ".renamify-tmp-rename"
	if err := os.Rename(from, tmp); err != nil {
		return fmt.Errorf("%w: renaming %s to %s: %v", types.ErrIO, from, tmp, err)
	}
	if err := os.Rename(tmp, to); err != nil {
		return fmt.Errorf("%w: renaming %s to %s: %v", types.ErrIO, tmp, to, err)
	}
	return nil
}

// isCaseOnlyRename reports whether from and to are the same path except
// for letter casing.
func isCaseOnlyRename(from, to string) bool {
	return from != to && strings.EqualFold(from, to)
}
