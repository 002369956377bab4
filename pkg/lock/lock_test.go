package lock

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renamify-go/renamify/pkg/types"
)

func TestAcquireRelease_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	l, err := Acquire(dir)
	require.NoError(t, err)
	require.FileExists(t, Path(dir))

	require.NoError(t, l.Release())
	assert.NoFileExists(t, Path(dir))
}

func TestAcquire_HeldByLiveProcess(t *testing.T) {
	dir := t.TempDir()

	first, err := Acquire(dir)
	require.NoError(t, err)
	defer first.Release()

	_, err = Acquire(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrLockHeld)
}

func TestAcquire_ReclaimsStaleLock(t *testing.T) {
	dir := t.TempDir()
	path := Path(dir)

	// Our own pid, guaranteed to be "running", but timestamped well past
	// StaleAfter -- staleness is checked before liveness, so this must be
	// reclaimed regardless of the pid being alive.
	staleTS := time.Now().Add(-2 * StaleAfter).Unix()
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("%d:%d", os.Getpid(), staleTS)), 0o644))

	l, err := Acquire(dir)
	require.NoError(t, err)
	defer l.Release()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, fmt.Sprintf("%d:%d", os.Getpid(), staleTS), string(data))
}

func TestAcquire_ReclaimsDeadPidLock(t *testing.T) {
	dir := t.TempDir()
	path := Path(dir)

	// An implausible pid combined with a fresh timestamp: IsProcessRunning
	// must report false for it on any supported platform.
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("999999999:%d", time.Now().Unix())), 0o644))

	l, err := Acquire(dir)
	require.NoError(t, err)
	require.NoError(t, l.Release())
}

func TestRelease_NilLockIsNoop(t *testing.T) {
	var l *Lock
	assert.NoError(t, l.Release())
}

func TestRelease_OnlyRemovesMatchingContent(t *testing.T) {
	dir := t.TempDir()
	l, err := Acquire(dir)
	require.NoError(t, err)

	// Simulate a stale reclaim having handed the lock to a different
	// process in between: overwrite the file with different content.
	require.NoError(t, os.WriteFile(Path(dir), []byte("12345:1"), 0o644))

	require.NoError(t, l.Release())
	assert.FileExists(t, Path(dir), "Release must not remove a lock it no longer owns")
}

func TestParseLockContent(t *testing.T) {
	pid, ts, ok := parseLockContent("4242:1700000000")
	require.True(t, ok)
	assert.Equal(t, 4242, pid)
	assert.Equal(t, int64(1700000000), ts)

	_, _, ok = parseLockContent("garbage")
	assert.False(t, ok)
}
