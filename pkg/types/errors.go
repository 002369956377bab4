package types

import "errors"

// Sentinel errors grouped by the taxonomy in spec.md §7. cmd.ExitCode
// translates these into exit codes: User input/State -> 1,
// Concurrency/IO/Logic -> 2.
var (
	// User input errors.
	ErrInvalidRegex    = errors.New("renamify: invalid regex")
	ErrConflictingFlags = errors.New("renamify: conflicting flags")
	ErrNoMatches       = errors.New("renamify: no matches found")
	ErrLargeChange     = errors.New("renamify: large change without --large")

	// State errors.
	ErrPlanMismatch      = errors.New("renamify: plan no longer matches working tree")
	ErrHistoryNotFound   = errors.New("renamify: history entry not found")
	ErrAlreadyReverted   = errors.New("renamify: history entry already reverted")
	ErrNotReverted       = errors.New("renamify: history entry has not been reverted")
	ErrAlreadyIsRevert   = errors.New("renamify: history entry is itself a revert")

	// Concurrency errors.
	ErrLockHeld = errors.New("renamify: another process is already running")

	// IO errors.
	ErrIO = errors.New("renamify: io error")

	// Logic errors.
	ErrCorruptPlan = errors.New("renamify: corrupt plan")
)
