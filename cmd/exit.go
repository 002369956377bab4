package cmd

import (
	"context"
	"errors"

	"github.com/renamify-go/renamify/pkg/types"
)

// ExitCode maps an error returned from Execute to the process exit code
// spec.md §6 defines: 0 success, 1 user-recoverable, 2 fatal, 130
// cancelled.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, types.ErrInvalidRegex),
		errors.Is(err, types.ErrConflictingFlags),
		errors.Is(err, types.ErrNoMatches),
		errors.Is(err, types.ErrLargeChange),
		errors.Is(err, types.ErrPlanMismatch),
		errors.Is(err, types.ErrHistoryNotFound),
		errors.Is(err, types.ErrAlreadyReverted),
		errors.Is(err, types.ErrNotReverted),
		errors.Is(err, types.ErrAlreadyIsRevert):
		return 1
	default:
		return 2
	}
}
