package apply

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

// Apply executes plan against the working tree: content edits first
// (one file at a time, atomically), then path renames (already ordered
// deepest-first by the scanner), then an optional git commit. Any
// mid-apply failure triggers a best-effort rollback from the backups
// written so far before the aggregated error is returned.
func Apply(ctx context.Context, plan *types.Plan, opts types.ApplyOptions) (*types.ApplyResult, error) {
	byFile := groupByFile(plan.Matches)

	if !opts.Force {
		if err := preflight(byFile); err != nil {
			return nil, err
		}
	}

	result := &types.ApplyResult{AffectedFiles: map[string]string{}}
	var modified []string // paths successfully rewritten, for rollback

	rollback := func(cause error) (*types.ApplyResult, error) {
		for _, p := range modified {
			backupPath := filepath.Join(opts.BackupDir, plan.ID, relBackupPath(p))
			if data, err := os.ReadFile(backupPath); err == nil {
				_ = WriteFileAtomic(p, data, 0o644)
			}
		}
		return nil, fmt.Errorf("%w: apply aborted mid-way, rolled back %d file(s): %v", types.ErrIO, len(modified), cause)
	}

	files := sortedFileNames(byFile)
	for _, file := range files {
		if ctx.Err() != nil {
			return rollback(ctx.Err())
		}
		if opts.SkipSymlinks && isSymlink(file) {
			slog.Warn("apply: skipping symlink", "path", file)
			continue
		}

		before, err := os.ReadFile(file)
		if err != nil {
			return rollback(fmt.Errorf("reading %s: %w", file, err))
		}
		checksumBefore := Checksum(before)

		hunks := append([]types.MatchHunk(nil), byFile[file]...)
		sort.Slice(hunks, func(i, j int) bool { return hunks[i].ByteStart > hunks[j].ByteStart })

		after := append([]byte(nil), before...)
		var lineNumbers []int
		var beforeLines, afterLines []string
		for _, h := range hunks {
			after = append(after[:h.ByteStart], append([]byte(h.Replace), after[h.ByteEnd:]...)...)
			lineNumbers = append(lineNumbers, h.Line)
			beforeLines = append(beforeLines, h.LineBefore)
			afterLines = append(afterLines, h.LineAfter)
		}

		if opts.CreateBackups {
			if err := backupFile(opts.BackupDir, plan.ID, file, before, lineNumbers, beforeLines, afterLines); err != nil {
				return rollback(err)
			}
		}

		if err := WriteFileAtomic(file, after, filePerm(file)); err != nil {
			return rollback(err)
		}
		modified = append(modified, file)
		result.FilesChanged++
		result.AffectedFiles[file] = checksumBefore
	}

	var renamePairs []types.RenamePair
	for i, r := range plan.Paths {
		if ctx.Err() != nil {
			return rollback(ctx.Err())
		}
		if err := RenamePath(r.Path, r.NewPath); err != nil {
			return rollback(fmt.Errorf("rename %d/%d: %w", i+1, len(plan.Paths), err))
		}
		plan.Paths[i].NewPath = r.NewPath
		renamePairs = append(renamePairs, types.RenamePair{From: r.Path, To: r.NewPath})
		result.Renames++
	}
	result.RenamePairs = renamePairs

	if opts.Commit {
		if err := commitChanges(plan, files, renamePairs); err != nil {
			return nil, fmt.Errorf("%w: git commit: %v", types.ErrIO, err)
		}
		result.Committed = true
	}

	return result, nil
}

func groupByFile(matches []types.MatchHunk) map[string][]types.MatchHunk {
	m := make(map[string][]types.MatchHunk)
	for _, h := range matches {
		m[h.File] = append(m[h.File], h)
	}
	return m
}

func sortedFileNames(byFile map[string][]types.MatchHunk) []string {
	names := make([]string, 0, len(byFile))
	for f := range byFile {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// preflight checks that every hunk's target still exists and that its
// recorded surrounding line still matches the working tree, aborting the
// whole apply with no file touched on any mismatch.
func preflight(byFile map[string][]types.MatchHunk) error {
	for file, hunks := range byFile {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("%w: %s no longer exists or is unreadable: %v", types.ErrPlanMismatch, file, err)
		}
		for _, h := range hunks {
			if h.ByteEnd > len(content) || string(content[h.ByteStart:h.ByteEnd]) != h.Content {
				return fmt.Errorf("%w: %s:%d has changed since the plan was created", types.ErrPlanMismatch, file, h.Line)
			}
			if h.LineBefore != "" {
				lineStart := strings.LastIndexByte(string(content[:h.ByteStart]), '\n') + 1
				lineEnd := len(content)
				if i := strings.IndexByte(string(content[h.ByteStart:]), '\n'); i >= 0 {
					lineEnd = h.ByteStart + i
				}
				if string(content[lineStart:lineEnd]) != h.LineBefore {
					return fmt.Errorf("%w: %s:%d has changed since the plan was created", types.ErrPlanMismatch, file, h.Line)
				}
			}
		}
	}
	return nil
}

func backupFile(backupDir, planID, file string, original []byte, lineNumbers []int, before, after []string) error {
	rel := relBackupPath(file)
	backupPath := filepath.Join(backupDir, planID, rel)
	if err := WriteFileAtomic(backupPath, original, filePerm(file)); err != nil {
		return fmt.Errorf("backing up %s: %w", file, err)
	}
	patch := BuildPatch(rel, lineNumbers, before, after)
	if err := WriteFileAtomic(backupPath+".patch", []byte(patch), 0o644); err != nil {
		return fmt.Errorf("writing patch for %s: %w", file, err)
	}
	return nil
}

// BackupMemberPath locates file's backup copy under backupsPath (a
// directory previously passed as BackupDir/<plan id>), using the same
// relative-path normalisation Apply wrote it with.
func BackupMemberPath(backupsPath, file string) string {
	return filepath.Join(backupsPath, relBackupPath(file))
}

// relBackupPath normalises file into the relative form used under
// backups/<id>/, stripping any absolute prefix (including a stripped
// Windows \\?\ prefix) so backup trees mirror the working tree exactly.
func relBackupPath(file string) string {
	p := strings.TrimPrefix(filepath.ToSlash(file), `\\?\`)
	p = strings.TrimPrefix(p, "/")
	if vol := filepath.VolumeName(p); vol != "" {
		p = strings.TrimPrefix(p, vol)
		p = strings.TrimPrefix(p, "/")
	}
	return p
}

func filePerm(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// commitChanges stages every modified/renamed path and creates a commit,
// shelling out to git exactly as the teacher's scan command invokes git
// for its own optional commit step.
func commitChanges(plan *types.Plan, modifiedFiles []string, renames []types.RenamePair) error {
	paths := append([]string(nil), modifiedFiles...)
	for _, r := range renames {
		paths = append(paths, r.From, r.To)
	}
	if len(paths) == 0 {
		return nil
	}
	addArgs := append([]string{"add"}, paths...)
	if out, err := exec.Command("git", addArgs...).CombinedOutput(); err != nil {
		return fmt.Errorf("git add: %w: %s", err, out)
	}
	msg := fmt.Sprintf("Replace '%s' with '%s'", plan.Search, plan.Replace)
	if out, err := exec.Command("git", "commit", "-m", msg).CombinedOutput(); err != nil {
		return fmt.Errorf("git commit: %w: %s", err, out)
	}
	return nil
}
