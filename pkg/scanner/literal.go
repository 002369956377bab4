package scanner

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/renamify-go/renamify/pkg/pattern"
	"github.com/renamify-go/renamify/pkg/types"
)

// LiteralOptions configures the `replace`/`search --regex` mode: a
// literal string or user-supplied regular expression replacement with no
// case-style expansion, used when the caller wants exact pattern/repl
// semantics rather than the case-aware variant machinery.
type LiteralOptions struct {
	Roots   []string
	Pattern string
	Replace string
	IsRegex bool

	Includes []string
	Excludes []string

	UnrestrictedLevel UnrestrictedLevel
}

// ScanLiteral walks every root and finds literal/regex occurrences of
// Pattern, still honouring the ignore layering and include/exclude
// globs, but with none of the Style/compound/ambiguity/coercion
// machinery -- this is the scanner backing the `replace` subcommand
// (spec.md §6), which is deliberately outside the case-aware model.
func ScanLiteral(ctx context.Context, opts LiteralOptions) (*types.Plan, error) {
	var re *regexp.Regexp
	var err error
	if opts.IsRegex {
		re, err = regexp.Compile(opts.Pattern)
	} else {
		re, err = regexp.Compile(regexp.QuoteMeta(opts.Pattern))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidRegex, err)
	}

	plan := &types.Plan{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Search:    opts.Pattern,
		Replace:   opts.Replace,
		Version:   "1.0.0",
		Includes:  opts.Includes,
		Excludes:  opts.Excludes,
		Stats:     types.Stats{MatchesByVariant: map[string]int{}},
	}

	for _, root := range opts.Roots {
		files, err := Walk(root, opts.UnrestrictedLevel, opts.Includes, opts.Excludes)
		if err != nil {
			return nil, err
		}
		plan.Stats.FilesScanned += len(files)

		filesWithMatches := 0
		for _, f := range files {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			content, err := os.ReadFile(f)
			if err != nil {
				continue
			}
			if IsBinary(content) {
				continue
			}
			locs := re.FindAllIndex(content, -1)
			if len(locs) == 0 {
				continue
			}
			filesWithMatches++
			for _, loc := range locs {
				start, end := loc[0], loc[1]
				matched := string(content[start:end])
				replace := matched
				if opts.IsRegex {
					replace = string(re.ExpandString(nil, opts.Replace, matched, re.FindSubmatchIndex(content[start:end])))
				} else {
					replace = opts.Replace
				}
				if h, ok := buildLiteralHunk(f, content, start, end, matched, replace); ok {
					plan.Matches = append(plan.Matches, h)
					plan.Stats.MatchesByVariant[matched]++
				}
			}
		}
		plan.Stats.FilesWithMatches += filesWithMatches
	}
	plan.Stats.TotalMatches = len(plan.Matches)

	sort.SliceStable(plan.Matches, func(i, j int) bool {
		a, b := plan.Matches[i], plan.Matches[j]
		if a.File != b.File {
			return a.File < b.File
		}
		return a.ByteStart < b.ByteStart
	})
	return plan, nil
}

func buildLiteralHunk(path string, content []byte, start, end int, matched, replace string) (types.MatchHunk, bool) {
	lineStart, lineEnd := pattern.LineBounds(content, start)
	lineBefore := string(content[lineStart:lineEnd])
	line, col := pattern.LineAndColumn(content, start)
	localStart := start - lineStart
	lineAfter := lineBefore[:localStart] + replace + lineBefore[localStart+(end-start):]

	return types.MatchHunk{
		File:       path,
		Line:       line,
		Column:     col - 1,
		ByteStart:  start,
		ByteEnd:    end,
		Variant:    matched,
		Content:    matched,
		Replace:    replace,
		LineBefore: lineBefore,
		LineAfter:  lineAfter,
	}, true
}
