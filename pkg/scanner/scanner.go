package scanner

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/renamify-go/renamify/pkg/acronym"
	"github.com/renamify-go/renamify/pkg/pattern"
	"github.com/renamify-go/renamify/pkg/types"
	"github.com/renamify-go/renamify/pkg/variant"
)

// Options configures a full scan (spec component H plus the
// variant-generation knobs it depends on from C).
type Options struct {
	Roots   []string
	Search  string
	Replace string

	Styles            []types.Style
	AtomicIdentifiers []string
	Plurals           bool
	Acronyms          *acronym.Set

	Includes []string
	Excludes []string

	UnrestrictedLevel UnrestrictedLevel

	RenameFiles bool
	RenameDirs  bool
	RenameRoot  bool

	IgnoreAmbiguous bool
	CoerceAuto      bool

	ExcludeMatchingLines string
}

// Scan walks every root, matches content and paths, and returns a fully
// populated, unpersisted Plan. The scan does not touch state_dir; callers
// decide whether/where to persist the result.
func Scan(ctx context.Context, opts Options) (*types.Plan, error) {
	acronyms := opts.Acronyms
	if acronyms == nil {
		acronyms = acronym.Default()
	}

	vm := variant.Generate(opts.Search, opts.Replace, variant.Options{
		Styles:            opts.Styles,
		AtomicIdentifiers:  opts.AtomicIdentifiers,
		Plurals:           opts.Plurals,
		Acronyms:          acronyms,
	})
	matcher, err := pattern.Build(vm)
	if err != nil {
		return nil, err
	}

	var excludeLineRe *regexp.Regexp
	if opts.ExcludeMatchingLines != "" {
		excludeLineRe, err = regexp.Compile(opts.ExcludeMatchingLines)
		if err != nil {
			return nil, err
		}
	}

	plan := &types.Plan{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Search:    opts.Search,
		Replace:   opts.Replace,
		Styles:    stylesOrDefault(opts.Styles),
		Includes:  opts.Includes,
		Excludes:  opts.Excludes,
		Version:   "1.0.0",
		Stats:     types.Stats{MatchesByVariant: map[string]int{}},
	}

	for _, root := range opts.Roots {
		files, err := Walk(root, opts.UnrestrictedLevel, opts.Includes, opts.Excludes)
		if err != nil {
			return nil, err
		}

		hunksPerFile := make([][]types.MatchHunk, len(files))
		binaryOK := opts.UnrestrictedLevel >= LevelAllBinary

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(max(1, runtime.GOMAXPROCS(0)))
		for i, f := range files {
			i, f := i, f
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				content, err := os.ReadFile(f)
				if err != nil {
					slog.Warn("scanner: skipping unreadable file", "path", f, "error", err)
					return nil
				}
				if !binaryOK && IsBinary(content) {
					return nil
				}
				hunksPerFile[i] = MatchFile(f, content, FileMatchOptions{
					Search:              opts.Search,
					Replace:             opts.Replace,
					VariantMap:          vm,
					Matcher:             matcher,
					Styles:              stylesOrDefault(opts.Styles),
					IgnoreAmbiguous:     opts.IgnoreAmbiguous,
					CoerceAuto:          opts.CoerceAuto,
					ExcludeMatchingLine: excludeLineRe,
					Acronyms:            acronyms,
				})
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		filesWithMatches := 0
		rootMatches := 0
		for _, hunks := range hunksPerFile {
			if len(hunks) == 0 {
				continue
			}
			filesWithMatches++
			rootMatches += len(hunks)
			plan.Matches = append(plan.Matches, hunks...)
			for _, h := range hunks {
				plan.Stats.MatchesByVariant[h.Variant]++
			}
		}
		plan.Stats.FilesScanned += len(files)
		plan.Stats.FilesWithMatches += filesWithMatches
		plan.Stats.TotalMatches += rootMatches

		if opts.RenameFiles || opts.RenameDirs {
			renames, err := FindRenames(root, files, RenameOptions{
				Search:      opts.Search,
				Replace:     opts.Replace,
				Matcher:     matcher,
				Styles:      stylesOrDefault(opts.Styles),
				RenameFiles: opts.RenameFiles,
				RenameDirs:  opts.RenameDirs,
				RenameRoot:  opts.RenameRoot,
				Acronyms:    acronyms,
			})
			if err != nil {
				return nil, err
			}
			plan.Paths = append(plan.Paths, renames...)
		}
	}

	sort.SliceStable(plan.Matches, func(i, j int) bool {
		a, b := plan.Matches[i], plan.Matches[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	return plan, nil
}

func stylesOrDefault(styles []types.Style) []types.Style {
	if len(styles) == 0 {
		return types.AllStyles
	}
	return styles
}
