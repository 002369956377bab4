package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renamify-go/renamify/pkg/scanner"
	"github.com/renamify-go/renamify/pkg/types"
)

// scanFlags holds the flag values shared by plan/rename/search/replace --
// spec.md §6's orchestrator-wide flag table.
type scanFlags struct {
	includes []string
	excludes []string

	unrestricted0 bool
	unrestricted1 int
	unrestricted2 bool
	unrestricted3 bool

	renameFiles bool
	renameDirs  bool
	renameRoot  bool

	excludeStyles []string
	includeStyles []string
	onlyStyles    []string

	excludeMatchingLines string
	ignoreAmbiguous      bool
	coerceOff            bool

	atomic        bool
	atomicSearch  bool
	atomicReplace bool

	noAcronyms      bool
	includeAcronyms []string
	excludeAcronyms []string
	onlyAcronyms    []string

	large bool
}

func addScanFlags(cmd *cobra.Command, f *scanFlags) {
	cmd.Flags().StringArrayVar(&f.includes, "include", nil, "glob(s) to additionally include")
	cmd.Flags().StringArrayVar(&f.excludes, "exclude", nil, "glob(s) to exclude")

	cmd.Flags().CountVarP(&f.unrestricted1, "unrestricted", "u", "ignore .gitignore (repeat: -uu, -uuu)")
	cmd.Flags().BoolVar(&f.unrestricted2, "uu", false, "honour no ignore file; include hidden entries")
	cmd.Flags().BoolVar(&f.unrestricted3, "uuu", false, "like -uu, plus treat binary files as text")

	cmd.Flags().BoolVar(&f.renameFiles, "rename-files", false, "rename matching file basenames")
	cmd.Flags().BoolVar(&f.renameDirs, "rename-dirs", false, "rename matching directory basenames")
	cmd.Flags().BoolVar(&f.renameRoot, "rename-root", false, "allow renaming a root path itself")

	cmd.Flags().StringArrayVar(&f.excludeStyles, "exclude-styles", nil, "style(s) to exclude")
	cmd.Flags().StringArrayVar(&f.includeStyles, "include-styles", nil, "style(s) to add back in")
	cmd.Flags().StringArrayVar(&f.onlyStyles, "only-styles", nil, "restrict to exactly these style(s)")

	cmd.Flags().StringVar(&f.excludeMatchingLines, "exclude-match", "", "deprecated alias of --exclude-matching-lines")
	cmd.Flags().StringVar(&f.excludeMatchingLines, "exclude-matching-lines", "", "skip hits on lines matching this regex")
	cmd.Flags().BoolVar(&f.ignoreAmbiguous, "ignore-ambiguous", false, "skip ambiguous single-word occurrences entirely")
	cmd.Flags().BoolVar(&f.coerceOff, "no-coerce", false, "disable fragment-wide case coercion")

	cmd.Flags().BoolVar(&f.atomic, "atomic", false, "treat both search and replace as opaque single tokens")
	cmd.Flags().BoolVar(&f.atomicSearch, "atomic-search", false, "treat search as an opaque single token")
	cmd.Flags().BoolVar(&f.atomicReplace, "atomic-replace", false, "treat replace as an opaque single token")

	cmd.Flags().BoolVar(&f.noAcronyms, "no-acronyms", false, "disable the acronym set entirely")
	cmd.Flags().StringArrayVar(&f.includeAcronyms, "include-acronyms", nil, "acronym(s) to add")
	cmd.Flags().StringArrayVar(&f.excludeAcronyms, "exclude-acronyms", nil, "acronym(s) to remove")
	cmd.Flags().StringArrayVar(&f.onlyAcronyms, "only-acronyms", nil, "restrict the acronym set to exactly these")

	cmd.Flags().BoolVar(&f.large, "large", false, "proceed even if the change is large")
}

// unrestrictedLevel folds the -u/-uu/-uuu flags into a single level,
// matching ripgrep's cumulative-repetition convention.
func (f *scanFlags) unrestrictedLevel() scanner.UnrestrictedLevel {
	switch {
	case f.unrestricted3 || f.unrestricted1 >= 3:
		return scanner.LevelAllBinary
	case f.unrestricted2 || f.unrestricted1 == 2:
		return scanner.LevelAll
	case f.unrestricted1 > 0:
		return scanner.LevelNoGitignore
	default:
		return scanner.LevelDefault
	}
}

func parseStyles(names []string) ([]types.Style, error) {
	if len(names) == 0 {
		return nil, nil
	}
	valid := make(map[types.Style]bool, len(types.AllStyles))
	for _, s := range types.AllStyles {
		valid[s] = true
	}
	out := make([]types.Style, 0, len(names))
	for _, n := range names {
		s := types.Style(strings.ToLower(strings.TrimSpace(n)))
		if !valid[s] {
			return nil, fmt.Errorf("unknown style %q", n)
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *scanFlags) styles() (only, include, exclude []types.Style, err error) {
	if only, err = parseStyles(f.onlyStyles); err != nil {
		return
	}
	if include, err = parseStyles(f.includeStyles); err != nil {
		return
	}
	if exclude, err = parseStyles(f.excludeStyles); err != nil {
		return
	}
	return
}

// previewFormat is the shared --preview flag; each command passes its own
// default to addPreviewFlag.
type previewFormat struct {
	value string
}

func addPreviewFlag(cmd *cobra.Command, p *previewFormat, def string) {
	cmd.Flags().StringVar(&p.value, "preview", def, "preview format: table|diff|matches|summary|json|none")
}
