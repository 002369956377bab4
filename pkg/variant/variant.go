// Package variant builds the VariantMap consumed by the pattern matcher:
// every enabled Style rendering of the search term mapped to the matching
// rendering of the replace term.
package variant

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/acronym"
	"github.com/renamify-go/renamify/pkg/casemodel"
	"github.com/renamify-go/renamify/pkg/types"
)

// Options configures variant generation.
type Options struct {
	Styles []types.Style // nil/empty means every style in types.AllStyles
	// AtomicIdentifiers is the configured-atomic-identifiers supplemented
	// feature: identifiers matched case-insensitively here are treated as
	// a single opaque Token instead of being tokenized, on either side.
	AtomicIdentifiers []string
	// Plurals enables the plural-variant pass (on by default).
	Plurals  bool
	Acronyms *acronym.Set
}

// DefaultOptions returns every style enabled, plurals on, the default
// acronym set, no configured atomic identifiers.
func DefaultOptions() Options {
	return Options{
		Styles:   types.AllStyles,
		Plurals:  true,
		Acronyms: acronym.Default(),
	}
}

func (o Options) styles() []types.Style {
	if len(o.Styles) == 0 {
		return types.AllStyles
	}
	return o.Styles
}

func (o Options) isConfiguredAtomic(s string) bool {
	for _, a := range o.AtomicIdentifiers {
		if strings.EqualFold(a, s) {
			return true
		}
	}
	return false
}

// Generate builds the VariantMap for one (search, replace) pair.
func Generate(search, replace string, opts Options) *types.VariantMap {
	if opts.Acronyms == nil {
		opts.Acronyms = acronym.Default()
	}
	vm := types.NewVariantMap()

	searchModel := casemodel.Tokenize(search, opts.Acronyms)
	replaceModel := casemodel.Tokenize(replace, opts.Acronyms)

	atomic := opts.isConfiguredAtomic(search) || opts.isConfiguredAtomic(replace)

	if atomic {
		addAtomicVariants(vm, search, replace)
	} else {
		// A single-Token, separator-free side is genuinely ambiguous for
		// style purposes (the ambiguity resolver handles picking a
		// per-site style later); many of the 14 renderings collapse to
		// the same string for it, which VariantMap.Put's upsert-on-exact-
		// key semantics already reduces to the minimal distinct set.
		// An empty replace term (the `search` subcommand's dry-run mode)
		// still needs every search-side variant recorded so the pattern
		// matcher finds occurrences; the replacement text is simply left
		// empty since a search plan is never applied.
		searchOnly := replaceModel.Empty()
		for _, style := range opts.styles() {
			s := casemodel.Render(searchModel, style, opts.Acronyms)
			if s == "" {
				continue
			}
			r := ""
			if !searchOnly {
				r = casemodel.Render(replaceModel, style, opts.Acronyms)
				if r == "" {
					continue
				}
			}
			vm.Put(s, r, style)
		}
		if !searchOnly {
			preserveExactCase(vm, search, replace, searchModel, opts.Acronyms)
		}
	}

	if opts.Plurals {
		addPluralVariants(vm)
	}

	return vm
}

// IsAmbiguousSingleToken reports whether a TokenModel is exactly one
// Token with no separators in the original text — genuinely ambiguous
// for style rendering purposes, and the trigger for the ambiguity
// resolver to pick a per-site style from surrounding context.
func IsAmbiguousSingleToken(m types.TokenModel) bool {
	return len(m.Tokens) == 1
}

// IsAmbiguousSingleTokenText tokenizes s and reports whether it is a
// single-Token, separator-free identifier (the scanner's trigger
// condition for invoking the ambiguity resolver on a hit).
func IsAmbiguousSingleTokenText(s string, acronyms *acronym.Set) bool {
	return IsAmbiguousSingleToken(casemodel.Tokenize(s, acronyms))
}

// addAtomicVariants emits only the flat/as-typed forms for an atomic
// identifier: lower_flat, upper_flat, pascal=as-typed,
// camel=first-letter-lowered. Separated forms (snake, kebab, ...) are
// suppressed since the identifier is treated as opaque.
func addAtomicVariants(vm *types.VariantMap, search, replace string) {
	put := func(s, r string, style types.Style) {
		if s == "" || r == "" {
			return
		}
		vm.Put(s, r, style)
	}
	flatSearch, flatReplace := stripSeparators(search), stripSeparators(replace)
	put(strings.ToLower(flatSearch), strings.ToLower(flatReplace), types.StyleLowerFlat)
	put(strings.ToUpper(flatSearch), strings.ToUpper(flatReplace), types.StyleUpperFlat)
	put(search, replace, types.StylePascal)
	put(lowerFirst(search), lowerFirst(replace), types.StyleCamel)
}

func stripSeparators(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '_', '-', '.', ' ':
			continue
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// preserveExactCase implements exact-case preservation: if the replace string's style
// is unambiguous, the variant keyed by the search string's own detected
// style is forced to map to the user's literal replace text, rather than
// a re-rendered approximation, so "DocSpring -> FormAPI" keeps "FormAPI"
// verbatim instead of degrading to "FormApi".
func preserveExactCase(vm *types.VariantMap, search, replace string, searchModel types.TokenModel, acro *acronym.Set) {
	replaceStyle, replaceUnambiguous := casemodel.DetectStyle(replace, acro)
	if !replaceUnambiguous {
		return
	}
	searchStyle, searchUnambiguous := casemodel.DetectStyle(search, acro)
	if !searchUnambiguous {
		return
	}
	searchRendered := casemodel.Render(searchModel, searchStyle, acro)
	if searchRendered == "" {
		return
	}
	vm.Put(searchRendered, replace, replaceStyle)
}

// addPluralVariants emits a plural pair for every existing entry, using a
// simple English suffix rule applied to each side's final token and
// re-rendered through the same separator/casing shape as the singular
// variant. Keys that would collide with an existing entry are skipped so
// VariantMap's key-uniqueness invariant holds.
func addPluralVariants(vm *types.VariantMap) {
	originals := append([]types.VariantEntry(nil), vm.Entries...)
	for _, e := range originals {
		pv := pluralize(e.Variant)
		pr := pluralize(e.Replacement)
		if pv == e.Variant && pr == e.Replacement {
			continue
		}
		if _, exists := vm.Get(pv); exists {
			continue
		}
		vm.Put(pv, pr, e.Style)
	}
}

// pluralize applies a simple English suffix rule to the trailing word
// of a rendered identifier, locating the trailing word by scanning back
// from the end over letters (stopping at any separator or case
// transition boundary is unnecessary here since we only need the plain
// suffix, not a full re-tokenization).
func pluralize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	suffix := "s"
	switch {
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"), strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "sh"), strings.HasSuffix(lower, "ch"):
		suffix = "es"
	case len(s) >= 2 && isConsonant(lower[len(lower)-2]) && lower[len(lower)-1] == 'y':
		return s[:len(s)-1] + withYSuffix(s)
	}
	if last := s[len(s)-1]; last >= 'A' && last <= 'Z' {
		suffix = strings.ToUpper(suffix)
	}
	return s + suffix
}

func withYSuffix(s string) string {
	if s[len(s)-1] == 'Y' {
		return "IES"
	}
	return "ies"
}

func isConsonant(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	default:
		return b >= 'a' && b <= 'z'
	}
}
