package scanner

import (
	"regexp"
	"sort"

	"github.com/renamify-go/renamify/pkg/acronym"
	"github.com/renamify-go/renamify/pkg/ambiguity"
	"github.com/renamify-go/renamify/pkg/casemodel"
	"github.com/renamify-go/renamify/pkg/coercion"
	"github.com/renamify-go/renamify/pkg/compound"
	"github.com/renamify-go/renamify/pkg/pattern"
	"github.com/renamify-go/renamify/pkg/types"
	"github.com/renamify-go/renamify/pkg/variant"
)

// identifierRe finds every identifier-shaped run so the compound matcher
// (E) can be tried against spans the exact-variant matcher (D) didn't
// already claim.
var identifierRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_\-]*`)

// FileMatchOptions configures per-file matching.
type FileMatchOptions struct {
	Search, Replace     string
	VariantMap          *types.VariantMap
	Matcher             *pattern.Matcher
	Styles              []types.Style
	IgnoreAmbiguous     bool
	CoerceAuto          bool
	ExcludeMatchingLine *regexp.Regexp
	Acronyms            *acronym.Set
}

// MatchFile runs the pattern matcher (D), the compound matcher (E), the
// ambiguity resolver (F), and coercion (G) against one file's content and
// returns the resulting MatchHunks in byte-offset order.
func MatchFile(path string, content []byte, opts FileMatchOptions) []types.MatchHunk {
	claimed := make(map[int]bool)
	var hunks []types.MatchHunk

	for _, hit := range opts.Matcher.FindAll(content) {
		claimed[hit.Start] = true
		replace := hit.Entry.Replacement
		coerced := false

		if variant.IsAmbiguousSingleTokenText(opts.Search, opts.Acronyms) && variant.IsAmbiguousSingleTokenText(opts.Replace, opts.Acronyms) {
			if resolved, ok := resolveAmbiguous(path, content, hit.Start, opts); ok {
				replace = resolved
			} else if opts.IgnoreAmbiguous {
				continue
			}
		}

		if opts.CoerceAuto {
			if r, ok := coerce(content, hit.Start, hit.End, replace, opts.Acronyms); ok {
				replace = r
				coerced = true
			}
		}

		if h, ok := buildHunk(path, content, hit.Start, hit.End, hit.Entry.Variant, replace, coerced, opts.ExcludeMatchingLine); ok {
			hunks = append(hunks, h)
		}
	}

	for _, loc := range identifierRe.FindAllIndex(content, -1) {
		start, end := loc[0], loc[1]
		if claimed[start] || !pattern.IsBoundary(content, start, end) {
			continue
		}
		ident := string(content[start:end])
		matches := compound.Find(ident, opts.Search, opts.Replace, opts.Styles, opts.Acronyms)
		if len(matches) == 0 {
			continue
		}
		// A compound identifier that happens to equal the search term
		// exactly is already covered by the D-matcher pass above.
		m := matches[0]
		replace := m.Replacement
		coerced := false
		if opts.CoerceAuto {
			if r, ok := coerce(content, start, end, replace, opts.Acronyms); ok {
				replace = r
				coerced = true
			}
		}
		if h, ok := buildHunk(path, content, start, end, ident, replace, coerced, opts.ExcludeMatchingLine); ok {
			hunks = append(hunks, h)
		}
	}

	sort.SliceStable(hunks, func(i, j int) bool { return hunks[i].ByteStart < hunks[j].ByteStart })
	return hunks
}

func resolveAmbiguous(path string, content []byte, offset int, opts FileMatchOptions) (string, bool) {
	lineStart, _ := pattern.LineBounds(content, offset)
	ctx := ambiguity.Context{
		FilePath:         path,
		PrecedingContext: string(content[lineStart:offset]),
		PossibleStyles:   opts.Styles,
	}
	resolved := ambiguity.Resolve(ctx)
	if !resolved.OK {
		return "", false
	}
	return renderAtStyle(opts.Replace, resolved.Style, opts.Acronyms), true
}

func renderAtStyle(s string, style types.Style, acronyms *acronym.Set) string {
	model := casemodel.Tokenize(s, acronyms)
	if model.Empty() {
		return s
	}
	return casemodel.Render(model, style, acronyms)
}

func coerce(content []byte, start, end int, replace string, acronyms *acronym.Set) (string, bool) {
	text, relStart, relEnd := coercion.FindFragment(content, start, end)
	result := coercion.Apply(coercion.Fragment{Text: text, HitStart: relStart, HitEnd: relEnd, HitReplace: replace}, acronyms)
	if result.Applied {
		return result.Replace, true
	}
	// FindFragment only widens across identifier characters, so a bare
	// word surrounded by plain spaces (shouty prose in a comment) never
	// produces a constraining fragment above. UpperSentenceFallback
	// covers just that narrow case without touching ordinary code.
	return coercion.UpperSentenceFallback(content, start, end, replace, acronyms)
}

func buildHunk(path string, content []byte, start, end int, matched, replace string, coerced bool, excludeLine *regexp.Regexp) (types.MatchHunk, bool) {
	lineStart, lineEnd := pattern.LineBounds(content, start)
	lineBefore := string(content[lineStart:lineEnd])
	if excludeLine != nil && excludeLine.MatchString(lineBefore) {
		return types.MatchHunk{}, false
	}
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

		CoercionApplied: coerced,
	}, true
}
