// Package compound finds a search term appearing as a contiguous
// token subsequence inside a larger identifier — "preview_format_arg"
// containing "preview_format" — and rebuilds the identifier in its own
// detected style with the replacement tokens substituted in (spec
// component E).
package compound

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/acronym"
	"github.com/renamify-go/renamify/pkg/casemodel"
	"github.com/renamify-go/renamify/pkg/types"
)

// Match is one compound occurrence found inside a larger identifier.
type Match struct {
	FullIdentifier string
	Replacement    string
	Style          types.Style
	PatternStart   int
	PatternEnd     int
}

func tokensMatch(a, b []types.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i].Text, b[i].Text) {
			return false
		}
	}
	return true
}

// Find locates search as a contiguous token subsequence of identifier and
// returns every window where it occurs (normally at most one, but a
// short search term can recur). styles restricts which detected styles
// are honoured; pass nil to accept any style casemodel.DetectStyle
// reports. An identifier equal to the search term itself is not a
// compound match — the exact-match pattern matcher owns that case.
func Find(identifier, search, replace string, styles []types.Style, acronyms *acronym.Set) []Match {
	var out []Match

	identModel := casemodel.Tokenize(identifier, acronyms)
	searchModel := casemodel.Tokenize(search, acronyms)
	replaceModel := casemodel.Tokenize(replace, acronyms)

	if tokensMatch(identModel.Tokens, searchModel.Tokens) {
		return out
	}

	patternLen := len(searchModel.Tokens)
	identLen := len(identModel.Tokens)
	if patternLen == 0 || patternLen > identLen {
		return out
	}

	style, ok := casemodel.DetectStyle(identifier, acronyms)
	if !ok {
		style, ok = reconstructMixedStyle(identifier, identModel, acronyms)
	}
	if !ok {
		return out
	}
	if len(styles) > 0 && !styleAllowed(style, styles) {
		return out
	}

	for start := 0; start+patternLen <= identLen; start++ {
		end := start + patternLen
		window := identModel.Tokens[start:end]
		if !tokensMatch(window, searchModel.Tokens) {
			continue
		}

		replacementTokens := make([]types.Token, 0, identLen-patternLen+len(replaceModel.Tokens))
		replacementTokens = append(replacementTokens, identModel.Tokens[:start]...)
		replacementTokens = append(replacementTokens, replaceModel.Tokens...)
		replacementTokens = append(replacementTokens, identModel.Tokens[end:]...)

		replacement := casemodel.Render(types.NewTokenModel(replacementTokens), style, acronyms)

		out = append(out, Match{
			FullIdentifier: identifier,
			Replacement:    replacement,
			Style:          style,
			PatternStart:   start,
			PatternEnd:     end,
		})
	}

	return out
}

func styleAllowed(style types.Style, styles []types.Style) bool {
	for _, s := range styles {
		if s == style {
			return true
		}
	}
	return false
}

// reconstructMixedStyle handles an identifier whose casing doesn't
// round-trip cleanly through any single Style (DetectStyle returns
// false): it picks a best-effort style from the identifier's first token
// (SCREAMING_SNAKE for a multi-letter uppercase token, pascal for a
// capitalised one, snake otherwise). Find renders the whole rebuilt token
// sequence, prefix and suffix tokens included, in that one style, so the
// identifier's original separators and casing outside the substituted
// window are not preserved.
func reconstructMixedStyle(identifier string, model types.TokenModel, acronyms *acronym.Set) (types.Style, bool) {
	if model.Empty() {
		return "", false
	}
	first := model.Tokens[0]
	switch {
	case strings.ToUpper(first.Text) == first.Text && len(first.Text) > 1:
		return types.StyleScreamingSnake, true
	case strings.ToUpper(first.Text[:1]) == first.Text[:1]:
		return types.StylePascal, true
	default:
		return types.StyleSnake, true
	}
}
