package casemodel

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/acronym"
	"github.com/renamify-go/renamify/pkg/types"
)

// tokenCaser renders a single Token's text in one style-specific casing.
// Acronym awareness is captured via closure, not passed as an argument,
// so every caser has the same shape regardless of whether it needs the
// acronym set.
type tokenCaser func(t types.Token) string

// Render renders a TokenModel into the given Style. Acronym tokens render
// using their configured canonical casing wherever a word is capitalised:
// camel (after the first word), pascal, train, title, and the first word
// of sentence (e.g. "oauth_client" -> "OAuthClient" when "OAuth" is the
// registered casing). Everywhere else they are upper/lower-folded like
// any other token.
func Render(model types.TokenModel, style types.Style, acronyms *acronym.Set) string {
	toks := model.Tokens
	if len(toks) == 0 {
		return ""
	}
	lower := func(t types.Token) string { return strings.ToLower(t.Text) }
	upper := func(t types.Token) string { return strings.ToUpper(t.Text) }
	capWord := func(t types.Token) string {
		if t.IsAcronym {
			return acronyms.Canonical(strings.ToUpper(t.Text))
		}
		return capitalize(t.Text)
	}

	switch style {
	case types.StyleSnake:
		return joinWith(toks, "_", lower, lower)
	case types.StyleKebab:
		return joinWith(toks, "-", lower, lower)
	case types.StyleScreamingSnake:
		return joinWith(toks, "_", upper, upper)
	case types.StyleTrain:
		return joinWith(toks, "-", capWord, capWord)
	case types.StyleScreamingTrain:
		return joinWith(toks, "-", upper, upper)
	case types.StyleDot:
		return joinWith(toks, ".", lower, lower)
	case types.StyleCamel:
		return joinWith(toks, "", lower, capWord)
	case types.StylePascal:
		return joinWith(toks, "", capWord, capWord)
	case types.StyleTitle:
		return joinWith(toks, " ", capWord, capWord)
	case types.StyleSentence:
		return joinWith(toks, " ", capWord, lower)
	case types.StyleLowerSentence:
		return joinWith(toks, " ", lower, lower)
	case types.StyleUpperSentence:
		return joinWith(toks, " ", upper, upper)
	case types.StyleLowerFlat:
		return joinWith(toks, "", lower, lower)
	case types.StyleUpperFlat:
		return joinWith(toks, "", upper, upper)
	default:
		return joinWith(toks, "_", lower, lower)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// joinWith renders the first token with firstCaser and every subsequent
// token with restCaser, joined by sep.
func joinWith(toks []types.Token, sep string, firstCaser, restCaser tokenCaser) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteString(sep)
		}
		if i == 0 {
			b.WriteString(firstCaser(t))
		} else {
			b.WriteString(restCaser(t))
		}
	}
	return b.String()
}

// DetectStyle attempts to classify an already-rendered identifier as
// exactly one of the known styles by re-tokenizing it and re-rendering
// every style, looking for a match. Returns ok=false when the identifier
// doesn't round-trip to any style (e.g. mixed casing such as "Foo_Bar"),
// when several styles reproduce it (e.g. a single lowercase word, which
// snake, kebab, camel, dot and lower_flat all render identically), or
// when it is empty.
func DetectStyle(s string, acronyms *acronym.Set) (types.Style, bool) {
	if s == "" {
		return "", false
	}
	model := Tokenize(s, acronyms)
	if model.Empty() {
		return "", false
	}
	var detected types.Style
	matches := 0
	for _, style := range types.AllStyles {
		if Render(model, style, acronyms) == s {
			detected = style
			matches++
		}
	}
	if matches != 1 {
		return "", false
	}
	return detected, true
}
