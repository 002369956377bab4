// Package ambiguity resolves which Style a single ambiguous token (one
// that could plausibly be several styles, like "api" or "ID") should be
// rendered as at a given match site, using per-language heuristics keyed
// on file extension and the text immediately preceding the match (spec
// component F).
package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

// candidateStyles lists every style CouldBeStyle is asked about, in a
// fixed order so GetPossibleStyles is deterministic.
var candidateStyles = []types.Style{
	types.StyleSnake,
	types.StyleKebab,
	types.StyleCamel,
	types.StylePascal,
	types.StyleScreamingSnake,
	types.StyleTrain,
	types.StyleScreamingTrain,
	types.StyleTitle,
	types.StyleDot,
	types.StyleLowerFlat,
	types.StyleUpperFlat,
}

// CouldBeStyle reports whether text's character shape is consistent with
// style, independent of whether it round-trips exactly (detect_style is
// stricter; this is permissive, used only to enumerate candidates for an
// already-known-ambiguous token).
func CouldBeStyle(text string, style types.Style) bool {
	if text == "" {
		return false
	}
	first := rune(text[0])
	anyUpper := containsUpper(text)
	anyLower := containsLower(text)
	hasUnderscore := strings.Contains(text, "_")
	hasHyphen := strings.Contains(text, "-")
	hasDot := strings.Contains(text, ".")

	switch style {
	case types.StyleSnake:
		return !anyUpper && (hasUnderscore || allOf(text, isLowerOrDigitOrUnderscore))
	case types.StyleKebab:
		return !anyUpper && (hasHyphen || allOf(text, isLowerOrDigitOrHyphen))
	case types.StyleCamel:
		return isLowerRune(first) && !hasUnderscore && !hasHyphen && !hasDot
	case types.StylePascal:
		return isUpperRune(first)
	case types.StyleScreamingSnake:
		return !anyLower && (hasUnderscore || allOf(text, isUpperOrDigitOrUnderscore))
	case types.StyleTrain:
		return isUpperRune(first) && (hasHyphen || allOf(text, isAlnumOrHyphen))
	case types.StyleScreamingTrain:
		return !anyLower && (hasHyphen || allOf(text, isUpperOrDigitOrHyphen))
	case types.StyleTitle:
		return strings.Contains(text, " ") || isUpperRune(first)
	case types.StyleDot:
		return !anyUpper && (hasDot || allOf(text, isLowerOrDigitOrDot))
	case types.StyleLowerFlat:
		return !anyUpper && !hasUnderscore && !hasHyphen && !hasDot
	case types.StyleUpperFlat:
		return !anyLower && !hasUnderscore && !hasHyphen && !hasDot
	default:
		return false
	}
}

// GetPossibleStyles returns every style whose shape text is consistent
// with, in canonical order.
func GetPossibleStyles(text string) []types.Style {
	var out []types.Style
	for _, style := range candidateStyles {
		if CouldBeStyle(text, style) {
			out = append(out, style)
		}
	}
	return out
}

// IsAmbiguous reports whether text is consistent with more than one
// style.
func IsAmbiguous(text string) bool {
	return len(GetPossibleStyles(text)) > 1
}

func containsUpper(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func containsLower(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}

func isLowerRune(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpperRune(r rune) bool { return r >= 'A' && r <= 'Z' }

func allOf(s string, pred func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

func isLowerOrDigitOrUnderscore(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '_'
}
func isLowerOrDigitOrHyphen(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '-'
}
func isLowerOrDigitOrDot(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '.'
}
func isUpperOrDigitOrUnderscore(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}
func isUpperOrDigitOrHyphen(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '-'
}
func isAlnumOrHyphen(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '-'
}
