// Package coercion implements the post-match casing correction (spec
// component G): independent of which Style the variant map or the
// ambiguity resolver picked, the surrounding identifier fragment can
// impose a stricter constraint that the replacement must honour, e.g.
// "CARGO_BIN_EXE_foobar" must keep its lowercase suffix lowercase even
// though it sits inside an otherwise-uppercase fragment.
package coercion

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/acronym"
	"github.com/renamify-go/renamify/pkg/casemodel"
	"github.com/renamify-go/renamify/pkg/types"
)

// Fragment is the surrounding identifier-shaped run of text containing a
// match, wider than the matched hit itself (e.g. the whole of
// "CARGO_BIN_EXE_foobar" for a hit on "foobar").
type Fragment struct {
	Text          string
	HitStart      int // byte offset of the hit within Text
	HitEnd        int
	HitReplace    string // the replacement chosen before coercion
}

// Result is the coercion verdict.
type Result struct {
	Replace string
	Applied bool
}

// Apply inspects fragment and, if it is wholly uppercase, wholly
// lowercase, or otherwise case-uniform around a single separator style,
// forces hitReplace to be rendered in the corresponding Style. Returns
// Applied=false (and the input replace unchanged) when the fragment does
// not impose a uniform constraint, or cannot be split/rendered under the
// coerced Style's own rules.
func Apply(f Fragment, acronyms *acronym.Set) Result {
	before := f.Text[:f.HitStart]
	after := f.Text[f.HitEnd:]
	outside := before + after

	style, ok := fragmentStyle(f.Text, outside)
	if !ok {
		return Result{Replace: f.HitReplace, Applied: false}
	}

	model := casemodel.Tokenize(f.HitReplace, acronyms)
	if model.Empty() {
		return Result{Replace: f.HitReplace, Applied: false}
	}
	rendered := casemodel.Render(model, style, acronyms)
	if rendered == "" || rendered == f.HitReplace {
		return Result{Replace: f.HitReplace, Applied: false}
	}
	return Result{Replace: rendered, Applied: true}
}

// fragmentStyle decides which uniform Style the fragment enforces, if
// any. The fragment must have text outside the hit, and every letter of
// the whole fragment, the hit's current text included, must share one
// case: an uppercase prefix in front of a lowercase hit (as in
// "CARGO_BIN_EXE_foobar") imposes nothing. The separator is read off the
// whole fragment as well, so a hit sitting at one end of the fragment
// still picks up the right separator.
func fragmentStyle(whole, outside string) (types.Style, bool) {
	if outside == "" {
		return "", false
	}
	hasLetter := false
	allUpper := true
	allLower := true
	for i := 0; i < len(whole); i++ {
		b := whole[i]
		switch {
		case b >= 'A' && b <= 'Z':
			hasLetter = true
			allLower = false
		case b >= 'a' && b <= 'z':
			hasLetter = true
			allUpper = false
		default:
			// separators and digits don't affect case-uniformity
		}
	}
	if !hasLetter {
		return "", false
	}

	sep := dominantSeparator(whole)

	switch {
	case allUpper && sep == '-':
		return types.StyleScreamingTrain, true
	case allUpper && sep == ' ':
		return types.StyleUpperSentence, true
	case allUpper:
		return types.StyleScreamingSnake, true
	case allLower && sep == '-':
		return types.StyleKebab, true
	case allLower && sep == ' ':
		return types.StyleLowerSentence, true
	case allLower:
		return types.StyleSnake, true
	default:
		return "", false
	}
}

// dominantSeparator returns the first '-', ' ' or '.' found in s, or '_'
// when none of those is present (the common case for a coercion target
// like "CARGO_BIN_EXE_foobar").
func dominantSeparator(s string) byte {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '-', ' ', '.':
			return s[i]
		}
	}
	return '_'
}

// FindFragment widens a [hitStart,hitEnd) match inside content to the
// full identifier-shaped run containing it (letters, digits, '_', '-')
// so Apply can inspect the whole enclosing fragment, not just the hit.
func FindFragment(content []byte, hitStart, hitEnd int) (text string, relStart, relEnd int) {
	start := hitStart
	for start > 0 && isFragmentByte(content[start-1]) {
		start--
	}
	end := hitEnd
	for end < len(content) && isFragmentByte(content[end]) {
		end++
	}
	return string(content[start:end]), hitStart - start, hitEnd - start
}

func isFragmentByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// UpperSentenceFallback handles the one case FindFragment's identifier-
// shaped widening can never see: a bare, separator-free ALL-CAPS word
// sitting in space-separated ALL-CAPS prose, e.g. "TESTWORD" inside the
// comment "// TESTWORD CORE ENGINE". Widening the fragment itself across
// plain spaces was tried and reverted -- on ordinary code it swallows
// unrelated lowercase keywords on the same line ("var old_name string")
// and forces harmless snake_case replacements into space-joined nonsense.
// Restricting the space-aware check to the all-uppercase case, and to a
// hit that is itself a bare uppercase word with no separator of its own,
// keeps the common lowercase-code path untouched while still covering
// the SCREAMING prose case spec.md's coercion scenario calls for.
func UpperSentenceFallback(content []byte, start, end int, replace string, acronyms *acronym.Set) (string, bool) {
	hit := content[start:end]
	if !isBareUpperWord(hit) {
		return "", false
	}

	prevOK := !precededByWordChar(content, start) && isUpperWordBefore(content, start)
	nextOK := !followedByWordChar(content, end) && isUpperWordAfter(content, end)
	if !prevOK && !nextOK {
		return "", false
	}

	model := casemodel.Tokenize(replace, acronyms)
	if model.Empty() {
		return "", false
	}
	rendered := casemodel.Render(model, types.StyleUpperSentence, acronyms)
	if rendered == "" || rendered == replace {
		return "", false
	}
	return rendered, true
}

func isBareUpperWord(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	for _, c := range b {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func precededByWordChar(content []byte, start int) bool {
	return start > 0 && isFragmentByte(content[start-1])
}

func followedByWordChar(content []byte, end int) bool {
	return end < len(content) && isFragmentByte(content[end])
}

// isUpperWordBefore reports whether, skipping exactly one run of spaces
// back from start, there is a bare all-uppercase word (not itself
// preceded by another identifier character, so it too is a standalone
// word rather than the tail of something longer).
func isUpperWordBefore(content []byte, start int) bool {
	i := start
	for i > 0 && content[i-1] == ' ' {
		i--
	}
	if i == start || i == 0 {
		return false
	}
	wordEnd := i
	for i > 0 && isUpperLetter(content[i-1]) {
		i--
	}
	if i > 0 && isFragmentByte(content[i-1]) {
		return false // word continues past a '_'/'-'/digit: not a bare word
	}
	return wordEnd-i >= 2
}

// isUpperWordAfter is isUpperWordBefore's mirror, looking forward from
// end across exactly one run of spaces.
func isUpperWordAfter(content []byte, end int) bool {
	i := end
	for i < len(content) && content[i] == ' ' {
		i++
	}
	if i == end || i == len(content) {
		return false
	}
	wordStart := i
	for i < len(content) && isUpperLetter(content[i]) {
		i++
	}
	if i < len(content) && isFragmentByte(content[i]) {
		return false
	}
	return i-wordStart >= 2
}

func isUpperLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// IsUpperUnderscoreFragment reports whether s (ignoring digits and
// underscores) is entirely uppercase letters - the classic ALL_CAPS
// constant shape used by callers that only need the boolean, not a full
// Style decision.
func IsUpperUnderscoreFragment(s string) bool {
	hasLetter := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'a' && b <= 'z' {
			return false
		}
		if b >= 'A' && b <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter && !strings.ContainsAny(s, "-. ")
}
