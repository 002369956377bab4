package coercion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renamify-go/renamify/pkg/acronym"
)

// TestApply_UppercaseCoercion covers a wholly uppercase fragment: a
// fragment-wide uppercase/underscore constraint forces the replacement
// into SCREAMING_SNAKE even though the naive per-style replacement would
// have been PascalCase.
func TestApply_UppercaseCoercion(t *testing.T) {
	line := "CARGO_BIN_EXE_CONFIGHELPER"
	start := len("CARGO_BIN_EXE_")
	end := len(line)

	text, relStart, relEnd := FindFragment([]byte(line), start, end)
	require.Equal(t, line, text)

	result := Apply(Fragment{Text: text, HitStart: relStart, HitEnd: relEnd, HitReplace: "ConfigHelper"}, acronym.Default())
	assert.True(t, result.Applied)
	assert.Equal(t, "CONFIG_HELPER", result.Replace)
}

// TestApply_MixedPrefixPreservation covers spec scenario (d): an
// uppercase prefix must not force the replacement's lowercase suffix to
// uppercase when the fragment as a whole isn't uniform.
func TestApply_MixedPrefixPreservation(t *testing.T) {
	line := `env!("CARGO_BIN_EXE_foobar")`
	start := len(`env!("CARGO_BIN_EXE_`)
	end := start + len("foobar")

	text, relStart, relEnd := FindFragment([]byte(line), start, end)
	require.Equal(t, "CARGO_BIN_EXE_foobar", text)

	result := Apply(Fragment{Text: text, HitStart: relStart, HitEnd: relEnd, HitReplace: "baz_qux"}, acronym.Default())
	assert.False(t, result.Applied, "fragment is not case-uniform, so the lowercase suffix must be left alone")
	assert.Equal(t, "baz_qux", result.Replace)
}

func TestApply_NoConstraintOutsideFragment(t *testing.T) {
	result := Apply(Fragment{Text: "foo", HitStart: 0, HitEnd: 3, HitReplace: "bar"}, acronym.Default())
	assert.False(t, result.Applied)
}

// TestApply_BareWordNotConstrained documents that Apply itself never
// widens across plain spaces: a bare word with nothing but space on
// both sides has an empty "outside" fragment and is left untouched.
// UpperSentenceFallback (tested below) is what covers that case instead.
func TestApply_BareWordNotConstrained(t *testing.T) {
	line := "// TESTWORD CORE ENGINE"
	start := len("// ")
	end := start + len("TESTWORD")

	text, relStart, relEnd := FindFragment([]byte(line), start, end)
	require.Equal(t, "TESTWORD", text)

	result := Apply(Fragment{Text: text, HitStart: relStart, HitEnd: relEnd, HitReplace: "ConfigHelper"}, acronym.Default())
	assert.False(t, result.Applied)
}

// TestUpperSentenceFallback_CommentProse covers the scenario Apply can't
// see: a bare ALL-CAPS word flanked by ALL-CAPS words separated only by
// spaces, e.g. a shouty comment. "// TESTWORD CORE ENGINE" with TESTWORD
// replaced by ConfigHelper must read "// CONFIG HELPER CORE ENGINE".
func TestUpperSentenceFallback_CommentProse(t *testing.T) {
	line := "// TESTWORD CORE ENGINE"
	start := len("// ")
	end := start + len("TESTWORD")

	rendered, ok := UpperSentenceFallback([]byte(line), start, end, "ConfigHelper", acronym.Default())
	require.True(t, ok)
	assert.Equal(t, "CONFIG HELPER", rendered)
}

// TestUpperSentenceFallback_TrailingWord covers a hit at the end of the
// shouty run, with only a preceding neighbour to consult.
func TestUpperSentenceFallback_TrailingWord(t *testing.T) {
	line := "// CORE TESTWORD"
	start := len("// CORE ")
	end := start + len("TESTWORD")

	rendered, ok := UpperSentenceFallback([]byte(line), start, end, "ConfigHelper", acronym.Default())
	require.True(t, ok)
	assert.Equal(t, "CONFIG HELPER", rendered)
}

// TestUpperSentenceFallback_OrdinaryCodeUnaffected is the regression
// guard: an ordinary lowercase identifier sitting on a line with other
// lowercase, space-separated words (completely normal code) must never
// be coerced into a space-joined form.
func TestUpperSentenceFallback_OrdinaryCodeUnaffected(t *testing.T) {
	line := "var old_name string = get_value()"
	start := len("var ")
	end := start + len("old_name")

	_, ok := UpperSentenceFallback([]byte(line), start, end, "new_name", acronym.Default())
	assert.False(t, ok, "a lowercase multi-token identifier is not a bare ALL-CAPS word and must not be coerced")
}

// TestUpperSentenceFallback_BareLowercaseWordUnaffected guards the other
// half of the same risk: even a bare single-token lowercase word flanked
// by ordinary lowercase code words must not trigger the fallback, since
// only the ALL-CAPS case is considered deliberate shouty prose.
func TestUpperSentenceFallback_BareLowercaseWordUnaffected(t *testing.T) {
	line := "var data string"
	start := len("var ")
	end := start + len("data")

	_, ok := UpperSentenceFallback([]byte(line), start, end, "config", acronym.Default())
	assert.False(t, ok)
}

func TestIsUpperUnderscoreFragment(t *testing.T) {
	assert.True(t, IsUpperUnderscoreFragment("CARGO_BIN"))
	assert.False(t, IsUpperUnderscoreFragment("Cargo_Bin"))
	assert.False(t, IsUpperUnderscoreFragment("cargo_bin"))
}
