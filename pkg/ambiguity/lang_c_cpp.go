package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

func cCppSuggestStyle(context string, possible []types.Style) (types.Style, bool) {
	switch {
	case hasAnySuffix(context, "class", "struct", "union"):
		if contains(possible, types.StylePascal) {
			return types.StylePascal, true
		}
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "#define") || strings.Contains(context, "#define "):
		if contains(possible, types.StyleScreamingSnake) {
			return types.StyleScreamingSnake, true
		}
	case strings.Contains(context, "typedef"):
		if strings.Contains(context, "typedef struct") || strings.Contains(context, "typedef enum") {
			if contains(possible, types.StyleSnake) {
				return types.StyleSnake, true
			}
			if contains(possible, types.StylePascal) {
				return types.StylePascal, true
			}
		} else if contains(possible, types.StylePascal) {
			return types.StylePascal, true
		} else if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "namespace"):
		if contains(possible, types.StyleLowerFlat) {
			return types.StyleLowerFlat, true
		}
		if contains(possible, types.StylePascal) {
			return types.StylePascal, true
		}
	case strings.HasSuffix(context, "enum"):
		if contains(possible, types.StylePascal) {
			return types.StylePascal, true
		}
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.Contains(context, "const ") || strings.HasSuffix(context, "constexpr"):
		if isAllUppercaseAssignmentContext(lettersOnly(context)) && contains(possible, types.StyleScreamingSnake) {
			return types.StyleScreamingSnake, true
		}
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "template<") || strings.Contains(context, "typename "):
		if contains(possible, types.StylePascal) {
			return types.StylePascal, true
		}
	case strings.HasSuffix(context, "::"):
		if contains(possible, types.StylePascal) {
			return types.StylePascal, true
		}
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "#include") || strings.Contains(context, "#include <") || strings.Contains(context, `#include "`):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
		if contains(possible, types.StyleLowerFlat) {
			return types.StyleLowerFlat, true
		}
	}
	return "", false
}

// lettersOnly strips everything but alphabetic runes, used to test
// whether a context string is entirely uppercase letters (ignoring the
// punctuation around them) the way the const-vs-SCREAMING_SNAKE check
// needs.
func lettersOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
