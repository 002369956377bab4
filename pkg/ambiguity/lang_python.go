package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

func pythonSuggestStyle(context string, possible []types.Style) (types.Style, bool) {
	switch {
	case strings.HasSuffix(context, "class"):
		if contains(possible, types.StylePascal) {
			return types.StylePascal, true
		}
	case strings.HasSuffix(context, "def") || strings.HasSuffix(context, "lambda") ||
		strings.HasSuffix(context, "async def"):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case isAllUppercaseAssignmentContext(context):
		if contains(possible, types.StyleScreamingSnake) {
			return types.StyleScreamingSnake, true
		}
	case strings.HasSuffix(context, "import") || strings.HasSuffix(context, "from") ||
		strings.Contains(context, "import "):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "@"):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "__") && strings.HasPrefix(context, "__"):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "Exception") || strings.HasSuffix(context, "Error"):
		if contains(possible, types.StylePascal) {
			return types.StylePascal, true
		}
	case strings.HasSuffix(context, "=") && !strings.Contains(context, "class") && !strings.Contains(context, "def"):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	}
	return "", false
}

func isAllUppercaseAssignmentContext(context string) bool {
	if context == "" {
		return false
	}
	for _, r := range context {
		if r == '_' || r == '=' || r == ' ' || r == '\t' {
			continue
		}
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
