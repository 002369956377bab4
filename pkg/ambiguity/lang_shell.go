package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

func shellSuggestStyle(context string, possible []types.Style) (types.Style, bool) {
	switch {
	case strings.HasSuffix(context, "export") || strings.Contains(context, "export "):
		if contains(possible, types.StyleScreamingSnake) {
			return types.StyleScreamingSnake, true
		}
	case hasAnySuffix(context, "$", "${"):
		if isAllUppercaseAssignmentContext(lettersOnly(context)) && contains(possible, types.StyleScreamingSnake) {
			return types.StyleScreamingSnake, true
		}
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "function") || strings.Contains(context, "() {"):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case strings.HasSuffix(context, "alias"):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case strings.HasSuffix(context, "=") && !strings.Contains(context, "export"):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "source") || strings.HasSuffix(context, "."):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	}
	return "", false
}
