package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

func yamlSuggestStyle(context string, possible []types.Style) (types.Style, bool) {
	switch {
	case strings.HasSuffix(context, ":") && !strings.HasSuffix(context, "::"):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case strings.Contains(context, "${{") || strings.Contains(context, "${"):
		if isAllUppercaseAssignmentContext(lettersOnly(context)) && contains(possible, types.StyleScreamingSnake) {
			return types.StyleScreamingSnake, true
		}
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "- name:") || strings.HasSuffix(context, "  name:"):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case strings.Contains(context, "env:"):
		if contains(possible, types.StyleScreamingSnake) {
			return types.StyleScreamingSnake, true
		}
	}
	return "", false
}
