package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

func javascriptSuggestStyle(context string, possible []types.Style) (types.Style, bool) {
	switch {
	case hasAnySuffix(context, "class ", "interface ", "enum ", "type ", "extends ", "implements "):
		if contains(possible, types.StylePascal) {
			return types.StylePascal, true
		}
	case hasAnySuffix(context, "function", "const", "let", "var"):
		if contains(possible, types.StyleCamel) {
			return types.StyleCamel, true
		}
	case strings.HasSuffix(context, "process.env."):
		if contains(possible, types.StyleScreamingSnake) {
			return types.StyleScreamingSnake, true
		}
	}
	return "", false
}

func hasAnySuffix(s string, suffixes ...string) bool {
	trimmed := strings.TrimSpace(s)
	for _, suf := range suffixes {
		if strings.HasSuffix(trimmed, strings.TrimSpace(suf)) {
			return true
		}
	}
	return false
}
