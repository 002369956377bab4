package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

func rubySuggestStyle(context string, possible []types.Style) (types.Style, bool) {
	switch {
	case strings.HasSuffix(context, "class") || strings.HasSuffix(context, "module"):
		if contains(possible, types.StylePascal) {
			return types.StylePascal, true
		}
	case strings.HasSuffix(context, "def") || strings.HasPrefix(lastWord(context), "attr_"):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	}
	return "", false
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
