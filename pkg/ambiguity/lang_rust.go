package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

func rustSuggestStyle(context string, possible []types.Style) (types.Style, bool) {
	switch {
	case hasAnySuffix(context, "struct", "enum", "trait"):
		if contains(possible, types.StylePascal) {
			return types.StylePascal, true
		}
	case hasAnySuffix(context, "fn", "let", "const"):
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	}
	return "", false
}
