package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

func goSuggestStyle(context string, possible []types.Style) (types.Style, bool) {
	switch {
	case strings.HasSuffix(context, "type") || strings.HasSuffix(context, "struct") || strings.HasSuffix(context, "interface"):
		return pascalThenCamel(possible)
	case strings.HasSuffix(context, "func") || strings.Contains(context, "func ("):
		return pascalThenCamel(possible)
	case strings.HasSuffix(context, "const") || strings.HasSuffix(context, "var"):
		if contains(possible, types.StyleCamel) {
			return types.StyleCamel, true
		}
	case strings.HasSuffix(context, "package"):
		if contains(possible, types.StyleLowerFlat) {
			return types.StyleLowerFlat, true
		}
	case strings.HasSuffix(context, "import") || strings.Contains(context, "import ("):
		if contains(possible, types.StyleLowerFlat) {
			return types.StyleLowerFlat, true
		}
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "error") || strings.HasSuffix(context, "Error"):
		return pascalThenCamel(possible)
	case strings.Contains(context, "//go:") || strings.Contains(context, "// +build"):
		if contains(possible, types.StyleLowerFlat) {
			return types.StyleLowerFlat, true
		}
	}
	return "", false
}

func pascalThenCamel(possible []types.Style) (types.Style, bool) {
	if contains(possible, types.StylePascal) {
		return types.StylePascal, true
	}
	if contains(possible, types.StyleCamel) {
		return types.StyleCamel, true
	}
	return "", false
}
