package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

func cssSuggestStyle(context string, possible []types.Style) (types.Style, bool) {
	switch {
	case hasAnySuffix(context, ".", "#") || strings.Contains(context, "class="):
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case hasAnySuffix(context, "$", "@"):
		// SCSS/SASS variables ($) and LESS variables (@), usually kebab or snake.
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "--"):
		// CSS custom properties.
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case hasAnySuffix(context, "@mixin", "@include", "@function"):
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasSuffix(context, "%"):
		// SASS placeholder selectors.
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case strings.Contains(context, "[") && strings.Contains(context, "="):
		// Attribute selectors.
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case hasAnySuffix(context, "data-", "aria-"):
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	}
	return "", false
}
