package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

func htmlSuggestStyle(context string, possible []types.Style) (types.Style, bool) {
	switch {
	case strings.Contains(context, "data-") || strings.Contains(context, "class=") || strings.Contains(context, "id="):
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case strings.HasSuffix(context, "aria-"):
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case hasAnySuffix(context, "<", "</"):
		// Tag names are lowercase; custom elements fall back to kebab.
		if contains(possible, types.StyleLowerFlat) {
			return types.StyleLowerFlat, true
		}
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case strings.Contains(context, "xmlns:") || strings.Contains(context, "xml:"):
		if contains(possible, types.StyleLowerFlat) {
			return types.StyleLowerFlat, true
		}
		if contains(possible, types.StyleCamel) {
			return types.StyleCamel, true
		}
	case hasAnySuffix(context, "v-", "x-"):
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case hasAnySuffix(context, "ng-", "*ng"):
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
		if contains(possible, types.StyleCamel) {
			return types.StyleCamel, true
		}
	case strings.Contains(context, `="`) || strings.Contains(context, "='"):
		if (strings.Contains(context, `class="`) || strings.Contains(context, "class='")) && contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	}
	return "", false
}
