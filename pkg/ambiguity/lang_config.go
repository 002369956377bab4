package ambiguity

import (
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

// configSuggestStyle covers .json/.toml/.ini-family key and section
// contexts per spec.md §4.6; all of those extensions route through this
// one heuristic rather than each having its own table row.
func configSuggestStyle(context string, possible []types.Style) (types.Style, bool) {
	switch {
	case strings.Contains(context, `":`) || (strings.HasSuffix(context, `"`) && strings.Contains(context, ":")):
		// JSON key.
		if contains(possible, types.StyleCamel) {
			return types.StyleCamel, true
		}
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
	case strings.HasPrefix(context, "[") && strings.HasSuffix(context, "]"):
		// TOML/INI section header.
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case strings.HasSuffix(context, "=") && !strings.Contains(context, `"`):
		// TOML/INI key-value pair.
		if contains(possible, types.StyleSnake) {
			return types.StyleSnake, true
		}
		if contains(possible, types.StyleKebab) {
			return types.StyleKebab, true
		}
	case strings.Contains(context, ".env") || strings.Contains(context, "dotenv"):
		if contains(possible, types.StyleScreamingSnake) {
			return types.StyleScreamingSnake, true
		}
	}
	return "", false
}

// envSuggestStyle always prefers screaming_snake for a .env file: every
// name in one is an environment variable assignment by convention.
func envSuggestStyle(_ string, possible []types.Style) (types.Style, bool) {
	if contains(possible, types.StyleScreamingSnake) {
		return types.StyleScreamingSnake, true
	}
	return "", false
}
