package ambiguity

import (
	"path/filepath"
	"strings"

	"github.com/renamify-go/renamify/pkg/types"
)

// Context is everything the resolver needs to pick a Style for one
// ambiguous match site.
type Context struct {
	FilePath         string
	PrecedingContext string
	PossibleStyles   []types.Style
}

// Resolved is the resolver's verdict: a chosen Style, or ok=false when no
// heuristic applies and the caller should fall back to leaving the
// occurrence unresolved (variant-to-variant identity, or skip if
// IgnoreAmbiguous is set by the caller).
type Resolved struct {
	Style types.Style
	OK    bool
}

// Resolve picks a Style using the file extension's language heuristics.
// The PossibleStyles list (typically from GetPossibleStyles) constrains
// which style the heuristic is allowed to return.
func Resolve(ctx Context) Resolved {
	style, ok := SuggestStyle(ctx.FilePath, ctx.PrecedingContext, ctx.PossibleStyles)
	return Resolved{Style: style, OK: ok}
}

// languageFn is the shape every per-language heuristic module exposes.
type languageFn func(context string, possible []types.Style) (types.Style, bool)

var extensionTable = map[string]languageFn{
	"rb": rubySuggestStyle, "rake": rubySuggestStyle, "gemspec": rubySuggestStyle,

	"py": pythonSuggestStyle, "pyw": pythonSuggestStyle, "pyi": pythonSuggestStyle,

	"js": javascriptSuggestStyle, "jsx": javascriptSuggestStyle, "mjs": javascriptSuggestStyle,
	"cjs": javascriptSuggestStyle, "ts": javascriptSuggestStyle, "tsx": javascriptSuggestStyle,

	"go": goSuggestStyle,

	"rs": rustSuggestStyle,

	"c": cCppSuggestStyle, "cpp": cCppSuggestStyle, "cc": cCppSuggestStyle,
	"cxx": cCppSuggestStyle, "h": cCppSuggestStyle, "hpp": cCppSuggestStyle, "hxx": cCppSuggestStyle,

	"css": cssSuggestStyle, "scss": cssSuggestStyle, "sass": cssSuggestStyle,
	"less": cssSuggestStyle, "styl": cssSuggestStyle,

	"html": htmlSuggestStyle, "htm": htmlSuggestStyle, "xml": htmlSuggestStyle,
	"svg": htmlSuggestStyle, "vue": htmlSuggestStyle,

	"sh": shellSuggestStyle, "bash": shellSuggestStyle, "zsh": shellSuggestStyle,
	"fish": shellSuggestStyle, "ksh": shellSuggestStyle,

	"yml": yamlSuggestStyle, "yaml": yamlSuggestStyle,

	"json": configSuggestStyle, "jsonc": configSuggestStyle, "json5": configSuggestStyle,
	"toml": configSuggestStyle, "ini": configSuggestStyle, "cfg": configSuggestStyle,
	"conf": configSuggestStyle,

	"env": envSuggestStyle,
}

// SuggestStyle dispatches to the language heuristic for filePath's
// extension. Returns ok=false for an unrecognised extension, an
// extensionless path, or a heuristic that declines to suggest a style.
func SuggestStyle(filePath, precedingContext string, possible []types.Style) (types.Style, bool) {
	ext := strings.TrimPrefix(filepath.Ext(filePath), ".")
	if ext == "" {
		return "", false
	}
	fn, ok := extensionTable[strings.ToLower(ext)]
	if !ok {
		return "", false
	}
	return fn(strings.TrimSpace(precedingContext), possible)
}

func contains(styles []types.Style, style types.Style) bool {
	for _, s := range styles {
		if s == style {
			return true
		}
	}
	return false
}
