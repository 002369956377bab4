package ambiguity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renamify-go/renamify/pkg/types"
)

// TestResolve_PythonClassContext covers spec.md §8 scenario (e): the same
// ambiguous token "api" resolves to a different Style depending on the
// Python construct immediately preceding it.
func TestResolve_PythonClassContext(t *testing.T) {
	possible := GetPossibleStyles("Api") // ambiguous between Pascal, Train and Title

	resolved := Resolve(Context{
		FilePath:         "client.py",
		PrecedingContext: "class ",
		PossibleStyles:   possible,
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StylePascal, resolved.Style)
}

func TestResolve_PythonDefContext(t *testing.T) {
	possible := GetPossibleStyles("api")

	resolved := Resolve(Context{
		FilePath:         "client.py",
		PrecedingContext: "def ",
		PossibleStyles:   possible,
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleSnake, resolved.Style)
}

func TestResolve_PythonScreamingAssignment(t *testing.T) {
	possible := GetPossibleStyles("API") // ambiguous: pascal, screaming_snake, train, screaming_train, title, upper_flat

	resolved := Resolve(Context{
		FilePath:         "settings.py",
		PrecedingContext: "API_URL = ",
		PossibleStyles:   possible,
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleScreamingSnake, resolved.Style)
}

func TestResolve_GoFuncContext(t *testing.T) {
	possible := GetPossibleStyles("api")
	resolved := Resolve(Context{
		FilePath:         "client.go",
		PrecedingContext: "func ",
		PossibleStyles:   possible,
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleCamel, resolved.Style)
}

func TestResolve_UnknownExtension(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "README",
		PrecedingContext: "class ",
		PossibleStyles:   GetPossibleStyles("api"),
	})
	assert.False(t, resolved.OK)
}

func TestSuggestStyle_ExtensionlessPath(t *testing.T) {
	_, ok := SuggestStyle("Makefile", "", nil)
	assert.False(t, ok)
}

func TestResolve_CCppClassContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "widget.h",
		PrecedingContext: "class",
		PossibleStyles:   []types.Style{types.StylePascal, types.StyleSnake},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StylePascal, resolved.Style)
}

func TestResolve_CCppDefineContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "config.h",
		PrecedingContext: "#define",
		PossibleStyles:   []types.Style{types.StyleScreamingSnake, types.StylePascal},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleScreamingSnake, resolved.Style)
}

func TestResolve_CCppTypedefStructContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "types.h",
		PrecedingContext: "typedef struct",
		PossibleStyles:   []types.Style{types.StyleSnake},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleSnake, resolved.Style)
}

func TestResolve_CCppNamespaceContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "widget.cpp",
		PrecedingContext: "namespace",
		PossibleStyles:   []types.Style{types.StyleLowerFlat, types.StylePascal},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleLowerFlat, resolved.Style)
}

func TestResolve_CssClassSelectorContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "style.css",
		PrecedingContext: ".",
		PossibleStyles:   []types.Style{types.StyleKebab, types.StyleCamel},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleKebab, resolved.Style)
}

func TestResolve_CssCustomPropertyContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "theme.scss",
		PrecedingContext: "--",
		PossibleStyles:   []types.Style{types.StyleKebab, types.StyleSnake},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleKebab, resolved.Style)
}

func TestResolve_HtmlDataAttributeContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "index.html",
		PrecedingContext: "data-",
		PossibleStyles:   []types.Style{types.StyleKebab, types.StyleCamel},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleKebab, resolved.Style)
}

func TestResolve_HtmlTagNameContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "index.html",
		PrecedingContext: "<",
		PossibleStyles:   []types.Style{types.StyleLowerFlat, types.StyleKebab},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleLowerFlat, resolved.Style)
}

func TestResolve_HtmlVueDirectiveContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "App.vue",
		PrecedingContext: "v-",
		PossibleStyles:   []types.Style{types.StyleKebab, types.StyleCamel},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleKebab, resolved.Style)
}

func TestResolve_ShellExportContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "build.sh",
		PrecedingContext: "export",
		PossibleStyles:   []types.Style{types.StyleScreamingSnake, types.StyleSnake},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleScreamingSnake, resolved.Style)
}

func TestResolve_ShellFunctionContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "build.sh",
		PrecedingContext: "function",
		PossibleStyles:   []types.Style{types.StyleSnake, types.StyleCamel},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleSnake, resolved.Style)
}

func TestResolve_YamlKeyContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "config.yaml",
		PrecedingContext: "key:",
		PossibleStyles:   []types.Style{types.StyleSnake, types.StyleCamel},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleSnake, resolved.Style)
}

func TestResolve_YamlTemplateEnvVarContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "workflow.yml",
		PrecedingContext: "${{ ENV_VAR",
		PossibleStyles:   []types.Style{types.StyleScreamingSnake, types.StyleSnake},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleScreamingSnake, resolved.Style)
}

func TestResolve_ConfigJSONKeyContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "config.json",
		PrecedingContext: `"key":`,
		PossibleStyles:   []types.Style{types.StyleCamel, types.StyleSnake},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleCamel, resolved.Style)
}

func TestResolve_ConfigTomlSectionContext(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "settings.toml",
		PrecedingContext: "[section]",
		PossibleStyles:   []types.Style{types.StyleSnake, types.StyleCamel},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleSnake, resolved.Style)
}

func TestResolve_EnvFileAlwaysScreamingSnake(t *testing.T) {
	resolved := Resolve(Context{
		FilePath:         "settings.env",
		PrecedingContext: "whatever precedes it",
		PossibleStyles:   []types.Style{types.StyleScreamingSnake, types.StyleSnake},
	})
	require.True(t, resolved.OK)
	assert.Equal(t, types.StyleScreamingSnake, resolved.Style)
}
