package ambiguity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renamify-go/renamify/pkg/types"
)

func TestCouldBeStyle(t *testing.T) {
	assert.True(t, CouldBeStyle("api", types.StyleSnake))
	assert.True(t, CouldBeStyle("api", types.StyleCamel))
	assert.True(t, CouldBeStyle("api", types.StyleLowerFlat))
	assert.False(t, CouldBeStyle("api", types.StylePascal))

	assert.True(t, CouldBeStyle("Api", types.StylePascal))
	assert.False(t, CouldBeStyle("Api", types.StyleCamel))

	assert.True(t, CouldBeStyle("API", types.StyleScreamingSnake))
	assert.True(t, CouldBeStyle("API", types.StyleUpperFlat))
}

func TestGetPossibleStyles_AmbiguousBareWord(t *testing.T) {
	styles := GetPossibleStyles("api")
	assert.Contains(t, styles, types.StyleSnake)
	assert.Contains(t, styles, types.StyleCamel)
	assert.Contains(t, styles, types.StyleLowerFlat)
	assert.NotContains(t, styles, types.StylePascal)
}

func TestIsAmbiguous(t *testing.T) {
	assert.True(t, IsAmbiguous("api"))
	assert.False(t, IsAmbiguous("my_api_client"))
}
