package fonts_test

import (
	"testing"

	"github.com/automoto/devmenu/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	require.NoError(t, fonts.LoadDefault(fonts.Overlay, 10))
	assert.True(t, fonts.Loaded(fonts.Overlay))
	assert.NotNil(t, fonts.Overlay.Get())
	assert.Positive(t, fonts.Overlay.Get().Metrics().Height.Ceil())
}

func TestLoadInvalidFont(t *testing.T) {
	err := fonts.LoadFontWithSize("broken", []byte("not a font"), 10)
	assert.Error(t, err)
	assert.False(t, fonts.Loaded("broken"))
}

func TestGetMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { fonts.FontName("missing").Get() })
}
