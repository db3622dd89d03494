package stickergen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyles(t *testing.T) {
	assert.Equal(t, []Style{StyleCute, StyleCool, StyleRetro, StyleCyberpunk, StyleSketch, Style3DRender}, Styles())
	assert.Equal(t, StyleCute, StyleDefault)

	list := Styles()
	list[0] = "Changed"
	assert.Equal(t, StyleCute, Styles()[0])

	for _, s := range Styles() {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Style("cute").Valid())
	assert.False(t, Style("").Valid())
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle(" cyberpunk ")
	require.NoError(t, err)
	assert.Equal(t, StyleCyberpunk, s)

	s, err = ParseStyle("3d render")
	require.NoError(t, err)
	assert.Equal(t, Style3DRender, s)

	_, err = ParseStyle("watercolor")
	assert.ErrorIs(t, err, ErrInvalidStyle)
}

func TestStickerPrompt(t *testing.T) {
	got := StickerPrompt("  a happy corgi eating pizza ", StyleCute)

	assert.Contains(t, got, "die-cut sticker of a happy corgi eating pizza.")
	assert.Contains(t, got, "Style: Cute.")
	assert.Contains(t, got, "white border")
	assert.Contains(t, got, "pure white background")
	assert.Contains(t, got, "Vector art style")
	assert.Equal(t, got, StickerPrompt("a happy corgi eating pizza", StyleCute))
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "3D Render sticker of a robot", Caption(" a robot ", Style3DRender))
}
