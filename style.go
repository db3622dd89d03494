package stickergen

import (
	"fmt"
	"strings"
)

// Style is the visual style a sticker is rendered in.
type Style string

const (
	StyleCute      Style = "Cute"
	StyleCool      Style = "Cool"
	StyleRetro     Style = "Retro"
	StyleCyberpunk Style = "Cyberpunk"
	StyleSketch    Style = "Sketch"
	Style3DRender  Style = "3D Render"
)

// StyleDefault is preselected when the caller has no preference.
const StyleDefault = StyleCute

var styles = []Style{StyleCute, StyleCool, StyleRetro, StyleCyberpunk, StyleSketch, Style3DRender}

// Styles returns every supported style in display order.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// Valid reports whether s is one of the supported styles.
func (s Style) Valid() bool {
	for _, known := range styles {
		if s == known {
			return true
		}
	}
	return false
}

func (s Style) String() string {
	return string(s)
}

// ParseStyle resolves a display name case-insensitively.
func ParseStyle(name string) (Style, error) {
	name = strings.TrimSpace(name)
	for _, s := range styles {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStyle, name)
}

const stickerPromptTemplate = `Create a high-quality die-cut sticker of %s.
Style: %s.
The image should have a thick white border suitable for a sticker.
Isolated on a pure white background.
Vector art style, vibrant colors, clean lines, high resolution.
No text unless explicitly asked.`

// StickerPrompt wraps the user's prompt in the die-cut sticker template.
func StickerPrompt(prompt string, style Style) string {
	return fmt.Sprintf(stickerPromptTemplate, strings.TrimSpace(prompt), style)
}

// Caption is the text stored with a generated sticker, e.g. "Cute sticker of a cat".
func Caption(prompt string, style Style) string {
	return fmt.Sprintf("%s sticker of %s", style, strings.TrimSpace(prompt))
}
