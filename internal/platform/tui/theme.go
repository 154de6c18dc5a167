package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

// Palette is a theme resolved to runes and screen colors.
type Palette struct {
	glyphs [match3.KindRock + 1]rune
	colors [match3.KindRock + 1]core.Color
	Locked core.Color
	Cursor core.Color
}

// NewPalette resolves a theme. Unknown colors fall back to the terminal
// default and empty glyphs to the kind's letter.
func NewPalette(t config.ThemeConfig) Palette {
	var p Palette
	for k := match3.KindNone; k <= match3.KindRock; k++ {
		style := t.Style(k)
		r, _ := utf8.DecodeRuneInString(style.Glyph)
		if r == utf8.RuneError || style.Glyph == "" {
			r = rune(k.Letter())
		}
		c, _ := core.ParseColor(style.Color)
		p.glyphs[k] = r
		p.colors[k] = c
	}
	p.glyphs[match3.KindNone] = ' '
	p.Locked, _ = core.ParseColor(t.Locked)
	p.Cursor, _ = core.ParseColor(t.Cursor)
	if p.Cursor == core.ColorDefault {
		p.Cursor = core.ColorBrightCyan
	}
	return p
}

// Glyph returns the rune and color used for a kind.
func (p Palette) Glyph(k match3.Kind) (rune, core.Color) {
	if int(k) >= len(p.glyphs) {
		return '?', core.ColorDefault
	}
	return p.glyphs[k], p.colors[k]
}
