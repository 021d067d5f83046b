package render

import (
	"github.com/gdamore/tcell/v2"

	"fortress-client/models"
)

// Structure glyphs drawn ahead of any material.
const (
	runeStairBoth = 'X'
	runeStairUp   = '<'
	runeStairDown = '>'
	runeRamp      = '▲'
	runeBuilding  = '■'
)

var (
	neutralColor   = tcell.NewRGBColor(200, 200, 200)
	buildingColor  = tcell.NewRGBColor(222, 184, 135)
	highlightColor = tcell.NewRGBColor(90, 90, 20)
)

// DrawOp is the draw instruction for one tile: a glyph, its foreground, and
// an optional background fill. Rune 0 means nothing to draw in the
// foreground. HasBg false lets the renderer skip the fill entirely, which is
// the common case.
type DrawOp struct {
	Rune  rune
	Fg    tcell.Color
	Bg    tcell.Color
	HasBg bool
}

// CompositeTile maps a tile's materials and flags to its draw instruction.
// Structure flags take precedence over materials; the first matching rule
// wins. The designated highlight is a background overlay, independent of
// whichever foreground rule matched.
func CompositeTile(t models.Tile) DrawOp {
	var op DrawOp

	switch {
	case t.Flags.Has(models.FlagStairUp | models.FlagStairDown):
		op.Rune, op.Fg = runeStairBoth, neutralColor
	case t.Flags.Has(models.FlagStairUp):
		op.Rune, op.Fg = runeStairUp, neutralColor
	case t.Flags.Has(models.FlagStairDown):
		op.Rune, op.Fg = runeStairDown, neutralColor
	case t.Flags.Has(models.FlagRamp):
		op.Rune, op.Fg = runeRamp, neutralColor
	case t.Flags.Has(models.FlagBuilding):
		op.Rune, op.Fg = runeBuilding, buildingColor
	case t.Wall != models.MaterialAir:
		a := WallAppearance(t.Wall)
		op.Rune, op.Fg = a.Rune, a.Color
	case t.Flags.Has(models.FlagHasFloor):
		a := FloorAppearance(t.Floor)
		op.Rune, op.Fg = a.Rune, a.Color
	}

	if t.Flags.Has(models.FlagDesignated) {
		op.Bg = highlightColor
		op.HasBg = true
	}
	return op
}
