package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"fortress-client/models"
)

// StatusLine formats the one-line session summary shown under the map.
// cursor is free-form tile-under-cursor text and may be empty.
func StatusLine(meta models.WorldMeta, creatures, items int, connected bool, cursor string) string {
	conn := "online"
	if !connected {
		conn = "reconnecting"
	}
	run := "running"
	if meta.Paused {
		run = "PAUSED"
	}
	s := fmt.Sprintf(" z:%d/%d  %dx%d  dwarves+beasts:%d items:%d  %s  %s",
		meta.CurrentZ, meta.Depth, meta.Width, meta.Height, creatures, items, run, conn)
	if cursor != "" {
		s += "  " + cursor
	}
	return s
}

// DescribeTile summarizes a tile for the status line.
func DescribeTile(x, y int, t models.Tile) string {
	var what string
	switch {
	case t.Flags.Has(models.FlagStairUp | models.FlagStairDown):
		what = "stairs"
	case t.Flags.Has(models.FlagStairUp):
		what = "stair up"
	case t.Flags.Has(models.FlagStairDown):
		what = "stair down"
	case t.Flags.Has(models.FlagRamp):
		what = "ramp"
	case t.Flags.Has(models.FlagBuilding):
		what = "building"
	case t.Wall != models.MaterialAir:
		what = fmt.Sprintf("wall(%d)", t.Wall)
	case t.Flags.Has(models.FlagHasFloor):
		what = fmt.Sprintf("floor(%d)", t.Floor)
	default:
		what = "open air"
	}
	if t.Flags.Has(models.FlagDesignated) {
		what += " [designated]"
	}
	return fmt.Sprintf("(%d,%d) %s", x, y, what)
}

// DrawStatus paints text as an inverted bar across the given screen row,
// truncating or padding to the screen width.
func (r *Renderer) DrawStatus(row, width int, text string) {
	style := tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorBlack)
	text = runewidth.Truncate(text, width, "…")
	text = runewidth.FillRight(text, width)
	col := 0
	for _, ch := range text {
		r.screen.SetContent(col, row, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
