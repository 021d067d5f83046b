package render

import (
	"github.com/gdamore/tcell/v2"

	"fortress-client/models"
	"fortress-client/state"
	"fortress-client/view"
)

var selectionColor = tcell.NewRGBColor(40, 80, 120)

// Selection is an in-progress designation rectangle, drawn as a background
// highlight for gesture feedback. Coordinates are normalized world tiles.
type Selection struct {
	X1, Y1, X2, Y2, Z int
}

func (s Selection) contains(x, y int) bool {
	return x >= s.X1 && x <= s.X2 && y >= s.Y1 && y <= s.Y2
}

// Renderer draws the visible world slice onto a tcell screen once per frame.
// It reads the mirror and viewport and never mutates either.
type Renderer struct {
	screen   tcell.Screen
	defStyle tcell.Style
}

// NewRenderer wraps an initialized screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:   screen,
		defStyle: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
}

// Draw renders one frame: tiles, then creatures, then items. sel may be nil.
// With no resident grid the frame degrades to an empty screen; nothing here
// can fail in a way that halts later frames.
func (r *Renderer) Draw(m *state.Mirror, vp *view.Viewport, sel *Selection) {
	r.screen.Fill(' ', r.defStyle)
	if !m.HasGrid() {
		return
	}

	meta := m.Meta()
	cols, rows := vp.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			wx, wy, ok := vp.ScreenToWorld(col, row)
			if !ok || wx < 0 || wx >= meta.Width || wy < 0 || wy >= meta.Height {
				continue
			}
			tile, ok := m.TileAt(wx, wy)
			if !ok {
				continue
			}
			op := CompositeTile(tile)
			inSel := sel != nil && sel.Z == meta.CurrentZ && sel.contains(wx, wy)

			style := r.defStyle
			if op.HasBg {
				style = style.Background(op.Bg)
			}
			if inSel {
				style = style.Background(selectionColor)
			}
			if op.Rune == 0 {
				// Background-only tile: skip the cell unless a fill applies.
				if op.HasBg || inSel {
					r.screen.SetContent(col, row, ' ', nil, style)
				}
				continue
			}
			r.screen.SetContent(col, row, op.Rune, nil, style.Foreground(op.Fg))
		}
	}

	ox, oy := vp.Origin()

	// Creatures always sit above tiles.
	m.ForEachCreature(func(c models.Creature) {
		if c.Z != meta.CurrentZ || !vp.Contains(c.X, c.Y) {
			return
		}
		style := r.defStyle.Foreground(ParseColor(c.Color))
		r.screen.SetContent(c.X-ox, c.Y-oy, glyphRune(c.Char), nil, style)
	})

	// Items sit beneath creatures: a cell with a creature on it never draws
	// its item. The occupancy check is O(items x creatures); see
	// Mirror.CreatureOccupies.
	m.ForEachItem(func(it models.Item) {
		if it.Z != meta.CurrentZ || !vp.Contains(it.X, it.Y) {
			return
		}
		if m.CreatureOccupies(it.X, it.Y, it.Z) {
			return
		}
		style := r.defStyle.Foreground(ParseColor(it.Color))
		r.screen.SetContent(it.X-ox, it.Y-oy, glyphRune(it.Char), nil, style)
	})
}

func glyphRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}
