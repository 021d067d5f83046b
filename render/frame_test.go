package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"fortress-client/messages"
	"fortress-client/models"
	"fortress-client/state"
	"fortress-client/view"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func buildWorld(t *testing.T) *state.Mirror {
	t.Helper()
	m := state.NewMirror()
	if err := m.Apply(messages.Snapshot{Width: 10, Height: 10, Depth: 3, SurfaceZ: 1}); err != nil {
		t.Fatalf("apply snapshot: %v", err)
	}
	grid := make([][]models.Tile, 10)
	for y := range grid {
		grid[y] = make([]models.Tile, 10)
	}
	grid[1][1] = models.Tile{Wall: models.MaterialGranite}
	grid[5][5] = models.Tile{Floor: models.MaterialGrass, Flags: models.FlagHasFloor}
	if err := m.Apply(messages.ZLevel{Z: 1, Tiles: grid}); err != nil {
		t.Fatalf("apply z_level: %v", err)
	}
	return m
}

func cellRune(t *testing.T, s tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	contents, w, _ := s.GetContents()
	cell := contents[y*w+x]
	if len(cell.Runes) == 0 {
		return 0
	}
	return cell.Runes[0]
}

func TestDrawTilesCreaturesAndItems(t *testing.T) {
	s := newSimScreen(t, 10, 10)
	m := buildWorld(t)
	vp := view.New()
	vp.Resize(10, 10)
	vp.SetWorldSize(10, 10)

	err := m.Apply(messages.Delta{
		Creatures: []messages.CreatureUpdate{
			{Creature: models.Creature{ID: "c1", X: 2, Y: 2, Z: 1, Char: "@", Color: "#fff"}},
			{Creature: models.Creature{ID: "c2", X: 4, Y: 4, Z: 0, Char: "g", Color: "#0f0"}},
		},
		Items: []messages.ItemUpdate{
			{Item: models.Item{ID: "i1", X: 2, Y: 2, Z: 1, Char: "*", Color: "#cc0"}},
			{Item: models.Item{ID: "i2", X: 3, Y: 3, Z: 1, Char: "&", Color: "#cc0"}},
		},
	})
	if err != nil {
		t.Fatalf("apply delta: %v", err)
	}

	r := NewRenderer(s)
	r.Draw(m, vp, nil)
	s.Show()

	if got := cellRune(t, s, 1, 1); got != '█' {
		t.Fatalf("wall tile = %q, want █", got)
	}
	if got := cellRune(t, s, 5, 5); got != ',' {
		t.Fatalf("grass floor = %q, want ,", got)
	}
	if got := cellRune(t, s, 2, 2); got != '@' {
		t.Fatalf("creature must draw above its cell, got %q", got)
	}
	if got := cellRune(t, s, 4, 4); got == 'g' {
		t.Fatal("creature on another z-level must not draw")
	}
	if got := cellRune(t, s, 3, 3); got != '&' {
		t.Fatalf("unoccupied item must draw, got %q", got)
	}
}

func TestDrawWithoutGridIsBlank(t *testing.T) {
	s := newSimScreen(t, 10, 10)
	m := state.NewMirror()
	vp := view.New()
	vp.Resize(10, 10)

	r := NewRenderer(s)
	r.Draw(m, vp, nil)
	s.Show()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := cellRune(t, s, x, y); got != ' ' && got != 0 {
				t.Fatalf("cell (%d,%d) = %q, want blank", x, y, got)
			}
		}
	}
}

func TestDrawSkipsCellsOutsideWorld(t *testing.T) {
	s := newSimScreen(t, 10, 10)
	m := buildWorld(t)
	vp := view.New()
	vp.Resize(10, 10)
	vp.SetWorldSize(10, 10)
	// Origin pushed past the world edge: centerOn does not clamp.
	vp.CenterOn(0, 0)

	r := NewRenderer(s)
	r.Draw(m, vp, nil)
	s.Show()
	// The wall at world (1,1) appears shifted by the negative origin.
	ox, oy := vp.Origin()
	if got := cellRune(t, s, 1-ox, 1-oy); got != '█' {
		t.Fatalf("wall not drawn at shifted position, got %q", got)
	}
}

func TestDrawSelectionHighlight(t *testing.T) {
	s := newSimScreen(t, 10, 10)
	m := buildWorld(t)
	vp := view.New()
	vp.Resize(10, 10)
	vp.SetWorldSize(10, 10)

	sel := &Selection{X1: 5, Y1: 5, X2: 6, Y2: 6, Z: 1}
	r := NewRenderer(s)
	r.Draw(m, vp, sel)
	s.Show()

	contents, w, _ := s.GetContents()
	_, bg, _ := contents[5*w+5].Style.Decompose()
	if bg != selectionColor {
		t.Fatalf("selection cell background = %v, want %v", bg, selectionColor)
	}

	// A selection on another z-level draws nothing.
	r.Draw(m, vp, &Selection{X1: 5, Y1: 5, X2: 6, Y2: 6, Z: 0})
	s.Show()
	contents, w, _ = s.GetContents()
	_, bg, _ = contents[5*w+5].Style.Decompose()
	if bg == selectionColor {
		t.Fatal("selection on another z-level must not highlight")
	}
}
