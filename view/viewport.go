// Package view tracks which slice of the world is visible on screen.
package view

// Viewport holds the visible-region origin and extent in tile units. It owns
// scrolling and screen/world coordinate mapping and knows nothing about tile
// contents; the renderer composes it with the world mirror read-only.
type Viewport struct {
	x, y      int // world tile at the top-left corner of the screen
	tilesWide int
	tilesHigh int
	worldW    int
	worldH    int
}

// New creates a viewport at the world origin. Resize must be called before
// the first render.
func New() *Viewport {
	return &Viewport{}
}

// Resize sets the visible extent from the drawable screen region, in cells.
// One world tile occupies one terminal cell.
func (v *Viewport) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	v.tilesWide = cols
	v.tilesHigh = rows
}

// SetWorldSize records the world bounds used for scroll clamping. Zero means
// unknown and disables clamping.
func (v *Viewport) SetWorldSize(width, height int) {
	v.worldW = width
	v.worldH = height
}

// Size returns the visible extent in tiles.
func (v *Viewport) Size() (int, int) {
	return v.tilesWide, v.tilesHigh
}

// Origin returns the world coordinate of the top-left visible tile.
func (v *Viewport) Origin() (int, int) {
	return v.x, v.y
}

// CenterOn moves the origin so (x,y) sits at the visible center. It does not
// clamp: it runs right after a snapshot, before the caller has necessarily
// settled world bounds, and the next Scroll re-clamps anyway.
func (v *Viewport) CenterOn(x, y int) {
	v.x = x - v.tilesWide/2
	v.y = y - v.tilesHigh/2
}

// Scroll moves the origin by (dx,dy) tiles and clamps it to the world when
// the world size is known. If the visible extent exceeds the world, the
// origin collapses to zero; it never goes negative.
func (v *Viewport) Scroll(dx, dy int) {
	v.x += dx
	v.y += dy
	if v.worldW > 0 {
		v.x = clamp(v.x, 0, v.worldW-v.tilesWide)
	}
	if v.worldH > 0 {
		v.y = clamp(v.y, 0, v.worldH-v.tilesHigh)
	}
}

// ScreenToWorld maps a screen cell to the world tile it shows. ok is false
// when the cell lies outside the visible extent.
func (v *Viewport) ScreenToWorld(col, row int) (x, y int, ok bool) {
	if col < 0 || col >= v.tilesWide || row < 0 || row >= v.tilesHigh {
		return 0, 0, false
	}
	return v.x + col, v.y + row, true
}

// Contains reports whether the world tile (x,y) is inside the visible
// rectangle.
func (v *Viewport) Contains(x, y int) bool {
	return x >= v.x && x < v.x+v.tilesWide && y >= v.y && y < v.y+v.tilesHigh
}

func clamp(val, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
