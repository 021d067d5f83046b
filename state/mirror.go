package state

import (
	"errors"
	"fmt"

	"fortress-client/messages"
	"fortress-client/models"
)

// Mirror is the client-side copy of the server world: the metadata, the tile
// grid of the currently loaded z-level, and every known creature and item
// across all z-levels. The server is authoritative; the mirror only changes
// through Apply.
//
// The mirror is owned by the event loop goroutine. Messages are applied to
// completion before the next event is processed, so no locking is needed.
type Mirror struct {
	meta      models.WorldMeta
	grid      [][]models.Tile // resident z-level, indexed [y][x]; nil until the first z_level
	creatures map[string]models.Creature
	items     map[string]models.Item
}

// NewMirror creates an empty mirror awaiting its first snapshot.
func NewMirror() *Mirror {
	return &Mirror{
		creatures: make(map[string]models.Creature),
		items:     make(map[string]models.Item),
	}
}

// Apply merges one inbound message into the mirror. Unknown message kinds
// are a no-op. A non-nil error is always recoverable: offending entries are
// skipped and the rest of the message has been applied.
func (m *Mirror) Apply(msg messages.Message) error {
	switch msg := msg.(type) {
	case messages.Snapshot:
		m.applySnapshot(msg)
		return nil
	case messages.ZLevel:
		return m.applyZLevel(msg)
	case messages.Delta:
		return m.applyDelta(msg)
	case messages.PauseState:
		m.meta.Paused = msg.Paused
		return nil
	default:
		return nil
	}
}

// applySnapshot replaces the world dimensions and, when a creature list is
// present, the whole creature roster. Items are never touched by a snapshot;
// the resident tile grid keeps its identity until the next z_level message.
func (m *Mirror) applySnapshot(msg messages.Snapshot) {
	m.meta.Width = msg.Width
	m.meta.Height = msg.Height
	m.meta.Depth = msg.Depth
	m.meta.SurfaceZ = msg.SurfaceZ
	m.meta.CurrentZ = msg.SurfaceZ

	if msg.Creatures != nil {
		m.creatures = make(map[string]models.Creature, len(*msg.Creatures))
		for _, c := range *msg.Creatures {
			m.creatures[c.ID] = c
		}
	}
}

// applyZLevel replaces the resident tile grid wholesale. A grid whose
// dimensions disagree with the known world size is rejected, leaving the
// previous grid in place.
func (m *Mirror) applyZLevel(msg messages.ZLevel) error {
	if m.meta.Width > 0 && m.meta.Height > 0 {
		if len(msg.Tiles) != m.meta.Height {
			return fmt.Errorf("z_level %d: got %d rows, world height is %d",
				msg.Z, len(msg.Tiles), m.meta.Height)
		}
		for y, row := range msg.Tiles {
			if len(row) != m.meta.Width {
				return fmt.Errorf("z_level %d: row %d has %d tiles, world width is %d",
					msg.Z, y, len(row), m.meta.Width)
			}
		}
	}
	m.grid = msg.Tiles
	m.meta.CurrentZ = msg.Z
	return nil
}

// applyDelta merges partial updates in wire order, so later entries for the
// same cell or id win. Tile entries for z-levels other than the resident one
// are dropped, not queued; they become irrelevant the moment that level is
// reloaded in full.
func (m *Mirror) applyDelta(msg messages.Delta) error {
	var errs []error

	for _, t := range msg.Tiles {
		if t.Z != m.meta.CurrentZ || m.grid == nil {
			continue
		}
		if t.Y < 0 || t.Y >= len(m.grid) || t.X < 0 || t.X >= len(m.grid[t.Y]) {
			errs = append(errs, fmt.Errorf("tile update (%d,%d,%d) outside grid", t.X, t.Y, t.Z))
			continue
		}
		m.grid[t.Y][t.X] = models.Tile{Wall: t.Wall, Floor: t.Floor, Flags: t.Flags}
	}

	for _, c := range msg.Creatures {
		if c.Removed {
			delete(m.creatures, c.Creature.ID)
		} else {
			m.creatures[c.Creature.ID] = c.Creature
		}
	}

	for _, it := range msg.Items {
		if it.Removed {
			delete(m.items, it.Item.ID)
		} else {
			m.items[it.Item.ID] = it.Item
		}
	}

	return errors.Join(errs...)
}

// Meta returns the current world metadata.
func (m *Mirror) Meta() models.WorldMeta {
	return m.meta
}

// HasGrid reports whether a tile grid is resident.
func (m *Mirror) HasGrid() bool {
	return m.grid != nil
}

// TileAt returns the tile at (x,y) on the resident z-level.
func (m *Mirror) TileAt(x, y int) (models.Tile, bool) {
	if m.grid == nil || y < 0 || y >= len(m.grid) || x < 0 || x >= len(m.grid[y]) {
		return models.Tile{}, false
	}
	return m.grid[y][x], true
}

// Creature returns a creature by id.
func (m *Mirror) Creature(id string) (models.Creature, bool) {
	c, ok := m.creatures[id]
	return c, ok
}

// Item returns an item by id.
func (m *Mirror) Item(id string) (models.Item, bool) {
	it, ok := m.items[id]
	return it, ok
}

// CreatureCount returns the number of known creatures on all z-levels.
func (m *Mirror) CreatureCount() int {
	return len(m.creatures)
}

// ItemCount returns the number of known items on all z-levels.
func (m *Mirror) ItemCount() int {
	return len(m.items)
}

// ForEachCreature calls fn for every known creature, on all z-levels.
// Iteration order is unspecified.
func (m *Mirror) ForEachCreature(fn func(models.Creature)) {
	for _, c := range m.creatures {
		fn(c)
	}
}

// ForEachItem calls fn for every known item, on all z-levels.
func (m *Mirror) ForEachItem(fn func(models.Item)) {
	for _, it := range m.items {
		fn(it)
	}
}

// CreatureOccupies reports whether any creature stands at the given world
// position. Linear in the number of creatures; callers drawing items run
// this per item, which is O(items x creatures) and fine at colony scale.
// Index by position before growing past that.
func (m *Mirror) CreatureOccupies(x, y, z int) bool {
	for _, c := range m.creatures {
		if c.X == x && c.Y == y && c.Z == z {
			return true
		}
	}
	return false
}
