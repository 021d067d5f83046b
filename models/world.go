package models

// Material identifies a wall or floor material on a tile.
// Codes are assigned by the server and are stable across the session.
type Material int

const (
	MaterialAir Material = iota
	MaterialSoil
	MaterialStone
	MaterialGranite
	MaterialWater
	MaterialMagma
	MaterialGrass
	MaterialIronOre
	MaterialCopperOre
	MaterialGoldOre
)

// TileFlag is the per-tile property bitmask. The bit layout is part of the
// wire protocol and must not be reordered.
type TileFlag uint8

const (
	FlagWalkable TileFlag = 1 << iota
	FlagDiggable
	FlagHasFloor
	FlagStairUp
	FlagStairDown
	FlagRamp
	FlagBuilding
	FlagDesignated
)

// Has reports whether all bits in f are set.
func (t TileFlag) Has(f TileFlag) bool {
	return t&f == f
}

// Tile is one cell of the resident z-level grid.
type Tile struct {
	Wall  Material `json:"w"`
	Floor Material `json:"f"`
	Flags TileFlag `json:"fl"`
}

// WorldMeta holds the world dimensions and session-global state. Width,
// Height, Depth and SurfaceZ are set once from the snapshot; CurrentZ and
// Paused change over the session.
type WorldMeta struct {
	Width    int
	Height   int
	Depth    int
	SurfaceZ int
	CurrentZ int
	Paused   bool
}
