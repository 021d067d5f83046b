package models

// Position is a world coordinate in tile units.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Creature mirrors one server-side creature. The id is unique across the
// creature's lifetime; display hints may change on any update.
type Creature struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
	Char  string `json:"char"`
	Color string `json:"color"` // hex color, e.g. "#fff" or "#c84"
}

// Item mirrors one server-side item. Items share the lifecycle of creatures
// but live in their own identity space.
type Item struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
	Char  string `json:"char"`
	Color string `json:"color"`
}
