package messages

import "fortress-client/models"

// MessageType discriminates the wire messages. The server writes it as a
// top-level "type" field alongside the payload fields.
type MessageType string

const (
	// Inbound (server -> client)
	MessageTypeSnapshot   MessageType = "snapshot"
	MessageTypeZLevel     MessageType = "z_level"
	MessageTypeDelta      MessageType = "delta"
	MessageTypePauseState MessageType = "pause_state"

	// Outbound (client -> server)
	MessageTypePause         MessageType = "pause"
	MessageTypeRequestZLevel MessageType = "request_z_level"
	MessageTypeDesignate     MessageType = "designate"
)

// Message is any decoded inbound message.
type Message interface {
	Kind() MessageType
}

// Snapshot establishes world dimensions and fully replaces the creature
// roster. Creatures is nil when the field was absent from the wire, which is
// distinct from an empty list: an empty list clears all known creatures, an
// absent one leaves them untouched.
type Snapshot struct {
	Width     int
	Height    int
	Depth     int
	SurfaceZ  int
	Creatures *[]models.Creature
}

func (Snapshot) Kind() MessageType { return MessageTypeSnapshot }

// ZLevel carries a full tile grid for one z-level, indexed [y][x].
type ZLevel struct {
	Z     int
	Tiles [][]models.Tile
}

func (ZLevel) Kind() MessageType { return MessageTypeZLevel }

// TileUpdate is one changed tile inside a delta.
type TileUpdate struct {
	X     int
	Y     int
	Z     int
	Wall  models.Material
	Floor models.Material
	Flags models.TileFlag
}

// CreatureUpdate is one creature entry inside a delta. Removed entries carry
// only the id; all other entries are full records.
type CreatureUpdate struct {
	Creature models.Creature
	Removed  bool
}

// ItemUpdate is one item entry inside a delta.
type ItemUpdate struct {
	Item    models.Item
	Removed bool
}

// Delta is an incremental update touching a subset of tiles, creatures and
// items. Entries are kept in wire order; later entries for the same id or
// cell win.
type Delta struct {
	Tiles     []TileUpdate
	Creatures []CreatureUpdate
	Items     []ItemUpdate
}

func (Delta) Kind() MessageType { return MessageTypeDelta }

// PauseState reports the authoritative simulation pause flag.
type PauseState struct {
	Paused bool
}

func (PauseState) Kind() MessageType { return MessageTypePauseState }

// Unknown is returned for message types this client does not recognize.
// Applying it is a no-op, which keeps the client forward compatible.
type Unknown struct {
	Type MessageType
}

func (u Unknown) Kind() MessageType { return u.Type }

// PauseCommand requests a pause toggle. The server is authoritative: the
// local pause flag only changes when a pause_state message arrives.
type PauseCommand struct {
	Type MessageType `json:"type"`
}

// NewPauseCommand builds a pause toggle request.
func NewPauseCommand() PauseCommand {
	return PauseCommand{Type: MessageTypePause}
}

// RequestZLevelCommand asks the server for the tile grid of another z-level.
type RequestZLevelCommand struct {
	Type MessageType `json:"type"`
	Z    int         `json:"z"`
}

// NewRequestZLevelCommand builds a z-level request.
func NewRequestZLevelCommand(z int) RequestZLevelCommand {
	return RequestZLevelCommand{Type: MessageTypeRequestZLevel, Z: z}
}

// DesignateCommand marks a rectangular area for an action such as digging.
// Coordinates are normalized so (X1,Y1) is the top-left corner.
type DesignateCommand struct {
	Type        MessageType `json:"type"`
	Designation string      `json:"designation"`
	X1          int         `json:"x1"`
	Y1          int         `json:"y1"`
	X2          int         `json:"x2"`
	Y2          int         `json:"y2"`
	Z           int         `json:"z"`
}

// NewDesignateCommand builds a designation command from two gesture corners,
// normalizing them so x1 <= x2 and y1 <= y2.
func NewDesignateCommand(tag string, start, end models.Position) DesignateCommand {
	x1, x2 := start.X, end.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := start.Y, end.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return DesignateCommand{
		Type:        MessageTypeDesignate,
		Designation: tag,
		X1:          x1,
		Y1:          y1,
		X2:          x2,
		Y2:          y2,
		Z:           start.Z,
	}
}
