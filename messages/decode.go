package messages

import (
	"encoding/json"
	"errors"
	"fmt"

	"fortress-client/models"
)

// ErrMissingField marks a record rejected because a required field was
// absent. One bad record never fails the whole message: Decode skips it and
// reports it in the joined error.
var ErrMissingField = errors.New("missing required field")

// envelope is the minimal shape needed to dispatch on the message type.
type envelope struct {
	Type MessageType `json:"type"`
}

// Decode parses one inbound wire message. For delta messages malformed
// entries are dropped and reported through the returned error while the rest
// of the message decodes normally, so the returned Message is usable even
// when the error is non-nil. A nil Message means the envelope itself was
// unreadable.
func Decode(data []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	switch env.Type {
	case MessageTypeSnapshot:
		return decodeSnapshot(data)
	case MessageTypeZLevel:
		return decodeZLevel(data)
	case MessageTypeDelta:
		return decodeDelta(data)
	case MessageTypePauseState:
		return decodePauseState(data)
	default:
		return Unknown{Type: env.Type}, nil
	}
}

func decodeSnapshot(data []byte) (Message, error) {
	var wire struct {
		Width     *int               `json:"width"`
		Height    *int               `json:"height"`
		Depth     *int               `json:"depth"`
		SurfaceZ  *int               `json:"surface_z"`
		Creatures *[]models.Creature `json:"creatures"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if wire.Width == nil || wire.Height == nil || wire.Depth == nil || wire.SurfaceZ == nil {
		return nil, fmt.Errorf("snapshot: %w", ErrMissingField)
	}
	return Snapshot{
		Width:     *wire.Width,
		Height:    *wire.Height,
		Depth:     *wire.Depth,
		SurfaceZ:  *wire.SurfaceZ,
		Creatures: wire.Creatures,
	}, nil
}

func decodeZLevel(data []byte) (Message, error) {
	var wire struct {
		Z     *int            `json:"z"`
		Tiles [][]models.Tile `json:"tiles"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode z_level: %w", err)
	}
	if wire.Z == nil || wire.Tiles == nil {
		return nil, fmt.Errorf("z_level: %w", ErrMissingField)
	}
	return ZLevel{Z: *wire.Z, Tiles: wire.Tiles}, nil
}

func decodeDelta(data []byte) (Message, error) {
	var wire struct {
		Tiles     []json.RawMessage `json:"tiles"`
		Creatures []json.RawMessage `json:"creatures"`
		Items     []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode delta: %w", err)
	}

	var delta Delta
	var errs []error

	for i, raw := range wire.Tiles {
		update, err := decodeTileUpdate(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("delta tiles[%d]: %w", i, err))
			continue
		}
		delta.Tiles = append(delta.Tiles, update)
	}
	for i, raw := range wire.Creatures {
		update, err := decodeCreatureUpdate(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("delta creatures[%d]: %w", i, err))
			continue
		}
		delta.Creatures = append(delta.Creatures, update)
	}
	for i, raw := range wire.Items {
		update, err := decodeItemUpdate(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("delta items[%d]: %w", i, err))
			continue
		}
		delta.Items = append(delta.Items, update)
	}

	return delta, errors.Join(errs...)
}

func decodeTileUpdate(raw json.RawMessage) (TileUpdate, error) {
	var wire struct {
		X     *int `json:"x"`
		Y     *int `json:"y"`
		Z     *int `json:"z"`
		Wall  *int `json:"wall"`
		Floor *int `json:"floor"`
		Flags *int `json:"flags"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return TileUpdate{}, err
	}
	if wire.X == nil || wire.Y == nil || wire.Z == nil ||
		wire.Wall == nil || wire.Floor == nil || wire.Flags == nil {
		return TileUpdate{}, ErrMissingField
	}
	return TileUpdate{
		X:     *wire.X,
		Y:     *wire.Y,
		Z:     *wire.Z,
		Wall:  models.Material(*wire.Wall),
		Floor: models.Material(*wire.Floor),
		Flags: models.TileFlag(*wire.Flags),
	}, nil
}

func decodeCreatureUpdate(raw json.RawMessage) (CreatureUpdate, error) {
	var wire struct {
		ID      string `json:"id"`
		Removed bool   `json:"removed"`
		X       *int   `json:"x"`
		Y       *int   `json:"y"`
		Z       *int   `json:"z"`
		Type    string `json:"type"`
		Name    string `json:"name"`
		Char    string `json:"char"`
		Color   string `json:"color"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return CreatureUpdate{}, err
	}
	if wire.ID == "" {
		return CreatureUpdate{}, fmt.Errorf("id: %w", ErrMissingField)
	}
	if wire.Removed {
		return CreatureUpdate{Creature: models.Creature{ID: wire.ID}, Removed: true}, nil
	}
	if wire.X == nil || wire.Y == nil || wire.Z == nil {
		return CreatureUpdate{}, fmt.Errorf("position: %w", ErrMissingField)
	}
	return CreatureUpdate{
		Creature: models.Creature{
			ID:    wire.ID,
			Name:  wire.Name,
			Type:  wire.Type,
			X:     *wire.X,
			Y:     *wire.Y,
			Z:     *wire.Z,
			Char:  wire.Char,
			Color: wire.Color,
		},
	}, nil
}

func decodeItemUpdate(raw json.RawMessage) (ItemUpdate, error) {
	var wire struct {
		ID      string `json:"id"`
		Removed bool   `json:"removed"`
		X       *int   `json:"x"`
		Y       *int   `json:"y"`
		Z       *int   `json:"z"`
		Type    string `json:"type"`
		Char    string `json:"char"`
		Color   string `json:"color"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return ItemUpdate{}, err
	}
	if wire.ID == "" {
		return ItemUpdate{}, fmt.Errorf("id: %w", ErrMissingField)
	}
	if wire.Removed {
		return ItemUpdate{Item: models.Item{ID: wire.ID}, Removed: true}, nil
	}
	if wire.X == nil || wire.Y == nil || wire.Z == nil {
		return ItemUpdate{}, fmt.Errorf("position: %w", ErrMissingField)
	}
	return ItemUpdate{
		Item: models.Item{
			ID:    wire.ID,
			Type:  wire.Type,
			X:     *wire.X,
			Y:     *wire.Y,
			Z:     *wire.Z,
			Char:  wire.Char,
			Color: wire.Color,
		},
	}, nil
}

func decodePauseState(data []byte) (Message, error) {
	var wire struct {
		Paused *bool `json:"paused"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode pause_state: %w", err)
	}
	if wire.Paused == nil {
		return nil, fmt.Errorf("pause_state: %w", ErrMissingField)
	}
	return PauseState{Paused: *wire.Paused}, nil
}
