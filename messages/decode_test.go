package messages

import (
	"encoding/json"
	"testing"

	"fortress-client/models"
)

func TestDecodeSnapshot(t *testing.T) {
	data := []byte(`{"type":"snapshot","width":128,"height":128,"depth":64,"surface_z":40,
		"creatures":[{"id":"a","x":1,"y":2,"z":40,"type":"dwarf","name":"Urist","char":"@","color":"#fff"}]}`)
	msg, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	snap, ok := msg.(Snapshot)
	if !ok {
		t.Fatalf("expected Snapshot, got %T", msg)
	}
	if snap.Width != 128 || snap.SurfaceZ != 40 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Creatures == nil || len(*snap.Creatures) != 1 {
		t.Fatal("creature list lost")
	}
	if (*snap.Creatures)[0].Char != "@" {
		t.Fatalf("unexpected creature: %+v", (*snap.Creatures)[0])
	}
}

func TestDecodeSnapshotDistinguishesAbsentAndEmptyCreatures(t *testing.T) {
	absent, err := Decode([]byte(`{"type":"snapshot","width":4,"height":4,"depth":2,"surface_z":1}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if absent.(Snapshot).Creatures != nil {
		t.Fatal("absent creature list must decode as nil")
	}

	empty, err := Decode([]byte(`{"type":"snapshot","width":4,"height":4,"depth":2,"surface_z":1,"creatures":[]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	c := empty.(Snapshot).Creatures
	if c == nil || len(*c) != 0 {
		t.Fatal("empty creature list must decode as present and empty")
	}
}

func TestDecodeSnapshotMissingDimensions(t *testing.T) {
	if _, err := Decode([]byte(`{"type":"snapshot","width":4}`)); err == nil {
		t.Fatal("snapshot without dimensions must be rejected")
	}
}

func TestDecodeZLevel(t *testing.T) {
	data := []byte(`{"type":"z_level","z":40,"tiles":[[{"w":3,"f":0,"fl":0},{"w":0,"f":6,"fl":4}]]}`)
	msg, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	zl := msg.(ZLevel)
	if zl.Z != 40 || len(zl.Tiles) != 1 || len(zl.Tiles[0]) != 2 {
		t.Fatalf("unexpected z_level: %+v", zl)
	}
	if zl.Tiles[0][0].Wall != models.MaterialGranite {
		t.Fatalf("wall material lost: %+v", zl.Tiles[0][0])
	}
	if !zl.Tiles[0][1].Flags.Has(models.FlagHasFloor) {
		t.Fatalf("flags lost: %+v", zl.Tiles[0][1])
	}
}

func TestDecodeDeltaSkipsBadEntriesAndKeepsRest(t *testing.T) {
	data := []byte(`{"type":"delta",
		"tiles":[{"x":1,"y":2,"z":3,"wall":2,"floor":0,"flags":1},{"x":9,"y":9}],
		"creatures":[{"removed":true},{"id":"c1","x":1,"y":1,"z":3,"char":"@","color":"#fff"}],
		"items":[{"id":"i1","removed":true}]}`)
	msg, err := Decode(data)
	if err == nil {
		t.Fatal("expected joined entry errors")
	}
	delta, ok := msg.(Delta)
	if !ok {
		t.Fatalf("expected Delta even with entry errors, got %T", msg)
	}
	if len(delta.Tiles) != 1 || delta.Tiles[0].Wall != models.MaterialStone {
		t.Fatalf("good tile entry lost: %+v", delta.Tiles)
	}
	if len(delta.Creatures) != 1 || delta.Creatures[0].Creature.ID != "c1" {
		t.Fatalf("good creature entry lost: %+v", delta.Creatures)
	}
	if len(delta.Items) != 1 || !delta.Items[0].Removed {
		t.Fatalf("removal entry lost: %+v", delta.Items)
	}
}

func TestDecodeRemovedEntryNeedsOnlyID(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"delta","creatures":[{"id":"c9","removed":true}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	delta := msg.(Delta)
	if len(delta.Creatures) != 1 || !delta.Creatures[0].Removed {
		t.Fatalf("unexpected delta: %+v", delta)
	}
}

func TestDecodePauseState(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"pause_state","paused":true}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !msg.(PauseState).Paused {
		t.Fatal("paused flag lost")
	}
}

func TestDecodeUnknownTypeIsNotAnError(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"weather","rain":true}`))
	if err != nil {
		t.Fatalf("unknown type must not error: %v", err)
	}
	if _, ok := msg.(Unknown); !ok {
		t.Fatalf("expected Unknown, got %T", msg)
	}
}

func TestDecodeGarbageEnvelope(t *testing.T) {
	msg, err := Decode([]byte(`not json`))
	if err == nil || msg != nil {
		t.Fatalf("garbage must fail with nil message, got %T %v", msg, err)
	}
}

func TestDesignateCommandNormalizesCorners(t *testing.T) {
	cmd := NewDesignateCommand("dig",
		models.Position{X: 7, Y: 9, Z: 3},
		models.Position{X: 2, Y: 4, Z: 3})
	if cmd.X1 != 2 || cmd.Y1 != 4 || cmd.X2 != 7 || cmd.Y2 != 9 {
		t.Fatalf("corners not normalized: %+v", cmd)
	}
	data, err := json.Marshal(cmd)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if wire["type"] != "designate" || wire["designation"] != "dig" {
		t.Fatalf("unexpected wire shape: %v", wire)
	}
}

func TestOutboundCommandTypes(t *testing.T) {
	pause, _ := json.Marshal(NewPauseCommand())
	if string(pause) != `{"type":"pause"}` {
		t.Fatalf("unexpected pause command: %s", pause)
	}
	req, _ := json.Marshal(NewRequestZLevelCommand(12))
	if string(req) != `{"type":"request_z_level","z":12}` {
		t.Fatalf("unexpected z-level request: %s", req)
	}
}
