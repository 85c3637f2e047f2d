// Package cell provides the map cell model shared by all map format decoders.
package cell

import (
	"fmt"
	"strings"
)

// Position is a grid coordinate of a cell.
type Position struct {
	X int32
	Y int32
}

// Kind enumerates the terrain variants a cell can hold.
type Kind uint8

const (
	KindNormal Kind = iota
	KindDirt
	KindLava
	KindMicrobe
	KindMine
	KindRock
	KindTube
	KindWall

	KindCount = 8
)

var kindNames = [KindCount]string{
	"Normal", "Dirt", "Lava", "Microbe", "Mine", "Rock", "Tube", "Wall",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Type is a terrain classification together with its sub-type payload.
// For KindMine the variant is normalized to 0 (active) or 1 (depleted),
// for KindTube it is a connection bitmask, and for the remaining kinds it
// is the sub-type byte, raw or modulo-reduced depending on the decoding
// policy that produced it.
type Type struct {
	Kind    Kind
	Variant uint8
}

// Depleted reports whether a mine cell has been exhausted.
// It is false for every non-mine kind.
func (t Type) Depleted() bool {
	return t.Kind == KindMine && t.Variant != 0
}

func (t Type) String() string {
	switch t.Kind {
	case KindNormal:
		return "Normal Ground"
	case KindDirt:
		return fmt.Sprintf("Dirt Type %d", t.Variant)
	case KindLava:
		return fmt.Sprintf("Lava Type %d", t.Variant)
	case KindMicrobe:
		return fmt.Sprintf("Microbe Growth Stage %d", t.Variant)
	case KindMine:
		if t.Depleted() {
			return "Mine (Depleted)"
		}
		return "Mine (Active)"
	case KindRock:
		return fmt.Sprintf("Rock Type %d", t.Variant)
	case KindTube:
		return fmt.Sprintf("Tube (Connections: %08b)", t.Variant)
	case KindWall:
		return fmt.Sprintf("Wall Type %d", t.Variant)
	}
	return fmt.Sprintf("Unknown (%d)", uint8(t.Kind))
}

// TileInfo references a tile image inside a named tileset.
type TileInfo struct {
	TilesetName string
	TileIndex   uint32
}

// Cell is a single grid unit of a map. Cells are owned by the map grid
// that contains them; decoders fill them in during decode and every other
// holder treats them as read-only.
type Cell struct {
	Position    Position
	Type        Type
	Height      uint8
	HasWreckage bool
	HasUnit     bool
	TileInfo    *TileInfo
}

// Description returns a multi-line human-readable summary of the cell.
func (c *Cell) Description() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Position: (%d, %d)\n", c.Position.X, c.Position.Y)
	fmt.Fprintf(&b, "Type: %v\n", c.Type)
	fmt.Fprintf(&b, "Height: %d\n", c.Height)
	if c.HasWreckage {
		b.WriteString("Contains wreckage\n")
	}
	if c.HasUnit {
		b.WriteString("Contains unit\n")
	}
	return b.String()
}
