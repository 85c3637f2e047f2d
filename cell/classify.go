package cell

import (
	"errors"
	"fmt"
)

// Policy selects how raw cell bytes map onto the closed variant set.
type Policy uint8

const (
	// Exact rejects type bytes outside [0, KindCount).
	Exact Policy = iota
	// Tolerant reduces any type byte modulo KindCount and clamps sub-type
	// payloads to their per-kind range.
	Tolerant
)

var ErrCellType = errors.New("opmap: invalid cell type byte")

// Flag bits of the fourth cell record byte. Remaining bits are ignored.
const (
	FlagWreckage = 1 << 0
	FlagUnit     = 1 << 1
)

// tileTable drives tile-info derivation for every kind. Both policies use
// the same table; only type classification differs between them.
// Mine tiles are special-cased in TileInfoFor: any non-zero sub-type byte
// selects the depleted tile.
var tileTable = [KindCount]struct {
	tileset  string
	indexMod uint32
	indexAdd uint32
}{
	KindNormal:  {tileset: "well0005", indexMod: 1},
	KindDirt:    {tileset: "well0002", indexMod: 3},
	KindLava:    {tileset: "well0004", indexMod: 3},
	KindMicrobe: {tileset: "well0003", indexMod: 3},
	KindMine:    {tileset: "well0000", indexMod: 2},
	KindRock:    {tileset: "well0001", indexMod: 3},
	KindTube:    {tileset: "well0012", indexMod: 4},
	KindWall:    {tileset: "well0005", indexMod: 3, indexAdd: 1}, // offset past the normal-ground tile
}

// TileInfoFor derives the tile reference for a kind from the raw sub-type
// byte. The derivation is identical for every decoder.
func TileInfoFor(kind Kind, sub uint8) TileInfo {
	entry := tileTable[kind]
	if kind == KindMine {
		index := uint32(0)
		if sub != 0 {
			index = 1
		}
		return TileInfo{TilesetName: entry.tileset, TileIndex: index}
	}
	return TileInfo{TilesetName: entry.tileset, TileIndex: uint32(sub)%entry.indexMod + entry.indexAdd}
}

// Classify maps a raw (type, sub-type) byte pair to a cell type and its
// tile reference. Under Exact, type bytes outside the variant set fail
// with ErrCellType; under Tolerant classification always succeeds.
func Classify(typeByte, subByte uint8, policy Policy) (Type, TileInfo, error) {
	if policy == Exact && typeByte >= KindCount {
		return Type{}, TileInfo{}, fmt.Errorf("%w: %d", ErrCellType, typeByte)
	}

	kind := Kind(typeByte % KindCount)
	variant := subByte
	switch {
	case kind == KindNormal:
		variant = 0
	case kind == KindMine:
		if subByte != 0 {
			variant = 1
		} else {
			variant = 0
		}
	case kind == KindTube:
		variant = subByte
	case policy == Tolerant:
		variant = subByte % 3
	}

	return Type{Kind: kind, Variant: variant}, TileInfoFor(kind, subByte), nil
}

// Placeholder synthesizes a deterministic classification from grid position
// alone. It is used when a map comes through an external library that does
// not expose per-cell terrain data: the result is a visualization fallback,
// not a faithful decode.
func Placeholder(x, y int32) (Type, TileInfo) {
	switch (x + y) % KindCount {
	case 0:
		return Type{Kind: KindRock}, TileInfo{TilesetName: "well0001", TileIndex: 0}
	case 1:
		return Type{Kind: KindDirt, Variant: 1}, TileInfo{TilesetName: "well0002", TileIndex: 1}
	case 2:
		return Type{Kind: KindLava, Variant: 2}, TileInfo{TilesetName: "well0004", TileIndex: 2}
	case 3:
		return Type{Kind: KindMicrobe, Variant: 1}, TileInfo{TilesetName: "well0003", TileIndex: 1}
	case 4:
		return Type{Kind: KindMine}, TileInfo{TilesetName: "well0000", TileIndex: 0}
	case 5:
		return Type{Kind: KindTube}, TileInfo{TilesetName: "well0012", TileIndex: 0}
	case 6:
		return Type{Kind: KindWall}, TileInfo{TilesetName: "well0005", TileIndex: 1}
	default:
		return Type{Kind: KindNormal}, TileInfo{TilesetName: "well0005", TileIndex: 0}
	}
}
