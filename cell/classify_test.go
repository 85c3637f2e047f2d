package cell_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/op2tools/go-opmap/cell"
)

func TestClassifyExact(t *testing.T) {
	cases := []struct {
		Name     string
		TypeByte uint8
		SubByte  uint8
		Type     cell.Type
		TileInfo cell.TileInfo
	}{
		{
			Name: "Normal", TypeByte: 0, SubByte: 99,
			Type:     cell.Type{Kind: cell.KindNormal},
			TileInfo: cell.TileInfo{TilesetName: "well0005", TileIndex: 0},
		},
		{
			Name: "DirtRawVariant", TypeByte: 1, SubByte: 7,
			Type:     cell.Type{Kind: cell.KindDirt, Variant: 7},
			TileInfo: cell.TileInfo{TilesetName: "well0002", TileIndex: 1},
		},
		{
			Name: "Lava", TypeByte: 2, SubByte: 2,
			Type:     cell.Type{Kind: cell.KindLava, Variant: 2},
			TileInfo: cell.TileInfo{TilesetName: "well0004", TileIndex: 2},
		},
		{
			Name: "Microbe", TypeByte: 3, SubByte: 4,
			Type:     cell.Type{Kind: cell.KindMicrobe, Variant: 4},
			TileInfo: cell.TileInfo{TilesetName: "well0003", TileIndex: 1},
		},
		{
			Name: "MineActive", TypeByte: 4, SubByte: 0,
			Type:     cell.Type{Kind: cell.KindMine, Variant: 0},
			TileInfo: cell.TileInfo{TilesetName: "well0000", TileIndex: 0},
		},
		{
			Name: "MineDepleted", TypeByte: 4, SubByte: 6,
			Type:     cell.Type{Kind: cell.KindMine, Variant: 1},
			TileInfo: cell.TileInfo{TilesetName: "well0000", TileIndex: 1},
		},
		{
			Name: "Rock", TypeByte: 5, SubByte: 1,
			Type:     cell.Type{Kind: cell.KindRock, Variant: 1},
			TileInfo: cell.TileInfo{TilesetName: "well0001", TileIndex: 1},
		},
		{
			Name: "TubeBitmask", TypeByte: 6, SubByte: 0b1010,
			Type:     cell.Type{Kind: cell.KindTube, Variant: 0b1010},
			TileInfo: cell.TileInfo{TilesetName: "well0012", TileIndex: 2},
		},
		{
			Name: "WallOffsetIndex", TypeByte: 7, SubByte: 0,
			Type:     cell.Type{Kind: cell.KindWall, Variant: 0},
			TileInfo: cell.TileInfo{TilesetName: "well0005", TileIndex: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			typ, tileInfo, err := cell.Classify(tc.TypeByte, tc.SubByte, cell.Exact)
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}
			if diff := cmp.Diff(tc.Type, typ); diff != "" {
				t.Errorf("Type mismatch (-want+got):\n%v", diff)
			}
			if diff := cmp.Diff(tc.TileInfo, tileInfo); diff != "" {
				t.Errorf("TileInfo mismatch (-want+got):\n%v", diff)
			}
		})
	}
}

func TestClassifyExactRejects(t *testing.T) {
	for _, typeByte := range []uint8{8, 9, 100, 255} {
		_, _, err := cell.Classify(typeByte, 0, cell.Exact)
		if !errors.Is(err, cell.ErrCellType) {
			t.Errorf("Classify(%d, 0, Exact) error = %v, want ErrCellType", typeByte, err)
		}
	}
}

func TestClassifyTolerant(t *testing.T) {
	// 250 % 8 = 2 (lava), sub-type clamped modulo 3.
	typ, tileInfo, err := cell.Classify(250, 7, cell.Tolerant)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if want := (cell.Type{Kind: cell.KindLava, Variant: 1}); typ != want {
		t.Errorf("Type = %+v, want %+v", typ, want)
	}
	if want := (cell.TileInfo{TilesetName: "well0004", TileIndex: 1}); tileInfo != want {
		t.Errorf("TileInfo = %+v, want %+v", tileInfo, want)
	}
}

func TestClassifyTolerantTotal(t *testing.T) {
	// Tolerant classification is a pure, total function: no byte pair may
	// fail, and identical input bytes must classify identically.
	for typeByte := 0; typeByte < 256; typeByte++ {
		for _, subByte := range []uint8{0, 1, 2, 3, 7, 128, 255} {
			typ1, info1, err := cell.Classify(uint8(typeByte), subByte, cell.Tolerant)
			if err != nil {
				t.Fatalf("Classify(%d, %d, Tolerant) failed: %v", typeByte, subByte, err)
			}
			typ2, info2, _ := cell.Classify(uint8(typeByte), subByte, cell.Tolerant)
			if typ1 != typ2 || info1 != info2 {
				t.Fatalf("Classify(%d, %d, Tolerant) is not deterministic", typeByte, subByte)
			}
			if typ1.Kind != cell.Kind(typeByte%8) {
				t.Fatalf("Classify(%d, ...) kind = %v, want %v", typeByte, typ1.Kind, cell.Kind(typeByte%8))
			}
		}
	}
}

func TestPlaceholder(t *testing.T) {
	wantKinds := [8]cell.Kind{
		cell.KindRock, cell.KindDirt, cell.KindLava, cell.KindMicrobe,
		cell.KindMine, cell.KindTube, cell.KindWall, cell.KindNormal,
	}
	for x := int32(0); x < 16; x++ {
		for y := int32(0); y < 16; y++ {
			typ, tileInfo := cell.Placeholder(x, y)
			if got, want := typ.Kind, wantKinds[(x+y)%8]; got != want {
				t.Errorf("Placeholder(%d, %d) kind = %v, want %v", x, y, got, want)
			}
			if tileInfo.TilesetName == "" {
				t.Errorf("Placeholder(%d, %d) has empty tileset name", x, y)
			}
		}
	}
}
