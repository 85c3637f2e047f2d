package cell_test

import (
	"strings"
	"testing"

	"github.com/op2tools/go-opmap/cell"
)

func TestTypeString(t *testing.T) {
	cases := []struct {
		Type cell.Type
		Want string
	}{
		{cell.Type{Kind: cell.KindNormal}, "Normal Ground"},
		{cell.Type{Kind: cell.KindDirt, Variant: 2}, "Dirt Type 2"},
		{cell.Type{Kind: cell.KindMine, Variant: 0}, "Mine (Active)"},
		{cell.Type{Kind: cell.KindMine, Variant: 1}, "Mine (Depleted)"},
		{cell.Type{Kind: cell.KindTube, Variant: 0b101}, "Tube (Connections: 00000101)"},
	}
	for _, tc := range cases {
		if got := tc.Type.String(); got != tc.Want {
			t.Errorf("String() = %q, want %q", got, tc.Want)
		}
	}
}

func TestCellDescription(t *testing.T) {
	c := cell.Cell{
		Position:    cell.Position{X: 3, Y: 5},
		Type:        cell.Type{Kind: cell.KindRock, Variant: 1},
		Height:      42,
		HasWreckage: true,
	}
	desc := c.Description()

	for _, want := range []string{"Position: (3, 5)", "Rock Type 1", "Height: 42", "Contains wreckage"} {
		if !strings.Contains(desc, want) {
			t.Errorf("Description() missing %q:\n%v", want, desc)
		}
	}
	if strings.Contains(desc, "Contains unit") {
		t.Errorf("Description() reports a unit for a cell without one:\n%v", desc)
	}
}
