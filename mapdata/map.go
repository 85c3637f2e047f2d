// Package mapdata holds the decoded map model shared by all format decoders.
package mapdata

import (
	"errors"

	"github.com/op2tools/go-opmap/cell"
	"github.com/op2tools/go-opmap/tileset"
)

// Decode errors shared by the format decoders. Decoders wrap these with
// detail; callers match with errors.Is.
var (
	ErrInvalidFormat      = errors.New("opmap: invalid map format")
	ErrUnsupportedVersion = errors.New("opmap: unsupported map version")
	ErrExternal           = errors.New("opmap: external map library error")
)

// MapInfo is map metadata and dimensions.
type MapInfo struct {
	Width        uint32
	Height       uint32
	Name         string
	Description  string
	Author       string
	Requirements []string
}

// Map is a fully decoded map: metadata plus a dense cell grid indexed
// [y][x]. A map is mutated only by the decoder building it; thereafter it
// is read-only for every holder.
type Map struct {
	Info MapInfo

	cells    [][]cell.Cell
	tilesets *tileset.Cache
}

// New allocates a map of the dimensions declared in info, with every cell
// initialized to normal ground at height zero and its position filled in.
func New(info MapInfo) *Map {
	cells := make([][]cell.Cell, info.Height)
	for y := range cells {
		row := make([]cell.Cell, info.Width)
		for x := range row {
			row[x] = cell.Cell{Position: cell.Position{X: int32(x), Y: int32(y)}}
		}
		cells[y] = row
	}
	return &Map{Info: info, cells: cells}
}

// GetCell returns the cell at (x, y), or false when the coordinate lies
// outside the grid. The returned cell belongs to the map and must not be
// modified by callers.
func (m *Map) GetCell(x, y int32) (*cell.Cell, bool) {
	if x < 0 || y < 0 || uint32(x) >= m.Info.Width || uint32(y) >= m.Info.Height {
		return nil, false
	}
	return &m.cells[y][x], true
}

// SetCell overwrites the cell at (x, y). Coordinates outside the grid are
// ignored.
func (m *Map) SetCell(x, y int32, c cell.Cell) {
	if x < 0 || y < 0 || uint32(x) >= m.Info.Width || uint32(y) >= m.Info.Height {
		return
	}
	m.cells[y][x] = c
}

// SetTilesetCache attaches or replaces the shared tileset cache.
func (m *Map) SetTilesetCache(c *tileset.Cache) {
	m.tilesets = c
}

// TilesetCache returns the attached cache, or nil when none is attached.
func (m *Map) TilesetCache() *tileset.Cache {
	return m.tilesets
}
