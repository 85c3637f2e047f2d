// Package tmx adapts Tiled TMX maps through the go-tiled library.
//
// The library owns parsing and validation but does not expose per-cell
// terrain semantics that fit this model, so cells are classified by a
// deterministic position pattern. The resulting grid is a visualization
// fallback; callers must not treat its cell contents as authoritative.
package tmx

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/op2tools/go-opmap/cell"
	"github.com/op2tools/go-opmap/mapdata"
)

type config struct {
	Logger *slog.Logger
}

type Option func(*config)

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

// DecodeFile parses the map at path with go-tiled and converts the result
// into the opmap model. The map name is derived from the file stem.
func DecodeFile(path string, opts ...Option) (*mapdata.Map, error) {
	cfg := config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	tiledMap, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mapdata.ErrExternal, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name == "" {
		name = "Unnamed Map"
	}

	width := uint32(tiledMap.Width)
	height := uint32(tiledMap.Height)
	cfg.Logger.Debug("opmap: tmx map", "name", name, "width", width, "height", height)

	m := mapdata.New(mapdata.MapInfo{
		Width:       width,
		Height:      height,
		Name:        name,
		Description: fmt.Sprintf("Map size: %dx%d", width, height),
	})

	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			typ, tileInfo := cell.Placeholder(int32(x), int32(y))
			m.SetCell(int32(x), int32(y), cell.Cell{
				Position: cell.Position{X: int32(x), Y: int32(y)},
				Type:     typ,
				TileInfo: &tileInfo,
			})
		}
	}

	return m, nil
}
