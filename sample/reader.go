// Package sample decodes the legacy map layout that predates the FORM2
// header.
//
// The format carries no reliable magic, so dimensions are the only field
// that can be sanity-checked. Cell classification is tolerant: any type
// byte is reduced modulo the variant count instead of rejecting the stream.
package sample

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/op2tools/go-opmap/cell"
	"github.com/op2tools/go-opmap/mapdata"
)

// MaxDimension bounds width and height. The legacy format has no other
// integrity checks.
const MaxDimension = 1024

// cellDataOffset is where cell records start. Bytes between the dimension
// block and this offset are padding.
const cellDataOffset = 32

type config struct {
	Logger *slog.Logger
}

type Option func(*config)

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

// Decode reads a complete legacy map from the stream, which must be
// positioned at its start. The first 8 bytes are treated as an opaque
// magic/version block and are not validated.
func Decode(r io.ReadSeeker, opts ...Option) (*mapdata.Map, error) {
	cfg := config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}

	var dim [8]byte
	if _, err := io.ReadFull(r, dim[:]); err != nil {
		return nil, err
	}
	width := binary.LittleEndian.Uint32(dim[0:4])
	height := binary.LittleEndian.Uint32(dim[4:8])
	if width == 0 || height == 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: invalid map dimensions: %dx%d", mapdata.ErrInvalidFormat, width, height)
	}

	cfg.Logger.Debug("opmap: sample header", "width", width, "height", height)

	m := mapdata.New(mapdata.MapInfo{
		Width:       width,
		Height:      height,
		Name:        "Sample Map",
		Description: fmt.Sprintf("Map size: %dx%d", width, height),
	})

	if _, err := r.Seek(cellDataOffset, io.SeekStart); err != nil {
		return nil, err
	}

	var record [4]byte
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			if _, err := io.ReadFull(r, record[:]); err != nil {
				cfg.Logger.Debug("opmap: sample short cell read", "x", x, "y", y, "err", err)
				return nil, err
			}

			typ, tileInfo, _ := cell.Classify(record[0], record[1], cell.Tolerant)

			m.SetCell(int32(x), int32(y), cell.Cell{
				Position:    cell.Position{X: int32(x), Y: int32(y)},
				Type:        typ,
				Height:      record[2],
				HasWreckage: record[3]&cell.FlagWreckage != 0,
				HasUnit:     record[3]&cell.FlagUnit != 0,
				TileInfo:    &tileInfo,
			})
		}
	}

	return m, nil
}
