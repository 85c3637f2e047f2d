// Package form2 decodes the canonical versioned FORM2 map format.
//
// The format is strict: the magic and version are validated, cell type
// bytes outside the variant set reject the whole stream, and short reads
// fail immediately. No partial map is ever returned.
package form2

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/op2tools/go-opmap/cell"
	"github.com/op2tools/go-opmap/mapdata"
)

// Magic identifies a FORM2 stream. The byte after it is reserved.
const Magic = "FORM2"

// Version is the only supported format revision.
const Version = 1

type config struct {
	Logger *slog.Logger
}

type Option func(*config)

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

// Decode reads a complete FORM2 map from the stream, which must be
// positioned at the start of the header.
func Decode(r io.Reader, opts ...Option) (*mapdata.Map, error) {
	cfg := config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}
	if string(header[0:5]) != Magic {
		return nil, fmt.Errorf("%w: missing %v magic", mapdata.ErrInvalidFormat, Magic)
	}
	version := binary.LittleEndian.Uint16(header[6:8])
	if version != Version {
		return nil, fmt.Errorf("%w: %d", mapdata.ErrUnsupportedVersion, version)
	}

	var dim [8]byte
	if _, err := io.ReadFull(r, dim[:]); err != nil {
		return nil, err
	}
	info := mapdata.MapInfo{
		Width:  binary.LittleEndian.Uint32(dim[0:4]),
		Height: binary.LittleEndian.Uint32(dim[4:8]),
	}

	name, err := readString8(r)
	if err != nil {
		return nil, err
	}
	info.Name = name

	desc, err := readString16(r)
	if err != nil {
		return nil, err
	}
	info.Description = desc

	cfg.Logger.Debug("opmap: form2 header",
		"version", version, "width", info.Width, "height", info.Height, "name", info.Name)

	m := mapdata.New(info)
	var record [4]byte
	for y := uint32(0); y < info.Height; y++ {
		for x := uint32(0); x < info.Width; x++ {
			if _, err := io.ReadFull(r, record[:]); err != nil {
				cfg.Logger.Debug("opmap: form2 short cell read", "x", x, "y", y, "err", err)
				return nil, err
			}

			typ, tileInfo, err := cell.Classify(record[0], record[1], cell.Exact)
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d, %d): %v", mapdata.ErrInvalidFormat, x, y, err)
			}

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

func readString8(r io.Reader) (string, error) {
	var length [1]byte
	if _, err := io.ReadFull(r, length[:]); err != nil {
		return "", err
	}
	return readString(r, int(length[0]))
}

func readString16(r io.Reader) (string, error) {
	var length [2]byte
	if _, err := io.ReadFull(r, length[:]); err != nil {
		return "", err
	}
	return readString(r, int(binary.LittleEndian.Uint16(length[:])))
}

func readString(r io.Reader, n int) (string, error) {
	buffer := make([]byte, n)
	if _, err := io.ReadFull(r, buffer); err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(buffer), "�"), nil
}
