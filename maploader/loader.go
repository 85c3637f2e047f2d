// Package maploader picks a format decoder for a map file and runs it.
package maploader

import (
	"io"
	"log/slog"
	"os"

	"github.com/op2tools/go-opmap/form2"
	"github.com/op2tools/go-opmap/mapdata"
	"github.com/op2tools/go-opmap/sample"
	"github.com/op2tools/go-opmap/tmx"
)

type config struct {
	Logger *slog.Logger
}

type Option func(*config)

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

// LoadFile decodes the map at filePath. Streams starting with the FORM2
// magic go to the strict decoder; everything else is tried as the legacy
// sample layout and, when that fails, handed to the external TMX decoder.
// When both fallback decoders fail, the TMX error is the one returned: the
// external library is the more standards-compliant implementation, so its
// verdict is authoritative. The legacy error is still logged.
func LoadFile(filePath string, opts ...Option) (*mapdata.Map, error) {
	cfg := config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.Logger

	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var header [8]byte
	if _, err := io.ReadFull(file, header[:]); err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if string(header[0:5]) == form2.Magic {
		logger.Debug("opmap: detected FORM2 format", "path", filePath)
		return form2.Decode(file, form2.WithLogger(logger))
	}

	logger.Debug("opmap: trying sample format", "path", filePath, "header", header[:])
	m, sampleErr := sample.Decode(file, sample.WithLogger(logger))
	if sampleErr == nil {
		return m, nil
	}
	logger.Debug("opmap: sample format failed", "path", filePath, "err", sampleErr)

	m, tmxErr := tmx.DecodeFile(filePath, tmx.WithLogger(logger))
	if tmxErr == nil {
		return m, nil
	}
	logger.Debug("opmap: external decoder failed", "path", filePath, "err", tmxErr)
	return nil, tmxErr
}
