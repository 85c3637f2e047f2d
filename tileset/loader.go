package tileset

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/image/bmp"

	_ "image/jpeg" // registered for image.Decode auto-detection
	_ "image/png"
)

var ErrArchive = errors.New("opmap: tileset archive error")

const imageSuffix = ".bmp"

type config struct {
	Logger *slog.Logger
}

type Option func(*config)

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

// Load opens a zip archive of tile images and decodes every entry into a
// cache keyed by the entry name with the image suffix stripped. Entries
// whose image data cannot be decoded are skipped; a partial cache is
// acceptable. Only failures to open or read the archive itself abort the
// load.
func Load(archivePath string, opts ...Option) (*Cache, error) {
	cfg := config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	archive, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}
	defer archive.Close()

	cache := NewCache()
	for _, entry := range archive.File {
		if entry.FileInfo().IsDir() {
			continue
		}

		data, err := readEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %w", ErrArchive, entry.Name, err)
		}

		img, err := decodeImage(data)
		if err != nil {
			cfg.Logger.Warn("opmap: skipping tileset entry", "name", entry.Name, "err", err)
			continue
		}

		name := strings.TrimSuffix(entry.Name, imageSuffix)
		cache.AddTileset(name, img)
	}

	return cache, nil
}

func readEntry(entry *zip.File) ([]byte, error) {
	f, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// decodeImage tries generic auto-detection first, then forces a BMP read:
// legacy game assets are frequently mis-tagged bitmaps.
func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}
	if img, bmpErr := bmp.Decode(bytes.NewReader(data)); bmpErr == nil {
		return img, nil
	}
	return nil, err
}
