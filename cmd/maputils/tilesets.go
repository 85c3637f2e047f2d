package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/op2tools/go-opmap/tileset"
)

type tilesetsCmd struct {
	inputPath string
}

func (c *tilesetsCmd) Name() string     { return "tilesets" }
func (c *tilesetsCmd) Synopsis() string { return "load a tileset archive and list its entries" }
func (c *tilesetsCmd) Usage() string {
	return "maputils tilesets -i <archive.zip>\n"
}
func (c *tilesetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input tileset archive path")
}

func (c *tilesetsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cache, err := tileset.Load(c.inputPath, tileset.WithLogger(logger))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	for _, name := range cache.Names() {
		img, _ := cache.GetTileset(name)
		bounds := img.Bounds()
		fmt.Printf("%-24v %dx%d\n", name, bounds.Dx(), bounds.Dy())
	}
	fmt.Printf("%d tilesets loaded\n", cache.Len())

	return subcommands.ExitSuccess
}
