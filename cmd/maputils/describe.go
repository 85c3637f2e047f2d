package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/op2tools/go-opmap/maploader"
)

type describeCmd struct {
	inputPath string
	x         int
	y         int
	verbose   bool
}

func (c *describeCmd) Name() string     { return "describe" }
func (c *describeCmd) Synopsis() string { return "print the description of a single map cell" }
func (c *describeCmd) Usage() string {
	return "maputils describe -i <path> -x <x> -y <y>\n"
}
func (c *describeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input map path")
	f.IntVar(&c.x, "x", 0, "Cell x coordinate")
	f.IntVar(&c.y, "y", 0, "Cell y coordinate")
	f.BoolVar(&c.verbose, "v", false, "Enable decoder tracing")
}

func (c *describeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := maploader.LoadFile(c.inputPath, loaderOptions(c.verbose)...)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	cl, ok := m.GetCell(int32(c.x), int32(c.y))
	if !ok {
		log.Printf("no cell at (%d, %d); map is %dx%d", c.x, c.y, m.Info.Width, m.Info.Height)
		return subcommands.ExitFailure
	}

	fmt.Print(cl.Description())
	if cl.TileInfo != nil {
		fmt.Printf("Tile: %v #%d\n", cl.TileInfo.TilesetName, cl.TileInfo.TileIndex)
	}

	return subcommands.ExitSuccess
}

func loaderOptions(verbose bool) []maploader.Option {
	if !verbose {
		return nil
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return []maploader.Option{maploader.WithLogger(slog.New(handler))}
}
