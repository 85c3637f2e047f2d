package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"

	"github.com/op2tools/go-opmap/cell"
	"github.com/op2tools/go-opmap/maploader"
)

type infoCmd struct {
	inputPath string
	verbose   bool
}

func (c *infoCmd) Name() string     { return "info" }
func (c *infoCmd) Synopsis() string { return "print map metadata and cell statistics" }
func (c *infoCmd) Usage() string {
	return "maputils info -i <path> [-v]\n"
}
func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input map path")
	f.BoolVar(&c.verbose, "v", false, "Enable decoder tracing")
}

func (c *infoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := maploader.LoadFile(c.inputPath, loaderOptions(c.verbose)...)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Name:        %v\n", m.Info.Name)
	fmt.Printf("Description: %v\n", m.Info.Description)
	if m.Info.Author != "" {
		fmt.Printf("Author:      %v\n", m.Info.Author)
	}
	for _, req := range m.Info.Requirements {
		fmt.Printf("Requires:    %v\n", req)
	}
	fmt.Printf("Size:        %dx%d\n", m.Info.Width, m.Info.Height)

	var counts [cell.KindCount]int
	for y := uint32(0); y < m.Info.Height; y++ {
		for x := uint32(0); x < m.Info.Width; x++ {
			if cl, ok := m.GetCell(int32(x), int32(y)); ok {
				counts[cl.Type.Kind]++
			}
		}
	}

	fmt.Println("Cells:")
	for kind, count := range counts {
		if count > 0 {
			fmt.Printf("  %-8v %d\n", cell.Kind(kind), count)
		}
	}

	return subcommands.ExitSuccess
}
