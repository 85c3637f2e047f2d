package main

import (
	"cmp"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/op2tools/go-opmap/mapdata"
	"github.com/op2tools/go-opmap/maploader"
)

type catalogCmd struct {
	inputDir   string
	outputPath string
	workers    int
}

func (c *catalogCmd) Name() string     { return "catalog" }
func (c *catalogCmd) Synopsis() string { return "scan a directory of map files into a sqlite catalog" }
func (c *catalogCmd) Usage() string {
	return "maputils catalog -d <dir> -o <catalog.sqlite> [-j <workers>]\n"
}
func (c *catalogCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputDir, "d", ".", "Directory to scan for map files")
	f.StringVar(&c.outputPath, "o", "maps.sqlite", "Output catalog path")
	f.IntVar(&c.workers, "j", 4, "Concurrent decode workers")
}

type catalogRecord struct {
	Path string
	Info mapdata.MapInfo
}

func (c *catalogCmd) collectPaths() ([]string, error) {
	paths := make([]string, 0)
	err := filepath.WalkDir(c.inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".map") || strings.HasSuffix(path, ".tmx") {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func (c *catalogCmd) scan(paths []string) []catalogRecord {
	var mu sync.Mutex
	records := make([]catalogRecord, 0, len(paths))

	bar := progressbar.New(len(paths))
	var group errgroup.Group
	group.SetLimit(max(c.workers, 1))

	for _, path := range paths {
		path := path
		group.Go(func() error {
			m, err := maploader.LoadFile(path)
			bar.Add(1)
			if err != nil {
				log.Printf("skipping %v: %v", path, err)
				return nil
			}
			mu.Lock()
			records = append(records, catalogRecord{Path: path, Info: m.Info})
			mu.Unlock()
			return nil
		})
	}

	group.Wait()
	bar.Finish()
	fmt.Println()

	slices.SortFunc(records, func(a, b catalogRecord) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return records
}

func (c *catalogCmd) write(records []catalogRecord) error {
	db, err := sql.Open("sqlite3", c.outputPath)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE maps (
			path TEXT,
			name TEXT,
			width INTEGER,
			height INTEGER,
			author TEXT,
			description TEXT
		);
	`)
	if err != nil {
		return err
	}

	stmt, err := db.Prepare("INSERT INTO maps (path, name, width, height, author, description) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(r.Path, r.Info.Name, r.Info.Width, r.Info.Height, r.Info.Author, r.Info.Description)
		if err != nil {
			return err
		}
	}

	_, err = db.Exec("CREATE UNIQUE INDEX map_index ON maps (path)")
	return err
}

func (c *catalogCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	paths, err := c.collectPaths()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if len(paths) == 0 {
		log.Printf("no map files found under %v", c.inputDir)
		return subcommands.ExitFailure
	}

	records := c.scan(paths)

	if err := c.write(records); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("cataloged %d of %d maps into %v\n", len(records), len(paths), c.outputPath)
	return subcommands.ExitSuccess
}
