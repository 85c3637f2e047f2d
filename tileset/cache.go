// Package tileset loads tile image archives into a shared name-keyed cache.
package tileset

import (
	"image"
	"slices"
)

// Cache maps tileset names to their decoded images. It is filled while an
// archive is loaded and must be treated as immutable afterwards; any number
// of holders share it by pointer.
type Cache struct {
	tilesets map[string]image.Image
}

func NewCache() *Cache {
	return &Cache{tilesets: make(map[string]image.Image)}
}

// AddTileset inserts an image under the given name, replacing any earlier
// entry with the same name.
func (c *Cache) AddTileset(name string, img image.Image) {
	c.tilesets[name] = img
}

// GetTileset returns the image stored under name.
func (c *Cache) GetTileset(name string) (image.Image, bool) {
	img, ok := c.tilesets[name]
	return img, ok
}

func (c *Cache) Len() int {
	return len(c.tilesets)
}

// Names returns the cached tileset names in sorted order.
func (c *Cache) Names() []string {
	names := make([]string, 0, len(c.tilesets))
	for name := range c.tilesets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
