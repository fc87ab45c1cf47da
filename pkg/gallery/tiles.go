package gallery

import (
	"github.com/matzehuels/notewall/pkg/errors"
)

// MaxPhotos is the upper bound of photos attached to a single post.
const MaxPhotos = 10

// maxTiles is the number of tiles shown in the feed grid.
const maxTiles = 4

// Shape is the aspect of a tile.
type Shape string

const (
	ShapeWide   Shape = "wide"   // 16:9, full width
	ShapeSquare Shape = "square" // 1:1
)

// Tile places one photo in the feed grid.
type Tile struct {
	Photo    int   `json:"photo"` // index into the post's photos
	Shape    Shape `json:"shape"`
	RowSpan  int   `json:"row_span"`
	Overflow int   `json:"overflow,omitempty"` // photos hidden behind this tile
}

// Plan is the grid for one post.
type Plan struct {
	Columns int    `json:"columns"`
	Tiles   []Tile `json:"tiles"`
}

// Hidden returns the number of photos that are not tiled.
func (p Plan) Hidden() int {
	for _, t := range p.Tiles {
		if t.Overflow > 0 {
			return t.Overflow
		}
	}
	return 0
}

// Tiles returns the grid plan for a post with n photos.
// A post without photos (or a negative count) gets an empty plan.
func Tiles(n int) Plan {
	switch {
	case n <= 0:
		return Plan{}
	case n == 1:
		return Plan{Columns: 1, Tiles: []Tile{{Photo: 0, Shape: ShapeWide, RowSpan: 1}}}
	case n == 2:
		return Plan{Columns: 2, Tiles: squares(0, 2)}
	case n == 3:
		tiles := []Tile{{Photo: 0, Shape: ShapeSquare, RowSpan: 2}}
		return Plan{Columns: 2, Tiles: append(tiles, squares(1, 3)...)}
	}

	tiles := squares(0, maxTiles)
	if n > maxTiles {
		tiles[maxTiles-1].Overflow = n - maxTiles
	}
	return Plan{Columns: 2, Tiles: tiles}
}

func squares(from, to int) []Tile {
	tiles := make([]Tile, 0, to-from)
	for i := from; i < to; i++ {
		tiles = append(tiles, Tile{Photo: i, Shape: ShapeSquare, RowSpan: 1})
	}
	return tiles
}

// ValidatePhotoCount rejects posts with no photos or more than MaxPhotos.
func ValidatePhotoCount(n int) error {
	if n < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "select at least one photo")
	}
	if n > MaxPhotos {
		return errors.New(errors.ErrCodeInvalidInput, "at most %d photos per post, got %d", MaxPhotos, n)
	}
	return nil
}
