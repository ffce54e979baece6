package board

import (
	"iter"
	"slices"

	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/pkg/errors"
)

var tileBatches = []int{3, 3, 3, 2, 1}

// TileBatches returns the numbers of polyp tiles laid out on the open sea
// spaces, one per space.
func TileBatches() []int {
	return slices.Clone(tileBatches)
}

// Space is an open sea space keyed by a larva cube color.
type Space struct {
	cubeColor domain.Color
	cube      *domain.LarvaCube
	tiles     []domain.PolypTile
}

func (s *Space) CubeColor() domain.Color {
	return s.cubeColor
}

func (s *Space) Cube() (domain.LarvaCube, bool) {
	if s.cube == nil {
		return domain.LarvaCube{}, false
	}
	return *s.cube, true
}

// PlaceCube puts the cube on the space. The cube must have the space's color
// and the space must be free.
func (s *Space) PlaceCube(cube domain.LarvaCube) error {
	if cube.Color() != s.cubeColor {
		return errors.WithMessagef(domain.ErrCubeMismatch, "%s cube on %s space", cube.Color(), s.cubeColor)
	}
	if s.cube != nil {
		return errors.WithMessagef(domain.ErrCubeMismatch, "%s space is occupied", s.cubeColor)
	}
	s.cube = &cube
	return nil
}

func (s *Space) AddTiles(tiles ...domain.PolypTile) {
	s.tiles = append(s.tiles, tiles...)
}

func (s *Space) Tiles() []domain.PolypTile {
	return s.tiles
}

type OpenSea struct {
	coralTiles []*domain.CoralTile
	spaces     []*Space
}

func NewOpenSea() *OpenSea {
	colors := domain.LarvaCubeKind.Colors()
	spaces := make([]*Space, 0, len(colors))
	for _, c := range colors {
		spaces = append(spaces, &Space{cubeColor: c})
	}
	return &OpenSea{
		coralTiles: domain.CoralTiles(),
		spaces:     spaces,
	}
}

func (o *OpenSea) CoralTiles() []*domain.CoralTile {
	return o.coralTiles
}

func (o *OpenSea) EachSpace() iter.Seq[*Space] {
	return func(yield func(*Space) bool) {
		for _, s := range o.spaces {
			if !yield(s) {
				return
			}
		}
	}
}

func (o *OpenSea) SpaceCount() int {
	return len(o.spaces)
}
