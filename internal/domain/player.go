package domain

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Stash struct {
	Shrimp []Shrimp
	Tiles  []PolypTile
	Cubes  []LarvaCube
}

// TakeTile removes the tile at index i and hands it to the caller.
func (s *Stash) TakeTile(i int) (PolypTile, error) {
	if i < 0 || i >= len(s.Tiles) {
		return PolypTile{}, errors.Errorf("tile index %d out of range [0, %d)", i, len(s.Tiles))
	}
	tile := s.Tiles[i]
	s.Tiles = append(s.Tiles[:i:i], s.Tiles[i+1:]...)
	return tile, nil
}

func (s *Stash) String() string {
	parts := []string{fmt.Sprintf("%d shrimp", len(s.Shrimp))}
	parts = append(parts, describe(s.Tiles, PolypTileKind, "tile")...)
	parts = append(parts, describe(s.Cubes, LarvaCubeKind, "cube")...)
	return strings.Join(parts, ", ")
}

func describe[T Colored](items []T, kind Kind, noun string) []string {
	counts := CountColors(items)
	var parts []string
	for _, c := range kind.Colors() {
		n := counts[c]
		if n == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s %s", n, c, pluralize(noun, n)))
	}
	return parts
}

func pluralize(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

type Screen struct {
	Behind    *Stash
	InFrontOf *Stash
}

type ParrotFish struct {
	color Color
	eaten []PolypTile
}

func (f *ParrotFish) Color() Color {
	return f.color
}

func (f *ParrotFish) Eat(tile PolypTile) {
	f.eaten = append(f.eaten, tile)
}

func (f *ParrotFish) Eaten() []PolypTile {
	return f.eaten
}

type Player struct {
	color      Color
	parrotFish *ParrotFish
	screen     *Screen
}

func NewPlayer(color Color) (*Player, error) {
	if !PlayerKind.Valid(color) {
		return nil, errors.WithMessagef(ErrInvalidColor, "player color '%s'", color)
	}
	behind := &Stash{Shrimp: make([]Shrimp, 0, PlayerKind.PerColor())}
	for range PlayerKind.PerColor() {
		behind.Shrimp = append(behind.Shrimp, NewShrimp(color))
	}
	return &Player{
		color:      color,
		parrotFish: &ParrotFish{color: color},
		screen: &Screen{
			Behind:    behind,
			InFrontOf: &Stash{},
		},
	}, nil
}

func (p *Player) Color() Color {
	return p.color
}

func (p *Player) ParrotFish() *ParrotFish {
	return p.parrotFish
}

func (p *Player) Screen() *Screen {
	return p.screen
}

func (p *Player) String() string {
	name := p.color.String()
	return strings.ToUpper(name[:1]) + name[1:] + " player"
}

// SupplyReport describes what the player keeps on both sides of the screen.
func (p *Player) SupplyReport() string {
	return fmt.Sprintf("In Front of Screen: %s\nBehind Screen: %s", p.screen.InFrontOf, p.screen.Behind)
}
