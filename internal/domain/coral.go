package domain

import (
	"slices"
)

// CoralTile is a double-sided tile. The constructor takes the starfish side:
// the first coral is the stronger one and the first alga is showing.
type CoralTile struct {
	firstCoral  Color
	secondCoral Color
	firstAlga   Color
	secondAlga  Color
	flipped     bool
}

func NewCoralTile(firstCoral, secondCoral, firstAlga, secondAlga Color) *CoralTile {
	return &CoralTile{
		firstCoral:  firstCoral,
		secondCoral: secondCoral,
		firstAlga:   firstAlga,
		secondAlga:  secondAlga,
	}
}

// CoralTiles returns the ten coral tiles of the game, starfish side up.
func CoralTiles() []*CoralTile {
	defs := [10][4]Color{
		{White, Yellow, Green, Blue},
		{White, Orange, Red, Purple},
		{Pink, White, Pink, Green},
		{Pink, Grey, Green, Pink},
		{Grey, White, Red, Purple},
		{Grey, Yellow, Blue, Red},
		{Yellow, Orange, Blue, Red},
		{Yellow, Pink, Pink, Blue},
		{Orange, Grey, Blue, Green},
		{Orange, Pink, Green, Red},
	}
	tiles := make([]*CoralTile, 0, len(defs))
	for _, d := range defs {
		tiles = append(tiles, NewCoralTile(d[0], d[1], d[2], d[3]))
	}
	return tiles
}

// Corals returns both corals of the tile sorted, so it does not depend on
// orientation.
func (t *CoralTile) Corals() [2]Color {
	corals := [2]Color{t.firstCoral, t.secondCoral}
	slices.Sort(corals[:])
	return corals
}

func (t *CoralTile) Flip() {
	t.flipped = !t.flipped
}

func (t *CoralTile) Flipped() bool {
	return t.flipped
}

func (t *CoralTile) StrongerCoral() Color {
	if t.flipped {
		return t.secondCoral
	}
	return t.firstCoral
}

func (t *CoralTile) WeakerCoral() Color {
	if t.flipped {
		return t.firstCoral
	}
	return t.secondCoral
}

func (t *CoralTile) ShowingAlga() Color {
	if t.flipped {
		return t.secondAlga
	}
	return t.firstAlga
}

func (t *CoralTile) BackgroundAlga() Color {
	if t.flipped {
		return t.firstAlga
	}
	return t.secondAlga
}
