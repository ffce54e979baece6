package domain_test

import (
	"testing"

	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewCoralTile(t *testing.T) {
	tile := domain.NewCoralTile(domain.White, domain.Yellow, domain.Green, domain.Blue)
	assert.Equal(t, domain.White, tile.StrongerCoral())
	assert.Equal(t, domain.Yellow, tile.WeakerCoral())
	assert.Equal(t, domain.Green, tile.ShowingAlga())
	assert.Equal(t, domain.Blue, tile.BackgroundAlga())
	assert.False(t, tile.Flipped())
}

func TestCoralTileFlip(t *testing.T) {
	tile := domain.NewCoralTile(domain.White, domain.Yellow, domain.Green, domain.Blue)
	corals := tile.Corals()

	tile.Flip()
	assert.True(t, tile.Flipped())
	assert.Equal(t, domain.Yellow, tile.StrongerCoral())
	assert.Equal(t, domain.White, tile.WeakerCoral())
	assert.Equal(t, domain.Blue, tile.ShowingAlga())
	assert.Equal(t, domain.Green, tile.BackgroundAlga())
	assert.Equal(t, corals, tile.Corals())

	tile.Flip()
	assert.False(t, tile.Flipped())
	assert.Equal(t, domain.White, tile.StrongerCoral())
	assert.Equal(t, domain.Yellow, tile.WeakerCoral())
	assert.Equal(t, domain.Green, tile.ShowingAlga())
	assert.Equal(t, domain.Blue, tile.BackgroundAlga())
	assert.Equal(t, corals, tile.Corals())
}

func TestCoralsSorted(t *testing.T) {
	lhs := domain.NewCoralTile(domain.Yellow, domain.Grey, domain.Red, domain.Blue)
	rhs := domain.NewCoralTile(domain.Grey, domain.Yellow, domain.Blue, domain.Red)
	assert.Equal(t, lhs.Corals(), rhs.Corals())
	assert.Equal(t, [2]domain.Color{domain.Grey, domain.Yellow}, lhs.Corals())
}

func TestCoralTilesUnique(t *testing.T) {
	tiles := domain.CoralTiles()
	assert.Len(t, tiles, 10)
	seen := make(map[[2]domain.Color]bool)
	for _, tile := range tiles {
		seen[tile.Corals()] = true
	}
	assert.Len(t, seen, 10)
}
