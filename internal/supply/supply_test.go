package supply_test

import (
	"testing"

	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/kiryu-dev/reef-encounter/internal/supply"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCubeSupply() *supply.Supply[domain.LarvaCube] {
	cubes := domain.InitialDistribution(domain.LarvaCubeKind, domain.NewLarvaCube)
	return supply.New(domain.LarvaCubeKind, cubes)
}

func TestNewHoldsInitialDistribution(t *testing.T) {
	s := newCubeSupply()
	assert.Equal(t, 50, s.Size())
	for _, c := range domain.LarvaCubeKind.Colors() {
		assert.Equal(t, 10, s.Count(c), "color %s", c)
	}
}

func TestDrawColor(t *testing.T) {
	s := newCubeSupply()
	cube, err := s.DrawColor(domain.Orange)
	require.NoError(t, err)
	assert.Equal(t, domain.Orange, cube.Color())
	assert.Equal(t, 9, s.Count(domain.Orange))
	assert.Equal(t, 49, s.Size())
}

func TestDrawColorEmptyBucket(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.LarvaCube
		replaced []domain.LarvaCube
		color    domain.Color
		size     int
	}{
		{name: "empty supply", items: nil, color: domain.Grey},
		{name: "other colors only", items: []domain.LarvaCube{domain.NewLarvaCube(domain.Pink)}, color: domain.White, size: 1},
		{name: "unknown color", items: []domain.LarvaCube{domain.NewLarvaCube(domain.Pink)}, color: domain.Blue, size: 1},
		{name: "no color", items: nil, color: domain.NoColor},
		{
			name:  "unknown color in initial items",
			items: []domain.LarvaCube{domain.NewLarvaCube(domain.Blue), domain.NewLarvaCube(domain.Grey)},
			color: domain.Blue,
			size:  1,
		},
		{
			name:     "unknown color replaced",
			replaced: []domain.LarvaCube{domain.NewLarvaCube(domain.Red), domain.NewLarvaCube(domain.White)},
			color:    domain.Red,
			size:     1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := supply.New(domain.LarvaCubeKind, tt.items)
			s.Replace(tt.replaced...)
			_, err := s.DrawColor(tt.color)
			require.True(t, errors.Is(err, domain.ErrEmptyBucket), "got %v", err)
			assert.Equal(t, tt.size, s.Size())
			assert.Zero(t, s.Count(tt.color))
		})
	}
}

func TestDrawColorExhaustsBucket(t *testing.T) {
	s := newCubeSupply()
	for range 10 {
		_, err := s.DrawColor(domain.Yellow)
		require.NoError(t, err)
	}
	_, err := s.DrawColor(domain.Yellow)
	require.True(t, errors.Is(err, domain.ErrEmptyBucket))
	assert.Equal(t, 40, s.Size())
}

func TestDrawColors(t *testing.T) {
	s := newCubeSupply()
	colors := domain.LarvaCubeKind.Colors()
	cubes, err := s.DrawColors(colors...)
	require.NoError(t, err)
	require.Len(t, cubes, len(colors))
	for i, c := range colors {
		assert.Equal(t, c, cubes[i].Color())
		assert.Equal(t, 9, s.Count(c))
	}
}

func TestDrawColorsPartialOnFailure(t *testing.T) {
	s := supply.New(domain.LarvaCubeKind, []domain.LarvaCube{domain.NewLarvaCube(domain.Grey)})
	cubes, err := s.DrawColors(domain.Grey, domain.Grey)
	require.True(t, errors.Is(err, domain.ErrEmptyBucket))
	assert.Equal(t, []domain.LarvaCube{domain.NewLarvaCube(domain.Grey)}, cubes)
	assert.Zero(t, s.Size())
}

func TestReplaceRoundTrip(t *testing.T) {
	s := newCubeSupply()
	before := s.Counts()
	colors := []domain.Color{domain.Grey, domain.Grey, domain.Pink}
	for range 3 {
		cubes, err := s.DrawColors(colors...)
		require.NoError(t, err)
		s.Replace(cubes...)
		assert.Equal(t, before, s.Counts())
	}
}
