package domain

import (
	"slices"
)

type Color byte

const (
	NoColor = Color(iota)
	Grey
	Orange
	Pink
	White
	Yellow
	Green
	Purple
	Red
	Blue
)

var colorNames = map[Color]string{
	NoColor: "none",
	Grey:    "grey",
	Orange:  "orange",
	Pink:    "pink",
	White:   "white",
	Yellow:  "yellow",
	Green:   "green",
	Purple:  "purple",
	Red:     "red",
	Blue:    "blue",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// Colored is implemented by every item that is drawn or bucketed by color.
type Colored interface {
	Color() Color
}

type Kind byte

const (
	PolypTileKind = Kind(iota)
	LarvaCubeKind
	AlgaCylinderKind
	PlayerKind
	StartingSpaceKind
)

// Recipe describes the valid colors of a resource kind and how many items of
// each color the initial distribution holds.
type Recipe struct {
	Colors   []Color
	PerColor int
}

var recipes = map[Kind]Recipe{
	PolypTileKind:     {Colors: []Color{Grey, Orange, Pink, White, Yellow}, PerColor: 40},
	LarvaCubeKind:     {Colors: []Color{Grey, Orange, Pink, White, Yellow}, PerColor: 10},
	AlgaCylinderKind:  {Colors: []Color{Blue, Green, Purple, Red}},
	PlayerKind:        {Colors: []Color{Green, Purple, Red, Yellow}, PerColor: 4},
	StartingSpaceKind: {Colors: []Color{Grey, Orange, Pink, White, Yellow}, PerColor: 1},
}

var kindNames = map[Kind]string{
	PolypTileKind:     "polyp tile",
	LarvaCubeKind:     "larva cube",
	AlgaCylinderKind:  "alga cylinder",
	PlayerKind:        "player",
	StartingSpaceKind: "starting space",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Colors returns a copy of the colors valid for the kind, in registry order.
func (k Kind) Colors() []Color {
	return slices.Clone(recipes[k].Colors)
}

func (k Kind) PerColor() int {
	return recipes[k].PerColor
}

func (k Kind) Valid(c Color) bool {
	return slices.Contains(recipes[k].Colors, c)
}

// InitialDistribution builds PerColor rounds of every color of the kind.
func InitialDistribution[T any](k Kind, newItem func(Color) T) []T {
	recipe := recipes[k]
	items := make([]T, 0, len(recipe.Colors)*recipe.PerColor)
	for range recipe.PerColor {
		for _, c := range recipe.Colors {
			items = append(items, newItem(c))
		}
	}
	return items
}

// CountColors tallies items by color.
func CountColors[T Colored](items []T) map[Color]int {
	counts := make(map[Color]int)
	for _, item := range items {
		counts[item.Color()]++
	}
	return counts
}
