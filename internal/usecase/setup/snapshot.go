package setup

import (
	"strings"

	"github.com/kiryu-dev/reef-encounter/internal/domain"
)

type Snapshot struct {
	ID         string              `json:"id"`
	Phase      string              `json:"phase"`
	TileBag    int                 `json:"tile_bag"`
	CubeSupply map[string]int      `json:"cube_supply"`
	Players    []PlayerSnapshot    `json:"players"`
	Reefs      []ReefSnapshot      `json:"reefs"`
	OpenSea    []SpaceSnapshot     `json:"open_sea"`
	CoralTiles []CoralTileSnapshot `json:"coral_tiles"`
}

type PlayerSnapshot struct {
	Name       string        `json:"name"`
	Color      string        `json:"color"`
	Behind     StashSnapshot `json:"behind"`
	InFrontOf  StashSnapshot `json:"in_front_of"`
	ParrotFish []string      `json:"parrot_fish"`
}

type StashSnapshot struct {
	Summary string         `json:"summary"`
	Shrimp  int            `json:"shrimp"`
	Tiles   map[string]int `json:"tiles"`
	Cubes   map[string]int `json:"cubes"`
}

type ReefSnapshot struct {
	Tiles int      `json:"tiles"`
	Grid  []string `json:"grid"`
}

type SpaceSnapshot struct {
	Color string   `json:"color"`
	Cube  string   `json:"cube,omitempty"`
	Tiles []string `json:"tiles"`
}

type CoralTileSnapshot struct {
	StrongerCoral  string `json:"stronger_coral"`
	WeakerCoral    string `json:"weaker_coral"`
	ShowingAlga    string `json:"showing_alga"`
	BackgroundAlga string `json:"background_alga"`
	Flipped        bool   `json:"flipped"`
}

// Snapshot captures the current setup state in player order.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		ID:         g.id,
		Phase:      g.Phase(),
		TileBag:    g.tileBag.Size(),
		CubeSupply: colorNames(g.cubes.Counts()),
	}
	for _, p := range g.players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			Name:       p.String(),
			Color:      p.Color().String(),
			Behind:     stashSnapshot(p.Screen().Behind),
			InFrontOf:  stashSnapshot(p.Screen().InFrontOf),
			ParrotFish: names(p.ParrotFish().Eaten()),
		})
	}
	for _, r := range g.reefs {
		snap.Reefs = append(snap.Reefs, ReefSnapshot{
			Tiles: r.CountTiles(),
			Grid:  strings.Split(r.String(), "\n"),
		})
	}
	for s := range g.openSea.EachSpace() {
		space := SpaceSnapshot{
			Color: s.CubeColor().String(),
			Tiles: names(s.Tiles()),
		}
		if cube, ok := s.Cube(); ok {
			space.Cube = cube.String()
		}
		snap.OpenSea = append(snap.OpenSea, space)
	}
	for _, t := range g.openSea.CoralTiles() {
		snap.CoralTiles = append(snap.CoralTiles, CoralTileSnapshot{
			StrongerCoral:  t.StrongerCoral().String(),
			WeakerCoral:    t.WeakerCoral().String(),
			ShowingAlga:    t.ShowingAlga().String(),
			BackgroundAlga: t.BackgroundAlga().String(),
			Flipped:        t.Flipped(),
		})
	}
	return snap
}

func stashSnapshot(s *domain.Stash) StashSnapshot {
	return StashSnapshot{
		Summary: s.String(),
		Shrimp:  len(s.Shrimp),
		Tiles:   colorNames(domain.CountColors(s.Tiles)),
		Cubes:   colorNames(domain.CountColors(s.Cubes)),
	}
}

func colorNames(counts map[domain.Color]int) map[string]int {
	result := make(map[string]int, len(counts))
	for c, n := range counts {
		result[c.String()] = n
	}
	return result
}

func names[T domain.Colored](items []T) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.Color().String())
	}
	return result
}
