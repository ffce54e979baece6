package domain

import (
	"context"
)

// Randomizer is the source of randomness threaded through setup.
// *rand.Rand satisfies it.
type Randomizer interface {
	Shuffle(n int, swap func(i, j int))
	Intn(n int) int
}

// Prompter asks a player to pick one of the offered choices and returns the
// index of the picked one.
type Prompter interface {
	Choose(ctx context.Context, player *Player, prompt string, choices []string) (int, error)
}

// SetupUseCase prepares the game material and lets the players make their
// starting picks.
type SetupUseCase interface {
	Prepare() error
	Start(ctx context.Context) error
}
