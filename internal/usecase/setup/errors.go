package setup

import (
	"github.com/pkg/errors"
)

var (
	ErrWrongPhase        = errors.New("game is not in the required phase")
	ErrNoPrompter        = errors.New("no prompter configured")
	ErrInvalidChoice     = errors.New("invalid choice")
	ErrNotEnoughReefs    = errors.New("not enough coral reef boards for the players")
	errUnexpectedPlayers = errors.New("no distribution schedule for the number of players")
)
