package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrEmptyPool          = errors.New("pool is empty")
	ErrEmptyBucket        = errors.New("supply bucket is empty")
	ErrInvalidColor       = errors.New("color is not valid for this kind")
	ErrInvalidCount       = errors.New("invalid draw count")
	ErrInvalidLayout      = errors.New("invalid board layout")
	ErrNoMatchingTile     = errors.New("no tile matches the starting space color")
	ErrInvalidPlayerCount = errors.New("invalid number of players")
	ErrCubeMismatch       = errors.New("larva cube does not fit the space")
)
