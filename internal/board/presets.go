package board

import (
	"slices"

	"github.com/pkg/errors"
)

var presets = []string{
	`
	.xxx..
	xxxxxx
	x.GxYx
	xOxxx.
	xx.xPx
	xxxWxx
	.xxx..
	`,
	`
	xxxx..
	xxGxx.
	xPx.x.
	x.x.Yx
	xOxWxx
	xx.xxx
	xxxx..
	`,
	`
	..xxx.
	xxxWxx
	xx.xPx
	xGxxxx
	.xYxOx
	.xx.xx
	.xxxx.
	`,
	`
	..xx..
	xxxxxx
	xPxWxx
	xxx.x.
	.GxxOx
	xx.Yxx
	xxxx.x
	`,
}

// Presets returns the layouts of the four coral reef boards shipped with the
// game.
func Presets() []string {
	return slices.Clone(presets)
}

// ParseAll parses every layout, in order.
func ParseAll(layouts []string) ([]*Reef, error) {
	reefs := make([]*Reef, 0, len(layouts))
	for i, layout := range layouts {
		reef, err := Parse(layout)
		if err != nil {
			return nil, errors.WithMessagef(err, "parse board %d", i+1)
		}
		reefs = append(reefs, reef)
	}
	return reefs, nil
}

func StartingReefs() ([]*Reef, error) {
	return ParseAll(presets)
}
