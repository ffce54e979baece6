package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kiryu-dev/reef-encounter/internal/config"
	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/kiryu-dev/reef-encounter/internal/usecase/setup"
	"github.com/kiryu-dev/reef-encounter/pkg/utils"
	"github.com/pkg/errors"
)

type writer struct {
	out    io.Writer
	format string
}

func New(out io.Writer, format string) writer {
	return writer{out: out, format: format}
}

func (w writer) Write(snap setup.Snapshot) error {
	switch w.format {
	case config.JsonOutput:
		return utils.EncodeJson(w.out, snap)
	case config.TextOutput:
		if _, err := io.WriteString(w.out, text(snap)); err != nil {
			return errors.WithMessage(err, "write text report")
		}
		return nil
	default:
		return errors.Errorf("unexpected report format '%s'", w.format)
	}
}

func text(snap setup.Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Game %s (%s)\n", snap.ID, snap.Phase)
	fmt.Fprintf(&sb, "Tile bag: %d tiles\n", snap.TileBag)
	fmt.Fprintf(&sb, "Cube supply: %s\n", counts(domain.LarvaCubeKind, snap.CubeSupply))

	sb.WriteString("\nPlayer order:\n")
	for i, p := range snap.Players {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, p.Name)
		fmt.Fprintf(&sb, "     In Front of Screen: %s\n", p.InFrontOf.Summary)
		fmt.Fprintf(&sb, "     Behind Screen: %s\n", p.Behind.Summary)
		if len(p.ParrotFish) > 0 {
			fmt.Fprintf(&sb, "     Parrot fish: %s\n", strings.Join(p.ParrotFish, ", "))
		}
	}

	sb.WriteString("\nCoral reef boards:\n")
	for i, r := range snap.Reefs {
		fmt.Fprintf(&sb, "  Board %d (%d tiles)\n", i+1, r.Tiles)
		for _, row := range r.Grid {
			fmt.Fprintf(&sb, "    %s\n", row)
		}
	}

	sb.WriteString("\nOpen sea:\n")
	for _, s := range snap.OpenSea {
		cube := "no cube"
		if s.Cube != "" {
			cube = s.Cube + " cube"
		}
		fmt.Fprintf(&sb, "  %s space: %s, tiles: %s\n", s.Color, cube, strings.Join(s.Tiles, ", "))
	}
	for _, t := range snap.CoralTiles {
		fmt.Fprintf(&sb, "  coral tile: %s over %s, %s alga showing\n", t.StrongerCoral, t.WeakerCoral, t.ShowingAlga)
	}
	return sb.String()
}

func counts(kind domain.Kind, byColor map[string]int) string {
	parts := make([]string, 0, len(byColor))
	for _, c := range kind.Colors() {
		parts = append(parts, fmt.Sprintf("%s %d", c, byColor[c.String()]))
	}
	return strings.Join(parts, ", ")
}
