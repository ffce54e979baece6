// Package board holds the coral reef boards, which are parsed from ASCII
// layouts, and the open sea board.
package board

import (
	"iter"
	"slices"
	"strings"

	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/pkg/errors"
)

type State byte

const (
	Unplayable = State(iota)
	Open
	Starting
)

func (s State) String() string {
	switch s {
	case Unplayable:
		return "unplayable"
	case Open:
		return "open"
	case Starting:
		return "starting"
	default:
		return "unknown"
	}
}

const (
	unplayableChar = 'x'
	openChar       = '.'
)

var (
	letterColors = map[rune]domain.Color{
		'G': domain.Grey,
		'P': domain.Pink,
		'Y': domain.Yellow,
		'O': domain.Orange,
		'W': domain.White,
	}
	colorLetters = map[domain.Color]rune{
		domain.Grey:   'G',
		domain.Pink:   'P',
		domain.Yellow: 'Y',
		domain.Orange: 'O',
		domain.White:  'W',
	}
)

// Position is a single cell of a reef board. Only its tile changes after
// parsing.
type Position struct {
	row, col      int
	state         State
	startingColor domain.Color
	tile          *domain.PolypTile
}

func newPosition(row, col int, ch rune) (*Position, error) {
	p := &Position{row: row, col: col}
	switch ch {
	case unplayableChar:
		p.state = Unplayable
	case openChar:
		p.state = Open
	default:
		c, ok := letterColors[ch]
		if !ok || !domain.StartingSpaceKind.Valid(c) {
			return nil, errors.WithMessagef(domain.ErrInvalidLayout,
				"unexpected position character '%c' at row %d, column %d", ch, row, col)
		}
		p.state = Starting
		p.startingColor = c
	}
	return p, nil
}

func (p *Position) Row() int {
	return p.row
}

func (p *Position) Col() int {
	return p.col
}

func (p *Position) State() State {
	return p.state
}

// StartingColor reports the color a starting space requires.
func (p *Position) StartingColor() (domain.Color, bool) {
	return p.startingColor, p.state == Starting
}

func (p *Position) Tile() (domain.PolypTile, bool) {
	if p.tile == nil {
		return domain.PolypTile{}, false
	}
	return *p.tile, true
}

func (p *Position) char() rune {
	if p.tile != nil {
		return colorLetters[p.tile.Color()]
	}
	switch p.state {
	case Unplayable:
		return unplayableChar
	case Open:
		return openChar
	default:
		return colorLetters[p.startingColor] + ('a' - 'A')
	}
}

// Reef is a coral reef board.
type Reef struct {
	rows [][]*Position
}

// Parse reads an ASCII layout: 'x' is land, '.' is open water and G/P/Y/O/W
// are starting spaces for grey, pink, yellow, orange and white tiles.
// Surrounding whitespace of the block and of every line is ignored. Rows may
// differ in length.
func Parse(layout string) (*Reef, error) {
	layout = strings.TrimSpace(layout)
	if layout == "" {
		return nil, errors.WithMessage(domain.ErrInvalidLayout, "empty layout")
	}
	lines := strings.Split(layout, "\n")
	rows := make([][]*Position, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]*Position, 0, len(line))
		for j, ch := range []rune(line) {
			p, err := newPosition(i, j, ch)
			if err != nil {
				return nil, err
			}
			row = append(row, p)
		}
		rows = append(rows, row)
	}
	return &Reef{rows: rows}, nil
}

// EachPosition yields every position row by row.
func (r *Reef) EachPosition() iter.Seq[*Position] {
	return func(yield func(*Position) bool) {
		for _, row := range r.rows {
			for _, p := range row {
				if !yield(p) {
					return
				}
			}
		}
	}
}

func (r *Reef) CountTiles() int {
	count := 0
	for p := range r.EachPosition() {
		if p.tile != nil {
			count++
		}
	}
	return count
}

// AddStartingTiles places one candidate of the matching color on every empty
// starting space, in layout order, and returns the candidates left over. The
// given slice is not modified.
func (r *Reef) AddStartingTiles(candidates []domain.PolypTile) ([]domain.PolypTile, error) {
	remaining := slices.Clone(candidates)
	for p := range r.EachPosition() {
		c, ok := p.StartingColor()
		if !ok || p.tile != nil {
			continue
		}
		i := slices.IndexFunc(remaining, func(t domain.PolypTile) bool {
			return t.Color() == c
		})
		if i < 0 {
			return remaining, errors.WithMessagef(domain.ErrNoMatchingTile,
				"%s starting space at row %d, column %d", c, p.row, p.col)
		}
		tile := remaining[i]
		p.tile = &tile
		remaining = slices.Delete(remaining, i, i+1)
	}
	return remaining, nil
}

// StartingColors lists the colors of the starting spaces in layout order.
func (r *Reef) StartingColors() []domain.Color {
	var colors []domain.Color
	for p := range r.EachPosition() {
		if c, ok := p.StartingColor(); ok {
			colors = append(colors, c)
		}
	}
	return colors
}

// String renders the board. Placed tiles show as their upper case color
// letter, empty starting spaces in lower case.
func (r *Reef) String() string {
	var sb strings.Builder
	for i, row := range r.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, p := range row {
			sb.WriteRune(p.char())
		}
	}
	return sb.String()
}
