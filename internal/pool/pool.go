// Package pool provides a shuffled draw pool, such as the polyp tile bag.
package pool

import (
	"slices"

	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/pkg/errors"
)

// Pool is a randomly ordered multiset of colored items. It is not safe for
// concurrent use.
type Pool[T domain.Colored] struct {
	kind  domain.Kind
	items []T
	rnd   domain.Randomizer
}

func New[T domain.Colored](kind domain.Kind, items []T, rnd domain.Randomizer) *Pool[T] {
	p := &Pool[T]{
		kind:  kind,
		items: slices.Clone(items),
		rnd:   rnd,
	}
	p.shuffle()
	return p
}

func (p *Pool[T]) Kind() domain.Kind {
	return p.kind
}

func (p *Pool[T]) Size() int {
	return len(p.items)
}

func (p *Pool[T]) IsEmpty() bool {
	return p.Size() == 0
}

// Draw removes the last item of the pool.
func (p *Pool[T]) Draw() (T, error) {
	if p.IsEmpty() {
		return *new(T), errors.WithMessagef(domain.ErrEmptyPool, "draw %s", p.kind)
	}
	last := len(p.items) - 1
	item := p.items[last]
	p.items = p.items[:last]
	return item, nil
}

// DrawN removes n items from the end of the pool as one batch.
func (p *Pool[T]) DrawN(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.WithMessagef(domain.ErrInvalidCount, "draw %d %s items", n, p.kind)
	}
	if n > p.Size() {
		return nil, errors.WithMessagef(domain.ErrEmptyPool, "draw %d %s items, %d left", n, p.kind, p.Size())
	}
	from := len(p.items) - n
	batch := slices.Clone(p.items[from:])
	p.items = p.items[:from]
	return batch, nil
}

// DrawColor draws until an item of the given color shows up. Rejected items go
// back into the pool, which is shuffled again, so the draw order stays hidden.
// When the pool runs out the rejects are put back and ErrEmptyPool is returned.
func (p *Pool[T]) DrawColor(c domain.Color) (T, error) {
	if !p.kind.Valid(c) {
		return *new(T), errors.WithMessagef(domain.ErrInvalidColor, "draw %s %s", c, p.kind)
	}
	var rejects []T
	for {
		item, err := p.Draw()
		if err != nil {
			p.Replace(rejects...)
			return *new(T), errors.WithMessagef(err, "no %s %s left", c, p.kind)
		}
		if item.Color() == c {
			p.Replace(rejects...)
			return item, nil
		}
		rejects = append(rejects, item)
	}
}

// DrawColors draws one item per color in order. On failure the items drawn so
// far are returned along with the error.
func (p *Pool[T]) DrawColors(colors ...domain.Color) ([]T, error) {
	drawn := make([]T, 0, len(colors))
	for _, c := range colors {
		item, err := p.DrawColor(c)
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, item)
	}
	return drawn, nil
}

// Replace puts items back and shuffles the pool.
func (p *Pool[T]) Replace(items ...T) {
	p.items = append(p.items, items...)
	p.shuffle()
}

func (p *Pool[T]) Counts() map[domain.Color]int {
	return domain.CountColors(p.items)
}

func (p *Pool[T]) shuffle() {
	p.rnd.Shuffle(len(p.items), func(i, j int) {
		p.items[i], p.items[j] = p.items[j], p.items[i]
	})
}
