// Package supply provides stock that is bucketed by color and drawn only by
// color, such as the larva cube supply.
package supply

import (
	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/pkg/errors"
)

// Supply keeps one stack per color. Draw order inside a bucket is the reverse
// of insertion order. It is not safe for concurrent use.
type Supply[T domain.Colored] struct {
	kind    domain.Kind
	buckets map[domain.Color][]T
}

// New buckets the items by color. Items of a color the kind does not have are
// left out.
func New[T domain.Colored](kind domain.Kind, items []T) *Supply[T] {
	s := &Supply[T]{
		kind:    kind,
		buckets: make(map[domain.Color][]T),
	}
	for _, c := range kind.Colors() {
		s.buckets[c] = nil
	}
	s.Replace(items...)
	return s
}

func (s *Supply[T]) Kind() domain.Kind {
	return s.kind
}

func (s *Supply[T]) DrawColor(c domain.Color) (T, error) {
	if !s.kind.Valid(c) {
		return *new(T), errors.WithMessagef(domain.ErrEmptyBucket, "no %s bucket for %s", c, s.kind)
	}
	bucket := s.buckets[c]
	if len(bucket) == 0 {
		return *new(T), errors.WithMessagef(domain.ErrEmptyBucket, "draw %s %s", c, s.kind)
	}
	last := len(bucket) - 1
	item := bucket[last]
	s.buckets[c] = bucket[:last]
	return item, nil
}

// DrawColors draws one item per color in order. On failure the items drawn so
// far are returned along with the error.
func (s *Supply[T]) DrawColors(colors ...domain.Color) ([]T, error) {
	drawn := make([]T, 0, len(colors))
	for _, c := range colors {
		item, err := s.DrawColor(c)
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, item)
	}
	return drawn, nil
}

// Replace puts items back into their buckets, skipping colors the kind does
// not have.
func (s *Supply[T]) Replace(items ...T) {
	for _, item := range items {
		c := item.Color()
		if !s.kind.Valid(c) {
			continue
		}
		s.buckets[c] = append(s.buckets[c], item)
	}
}

func (s *Supply[T]) Count(c domain.Color) int {
	return len(s.buckets[c])
}

func (s *Supply[T]) Counts() map[domain.Color]int {
	counts := make(map[domain.Color]int, len(s.buckets))
	for c, bucket := range s.buckets {
		counts[c] = len(bucket)
	}
	return counts
}

func (s *Supply[T]) Size() int {
	size := 0
	for _, bucket := range s.buckets {
		size += len(bucket)
	}
	return size
}
