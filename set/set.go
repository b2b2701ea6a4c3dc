package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Set - a finite set over a totally ordered element type. Storage order is
// an implementation detail: membership and equality never depend on it.
type Set[T constraints.Ordered] struct {
	items []T
}

// New builds a set from the given elements. The input is copied verbatim,
// duplicates included: deduplication happens only through operations that
// sort, like Union.
func New[T constraints.Ordered](items []T) *Set[T] {
	s := &Set[T]{items: make([]T, len(items))}
	copy(s.items, items)
	return s
}

func (s *Set[T]) Has(item T) bool {
	for _, it := range s.items {
		if it == item {
			return true
		}
	}
	return false
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the stored elements.
func (s *Set[T]) Items() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

// Clone returns an independent copy.
func (s *Set[T]) Clone() *Set[T] {
	return New(s.items)
}

// Equal - true iff both sets have the same cardinality and every element of
// one is a member of the other.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, it := range s.items {
		if !other.Has(it) {
			return false
		}
	}
	for _, it := range other.items {
		if !s.Has(it) {
			return false
		}
	}
	return true
}

// Union - the elements of a and b combined, sorted ascending and with
// duplicates removed.
func Union[T constraints.Ordered](a, b *Set[T]) *Set[T] {
	merged := make([]T, 0, a.Len()+b.Len())
	merged = append(merged, a.items...)
	merged = append(merged, b.items...)
	sort.Slice(merged, func(i, j int) bool { return merged[i] < merged[j] })

	items := make([]T, 0, len(merged))
	for i, it := range merged {
		if i > 0 && it == merged[i-1] {
			continue
		}
		items = append(items, it)
	}
	return &Set[T]{items: items}
}

// Intersection - the elements of a that are members of b, in a's order.
func Intersection[T constraints.Ordered](a, b *Set[T]) *Set[T] {
	items := make([]T, 0, a.Len())
	for _, it := range a.items {
		if b.Has(it) {
			items = append(items, it)
		}
	}
	return New(items)
}

// Complement - the elements of a that are not members of b.
func Complement[T constraints.Ordered](a, b *Set[T]) *Set[T] {
	items := make([]T, 0, a.Len())
	for _, it := range a.items {
		if !b.Has(it) {
			items = append(items, it)
		}
	}
	return New(items)
}
