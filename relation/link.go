package relation

import "golang.org/x/exp/constraints"

// Link - an ordered pair: From relates to To.
type Link[T constraints.Ordered] struct {
	From T
	To   T
}

// Reverse returns the link with its coordinates swapped.
func (l Link[T]) Reverse() Link[T] {
	return Link[T]{From: l.To, To: l.From}
}
