package relation

import (
	"github.com/denismitr/dll"
	"golang.org/x/exp/constraints"

	"github.com/RDDDIB/relations/set"
)

// Relation - a binary relation over a base set: an insertion-ordered
// collection of links whose endpoints belong to the base set. AddLink
// enforces uniqueness and base membership; New stores its input verbatim
// and is the trusted path for pre-computed link slices.
type Relation[T constraints.Ordered] struct {
	base  *set.Set[T]
	links *dll.DoublyLinkedList[Link[T]]
}

// New builds a relation from a base set and an initial link collection.
// Both are copied. The links are stored as given, without validation or
// deduplication.
func New[T constraints.Ordered](base *set.Set[T], links []Link[T]) *Relation[T] {
	r := &Relation[T]{
		base:  base.Clone(),
		links: dll.New[Link[T]](),
	}
	for _, l := range links {
		r.links.PushTail(dll.NewElement(l))
	}
	return r
}

// AddLink appends l iff it is not already present and both of its endpoints
// are members of the base set. Anything else is a no-op.
func (r *Relation[T]) AddLink(l Link[T]) (added bool) {
	if r.Has(l) {
		return false
	}
	if !r.base.Has(l.From) || !r.base.Has(l.To) {
		return false
	}

	r.links.PushTail(dll.NewElement(l))
	return true
}

// AddLinks applies AddLink to each link, in input order.
func (r *Relation[T]) AddLinks(ls []Link[T]) {
	for _, l := range ls {
		r.AddLink(l)
	}
}

func (r *Relation[T]) Has(l Link[T]) bool {
	curr := r.links.Head()
	for curr != nil {
		if curr.Value() == l {
			return true
		}
		curr = curr.Next()
	}
	return false
}

// Len returns the number of stored links.
func (r *Relation[T]) Len() int {
	n := 0
	curr := r.links.Head()
	for curr != nil {
		n++
		curr = curr.Next()
	}
	return n
}

// Links returns a copy of the stored links, in insertion order.
func (r *Relation[T]) Links() []Link[T] {
	var links []Link[T]
	curr := r.links.Head()
	for curr != nil {
		links = append(links, curr.Value())
		curr = curr.Next()
	}
	return links
}

// Base returns a copy of the base set.
func (r *Relation[T]) Base() *set.Set[T] {
	return r.base.Clone()
}

// Equal - true iff both relations hold the same links, regardless of
// insertion order. Base sets are not compared.
func (r *Relation[T]) Equal(other *Relation[T]) bool {
	if r.Len() != other.Len() {
		return false
	}
	for _, l := range r.Links() {
		if !other.Has(l) {
			return false
		}
	}
	for _, l := range other.Links() {
		if !r.Has(l) {
			return false
		}
	}
	return true
}

// Domain returns the deduplicated set of first coordinates over all links.
func (r *Relation[T]) Domain() *set.Set[T] {
	var items []T
	for _, l := range r.Links() {
		items = appendUnique(items, l.From)
	}
	return set.New(items)
}

// Codomain returns the deduplicated set of second coordinates over all links.
func (r *Relation[T]) Codomain() *set.Set[T] {
	var items []T
	for _, l := range r.Links() {
		items = appendUnique(items, l.To)
	}
	return set.New(items)
}

// Neighbours collects, for every link incident to v, the coordinate equal to
// v itself: {v} when v touches any link, empty otherwise. Kept as the
// historical behavior; this is not graph adjacency.
func (r *Relation[T]) Neighbours(v T) *set.Set[T] {
	var items []T
	for _, l := range r.Links() {
		if l.From == v {
			items = appendUnique(items, l.From)
		}
		if l.To == v {
			items = appendUnique(items, l.To)
		}
	}
	return set.New(items)
}

// Degree returns the cardinality of Neighbours(v).
func (r *Relation[T]) Degree(v T) int {
	return r.Neighbours(v).Len()
}

func appendUnique[T comparable](items []T, item T) []T {
	for _, it := range items {
		if it == item {
			return items
		}
	}
	return append(items, item)
}
