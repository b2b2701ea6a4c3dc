package relation

import (
	"golang.org/x/exp/constraints"

	"github.com/RDDDIB/relations/set"
)

// Union - the relation over the union of both base sets holding every link
// of r and s, deduplicated.
func Union[T constraints.Ordered](r, s *Relation[T]) *Relation[T] {
	var links []Link[T]
	for _, l := range r.Links() {
		links = appendUnique(links, l)
	}
	for _, l := range s.Links() {
		links = appendUnique(links, l)
	}
	return New(set.Union(r.base, s.base), links)
}

// Intersection - the relation over the intersection of both base sets
// holding r's links that are also in s.
func Intersection[T constraints.Ordered](r, s *Relation[T]) *Relation[T] {
	var links []Link[T]
	for _, l := range r.Links() {
		if s.Has(l) {
			links = append(links, l)
		}
	}
	return New(set.Intersection(r.base, s.base), links)
}

// Complement - the relation over base(r) minus base(s) holding r's links
// that are absent from s.
func Complement[T constraints.Ordered](r, s *Relation[T]) *Relation[T] {
	var links []Link[T]
	for _, l := range r.Links() {
		if !s.Has(l) {
			links = append(links, l)
		}
	}
	return New(set.Complement(r.base, s.base), links)
}

// Compose - relational composition: the base set is the union of r's domain
// and s's codomain, and the links are every (a, d) for which some b has
// (a, b) in r and (b, d) in s.
func Compose[T constraints.Ordered](r, s *Relation[T]) *Relation[T] {
	var links []Link[T]
	for _, rl := range r.Links() {
		for _, sl := range s.Links() {
			if rl.To == sl.From {
				links = appendUnique(links, Link[T]{From: rl.From, To: sl.To})
			}
		}
	}
	return New(set.Union(r.Domain(), s.Codomain()), links)
}
