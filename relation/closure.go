package relation

// RefClosure returns a new relation on the same base set augmented with
// every pair (i, j) for which some base element k has (i, k) and (k, j)
// among the original links. This is a single augmentation pass over the
// base triples, not a fixpoint: chains longer than two hops may need
// further passes to close fully.
func (r *Relation[T]) RefClosure() *Relation[T] {
	result := New(r.base, r.Links())
	items := r.base.Items()
	for _, i := range items {
		for _, k := range items {
			if !r.Has(Link[T]{From: i, To: k}) {
				continue
			}
			for _, j := range items {
				if r.Has(Link[T]{From: k, To: j}) {
					result.AddLink(Link[T]{From: i, To: j})
				}
			}
		}
	}
	return result
}

// SymClosure returns a new relation on the same base set holding every
// original link plus its reverse.
func (r *Relation[T]) SymClosure() *Relation[T] {
	result := New(r.base, r.Links())
	for _, l := range r.Links() {
		result.AddLink(l.Reverse())
	}
	return result
}
