package relation

// IsReflexive - true iff (x, x) is present for every element x of the base
// set.
func (r *Relation[T]) IsReflexive() bool {
	for _, x := range r.base.Items() {
		if !r.Has(Link[T]{From: x, To: x}) {
			return false
		}
	}
	return true
}

// IsSymmetric - true iff the reverse of every link is also present.
func (r *Relation[T]) IsSymmetric() bool {
	for _, l := range r.Links() {
		if !r.Has(l.Reverse()) {
			return false
		}
	}
	return true
}

// IsTransitive - true iff every present link (x, y) over the base set
// factors through some witness z in the base with (x, z) and (z, y) both
// present. Cubic in the base cardinality.
func (r *Relation[T]) IsTransitive() bool {
	items := r.base.Items()
	for _, x := range items {
		for _, y := range items {
			if !r.Has(Link[T]{From: x, To: y}) {
				continue
			}
			if !r.hasWitness(x, y, items) {
				return false
			}
		}
	}
	return true
}

func (r *Relation[T]) hasWitness(x, y T, base []T) bool {
	for _, z := range base {
		if r.Has(Link[T]{From: x, To: z}) && r.Has(Link[T]{From: z, To: y}) {
			return true
		}
	}
	return false
}
