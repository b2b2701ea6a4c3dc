package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RDDDIB/relations/relation"
	"github.com/RDDDIB/relations/set"
)

func TestRelation_RefClosure(t *testing.T) {
	base := set.New([]int{0, 1, 2, 3})
	links := []relation.Link[int]{link(0, 0), link(0, 1), link(1, 3), link(2, 1)}

	t.Run("adds every two-hop pair", func(t *testing.T) {
		r := relation.New(base, links)

		c := r.RefClosure()

		assert.Equal(t, 6, c.Len())
		assert.True(t, c.Has(link(0, 3)))
		assert.True(t, c.Has(link(2, 3)))
		for _, l := range links {
			assert.True(t, c.Has(l))
		}
	})

	t.Run("original relation is untouched", func(t *testing.T) {
		r := relation.New(base, links)

		r.RefClosure()

		assert.Equal(t, 4, r.Len())
	})

	t.Run("single pass, not a fixpoint", func(t *testing.T) {
		chain := relation.New(set.New([]int{0, 1, 2, 3}), []relation.Link[int]{
			link(0, 1), link(1, 2), link(2, 3),
		})

		c := chain.RefClosure()

		assert.True(t, c.Has(link(0, 2)))
		assert.True(t, c.Has(link(1, 3)))
		assert.False(t, c.Has(link(0, 3)))
	})
}

func TestRelation_SymClosure(t *testing.T) {
	base := set.New([]int{0, 1, 2, 3})
	links := []relation.Link[int]{link(0, 0), link(0, 1), link(1, 3), link(2, 1)}

	t.Run("adds the reverse of every link", func(t *testing.T) {
		r := relation.New(base, links)

		c := r.SymClosure()

		assert.Equal(t, 7, c.Len())
		assert.True(t, c.Has(link(1, 0)))
		assert.True(t, c.Has(link(3, 1)))
		assert.True(t, c.Has(link(1, 2)))
		assert.True(t, c.IsSymmetric())
	})

	t.Run("loops do not duplicate", func(t *testing.T) {
		r := relation.New(set.New([]int{0}), []relation.Link[int]{link(0, 0)})

		c := r.SymClosure()

		assert.Equal(t, 1, c.Len())
	})

	t.Run("original relation is untouched", func(t *testing.T) {
		r := relation.New(base, links)

		r.SymClosure()

		assert.Equal(t, 4, r.Len())
	})
}
