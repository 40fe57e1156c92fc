package unionfind_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/dsplayground/unionfind"
)

const propUniverse = 32

// naiveModel mirrors the partition with brute-force connected components:
// comp[i] is an arbitrary component label, merged by full rescan.
type naiveModel struct {
	comp [propUniverse]int
}

func newNaiveModel() *naiveModel {
	m := &naiveModel{}
	for i := range m.comp {
		m.comp[i] = i
	}

	return m
}

func (m *naiveModel) union(p, q int) {
	cp, cq := m.comp[p], m.comp[q]
	if cp == cq {
		return
	}
	for i := range m.comp {
		if m.comp[i] == cq {
			m.comp[i] = cp
		}
	}
}

func (m *naiveModel) count() int {
	seen := map[int]bool{}
	for _, c := range m.comp {
		seen[c] = true
	}

	return len(seen)
}

// TestProperties_AgainstNaiveModel replays random union sequences on both
// the DSU and a brute-force component model, then demands identical
// connectivity, identical set counts, and idempotent representatives.
func TestProperties_AgainstNaiveModel(t *testing.T) {
	parameters := gopter.DefaultTestParametersWithSeed(1759)
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	genPairs := gen.SliceOf(gen.IntRange(0, propUniverse*propUniverse-1))

	properties.Property("connectivity matches brute-force components", prop.ForAll(
		func(encoded []int) bool {
			uf, err := unionfind.New(propUniverse)
			if err != nil {
				return false
			}
			model := newNaiveModel()

			// Decode each int into a (p, q) pair and apply to both sides.
			for _, e := range encoded {
				p, q := e/propUniverse, e%propUniverse
				if _, err = uf.Union(p, q); err != nil {
					return false
				}
				model.union(p, q)
			}

			// Count must agree with the brute-force component count.
			if uf.Count() != model.count() {
				return false
			}

			// Pairwise connectivity must agree everywhere, which also
			// exercises reflexivity, symmetry, and transitivity.
			for p := 0; p < propUniverse; p++ {
				for q := p; q < propUniverse; q++ {
					got, err := uf.Connected(p, q)
					if err != nil {
						return false
					}
					if got != (model.comp[p] == model.comp[q]) {
						return false
					}
				}
			}

			// Representatives are stable under repeated lookup.
			for p := 0; p < propUniverse; p++ {
				r1, _ := uf.Find(p)
				r2, _ := uf.Find(r1)
				if r1 != r2 {
					return false
				}
			}

			return true
		},
		genPairs,
	))

	properties.TestingRun(t)
}
