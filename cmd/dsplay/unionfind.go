package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsplayground/unionfind"
)

var (
	ufSize       int
	ufUnions     []string
	ufFinds      []int
	ufConnecteds []string
)

var unionFindCmd = &cobra.Command{
	Use:   "unionfind",
	Short: "Merge disjoint sets and inspect the resulting partition",
	Long: `Creates a union-find universe of --n elements, applies every --union
pair in order, then answers --find and --connected queries and renders
the parent array and the connected components.`,
	RunE: runUnionFind,
}

func init() {
	unionFindCmd.Flags().IntVar(&ufSize, "n", 10, "universe size")
	unionFindCmd.Flags().StringArrayVar(&ufUnions, "union", nil, "pair to merge, e.g. --union 1,2 (repeatable)")
	unionFindCmd.Flags().IntSliceVar(&ufFinds, "find", nil, "element whose representative to report (repeatable)")
	unionFindCmd.Flags().StringArrayVar(&ufConnecteds, "connected", nil, "pair to test, e.g. --connected 1,3 (repeatable)")
}

func runUnionFind(cmd *cobra.Command, _ []string) error {
	uf, err := unionfind.New(ufSize)
	if err != nil {
		return err
	}

	title(fmt.Sprintf("UnionFind — %d elements", ufSize))

	// Apply merges in order, reporting whether each changed connectivity.
	for _, raw := range ufUnions {
		p, q, err := parsePair(raw, ",")
		if err != nil {
			return err
		}
		if err = checkIndex("union", p, ufSize); err != nil {
			return err
		}
		if err = checkIndex("union", q, ufSize); err != nil {
			return err
		}
		merged, err := uf.Union(p, q)
		if err != nil {
			return err
		}
		if merged {
			note("union(%d,%d) → merged, %d sets remain", p, q, uf.Count())
		} else {
			note("union(%d,%d) → already connected", p, q)
		}
	}

	renderPartition(uf)

	for _, p := range ufFinds {
		if err = checkIndex("find", p, ufSize); err != nil {
			return err
		}
		root, err := uf.Find(p)
		if err != nil {
			return err
		}
		fmt.Printf("  find(%d) = %d\n", p, root)
	}

	for _, raw := range ufConnecteds {
		p, q, err := parsePair(raw, ",")
		if err != nil {
			return err
		}
		if err = checkIndex("connected", p, ufSize); err != nil {
			return err
		}
		if err = checkIndex("connected", q, ufSize); err != nil {
			return err
		}
		ok, err := uf.Connected(p, q)
		if err != nil {
			return err
		}
		fmt.Printf("  connected(%d,%d) = %v\n", p, q, ok)
	}

	return nil
}

// renderPartition prints the parent array and the membership of each
// component, components ordered by size descending then root ascending.
func renderPartition(uf *unionfind.UnionFind) {
	parents := uf.Parents()

	// Group elements by representative. Find compresses paths, so after
	// this loop every parent link points straight at a root.
	members := map[int][]int{}
	for i := range parents {
		root, _ := uf.Find(i)
		members[root] = append(members[root], i)
	}

	// Parent array row, roots highlighted.
	cells := make([]string, len(parents))
	for i, p := range parents {
		if i == p {
			cells[i] = styled(rootStyle, fmt.Sprintf("%d", p))
		} else {
			cells[i] = accent(p, fmt.Sprintf("%d", p))
		}
	}
	renderRow("parent[]", cells)

	// Component table.
	roots := make([]int, 0, len(members))
	for r := range members {
		roots = append(roots, r)
	}
	sort.Slice(roots, func(i, j int) bool {
		if len(members[roots[i]]) != len(members[roots[j]]) {
			return len(members[roots[i]]) > len(members[roots[j]])
		}
		return roots[i] < roots[j]
	})

	fmt.Printf("  %s\n", styled(headerStyle, fmt.Sprintf("%d disjoint sets", uf.Count())))
	for _, r := range roots {
		ms := members[r]
		cells := make([]string, len(ms))
		for i, m := range ms {
			cells[i] = accent(r, fmt.Sprintf("%d", m))
		}
		renderRow(fmt.Sprintf("root %d (%d)", r, len(ms)), cells)
	}
}
