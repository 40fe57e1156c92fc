package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsplayground/sparsetable"
)

var (
	stValues  string
	stQueries []string
	stMax     bool
)

var sparseTableCmd = &cobra.Command{
	Use:   "sparsetable",
	Short: "O(1) idempotent range queries over a frozen array",
	Long: `Builds a sparse table from --values (minimum combiner by default,
maximum with --max), renders every precomputed doubling row, and answers
each --query l:r interval.`,
	RunE: runSparseTable,
}

func init() {
	sparseTableCmd.Flags().StringVar(&stValues, "values", "", "source array, e.g. 5,2,4,7,1,3")
	sparseTableCmd.Flags().StringArrayVar(&stQueries, "query", nil, "inclusive interval l:r (repeatable)")
	sparseTableCmd.Flags().BoolVar(&stMax, "max", false, "use maximum instead of minimum")
	_ = sparseTableCmd.MarkFlagRequired("values")
}

func runSparseTable(cmd *cobra.Command, _ []string) error {
	values, err := parseInt64List(stValues)
	if err != nil {
		return err
	}

	var opts []sparsetable.Option[int64]
	combiner := "min"
	if stMax {
		combiner = "max"
		opts = append(opts, sparsetable.WithCombine[int64](func(a, b int64) int64 {
			return max(a, b)
		}))
	}
	st := sparsetable.Build(values, opts...)

	title(fmt.Sprintf("SparseTable — %d elements, combiner=%s", st.Len(), combiner))
	renderSparseRows(values, st)

	for _, raw := range stQueries {
		l, r, err := parsePair(raw, ":")
		if err != nil {
			return err
		}
		if v, ok := st.Query(l, r); ok {
			fmt.Printf("  %s[%d..%d] = %d\n", combiner, l, r, v)
		} else {
			fmt.Printf("  %s[%d..%d] = no result\n", combiner, l, r)
		}
	}

	return nil
}

// renderSparseRows prints row k as the combined value of each 2^k-wide
// window, recomputed through Query so the rendering exercises the same
// two-window machinery the answers use.
func renderSparseRows(values []int64, st *sparsetable.SparseTable[int64]) {
	n := len(values)
	for k, width := 0, 1; width <= n; k, width = k+1, width*2 {
		cells := make([]string, 0, n-width+1)
		for i := 0; i+width <= n; i++ {
			v, _ := st.Query(i, i+width-1)
			cells = append(cells, accent(k, fmt.Sprintf("%d", v)))
		}
		renderRow(fmt.Sprintf("width %d", width), cells)
	}
}
