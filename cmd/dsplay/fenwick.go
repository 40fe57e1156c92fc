package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsplayground/fenwick"
)

var (
	fwValues string
	fwSize   int
	fwAdds   []string
	fwSums   []string
)

var fenwickCmd = &cobra.Command{
	Use:   "fenwick",
	Short: "Point updates and prefix sums on a binary indexed tree",
	Long: `Builds a Fenwick tree either from --values (one-pass bulk build) or as
an all-zero array of --size, applies every --add index:delta in order,
then answers --sum start:end range queries and renders both the logical
array and the raw 1-indexed tree slots.`,
	RunE: runFenwick,
}

func init() {
	fenwickCmd.Flags().StringVar(&fwValues, "values", "", "initial values, e.g. 1,2,3,4 (mutually exclusive with --size)")
	fenwickCmd.Flags().IntVar(&fwSize, "size", 0, "all-zero logical array size (used when --values is absent)")
	fenwickCmd.Flags().StringArrayVar(&fwAdds, "add", nil, "point update index:delta (repeatable)")
	fenwickCmd.Flags().StringArrayVar(&fwSums, "sum", nil, "inclusive range query start:end (repeatable)")
}

func runFenwick(cmd *cobra.Command, _ []string) error {
	// The size-vs-values constructor ambiguity resolves here: --values
	// wins when present, otherwise --size must be usable.
	var ft *fenwick.Tree
	if fwValues != "" {
		values, err := parseInt64List(fwValues)
		if err != nil {
			return err
		}
		ft = fenwick.FromSlice(values)
	} else {
		var err error
		if ft, err = fenwick.New(fwSize); err != nil {
			return err
		}
	}

	title(fmt.Sprintf("FenwickTree — %d elements", ft.Len()))

	for _, raw := range fwAdds {
		i, d, err := parseIndexDelta(raw)
		if err != nil {
			return err
		}
		if err = checkIndex("add", i, ft.Len()); err != nil {
			return err
		}
		if err = ft.Add(i, d); err != nil {
			return err
		}
		note("add(%d, %+d)", i, d)
	}

	renderFenwick(ft)

	for _, raw := range fwSums {
		s, e, err := parsePair(raw, ":")
		if err != nil {
			return err
		}
		if s <= e {
			if err = checkIndex("sum", e, ft.Len()); err != nil {
				return err
			}
		}
		sum, err := ft.RangeSum(s, e)
		if err != nil {
			return err
		}
		fmt.Printf("  sum[%d..%d] = %d\n", s, e, sum)
	}

	return nil
}

// renderFenwick prints the logical array (recovered through range sums)
// and the raw slot encoding side by side.
func renderFenwick(ft *fenwick.Tree) {
	n := ft.Len()

	logical := make([]string, n)
	for i := 0; i < n; i++ {
		v, _ := ft.RangeSum(i, i)
		logical[i] = accent(i, fmt.Sprintf("%d", v))
	}
	renderRow("a[]", logical)

	raw := ft.Internal()
	slots := make([]string, 0, n)
	for i := 1; i < len(raw); i++ {
		slots = append(slots, accent(i, fmt.Sprintf("%d", raw[i])))
	}
	renderRow("tree[1..]", slots)
	note("slot i covers the (i & -i) elements ending at position i")
}
