package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsplayground/treap"
)

var (
	trInserts  string
	trRemoves  string
	trContains []int64
	trSeed     uint64
)

var treapCmd = &cobra.Command{
	Use:   "treap",
	Short: "An ordered multiset balanced by random priorities",
	Long: `Builds a treap by inserting every --insert key in order, then removes
each --remove key (one occurrence at a time), answers --contains
queries, and renders the sorted content. --seed pins the priority
stream for reproducible runs.`,
	RunE: runTreap,
}

func init() {
	treapCmd.Flags().StringVar(&trInserts, "insert", "", "keys to insert, e.g. 5,3,7,3")
	treapCmd.Flags().StringVar(&trRemoves, "remove", "", "keys to remove, one occurrence each")
	treapCmd.Flags().Int64SliceVar(&trContains, "contains", nil, "membership query (repeatable)")
	treapCmd.Flags().Uint64Var(&trSeed, "seed", 0, "deterministic priority seed (0 = per-process default)")
}

func runTreap(cmd *cobra.Command, _ []string) error {
	var opts []treap.Option
	if trSeed != 0 {
		opts = append(opts, treap.WithSeed(trSeed))
	}
	tr := treap.New(opts...)

	if trInserts != "" {
		keys, err := parseInt64List(trInserts)
		if err != nil {
			return err
		}
		for _, k := range keys {
			tr.Insert(k)
		}
		note("inserted %d keys", len(keys))
	}

	if trRemoves != "" {
		keys, err := parseInt64List(trRemoves)
		if err != nil {
			return err
		}
		for _, k := range keys {
			had := tr.Contains(k)
			tr.Remove(k)
			if had {
				note("remove(%d) → one occurrence dropped", k)
			} else {
				note("remove(%d) → key absent, no-op", k)
			}
		}
	}

	title(fmt.Sprintf("Treap — %d elements", tr.Len()))
	renderTreapContent(tr)

	for _, k := range trContains {
		fmt.Printf("  contains(%d) = %v\n", k, tr.Contains(k))
	}

	return nil
}

// renderTreapContent prints the ordered traversal with duplicate runs
// sharing a hue.
func renderTreapContent(tr *treap.Treap) {
	keys := tr.InOrder()
	if len(keys) == 0 {
		note("empty")

		return
	}

	cells := make([]string, len(keys))
	group := 0
	for i, k := range keys {
		if i > 0 && keys[i-1] != k {
			group++
		}
		cells[i] = accent(group, fmt.Sprintf("%d", k))
	}
	renderRow("inorder", cells)
}
