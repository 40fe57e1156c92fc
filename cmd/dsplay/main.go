// Command dsplay is a scripted terminal playground for the dsplayground
// data structures: one subcommand per structure, each running the
// requested operations and rendering the resulting internal state.
//
// Every index argument is validated up front; core sentinel errors map
// to a one-line stderr diagnostic and a non-zero exit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "dsplay",
	Short: "An interactive playground for classic algorithmic data structures",
	Long: `dsplay demonstrates five classic data structures — union-find,
Fenwick tree, sparse table, treap, and KMP substring search — by running
a scripted sequence of operations and rendering the internal state after
each step.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dsplay: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable styled output")

	rootCmd.AddCommand(
		unionFindCmd,
		fenwickCmd,
		sparseTableCmd,
		treapCmd,
		kmpCmd,
	)
}
