package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsplayground/kmp"
)

var (
	kmpText    string
	kmpPattern string
)

var kmpCmd = &cobra.Command{
	Use:   "kmp",
	Short: "Knuth–Morris–Pratt substring search",
	Long: `Computes the prefix function of --pattern, finds every (possibly
overlapping) occurrence in --text, and renders the matches highlighted
in place.`,
	RunE: runKMP,
}

func init() {
	kmpCmd.Flags().StringVar(&kmpText, "text", "", "text to scan")
	kmpCmd.Flags().StringVar(&kmpPattern, "pattern", "", "pattern to search for")
	_ = kmpCmd.MarkFlagRequired("text")
	_ = kmpCmd.MarkFlagRequired("pattern")
}

func runKMP(cmd *cobra.Command, _ []string) error {
	title(fmt.Sprintf("KMP — pattern %q in %d bytes of text", kmpPattern, len(kmpText)))

	pi := kmp.PrefixFunction(kmpPattern)
	cells := make([]string, len(pi))
	for i, p := range pi {
		cells[i] = accent(p, fmt.Sprintf("%d", p))
	}
	renderRow("pi[]", cells)

	offsets := kmp.FindAll(kmpText, kmpPattern)
	if len(offsets) == 0 {
		note("no occurrences")

		return nil
	}

	fmt.Printf("  %s %v\n", styled(headerStyle, "offsets"), offsets)
	fmt.Printf("  %s\n", highlightMatches(kmpText, kmpPattern, offsets))

	return nil
}

// highlightMatches rebuilds the text with every matched span styled.
// Overlapping spans are merged so each byte is emitted exactly once.
func highlightMatches(text, pattern string, offsets []int) string {
	covered := make([]bool, len(text))
	for _, off := range offsets {
		for i := off; i < off+len(pattern); i++ {
			covered[i] = true
		}
	}

	var b strings.Builder
	for i := 0; i < len(text); {
		j := i
		for j < len(text) && covered[j] == covered[i] {
			j++
		}
		if covered[i] {
			b.WriteString(styled(hitStyle, text[i:j]))
		} else {
			b.WriteString(styled(dimStyle, text[i:j]))
		}
		i = j
	}

	return b.String()
}
