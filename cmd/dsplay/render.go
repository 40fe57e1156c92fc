package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette used across the subcommands. Components cycle through
// accentColors so that related cells share a hue.
var (
	accentColors = []string{"36", "35", "33", "32", "34", "31", "96", "95"}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	rootStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	hitStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).Underline(true)
)

// styled applies st unless --no-color was given.
func styled(st lipgloss.Style, s string) string {
	if noColor {
		return s
	}

	return st.Render(s)
}

// accent colors a cell by group index, cycling through the palette.
func accent(group int, s string) string {
	if noColor {
		return s
	}
	c := accentColors[group%len(accentColors)]

	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(s)
}

// title prints a section heading.
func title(s string) {
	fmt.Println(styled(titleStyle, s))
}

// renderRow prints one aligned key/value table row: a right-padded label
// followed by the cells joined with single spaces.
func renderRow(label string, cells []string) {
	fmt.Printf("  %s %s\n", styled(headerStyle, fmt.Sprintf("%-12s", label)), strings.Join(cells, " "))
}

// note prints a dim explanatory line.
func note(format string, args ...any) {
	fmt.Println(styled(dimStyle, "  "+fmt.Sprintf(format, args...)))
}
