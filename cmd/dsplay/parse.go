package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseInt64List parses "1,2,3" into int64 values.
func parseInt64List(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty value list")
	}

	parts := strings.Split(s, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q: %w", p, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// parsePair parses "p,q" (or "p:q" for ranged arguments) into two ints.
func parsePair(s, sep string) (int, int, error) {
	parts := strings.SplitN(s, sep, 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two values separated by %q, got %q", sep, s)
	}

	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad integer %q: %w", parts[0], err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad integer %q: %w", parts[1], err)
	}

	return a, b, nil
}

// parseIndexDelta parses "i:d" into an index and an int64 delta.
func parseIndexDelta(s string) (int, int64, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected index:delta, got %q", s)
	}

	i, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad index %q: %w", parts[0], err)
	}
	d, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad delta %q: %w", parts[1], err)
	}

	return i, d, nil
}

// checkIndex validates a single index against size before any structure
// is touched, so flag errors surface with the flag's own name.
func checkIndex(name string, idx, size int) error {
	if idx < 0 || idx >= size {
		return fmt.Errorf("%s index %d out of range [0, %d)", name, idx, size)
	}

	return nil
}
