package model

import (
	"strings"
	"testing"
)

// gridFromRows builds a grid from rows in the text format, e.g. "0 1 0".
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := Load(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("failed to build grid: %+v", err)
	}
	return g
}

func expectGrid(t *testing.T, g *Grid, rows ...string) {
	t.Helper()
	want := gridFromRows(t, rows...)
	if !g.Equal(want) {
		t.Fatalf("unexpected grid:\n%s\nexpected:\n%s", g, want)
	}
}
