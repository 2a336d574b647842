package main

import (
	"strings"
	"testing"
)

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"Column", "Missing"},
		[][]string{{"Serial"}, {"Orbit", ""}},
		[]columnAlignment{alignLeft, alignRight},
	)
	for _, want := range []string{"Column", "Missing", "Serial", "Orbit"} {
		requireContains(t, out, want)
	}
	if got := strings.Count(out, emptyCell+" "); got < 2 {
		t.Fatalf("expected placeholders for missing cells:\n%s", out)
	}
}

func TestRenderTableNoHeaders(t *testing.T) {
	if out := renderTable(nil, [][]string{{"x"}}, nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
