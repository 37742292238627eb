package cmd

import (
	"strings"
	"testing"

	sim "github.com/rajvardhan161/os-lab/sim"
)

func TestRenderTimeline_MarksFaultsAndEmptySlots(t *testing.T) {
	tl, err := sim.Simulate([]sim.PageID{1, 2, 1}, 3, sim.AlgorithmLRU)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	var out strings.Builder
	RenderTimeline(&out, tl, 3)
	got := out.String()

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "Frame 3") {
		t.Errorf("header missing frame columns: %q", lines[0])
	}
	// Faulting rows carry the marker, the hit row does not
	if !strings.Contains(lines[1], "*") || !strings.Contains(lines[2], "*") {
		t.Errorf("fault rows missing marker:\n%s", got)
	}
	if strings.Contains(lines[3], "*") {
		t.Errorf("hit row carries fault marker: %q", lines[3])
	}
	// Unfilled frame slots render as '-'
	if !strings.Contains(lines[1], "-") {
		t.Errorf("empty slots not rendered: %q", lines[1])
	}
}

func TestRenderMemoryMap_CellGlyphs(t *testing.T) {
	m := sim.MemoryMap{0, 1, 1, 0, 2, 27}

	var out strings.Builder
	RenderMemoryMap(&out, m)

	// Block 27 wraps past 'Z' back to 'A'
	want := "|.AA.BA|\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestRenderMemoryTimeline_NumbersEvents(t *testing.T) {
	snaps := []sim.MemoryMap{{0, 0}, {1, 1}}

	var out strings.Builder
	RenderMemoryTimeline(&out, snaps)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "0") || !strings.Contains(lines[1], "1") {
		t.Errorf("event numbering missing:\n%s", out.String())
	}
}
