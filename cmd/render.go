package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	sim "github.com/rajvardhan161/os-lab/sim"
)

// RenderTimeline writes a step-by-step frame table: one row per reference,
// one column per frame slot, faulting rows marked with an asterisk.
func RenderTimeline(w io.Writer, tl sim.Timeline, frameCount int) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprint(tw, "Step\tRef\tFault")
	for i := 1; i <= frameCount; i++ {
		fmt.Fprintf(tw, "\tFrame %d", i)
	}
	fmt.Fprintln(tw)

	for i, rec := range tl {
		fault := ""
		if rec.Fault {
			fault = "*"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s", i, rec.Ref, fault)
		for slot := 0; slot < frameCount; slot++ {
			if slot < len(rec.Frames) {
				fmt.Fprintf(tw, "\t%d", rec.Frames[slot])
			} else {
				fmt.Fprint(tw, "\t-")
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// RenderMemoryMap writes one memory map as a single row of cells, '.' for
// free and a letter per owning block (wrapping past 'Z').
func RenderMemoryMap(w io.Writer, m sim.MemoryMap) {
	var b strings.Builder
	b.Grow(len(m) + 2)
	b.WriteByte('|')
	for _, c := range m {
		if c == sim.BlockFree {
			b.WriteByte('.')
		} else {
			b.WriteByte(byte('A' + (int(c)-1)%26))
		}
	}
	b.WriteByte('|')
	fmt.Fprintln(w, b.String())
}

// RenderMemoryTimeline writes every snapshot of a fragmentation run,
// numbered by event.
func RenderMemoryTimeline(w io.Writer, snapshots []sim.MemoryMap) {
	for i, snap := range snapshots {
		fmt.Fprintf(w, "%4d ", i)
		RenderMemoryMap(w, snap)
	}
}
