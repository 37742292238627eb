package sim

import "fmt"

// FragStats aggregates the shape of free memory in one snapshot.
// Fragmentation is 1 - largestFreeRun/freeCells: 0 when all free memory is
// one contiguous run, approaching 1 as free memory splinters into runs too
// small to satisfy large requests.
type FragStats struct {
	MemorySize     int     `json:"memory_size"`
	FreeCells      int     `json:"free_cells"`
	FreeRuns       int     `json:"free_runs"`
	LargestFreeRun int     `json:"largest_free_run"`
	LiveBlocks     int     `json:"live_blocks"`
	Fragmentation  float64 `json:"fragmentation"`
}

// ComputeFragStats derives free-space statistics from a snapshot.
func ComputeFragStats(m MemoryMap) FragStats {
	stats := FragStats{MemorySize: len(m)}
	seen := make(map[BlockID]bool)
	run := 0
	for _, c := range m {
		if c == BlockFree {
			run++
			if run == 1 {
				stats.FreeRuns++
			}
			if run > stats.LargestFreeRun {
				stats.LargestFreeRun = run
			}
			stats.FreeCells++
		} else {
			run = 0
			if !seen[c] {
				seen[c] = true
				stats.LiveBlocks++
			}
		}
	}
	if stats.FreeCells > 0 {
		stats.Fragmentation = 1 - float64(stats.LargestFreeRun)/float64(stats.FreeCells)
	}
	return stats
}

// Print displays the statistics for a final snapshot.
func (s FragStats) Print() {
	fmt.Println("=== Fragmentation Summary ===")
	fmt.Printf("Memory Size      : %d units\n", s.MemorySize)
	fmt.Printf("Free Cells       : %d\n", s.FreeCells)
	fmt.Printf("Free Runs        : %d\n", s.FreeRuns)
	fmt.Printf("Largest Free Run : %d\n", s.LargestFreeRun)
	fmt.Printf("Live Blocks      : %d\n", s.LiveBlocks)
	fmt.Printf("Fragmentation    : %.2f%%\n", s.Fragmentation*100)
}
