package sim

import "fmt"

// ReplacementSummary aggregates statistics from a replacement timeline for
// final reporting.
type ReplacementSummary struct {
	Algorithm  Algorithm `json:"algorithm"`
	Steps      int       `json:"steps"`
	Faults     int       `json:"faults"`
	Hits       int       `json:"hits"`
	FaultRate  float64   `json:"fault_rate"`
	PeakFrames int       `json:"peak_frames"`
}

// Summarize computes aggregate statistics from a timeline.
// Safe for empty timelines (returns zero-value fields).
func Summarize(algorithm Algorithm, tl Timeline) ReplacementSummary {
	summary := ReplacementSummary{Algorithm: algorithm, Steps: len(tl)}
	for _, rec := range tl {
		if rec.Fault {
			summary.Faults++
		} else {
			summary.Hits++
		}
		if len(rec.Frames) > summary.PeakFrames {
			summary.PeakFrames = len(rec.Frames)
		}
	}
	if summary.Steps > 0 {
		summary.FaultRate = float64(summary.Faults) / float64(summary.Steps)
	}
	return summary
}

// Print displays the summary at the end of a run.
func (s ReplacementSummary) Print() {
	fmt.Println("=== Replacement Summary ===")
	fmt.Printf("Algorithm     : %s\n", s.Algorithm)
	fmt.Printf("References    : %d\n", s.Steps)
	fmt.Printf("Page Faults   : %d\n", s.Faults)
	fmt.Printf("Hits          : %d\n", s.Hits)
	fmt.Printf("Fault Rate    : %.2f%%\n", s.FaultRate*100)
	fmt.Printf("Peak Frames   : %d\n", s.PeakFrames)
}
