package sim

// StepRecord captures the outcome of processing one page reference.
// Frames is a private snapshot of the frame-set contents immediately after
// the step, in slot order; the caller owns it and the engine never touches
// it again.
type StepRecord struct {
	Ref    PageID   `json:"ref"`
	Frames []PageID `json:"frames"`
	Fault  bool     `json:"fault"`
}

// Timeline is the ordered sequence of step records produced by Simulate,
// one per input reference, in input order.
type Timeline []StepRecord

// FaultCount returns the number of steps that faulted. It is derived from
// the records on every call rather than tracked separately.
func (tl Timeline) FaultCount() int {
	count := 0
	for _, rec := range tl {
		if rec.Fault {
			count++
		}
	}
	return count
}

// FaultPositions returns the zero-based step indices at which faults
// occurred, in order.
func (tl Timeline) FaultPositions() []int {
	positions := make([]int, 0, len(tl))
	for i, rec := range tl {
		if rec.Fault {
			positions = append(positions, i)
		}
	}
	return positions
}
