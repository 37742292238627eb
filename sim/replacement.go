package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// evictionPolicy is the extension point shared by the replacement loop.
// The loop owns the frame set; a policy only keeps whatever bookkeeping its
// victim selection needs.
//
// recordInsert is called after a faulting page lands in a frame (fresh slot
// or post-eviction), recordHit after a reference to an already-resident
// page. victim picks the slot to evict when the frame set is full; it may
// consume policy state (LRU pops its recency queue).
type evictionPolicy interface {
	recordHit(page PageID)
	recordInsert(page PageID)
	victim(frames []PageID, refs []PageID, pos int) int
}

// newEvictionPolicy constructs the policy implementation for an algorithm.
func newEvictionPolicy(algorithm Algorithm) (evictionPolicy, error) {
	switch algorithm {
	case AlgorithmLRU:
		return newLRUPolicy(), nil
	case AlgorithmOptimal:
		return newOptimalPolicy(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q: %w", algorithm, ErrInvalidConfiguration)
	}
}

// Simulate replays refs against a frame set of frameCount slots under the
// given eviction policy and returns one StepRecord per reference, in input
// order. A step faults iff its page is absent from the frame set immediately
// before the step. Faulting pages fill the leftmost free slot while capacity
// remains; afterwards the policy's victim is replaced in place, so resident
// pages always occupy a contiguous slot prefix.
//
// An empty reference string yields an empty timeline, not an error.
// frameCount < 1 or an unknown algorithm fails with ErrInvalidConfiguration
// and no records.
func Simulate(refs []PageID, frameCount int, algorithm Algorithm) (Timeline, error) {
	if frameCount < 1 {
		return nil, fmt.Errorf("frame count %d, want >= 1: %w", frameCount, ErrInvalidConfiguration)
	}
	policy, err := newEvictionPolicy(algorithm)
	if err != nil {
		return nil, err
	}

	frames := make([]PageID, 0, frameCount)
	timeline := make(Timeline, 0, len(refs))

	for i, ref := range refs {
		slot := slotOf(frames, ref)
		fault := slot < 0

		switch {
		case !fault:
			policy.recordHit(ref)
		case len(frames) < frameCount:
			frames = append(frames, ref)
			policy.recordInsert(ref)
		default:
			v := policy.victim(frames, refs, i)
			logrus.Debugf("step %d: page %d evicts page %d from frame %d", i, ref, frames[v], v)
			frames[v] = ref
			policy.recordInsert(ref)
		}

		snapshot := make([]PageID, len(frames))
		copy(snapshot, frames)
		timeline = append(timeline, StepRecord{Ref: ref, Frames: snapshot, Fault: fault})
	}

	return timeline, nil
}

// slotOf returns the frame slot holding page, or -1 when not resident.
func slotOf(frames []PageID, page PageID) int {
	for i, p := range frames {
		if p == page {
			return i
		}
	}
	return -1
}
