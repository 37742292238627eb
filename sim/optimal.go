package sim

// optimalPolicy implements Belady's offline algorithm: evict the resident
// page whose next reference lies farthest in the future, treating a page
// with no future reference as infinitely far. When several residents are
// never referenced again, the one inserted into the frame set earliest is
// evicted first; insertion sequence numbers are kept per residency so a
// re-faulted page counts as freshly inserted.
type optimalPolicy struct {
	insertSeq map[PageID]int
	nextSeq   int
}

func newOptimalPolicy() *optimalPolicy {
	return &optimalPolicy{insertSeq: make(map[PageID]int)}
}

func (p *optimalPolicy) recordHit(PageID) {}

func (p *optimalPolicy) recordInsert(page PageID) {
	p.insertSeq[page] = p.nextSeq
	p.nextSeq++
}

// victim scans refs beyond pos for each resident page's next use and returns
// the slot of the page used farthest in the future.
func (p *optimalPolicy) victim(frames []PageID, refs []PageID, pos int) int {
	best := -1
	bestNext := -1
	bestSeq := 0

	for slot, page := range frames {
		next := nextUse(refs, pos+1, page)
		seq := p.insertSeq[page]
		switch {
		case best < 0,
			next > bestNext,
			next == bestNext && seq < bestSeq:
			best = slot
			bestNext = next
			bestSeq = seq
		}
	}
	return best
}

// nextUse returns the index of the first occurrence of page at or after
// from, or len(refs) as the "never again" sentinel. The sentinel compares
// greater than every real index, which makes never-used pages preferred
// victims.
func nextUse(refs []PageID, from int, page PageID) int {
	for i := from; i < len(refs); i++ {
		if refs[i] == page {
			return i
		}
	}
	return len(refs)
}
