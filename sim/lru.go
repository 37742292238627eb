package sim

// lruPolicy tracks reference recency with a queue ordered oldest-first.
// The queue holds exactly the resident pages: hits move a page to the back,
// inserts append, and victim selection pops the front. Ties cannot occur
// because each resident page appears once with a distinct last-access
// position.
type lruPolicy struct {
	recency []PageID
}

func newLRUPolicy() *lruPolicy {
	return &lruPolicy{}
}

func (p *lruPolicy) recordHit(page PageID) {
	p.remove(page)
	p.recency = append(p.recency, page)
}

func (p *lruPolicy) recordInsert(page PageID) {
	p.recency = append(p.recency, page)
}

// victim pops the least recently used page off the queue and returns the
// frame slot it occupies.
func (p *lruPolicy) victim(frames []PageID, _ []PageID, _ int) int {
	lru := p.recency[0]
	p.recency = p.recency[1:]
	return slotOf(frames, lru)
}

func (p *lruPolicy) remove(page PageID) {
	for i, q := range p.recency {
		if q == page {
			p.recency = append(p.recency[:i], p.recency[i+1:]...)
			return
		}
	}
}
