package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// BlockID tags memory cells with their owning allocation. BlockFree marks a
// cell nobody owns; real block ids start at 1 and grow monotonically within
// a run, so an id never refers to two different allocations.
type BlockID int

const BlockFree BlockID = 0

// MemoryMap is a fixed-length sequence of cells, one BlockID per memory
// unit. Snapshots handed to callers are private copies.
type MemoryMap []BlockID

// Clone returns an independent copy of the map.
func (m MemoryMap) Clone() MemoryMap {
	out := make(MemoryMap, len(m))
	copy(out, m)
	return out
}

// AllocatedCells returns the number of owned cells.
func (m MemoryMap) AllocatedCells() int {
	n := 0
	for _, c := range m {
		if c != BlockFree {
			n++
		}
	}
	return n
}

// firstFit returns the leftmost start index of a free run of at least size
// cells, or -1 when no run fits.
func (m MemoryMap) firstFit(size int) int {
	run := 0
	for i, c := range m {
		if c == BlockFree {
			run++
			if run == size {
				return i - size + 1
			}
		} else {
			run = 0
		}
	}
	return -1
}

// FragmentationConfig groups fragmentation timeline parameters.
type FragmentationConfig struct {
	MemorySize   int // total memory units (must be > 0)
	Events       int // number of allocation/deallocation events (must be > 0)
	MinBlockSize int // smallest block an allocation may request (default 1)
	MaxBlockSize int // largest block an allocation may request (default MemorySize/4)
}

// withDefaults fills unset block-size bounds.
func (c FragmentationConfig) withDefaults() FragmentationConfig {
	if c.MinBlockSize == 0 {
		c.MinBlockSize = 1
	}
	if c.MaxBlockSize == 0 {
		c.MaxBlockSize = c.MemorySize / 4
		if c.MaxBlockSize < c.MinBlockSize {
			c.MaxBlockSize = c.MinBlockSize
		}
	}
	return c
}

// Validate checks the config after defaulting.
func (c FragmentationConfig) Validate() error {
	if c.MemorySize < 1 {
		return fmt.Errorf("memory size %d, want >= 1: %w", c.MemorySize, ErrInvalidConfiguration)
	}
	if c.Events < 1 {
		return fmt.Errorf("event count %d, want >= 1: %w", c.Events, ErrInvalidConfiguration)
	}
	if c.MinBlockSize < 1 || c.MaxBlockSize < c.MinBlockSize {
		return fmt.Errorf("block size bounds [%d, %d] invalid: %w",
			c.MinBlockSize, c.MaxBlockSize, ErrInvalidConfiguration)
	}
	if c.MaxBlockSize > c.MemorySize {
		return fmt.Errorf("max block size %d exceeds memory size %d: %w",
			c.MaxBlockSize, c.MemorySize, ErrInvalidConfiguration)
	}
	return nil
}

// extent records the cell range owned by a block, both ends inclusive.
type extent struct {
	start, end int
}

// memoryState is the mutable allocator state behind a timeline run.
// live keeps allocation order so deallocation targets are drawn by index,
// not by map iteration, keeping runs bit-identical under a fixed seed.
type memoryState struct {
	cells   MemoryMap
	extents map[BlockID]extent
	live    []BlockID
	nextID  BlockID
}

func newMemoryState(size int) *memoryState {
	return &memoryState{
		cells:   make(MemoryMap, size),
		extents: make(map[BlockID]extent),
		nextID:  1,
	}
}

// allocate claims the first free run fitting size cells. Returns false when
// nothing fits; the event is then a no-op and the caller records the
// unchanged map.
func (ms *memoryState) allocate(size int) bool {
	start := ms.cells.firstFit(size)
	if start < 0 {
		return false
	}
	id := ms.nextID
	ms.nextID++
	for i := start; i < start+size; i++ {
		ms.cells[i] = id
	}
	ms.extents[id] = extent{start: start, end: start + size - 1}
	ms.live = append(ms.live, id)
	return true
}

// deallocate frees the live block at index idx of the allocation-ordered
// live list.
func (ms *memoryState) deallocate(idx int) {
	id := ms.live[idx]
	ext := ms.extents[id]
	for i := ext.start; i <= ext.end; i++ {
		ms.cells[i] = BlockFree
	}
	delete(ms.extents, id)
	ms.live = append(ms.live[:idx], ms.live[idx+1:]...)
}

// GenerateTimeline replays cfg.Events random events over a fresh memory map
// and returns one snapshot per event, in event order. Each event is a coin
// flip between allocating a block of random size at the first fit and
// deallocating a uniformly chosen live block; when no block is live the
// event always allocates, and an allocation that fits nowhere is skipped
// with the snapshot still recorded.
//
// All randomness comes from rng; the same seed replays the same timeline.
func GenerateTimeline(cfg FragmentationConfig, rng *rand.Rand) ([]MemoryMap, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source: %w", ErrInvalidConfiguration)
	}

	ms := newMemoryState(cfg.MemorySize)
	snapshots := make([]MemoryMap, 0, cfg.Events)

	for ev := 0; ev < cfg.Events; ev++ {
		if len(ms.live) == 0 || rng.Intn(2) == 0 {
			size := cfg.MinBlockSize + rng.Intn(cfg.MaxBlockSize-cfg.MinBlockSize+1)
			if !ms.allocate(size) {
				logrus.Debugf("event %d: no free run fits %d cells, skipping", ev, size)
			}
		} else {
			ms.deallocate(rng.Intn(len(ms.live)))
		}
		snapshots = append(snapshots, ms.cells.Clone())
	}

	return snapshots, nil
}

// PhasedConfig groups parameters for the two-phase generator: a burst of
// fixed-size allocations followed by a random sample of deallocations.
type PhasedConfig struct {
	MemorySize    int // total memory units (must be > 0)
	BlockSize     int // size of every allocated block (must be > 0)
	Allocations   int // allocation attempts; the burst stops early when memory fills
	Deallocations int // blocks to free afterwards, capped at the number allocated
}

// Validate checks the phased config.
func (c PhasedConfig) Validate() error {
	if c.MemorySize < 1 {
		return fmt.Errorf("memory size %d, want >= 1: %w", c.MemorySize, ErrInvalidConfiguration)
	}
	if c.BlockSize < 1 || c.BlockSize > c.MemorySize {
		return fmt.Errorf("block size %d, want in [1, %d]: %w", c.BlockSize, c.MemorySize, ErrInvalidConfiguration)
	}
	if c.Allocations < 1 {
		return fmt.Errorf("allocation count %d, want >= 1: %w", c.Allocations, ErrInvalidConfiguration)
	}
	if c.Deallocations < 0 {
		return fmt.Errorf("deallocation count %d, want >= 0: %w", c.Deallocations, ErrInvalidConfiguration)
	}
	return nil
}

// GeneratePhased allocates up to cfg.Allocations fixed-size blocks first-fit,
// then frees a random sample of them, recording one snapshot per completed
// operation. The allocation burst stops at the first attempt that finds no
// fit.
func GeneratePhased(cfg PhasedConfig, rng *rand.Rand) ([]MemoryMap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source: %w", ErrInvalidConfiguration)
	}

	ms := newMemoryState(cfg.MemorySize)
	snapshots := make([]MemoryMap, 0, cfg.Allocations+cfg.Deallocations)

	for i := 0; i < cfg.Allocations; i++ {
		if !ms.allocate(cfg.BlockSize) {
			break
		}
		snapshots = append(snapshots, ms.cells.Clone())
	}

	frees := cfg.Deallocations
	if frees > len(ms.live) {
		frees = len(ms.live)
	}
	for i := 0; i < frees; i++ {
		ms.deallocate(rng.Intn(len(ms.live)))
		snapshots = append(snapshots, ms.cells.Clone())
	}

	return snapshots, nil
}
