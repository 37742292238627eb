package sim

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestGenerateTimeline_OneSnapshotPerEvent(t *testing.T) {
	cfg := FragmentationConfig{MemorySize: 64, Events: 40}
	snapshots, err := GenerateTimeline(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("GenerateTimeline returned error: %v", err)
	}
	if len(snapshots) != cfg.Events {
		t.Errorf("got %d snapshots, want %d", len(snapshots), cfg.Events)
	}
	for i, snap := range snapshots {
		if len(snap) != cfg.MemorySize {
			t.Errorf("snapshot %d: %d cells, want %d", i, len(snap), cfg.MemorySize)
		}
	}
}

func TestGenerateTimeline_OwnershipInvariants(t *testing.T) {
	// GIVEN a long random timeline
	cfg := FragmentationConfig{MemorySize: 100, Events: 300, MinBlockSize: 3, MaxBlockSize: 20}
	snapshots, err := GenerateTimeline(cfg, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("GenerateTimeline returned error: %v", err)
	}

	for i, snap := range snapshots {
		// THEN allocated cells never exceed memory size
		if snap.AllocatedCells() > cfg.MemorySize {
			t.Errorf("snapshot %d: %d allocated cells exceed memory size", i, snap.AllocatedCells())
		}

		// THEN each block id owns exactly one contiguous run
		runs := make(map[BlockID]int)
		var prev BlockID = BlockFree
		for _, c := range snap {
			if c != BlockFree && c != prev {
				runs[c]++
			}
			prev = c
		}
		for id, n := range runs {
			if n != 1 {
				t.Errorf("snapshot %d: block %d split across %d runs", i, id, n)
			}
		}
	}

	// THEN once owned, a cell's owner only ever changes by being freed
	for i := 1; i < len(snapshots); i++ {
		for cell, owner := range snapshots[i-1] {
			now := snapshots[i][cell]
			if owner != BlockFree && now != BlockFree && now != owner {
				t.Errorf("snapshot %d cell %d: owner %d overwritten by %d", i, cell, owner, now)
			}
		}
	}
}

func TestGenerateTimeline_DeterministicUnderSeed(t *testing.T) {
	cfg := FragmentationConfig{MemorySize: 80, Events: 120}

	key := NewReplayKey(7)
	first, err := GenerateTimeline(cfg, NewPartitionedRNG(key).ForSubsystem(SubsystemFragmentation))
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := GenerateTimeline(cfg, NewPartitionedRNG(key).ForSubsystem(SubsystemFragmentation))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("timelines differ under the same replay key")
	}
}

func TestGenerateTimeline_InvalidConfigs(t *testing.T) {
	tests := []struct {
		name string
		cfg  FragmentationConfig
	}{
		{"zero memory", FragmentationConfig{MemorySize: 0, Events: 10}},
		{"zero events", FragmentationConfig{MemorySize: 64, Events: 0}},
		{"inverted block bounds", FragmentationConfig{MemorySize: 64, Events: 10, MinBlockSize: 9, MaxBlockSize: 4}},
		{"block larger than memory", FragmentationConfig{MemorySize: 16, Events: 10, MinBlockSize: 1, MaxBlockSize: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshots, err := GenerateTimeline(tt.cfg, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("got err %v, want ErrInvalidConfiguration", err)
			}
			if snapshots != nil {
				t.Errorf("got snapshots on error, want none")
			}
		})
	}
}

func TestGenerateTimeline_NilRNG_InvalidConfiguration(t *testing.T) {
	_, err := GenerateTimeline(FragmentationConfig{MemorySize: 64, Events: 10}, nil)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("got err %v, want ErrInvalidConfiguration", err)
	}
}

func TestFirstFit_PicksLeftmostSufficientRun(t *testing.T) {
	// GIVEN memory shaped [free(2) | 1 | free(4) | 2 | free(3)]
	m := MemoryMap{0, 0, 1, 0, 0, 0, 0, 2, 0, 0, 0}

	tests := []struct {
		name string
		size int
		want int
	}{
		{"fits the leading run", 2, 0},
		{"skips too-small leading run", 3, 3},
		{"only the middle run fits", 4, 3},
		{"nothing fits", 5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.firstFit(tt.size); got != tt.want {
				t.Errorf("firstFit(%d) = %d, want %d", tt.size, got, tt.want)
			}
		})
	}
}

func TestMemoryState_AllocateNeverOverwrites(t *testing.T) {
	ms := newMemoryState(10)
	if !ms.allocate(4) {
		t.Fatal("first allocation failed")
	}
	if !ms.allocate(6) {
		t.Fatal("second allocation failed")
	}
	// Memory is now full; a further allocation must be refused, not clobber
	if ms.allocate(1) {
		t.Errorf("allocation succeeded with no free cells")
	}
	if got := ms.cells.AllocatedCells(); got != 10 {
		t.Errorf("allocated cells: got %d, want 10", got)
	}
}

func TestMemoryState_DeallocateFreesWholeExtent(t *testing.T) {
	ms := newMemoryState(10)
	ms.allocate(4)
	ms.allocate(3)

	// Free the first block (live index 0)
	ms.deallocate(0)

	want := MemoryMap{0, 0, 0, 0, 2, 2, 2, 0, 0, 0}
	if !reflect.DeepEqual(ms.cells, want) {
		t.Errorf("cells after deallocate: got %v, want %v", ms.cells, want)
	}
	if len(ms.live) != 1 || ms.live[0] != 2 {
		t.Errorf("live blocks: got %v, want [2]", ms.live)
	}
}

func TestGeneratePhased_BurstThenFrees(t *testing.T) {
	// GIVEN memory for exactly three 5-cell blocks and a request for four
	cfg := PhasedConfig{MemorySize: 15, BlockSize: 5, Allocations: 4, Deallocations: 2}
	snapshots, err := GeneratePhased(cfg, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("GeneratePhased returned error: %v", err)
	}

	// THEN the burst stops at the unfittable fourth allocation: 3 alloc
	// snapshots plus 2 deallocation snapshots
	if len(snapshots) != 5 {
		t.Fatalf("got %d snapshots, want 5", len(snapshots))
	}
	if got := snapshots[2].AllocatedCells(); got != 15 {
		t.Errorf("after burst: %d allocated cells, want 15", got)
	}
	if got := snapshots[4].AllocatedCells(); got != 5 {
		t.Errorf("after frees: %d allocated cells, want 5", got)
	}
}

func TestGeneratePhased_InvalidConfig(t *testing.T) {
	_, err := GeneratePhased(PhasedConfig{MemorySize: 10, BlockSize: 0, Allocations: 1}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("got err %v, want ErrInvalidConfiguration", err)
	}
}
