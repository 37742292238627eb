package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/rajvardhan161/os-lab/sim"
)

var (
	fragSeed     int64 // Seed for event generation
	fragMemory   int   // Total memory units
	fragEvents   int   // Number of random events
	fragMinBlock int   // Smallest random block size
	fragMaxBlock int   // Largest random block size
	fragSteps    bool  // Print every snapshot, not just the final map

	fragPhased   bool // Use the fixed-size burst-then-free generator
	fragBlock    int  // Block size in phased mode
	fragAllocs   int  // Allocations in phased mode
	fragDeallocs int  // Deallocations in phased mode

	fragScenario string // Named preset from the scenario file
	fragScenFile string // Scenario preset file path
)

// fragCmd animates memory fragmentation under random allocation and
// deallocation.
var fragCmd = &cobra.Command{
	Use:   "frag",
	Short: "Run a memory-fragmentation simulation",
	Long: "Replay random first-fit allocations and deallocations over a fixed-size\n" +
		"memory map and print the resulting layout, '.' for free cells and one\n" +
		"letter per allocated block.",
	Run: func(cmd *cobra.Command, args []string) {
		if fragScenario != "" {
			scenario, err := GetFragScenario(fragScenFile, fragScenario)
			if err != nil {
				logrus.Fatalf("Failed to load scenario: %v", err)
			}
			fragMemory = scenario.Memory
			fragEvents = scenario.Events
			fragMinBlock = scenario.MinBlockSize
			fragMaxBlock = scenario.MaxBlockSize
		}

		rng := sim.NewPartitionedRNG(sim.NewReplayKey(fragSeed)).ForSubsystem(sim.SubsystemFragmentation)

		var snapshots []sim.MemoryMap
		var err error
		if fragPhased {
			snapshots, err = sim.GeneratePhased(sim.PhasedConfig{
				MemorySize:    fragMemory,
				BlockSize:     fragBlock,
				Allocations:   fragAllocs,
				Deallocations: fragDeallocs,
			}, rng)
		} else {
			snapshots, err = sim.GenerateTimeline(sim.FragmentationConfig{
				MemorySize:   fragMemory,
				Events:       fragEvents,
				MinBlockSize: fragMinBlock,
				MaxBlockSize: fragMaxBlock,
			}, rng)
		}
		if err != nil {
			logrus.Fatalf("Fragmentation run failed: %v", err)
		}

		if fragSteps {
			RenderMemoryTimeline(os.Stdout, snapshots)
		} else if len(snapshots) > 0 {
			RenderMemoryMap(os.Stdout, snapshots[len(snapshots)-1])
		}
		if len(snapshots) > 0 {
			sim.ComputeFragStats(snapshots[len(snapshots)-1]).Print()
		}
	},
}

func init() {
	fragCmd.Flags().Int64Var(&fragSeed, "seed", 42, "Seed for random event generation")
	fragCmd.Flags().IntVar(&fragMemory, "memory", 200, "Total memory size (units)")
	fragCmd.Flags().IntVar(&fragEvents, "events", 60, "Number of allocation/deallocation events")
	fragCmd.Flags().IntVar(&fragMinBlock, "min-block", 5, "Smallest random block size")
	fragCmd.Flags().IntVar(&fragMaxBlock, "max-block", 50, "Largest random block size")
	fragCmd.Flags().BoolVar(&fragSteps, "steps", false, "Print the memory map after every event")

	fragCmd.Flags().BoolVar(&fragPhased, "phased", false, "Allocate a fixed-size burst, then free a random sample")
	fragCmd.Flags().IntVar(&fragBlock, "block-size", 20, "Block size in phased mode")
	fragCmd.Flags().IntVar(&fragAllocs, "allocs", 8, "Allocations in phased mode")
	fragCmd.Flags().IntVar(&fragDeallocs, "deallocs", 3, "Deallocations in phased mode")

	fragCmd.Flags().StringVar(&fragScenario, "scenario", "", "Named preset overriding the random-event parameters")
	fragCmd.Flags().StringVar(&fragScenFile, "scenario-file", "examples/scenarios.yaml", "Scenario preset file")

	rootCmd.AddCommand(fragCmd)
}
