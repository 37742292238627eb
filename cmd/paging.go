package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/rajvardhan161/os-lab/sim"
)

var (
	pagingRefs      string // Comma-separated page reference string
	pagingFrames    int    // Number of frames in the frame set
	pagingAlgorithm string // Eviction policy name
	pagingScenario  string // Named preset from the scenario file
	pagingScenFile  string // Scenario preset file path
)

// pagingCmd replays a reference string against a bounded frame set and
// prints the step table.
var pagingCmd = &cobra.Command{
	Use:   "paging",
	Short: "Run a page-replacement simulation",
	Long: "Replay a page reference string against a fixed number of frames under LRU\n" +
		"or Optimal eviction and print the step-by-step frame table with fault markers.",
	Run: func(cmd *cobra.Command, args []string) {
		if pagingScenario != "" {
			scenario, err := GetPagingScenario(pagingScenFile, pagingScenario)
			if err != nil {
				logrus.Fatalf("Failed to load scenario: %v", err)
			}
			pagingRefs = scenario.Refs
			pagingFrames = scenario.Frames
			pagingAlgorithm = scenario.Algorithm
		}

		references, err := ParseReferenceString(pagingRefs)
		if err != nil {
			logrus.Fatalf("Invalid reference string: %v", err)
		}
		algorithm, err := sim.ParseAlgorithm(pagingAlgorithm)
		if err != nil {
			logrus.Fatalf("Invalid algorithm: %v", err)
		}

		logrus.Infof("Simulating %d references over %d frames with %s", len(references), pagingFrames, algorithm)

		timeline, err := sim.Simulate(references, pagingFrames, algorithm)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		RenderTimeline(os.Stdout, timeline, pagingFrames)
		sim.Summarize(algorithm, timeline).Print()
	},
}

func init() {
	pagingCmd.Flags().StringVar(&pagingRefs, "refs", "1,2,3,2,4,1,5,2,1,2,3,4,5", "Comma-separated page reference string")
	pagingCmd.Flags().IntVar(&pagingFrames, "frames", 3, "Number of frames")
	pagingCmd.Flags().StringVar(&pagingAlgorithm, "algorithm", "lru", "Replacement algorithm (lru, optimal)")
	pagingCmd.Flags().StringVar(&pagingScenario, "scenario", "", "Named preset overriding refs/frames/algorithm")
	pagingCmd.Flags().StringVar(&pagingScenFile, "scenario-file", "examples/scenarios.yaml", "Scenario preset file")

	rootCmd.AddCommand(pagingCmd)
}
