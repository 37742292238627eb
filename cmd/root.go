// Minimal Cobra root; the paging, frag, and serve subcommands live in their
// own files and attach themselves via init().

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string // Log verbosity level, shared by all subcommands

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "os-lab",
	Short: "Educational virtual memory simulator",
	Long: "Replays page-replacement algorithms (LRU, Optimal) over a reference string\n" +
		"and animates memory fragmentation under random allocation, as step tables\n" +
		"and memory maps on the terminal or over HTTP.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
