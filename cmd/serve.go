package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rajvardhan161/os-lab/server"
)

var servePort int // HTTP listen port

// serveCmd runs the simulation API for browser front ends.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation API over HTTP",
	Long: "Expose both simulations as JSON endpoints (POST /api/paging, POST /api/frag),\n" +
		"retain results in UUID-keyed sessions, and export prometheus metrics on /metrics.",
	Run: func(cmd *cobra.Command, args []string) {
		addr := fmt.Sprintf(":%d", servePort)
		if err := server.New().ListenAndServe(addr); err != nil {
			logrus.Fatalf("Server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP listen port")

	rootCmd.AddCommand(serveCmd)
}
