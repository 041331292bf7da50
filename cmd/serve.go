package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"codescope/config"
	"codescope/internal/llm"
	"codescope/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		var generator llm.Generator
		client, err := llm.NewOllamaClient()
		if err != nil {
			logrus.Warnf("Language model unavailable, AI fields will be degraded: %v", err)
		} else {
			generator = client
		}

		port := servePort
		if port == 0 {
			port = config.AppConfig.Server.Port
		}

		return server.New(generator).ListenAndServe(port)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (default: config server.port)")
	rootCmd.AddCommand(serveCmd)
}
