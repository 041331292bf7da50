// Package cmd implements the codescope command-line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"codescope/config"
	"codescope/internal/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "codescope",
	Short: "Static analysis of source files with optional AI insights",
	Long: `Codescope analyzes source files and directories and produces structured
diagnostic reports: language identification, imports, functions, syntax
validity, complexity metrics, and security findings. An optional local
language model adds free-text insights, suggestions, and documentation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadConfig(configPath); err != nil {
			return err
		}
		logging.InitLogger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: ./config.yaml if present)")
}

func Execute() error {
	return rootCmd.Execute()
}
