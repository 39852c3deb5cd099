package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates the root command for the monitordemo application
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitordemo",
		Short: "Drive a sample component through a component monitor",
		Long: `monitordemo builds a component and calls its methods while an
EventLogger, Prometheus metrics and a CloudEvents observer report each step.`,
		Version: PrintVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewRunCommand())

	return cmd
}

// PrintVersion prints version information
func PrintVersion() string {
	return fmt.Sprintf("%s (commit: %s, built on: %s)", Version, Commit, Date)
}
