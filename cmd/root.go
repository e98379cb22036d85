// Package cmd implements the swarm-probe command-line interface.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	infraconfig "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/config"
)

// Version is the build version, overridden with -ldflags "-X".
var Version = "1.0.0"

const defaultConfigPath = "config.yml"

// NewRootCommand builds the command tree. Without a subcommand the server
// is started, so the binary can be used directly as a container entrypoint.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "swarm-probe",
		Short:         "Health and connectivity probe for a swarm deployment",
		Long:          `swarm-probe serves health, PostgreSQL, Redis and runtime endpoints used to validate a container stack.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		infraconfig.GetConfigPath(defaultConfigPath),
		"config file (a missing file is not an error)",
	)

	rootCmd.AddCommand(newServeCommand(&configPath))
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
