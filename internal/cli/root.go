package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/ecodash/internal/config"
	"github.com/rshade/ecodash/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the ecodash CLI.
// It resolves the project directory, wires up logging and tracing, and
// registers the footprint, challenges, events, products, profile,
// dashboard and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:          "ecodash",
		Short:        "Sustainability dashboard for the terminal",
		Long:         "ecodash: estimate your carbon footprint, find eco challenges, local events and sustainable products",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			resolveProjectDir(cmd)
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("plain", false, "plain text table output without styling")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().Bool("color", false, "force styled, colored output even when stdout is not a terminal")
	cmd.PersistentFlags().String("project-dir", "",
		"project directory holding a .ecodash/config.yaml overlay (default: nearest ancestor with .ecodash)")

	cmd.AddCommand(
		NewFootprintCmd(),
		newChallengesCmd(),
		newEventsCmd(),
		newProductsCmd(),
		NewProfileCmd(),
		NewDashboardCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// resolveProjectDir records the project overlay directory before anything
// reads the global config.
func resolveProjectDir(cmd *cobra.Command) {
	flagValue, _ := cmd.Flags().GetString("project-dir")
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	config.SetResolvedProjectDir(config.ResolveProjectDir(cmd.Context(), flagValue, cwd))
}

const rootCmdExample = `  # Estimate your weekly carbon footprint
  ecodash footprint

  # Try a what-if scenario
  ecodash footprint --set carMiles=60 --adjust flightHours=-2

  # Edit the calculator interactively
  ecodash footprint --interactive

  # Find easy food challenges
  ecodash challenges list --category food --search meat

  # Community events as JSON
  ecodash events list --output json

  # Browse the marketplace by eco-score
  ecodash products list --sort eco-score

  # Everything at a glance
  ecodash dashboard`
