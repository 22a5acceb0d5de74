package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauro3422/molverify/internal/chem"
	"github.com/mauro3422/molverify/internal/config"
	"github.com/mauro3422/molverify/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "molverify",
		Short: "Offline verification suite for the molecular bonding engine",
		Long: `molverify validates artifacts of the molecular bonding engine.

It reconstructs the bond graph from a session log and flags structurally
impossible valence configurations, and re-runs the engine's bond force
model in isolation to certify that bonded atoms settle at a visually
non-overlapping separation.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output reports as JSON (for tooling consumption)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file overriding the engine defaults")
	rootCmd.PersistentFlags().String("log-level", "", "Log verbosity: info, debug, or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuditCmd(),
		newPhysicsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration, validates it against the element table, and
// builds the logger shared by every subcommand.
func setup(cmd *cobra.Command) (*config.Config, chem.Table, *slog.Logger, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	levelFlag, _ := cmd.Flags().GetString("log-level")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if levelFlag != "" {
		cfg.Logging.Level = levelFlag
	}

	table := chem.DefaultTable()
	if err := cfg.Validate(table); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	return cfg, table, logger, nil
}
