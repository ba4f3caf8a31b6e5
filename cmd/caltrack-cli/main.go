// Package main is the entry point for the caltrack-cli application.
// It registers the calibration, maintenance and report commands on the root
// command and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/cmd/caltrack-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "caltrack-cli",
		Short: "Calibration and NCR tracking CLI tool",
		Long: `caltrack-cli computes calibration due dates offline and runs maintenance
tasks against the caltrack database: schema migration, the expiry sweep,
account bootstrap and NCR / instrument report exports.

Database commands read the same configuration as the REST service. Pass
--config or set CONFIG_PATH; CALTRACK_* environment variables override it.`,
	}
	rootCmd.PersistentFlags().StringP("config", "c", os.Getenv("CONFIG_PATH"), "Path to the YAML configuration")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitCalibrationCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize calibration commands: %w", err)
	}

	if err := commands.InitMaintenanceCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize maintenance commands: %w", err)
	}

	if err := commands.InitReportCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize report commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
