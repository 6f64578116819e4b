// Package main is the entry point for the career-caddy-cli application.
// It initializes the root command and registers the administrative
// sub-commands (migrations, accounts, API keys, resume ingestion), then
// executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/overcast-software/career-caddy-api/cmd/career-caddy-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "career-caddy-cli",
		Short: "Administrative CLI for the career caddy API",
		Long: `career-caddy-cli is a command-line tool for operating a career caddy deployment.
It applies database migrations, creates user accounts and API keys, and
ingests resume files from disk.

Configuration is read from the file given with --config (or the CONFIG_PATH
environment variable), with CC_-prefixed environment variables taking
precedence.`,
	}
	rootCmd.PersistentFlags().StringP("config", "", "", "Path to the YAML configuration file")

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
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitAccountCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize account commands: %w", err)
	}

	if err := commands.InitResumeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize resume commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
