package commands

import (
	"fmt"

	"github.com/overcast-software/career-caddy-api/internal/infrastructure/persistence"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler encapsulates logic for applying database migrations via CLI.
type MigrateCommandHandler struct {
	logger logger.Logger
}

// NewMigrateCommandHandler initializes and returns a MigrateCommandHandler instance
// with a configured logger.
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MigrateCommandHandler{
		logger: loggerInstance,
	}, nil
}

// MigrateCmd applies the full database schema. The error propagates through
// Execute so a failed migration exits non-zero, which init containers rely on.
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	db, _, err := openDatabase(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	if err := persistence.Migrate(db); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	commandHandler.logger.Info("Database migrations completed successfully")
	return nil
}

// InitMigrateCommands registers migration-related commands
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create migrate command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
