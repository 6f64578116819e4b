package commands

import (
	"fmt"
	"os"

	"github.com/overcast-software/career-caddy-api/internal/app"
	"github.com/overcast-software/career-caddy-api/internal/infrastructure/persistence"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ResumeCommandHandler encapsulates logic for ingesting resume files via CLI.
type ResumeCommandHandler struct {
	logger logger.Logger
}

// NewResumeCommandHandler initializes and returns a ResumeCommandHandler instance
// with a configured logger.
func NewResumeCommandHandler() (*ResumeCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ResumeCommandHandler{
		logger: loggerInstance,
	}, nil
}

// IngestResumeCmd reads a resume file from disk and stores it, deduplicating
// on identical content for the same user
func (commandHandler *ResumeCommandHandler) IngestResumeCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	userID, err := cmd.Flags().GetUint("user-id")
	if err != nil {
		commandHandler.logger.Error("invalid user-id flag ", err)
		return
	}

	content, err := os.ReadFile(inputFilePath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	db, _, err := openDatabase(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	resumeRepo, err := persistence.NewGormResumeRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ingestService, err := app.NewIngestService(resumeRepo, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var owner *uint
	if userID != 0 {
		owner = &userID
	}

	resume, created, err := ingestService.IngestResume(cmd.Context(), owner, string(content), inputFilePath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if created {
		commandHandler.logger.Info("ingested resume with id ", resume.ID)
	} else {
		commandHandler.logger.Info("resume already exists with id ", resume.ID)
	}
}

// InitResumeCommands registers resume ingestion commands
func InitResumeCommands(rootCmd *cobra.Command) error {
	handler, err := NewResumeCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create resume command handler %w", err)
	}

	var ingestResumeCmd = &cobra.Command{
		Use:   "ingest-resume",
		Short: "Ingest a resume file",
		Run:   handler.IngestResumeCmd,
	}
	ingestResumeCmd.Flags().StringP("input-file", "", "", "Path to the resume file")
	ingestResumeCmd.Flags().UintP("user-id", "", 0, "ID of the owning user (0 for anonymous)")
	rootCmd.AddCommand(ingestResumeCmd)

	return nil
}
