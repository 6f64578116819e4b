package commands

import (
	"fmt"
	"strings"

	"github.com/overcast-software/career-caddy-api/internal/app"
	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/infrastructure/persistence"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// AccountCommandHandler encapsulates logic for managing users and API keys via CLI.
type AccountCommandHandler struct {
	logger logger.Logger
}

// NewAccountCommandHandler initializes and returns an AccountCommandHandler instance
// with a configured logger.
func NewAccountCommandHandler() (*AccountCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AccountCommandHandler{
		logger: loggerInstance,
	}, nil
}

func (commandHandler *AccountCommandHandler) accountService(db *gorm.DB) (accounts.AccountService, error) {
	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	return app.NewAccountService(userRepo, commandHandler.logger)
}

func (commandHandler *AccountCommandHandler) apiKeyService(db *gorm.DB) (accounts.APIKeyService, error) {
	apiKeyRepo, err := persistence.NewGormAPIKeyRepository(db, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create API key repository: %w", err)
	}

	return app.NewAPIKeyService(apiKeyRepo, commandHandler.logger)
}

// CreateUserCmd creates a user account with a hashed password
func (commandHandler *AccountCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		commandHandler.logger.Error("invalid email flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}

	db, _, err := openDatabase(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	service, err := commandHandler.accountService(db)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	user := &accounts.User{Name: name, Email: email}
	if err := service.CreateUser(cmd.Context(), user, password); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("created user with id ", user.ID)
}

// CreateAPIKeyCmd issues an API key and prints the plain key once
func (commandHandler *AccountCommandHandler) CreateAPIKeyCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	userID, err := cmd.Flags().GetUint("user-id")
	if err != nil {
		commandHandler.logger.Error("invalid user-id flag ", err)
		return
	}
	expiresDays, err := cmd.Flags().GetInt("expires-days")
	if err != nil {
		commandHandler.logger.Error("invalid expires-days flag ", err)
		return
	}
	scopesValue, err := cmd.Flags().GetString("scopes")
	if err != nil {
		commandHandler.logger.Error("invalid scopes flag ", err)
		return
	}

	var scopes []string
	if scopesValue != "" {
		scopes = strings.Split(scopesValue, ",")
	}

	var expiry *int
	if expiresDays > 0 {
		expiry = &expiresDays
	}

	db, _, err := openDatabase(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	service, err := commandHandler.apiKeyService(db)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key, plainKey, err := service.Issue(cmd.Context(), name, userID, expiry, scopes)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("created API key with id ", key.ID)
	// The plain key is only recoverable here; the database stores a hash.
	fmt.Println(plainKey)
}

// InitAccountCommands registers user and API key commands
func InitAccountCommands(rootCmd *cobra.Command) error {
	handler, err := NewAccountCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create account command handler %w", err)
	}

	var createUserCmd = &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account",
		Run:   handler.CreateUserCmd,
	}
	createUserCmd.Flags().StringP("name", "", "", "Display name of the user")
	createUserCmd.Flags().StringP("email", "", "", "Email address used for token authentication")
	createUserCmd.Flags().StringP("password", "", "", "Password for the account")
	rootCmd.AddCommand(createUserCmd)

	var createAPIKeyCmd = &cobra.Command{
		Use:   "create-api-key",
		Short: "Issue an API key for a user",
		Run:   handler.CreateAPIKeyCmd,
	}
	createAPIKeyCmd.Flags().StringP("name", "", "", "Label for the API key")
	createAPIKeyCmd.Flags().UintP("user-id", "", 0, "ID of the user the key belongs to")
	createAPIKeyCmd.Flags().IntP("expires-days", "", 0, "Days until the key expires (0 means no expiry)")
	createAPIKeyCmd.Flags().StringP("scopes", "", "", "Comma-separated scopes (empty grants all)")
	rootCmd.AddCommand(createAPIKeyCmd)

	return nil
}
