package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/app"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/auth"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/notify"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/persistence"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MaintenanceCommandHandler runs database maintenance tasks.
type MaintenanceCommandHandler struct {
	logger logger.Logger
}

// NewMaintenanceCommandHandler initializes and returns a MaintenanceCommandHandler
func NewMaintenanceCommandHandler() (*MaintenanceCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MaintenanceCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd creates or updates the database schema
func (commandHandler *MaintenanceCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) {
	s, err := openStore(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error("could not open database", "error", err)
		return
	}
	defer s.close()

	if err := persistence.Migrate(s.db); err != nil {
		commandHandler.logger.Error("migration failed", "error", err)
		return
	}
	commandHandler.logger.Info("Database schema is up to date", "type", s.cfg.Database.Type)
}

// SweepCmd publishes alerts for expired and near expiry equipment once
func (commandHandler *MaintenanceCommandHandler) SweepCmd(cmd *cobra.Command, _ []string) {
	s, err := openStore(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error("could not open database", "error", err)
		return
	}
	defer s.close()

	var notifier monitoring.Notifier
	if s.cfg.Broker.Enabled {
		notifier, err = notify.NewAMQPNotifier(&s.cfg.Broker, commandHandler.logger)
		if err != nil {
			commandHandler.logger.Error("could not connect to broker", "error", err)
			return
		}
	} else {
		notifier = notify.NewLogNotifier(commandHandler.logger)
	}
	defer notifier.Close()

	monitoringService, err := app.NewMonitoringService(s.repos.Equipment, notifier, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error("could not create monitoring service", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	result, err := monitoringService.Sweep(ctx, calibration.Now())
	if err != nil {
		commandHandler.logger.Error("sweep failed", "error", err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "checked=%d published=%d failed=%d\n", result.Checked, result.Published, result.Failed)
}

// CreateUserCmd creates an account, typically the first admin
func (commandHandler *MaintenanceCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) {
	request := &users.CreateUserRequest{}
	var err error
	if request.Username, err = cmd.Flags().GetString("username"); err != nil {
		commandHandler.logger.Error("invalid username flag", "error", err)
		return
	}
	if request.Password, err = cmd.Flags().GetString("password"); err != nil {
		commandHandler.logger.Error("invalid password flag", "error", err)
		return
	}
	if request.Role, err = cmd.Flags().GetString("role"); err != nil {
		commandHandler.logger.Error("invalid role flag", "error", err)
		return
	}
	if request.FullName, err = cmd.Flags().GetString("full-name"); err != nil {
		commandHandler.logger.Error("invalid full-name flag", "error", err)
		return
	}

	s, err := openStore(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error("could not open database", "error", err)
		return
	}
	defer s.close()

	userService, err := app.NewUserService(s.repos.Users, auth.BcryptHasher{}, nil, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error("could not create user service", "error", err)
		return
	}

	user, err := userService.Create(cmd.Context(), request)
	if err != nil {
		commandHandler.logger.Error("could not create user", "username", request.Username, "error", err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), user.ID)
}

// InitMaintenanceCommands registers the database maintenance commands
func InitMaintenanceCommands(rootCmd *cobra.Command) error {
	handler, err := NewMaintenanceCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create maintenance command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run:   handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Publish alerts for expired and near expiry equipment",
		Run:   handler.SweepCmd,
	}
	rootCmd.AddCommand(sweepCmd)

	var createUserCmd = &cobra.Command{
		Use:   "create-user",
		Short: "Create an account",
		Run:   handler.CreateUserCmd,
	}
	createUserCmd.Flags().StringP("username", "", "", "Login name")
	createUserCmd.Flags().StringP("password", "", "", "Password (8 to 72 characters)")
	createUserCmd.Flags().StringP("role", "", users.RoleAdmin, "admin, operator or viewer")
	createUserCmd.Flags().StringP("full-name", "", "", "Display name")
	rootCmd.AddCommand(createUserCmd)

	return nil
}
