package commands

import (
	"fmt"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/persistence"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		Format:   config.LogFormatText,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// store is an open database with its repositories
type store struct {
	cfg   *config.RestConfig
	db    *gorm.DB
	repos *persistence.Repositories
}

// openStore loads the configuration named by the --config flag and connects to its database
func openStore(cmd *cobra.Command, log logger.Logger) (*store, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	calibration.SetLocation(loc)

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	repos, err := persistence.NewRepositories(db, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}

	return &store{cfg: cfg, db: db, repos: repos}, nil
}

func (s *store) close() {
	_ = persistence.CloseDB(s.db)
}
