package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CALTRACK_DATABASE_DSN
const EnvPrefix = "CALTRACK"

// RestConfig is the full configuration of the REST service
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Storage   StorageSettings   `mapstructure:"storage"`
	Auth      AuthSettings      `mapstructure:"auth"`
	Scheduler SchedulerSettings `mapstructure:"scheduler"`
	Broker    BrokerSettings    `mapstructure:"broker"`

	// TimeZone is an IANA name or "Local"; calendar days and report months are taken in it
	TimeZone string `mapstructure:"time_zone"`
}

// Validate validates every section of the configuration
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}

	return errors.Join(
		c.validateTimeZone(),
		c.Logger.Validate(),
		c.Database.Validate(),
		c.Storage.Validate(),
		c.Auth.Validate(),
		c.Scheduler.Validate(),
		c.Broker.Validate(),
	)
}

// Location resolves TimeZone
func (c *RestConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *RestConfig) validateTimeZone() error {
	_, err := c.Location()
	return err
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("time_zone", "Local")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.format", LogFormatText)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "caltrack.db")
	v.SetDefault("database.name", "")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("storage.backend", LocalStorageBackend)
	v.SetDefault("storage.root", "public/uploads")
	v.SetDefault("storage.connection_string", "")
	v.SetDefault("storage.container_name", "")
	v.SetDefault("storage.max_upload_size_mb", 10)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.issuer", "caltrack")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.spec", "@daily")
	v.SetDefault("broker.enabled", false)
	v.SetDefault("broker.url", "")
	v.SetDefault("broker.exchange", "caltrack")
	v.SetDefault("broker.routing_key", "calibration.alerts")
}

// InitializeRestConfig loads the configuration from a YAML file, a .env file in the
// working directory and CALTRACK_* environment variables, in increasing precedence.
// An empty path skips the YAML file and relies on defaults and the environment.
func InitializeRestConfig(path string) (*RestConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
