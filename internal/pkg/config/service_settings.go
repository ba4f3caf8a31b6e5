package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures bearer token issuing and verification
type AuthSettings struct {
	Enabled  bool          `mapstructure:"enabled"`
	Secret   string        `mapstructure:"secret" validate:"required_if=Enabled true,omitempty,min=32"`
	Issuer   string        `mapstructure:"issuer"`
	TokenTTL time.Duration `mapstructure:"token_ttl" validate:"min=0"`
}

// SchedulerSettings configures the calibration expiry sweep
type SchedulerSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Spec    string `mapstructure:"spec" validate:"required_if=Enabled true"`
}

// BrokerSettings configures the RabbitMQ alert publisher
type BrokerSettings struct {
	Enabled    bool   `mapstructure:"enabled"`
	URL        string `mapstructure:"url" validate:"required_if=Enabled true,omitempty,url"`
	Exchange   string `mapstructure:"exchange"`
	RoutingKey string `mapstructure:"routing_key" validate:"required_if=Enabled true"`
}

func validateSection(name string, s interface{}) error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for %s: %w", name, err)
	}

	return nil
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	return validateSection("AuthSettings", s)
}

// Validate checks that all fields in SchedulerSettings are valid
func (s *SchedulerSettings) Validate() error {
	return validateSection("SchedulerSettings", s)
}

// Validate checks that all fields in BrokerSettings are valid
func (s *BrokerSettings) Validate() error {
	return validateSection("BrokerSettings", s)
}
