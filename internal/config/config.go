package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Timeslot TimeslotConfig `mapstructure:"timeslot" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// TimeslotConfig controls how delivery surfaces read and render time slots.
type TimeslotConfig struct {
	// DefaultLanguage labels values when a request names no language.
	DefaultLanguage string `mapstructure:"default_language" validate:"required,oneof=en fr es"`

	// ValidateInput rejects values that are well shaped but not canonical,
	// such as "2017-13".
	ValidateInput bool `mapstructure:"validate_input"`

	// MaxChildren caps the number of descendants returned in one response.
	MaxChildren int `mapstructure:"max_children" validate:"gt=0"`
}
