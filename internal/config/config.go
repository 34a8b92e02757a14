// Package config loads and validates the demo programs' configuration from
// defaults, an optional config file and STORELAB_-prefixed environment
// variables, with the environment taking precedence.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App       AppConfig       `mapstructure:"app"       validate:"required"`
	Inventory InventoryConfig `mapstructure:"inventory" validate:"required"`
	Grading   GradingConfig   `mapstructure:"grading"   validate:"required"`
}

// AppConfig contains settings shared by every demo program.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// InventoryConfig contains the inventory demo's settings.
type InventoryConfig struct {
	// DataFile is the path of the JSON flat file the inventory demo
	// saves to and loads from. An absent file means an empty store.
	DataFile string `mapstructure:"data_file" validate:"required"`
}

// GradingConfig contains the student-grading demo's settings.
type GradingConfig struct {
	// InputFile is the path of the line-oriented "id,name,score" input.
	InputFile string `mapstructure:"input_file" validate:"required"`
}
