package config

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Content ContentConfig `mapstructure:"content"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// ContentConfig says where the knowledge base is read from.
type ContentConfig struct {
	// Dir is a directory of collections. Empty means the embedded seed library.
	Dir string `mapstructure:"dir" validate:"omitempty,dir"`
	// FailOnLint makes one-way symmetric links a startup error rather than a warning.
	FailOnLint bool `mapstructure:"fail_on_lint"`
}
