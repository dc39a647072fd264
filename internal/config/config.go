package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                        validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"             validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"             validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes"  validate:"gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string       `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int          `mapstructure:"token_lifetime_minutes" validate:"gt=0,lte=1440"`
	Argon2               Argon2Config `mapstructure:"argon2"`
}

// Argon2Config tunes the Argon2id password hash.
type Argon2Config struct {
	Time      uint32 `mapstructure:"time"       validate:"gt=0"`
	MemoryKiB uint32 `mapstructure:"memory_kib" validate:"gt=0"`
	Threads   uint8  `mapstructure:"threads"    validate:"gt=0"`
}
