package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps each configuration key to the environment variables that
// may set it. The first variable that is set wins.
var envBindings = map[string][]string{
	"server.port":                        {"PORT", "SERVER_PORT"},
	"server.log_level":                   {"LOG_LEVEL", "SERVER_LOG_LEVEL"},
	"server.shutdown_timeout_seconds":    {"SERVER_SHUTDOWN_TIMEOUT_SECONDS"},
	"database.url":                       {"DATABASE_URL"},
	"database.max_open_conns":            {"DATABASE_MAX_OPEN_CONNS"},
	"database.max_idle_conns":            {"DATABASE_MAX_IDLE_CONNS"},
	"database.conn_max_lifetime_minutes": {"DATABASE_CONN_MAX_LIFETIME_MINUTES"},
	"auth.jwt_secret":                    {"JWT_SECRET", "AUTH_JWT_SECRET"},
	"auth.token_lifetime_minutes":        {"AUTH_TOKEN_LIFETIME_MINUTES"},
	"auth.argon2.time":                   {"AUTH_ARGON2_TIME"},
	"auth.argon2.memory_kib":             {"AUTH_ARGON2_MEMORY_KIB"},
	"auth.argon2.threads":                {"AUTH_ARGON2_THREADS"},
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory is read first when present; it never
// overrides variables that are already set in the process environment.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3333)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.argon2.time", 3)
	v.SetDefault("auth.argon2.memory_kib", 64*1024)
	v.SetDefault("auth.argon2.threads", 2)
}
