// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/Zharokiecoder/GITEX2/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	// StorageBackendFile selects the whole-snapshot JSON file store.
	StorageBackendFile = "file"
	// StorageBackendMongo selects the MongoDB collection store.
	StorageBackendMongo = "mongo"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	Version        string      `mapstructure:"VERSION"`
	// StaticDir holds the built frontend served for non-API paths.
	StaticDir string `mapstructure:"STATIC_DIR"`
}

// StorageConfig selects and parameterizes the Record Store backend.
type StorageConfig struct {
	// Backend is "file" or "mongo".
	Backend string `mapstructure:"BACKEND"`
	// DataDir is the JSON document directory for the file backend.
	DataDir string `mapstructure:"DATA_DIR"`
	// MongoURI and MongoDatabase configure the mongo backend.
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`
}

// AdminConfig holds the single fixed admin credential pair and the secret
// used to sign the static dashboard token. This is basic access gating, not
// a real authentication model.
type AdminConfig struct {
	Username    string `mapstructure:"USERNAME"`
	Password    string `mapstructure:"PASSWORD"`
	TokenSecret string `mapstructure:"TOKEN_SECRET"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server  ServerConfig  `mapstructure:"SERVER"`
	Storage StorageConfig `mapstructure:"STORAGE"`
	Admin   AdminConfig   `mapstructure:"ADMIN"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("SERVER.STATIC_DIR", "public")
	v.SetDefault("STORAGE.BACKEND", StorageBackendFile)
	v.SetDefault("STORAGE.DATA_DIR", "data")
	v.SetDefault("STORAGE.MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("STORAGE.MONGO_DATABASE", "gitex2")
	v.SetDefault("ADMIN.USERNAME", "admin")
	v.SetDefault("ADMIN.PASSWORD", "gitex2024")
	v.SetDefault("ADMIN.TOKEN_SECRET", "gitex2-dashboard-token")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"SERVER.STATIC_DIR", "STATIC_DIR"},
		// Storage config
		{"STORAGE.BACKEND", "STORAGE_BACKEND"},
		{"STORAGE.DATA_DIR", "DATA_DIR"},
		{"STORAGE.MONGO_URI", "MONGO_URI"},
		{"STORAGE.MONGO_DATABASE", "MONGO_DATABASE"},
		// Admin config
		{"ADMIN.USERNAME", "ADMIN_USERNAME"},
		{"ADMIN.PASSWORD", "ADMIN_PASSWORD"},
		{"ADMIN.TOKEN_SECRET", "ADMIN_TOKEN_SECRET"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"storage_backend", cfg.Storage.Backend,
		"mongo_uri", logger.MaskConnectionString(cfg.Storage.MongoURI),
	)

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Server.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("unknown environment %q", cfg.Server.Environment)
	}

	switch cfg.Storage.Backend {
	case StorageBackendFile:
		if cfg.Storage.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required for the file backend")
		}
	case StorageBackendMongo:
		if cfg.Storage.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the mongo backend")
		}
		if cfg.Storage.MongoDatabase == "" {
			return fmt.Errorf("MONGO_DATABASE is required for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q (expected %q or %q)",
			cfg.Storage.Backend, StorageBackendFile, StorageBackendMongo)
	}

	if cfg.IsProduction() {
		if cfg.Admin.Password == "gitex2024" {
			return fmt.Errorf("ADMIN_PASSWORD must be overridden in production")
		}
		if cfg.Admin.TokenSecret == "gitex2-dashboard-token" {
			return fmt.Errorf("ADMIN_TOKEN_SECRET must be overridden in production")
		}
	}

	return nil
}
