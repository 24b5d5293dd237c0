package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "vitrine/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig          `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig        `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig          `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig            `mapstructure:"auth"`
	Redis     sharedConfig.RedisConfig           `mapstructure:"redis"`
	Storage   sharedConfig.StorageConfig         `mapstructure:"storage"`
	Preview   sharedConfig.PreviewConfig         `mapstructure:"preview"`
	RateLimit sharedConfig.UploadRateLimitConfig `mapstructure:"rate_limit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("VITRINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults plus env vars carry a dev setup.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")

	// Database defaults
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "vitrine_dev")
	viper.SetDefault("database.path", "vitrine.db")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_minutes", 15)

	// Redis defaults
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Storage defaults
	viper.SetDefault("storage.root", "uploads")
	viper.SetDefault("storage.max_upload_bytes", 500*1024*1024)
	viper.SetDefault("storage.max_thumbnail_bytes", 10*1024*1024)
	viper.SetDefault("storage.thumbnail_max_width", 640)

	// Preview defaults
	viper.SetDefault("preview.base_url", "http://localhost:8080/custom-theme")

	// Upload rate limit defaults
	viper.SetDefault("rate_limit.requests_per_minute", 6)
	viper.SetDefault("rate_limit.requests_per_hour", 60)
	viper.SetDefault("rate_limit.requests_per_day", 300)
}
