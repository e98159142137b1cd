package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App    AppConfig
	Logger LoggerConfig
}

// AppConfig holds configuration for the HTTP server and dataset
type AppConfig struct {
	Env                    string `mapstructure:"APP_ENV"`
	Port                   string `mapstructure:"PORT"`
	ImagesDir              string `mapstructure:"IMAGES_DIR"`
	Dataset                string `mapstructure:"DATASET"`
	ShutdownTimeoutSeconds int    `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level          string `mapstructure:"LOG_LEVEL"`
	Format         string `mapstructure:"LOG_FORMAT"`
	OutputPath     string `mapstructure:"LOG_OUTPUT_PATH"`
	EnableSampling bool   `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName    string `mapstructure:"SERVICE_NAME"`
	ServiceVersion string `mapstructure:"SERVICE_VERSION"`
}

// LoadConfig reads configuration from an optional app.env file in path and
// from environment variables. Environment variables win.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app") // Look for app.env
	v.SetConfigType("env")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	// Defaults last so APP_ENV from the file can pick the logger defaults
	setDefaults(v)

	var config Config

	config.App.Env = v.GetString("APP_ENV")
	config.App.Port = v.GetString("PORT")
	config.App.ImagesDir = v.GetString("IMAGES_DIR")
	config.App.Dataset = v.GetString("DATASET")
	config.App.ShutdownTimeoutSeconds = v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")

	config.Logger.Level = v.GetString("LOG_LEVEL")
	config.Logger.Format = v.GetString("LOG_FORMAT")
	config.Logger.OutputPath = v.GetString("LOG_OUTPUT_PATH")
	config.Logger.EnableSampling = v.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = v.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = v.GetString("SERVICE_VERSION")

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("IMAGES_DIR", "images")
	v.SetDefault("DATASET", "default")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	// Logger defaults depend on the environment
	if v.GetString("APP_ENV") == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
		v.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("LOG_FORMAT", "console")
		v.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	v.SetDefault("LOG_OUTPUT_PATH", "stdout")
	v.SetDefault("SERVICE_NAME", "user-directory-service")
	v.SetDefault("SERVICE_VERSION", "1.0.0")
}

// Validate checks that the configuration can start a server
func (c *Config) Validate() error {
	var errs []error

	port, err := strconv.Atoi(c.App.Port)
	if err != nil || port < 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a number between 0 and 65535, got %q", c.App.Port))
	}
	if c.App.ImagesDir == "" {
		errs = append(errs, errors.New("IMAGES_DIR must not be empty"))
	}
	if c.App.Dataset == "" {
		errs = append(errs, errors.New("DATASET must not be empty"))
	}
	if c.App.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive, got %d", c.App.ShutdownTimeoutSeconds))
	}

	return errors.Join(errs...)
}

// Address returns the HTTP listen address
func (c *AppConfig) Address() string {
	return ":" + c.Port
}
