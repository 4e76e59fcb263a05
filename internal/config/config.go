package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int
	Host string
}

// StorageConfig holds S3-compatible blob storage settings for QR images
type StorageConfig struct {
	Bucket    string
	Region    string
	Endpoint  string // optional, for S3-compatible providers
	AccessKey string
	SecretKey string
}

// TwilioConfig holds SMS provider credentials
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// SMTPConfig holds email provider credentials
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Config is the full application configuration
type Config struct {
	Server      ServerConfig
	DatabaseURL string
	SiteURL     string // base URL embedded in QR codes, e.g. https://safeqr.example.com
	JWTSecret   string
	JWTIssuer   string
	Storage     StorageConfig
	Twilio      TwilioConfig
	SMTP        SMTPConfig
	GeocodeURL  string
	LogLevel    string
	Environment string
}

// LoadOptions controls how configuration is loaded
type LoadOptions struct {
	EnvFile string
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SITE_URL", "http://localhost:8080")
	v.SetDefault("JWT_ISSUER", "safeqr")
	v.SetDefault("STORAGE_BUCKET", "qr")
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("GEOCODE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENVIRONMENT", "production")

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	databaseURL := v.GetString("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	jwtSecret := v.GetString("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
		},
		DatabaseURL: databaseURL,
		SiteURL:     strings.TrimRight(v.GetString("SITE_URL"), "/"),
		JWTSecret:   jwtSecret,
		JWTIssuer:   v.GetString("JWT_ISSUER"),
		Storage: StorageConfig{
			Bucket:    v.GetString("STORAGE_BUCKET"),
			Region:    v.GetString("STORAGE_REGION"),
			Endpoint:  v.GetString("STORAGE_ENDPOINT"),
			AccessKey: v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey: v.GetString("STORAGE_SECRET_KEY"),
		},
		Twilio: TwilioConfig{
			AccountSID: v.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:  v.GetString("TWILIO_AUTH_TOKEN"),
			FromNumber: v.GetString("TWILIO_FROM_NUMBER"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
		GeocodeURL:  v.GetString("GEOCODE_URL"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Environment: v.GetString("ENVIRONMENT"),
	}

	return config, nil
}

// IsDevelopment returns true when running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
