package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseDriver   string `mapstructure:"DB_DRIVER"`
	SQLitePath       string `mapstructure:"SQLITE_PATH"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes int    `mapstructure:"JWT_TTL_MINUTES"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Search configuration
	DefaultSearchRadiusKm float64 `mapstructure:"SEARCH_DEFAULT_RADIUS_KM"`
	MaxSearchRadiusKm     float64 `mapstructure:"SEARCH_MAX_RADIUS_KM"`
	MaxQueryResults       int     `mapstructure:"MAX_QUERY_RESULTS"`

	// Reference catalog cache lifetime
	CatalogCacheTTLMinutes int `mapstructure:"CATALOG_CACHE_TTL_MINUTES"`

	// Submission limits
	MaxProjectNameLength         int     `mapstructure:"MAX_PROJECT_NAME_LENGTH"`
	MaxBriefDescriptionLength    int     `mapstructure:"MAX_BRIEF_DESCRIPTION_LENGTH"`
	MaxDetailedDescriptionLength int     `mapstructure:"MAX_DETAILED_DESCRIPTION_LENGTH"`
	MaxSuccessFactorsLength      int     `mapstructure:"MAX_SUCCESS_FACTORS_LENGTH"`
	MaxOrganizationNameLength    int     `mapstructure:"MAX_ORGANIZATION_NAME_LENGTH"`
	MaxContactPersonLength       int     `mapstructure:"MAX_CONTACT_PERSON_LENGTH"`
	MaxFundingAmount             float64 `mapstructure:"MAX_FUNDING_AMOUNT"`

	// Notification configuration
	NotifyEnabled   bool   `mapstructure:"NOTIFY_ENABLED"`
	SendGridAPIKey  string `mapstructure:"SENDGRID_API_KEY"`
	NotifyFromEmail string `mapstructure:"NOTIFY_FROM_EMAIL"`
	NotifyFromName  string `mapstructure:"NOTIFY_FROM_NAME"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseDriver == DriverPostgres && config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_DRIVER", DriverSQLite)
	viper.SetDefault("SQLITE_PATH", "data/atlas.sqlite")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "atlas")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL_MINUTES", 60)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8501"})

	// Search defaults
	viper.SetDefault("SEARCH_DEFAULT_RADIUS_KM", 50.0)
	viper.SetDefault("SEARCH_MAX_RADIUS_KM", 500.0)
	viper.SetDefault("MAX_QUERY_RESULTS", 10000)
	viper.SetDefault("CATALOG_CACHE_TTL_MINUTES", 60)

	// Submission limits
	viper.SetDefault("MAX_PROJECT_NAME_LENGTH", 200)
	viper.SetDefault("MAX_BRIEF_DESCRIPTION_LENGTH", 255)
	viper.SetDefault("MAX_DETAILED_DESCRIPTION_LENGTH", 5000)
	viper.SetDefault("MAX_SUCCESS_FACTORS_LENGTH", 2000)
	viper.SetDefault("MAX_ORGANIZATION_NAME_LENGTH", 200)
	viper.SetDefault("MAX_CONTACT_PERSON_LENGTH", 100)
	viper.SetDefault("MAX_FUNDING_AMOUNT", 999999999.99)

	// Notification defaults
	viper.SetDefault("NOTIFY_ENABLED", false)
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("NOTIFY_FROM_EMAIL", "")
	viper.SetDefault("NOTIFY_FROM_NAME", "Urban Project Atlas")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	switch config.DatabaseDriver {
	case DriverSQLite:
		if config.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if config.DatabaseURL == "" {
			return fmt.Errorf("database URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", config.DatabaseDriver)
	}

	if config.MaxSearchRadiusKm <= 0 {
		return fmt.Errorf("SEARCH_MAX_RADIUS_KM must be positive")
	}
	if config.MaxQueryResults <= 0 {
		return fmt.Errorf("MAX_QUERY_RESULTS must be positive")
	}
	if config.NotifyEnabled && (config.SendGridAPIKey == "" || config.NotifyFromEmail == "") {
		return fmt.Errorf("SENDGRID_API_KEY and NOTIFY_FROM_EMAIL are required when NOTIFY_ENABLED is set")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CatalogCacheTTL is how long catalog lookups are served from memory
func (c *Config) CatalogCacheTTL() time.Duration {
	if c.CatalogCacheTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.CatalogCacheTTLMinutes) * time.Minute
}

// Limits returns the submission limits as a value type for the service layer
func (c *Config) Limits() Limits {
	return Limits{
		MaxProjectNameLength:         c.MaxProjectNameLength,
		MaxBriefDescriptionLength:    c.MaxBriefDescriptionLength,
		MaxDetailedDescriptionLength: c.MaxDetailedDescriptionLength,
		MaxSuccessFactorsLength:      c.MaxSuccessFactorsLength,
		MaxOrganizationNameLength:    c.MaxOrganizationNameLength,
		MaxContactPersonLength:       c.MaxContactPersonLength,
		MaxFundingAmount:             c.MaxFundingAmount,
	}
}

// Search returns the query limits as a value type for the repository layer
func (c *Config) Search() SearchLimits {
	return SearchLimits{
		DefaultRadiusKm: c.DefaultSearchRadiusKm,
		MaxRadiusKm:     c.MaxSearchRadiusKm,
		MaxResults:      c.MaxQueryResults,
	}
}

// Limits bounds the size of submitted project fields
type Limits struct {
	MaxProjectNameLength         int
	MaxBriefDescriptionLength    int
	MaxDetailedDescriptionLength int
	MaxSuccessFactorsLength      int
	MaxOrganizationNameLength    int
	MaxContactPersonLength       int
	MaxFundingAmount             float64
}

// DefaultLimits mirrors the configuration defaults
func DefaultLimits() Limits {
	return Limits{
		MaxProjectNameLength:         200,
		MaxBriefDescriptionLength:    255,
		MaxDetailedDescriptionLength: 5000,
		MaxSuccessFactorsLength:      2000,
		MaxOrganizationNameLength:    200,
		MaxContactPersonLength:       100,
		MaxFundingAmount:             999999999.99,
	}
}

// SearchLimits bounds query cost
type SearchLimits struct {
	DefaultRadiusKm float64
	MaxRadiusKm     float64
	MaxResults      int
}

// DefaultSearchLimits mirrors the configuration defaults
func DefaultSearchLimits() SearchLimits {
	return SearchLimits{DefaultRadiusKm: 50, MaxRadiusKm: 500, MaxResults: 10000}
}
