package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"atlas-backend/internal/config"
	"atlas-backend/internal/database/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// AllModels lists every persisted model in migration order
func AllModels() []interface{} {
	return []interface{}{
		&models.Region{},
		&models.SDG{},
		&models.Typology{},
		&models.Requirement{},
		&models.User{},
		&models.Project{},
		&models.ProjectSDG{},
		&models.ProjectTypology{},
		&models.ProjectRequirement{},
		&models.ProjectImage{},
		&models.WorkflowHistoryEntry{},
		&models.Review{},
		&models.ReferenceSequence{},
	}
}

// Open connects to the database selected by cfg.DatabaseDriver
func Open(cfg *config.Config, opts *Options) (*gorm.DB, error) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		return Initialize(cfg.DatabaseURL, opts)
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		return InitializeSQLite(SQLiteDSN(cfg.SQLitePath), opts)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}

// SQLiteDSN builds a DSN with foreign keys enforced and a busy timeout
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
}

// Initialize opens a Postgres connection, creates the schema from GORM models
// and installs the PostGIS and full-text columns.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	opts = withDefaults(opts)

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS postgis`).Error; err != nil {
			return nil, fmt.Errorf("enable postgis: %w", err)
		}
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// InitializeSQLite opens a SQLite database. SQLite allows a single writer, so
// the pool is pinned to one connection.
func InitializeSQLite(dsn string, opts *Options) (*gorm.DB, error) {
	opts = withDefaults(opts)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the schema. On Postgres it also adds the
// generated geography and tsvector columns with their indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	if IsPostgres(db) {
		for _, stmt := range postgresDDL {
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("postgres ddl: %w", err)
			}
		}
	}
	return nil
}

// IsPostgres reports whether db talks to PostgreSQL
func IsPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

var postgresDDL = []string{
	`ALTER TABLE projects ADD COLUMN IF NOT EXISTS geolocation geography(Point, 4326)
		GENERATED ALWAYS AS (
			CASE WHEN latitude IS NOT NULL AND longitude IS NOT NULL
				THEN ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography
			END
		) STORED`,
	`CREATE INDEX IF NOT EXISTS idx_projects_geolocation ON projects USING GIST (geolocation)`,
	`ALTER TABLE projects ADD COLUMN IF NOT EXISTS search_vector tsvector
		GENERATED ALWAYS AS (
			setweight(to_tsvector('english'::regconfig, coalesce(name, '')), 'A') ||
			setweight(to_tsvector('english'::regconfig, coalesce(brief_description, '')), 'B') ||
			setweight(to_tsvector('english'::regconfig, coalesce(detailed_description, '')), 'C') ||
			setweight(to_tsvector('english'::regconfig, coalesce(organization_name, '')), 'D')
		) STORED`,
	`CREATE INDEX IF NOT EXISTS idx_projects_search_vector ON projects USING GIN (search_vector)`,
}

func withDefaults(opts *Options) *Options {
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	return opts
}
