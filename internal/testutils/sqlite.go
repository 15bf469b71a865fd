package testutils

import (
	"context"
	"fmt"
	"testing"

	"atlas-backend/internal/catalog"
	"atlas-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory SQLite database with the full schema.
// The single pooled connection keeps the database alive until the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := database.InitializeSQLite(dsn, &database.Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewSeededSQLiteDB is NewSQLiteDB with the reference catalog loaded
func NewSeededSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()
	db := NewSQLiteDB(t)
	require.NoError(t, catalog.Seed(context.Background(), db))
	return db
}

// SQLiteTestSuite gives every test a fresh seeded database. No Docker needed.
type SQLiteTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupTest opens a new database before each test
func (s *SQLiteTestSuite) SetupTest() {
	s.DB = NewSeededSQLiteDB(s.T())
}
