//go:build integration
// +build integration

package persistence

import (
	"testing"

	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/description-generator/internal/pkg/config"
	"github.com/MGTheTrain/description-generator/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB      *gorm.DB
	JobRepo generation.JobRepository
}

// SetupTestDB initializes an in-memory test database with automatic cleanup
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	err = db.AutoMigrate(&models.JobModel{}, &models.JobEventModel{})
	require.NoError(t, err, "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)
	jobRepo, err := NewGormJobRepository(db, log)
	require.NoError(t, err, "Failed to create job repository")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	return &TestContext{
		DB:      db,
		JobRepo: jobRepo,
	}
}
