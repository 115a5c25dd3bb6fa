package repositories

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"finz-affiliate/internal/adapters/persistence/models"
	"finz-affiliate/internal/core/domain"
)

// newTestDB opens a private in-memory database migrated like production
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func createPackage(t *testing.T, repo LoanPackageRepository, name string) *domain.LoanPackage {
	t.Helper()
	pkg := &domain.LoanPackage{Name: name}
	require.NoError(t, repo.Create(context.Background(), pkg))
	require.NotEmpty(t, pkg.ID)
	return pkg
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
