package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hosthub/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&db_models.Category{},
		&db_models.Subcategory{},
		&db_models.Plan{},
		&db_models.FAQ{},
		&db_models.TeamMember{},
		&db_models.SiteSettings{},
		&db_models.AboutContent{},
		&db_models.AdminUser{},
	))

	return db
}
