package infra

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hosthub/internal/models/db_models"
	"hosthub/pkg/config"
	"hosthub/pkg/utils"
)

// migrationModels is the ordered migration list; parents migrate before
// the tables that reference them.
var migrationModels = []any{
	&db_models.Category{},
	&db_models.Subcategory{},
	&db_models.Plan{},
	&db_models.FAQ{},
	&db_models.TeamMember{},
	&db_models.SiteSettings{},
	&db_models.AboutContent{},
	&db_models.AdminUser{},
}

// Migrate applies the schema once at startup, then materializes the
// singleton rows and, on an empty admin table, the configured first
// admin account.
func Migrate(db *gorm.DB, cfg *config.AppConfig) error {
	for _, model := range migrationModels {
		if err := db.AutoMigrate(model); err != nil {
			return err
		}
	}

	if err := seedSingletons(db); err != nil {
		return err
	}

	return seedAdmin(db, cfg)
}

func seedSingletons(db *gorm.DB) error {
	var settings db_models.SiteSettings
	err := db.First(&settings, db_models.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = db_models.DefaultSiteSettings()
		err = db.Create(&settings).Error
	}
	if err != nil {
		return err
	}

	var about db_models.AboutContent
	err = db.First(&about, db_models.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		about = db_models.DefaultAboutContent()
		err = db.Create(&about).Error
	}
	return err
}

func seedAdmin(db *gorm.DB, cfg *config.AppConfig) error {
	var count int64
	if err := db.Model(&db_models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.AdminPassword == "" {
		zap.L().Warn("no admin accounts exist and ADMIN_PASSWORD is unset; dashboard login is disabled")
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := db_models.AdminUser{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	zap.L().Info("seeded initial admin account", zap.String("username", admin.Username))
	return nil
}
