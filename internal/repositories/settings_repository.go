package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hosthub/internal/models/db_models"
)

type SiteSettingsRepository interface {
	Get(ctx context.Context) (*db_models.SiteSettings, error)
	Replace(ctx context.Context, settings *db_models.SiteSettings) (*db_models.SiteSettings, error)
}

func NewSiteSettingsRepository(db *gorm.DB) SiteSettingsRepository {
	return &siteSettingsRepository{db: db}
}

type siteSettingsRepository struct {
	db *gorm.DB
}

// Get returns the singleton row, materializing it with defaults on first
// access. Empty columns are filled with defaults before returning.
func (r *siteSettingsRepository) Get(ctx context.Context) (*db_models.SiteSettings, error) {
	var settings db_models.SiteSettings
	err := r.db.WithContext(ctx).First(&settings, db_models.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = db_models.DefaultSiteSettings()
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	settings.ApplyDefaults()
	return &settings, nil
}

// Replace overwrites every field of the singleton, substituting defaults
// for empty values.
func (r *siteSettingsRepository) Replace(ctx context.Context, settings *db_models.SiteSettings) (*db_models.SiteSettings, error) {
	settings.ID = db_models.SingletonID
	settings.ApplyDefaults()
	// upsert: the singleton may not be materialized yet
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
