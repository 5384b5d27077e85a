package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hosthub/internal/models/db_models"
)

type AboutContentRepository interface {
	Get(ctx context.Context) (*db_models.AboutContent, error)
	Replace(ctx context.Context, content *db_models.AboutContent) (*db_models.AboutContent, error)
}

func NewAboutContentRepository(db *gorm.DB) AboutContentRepository {
	return &aboutContentRepository{db: db}
}

type aboutContentRepository struct {
	db *gorm.DB
}

func (r *aboutContentRepository) Get(ctx context.Context) (*db_models.AboutContent, error) {
	var content db_models.AboutContent
	err := r.db.WithContext(ctx).First(&content, db_models.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		content = db_models.DefaultAboutContent()
		if err := r.db.WithContext(ctx).Create(&content).Error; err != nil {
			return nil, err
		}
		return &content, nil
	}
	if err != nil {
		return nil, err
	}
	content.ApplyDefaults()
	return &content, nil
}

func (r *aboutContentRepository) Replace(ctx context.Context, content *db_models.AboutContent) (*db_models.AboutContent, error) {
	content.ID = db_models.SingletonID
	content.ApplyDefaults()
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(content).Error; err != nil {
		return nil, err
	}
	return content, nil
}
