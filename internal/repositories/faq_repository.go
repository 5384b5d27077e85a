package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hosthub/internal/models/db_models"
)

type FAQRepository interface {
	List(ctx context.Context) ([]db_models.FAQ, error)
	FindByID(ctx context.Context, id string) (*db_models.FAQ, error)
	Insert(ctx context.Context, faq *db_models.FAQ) error
	Save(ctx context.Context, faq *db_models.FAQ) error
	Delete(ctx context.Context, id string) (bool, error)
}

func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &faqRepository{db: db}
}

type faqRepository struct {
	db *gorm.DB
}

func (r *faqRepository) List(ctx context.Context) ([]db_models.FAQ, error) {
	var faqs []db_models.FAQ
	err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *faqRepository) FindByID(ctx context.Context, id string) (*db_models.FAQ, error) {
	var faq db_models.FAQ
	err := r.db.WithContext(ctx).First(&faq, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) Insert(ctx context.Context, faq *db_models.FAQ) error {
	return r.db.WithContext(ctx).Create(faq).Error
}

func (r *faqRepository) Save(ctx context.Context, faq *db_models.FAQ) error {
	return r.db.WithContext(ctx).Save(faq).Error
}

func (r *faqRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.FAQ{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
