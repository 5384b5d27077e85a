package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hosthub/internal/models/db_models"
)

type SubcategoryRepository interface {
	List(ctx context.Context) ([]db_models.Subcategory, error)
	FindByID(ctx context.Context, id string) (*db_models.Subcategory, error)
	Insert(ctx context.Context, subcategory *db_models.Subcategory) error
	Save(ctx context.Context, subcategory *db_models.Subcategory) error
	Delete(ctx context.Context, id string) (bool, error)
}

func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

type subcategoryRepository struct {
	db *gorm.DB
}

func (r *subcategoryRepository) List(ctx context.Context) ([]db_models.Subcategory, error) {
	var subcategories []db_models.Subcategory
	err := r.db.WithContext(ctx).
		Order("display_order asc, id asc").
		Find(&subcategories).Error
	if err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *subcategoryRepository) FindByID(ctx context.Context, id string) (*db_models.Subcategory, error) {
	var subcategory db_models.Subcategory
	err := r.db.WithContext(ctx).First(&subcategory, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) Insert(ctx context.Context, subcategory *db_models.Subcategory) error {
	return r.db.WithContext(ctx).Create(subcategory).Error
}

func (r *subcategoryRepository) Save(ctx context.Context, subcategory *db_models.Subcategory) error {
	return r.db.WithContext(ctx).Save(subcategory).Error
}

// Delete clears plan references before removing the row, so plans
// survive their subcategory.
func (r *subcategoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Plan{}).
			Where("subcategory_id = ?", id).
			Update("subcategory_id", nil).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&db_models.Subcategory{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
