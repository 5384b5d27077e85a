package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hosthub/internal/models/db_models"
)

type CategoryRepository interface {
	ListWithSubcategories(ctx context.Context) ([]db_models.Category, error)
	FindByID(ctx context.Context, id string) (*db_models.Category, error)
	Insert(ctx context.Context, category *db_models.Category) error
	Save(ctx context.Context, category *db_models.Category) error
	DeleteCascade(ctx context.Context, id string) (bool, error)
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

type categoryRepository struct {
	db *gorm.DB
}

func (r *categoryRepository) ListWithSubcategories(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc, id asc")
		}).
		Order("created_at asc, id asc").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Insert(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Save(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// DeleteCascade removes the category and its subcategories in one
// transaction. Plans referencing either keep their rows with the
// reference cleared.
func (r *categoryRepository) DeleteCascade(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subcategoryIDs := tx.Model(&db_models.Subcategory{}).
			Select("id").
			Where("category_id = ?", id)

		if err := tx.Model(&db_models.Plan{}).
			Where("subcategory_id IN (?)", subcategoryIDs).
			Update("subcategory_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Model(&db_models.Plan{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("category_id = ?", id).
			Delete(&db_models.Subcategory{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&db_models.Category{})
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
