package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hosthub/internal/models/db_models"
)

type PlanRepository interface {
	List(ctx context.Context) ([]db_models.Plan, error)
	FindByID(ctx context.Context, id string) (*db_models.Plan, error)
	Insert(ctx context.Context, plan *db_models.Plan) error
	Save(ctx context.Context, plan *db_models.Plan) error
	Delete(ctx context.Context, id string) (bool, error)
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

type planRepository struct {
	db *gorm.DB
}

func (r *planRepository) List(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).
		Order("display_order asc, id asc").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) FindByID(ctx context.Context, id string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) Save(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *planRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Plan{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
