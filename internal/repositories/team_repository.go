package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hosthub/internal/models/db_models"
)

type TeamMemberRepository interface {
	List(ctx context.Context) ([]db_models.TeamMember, error)
	FindByID(ctx context.Context, id string) (*db_models.TeamMember, error)
	Insert(ctx context.Context, member *db_models.TeamMember) error
	Save(ctx context.Context, member *db_models.TeamMember) error
	Delete(ctx context.Context, id string) (bool, error)
}

func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

type teamMemberRepository struct {
	db *gorm.DB
}

func (r *teamMemberRepository) List(ctx context.Context) ([]db_models.TeamMember, error) {
	var members []db_models.TeamMember
	err := r.db.WithContext(ctx).
		Order("display_order asc, id asc").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamMemberRepository) FindByID(ctx context.Context, id string) (*db_models.TeamMember, error) {
	var member db_models.TeamMember
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *teamMemberRepository) Insert(ctx context.Context, member *db_models.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamMemberRepository) Save(ctx context.Context, member *db_models.TeamMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *teamMemberRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.TeamMember{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
