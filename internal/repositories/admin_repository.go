package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hosthub/internal/models/db_models"
)

type AdminUserRepository interface {
	List(ctx context.Context) ([]db_models.AdminUser, error)
	FindByID(ctx context.Context, id string) (*db_models.AdminUser, error)
	FindByUsername(ctx context.Context, username string) (*db_models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, user *db_models.AdminUser) error
	Save(ctx context.Context, user *db_models.AdminUser) error
	Delete(ctx context.Context, id string) (bool, error)
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

type adminUserRepository struct {
	db *gorm.DB
}

func (r *adminUserRepository) List(ctx context.Context) ([]db_models.AdminUser, error) {
	var users []db_models.AdminUser
	err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *adminUserRepository) FindByID(ctx context.Context, id string) (*db_models.AdminUser, error) {
	var user db_models.AdminUser
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *adminUserRepository) FindByUsername(ctx context.Context, username string) (*db_models.AdminUser, error) {
	var user db_models.AdminUser
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *adminUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.AdminUser{}).Count(&count).Error
	return count, err
}

func (r *adminUserRepository) Insert(ctx context.Context, user *db_models.AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *adminUserRepository) Save(ctx context.Context, user *db_models.AdminUser) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *adminUserRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.AdminUser{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
