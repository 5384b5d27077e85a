package services

import (
	"context"

	"go.uber.org/zap"

	"hosthub/internal/models/db_models"
	"hosthub/internal/models/request_models"
	"hosthub/internal/models/response_models"
	"hosthub/internal/repositories"
	"hosthub/pkg/utils"
)

type AdminServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	Verify(ctx context.Context, username, password string) bool
	ListUsers(ctx context.Context) ([]response_models.AdminUserResponse, error)
	CreateUser(ctx context.Context, req request_models.CreateAdminUserRequest) (*response_models.AdminUserResponse, error)
	UpdatePassword(ctx context.Context, id string, req request_models.UpdateAdminPasswordRequest) (*response_models.AdminUserResponse, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

type AdminService struct {
	adminRepo repositories.AdminUserRepository
}

func NewAdminService(adminRepo repositories.AdminUserRepository) AdminServiceInterface {
	return &AdminService{adminRepo: adminRepo}
}

func (s *AdminService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := s.adminRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	if user == nil || !utils.VerifyPassword(user.PasswordHash, req.Password) {
		zap.L().Info("failed admin login", zap.String("username", req.Username))
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &response_models.LoginResponse{
		Token:    token,
		Username: user.Username,
	}, nil
}

// Verify reports whether the password matches the stored hash for the
// username. Any lookup failure verifies as false rather than erroring.
func (s *AdminService) Verify(ctx context.Context, username, password string) bool {
	user, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		return false
	}
	return utils.VerifyPassword(user.PasswordHash, password)
}

func (s *AdminService) ListUsers(ctx context.Context) ([]response_models.AdminUserResponse, error) {
	users, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}

	out := make([]response_models.AdminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, response_models.AdminUserResponse{
			ID:       u.ID.String(),
			Username: u.Username,
		})
	}
	return out, nil
}

func (s *AdminService) CreateUser(ctx context.Context, req request_models.CreateAdminUserRequest) (*response_models.AdminUserResponse, error) {
	existing, err := s.adminRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	if existing != nil {
		return nil, utils.ErrDuplicateUsername
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.AdminUser{
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Insert(ctx, user); err != nil {
		return nil, storageError(err, utils.ErrDuplicateUsername)
	}

	return &response_models.AdminUserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
	}, nil
}

func (s *AdminService) UpdatePassword(ctx context.Context, id string, req request_models.UpdateAdminPasswordRequest) (*response_models.AdminUserResponse, error) {
	user, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	if user == nil {
		return nil, utils.ErrNotFound
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	if err := s.adminRepo.Save(ctx, user); err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}

	return &response_models.AdminUserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
	}, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) (bool, error) {
	removed, err := s.adminRepo.Delete(ctx, id)
	if err != nil {
		return false, storageError(err, utils.ErrDatabaseError)
	}
	return removed, nil
}
