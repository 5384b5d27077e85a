package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hosthub/internal/repositories"
	"hosthub/internal/services"
)

var Module = fx.Provide(
	provideAdminRepo, provideAdminService)

func provideAdminRepo(db *gorm.DB) repositories.AdminUserRepository {
	return repositories.NewAdminUserRepository(db)
}

func provideAdminService(adminRepo repositories.AdminUserRepository) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo)
}
