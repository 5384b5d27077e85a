package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hosthub/internal/repositories"
	"hosthub/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideSubcategoryRepo, providePlanRepo, provideCatalogService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideSubcategoryRepo(db *gorm.DB) repositories.SubcategoryRepository {
	return repositories.NewSubcategoryRepository(db)
}

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideCatalogService(
	categoryRepo repositories.CategoryRepository,
	subcategoryRepo repositories.SubcategoryRepository,
	planRepo repositories.PlanRepository,
) services.CatalogServiceInterface {
	return services.NewCatalogService(categoryRepo, subcategoryRepo, planRepo)
}
