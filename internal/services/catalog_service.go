package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hosthub/internal/models/db_models"
	"hosthub/internal/models/request_models"
	"hosthub/internal/repositories"
	"hosthub/pkg/utils"
)

type CatalogServiceInterface interface {
	ListCategories(ctx context.Context) ([]db_models.Category, error)
	CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*db_models.Category, error)
	UpdateCategory(ctx context.Context, id string, req request_models.UpdateCategoryRequest) (*db_models.Category, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)

	ListSubcategories(ctx context.Context) ([]db_models.Subcategory, error)
	CreateSubcategory(ctx context.Context, req request_models.CreateSubcategoryRequest) (*db_models.Subcategory, error)
	UpdateSubcategory(ctx context.Context, id string, req request_models.UpdateSubcategoryRequest) (*db_models.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) (bool, error)

	ListPlans(ctx context.Context) ([]db_models.Plan, error)
	GetPlan(ctx context.Context, id string) (*db_models.Plan, error)
	CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (*db_models.Plan, error)
	UpdatePlan(ctx context.Context, id string, req request_models.UpdatePlanRequest) (*db_models.Plan, error)
	DeletePlan(ctx context.Context, id string) (bool, error)
}

type CatalogService struct {
	categoryRepo    repositories.CategoryRepository
	subcategoryRepo repositories.SubcategoryRepository
	planRepo        repositories.PlanRepository
}

func NewCatalogService(
	categoryRepo repositories.CategoryRepository,
	subcategoryRepo repositories.SubcategoryRepository,
	planRepo repositories.PlanRepository,
) CatalogServiceInterface {
	return &CatalogService{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		planRepo:        planRepo,
	}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	categories, err := s.categoryRepo.ListWithSubcategories(ctx)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	// Embedded subcategories are always a list on the wire, never null.
	for i := range categories {
		if categories[i].Subcategories == nil {
			categories[i].Subcategories = []db_models.Subcategory{}
		}
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*db_models.Category, error) {
	category := &db_models.Category{
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		return nil, storageError(err, utils.ErrDuplicateSlug)
	}
	category.Subcategories = []db_models.Subcategory{}
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, req request_models.UpdateCategoryRequest) (*db_models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	if category == nil {
		return nil, utils.ErrNotFound
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, storageError(err, utils.ErrDuplicateSlug)
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) (bool, error) {
	removed, err := s.categoryRepo.DeleteCascade(ctx, id)
	if err != nil {
		return false, storageError(err, utils.ErrDatabaseError)
	}
	return removed, nil
}

func (s *CatalogService) ListSubcategories(ctx context.Context) ([]db_models.Subcategory, error) {
	subcategories, err := s.subcategoryRepo.List(ctx)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return subcategories, nil
}

func (s *CatalogService) CreateSubcategory(ctx context.Context, req request_models.CreateSubcategoryRequest) (*db_models.Subcategory, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	subcategory := &db_models.Subcategory{
		Name:         req.Name,
		Slug:         req.Slug,
		CategoryID:   categoryID,
		DisplayOrder: req.Order,
	}
	if err := s.subcategoryRepo.Insert(ctx, subcategory); err != nil {
		return nil, storageError(err, utils.ErrDuplicateSlug)
	}
	return subcategory, nil
}

func (s *CatalogService) UpdateSubcategory(ctx context.Context, id string, req request_models.UpdateSubcategoryRequest) (*db_models.Subcategory, error) {
	subcategory, err := s.subcategoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	if subcategory == nil {
		return nil, utils.ErrNotFound
	}

	if req.Name != nil {
		subcategory.Name = *req.Name
	}
	if req.Slug != nil {
		subcategory.Slug = *req.Slug
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, utils.ErrValidation
		}
		subcategory.CategoryID = categoryID
	}
	if req.Order != nil {
		subcategory.DisplayOrder = *req.Order
	}

	if err := s.subcategoryRepo.Save(ctx, subcategory); err != nil {
		return nil, storageError(err, utils.ErrDuplicateSlug)
	}
	return subcategory, nil
}

func (s *CatalogService) DeleteSubcategory(ctx context.Context, id string) (bool, error) {
	removed, err := s.subcategoryRepo.Delete(ctx, id)
	if err != nil {
		return false, storageError(err, utils.ErrDatabaseError)
	}
	return removed, nil
}

func (s *CatalogService) ListPlans(ctx context.Context) ([]db_models.Plan, error) {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	for i := range plans {
		if plans[i].Features == nil {
			plans[i].Features = datatypes.NewJSONSlice([]string{})
		}
	}
	return plans, nil
}

func (s *CatalogService) GetPlan(ctx context.Context, id string) (*db_models.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	if plan == nil {
		return nil, utils.ErrNotFound
	}
	if plan.Features == nil {
		plan.Features = datatypes.NewJSONSlice([]string{})
	}
	return plan, nil
}

func (s *CatalogService) CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (*db_models.Plan, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	subcategoryID, err := uuid.Parse(req.SubcategoryID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	features := req.Features
	if features == nil {
		features = []string{}
	}

	plan := &db_models.Plan{
		Name:          req.Name,
		Description:   req.Description,
		PriceUSD:      req.PriceUSD,
		PriceINR:      req.PriceINR,
		Period:        db_models.BillingPeriod(req.Period),
		Features:      datatypes.NewJSONSlice(features),
		Popular:       req.Popular,
		CategoryID:    &categoryID,
		SubcategoryID: &subcategoryID,
		DisplayOrder:  req.Order,
	}
	if err := s.planRepo.Insert(ctx, plan); err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return plan, nil
}

func (s *CatalogService) UpdatePlan(ctx context.Context, id string, req request_models.UpdatePlanRequest) (*db_models.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	if plan == nil {
		return nil, utils.ErrNotFound
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.PriceUSD != nil {
		plan.PriceUSD = *req.PriceUSD
	}
	if req.PriceINR != nil {
		plan.PriceINR = *req.PriceINR
	}
	if req.Period != nil {
		plan.Period = db_models.BillingPeriod(*req.Period)
	}
	if req.Features != nil {
		plan.Features = datatypes.NewJSONSlice(*req.Features)
	}
	if req.Popular != nil {
		plan.Popular = *req.Popular
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, utils.ErrValidation
		}
		plan.CategoryID = &categoryID
	}
	if req.SubcategoryID != nil {
		subcategoryID, err := uuid.Parse(*req.SubcategoryID)
		if err != nil {
			return nil, utils.ErrValidation
		}
		plan.SubcategoryID = &subcategoryID
	}
	if req.Order != nil {
		plan.DisplayOrder = *req.Order
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return plan, nil
}

func (s *CatalogService) DeletePlan(ctx context.Context, id string) (bool, error) {
	removed, err := s.planRepo.Delete(ctx, id)
	if err != nil {
		return false, storageError(err, utils.ErrDatabaseError)
	}
	return removed, nil
}
