package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hosthub/internal/models/db_models"
	"hosthub/internal/models/request_models"
	"hosthub/internal/repositories"
	"hosthub/pkg/utils"
)

func newCatalogService(t *testing.T) CatalogServiceInterface {
	t.Helper()
	db := newTestDB(t)
	return NewCatalogService(
		repositories.NewCategoryRepository(db),
		repositories.NewSubcategoryRepository(db),
		repositories.NewPlanRepository(db),
	)
}

func seedCatalog(t *testing.T, svc CatalogServiceInterface) (*db_models.Category, *db_models.Subcategory) {
	t.Helper()
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, request_models.CreateCategoryRequest{
		Name: "Web Hosting",
		Slug: "web-hosting",
	})
	require.NoError(t, err)

	subcategory, err := svc.CreateSubcategory(ctx, request_models.CreateSubcategoryRequest{
		Name:       "Shared",
		Slug:       "shared",
		CategoryID: category.ID.String(),
	})
	require.NoError(t, err)

	return category, subcategory
}

func TestUpdatePlanPartial(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()
	category, subcategory := seedCatalog(t, svc)

	plan, err := svc.CreatePlan(ctx, request_models.CreatePlanRequest{
		Name:          "Starter",
		Description:   "Entry-level shared hosting",
		PriceUSD:      decimal.NewFromFloat(2.99),
		PriceINR:      decimal.NewFromFloat(249),
		Period:        "month",
		Features:      []string{"10GB SSD", "Free SSL"},
		CategoryID:    category.ID.String(),
		SubcategoryID: subcategory.ID.String(),
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromFloat(3.49)
	updated, err := svc.UpdatePlan(ctx, plan.ID.String(), request_models.UpdatePlanRequest{
		PriceUSD: &newPrice,
	})
	require.NoError(t, err)

	assert.True(t, updated.PriceUSD.Equal(newPrice))
	assert.Equal(t, "Starter", updated.Name)
	assert.Equal(t, "Entry-level shared hosting", updated.Description)
	assert.Equal(t, []string{"10GB SSD", "Free SSL"}, []string(updated.Features))
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, category.ID, *updated.CategoryID)
}

func TestCreatePlanDefaultsFeaturesToEmptyList(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()
	category, subcategory := seedCatalog(t, svc)

	plan, err := svc.CreatePlan(ctx, request_models.CreatePlanRequest{
		Name:          "Bare",
		Period:        "month",
		CategoryID:    category.ID.String(),
		SubcategoryID: subcategory.ID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, plan.Features)
	assert.Empty(t, []string(plan.Features))

	got, err := svc.GetPlan(ctx, plan.ID.String())
	require.NoError(t, err)
	require.NotNil(t, got.Features)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc := newCatalogService(t)

	name := "Renamed"
	_, err := svc.UpdateCategory(context.Background(), "5f8f6f50-0000-0000-0000-000000000000",
		request_models.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, request_models.CreateCategoryRequest{Name: "One", Slug: "dup"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, request_models.CreateCategoryRequest{Name: "Two", Slug: "dup"})
	assert.ErrorIs(t, err, utils.ErrDuplicateSlug)
}

func TestDeleteCategoryReportsRemoval(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()
	category, _ := seedCatalog(t, svc)

	removed, err := svc.DeleteCategory(ctx, category.ID.String())
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.DeleteCategory(ctx, category.ID.String())
	require.NoError(t, err)
	assert.False(t, removed)
}
