package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hosthub/internal/api"
	"hosthub/internal/api/controllers"
	"hosthub/internal/models/db_models"
	"hosthub/internal/models/request_models"
	"hosthub/internal/repositories"
	"hosthub/internal/services"
	"hosthub/pkg/middleware"
	"hosthub/pkg/utils"
	"hosthub/pkg/validation"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, services.AdminServiceInterface) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validation.RegisterCustomRules()
	utils.InitJWT("test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&db_models.Category{},
		&db_models.Subcategory{},
		&db_models.Plan{},
		&db_models.FAQ{},
		&db_models.TeamMember{},
		&db_models.SiteSettings{},
		&db_models.AboutContent{},
		&db_models.AdminUser{},
	))

	catalogService := services.NewCatalogService(
		repositories.NewCategoryRepository(db),
		repositories.NewSubcategoryRepository(db),
		repositories.NewPlanRepository(db),
	)
	contentService := services.NewContentService(
		repositories.NewFAQRepository(db),
		repositories.NewTeamMemberRepository(db),
		repositories.NewSiteSettingsRepository(db),
		repositories.NewAboutContentRepository(db),
	)
	adminService := services.NewAdminService(repositories.NewAdminUserRepository(db))

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	api.RegisterRoutes(r,
		controllers.NewCategoriesController(catalogService),
		controllers.NewSubcategoriesController(catalogService),
		controllers.NewPlansController(catalogService),
		controllers.NewFAQsController(contentService),
		controllers.NewTeamController(contentService),
		controllers.NewSettingsController(contentService),
		controllers.NewAboutController(contentService),
		controllers.NewAdminController(adminService))

	return r, adminService
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func adminToken(t *testing.T, r *gin.Engine, adminService services.AdminServiceInterface) string {
	t.Helper()

	_, err := adminService.CreateUser(context.Background(), request_models.CreateAdminUserRequest{
		Username: "ops",
		Password: "s3cr3t-pass",
	})
	require.NoError(t, err)

	w, env := doJSON(t, r, http.MethodPost, "/api/admin/login", "", gin.H{
		"username": "ops",
		"password": "s3cr3t-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

func TestLoginEndpoint(t *testing.T) {
	r, adminService := newTestRouter(t)
	_ = adminToken(t, r, adminService)

	w, _ := doJSON(t, r, http.MethodPost, "/api/admin/login", "", gin.H{
		"username": "ops",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMutationsRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/categories", "", gin.H{
		"name": "Web Hosting",
		"slug": "web-hosting",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/settings", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlanCreateValidation(t *testing.T) {
	r, adminService := newTestRouter(t)
	token := adminToken(t, r, adminService)

	// missing subcategoryId must 400 without writing a row
	w, _ := doJSON(t, r, http.MethodPost, "/api/plans", token, gin.H{
		"name":       "Starter",
		"period":     "month",
		"categoryId": "5f8f6f50-0000-0000-0000-000000000000",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := doJSON(t, r, http.MethodGet, "/api/plans", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var plans []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &plans))
	assert.Empty(t, plans)

	// unknown period is rejected too
	w, _ = doJSON(t, r, http.MethodPost, "/api/plans", token, gin.H{
		"name":          "Starter",
		"period":        "week",
		"categoryId":    "5f8f6f50-0000-0000-0000-000000000000",
		"subcategoryId": "5f8f6f50-0000-0000-0000-000000000001",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryLifecycle(t *testing.T) {
	r, adminService := newTestRouter(t)
	token := adminToken(t, r, adminService)

	w, env := doJSON(t, r, http.MethodPost, "/api/categories", token, gin.H{
		"name": "Web Hosting",
		"slug": "web-hosting",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Web Hosting", created.Name)
	assert.NotEmpty(t, created.ID)

	// slug collision surfaces as a conflict
	w, _ = doJSON(t, r, http.MethodPost, "/api/categories", token, gin.H{
		"name": "Other",
		"slug": "web-hosting",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// invalid slugs never reach the store
	w, _ = doJSON(t, r, http.MethodPost, "/api/categories", token, gin.H{
		"name": "Bad",
		"slug": "Not A Slug",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPatch, "/api/categories/"+created.ID, token, gin.H{
		"name": "Managed Hosting",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, r, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []struct {
		Name          string            `json:"name"`
		Slug          string            `json:"slug"`
		Subcategories []json.RawMessage `json:"subcategories"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Managed Hosting", listed[0].Name)
	assert.Equal(t, "web-hosting", listed[0].Slug)
	assert.NotNil(t, listed[0].Subcategories)

	w, env = doJSON(t, r, http.MethodDelete, "/api/categories/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var del struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &del))
	assert.True(t, del.Success)

	w, env = doJSON(t, r, http.MethodDelete, "/api/categories/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &del))
	assert.False(t, del.Success)
}

func TestPatchUnknownIDReturnsNotFound(t *testing.T) {
	r, adminService := newTestRouter(t)
	token := adminToken(t, r, adminService)

	w, _ := doJSON(t, r, http.MethodPatch, "/api/faqs/5f8f6f50-0000-0000-0000-000000000000", token, gin.H{
		"question": "Anything?",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsDefaultsAndReplace(t *testing.T) {
	r, adminService := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var settings map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.Equal(t, "99.9%", settings["stat1Value"])
	assert.Equal(t, "USD", settings["currency"])
	for key, value := range settings {
		s, isString := value.(string)
		if isString {
			assert.NotEmpty(t, s, key)
		}
	}

	token := adminToken(t, r, adminService)
	w, env = doJSON(t, r, http.MethodPost, "/api/settings", token, gin.H{
		"currency":    "INR",
		"heroHeading": "Hosting that just works",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.Equal(t, "INR", settings["currency"])
	assert.Equal(t, "Hosting that just works", settings["heroHeading"])
	assert.Equal(t, "99.9%", settings["stat1Value"])

	// bogus currency is rejected
	w, _ = doJSON(t, r, http.MethodPost, "/api/settings", token, gin.H{
		"currency": "BTC",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAboutDefaults(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var about map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &about))
	assert.NotEmpty(t, about["pageTitle"])
	assert.NotEmpty(t, about["missionText"])
}

// stubs that fail the way a down store does
type unavailableCatalog struct{ services.CatalogServiceInterface }

func (unavailableCatalog) ListPlans(ctx context.Context) ([]db_models.Plan, error) {
	return nil, utils.ErrDatabaseUnavailable
}

type unavailableContent struct{ services.ContentServiceInterface }

func (unavailableContent) GetSettings(ctx context.Context) (*db_models.SiteSettings, error) {
	return nil, utils.ErrDatabaseUnavailable
}

func TestReadsDegradeWhenStoreUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.GET("/api/plans", controllers.NewPlansController(unavailableCatalog{}).List)
	r.GET("/api/settings", controllers.NewSettingsController(unavailableContent{}).Get)

	w, env := doJSON(t, r, http.MethodGet, "/api/plans", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", env.Status)
	var plans []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &plans))
	assert.NotNil(t, plans)
	assert.Empty(t, plans)

	w, env = doJSON(t, r, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var settings map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.Equal(t, "99.9%", settings["stat1Value"])
	assert.Equal(t, "USD", settings["currency"])
}

func TestPlanResponseShape(t *testing.T) {
	r, adminService := newTestRouter(t)
	token := adminToken(t, r, adminService)

	w, env := doJSON(t, r, http.MethodPost, "/api/categories", token, gin.H{
		"name": "VPS", "slug": "vps",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var category struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &category))

	w, env = doJSON(t, r, http.MethodPost, "/api/subcategories", token, gin.H{
		"name": "Managed", "slug": "managed-vps", "categoryId": category.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var subcategory struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &subcategory))

	w, env = doJSON(t, r, http.MethodPost, "/api/plans", token, gin.H{
		"name":          "Pro",
		"period":        "year",
		"priceUsd":      "9.99",
		"priceInr":      "799",
		"features":      []string{"A", "B", "C"},
		"popular":       true,
		"categoryId":    category.ID,
		"subcategoryId": subcategory.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, r, http.MethodGet, "/api/plans", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var plans []struct {
		Features []string `json:"features"`
		Popular  bool     `json:"popular"`
		Period   string   `json:"period"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &plans))
	require.Len(t, plans, 1)
	assert.Equal(t, []string{"A", "B", "C"}, plans[0].Features)
	assert.True(t, plans[0].Popular)
	assert.Equal(t, "year", plans[0].Period)
}
