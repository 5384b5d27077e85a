package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hosthub/internal/models/db_models"
	"hosthub/internal/models/request_models"
	"hosthub/internal/services"
	"hosthub/pkg/utils"
)

type CategoriesController struct {
	catalogService services.CatalogServiceInterface
}

func NewCategoriesController(catalogService services.CatalogServiceInterface) *CategoriesController {
	return &CategoriesController{
		catalogService: catalogService,
	}
}

// List godoc
// @Summary List categories
// @Description Fetch all categories with their subcategories embedded
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (cc *CategoriesController) List(c *gin.Context) {
	categories, err := cc.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		if errors.Is(err, utils.ErrDatabaseUnavailable) {
			utils.RespondDegraded(c, []db_models.Category{})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Fetched categories successfully")
}

// Create godoc
// @Summary Create a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.CreateCategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /categories [post]
func (cc *CategoriesController) Create(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := cc.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category created successfully")
}

func (cc *CategoriesController) Update(c *gin.Context) {
	var req request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := cc.catalogService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category updated successfully")
}

func (cc *CategoriesController) Delete(c *gin.Context) {
	removed, err := cc.catalogService.DeleteCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": removed}, "Category delete processed")
}
