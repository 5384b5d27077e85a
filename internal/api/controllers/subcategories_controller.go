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

type SubcategoriesController struct {
	catalogService services.CatalogServiceInterface
}

func NewSubcategoriesController(catalogService services.CatalogServiceInterface) *SubcategoriesController {
	return &SubcategoriesController{
		catalogService: catalogService,
	}
}

func (sc *SubcategoriesController) List(c *gin.Context) {
	subcategories, err := sc.catalogService.ListSubcategories(c.Request.Context())
	if err != nil {
		if errors.Is(err, utils.ErrDatabaseUnavailable) {
			utils.RespondDegraded(c, []db_models.Subcategory{})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subcategories, "Fetched subcategories successfully")
}

func (sc *SubcategoriesController) Create(c *gin.Context) {
	var req request_models.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	subcategory, err := sc.catalogService.CreateSubcategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subcategory, "Subcategory created successfully")
}

func (sc *SubcategoriesController) Update(c *gin.Context) {
	var req request_models.UpdateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	subcategory, err := sc.catalogService.UpdateSubcategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subcategory, "Subcategory updated successfully")
}

func (sc *SubcategoriesController) Delete(c *gin.Context) {
	removed, err := sc.catalogService.DeleteSubcategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": removed}, "Subcategory delete processed")
}
