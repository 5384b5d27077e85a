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

type PlansController struct {
	catalogService services.CatalogServiceInterface
}

func NewPlansController(catalogService services.CatalogServiceInterface) *PlansController {
	return &PlansController{
		catalogService: catalogService,
	}
}

// List godoc
// @Summary List plans
// @Description Fetch all plans ordered for display. Features are always a string list.
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (pc *PlansController) List(c *gin.Context) {
	plans, err := pc.catalogService.ListPlans(c.Request.Context())
	if err != nil {
		if errors.Is(err, utils.ErrDatabaseUnavailable) {
			utils.RespondDegraded(c, []db_models.Plan{})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Fetched plans successfully")
}

func (pc *PlansController) Get(c *gin.Context) {
	plan, err := pc.catalogService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Fetched plan successfully")
}

func (pc *PlansController) Create(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := pc.catalogService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan created successfully")
}

func (pc *PlansController) Update(c *gin.Context) {
	var req request_models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := pc.catalogService.UpdatePlan(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated successfully")
}

func (pc *PlansController) Delete(c *gin.Context) {
	removed, err := pc.catalogService.DeletePlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": removed}, "Plan delete processed")
}
