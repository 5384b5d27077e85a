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

type SettingsController struct {
	contentService services.ContentServiceInterface
}

func NewSettingsController(contentService services.ContentServiceInterface) *SettingsController {
	return &SettingsController{
		contentService: contentService,
	}
}

// Get godoc
// @Summary Get site settings
// @Description Returns the settings singleton, fully populated with defaults
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /settings [get]
func (sc *SettingsController) Get(c *gin.Context) {
	settings, err := sc.contentService.GetSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, utils.ErrDatabaseUnavailable) {
			def := db_models.DefaultSiteSettings()
			utils.RespondDegraded(c, &def)
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Fetched settings successfully")
}

func (sc *SettingsController) Replace(c *gin.Context) {
	var req request_models.ReplaceSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	settings, err := sc.contentService.ReplaceSettings(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings updated successfully")
}
