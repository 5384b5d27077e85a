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

type AboutController struct {
	contentService services.ContentServiceInterface
}

func NewAboutController(contentService services.ContentServiceInterface) *AboutController {
	return &AboutController{
		contentService: contentService,
	}
}

func (ac *AboutController) Get(c *gin.Context) {
	content, err := ac.contentService.GetAbout(c.Request.Context())
	if err != nil {
		if errors.Is(err, utils.ErrDatabaseUnavailable) {
			def := db_models.DefaultAboutContent()
			utils.RespondDegraded(c, &def)
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, content, "Fetched about content successfully")
}

func (ac *AboutController) Replace(c *gin.Context) {
	var req request_models.ReplaceAboutContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	content, err := ac.contentService.ReplaceAbout(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, content, "About content updated successfully")
}
