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

type FAQsController struct {
	contentService services.ContentServiceInterface
}

func NewFAQsController(contentService services.ContentServiceInterface) *FAQsController {
	return &FAQsController{
		contentService: contentService,
	}
}

func (fc *FAQsController) List(c *gin.Context) {
	faqs, err := fc.contentService.ListFAQs(c.Request.Context())
	if err != nil {
		if errors.Is(err, utils.ErrDatabaseUnavailable) {
			utils.RespondDegraded(c, []db_models.FAQ{})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, faqs, "Fetched FAQs successfully")
}

func (fc *FAQsController) Create(c *gin.Context) {
	var req request_models.CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	faq, err := fc.contentService.CreateFAQ(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, faq, "FAQ created successfully")
}

func (fc *FAQsController) Update(c *gin.Context) {
	var req request_models.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	faq, err := fc.contentService.UpdateFAQ(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, faq, "FAQ updated successfully")
}

func (fc *FAQsController) Delete(c *gin.Context) {
	removed, err := fc.contentService.DeleteFAQ(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": removed}, "FAQ delete processed")
}
