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

type TeamController struct {
	contentService services.ContentServiceInterface
}

func NewTeamController(contentService services.ContentServiceInterface) *TeamController {
	return &TeamController{
		contentService: contentService,
	}
}

func (tc *TeamController) List(c *gin.Context) {
	members, err := tc.contentService.ListTeamMembers(c.Request.Context())
	if err != nil {
		if errors.Is(err, utils.ErrDatabaseUnavailable) {
			utils.RespondDegraded(c, []db_models.TeamMember{})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Fetched team members successfully")
}

func (tc *TeamController) Create(c *gin.Context) {
	var req request_models.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := tc.contentService.CreateTeamMember(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Team member created successfully")
}

func (tc *TeamController) Update(c *gin.Context) {
	var req request_models.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := tc.contentService.UpdateTeamMember(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Team member updated successfully")
}

func (tc *TeamController) Delete(c *gin.Context) {
	removed, err := tc.contentService.DeleteTeamMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": removed}, "Team member delete processed")
}
