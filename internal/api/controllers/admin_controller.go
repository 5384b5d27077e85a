package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosthub/internal/models/request_models"
	"hosthub/internal/services"
	"hosthub/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Login godoc
// @Summary Admin login
// @Description Verify credentials and return a bearer token for the dashboard
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/login [post]
func (ac *AdminController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	login, err := ac.adminService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, login, "Login successful")
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.adminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Fetched admin users successfully")
}

func (ac *AdminController) CreateUser(c *gin.Context) {
	var req request_models.CreateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := ac.adminService.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Admin user created successfully")
}

func (ac *AdminController) UpdatePassword(c *gin.Context) {
	var req request_models.UpdateAdminPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := ac.adminService.UpdatePassword(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Password updated successfully")
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	removed, err := ac.adminService.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": removed}, "Admin user delete processed")
}
