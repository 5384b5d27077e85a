package api

import (
	"github.com/gin-gonic/gin"

	"hosthub/internal/api/controllers"
	"hosthub/pkg/middleware"
)

// RegisterRoutes wires the public storefront reads, the login endpoint,
// and the token-gated admin mutations onto the engine.
func RegisterRoutes(r *gin.Engine,
	categoriesController *controllers.CategoriesController,
	subcategoriesController *controllers.SubcategoriesController,
	plansController *controllers.PlansController,
	faqsController *controllers.FAQsController,
	teamController *controllers.TeamController,
	settingsController *controllers.SettingsController,
	aboutController *controllers.AboutController,
	adminController *controllers.AdminController) {

	public := r.Group("/api")
	public.GET("/categories", categoriesController.List)
	public.GET("/subcategories", subcategoriesController.List)
	public.GET("/plans", plansController.List)
	public.GET("/plans/:id", plansController.Get)
	public.GET("/faqs", faqsController.List)
	public.GET("/team", teamController.List)
	public.GET("/settings", settingsController.Get)
	public.GET("/about", aboutController.Get)
	public.POST("/admin/login", adminController.Login)

	protected := r.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.POST("/categories", categoriesController.Create)
	protected.PATCH("/categories/:id", categoriesController.Update)
	protected.DELETE("/categories/:id", categoriesController.Delete)

	protected.POST("/subcategories", subcategoriesController.Create)
	protected.PATCH("/subcategories/:id", subcategoriesController.Update)
	protected.DELETE("/subcategories/:id", subcategoriesController.Delete)

	protected.POST("/plans", plansController.Create)
	protected.PATCH("/plans/:id", plansController.Update)
	protected.DELETE("/plans/:id", plansController.Delete)

	protected.POST("/faqs", faqsController.Create)
	protected.PATCH("/faqs/:id", faqsController.Update)
	protected.DELETE("/faqs/:id", faqsController.Delete)

	protected.POST("/team", teamController.Create)
	protected.PATCH("/team/:id", teamController.Update)
	protected.DELETE("/team/:id", teamController.Delete)

	protected.POST("/settings", settingsController.Replace)
	protected.POST("/about", aboutController.Replace)

	protected.GET("/admin/users", adminController.ListUsers)
	protected.POST("/admin/users", adminController.CreateUser)
	protected.PATCH("/admin/users/:id", adminController.UpdatePassword)
	protected.DELETE("/admin/users/:id", adminController.DeleteUser)
}
