package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"hosthub/cmd/fx/admin_fx"
	"hosthub/cmd/fx/catalog_fx"
	"hosthub/cmd/fx/content_fx"
	"hosthub/cmd/fx/controllers_fx"
	"hosthub/cmd/fx/db_fx"
	"hosthub/internal/api"
	"hosthub/internal/api/controllers"
	"hosthub/internal/infra"
	"hosthub/pkg/config"
	"hosthub/pkg/logger"
	"hosthub/pkg/middleware"
	"hosthub/pkg/utils"
	"hosthub/pkg/validation"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Read()

	logger.Init()
	utils.InitJWT(cfg.JWTSecret)
	validation.RegisterCustomRules()
	gin.SetMode(cfg.GinMode)

	app := fx.New(
		fx.Supply(cfg),
		db_fx.Module,
		catalog_fx.Module,
		content_fx.Module,
		admin_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.AppConfig) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				zap.L().Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					zap.L().Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zap.L().Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.AppConfig,
	categoriesController *controllers.CategoriesController,
	subcategoriesController *controllers.SubcategoriesController,
	plansController *controllers.PlansController,
	faqsController *controllers.FAQsController,
	teamController *controllers.TeamController,
	settingsController *controllers.SettingsController,
	aboutController *controllers.AboutController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigin))
	r.Use(middleware.RequestTimeoutMiddleware(time.Duration(cfg.RequestTimeout) * time.Second))

	api.RegisterRoutes(r,
		categoriesController,
		subcategoriesController,
		plansController,
		faqsController,
		teamController,
		settingsController,
		aboutController,
		adminController)

	return r
}
