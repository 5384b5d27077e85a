package controllers_fx

import (
	"go.uber.org/fx"

	"hosthub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCategoriesController),
	fx.Provide(controllers.NewSubcategoriesController),
	fx.Provide(controllers.NewPlansController),
	fx.Provide(controllers.NewFAQsController),
	fx.Provide(controllers.NewTeamController),
	fx.Provide(controllers.NewSettingsController),
	fx.Provide(controllers.NewAboutController),
	fx.Provide(controllers.NewAdminController))
