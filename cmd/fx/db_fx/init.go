package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"hosthub/internal/infra"
	"hosthub/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.AppConfig) *gorm.DB {
	db := infra.InitPostgresql(cfg)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}
