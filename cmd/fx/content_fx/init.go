package content_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hosthub/internal/repositories"
	"hosthub/internal/services"
)

var Module = fx.Provide(
	provideFAQRepo, provideTeamRepo, provideSettingsRepo, provideAboutRepo, provideContentService)

func provideFAQRepo(db *gorm.DB) repositories.FAQRepository {
	return repositories.NewFAQRepository(db)
}

func provideTeamRepo(db *gorm.DB) repositories.TeamMemberRepository {
	return repositories.NewTeamMemberRepository(db)
}

func provideSettingsRepo(db *gorm.DB) repositories.SiteSettingsRepository {
	return repositories.NewSiteSettingsRepository(db)
}

func provideAboutRepo(db *gorm.DB) repositories.AboutContentRepository {
	return repositories.NewAboutContentRepository(db)
}

func provideContentService(
	faqRepo repositories.FAQRepository,
	teamRepo repositories.TeamMemberRepository,
	settingsRepo repositories.SiteSettingsRepository,
	aboutRepo repositories.AboutContentRepository,
) services.ContentServiceInterface {
	return services.NewContentService(faqRepo, teamRepo, settingsRepo, aboutRepo)
}
