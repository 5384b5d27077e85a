package services

import (
	"context"

	"hosthub/internal/models/db_models"
	"hosthub/internal/models/request_models"
	"hosthub/internal/repositories"
	"hosthub/pkg/utils"
)

type ContentServiceInterface interface {
	ListFAQs(ctx context.Context) ([]db_models.FAQ, error)
	CreateFAQ(ctx context.Context, req request_models.CreateFAQRequest) (*db_models.FAQ, error)
	UpdateFAQ(ctx context.Context, id string, req request_models.UpdateFAQRequest) (*db_models.FAQ, error)
	DeleteFAQ(ctx context.Context, id string) (bool, error)

	ListTeamMembers(ctx context.Context) ([]db_models.TeamMember, error)
	CreateTeamMember(ctx context.Context, req request_models.CreateTeamMemberRequest) (*db_models.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, req request_models.UpdateTeamMemberRequest) (*db_models.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) (bool, error)

	GetSettings(ctx context.Context) (*db_models.SiteSettings, error)
	ReplaceSettings(ctx context.Context, req request_models.ReplaceSiteSettingsRequest) (*db_models.SiteSettings, error)
	GetAbout(ctx context.Context) (*db_models.AboutContent, error)
	ReplaceAbout(ctx context.Context, req request_models.ReplaceAboutContentRequest) (*db_models.AboutContent, error)
}

type ContentService struct {
	faqRepo      repositories.FAQRepository
	teamRepo     repositories.TeamMemberRepository
	settingsRepo repositories.SiteSettingsRepository
	aboutRepo    repositories.AboutContentRepository
}

func NewContentService(
	faqRepo repositories.FAQRepository,
	teamRepo repositories.TeamMemberRepository,
	settingsRepo repositories.SiteSettingsRepository,
	aboutRepo repositories.AboutContentRepository,
) ContentServiceInterface {
	return &ContentService{
		faqRepo:      faqRepo,
		teamRepo:     teamRepo,
		settingsRepo: settingsRepo,
		aboutRepo:    aboutRepo,
	}
}

func (s *ContentService) ListFAQs(ctx context.Context) ([]db_models.FAQ, error) {
	faqs, err := s.faqRepo.List(ctx)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return faqs, nil
}

func (s *ContentService) CreateFAQ(ctx context.Context, req request_models.CreateFAQRequest) (*db_models.FAQ, error) {
	faq := &db_models.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
	}
	if err := s.faqRepo.Insert(ctx, faq); err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return faq, nil
}

func (s *ContentService) UpdateFAQ(ctx context.Context, id string, req request_models.UpdateFAQRequest) (*db_models.FAQ, error) {
	faq, err := s.faqRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	if faq == nil {
		return nil, utils.ErrNotFound
	}

	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}

	if err := s.faqRepo.Save(ctx, faq); err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return faq, nil
}

func (s *ContentService) DeleteFAQ(ctx context.Context, id string) (bool, error) {
	removed, err := s.faqRepo.Delete(ctx, id)
	if err != nil {
		return false, storageError(err, utils.ErrDatabaseError)
	}
	return removed, nil
}

func (s *ContentService) ListTeamMembers(ctx context.Context) ([]db_models.TeamMember, error) {
	members, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return members, nil
}

func (s *ContentService) CreateTeamMember(ctx context.Context, req request_models.CreateTeamMemberRequest) (*db_models.TeamMember, error) {
	member := &db_models.TeamMember{
		Name:         req.Name,
		Role:         req.Role,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.Order,
	}
	if err := s.teamRepo.Insert(ctx, member); err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return member, nil
}

func (s *ContentService) UpdateTeamMember(ctx context.Context, id string, req request_models.UpdateTeamMemberRequest) (*db_models.TeamMember, error) {
	member, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	if member == nil {
		return nil, utils.ErrNotFound
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Description != nil {
		member.Description = *req.Description
	}
	if req.ImageURL != nil {
		member.ImageURL = *req.ImageURL
	}
	if req.Order != nil {
		member.DisplayOrder = *req.Order
	}

	if err := s.teamRepo.Save(ctx, member); err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return member, nil
}

func (s *ContentService) DeleteTeamMember(ctx context.Context, id string) (bool, error) {
	removed, err := s.teamRepo.Delete(ctx, id)
	if err != nil {
		return false, storageError(err, utils.ErrDatabaseError)
	}
	return removed, nil
}

func (s *ContentService) GetSettings(ctx context.Context) (*db_models.SiteSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return settings, nil
}

func (s *ContentService) ReplaceSettings(ctx context.Context, req request_models.ReplaceSiteSettingsRequest) (*db_models.SiteSettings, error) {
	settings := &db_models.SiteSettings{
		Currency: req.Currency,

		SupportEmail: req.SupportEmail,
		SupportPhone: req.SupportPhone,
		RedirectURL:  req.RedirectURL,

		TwitterURL:   req.TwitterURL,
		FacebookURL:  req.FacebookURL,
		InstagramURL: req.InstagramURL,
		LinkedinURL:  req.LinkedinURL,
		YoutubeURL:   req.YoutubeURL,

		HeroHeading:    req.HeroHeading,
		HeroSubheading: req.HeroSubheading,
		HeroCTALabel:   req.HeroCTALabel,
		HeroCTALink:    req.HeroCTALink,

		Feature1Title: req.Feature1Title,
		Feature1Text:  req.Feature1Text,
		Feature2Title: req.Feature2Title,
		Feature2Text:  req.Feature2Text,
		Feature3Title: req.Feature3Title,
		Feature3Text:  req.Feature3Text,

		CTAHeading:     req.CTAHeading,
		CTAText:        req.CTAText,
		CTAButtonLabel: req.CTAButtonLabel,
		CTAButtonLink:  req.CTAButtonLink,

		Stat1Value: req.Stat1Value,
		Stat1Label: req.Stat1Label,
		Stat2Value: req.Stat2Value,
		Stat2Label: req.Stat2Label,
		Stat3Value: req.Stat3Value,
		Stat3Label: req.Stat3Label,
		Stat4Value: req.Stat4Value,
		Stat4Label: req.Stat4Label,

		HeroBackgroundURL: req.HeroBackgroundURL,
		CTABackgroundURL:  req.CTABackgroundURL,
	}

	replaced, err := s.settingsRepo.Replace(ctx, settings)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return replaced, nil
}

func (s *ContentService) GetAbout(ctx context.Context) (*db_models.AboutContent, error) {
	content, err := s.aboutRepo.Get(ctx)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return content, nil
}

func (s *ContentService) ReplaceAbout(ctx context.Context, req request_models.ReplaceAboutContentRequest) (*db_models.AboutContent, error) {
	content := &db_models.AboutContent{
		PageTitle:    req.PageTitle,
		PageSubtitle: req.PageSubtitle,

		StoryHeading:    req.StoryHeading,
		StoryParagraph1: req.StoryParagraph1,
		StoryParagraph2: req.StoryParagraph2,
		StoryParagraph3: req.StoryParagraph3,

		VisionHeading:  req.VisionHeading,
		VisionText:     req.VisionText,
		MissionHeading: req.MissionHeading,
		MissionText:    req.MissionText,

		ValuesHeading: req.ValuesHeading,
		Value1Title:   req.Value1Title,
		Value1Text:    req.Value1Text,
		Value2Title:   req.Value2Title,
		Value2Text:    req.Value2Text,
		Value3Title:   req.Value3Title,
		Value3Text:    req.Value3Text,

		TeamHeading:    req.TeamHeading,
		TeamSubheading: req.TeamSubheading,

		BannerImageURL: req.BannerImageURL,
	}

	replaced, err := s.aboutRepo.Replace(ctx, content)
	if err != nil {
		return nil, storageError(err, utils.ErrDatabaseError)
	}
	return replaced, nil
}
