package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hosthub/internal/models/db_models"
)

func TestSiteSettingsGetCreatesDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewSiteSettingsRepository(db)

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, settings)

	assert.Equal(t, "USD", settings.Currency)
	assert.Equal(t, "99.9%", settings.Stat1Value)
	assert.NotEmpty(t, settings.HeroHeading)
	assert.NotEmpty(t, settings.CTAButtonLabel)
	assert.NotEmpty(t, settings.SupportEmail)

	// exactly one row, id pinned
	var count int64
	require.NoError(t, db.Model(&db_models.SiteSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, db_models.SingletonID, settings.ID)
}

func TestSiteSettingsReplaceFillsEmptyFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewSiteSettingsRepository(db)
	ctx := context.Background()

	replaced, err := repo.Replace(ctx, &db_models.SiteSettings{
		Currency:    "INR",
		HeroHeading: "Hosting that just works",
	})
	require.NoError(t, err)
	assert.Equal(t, "INR", replaced.Currency)
	assert.Equal(t, "Hosting that just works", replaced.HeroHeading)
	// untouched fields fall back to defaults rather than empty strings
	assert.Equal(t, "99.9%", replaced.Stat1Value)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INR", got.Currency)
	assert.Equal(t, "Hosting that just works", got.HeroHeading)

	var count int64
	require.NoError(t, db.Model(&db_models.SiteSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAboutContentGetCreatesDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewAboutContentRepository(db)

	content, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.NotEmpty(t, content.PageTitle)
	assert.NotEmpty(t, content.StoryParagraph1)
	assert.NotEmpty(t, content.MissionText)
	assert.Equal(t, db_models.SingletonID, content.ID)
}

func TestTeamMemberOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewTeamMemberRepository(db)
	ctx := context.Background()

	second := &db_models.TeamMember{Name: "B", Role: "CTO", DisplayOrder: 2}
	first := &db_models.TeamMember{Name: "A", Role: "CEO", DisplayOrder: 1}
	require.NoError(t, repo.Insert(ctx, second))
	require.NoError(t, repo.Insert(ctx, first))

	members, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "A", members[0].Name)
	assert.Equal(t, "B", members[1].Name)
}

func TestFAQDeleteReportsRemoval(t *testing.T) {
	db := newTestDB(t)
	repo := NewFAQRepository(db)
	ctx := context.Background()

	faq := &db_models.FAQ{Question: "Is there a refund policy?", Answer: "Yes, 30 days."}
	require.NoError(t, repo.Insert(ctx, faq))

	removed, err := repo.Delete(ctx, faq.ID.String())
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, faq.ID.String())
	require.NoError(t, err)
	assert.False(t, removed)
}
