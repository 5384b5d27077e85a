package request_models

type CreateFAQRequest struct {
	Question string `json:"question" binding:"required,min=1"`
	Answer   string `json:"answer" binding:"required,min=1"`
}

type UpdateFAQRequest struct {
	Question *string `json:"question" binding:"omitempty,min=1"`
	Answer   *string `json:"answer" binding:"omitempty,min=1"`
}

type CreateTeamMemberRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Role        string `json:"role" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Order       int    `json:"order"`
}

type UpdateTeamMemberRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Role        *string `json:"role" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Order       *int    `json:"order"`
}

// ReplaceSiteSettingsRequest carries the full settings copy; the replace
// endpoint overwrites every field, substituting defaults for empties.
type ReplaceSiteSettingsRequest struct {
	Currency string `json:"currency" binding:"omitempty,oneof=USD INR"`

	SupportEmail string `json:"supportEmail" binding:"omitempty,email"`
	SupportPhone string `json:"supportPhone"`
	RedirectURL  string `json:"redirectUrl" binding:"omitempty,url"`

	TwitterURL   string `json:"twitterUrl" binding:"omitempty,url"`
	FacebookURL  string `json:"facebookUrl" binding:"omitempty,url"`
	InstagramURL string `json:"instagramUrl" binding:"omitempty,url"`
	LinkedinURL  string `json:"linkedinUrl" binding:"omitempty,url"`
	YoutubeURL   string `json:"youtubeUrl" binding:"omitempty,url"`

	HeroHeading    string `json:"heroHeading"`
	HeroSubheading string `json:"heroSubheading"`
	HeroCTALabel   string `json:"heroCtaLabel"`
	HeroCTALink    string `json:"heroCtaLink"`

	Feature1Title string `json:"feature1Title"`
	Feature1Text  string `json:"feature1Text"`
	Feature2Title string `json:"feature2Title"`
	Feature2Text  string `json:"feature2Text"`
	Feature3Title string `json:"feature3Title"`
	Feature3Text  string `json:"feature3Text"`

	CTAHeading     string `json:"ctaHeading"`
	CTAText        string `json:"ctaText"`
	CTAButtonLabel string `json:"ctaButtonLabel"`
	CTAButtonLink  string `json:"ctaButtonLink"`

	Stat1Value string `json:"stat1Value"`
	Stat1Label string `json:"stat1Label"`
	Stat2Value string `json:"stat2Value"`
	Stat2Label string `json:"stat2Label"`
	Stat3Value string `json:"stat3Value"`
	Stat3Label string `json:"stat3Label"`
	Stat4Value string `json:"stat4Value"`
	Stat4Label string `json:"stat4Label"`

	HeroBackgroundURL string `json:"heroBackgroundUrl"`
	CTABackgroundURL  string `json:"ctaBackgroundUrl"`
}

type ReplaceAboutContentRequest struct {
	PageTitle    string `json:"pageTitle"`
	PageSubtitle string `json:"pageSubtitle"`

	StoryHeading    string `json:"storyHeading"`
	StoryParagraph1 string `json:"storyParagraph1"`
	StoryParagraph2 string `json:"storyParagraph2"`
	StoryParagraph3 string `json:"storyParagraph3"`

	VisionHeading  string `json:"visionHeading"`
	VisionText     string `json:"visionText"`
	MissionHeading string `json:"missionHeading"`
	MissionText    string `json:"missionText"`

	ValuesHeading string `json:"valuesHeading"`
	Value1Title   string `json:"value1Title"`
	Value1Text    string `json:"value1Text"`
	Value2Title   string `json:"value2Title"`
	Value2Text    string `json:"value2Text"`
	Value3Title   string `json:"value3Title"`
	Value3Text    string `json:"value3Text"`

	TeamHeading    string `json:"teamHeading"`
	TeamSubheading string `json:"teamSubheading"`

	BannerImageURL string `json:"bannerImageUrl"`
}
