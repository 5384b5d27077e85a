package db_models

// SiteSettings is a singleton row (SingletonID) holding the storefront
// copy and links. Reads always return a fully populated object: empty
// columns are substituted with the defaults below.
type SiteSettings struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Currency string `json:"currency"`

	SupportEmail string `json:"supportEmail"`
	SupportPhone string `json:"supportPhone"`
	RedirectURL  string `json:"redirectUrl"`

	TwitterURL   string `json:"twitterUrl"`
	FacebookURL  string `json:"facebookUrl"`
	InstagramURL string `json:"instagramUrl"`
	LinkedinURL  string `json:"linkedinUrl"`
	YoutubeURL   string `json:"youtubeUrl"`

	HeroHeading    string `gorm:"type:text" json:"heroHeading"`
	HeroSubheading string `gorm:"type:text" json:"heroSubheading"`
	HeroCTALabel   string `json:"heroCtaLabel"`
	HeroCTALink    string `json:"heroCtaLink"`

	Feature1Title string `json:"feature1Title"`
	Feature1Text  string `gorm:"type:text" json:"feature1Text"`
	Feature2Title string `json:"feature2Title"`
	Feature2Text  string `gorm:"type:text" json:"feature2Text"`
	Feature3Title string `json:"feature3Title"`
	Feature3Text  string `gorm:"type:text" json:"feature3Text"`

	CTAHeading     string `gorm:"type:text" json:"ctaHeading"`
	CTAText        string `gorm:"type:text" json:"ctaText"`
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

func (SiteSettings) TableName() string {
	return "site_settings"
}

// SingletonID identifies the single logical settings/about row.
const SingletonID uint = 1

// DefaultSiteSettings is the compiled-in copy used to fill empty columns
// and to answer reads when the store is unavailable.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID: SingletonID,

		Currency: "USD",

		SupportEmail: "support@hosthub.example",
		SupportPhone: "+1 (800) 555-0142",
		RedirectURL:  "https://portal.hosthub.example",

		TwitterURL:   "https://twitter.com/hosthub",
		FacebookURL:  "https://facebook.com/hosthub",
		InstagramURL: "https://instagram.com/hosthub",
		LinkedinURL:  "https://linkedin.com/company/hosthub",
		YoutubeURL:   "https://youtube.com/@hosthub",

		HeroHeading:    "Fast, reliable hosting for every project",
		HeroSubheading: "From a single blog to a fleet of virtual servers, launch in minutes on infrastructure you can trust.",
		HeroCTALabel:   "View plans",
		HeroCTALink:    "/plans",

		Feature1Title: "Blazing performance",
		Feature1Text:  "NVMe storage and tuned web stacks keep your sites fast under load.",
		Feature2Title: "Always-on support",
		Feature2Text:  "Real engineers answer around the clock, every day of the year.",
		Feature3Title: "Free migrations",
		Feature3Text:  "Our team moves your existing sites over at no charge.",

		CTAHeading:     "Ready to get started?",
		CTAText:        "Spin up your first plan today. No setup fees, cancel anytime.",
		CTAButtonLabel: "Get started",
		CTAButtonLink:  "/plans",

		Stat1Value: "99.9%",
		Stat1Label: "Uptime guarantee",
		Stat2Value: "12,000+",
		Stat2Label: "Happy customers",
		Stat3Value: "24/7",
		Stat3Label: "Expert support",
		Stat4Value: "6",
		Stat4Label: "Global datacenters",

		HeroBackgroundURL: "/images/hero-bg.jpg",
		CTABackgroundURL:  "/images/cta-bg.jpg",
	}
}

// ApplyDefaults fills every empty field from DefaultSiteSettings so
// responses are never partial.
func (s *SiteSettings) ApplyDefaults() {
	def := DefaultSiteSettings()
	fillString(&s.Currency, def.Currency)
	fillString(&s.SupportEmail, def.SupportEmail)
	fillString(&s.SupportPhone, def.SupportPhone)
	fillString(&s.RedirectURL, def.RedirectURL)
	fillString(&s.TwitterURL, def.TwitterURL)
	fillString(&s.FacebookURL, def.FacebookURL)
	fillString(&s.InstagramURL, def.InstagramURL)
	fillString(&s.LinkedinURL, def.LinkedinURL)
	fillString(&s.YoutubeURL, def.YoutubeURL)
	fillString(&s.HeroHeading, def.HeroHeading)
	fillString(&s.HeroSubheading, def.HeroSubheading)
	fillString(&s.HeroCTALabel, def.HeroCTALabel)
	fillString(&s.HeroCTALink, def.HeroCTALink)
	fillString(&s.Feature1Title, def.Feature1Title)
	fillString(&s.Feature1Text, def.Feature1Text)
	fillString(&s.Feature2Title, def.Feature2Title)
	fillString(&s.Feature2Text, def.Feature2Text)
	fillString(&s.Feature3Title, def.Feature3Title)
	fillString(&s.Feature3Text, def.Feature3Text)
	fillString(&s.CTAHeading, def.CTAHeading)
	fillString(&s.CTAText, def.CTAText)
	fillString(&s.CTAButtonLabel, def.CTAButtonLabel)
	fillString(&s.CTAButtonLink, def.CTAButtonLink)
	fillString(&s.Stat1Value, def.Stat1Value)
	fillString(&s.Stat1Label, def.Stat1Label)
	fillString(&s.Stat2Value, def.Stat2Value)
	fillString(&s.Stat2Label, def.Stat2Label)
	fillString(&s.Stat3Value, def.Stat3Value)
	fillString(&s.Stat3Label, def.Stat3Label)
	fillString(&s.Stat4Value, def.Stat4Value)
	fillString(&s.Stat4Label, def.Stat4Label)
	fillString(&s.HeroBackgroundURL, def.HeroBackgroundURL)
	fillString(&s.CTABackgroundURL, def.CTABackgroundURL)
}

func fillString(field *string, def string) {
	if *field == "" {
		*field = def
	}
}
