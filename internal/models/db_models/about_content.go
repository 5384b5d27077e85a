package db_models

// AboutContent is the singleton row behind the about page.
type AboutContent struct {
	ID uint `gorm:"primaryKey" json:"-"`

	PageTitle    string `json:"pageTitle"`
	PageSubtitle string `gorm:"type:text" json:"pageSubtitle"`

	StoryHeading    string `json:"storyHeading"`
	StoryParagraph1 string `gorm:"type:text" json:"storyParagraph1"`
	StoryParagraph2 string `gorm:"type:text" json:"storyParagraph2"`
	StoryParagraph3 string `gorm:"type:text" json:"storyParagraph3"`

	VisionHeading  string `json:"visionHeading"`
	VisionText     string `gorm:"type:text" json:"visionText"`
	MissionHeading string `json:"missionHeading"`
	MissionText    string `gorm:"type:text" json:"missionText"`

	ValuesHeading string `json:"valuesHeading"`
	Value1Title   string `json:"value1Title"`
	Value1Text    string `gorm:"type:text" json:"value1Text"`
	Value2Title   string `json:"value2Title"`
	Value2Text    string `gorm:"type:text" json:"value2Text"`
	Value3Title   string `json:"value3Title"`
	Value3Text    string `gorm:"type:text" json:"value3Text"`

	TeamHeading    string `json:"teamHeading"`
	TeamSubheading string `gorm:"type:text" json:"teamSubheading"`

	BannerImageURL string `json:"bannerImageUrl"`
}

func (AboutContent) TableName() string {
	return "about_page_content"
}

func DefaultAboutContent() AboutContent {
	return AboutContent{
		ID: SingletonID,

		PageTitle:    "About HostHub",
		PageSubtitle: "We keep the web running for thousands of businesses, one server at a time.",

		StoryHeading:    "Our story",
		StoryParagraph1: "HostHub started in a garage with two servers and a conviction that hosting should be simple.",
		StoryParagraph2: "Today we run infrastructure across six datacenters and serve customers in over forty countries.",
		StoryParagraph3: "Through all that growth, support tickets are still answered by the engineers who run the machines.",

		VisionHeading:  "Our vision",
		VisionText:     "A web where anyone can publish without worrying about the plumbing underneath.",
		MissionHeading: "Our mission",
		MissionText:    "Deliver dependable hosting with honest pricing and support worth talking about.",

		ValuesHeading: "What we stand for",
		Value1Title:   "Reliability",
		Value1Text:    "We treat every outage as a promise broken, and we keep our promises.",
		Value2Title:   "Transparency",
		Value2Text:    "Clear pricing, public status pages, and straight answers.",
		Value3Title:   "Craft",
		Value3Text:    "We sweat the details so our customers never have to.",

		TeamHeading:    "Meet the team",
		TeamSubheading: "The people who keep your sites online.",

		BannerImageURL: "/images/about-banner.jpg",
	}
}

// ApplyDefaults fills every empty field from DefaultAboutContent.
func (a *AboutContent) ApplyDefaults() {
	def := DefaultAboutContent()
	fillString(&a.PageTitle, def.PageTitle)
	fillString(&a.PageSubtitle, def.PageSubtitle)
	fillString(&a.StoryHeading, def.StoryHeading)
	fillString(&a.StoryParagraph1, def.StoryParagraph1)
	fillString(&a.StoryParagraph2, def.StoryParagraph2)
	fillString(&a.StoryParagraph3, def.StoryParagraph3)
	fillString(&a.VisionHeading, def.VisionHeading)
	fillString(&a.VisionText, def.VisionText)
	fillString(&a.MissionHeading, def.MissionHeading)
	fillString(&a.MissionText, def.MissionText)
	fillString(&a.ValuesHeading, def.ValuesHeading)
	fillString(&a.Value1Title, def.Value1Title)
	fillString(&a.Value1Text, def.Value1Text)
	fillString(&a.Value2Title, def.Value2Title)
	fillString(&a.Value2Text, def.Value2Text)
	fillString(&a.Value3Title, def.Value3Title)
	fillString(&a.Value3Text, def.Value3Text)
	fillString(&a.TeamHeading, def.TeamHeading)
	fillString(&a.TeamSubheading, def.TeamSubheading)
	fillString(&a.BannerImageURL, def.BannerImageURL)
}
