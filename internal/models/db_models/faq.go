package db_models

type FAQ struct {
	BaseModel
	Question string `gorm:"not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
}

func (FAQ) TableName() string {
	return "faqs"
}
