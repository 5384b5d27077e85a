package db_models

type TeamMember struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Role         string `gorm:"not null" json:"role"`
	Description  string `gorm:"type:text" json:"description"`
	ImageURL     string `json:"imageUrl"`
	DisplayOrder int    `gorm:"default:0" json:"order"`
}
