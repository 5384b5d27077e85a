package db_models

import "github.com/google/uuid"

// Subcategory always belongs to a category and is removed with it.
type Subcategory struct {
	BaseModel
	Name         string    `gorm:"not null" json:"name"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`
	CategoryID   uuid.UUID `gorm:"type:uuid;index;not null" json:"categoryId"`
	DisplayOrder int       `gorm:"default:0" json:"order"`
}
