package db_models

// Category is a top-level catalog group ("Web Hosting", "VPS", ...).
// List responses embed the owned subcategories.
type Category struct {
	BaseModel
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories"`
}
