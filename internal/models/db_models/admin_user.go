package db_models

// AdminUser can sign in to the dashboard. The hash field holds
// "hex(salt)$hex(scrypt digest)" and is never serialized.
type AdminUser struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}
