package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type BillingPeriod string

const (
	PeriodMonth BillingPeriod = "month"
	PeriodYear  BillingPeriod = "year"
)

// Plan is a purchasable hosting plan. Category/subcategory references are
// nullable: deleting either leaves the plan in place with the reference
// cleared. Features keep their insertion order through the JSON column.
type Plan struct {
	BaseModel
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	PriceUSD    decimal.Decimal `gorm:"type:numeric(10,2)" json:"priceUsd"`
	PriceINR    decimal.Decimal `gorm:"type:numeric(12,2)" json:"priceInr"`
	Period      BillingPeriod   `gorm:"size:10;default:month" json:"period"`

	Features datatypes.JSONSlice[string] `json:"features"`
	Popular  bool                        `gorm:"default:false" json:"popular"`

	CategoryID    *uuid.UUID `gorm:"type:uuid;index" json:"categoryId"`
	SubcategoryID *uuid.UUID `gorm:"type:uuid;index" json:"subcategoryId"`
	DisplayOrder  int        `gorm:"default:0" json:"order"`
}
