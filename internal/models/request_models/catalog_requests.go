package request_models

import "github.com/shopspring/decimal"

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Slug string `json:"slug" binding:"required,slug"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug *string `json:"slug" binding:"omitempty,slug"`
}

type CreateSubcategoryRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	Slug       string `json:"slug" binding:"required,slug"`
	CategoryID string `json:"categoryId" binding:"required,uuid"`
	Order      int    `json:"order"`
}

type UpdateSubcategoryRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug       *string `json:"slug" binding:"omitempty,slug"`
	CategoryID *string `json:"categoryId" binding:"omitempty,uuid"`
	Order      *int    `json:"order"`
}

type CreatePlanRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=100"`
	Description   string          `json:"description"`
	PriceUSD      decimal.Decimal `json:"priceUsd"`
	PriceINR      decimal.Decimal `json:"priceInr"`
	Period        string          `json:"period" binding:"required,oneof=month year"`
	Features      []string        `json:"features"`
	Popular       bool            `json:"popular"`
	CategoryID    string          `json:"categoryId" binding:"required,uuid"`
	SubcategoryID string          `json:"subcategoryId" binding:"required,uuid"`
	Order         int             `json:"order"`
}

type UpdatePlanRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Description   *string          `json:"description"`
	PriceUSD      *decimal.Decimal `json:"priceUsd"`
	PriceINR      *decimal.Decimal `json:"priceInr"`
	Period        *string          `json:"period" binding:"omitempty,oneof=month year"`
	Features      *[]string        `json:"features"`
	Popular       *bool            `json:"popular"`
	CategoryID    *string          `json:"categoryId" binding:"omitempty,uuid"`
	SubcategoryID *string          `json:"subcategoryId" binding:"omitempty,uuid"`
	Order         *int             `json:"order"`
}
