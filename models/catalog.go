package models

import (
	"time"
)

// Category groups products on the storefront
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Slug      string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	IconS3Key *string   `json:"icon_s3_key,omitempty"`       // nullable, storage key of the category icon
	IconURL   *string   `gorm:"-" json:"icon_url,omitempty"` // computed field
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// Brand is a product manufacturer
type Brand struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:150;not null" json:"title"`
}

// TableName specifies the table name for the Brand model
func (Brand) TableName() string {
	return "brands"
}

// ProductModel is a product line (e.g. "iPhone 15") shared by several colour variants
type ProductModel struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:150;not null" json:"title"`
}

// TableName specifies the table name for the ProductModel model
func (ProductModel) TableName() string {
	return "product_models"
}

// Specification is a single title/value characteristic of a product
type Specification struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Title     string `gorm:"size:255;not null" json:"title"`
	Value     string `gorm:"size:255;not null" json:"value"`
}

// TableName specifies the table name for the Specification model
func (Specification) TableName() string {
	return "specifications"
}
