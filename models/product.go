package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

// Product is a catalog item with a list price, an optional discount percent and on-hand stock
type Product struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	Title             string          `gorm:"size:100;not null" json:"title"`
	Slug              string          `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Price             decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Discount          *int            `gorm:"check:chk_products_discount,discount IS NULL OR (discount >= 0 AND discount <= 100)" json:"discount"` // percent, nullable
	Quantity          int             `gorm:"not null;default:0;check:chk_products_quantity,quantity >= 0" json:"quantity"`                        // on-hand stock
	ColorName         string          `gorm:"size:50" json:"color_name"`
	ColorCode         string          `gorm:"size:7" json:"color_code"`
	Warranty          string          `gorm:"size:150" json:"warranty"`
	ImageS3Key        *string         `json:"image_s3_key,omitempty"`
	ImageURL          *string         `gorm:"-" json:"image_url,omitempty"` // computed field
	PriceWithDiscount decimal.Decimal `gorm:"-" json:"price_with_discount"` // computed in AfterFind
	CategoryID        uint            `gorm:"not null;index" json:"category_id"`
	Category          *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	BrandID           *uint           `gorm:"index" json:"brand_id"`
	Brand             *Brand          `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE" json:"brand,omitempty"`
	ProductModelID    *uint           `gorm:"index" json:"model_id"`
	ProductModel      *ProductModel   `gorm:"foreignKey:ProductModelID;constraint:OnDelete:CASCADE" json:"model,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// EffectivePrice is the list price after applying the discount percentage.
// A nil or zero discount leaves the list price unchanged.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.Discount == nil || *p.Discount == 0 {
		return p.Price
	}
	off := p.Price.Mul(decimal.NewFromInt(int64(*p.Discount))).Div(hundred)
	return p.Price.Sub(off)
}

// InStock reports whether at least one unit is on hand
func (p *Product) InStock() bool {
	return p.Quantity > 0
}

// AfterFind fills the computed discount price after loading from the database
func (p *Product) AfterFind(tx *gorm.DB) error {
	p.PriceWithDiscount = p.EffectivePrice()
	return nil
}

// AfterSave keeps the computed discount price in sync after create or update
func (p *Product) AfterSave(tx *gorm.DB) error {
	p.PriceWithDiscount = p.EffectivePrice()
	return nil
}
