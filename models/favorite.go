package models

import "time"

// FavoriteProduct marks a product as a user's favorite. (user, product) is unique.
type FavoriteProduct struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:ux_favorite_products_user_product" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID uint      `gorm:"not null;uniqueIndex:ux_favorite_products_user_product" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	CreatedAt time.Time `json:"added_at"`
}

// TableName specifies the table name for the FavoriteProduct model
func (FavoriteProduct) TableName() string {
	return "favorite_products"
}
