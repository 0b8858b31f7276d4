package models

import "time"

// Region is a delivery region
type Region struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:200;not null" json:"name"`
	Cities []City `gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE" json:"cities,omitempty"`
}

// TableName specifies the table name for the Region model
func (Region) TableName() string {
	return "regions"
}

// City is a delivery city inside a region
type City struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	RegionID uint   `gorm:"not null;index" json:"region_id"`
}

// TableName specifies the table name for the City model
func (City) TableName() string {
	return "cities"
}

// ShippingAddress is the delivery address recorded when an order is placed
type ShippingAddress struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	OrderID    uint      `gorm:"not null;uniqueIndex" json:"order_id"`
	Order      *Order    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	Phone      string    `gorm:"size:50;not null" json:"phone"`
	Comment    *string   `gorm:"size:200" json:"comment,omitempty"`
	Street     string    `gorm:"size:150;not null" json:"street"`
	Home       string    `gorm:"size:150;not null" json:"home"`
	Flat       *string   `gorm:"size:150" json:"flat,omitempty"`
	RegionID   uint      `gorm:"not null;index" json:"region_id"`
	Region     *Region   `gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE" json:"region,omitempty"`
	CityID     uint      `gorm:"not null;index" json:"city_id"`
	City       *City     `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE" json:"city,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the ShippingAddress model
func (ShippingAddress) TableName() string {
	return "shipping_addresses"
}
