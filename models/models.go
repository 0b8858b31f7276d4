package models

// All lists every persisted model in dependency order, for migrations
func All() []interface{} {
	return []interface{}{
		&User{},
		&Profile{},
		&Customer{},
		&Category{},
		&Brand{},
		&ProductModel{},
		&Product{},
		&Specification{},
		&FavoriteProduct{},
		&Order{},
		&OrderProduct{},
		&Region{},
		&City{},
		&ShippingAddress{},
	}
}
