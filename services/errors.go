package services

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user already exists")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrBrandNotFound     = errors.New("brand not found")
	ErrModelNotFound     = errors.New("product model not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrLineNotFound      = errors.New("order line not found")
	ErrRegionNotFound    = errors.New("region not found")
	ErrCityNotFound      = errors.New("city not found")
	ErrForbidden         = errors.New("order belongs to another customer")
	ErrOrderNotOpen      = errors.New("order is no longer open")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrStockExceeded     = errors.New("requested quantity exceeds stock")
	ErrInvalidAction     = errors.New("invalid cart action")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInvalidInput      = errors.New("invalid input")
	ErrSlugTaken         = errors.New("slug already in use")
)
