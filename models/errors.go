package models

import "errors"

// Domain errors surfaced by the store operations. Handlers map these to
// HTTP status codes; the Arabic storefront maps them to localized toasts.
var (
	ErrCartNotFound   = errors.New("cart not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrItemNotFound   = errors.New("item not found")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrDuplicateAdmin = errors.New("admin already exists")
	ErrInvalidStatus  = errors.New("invalid status transition")
)
