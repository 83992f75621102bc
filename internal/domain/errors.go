package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrProductNotFound is returned when a product cannot be found in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrCartItemNotFound is returned when a cart mutation targets a product not in the cart
	ErrCartItemNotFound = errors.New("item not found in cart")

	// ErrCartUnavailable is returned when the cart service cannot be reached
	ErrCartUnavailable = errors.New("cart service unavailable")

	// ErrStockUnavailable is returned when a stock check cannot be completed
	ErrStockUnavailable = errors.New("stock check unavailable")

	// ErrFeedAPIFailure is returned when a catalog feed request fails
	ErrFeedAPIFailure = errors.New("catalog feed request failed")
)
