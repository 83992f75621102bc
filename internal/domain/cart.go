package domain

// CartItem is one line of the active cart. LineID is assigned by the cart
// service; adding the same product+variant again merges into the existing
// line instead of creating a new one.
type CartItem struct {
	LineID    string            `json:"lineId"`
	ProductID string            `json:"productId"`
	StoreID   string            `json:"storeId"`
	Name      string            `json:"name"`
	Price     float64           `json:"price"` // unit price
	Quantity  int               `json:"quantity"`
	Variant   map[string]string `json:"variant,omitempty"`
}
