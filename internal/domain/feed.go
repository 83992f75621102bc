package domain

// FeedProduct is a raw per-store product row as delivered by the remote
// catalog feed, before it is normalized into a UnifiedProductRecord.
type FeedProduct struct {
	SKU         string   `json:"sku"`
	StoreID     string   `json:"storeId"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Rating      *float64 `json:"rating,omitempty"`
	InStock     bool     `json:"inStock"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Dietary     []string `json:"dietary,omitempty"`
	DistanceKm  *float64 `json:"distanceKm,omitempty"`
	StoreName   string   `json:"storeName,omitempty"`
}

// FeedResponse is the response envelope from the catalog feed API.
type FeedResponse struct {
	Products    []FeedProduct `json:"products"`
	TotalHits   int           `json:"totalHits"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
}
