package domain

// StoreRef carries the per-store context embedded in a catalog record
type StoreRef struct {
	Name       string   `json:"name,omitempty"`
	DistanceKm *float64 `json:"distanceKm,omitempty"` // non-negative when present
}

// UnifiedProductRecord is the canonical searchable product row produced by
// catalog ingestion. Records are immutable snapshots; the assistant core never
// mutates or caches them across calls.
//
// Invariant: SearchableText always contains the lowercased Name as a
// substring, so an exact phrase match on the name is guaranteed to hit.
type UnifiedProductRecord struct {
	ID             string   `json:"id"`
	StoreID        string   `json:"storeId"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand,omitempty"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`            // non-negative
	Rating         *float64 `json:"rating,omitempty"` // 0-5 when present
	InStock        bool     `json:"inStock"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	Dietary        []string `json:"dietary,omitempty"`
	Store          StoreRef `json:"store"`
	SearchableText string   `json:"searchableText"` // pre-lowercased name+description+category
}

// ProductFilter is an optional predicate bag applied as a hard gate before
// scoring. All present fields are conjunctive; absent fields impose no
// constraint.
type ProductFilter struct {
	Category    string   `json:"category,omitempty"`
	PriceMin    *float64 `json:"priceMin,omitempty"`
	PriceMax    *float64 `json:"priceMax,omitempty"`
	DistanceKm  *float64 `json:"distanceKm,omitempty"`
	StoreIDs    []string `json:"storeIds,omitempty"`
	Dietary     []string `json:"dietary,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	InStockOnly bool     `json:"inStockOnly,omitempty"`
}

// ProductCandidate is a scored, filtered catalog record returned from search.
// Confidence is normalized against the best-scoring candidate in the same
// result set, so it is always in [0,1] and the top result scores 1.0.
type ProductCandidate struct {
	ID         string   `json:"id"`
	StoreID    string   `json:"storeId"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Price      float64  `json:"price"`
	Rating     *float64 `json:"rating,omitempty"`
	DistanceKm *float64 `json:"distanceKm,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	InStock    bool     `json:"inStock"`
	Confidence float64  `json:"confidence"`
}

// StoreInfo describes a store known to the delivery network.
// The basket splitter uses it to attach names, ETAs, and fees to store groups.
type StoreInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ETA         string  `json:"eta"` // e.g. "30-45 min"
	DeliveryFee float64 `json:"deliveryFee"`
}
