package domain

import "context"

// CatalogProvider supplies the current catalog snapshot. The accessor is
// synchronous; search borrows the returned slice for the duration of one call
// and never mutates it.
type CatalogProvider interface {
	Catalog() []UnifiedProductRecord
}

// StoreDirectory resolves store metadata for basket splitting.
type StoreDirectory interface {
	Store(storeID string) (StoreInfo, bool)
}

// CartService defines the interface for cart mutations. Implementations may
// be backed by persistent storage; any serialization of concurrent writes is
// theirs to impose.
type CartService interface {
	AddToCart(ctx context.Context, product ProductCandidate, quantity int, variant map[string]string) (*CartItem, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int) (*CartItem, error)
	Items(ctx context.Context) ([]CartItem, error)
}

// StockService answers point-in-time stock checks. Callers decide what a
// failed check means; see the orchestrator's assume-in-stock policy.
type StockService interface {
	IsInStock(ctx context.Context, productID string) (bool, error)
}

// VoiceService produces transcripts that feed the intent parser as plain text.
// Out of scope for the core; specified here only as the shape collaborators
// must hand back.
type VoiceService interface {
	Transcribe(ctx context.Context, audioURI, locale string) (string, error)
}

// VisualSearchService turns an image reference into a textual product query.
type VisualSearchService interface {
	DescribeImage(ctx context.Context, imageURI string) (string, error)
}
