package catalog

import (
	"strings"

	"github.com/groceryflow/backend/internal/domain"
)

// MapToUnifiedRecord converts a raw feed row into the canonical searchable
// record. SearchableText is built here as the lowercased concatenation of
// name, description, and category, which guarantees the invariant that the
// lowercased name is always a substring of it.
func MapToUnifiedRecord(feed *domain.FeedProduct) domain.UnifiedProductRecord {
	return domain.UnifiedProductRecord{
		ID:       feed.SKU,
		StoreID:  feed.StoreID,
		Name:     feed.Name,
		Brand:    feed.Brand,
		Category: feed.Category,
		Price:    clampPrice(feed.Price),
		Rating:   feed.Rating,
		InStock:  feed.InStock,
		ImageURL: feed.ImageURL,
		Dietary:  feed.Dietary,
		Store: domain.StoreRef{
			Name:       feed.StoreName,
			DistanceKm: feed.DistanceKm,
		},
		SearchableText: buildSearchableText(feed.Name, feed.Description, feed.Category),
	}
}

// MapFeedProducts converts a full feed response into catalog records
func MapFeedProducts(products []domain.FeedProduct) []domain.UnifiedProductRecord {
	records := make([]domain.UnifiedProductRecord, 0, len(products))
	for i := range products {
		records = append(records, MapToUnifiedRecord(&products[i]))
	}
	return records
}

// buildSearchableText joins the searchable fields, lowercased and
// whitespace-normalized
func buildSearchableText(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.ToLower(strings.Join(nonEmpty, " "))
}

// clampPrice guards against malformed feed rows; prices are non-negative
func clampPrice(price float64) float64 {
	if price < 0 {
		return 0
	}
	return price
}
