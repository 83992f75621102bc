package catalog

import "github.com/groceryflow/backend/internal/domain"

func ptr(v float64) *float64 { return &v }

// SeedStores returns the demo store directory used when catalog.source is
// "memory".
func SeedStores() []domain.StoreInfo {
	return []domain.StoreInfo{
		{ID: "store-fresh", Name: "FreshMart", ETA: "30-45 min", DeliveryFee: 3.99},
		{ID: "store-green", Name: "GreenGrocer", ETA: "45-60 min", DeliveryFee: 4.99},
		{ID: "store-daily", Name: "Daily Pantry", ETA: "60-90 min", DeliveryFee: 2.49},
	}
}

// SeedRecords returns a small demo catalog so the server and chat binaries
// work without a feed connection.
func SeedRecords() []domain.UnifiedProductRecord {
	rows := []domain.FeedProduct{
		{
			SKU: "p1", StoreID: "store-fresh", Name: "Organic Bananas", Category: "Fruits",
			Price: 2.99, Rating: ptr(4.5), InStock: true, StoreName: "FreshMart", DistanceKm: ptr(1.2),
			Description: "fresh organic bananas perfect for smoothies", Dietary: []string{"vegan", "gluten-free"},
		},
		{
			SKU: "p2", StoreID: "store-fresh", Name: "Whole Milk", Brand: "Meadow Hill", Category: "Dairy",
			Price: 3.49, Rating: ptr(4.2), InStock: true, StoreName: "FreshMart", DistanceKm: ptr(1.2),
			Description: "creamy whole milk from grass fed cows one gallon",
		},
		{
			SKU: "p3", StoreID: "store-green", Name: "Sourdough Bread", Brand: "Stone Oven", Category: "Bakery",
			Price: 4.25, Rating: ptr(4.8), InStock: true, StoreName: "GreenGrocer", DistanceKm: ptr(3.4),
			Description: "artisan sourdough bread baked daily",
		},
		{
			SKU: "p4", StoreID: "store-green", Name: "Baby Spinach", Category: "Vegetables",
			Price: 2.79, Rating: ptr(4.0), InStock: true, StoreName: "GreenGrocer", DistanceKm: ptr(3.4),
			Description: "washed baby spinach leaves salad ready", Dietary: []string{"vegan", "gluten-free"},
		},
		{
			SKU: "p5", StoreID: "store-daily", Name: "Free Range Eggs", Brand: "Sunrise Farm", Category: "Dairy",
			Price: 5.99, Rating: ptr(4.6), InStock: true, StoreName: "Daily Pantry", DistanceKm: ptr(5.1),
			Description: "dozen large free range eggs",
		},
		{
			SKU: "p6", StoreID: "store-daily", Name: "Ground Coffee", Brand: "Harbor Roast", Category: "Beverages",
			Price: 8.99, Rating: ptr(3.1), InStock: false, StoreName: "Daily Pantry", DistanceKm: ptr(5.1),
			Description: "medium roast ground coffee 12 oz",
		},
		{
			SKU: "p7", StoreID: "store-fresh", Name: "Greek Yogurt", Brand: "Meadow Hill", Category: "Dairy",
			Price: 1.29, Rating: ptr(4.4), InStock: true, StoreName: "FreshMart", DistanceKm: ptr(1.2),
			Description: "plain greek yogurt single serve high protein", Dietary: []string{"vegetarian"},
		},
		{
			SKU: "p8", StoreID: "store-green", Name: "Avocado", Category: "Fruits",
			Price: 1.49, InStock: true, StoreName: "GreenGrocer", DistanceKm: ptr(3.4),
			Description: "ripe hass avocado", Dietary: []string{"vegan", "gluten-free"},
		},
	}

	return MapFeedProducts(rows)
}
