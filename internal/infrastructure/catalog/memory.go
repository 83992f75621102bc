package catalog

import (
	"sync"

	"github.com/groceryflow/backend/internal/domain"
)

// MemoryCatalog is a thread-safe in-memory catalog provider and store
// directory. Catalog() hands out a fresh copy each call so search works on a
// stable snapshot even while Replace swaps in a new feed.
type MemoryCatalog struct {
	mutex   sync.RWMutex
	records []domain.UnifiedProductRecord
	stores  map[string]domain.StoreInfo
}

// NewMemoryCatalog creates a catalog over the given records and stores
func NewMemoryCatalog(records []domain.UnifiedProductRecord, stores []domain.StoreInfo) *MemoryCatalog {
	c := &MemoryCatalog{
		stores: make(map[string]domain.StoreInfo, len(stores)),
	}
	c.records = append(c.records, records...)
	for _, s := range stores {
		c.stores[s.ID] = s
	}
	return c
}

// Catalog returns a snapshot copy of the current records
func (c *MemoryCatalog) Catalog() []domain.UnifiedProductRecord {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	snapshot := make([]domain.UnifiedProductRecord, len(c.records))
	copy(snapshot, c.records)
	return snapshot
}

// Store looks up store metadata by ID
func (c *MemoryCatalog) Store(storeID string) (domain.StoreInfo, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	info, ok := c.stores[storeID]
	return info, ok
}

// Replace swaps in a freshly ingested record set, e.g. after a feed refresh
func (c *MemoryCatalog) Replace(records []domain.UnifiedProductRecord) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.records = make([]domain.UnifiedProductRecord, len(records))
	copy(c.records, records)
}

// SetStore adds or updates store metadata
func (c *MemoryCatalog) SetStore(info domain.StoreInfo) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.stores[info.ID] = info
}

// Size returns the current number of records (for debugging/monitoring)
func (c *MemoryCatalog) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.records)
}
