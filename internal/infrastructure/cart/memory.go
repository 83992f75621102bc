package cart

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/groceryflow/backend/internal/domain"
)

// MemoryCart is a thread-safe in-memory cart service. Lines are keyed by
// product+variant so adding the same product again merges quantities.
type MemoryCart struct {
	mutex sync.RWMutex
	lines map[string]*domain.CartItem
}

// NewMemoryCart creates an empty in-memory cart
func NewMemoryCart() *MemoryCart {
	return &MemoryCart{
		lines: make(map[string]*domain.CartItem),
	}
}

// AddToCart adds quantity of the product, merging into an existing line for
// the same product+variant when present. Returns the affected line.
func (c *MemoryCart) AddToCart(ctx context.Context, product domain.ProductCandidate, quantity int, variant map[string]string) (*domain.CartItem, error) {
	if product.ID == "" || quantity <= 0 {
		return nil, domain.ErrInvalidRequest
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := lineKey(product.ID, variant)
	if line, ok := c.lines[key]; ok {
		line.Quantity += quantity
		copied := *line
		return &copied, nil
	}

	line := &domain.CartItem{
		LineID:    uuid.New().String(),
		ProductID: product.ID,
		StoreID:   product.StoreID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Variant:   variant,
	}
	c.lines[key] = line

	copied := *line
	return &copied, nil
}

// UpdateQuantity sets the quantity across all lines of the given product.
// A quantity of zero or less removes the lines. Returns the first updated
// line, or nil when the product was removed.
func (c *MemoryCart) UpdateQuantity(ctx context.Context, productID string, quantity int) (*domain.CartItem, error) {
	if productID == "" {
		return nil, domain.ErrInvalidRequest
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	var updated *domain.CartItem
	found := false
	for key, line := range c.lines {
		if line.ProductID != productID {
			continue
		}
		found = true
		if quantity <= 0 {
			delete(c.lines, key)
			continue
		}
		line.Quantity = quantity
		if updated == nil {
			copied := *line
			updated = &copied
		}
	}

	if !found {
		return nil, domain.ErrCartItemNotFound
	}
	return updated, nil
}

// Items returns a copy of the cart lines ordered by store then product,
// so callers see a deterministic view.
func (c *MemoryCart) Items(ctx context.Context) ([]domain.CartItem, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	items := make([]domain.CartItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, *line)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].StoreID != items[j].StoreID {
			return items[i].StoreID < items[j].StoreID
		}
		return items[i].ProductID < items[j].ProductID
	})

	return items, nil
}

// Clear removes all lines from the cart
func (c *MemoryCart) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.lines = make(map[string]*domain.CartItem)
}

// lineKey builds a stable key from product ID and sorted variant attributes
func lineKey(productID string, variant map[string]string) string {
	if len(variant) == 0 {
		return productID
	}

	attrs := make([]string, 0, len(variant))
	for k, v := range variant {
		attrs = append(attrs, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(attrs)

	return productID + "|" + strings.Join(attrs, ",")
}
