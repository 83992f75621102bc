package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/groceryflow/backend/internal/domain"
)

func candidate(id, storeID, name string, price float64) domain.ProductCandidate {
	return domain.ProductCandidate{ID: id, StoreID: storeID, Name: name, Price: price, InStock: true, Confidence: 1}
}

func TestAddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a new line", func(t *testing.T) {
		c := NewMemoryCart()

		line, err := c.AddToCart(ctx, candidate("p1", "s1", "Bananas", 2.99), 2, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.LineID == "" {
			t.Error("LineID is empty, want generated ID")
		}
		if line.Quantity != 2 {
			t.Errorf("Quantity = %d, want 2", line.Quantity)
		}
	})

	t.Run("merges repeated adds of the same product", func(t *testing.T) {
		c := NewMemoryCart()

		c.AddToCart(ctx, candidate("p1", "s1", "Bananas", 2.99), 1, nil)
		line, err := c.AddToCart(ctx, candidate("p1", "s1", "Bananas", 2.99), 2, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.Quantity != 3 {
			t.Errorf("Quantity = %d, want 3 after merge", line.Quantity)
		}

		items, _ := c.Items(ctx)
		if len(items) != 1 {
			t.Errorf("got %d lines, want 1", len(items))
		}
	})

	t.Run("different variants stay separate lines", func(t *testing.T) {
		c := NewMemoryCart()

		c.AddToCart(ctx, candidate("p1", "s1", "Yogurt", 1.29), 1, map[string]string{"size": "small"})
		c.AddToCart(ctx, candidate("p1", "s1", "Yogurt", 1.29), 1, map[string]string{"size": "large"})

		items, _ := c.Items(ctx)
		if len(items) != 2 {
			t.Errorf("got %d lines, want 2", len(items))
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		c := NewMemoryCart()

		if _, err := c.AddToCart(ctx, domain.ProductCandidate{}, 1, nil); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest for empty product ID", err)
		}
		if _, err := c.AddToCart(ctx, candidate("p1", "s1", "Bananas", 2.99), 0, nil); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest for zero quantity", err)
		}
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("updates an existing line", func(t *testing.T) {
		c := NewMemoryCart()
		c.AddToCart(ctx, candidate("p1", "s1", "Bananas", 2.99), 1, nil)

		line, err := c.UpdateQuantity(ctx, "p1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.Quantity != 5 {
			t.Errorf("Quantity = %d, want 5", line.Quantity)
		}
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		c := NewMemoryCart()
		c.AddToCart(ctx, candidate("p1", "s1", "Bananas", 2.99), 1, nil)

		if _, err := c.UpdateQuantity(ctx, "p1", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items, _ := c.Items(ctx)
		if len(items) != 0 {
			t.Errorf("got %d lines, want 0 after removal", len(items))
		}
	})

	t.Run("unknown product errors", func(t *testing.T) {
		c := NewMemoryCart()

		_, err := c.UpdateQuantity(ctx, "missing", 1)
		if !errors.Is(err, domain.ErrCartItemNotFound) {
			t.Errorf("error = %v, want ErrCartItemNotFound", err)
		}
	})
}

func TestItemsOrdering(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCart()

	c.AddToCart(ctx, candidate("p2", "s2", "Bread", 4.25), 1, nil)
	c.AddToCart(ctx, candidate("p9", "s1", "Milk", 3.49), 1, nil)
	c.AddToCart(ctx, candidate("p1", "s1", "Bananas", 2.99), 1, nil)

	items, err := c.Items(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"p1", "p9", "p2"} // s1 before s2, product order within store
	for i, item := range items {
		if item.ProductID != want[i] {
			t.Errorf("items[%d] = %s, want %s", i, item.ProductID, want[i])
		}
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCart()

	c.AddToCart(ctx, candidate("p1", "s1", "Bananas", 2.99), 1, nil)
	c.Clear()

	items, _ := c.Items(ctx)
	if len(items) != 0 {
		t.Errorf("got %d lines after Clear, want 0", len(items))
	}
}
