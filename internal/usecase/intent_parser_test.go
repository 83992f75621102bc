package usecase

import (
	"testing"

	"github.com/groceryflow/backend/internal/domain"
)

func TestParse(t *testing.T) {
	parser := NewIntentParser(false)

	t.Run("image reference wins over any text", func(t *testing.T) {
		intent := parser.Parse(domain.AssistantInput{Text: "add 2 bananas", ImageURI: "x.png"})
		if intent.Intent != domain.IntentFindByImage {
			t.Errorf("Intent = %s, want FIND_BY_IMAGE", intent.Intent)
		}
		if intent.ImageURI != "x.png" {
			t.Errorf("ImageURI = %q, want x.png", intent.ImageURI)
		}
	})

	t.Run("similar keyword", func(t *testing.T) {
		intent := parser.Parse(domain.AssistantInput{Text: "show me something similar to oat milk"})
		if intent.Intent != domain.IntentFindSimilar {
			t.Errorf("Intent = %s, want FIND_SIMILAR", intent.Intent)
		}
		if intent.Query != "show me something similar to oat milk" {
			t.Errorf("Query = %q, want the original text", intent.Query)
		}
	})

	t.Run("add prefix", func(t *testing.T) {
		intent := parser.Parse(domain.AssistantInput{Text: "add 2 bananas"})
		if intent.Intent != domain.IntentAddToCart {
			t.Errorf("Intent = %s, want ADD_TO_CART", intent.Intent)
		}
		if intent.Query != "add 2 bananas" {
			t.Errorf("Query = %q, want original text", intent.Query)
		}
	})

	t.Run("add must be a prefix, not a substring", func(t *testing.T) {
		intent := parser.Parse(domain.AssistantInput{Text: "salad dressing"})
		if intent.Intent != domain.IntentFindProduct {
			t.Errorf("Intent = %s, want FIND_PRODUCT", intent.Intent)
		}
	})

	t.Run("track keyword", func(t *testing.T) {
		intent := parser.Parse(domain.AssistantInput{Text: "track my order"})
		if intent.Intent != domain.IntentTrackOrder {
			t.Errorf("Intent = %s, want TRACK_ORDER", intent.Intent)
		}
	})

	t.Run("help keyword", func(t *testing.T) {
		intent := parser.Parse(domain.AssistantInput{Text: "I need some help"})
		if intent.Intent != domain.IntentHelp {
			t.Errorf("Intent = %s, want HELP", intent.Intent)
		}
	})

	t.Run("classification is case-insensitive", func(t *testing.T) {
		intent := parser.Parse(domain.AssistantInput{Text: "TRACK ORDER 42"})
		if intent.Intent != domain.IntentTrackOrder {
			t.Errorf("Intent = %s, want TRACK_ORDER", intent.Intent)
		}
	})

	t.Run("defaults to product search", func(t *testing.T) {
		intent := parser.Parse(domain.AssistantInput{Text: "organic bananas"})
		if intent.Intent != domain.IntentFindProduct {
			t.Errorf("Intent = %s, want FIND_PRODUCT", intent.Intent)
		}
		if intent.Query != "organic bananas" {
			t.Errorf("Query = %q, want organic bananas", intent.Query)
		}
	})

	t.Run("never fails on empty input", func(t *testing.T) {
		intent := parser.Parse(domain.AssistantInput{})
		if intent.Intent != domain.IntentFindProduct {
			t.Errorf("Intent = %s, want FIND_PRODUCT fallback", intent.Intent)
		}
	})

	t.Run("locale is carried through", func(t *testing.T) {
		intent := parser.Parse(domain.AssistantInput{Text: "milk", Locale: "de-DE"})
		if intent.Locale != "de-DE" {
			t.Errorf("Locale = %q, want de-DE", intent.Locale)
		}
	})
}
