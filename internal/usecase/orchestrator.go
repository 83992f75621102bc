package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/groceryflow/backend/internal/domain"
)

// User-facing texts emitted by the orchestrator. Collaborator failures are
// always converted to one of these; Handle never returns an error.
const (
	msgItemNotFound   = "I could not find that item."
	msgCapabilityStub = "Working on that capability..."
	msgCartAddFailed  = "I couldn't add that to your cart right now. Please try again."
	msgCartReadFailed = "I couldn't read your cart right now. Please try again."
	msgStockUnknown   = "I couldn't confirm that item is in stock. Please try again."
	msgCartEmptySplit = "Your cart is empty, so there is nothing to split."
	msgLowConfidence  = "I found a few possible matches. Could you be more specific?"
)

// AssistantConfig holds configuration for the orchestrator
type AssistantConfig struct {
	// MinAddConfidence is the confidence floor below which ADD_TO_CART asks
	// for clarification instead of acting. 0 disables the floor, which keeps
	// the take-the-top-match behavior.
	MinAddConfidence float64

	// AssumeInStockOnError controls what a failed stock check means. True
	// mirrors the historical behavior of treating the item as available.
	AssumeInStockOnError bool

	EnableDebugLogging bool
}

// AssistantOrchestrator routes a parsed intent into exactly one user-facing
// action, invoking the search, cart, and stock collaborators as needed. It is
// stateless per call; concurrent Handle invocations are independent.
type AssistantOrchestrator struct {
	search               *SearchService
	cart                 domain.CartService
	stock                domain.StockService
	stores               domain.StoreDirectory
	minAddConfidence     float64
	assumeInStockOnError bool
	enableDebugLogging   bool
}

// NewAssistantOrchestrator creates an orchestrator with its collaborators
func NewAssistantOrchestrator(
	search *SearchService,
	cart domain.CartService,
	stock domain.StockService,
	stores domain.StoreDirectory,
	config AssistantConfig,
) *AssistantOrchestrator {
	return &AssistantOrchestrator{
		search:               search,
		cart:                 cart,
		stock:                stock,
		stores:               stores,
		minAddConfidence:     config.MinAddConfidence,
		assumeInStockOnError: config.AssumeInStockOnError,
		enableDebugLogging:   config.EnableDebugLogging,
	}
}

// Handle dispatches on the intent tag and always produces a response.
// Unhandled intents fall through to a generic capability message; that branch
// is the default, never an error, so adding a real handler for any of the
// stubbed intents is a pure addition to this switch.
func (o *AssistantOrchestrator) Handle(ctx context.Context, intent domain.ParsedIntent) domain.AssistantResponse {
	if o.enableDebugLogging {
		log.Printf("[ASSIST] intent=%s query=%q", intent.Intent, intent.Query)
	}

	switch intent.Intent {
	case domain.IntentFindProduct:
		return o.handleFindProduct(intent)
	case domain.IntentAddToCart:
		return o.handleAddToCart(ctx, intent)
	case domain.IntentSplitBasket:
		return o.handleSplitBasket(ctx)
	default:
		// FIND_SIMILAR, FIND_BY_IMAGE, UPDATE_QUANTITY, REPLACE_ITEM,
		// TRACK_ORDER, HELP, VOICE_QUERY: not yet wired to a collaborator.
		return messageResponse(msgCapabilityStub)
	}
}

// handleFindProduct ranks the catalog for the query. An empty result list is
// a valid outcome; the UI renders it as "no results".
func (o *AssistantOrchestrator) handleFindProduct(intent domain.ParsedIntent) domain.AssistantResponse {
	candidates := o.search.SearchByText(intent.Query, inStockFilter(intent.Filters))

	return domain.AssistantResponse{
		Action: domain.AssistantAction{
			Type:     domain.ActionShowProducts,
			Products: candidates,
		},
	}
}

// handleAddToCart searches the same way FIND_PRODUCT does and adds the
// first-ranked candidate. Taking the top match without disambiguation is a
// product decision, not a fallback.
func (o *AssistantOrchestrator) handleAddToCart(ctx context.Context, intent domain.ParsedIntent) domain.AssistantResponse {
	candidates := o.search.SearchByText(intent.Query, inStockFilter(intent.Filters))
	if len(candidates) == 0 {
		return messageResponse(msgItemNotFound)
	}

	top := candidates[0]

	if o.minAddConfidence > 0 && top.Confidence < o.minAddConfidence {
		return messageResponse(msgLowConfidence)
	}

	quantity := intent.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	// Opportunistic stock check; the failure policy is explicit config.
	inStock, err := o.stock.IsInStock(ctx, top.ID)
	if err != nil {
		if o.enableDebugLogging {
			log.Printf("[ASSIST] stock check failed for %s: %v", top.ID, err)
		}
		if !o.assumeInStockOnError {
			return messageResponse(msgStockUnknown)
		}
		inStock = true
	}
	if !inStock {
		return messageResponse(fmt.Sprintf("%s is currently out of stock.", top.Name))
	}

	if _, err := o.cart.AddToCart(ctx, top, quantity, intent.Variant); err != nil {
		if o.enableDebugLogging {
			log.Printf("[ASSIST] cart add failed for %s: %v", top.ID, err)
		}
		return messageResponse(msgCartAddFailed)
	}

	return messageResponse(fmt.Sprintf("Added %d x %s to your cart.", quantity, top.Name))
}

// handleSplitBasket groups the live cart into per-store sub-orders.
func (o *AssistantOrchestrator) handleSplitBasket(ctx context.Context) domain.AssistantResponse {
	items, err := o.cart.Items(ctx)
	if err != nil {
		if o.enableDebugLogging {
			log.Printf("[ASSIST] cart read failed: %v", err)
		}
		return messageResponse(msgCartReadFailed)
	}

	if len(items) == 0 {
		return messageResponse(msgCartEmptySplit)
	}

	proposal := BuildSplitProposal(items, o.stores)

	return domain.AssistantResponse{
		Action: domain.AssistantAction{
			Type:     domain.ActionSplitProposal,
			Proposal: proposal,
		},
	}
}

// inStockFilter returns the caller's filters with the in-stock gate forced on
func inStockFilter(filters *domain.ProductFilter) *domain.ProductFilter {
	if filters == nil {
		return &domain.ProductFilter{InStockOnly: true}
	}
	merged := *filters
	merged.InStockOnly = true
	return &merged
}

func messageResponse(text string) domain.AssistantResponse {
	return domain.AssistantResponse{
		Action: domain.AssistantAction{
			Type: domain.ActionMessage,
			Text: text,
		},
	}
}
