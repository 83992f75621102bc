package domain

// ActionType tags the user-facing action variants emitted by the orchestrator.
type ActionType string

const (
	ActionShowProducts  ActionType = "SHOW_PRODUCTS"
	ActionAddToCart     ActionType = "ADD_TO_CART"
	ActionUpdateCartQty ActionType = "UPDATE_CART_QTY"
	ActionMessage       ActionType = "MESSAGE"
	ActionSplitProposal ActionType = "SPLIT_PROPOSAL"
)

// AssistantAction is a tagged variant; only the fields for the active Type are
// populated. Actions are transient output values owned by the presentation
// layer once returned.
type AssistantAction struct {
	Type      ActionType         `json:"type"`
	Products  []ProductCandidate `json:"products,omitempty"`
	ProductID string             `json:"productId,omitempty"`
	Quantity  int                `json:"quantity,omitempty"`
	Variant   map[string]string  `json:"variant,omitempty"`
	Text      string             `json:"text,omitempty"`
	Proposal  *SplitProposal     `json:"proposal,omitempty"`
}

// AssistantResponse wraps the single action produced by one Handle call.
type AssistantResponse struct {
	Action AssistantAction `json:"action"`
}

// StoreGroup is one store's share of a split basket.
type StoreGroup struct {
	StoreID     string  `json:"storeId"`
	StoreName   string  `json:"storeName"`
	ItemCount   int     `json:"itemCount"`
	ETA         string  `json:"eta"`
	DeliveryFee float64 `json:"deliveryFee"`
	Subtotal    float64 `json:"subtotal"`
}

// SplitProposal groups a multi-store cart into per-store sub-orders.
//
// Invariant: TotalDelivery, TotalItems, and Subtotal are exactly the sums of
// the corresponding per-store fields.
type SplitProposal struct {
	Stores        []StoreGroup `json:"stores"`
	TotalDelivery float64      `json:"totalDelivery"`
	TotalItems    int          `json:"totalItems"`
	Subtotal      float64      `json:"subtotal"`
}
