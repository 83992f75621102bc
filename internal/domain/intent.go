package domain

// IntentType is the closed set of things the assistant knows how to classify.
type IntentType string

const (
	IntentFindProduct    IntentType = "FIND_PRODUCT"
	IntentFindSimilar    IntentType = "FIND_SIMILAR"
	IntentFindByImage    IntentType = "FIND_BY_IMAGE"
	IntentAddToCart      IntentType = "ADD_TO_CART"
	IntentUpdateQuantity IntentType = "UPDATE_QUANTITY"
	IntentReplaceItem    IntentType = "REPLACE_ITEM"
	IntentTrackOrder     IntentType = "TRACK_ORDER"
	IntentHelp           IntentType = "HELP"
	IntentVoiceQuery     IntentType = "VOICE_QUERY"
	IntentSplitBasket    IntentType = "SPLIT_BASKET"
)

// AssistantInput is the raw material handed to the intent parser: typed text,
// a voice transcript, or an image reference from visual search.
type AssistantInput struct {
	Text     string `json:"text,omitempty"`
	ImageURI string `json:"imageUri,omitempty"`
	Locale   string `json:"locale,omitempty"`
}

// ParsedIntent is a classified request with extracted parameters. Created per
// request, never persisted. The text classifier only produces a subset of the
// intent tags; UPDATE_QUANTITY, REPLACE_ITEM, VOICE_QUERY, and SPLIT_BASKET
// are constructed directly by upstream callers (UI actions, voice pipeline).
type ParsedIntent struct {
	Intent    IntentType        `json:"intent"`
	Query     string            `json:"query,omitempty"`
	ImageURI  string            `json:"imageUri,omitempty"`
	ProductID string            `json:"productId,omitempty"`
	Quantity  int               `json:"quantity,omitempty"` // 0 = unspecified
	Variant   map[string]string `json:"variant,omitempty"`
	Filters   *ProductFilter    `json:"filters,omitempty"`
	Locale    string            `json:"locale,omitempty"`
}
