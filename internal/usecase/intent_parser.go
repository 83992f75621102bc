package usecase

import (
	"log"
	"strings"

	"github.com/groceryflow/backend/internal/domain"
)

// IntentParser classifies raw assistant input into a ParsedIntent. It never
// fails: when no stronger signal matches, the input text becomes a
// FIND_PRODUCT query. The cascade is a deliberate rule list, not a
// statistical classifier; a learned replacement must keep the same output
// type and the always-resolves guarantee.
type IntentParser struct {
	enableDebugLogging bool
}

// NewIntentParser creates a new intent parser
func NewIntentParser(enableDebugLogging bool) *IntentParser {
	return &IntentParser{
		enableDebugLogging: enableDebugLogging,
	}
}

// Parse classifies the input. First match wins, case-insensitive:
//
//  1. image reference present  -> FIND_BY_IMAGE
//  2. text contains "similar"  -> FIND_SIMILAR
//  3. text starts with "add "  -> ADD_TO_CART (quantity/product resolution
//     is the orchestrator's job)
//  4. text contains "track"    -> TRACK_ORDER
//  5. text contains "help"     -> HELP
//  6. otherwise                -> FIND_PRODUCT
//
// VOICE_QUERY, UPDATE_QUANTITY, REPLACE_ITEM, and SPLIT_BASKET have no
// textual trigger here; upstream callers construct those intents directly.
func (p *IntentParser) Parse(input domain.AssistantInput) domain.ParsedIntent {
	intent := p.classify(input)

	if p.enableDebugLogging {
		log.Printf("[INTENT] text=%q imageUri=%q -> %s", input.Text, input.ImageURI, intent.Intent)
	}

	return intent
}

func (p *IntentParser) classify(input domain.AssistantInput) domain.ParsedIntent {
	if input.ImageURI != "" {
		return domain.ParsedIntent{
			Intent:   domain.IntentFindByImage,
			ImageURI: input.ImageURI,
			Locale:   input.Locale,
		}
	}

	text := strings.TrimSpace(input.Text)
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "similar"):
		return domain.ParsedIntent{Intent: domain.IntentFindSimilar, Query: text, Locale: input.Locale}
	case strings.HasPrefix(lower, "add "):
		return domain.ParsedIntent{Intent: domain.IntentAddToCart, Query: text, Locale: input.Locale}
	case strings.Contains(lower, "track"):
		return domain.ParsedIntent{Intent: domain.IntentTrackOrder, Query: text, Locale: input.Locale}
	case strings.Contains(lower, "help"):
		return domain.ParsedIntent{Intent: domain.IntentHelp, Query: text, Locale: input.Locale}
	default:
		return domain.ParsedIntent{Intent: domain.IntentFindProduct, Query: text, Locale: input.Locale}
	}
}
