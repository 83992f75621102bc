package usecase

import (
	"log"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/groceryflow/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// Scoring weights. SearchableText is pre-lowercased at ingestion, so all
// comparisons here are plain substring checks.
const (
	phraseMatchBoost   = 5.0 // full normalized query appears verbatim
	tokenMatchBoost    = 2.0 // per query token found (repeats count again)
	categoryMatchBoost = 1.5 // some query token equals the record category
	inStockBoost       = 0.5
	ratingBaseline     = 3.5 // ratings below this pull the score down
	ratingWeight       = 0.5
	ratingBoostCap     = 1.5
	defaultMaxResults  = 50
)

// stopWords is a closed list of articles, prepositions, and common
// conjunctions dropped during query normalization.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "but": true, "nor": true,
	"of": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "with": true, "by": true, "from": true, "about": true,
	"into": true, "over": true, "under": true, "up": true, "down": true,
	"is": true, "it": true, "as": true, "be": true, "some": true, "me": true,
}

// SearchConfig holds configuration for the search service
type SearchConfig struct {
	MaxResults         int
	EnableDebugLogging bool
}

// SearchService scores and filters catalog records against a query string.
// It is pure and CPU-bound: it only reads the snapshot returned by the
// catalog provider, so concurrent calls are safe.
type SearchService struct {
	catalog            domain.CatalogProvider
	maxResults         int
	enableDebugLogging bool
}

// NewSearchService creates a search service over the given catalog provider
func NewSearchService(catalog domain.CatalogProvider, config SearchConfig) *SearchService {
	maxResults := config.MaxResults
	if maxResults <= 0 || maxResults > defaultMaxResults {
		maxResults = defaultMaxResults
	}

	return &SearchService{
		catalog:            catalog,
		maxResults:         maxResults,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// scoredRecord pairs a surviving record with its raw score during ranking
type scoredRecord struct {
	record domain.UnifiedProductRecord
	score  float64
}

// SearchByText returns ranked candidates for a free-form query, at most
// MaxResults of them, ordered by descending raw score. Ties keep catalog
// order, so identical input always produces identical output.
//
// An empty or whitespace-only query returns no candidates. Without that
// special case the phrase boost would fire for every record (the empty string
// is a substring of everything) and the whole catalog would come back ranked
// by stock and rating alone.
func (s *SearchService) SearchByText(query string, filters *domain.ProductFilter) []domain.ProductCandidate {
	normalized, tokens := normalizeQuery(query)
	if normalized == "" {
		return nil
	}

	if s.enableDebugLogging {
		log.Printf("[SEARCH] query=%q normalized=%q tokens=%v", query, normalized, tokens)
	}

	catalog := s.catalog.Catalog()

	var survivors []scoredRecord
	maxScore := 0.0

	for _, record := range catalog {
		// Hard gate: a record that fails any present filter predicate never
		// appears in output regardless of score.
		if !matchesFilter(&record, filters) {
			continue
		}

		score := scoreRecord(&record, normalized, tokens)
		if score <= 0 {
			continue
		}

		survivors = append(survivors, scoredRecord{record: record, score: score})
		if score > maxScore {
			maxScore = score
		}
	}

	if len(survivors) == 0 {
		return nil
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].score > survivors[j].score
	})

	if len(survivors) > s.maxResults {
		survivors = survivors[:s.maxResults]
	}

	candidates := make([]domain.ProductCandidate, 0, len(survivors))
	for _, sr := range survivors {
		candidates = append(candidates, toCandidate(&sr.record, round3(sr.score/maxScore)))
	}

	if s.enableDebugLogging {
		log.Printf("[SEARCH] query=%q returned %d candidates (top score %.2f)", query, len(candidates), maxScore)
	}

	return candidates
}

// normalizeQuery lowercases the query, strips everything outside [a-z0-9\s],
// and splits it into tokens with stop words removed. The returned string is
// the full normalized phrase used for the exact-phrase boost.
func normalizeQuery(query string) (string, []string) {
	cleaned := nonAlphanumericRegex.ReplaceAllString(strings.ToLower(query), " ")
	cleaned = multipleSpacesRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", nil
	}

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}

	return cleaned, tokens
}

// scoreRecord computes the raw relevance score for one surviving record.
// The stock and rating terms are tie-breakers, not relevance: a record with
// no phrase, token, or category hit scores 0 and is discarded, so an
// unrelated query never returns the whole in-stock catalog.
func scoreRecord(record *domain.UnifiedProductRecord, normalized string, tokens []string) float64 {
	score := 0.0

	if strings.Contains(record.SearchableText, normalized) {
		score += phraseMatchBoost
	}

	// Tokens may double-count when repeated in the query; no distinct-token
	// requirement.
	categoryLower := strings.ToLower(record.Category)
	categoryHit := false
	for _, token := range tokens {
		if strings.Contains(record.SearchableText, token) {
			score += tokenMatchBoost
		}
		if token == categoryLower {
			categoryHit = true
		}
	}
	if categoryHit {
		score += categoryMatchBoost
	}

	if score == 0 {
		return 0
	}

	if record.InStock {
		score += inStockBoost
	}

	// Absent rating contributes nothing; low ratings pull the score down.
	if record.Rating != nil {
		score += math.Min(ratingBoostCap, (*record.Rating-ratingBaseline)*ratingWeight)
	}

	return score
}

// matchesFilter reports whether the record passes every present predicate.
// A nil filter imposes no constraint.
func matchesFilter(record *domain.UnifiedProductRecord, filters *domain.ProductFilter) bool {
	if filters == nil {
		return true
	}

	if filters.InStockOnly && !record.InStock {
		return false
	}

	if filters.Category != "" && !strings.EqualFold(filters.Category, record.Category) {
		return false
	}

	if filters.Brand != "" && !strings.EqualFold(filters.Brand, record.Brand) {
		return false
	}

	if filters.PriceMin != nil && record.Price < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && record.Price > *filters.PriceMax {
		return false
	}

	// Records with unknown distance pass a distance constraint; there is
	// nothing to disprove.
	if filters.DistanceKm != nil && record.Store.DistanceKm != nil &&
		*record.Store.DistanceKm > *filters.DistanceKm {
		return false
	}

	if len(filters.StoreIDs) > 0 && !containsString(filters.StoreIDs, record.StoreID) {
		return false
	}

	for _, need := range filters.Dietary {
		if !containsFold(record.Dietary, need) {
			return false
		}
	}

	return true
}

// toCandidate converts a catalog record into the search result unit
func toCandidate(record *domain.UnifiedProductRecord, confidence float64) domain.ProductCandidate {
	return domain.ProductCandidate{
		ID:         record.ID,
		StoreID:    record.StoreID,
		Name:       record.Name,
		Category:   record.Category,
		Price:      record.Price,
		Rating:     record.Rating,
		DistanceKm: record.Store.DistanceKm,
		ImageURL:   record.ImageURL,
		InStock:    record.InStock,
		Confidence: confidence,
	}
}

// round3 rounds a confidence value to 3 decimals
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func containsFold(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}
