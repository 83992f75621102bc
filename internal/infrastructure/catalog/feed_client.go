package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/groceryflow/backend/internal/domain"
	"golang.org/x/time/rate"
)

// FeedClient pulls raw product rows from the remote catalog feed API.
type FeedClient struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewFeedClient creates a new catalog feed client
func NewFeedClient(apiKey, baseURL string) *FeedClient {
	// The feed allows 600 requests per hour; 600/3600 ≈ 0.167 requests/sec
	limiter := rate.NewLimiter(rate.Limit(0.167), 5) // burst of 5 requests

	return &FeedClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request/response logging
func (c *FeedClient) SetDebug(enabled bool) {
	c.debug = enabled
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *FeedClient) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "GroceryFlow/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFeedAPIFailure, err)
	}

	return resp, nil
}

// FetchProducts retrieves one page of feed rows for the given store.
// Pass an empty storeID to fetch all stores.
func (c *FeedClient) FetchProducts(ctx context.Context, storeID string, page int) (*domain.FeedResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/products", c.baseURL)
	params := url.Values{}
	params.Add("api_key", c.apiKey)
	params.Add("page", fmt.Sprintf("%d", page))
	if storeID != "" {
		params.Add("store_id", storeID)
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[FEED] request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[FEED] API error (attempt %d) - status: %d, body: %s", attempt, resp.StatusCode, string(body))
			}
			if resp.StatusCode == http.StatusNotFound {
				return nil, domain.ErrProductNotFound
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrFeedAPIFailure, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var feedResp domain.FeedResponse
		if err := json.Unmarshal(body, &feedResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if c.debug {
			log.Printf("[FEED] fetched %d products (page %d of %d)", len(feedResp.Products), feedResp.CurrentPage, feedResp.TotalPages)
		}
		return &feedResp, nil
	}

	return nil, lastErr
}

// FetchAllProducts walks every feed page and returns the mapped catalog records
func (c *FeedClient) FetchAllProducts(ctx context.Context, storeID string) ([]domain.UnifiedProductRecord, error) {
	var records []domain.UnifiedProductRecord

	page := 1
	for {
		resp, err := c.FetchProducts(ctx, storeID, page)
		if err != nil {
			return nil, err
		}

		records = append(records, MapFeedProducts(resp.Products)...)

		if resp.TotalPages == 0 || page >= resp.TotalPages {
			return records, nil
		}
		page++
	}
}
