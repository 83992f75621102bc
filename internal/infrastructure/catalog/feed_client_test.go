package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/groceryflow/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeedClient(t *testing.T) {
	client := NewFeedClient("test-api-key", "https://feed.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://feed.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestSetDebug(t *testing.T) {
	client := NewFeedClient("test-api-key", "https://feed.example.com")

	assert.False(t, client.debug)

	client.SetDebug(true)
	assert.True(t, client.debug)

	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestFetchProducts_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/products", r.URL.Path)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "store-1", r.URL.Query().Get("store_id"))

		response := domain.FeedResponse{
			Products: []domain.FeedProduct{
				{
					SKU:      "sku-1",
					StoreID:  "store-1",
					Name:     "Organic Bananas",
					Category: "Fruits",
					Price:    2.99,
					InStock:  true,
				},
			},
			TotalHits:   1,
			CurrentPage: 1,
			TotalPages:  1,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewFeedClient("test-api-key", server.URL)
	ctx := context.Background()

	result, err := client.FetchProducts(ctx, "store-1", 1)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, result.Products, 1)
	assert.Equal(t, "sku-1", result.Products[0].SKU)
	assert.Equal(t, "Organic Bananas", result.Products[0].Name)
}

func TestFetchProducts_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewFeedClient("test-api-key", server.URL)
	ctx := context.Background()

	result, err := client.FetchProducts(ctx, "missing-store", 1)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFetchProducts_ServerError_Retries(t *testing.T) {
	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		response := domain.FeedResponse{
			Products:   []domain.FeedProduct{{SKU: "sku-1", Name: "Success after retry"}},
			TotalPages: 1,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewFeedClient("test-api-key", server.URL)
	ctx := context.Background()

	result, err := client.FetchProducts(ctx, "", 1)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Len(t, result.Products, 1)
}

func TestFetchProducts_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{not valid json"))
	}))
	defer server.Close()

	client := NewFeedClient("test-api-key", server.URL)
	ctx := context.Background()

	result, err := client.FetchProducts(ctx, "", 1)

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestFetchAllProducts_WalksPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")

		response := domain.FeedResponse{
			TotalPages: 2,
		}
		switch page {
		case "1":
			response.CurrentPage = 1
			response.Products = []domain.FeedProduct{{SKU: "a", Name: "One", Category: "C"}}
		case "2":
			response.CurrentPage = 2
			response.Products = []domain.FeedProduct{{SKU: "b", Name: "Two", Category: "C"}}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewFeedClient("test-api-key", server.URL)
	ctx := context.Background()

	records, err := client.FetchAllProducts(ctx, "")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	// Mapping happened on the way in
	assert.Equal(t, "one c", records[0].SearchableText)
}

func TestFetchProducts_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewFeedClient("test-api-key", server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchProducts(ctx, "", 1)
	assert.Error(t, err)
}
