package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/groceryflow/backend/internal/domain"
	"github.com/groceryflow/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search    *usecase.SearchService
	parser    *usecase.IntentParser
	assistant *usecase.AssistantOrchestrator
	cart      domain.CartService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	search *usecase.SearchService,
	parser *usecase.IntentParser,
	assistant *usecase.AssistantOrchestrator,
	cart domain.CartService,
) *Handler {
	return &Handler{
		search:    search,
		parser:    parser,
		assistant: assistant,
		cart:      cart,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "groceryflow-backend",
		"version": "1.0.0",
	})
}

// searchRequest is the POST /search payload
type searchRequest struct {
	Query   string                `json:"query"`
	Filters *domain.ProductFilter `json:"filters,omitempty"`
}

// SearchProducts handles catalog search requests. An empty query or an empty
// result set is a valid 200 with zero candidates, never an error.
func (h *Handler) SearchProducts(c *gin.Context) {
	if h.search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search service not configured"})
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	candidates := h.search.SearchByText(req.Query, req.Filters)

	c.JSON(http.StatusOK, gin.H{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// AssistantMessage classifies free-form input and routes it to an action
func (h *Handler) AssistantMessage(c *gin.Context) {
	if h.parser == nil || h.assistant == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant not configured"})
		return
	}

	var input domain.AssistantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	intent := h.parser.Parse(input)
	response := h.assistant.Handle(c.Request.Context(), intent)

	c.JSON(http.StatusOK, response)
}

// AssistantIntent routes an already-constructed intent, e.g. a SPLIT_BASKET
// button in the UI or a voice pipeline that produced its own intent.
func (h *Handler) AssistantIntent(c *gin.Context) {
	if h.assistant == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant not configured"})
		return
	}

	var intent domain.ParsedIntent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if intent.Intent == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intent is required"})
		return
	}

	response := h.assistant.Handle(c.Request.Context(), intent)

	c.JSON(http.StatusOK, response)
}

// GetCart returns the current cart contents
func (h *Handler) GetCart(c *gin.Context) {
	if h.cart == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "cart service not configured"})
		return
	}

	items, err := h.cart.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}
