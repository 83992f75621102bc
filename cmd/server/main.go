package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/groceryflow/backend/config"
	httpDelivery "github.com/groceryflow/backend/internal/delivery/http"
	"github.com/groceryflow/backend/internal/infrastructure/cart"
	"github.com/groceryflow/backend/internal/infrastructure/catalog"
	"github.com/groceryflow/backend/internal/infrastructure/stock"
	"github.com/groceryflow/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting GroceryFlow Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog source: %s", cfg.Catalog.Source)

	// Initialize infrastructure dependencies
	memoryCatalog := catalog.NewMemoryCatalog(catalog.SeedRecords(), catalog.SeedStores())

	if cfg.Catalog.Source == "feed" {
		feedClient := catalog.NewFeedClient(cfg.Catalog.FeedAPIKey, cfg.Catalog.FeedURL)
		if cfg.Server.Environment == "development" {
			feedClient.SetDebug(true)
			log.Printf("Feed client debug mode enabled")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		records, err := feedClient.FetchAllProducts(ctx, "")
		cancel()
		if err != nil {
			log.Fatalf("Failed to ingest catalog feed: %v", err)
		}
		memoryCatalog.Replace(records)
		log.Printf("Catalog feed ingested: %d records from %s", memoryCatalog.Size(), cfg.Catalog.FeedURL)
	} else {
		log.Printf("Using seed catalog: %d records", memoryCatalog.Size())
	}

	memoryCart := cart.NewMemoryCart()
	stockService := stock.NewCatalogStock(memoryCatalog)

	// Initialize usecase layer
	searchService := usecase.NewSearchService(memoryCatalog, usecase.SearchConfig{
		MaxResults:         cfg.Search.MaxResults,
		EnableDebugLogging: cfg.Search.EnableDebugLogging,
	})

	intentParser := usecase.NewIntentParser(cfg.Assistant.EnableDebugLogging)

	orchestrator := usecase.NewAssistantOrchestrator(
		searchService,
		memoryCart,
		stockService,
		memoryCatalog,
		usecase.AssistantConfig{
			MinAddConfidence:     cfg.Assistant.MinAddConfidence,
			AssumeInStockOnError: cfg.Assistant.AssumeInStockOnError,
			EnableDebugLogging:   cfg.Assistant.EnableDebugLogging,
		},
	)

	log.Printf("Assistant: min_add_confidence=%.2f, assume_in_stock_on_error=%v, debug=%v",
		cfg.Assistant.MinAddConfidence,
		cfg.Assistant.AssumeInStockOnError,
		cfg.Assistant.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, intentParser, orchestrator, memoryCart)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
