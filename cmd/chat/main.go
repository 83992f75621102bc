package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/groceryflow/backend/internal/domain"
	"github.com/groceryflow/backend/internal/infrastructure/cart"
	"github.com/groceryflow/backend/internal/infrastructure/catalog"
	"github.com/groceryflow/backend/internal/infrastructure/stock"
	"github.com/groceryflow/backend/internal/usecase"
)

var (
	debug            = flag.Bool("debug", false, "Enable debug logging for search and assistant")
	minAddConfidence = flag.Float64("min-add-confidence", 0, "Confidence floor for add-to-cart (0 disables)")
)

func main() {
	flag.Parse()

	// Wire the assistant against the seed catalog, all in-process
	memoryCatalog := catalog.NewMemoryCatalog(catalog.SeedRecords(), catalog.SeedStores())
	memoryCart := cart.NewMemoryCart()
	stockService := stock.NewCatalogStock(memoryCatalog)

	searchService := usecase.NewSearchService(memoryCatalog, usecase.SearchConfig{
		EnableDebugLogging: *debug,
	})
	parser := usecase.NewIntentParser(*debug)
	assistant := usecase.NewAssistantOrchestrator(
		searchService, memoryCart, stockService, memoryCatalog,
		usecase.AssistantConfig{
			MinAddConfidence:     *minAddConfidence,
			AssumeInStockOnError: true,
			EnableDebugLogging:   *debug,
		},
	)

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("%s\n", boldGreen("GroceryFlow assistant"))
	fmt.Printf("Type a query (e.g. %s, %s), %s to split your cart, or %s to quit.\n\n",
		yellow(`"bananas"`), yellow(`"add 2 whole milk"`), yellow("/split"), yellow("/quit"))

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("%s ", boldCyan("you>"))
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}

		var intent domain.ParsedIntent
		if line == "/split" {
			intent = domain.ParsedIntent{Intent: domain.IntentSplitBasket}
		} else {
			intent = parser.Parse(domain.AssistantInput{Text: line})
		}

		response := assistant.Handle(ctx, intent)
		printAction(response.Action, boldGreen)
	}
}

// printAction renders one assistant action to the terminal
func printAction(action domain.AssistantAction, label func(a ...interface{}) string) {
	switch action.Type {
	case domain.ActionShowProducts:
		if len(action.Products) == 0 {
			fmt.Printf("%s no results\n\n", label("assistant>"))
			return
		}
		fmt.Printf("%s %d result(s):\n", label("assistant>"), len(action.Products))
		for _, p := range action.Products {
			fmt.Printf("  %-20s  $%-6.2f  %-12s  confidence %.3f\n", p.Name, p.Price, p.Category, p.Confidence)
		}
		fmt.Println()
	case domain.ActionSplitProposal:
		p := action.Proposal
		fmt.Printf("%s split across %d store(s):\n", label("assistant>"), len(p.Stores))
		for _, g := range p.Stores {
			fmt.Printf("  %-16s  %d item(s)  $%.2f + $%.2f delivery  (%s)\n",
				g.StoreName, g.ItemCount, g.Subtotal, g.DeliveryFee, g.ETA)
		}
		fmt.Printf("  total: %d item(s), $%.2f + $%.2f delivery\n\n", p.TotalItems, p.Subtotal, p.TotalDelivery)
	default:
		fmt.Printf("%s %s\n\n", label("assistant>"), action.Text)
	}
}
