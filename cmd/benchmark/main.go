package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/akarpova/firefly-mcp-server/internal/accounts"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/search"
	"github.com/akarpova/firefly-mcp-server/internal/system"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// measureReadLatency times the read endpoints an interactive session hits most.
func measureReadLatency(ctx context.Context, api *firefly.Client) {
	fmt.Println("=== Read Endpoint Latency ===")
	fmt.Println()

	sys := system.NewClient(api)

	fmt.Println("1. Health Check:")
	start := time.Now()
	health, err := sys.HealthCheck(ctx, system.HealthArgs{})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   Round trip: %v (healthy=%v)\n", time.Since(start), health.Healthy)
	fmt.Println()

	acc := accounts.NewClient(api)

	fmt.Println("2. List Accounts:")
	start = time.Now()
	accList, err := acc.List(ctx, accounts.ListArgs{})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   Round trip: %v (%d accounts)\n", time.Since(start), accList.Count)
	fmt.Println()

	tx := transactions.NewClient(api)

	fmt.Println("3. List Transactions (last 30 days):")
	start = time.Now()
	txList, err := tx.List(ctx, transactions.ListArgs{
		StartDate: time.Now().AddDate(0, 0, -30).Format("2006-01-02"),
		EndDate:   time.Now().Format("2006-01-02"),
	})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   Round trip: %v (%d transactions)\n", time.Since(start), txList.Count)
	fmt.Println()
}

// measureSearchLatency compares full-text search with a plain list of the
// same window. Search walks the query parser on the server side, so it is
// the slower path.
func measureSearchLatency(ctx context.Context, api *firefly.Client) {
	fmt.Println("=== Search vs List ===")
	fmt.Println()

	srch := search.NewClient(api)
	tx := transactions.NewClient(api)

	fmt.Println("4. Full-text search:")
	start := time.Now()
	_, err := srch.SearchAll(ctx, search.SearchAllArgs{Query: "groceries"})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	searchTime := time.Since(start)
	fmt.Printf("   Search time: %v\n", searchTime)

	fmt.Println("5. Plain list (baseline):")
	start = time.Now()
	_, err = tx.List(ctx, transactions.ListArgs{Limit: 50})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	listTime := time.Since(start)
	fmt.Printf("   List time: %v\n", listTime)
	if listTime > 0 {
		fmt.Printf("   Search overhead: %.1fx\n", float64(searchTime)/float64(listTime))
	}
	fmt.Println()
}

func main() {
	fmt.Println("Firefly III MCP Server - Performance Measurements")
	fmt.Println("=================================================")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	api := firefly.NewClient(firefly.WithLogger(logger))
	ctx := context.Background()

	measureReadLatency(ctx, api)
	measureSearchLatency(ctx, api)

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Interpreting the numbers:")
	fmt.Println("• Health check approximates pure network round-trip time")
	fmt.Println("• List latency grows with the transaction count in the window")
	fmt.Println("• Search latency adds server-side query parsing on top of list")
}
