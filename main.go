// Firefly III MCP Server - A Model Context Protocol server for the Firefly III
// personal finance manager. Exposes accounts, transactions, budgets, and the
// rest of the API as MCP tools over stdio.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/akarpova/firefly-mcp-server/internal/accounts"
	"github.com/akarpova/firefly-mcp-server/internal/attachments"
	"github.com/akarpova/firefly-mcp-server/internal/bills"
	"github.com/akarpova/firefly-mcp-server/internal/budgets"
	"github.com/akarpova/firefly-mcp-server/internal/categories"
	"github.com/akarpova/firefly-mcp-server/internal/charts"
	"github.com/akarpova/firefly-mcp-server/internal/currencies"
	"github.com/akarpova/firefly-mcp-server/internal/data"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/insights"
	"github.com/akarpova/firefly-mcp-server/internal/links"
	"github.com/akarpova/firefly-mcp-server/internal/objectgroups"
	"github.com/akarpova/firefly-mcp-server/internal/piggybanks"
	"github.com/akarpova/firefly-mcp-server/internal/recurrences"
	"github.com/akarpova/firefly-mcp-server/internal/rules"
	"github.com/akarpova/firefly-mcp-server/internal/search"
	"github.com/akarpova/firefly-mcp-server/internal/system"
	"github.com/akarpova/firefly-mcp-server/internal/tags"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
	"github.com/akarpova/firefly-mcp-server/internal/webhooks"
	"github.com/akarpova/firefly-mcp-server/tools"
	"github.com/akarpova/firefly-mcp-server/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServerName    = "firefly-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `Firefly III MCP Server provides tools for managing a Firefly III
personal finance instance.

Tool families (all prefixed firefly_):
- accounts: list, inspect, create, update, and delete accounts
- transactions: record withdrawals, deposits, and transfers; list and edit them
- budgets: budgets, budget limits, spending reports, available budgets
- categories, tags, bills, piggy_banks: organize and track spending
- rules: rule groups and rules, including dry-run testing and firing
- recurrences, webhooks, currencies, links, attachments, object groups
- search: full-text transaction search and autocomplete lookups
- insights: spending/income summaries, net flow, dashboard totals
- charts: dashboard chart data for accounts, balances, budgets, categories
- data: CSV exports, bulk transaction updates, and bulk deletion
- system: health check, configuration, preferences, users, raw API access

Destructive tools require confirm=true and answer with a warning otherwise.
Account references accept either a numeric ID or an account name.

Configure via a JSON secrets file (path in FIREFLY_SECRETS_FILE) holding
base_url and the personal access token.`

// recoverPanic logs a recovered panic instead of crashing the process.
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

// serveMetrics exposes Prometheus metrics and a liveness endpoint on a
// separate listener, hardened with rate limiting and body caps.
func serveMetrics(addr string, logger *slog.Logger) {
	defer recoverPanic(logger, "metrics server")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := NewSecurityMiddleware(mux, logger, SecurityConfig{
		RateLimit:   120,
		MaxBodySize: 1 << 20,
	})
	defer handler.Close()

	logger.Info("Serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("Metrics server stopped", "error", err)
	}
}

func main() {
	// stdout carries the MCP protocol, so all logging goes to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	// One shared API client; the secrets file is read lazily on first use so
	// the server starts (and lists tools) even before credentials exist.
	api := firefly.NewClient(firefly.WithLogger(logger))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	registry := tools.NewHandlerRegistry(tools.Clients{
		System:       system.NewClient(api),
		Accounts:     accounts.NewClient(api),
		Transactions: transactions.NewClient(api),
		Budgets:      budgets.NewClient(api),
		Categories:   categories.NewClient(api),
		Tags:         tags.NewClient(api),
		Bills:        bills.NewClient(api),
		PiggyBanks:   piggybanks.NewClient(api),
		Rules:        rules.NewClient(api),
		Recurrences:  recurrences.NewClient(api),
		Webhooks:     webhooks.NewClient(api),
		Currencies:   currencies.NewClient(api),
		Links:        links.NewClient(api),
		Attachments:  attachments.NewClient(api),
		ObjectGroups: objectgroups.NewClient(api),
		Search:       search.NewClient(api),
		Insights:     insights.NewClient(api),
		Charts:       charts.NewClient(api),
		Data:         data.NewClient(api),
	}, logger)
	registry.RegisterAll(server)

	if addr := os.Getenv("FIREFLY_MCP_METRICS_ADDR"); addr != "" {
		go serveMetrics(addr, logger)
	}

	logger.Info("Starting Firefly III MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"secrets_path", firefly.SecretsPath(),
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
