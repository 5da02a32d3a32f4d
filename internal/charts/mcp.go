// Package charts exposes the Firefly III dashboard chart endpoints as MCP
// tool methods. The chart endpoints answer with a bare array of series
// rather than a JSON:API envelope.
package charts

import (
	"context"
	"net/url"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/results"
)

// Client provides chart tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a charts client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// AccountOverview charts the daily balance of each asset account.
func (c *Client) AccountOverview(ctx context.Context, args OverviewArgs) (ChartResult, error) {
	return c.chart(ctx, "/chart/account/overview", args.StartDate, args.EndDate, nil)
}

// Balance charts account balances, optionally limited to specific accounts.
func (c *Client) Balance(ctx context.Context, args BalanceArgs) (ChartResult, error) {
	query := url.Values{}
	for _, id := range coerce.SplitList(args.Accounts) {
		query.Add("accounts[]", id)
	}
	return c.chart(ctx, "/chart/balance", args.StartDate, args.EndDate, query)
}

// BudgetOverview charts spending per budget.
func (c *Client) BudgetOverview(ctx context.Context, args OverviewArgs) (ChartResult, error) {
	return c.chart(ctx, "/chart/budget/overview", args.StartDate, args.EndDate, nil)
}

// CategoryOverview charts spending per category.
func (c *Client) CategoryOverview(ctx context.Context, args OverviewArgs) (ChartResult, error) {
	return c.chart(ctx, "/chart/category/overview", args.StartDate, args.EndDate, nil)
}

func (c *Client) chart(ctx context.Context, path, start, end string, query url.Values) (ChartResult, error) {
	if coerce.Blank(start) {
		return ChartResult{}, apierrors.NewRequiredError("start_date")
	}
	if coerce.Blank(end) {
		return ChartResult{}, apierrors.NewRequiredError("end_date")
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("start", start)
	query.Set("end", end)

	var series []Series
	if err := c.api.Do(ctx, "GET", path, query, nil, &series); err != nil {
		return ChartResult{}, err
	}
	out := ChartResult{StartDate: start, EndDate: end, Series: series, Count: len(series)}
	if len(series) == 0 {
		out.Message = results.NoneFound("chart series")
	}
	return out, nil
}
