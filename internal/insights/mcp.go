// Package insights provides spending and income reports: client-side
// aggregates computed from transaction listings plus passthroughs to the
// backend's insight endpoints.
package insights

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// Client provides insight tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
	now func() time.Time
}

// NewClient creates an insights client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api, now: time.Now}
}

const uncategorized = "(none)"

func orNone(s string) string {
	if s == "" {
		return uncategorized
	}
	return s
}

// summaryKey resolves the caller-selected grouping key to a split accessor.
// Splits with several tags are counted under their first tag.
func summaryKey(groupBy string) (string, func(transactions.Split) string, error) {
	switch strings.ToLower(strings.TrimSpace(groupBy)) {
	case "", "category":
		return "category", func(s transactions.Split) string { return orNone(s.CategoryName) }, nil
	case "budget":
		return "budget", func(s transactions.Split) string { return orNone(s.BudgetName) }, nil
	case "tag":
		return "tag", func(s transactions.Split) string {
			if len(s.Tags) == 0 {
				return uncategorized
			}
			return s.Tags[0]
		}, nil
	case "account":
		return "account", func(s transactions.Split) string { return orNone(s.SourceName) }, nil
	default:
		return "", nil, apierrors.NewValidationError("group_by", "must be category, budget, tag, or account")
	}
}

// SpendingSummary groups withdrawals over a period by a caller-selected key.
func (c *Client) SpendingSummary(ctx context.Context, args SummaryArgs) (SummaryResult, error) {
	groupedBy, key, err := summaryKey(args.GroupBy)
	if err != nil {
		return SummaryResult{}, err
	}
	return c.summarize(ctx, PeriodArgs{StartDate: args.StartDate, EndDate: args.EndDate}, "withdrawal", groupedBy, key)
}

// IncomeSummary groups deposits over a period by a caller-selected key.
// Grouping by account buckets on the revenue source.
func (c *Client) IncomeSummary(ctx context.Context, args SummaryArgs) (SummaryResult, error) {
	groupedBy, key, err := summaryKey(args.GroupBy)
	if err != nil {
		return SummaryResult{}, err
	}
	return c.summarize(ctx, PeriodArgs{StartDate: args.StartDate, EndDate: args.EndDate}, "deposit", groupedBy, key)
}

func (c *Client) summarize(ctx context.Context, args PeriodArgs, txType, groupedBy string, key func(transactions.Split) string) (SummaryResult, error) {
	start, end := coerce.PeriodOrMonth(args.StartDate, args.EndDate, c.now())
	splits, err := c.fetchSplits(ctx, txType, start, end)
	if err != nil {
		return SummaryResult{}, err
	}

	entries := make([]Entry, 0, len(splits))
	for _, s := range splits {
		amount, err := strconv.ParseFloat(s.Amount, 64)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Key: key(s), Amount: amount})
	}

	groups, total := GroupTotals(entries)
	out := SummaryResult{StartDate: start, EndDate: end, GroupedBy: groupedBy, Groups: groups, Total: total}
	if len(groups) == 0 {
		out.Message = results.NoneFound("transactions")
	}
	return out, nil
}

// NetFlow reports total income against total expenses over a period.
func (c *Client) NetFlow(ctx context.Context, args PeriodArgs) (NetFlowResult, error) {
	start, end := coerce.PeriodOrMonth(args.StartDate, args.EndDate, c.now())

	income, err := c.sumAmounts(ctx, "deposit", start, end)
	if err != nil {
		return NetFlowResult{}, err
	}
	expenses, err := c.sumAmounts(ctx, "withdrawal", start, end)
	if err != nil {
		return NetFlowResult{}, err
	}
	return NetFlowResult{
		StartDate: start,
		EndDate:   end,
		Income:    income,
		Expenses:  expenses,
		Net:       income - expenses,
	}, nil
}

func (c *Client) sumAmounts(ctx context.Context, txType, start, end string) (float64, error) {
	splits, err := c.fetchSplits(ctx, txType, start, end)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, s := range splits {
		amount, err := strconv.ParseFloat(s.Amount, 64)
		if err != nil {
			continue
		}
		total += amount
	}
	return total, nil
}

func (c *Client) fetchSplits(ctx context.Context, txType, start, end string) ([]transactions.Split, error) {
	q := url.Values{}
	q.Set("type", txType)
	q.Set("start", start)
	q.Set("end", end)
	res, err := firefly.List[transactions.Attributes](ctx, c.api, "/transactions", q)
	if err != nil {
		return nil, err
	}
	var splits []transactions.Split
	for _, obj := range res.Data {
		splits = append(splits, obj.Attributes.Transactions...)
	}
	return splits, nil
}

// ExpenseByCategory reports expenses per category via the backend insight
// endpoint.
func (c *Client) ExpenseByCategory(ctx context.Context, args PeriodArgs) (InsightResult, error) {
	return c.insight(ctx, "/insight/expense/category", args)
}

// ExpenseByBudget reports expenses per budget.
func (c *Client) ExpenseByBudget(ctx context.Context, args PeriodArgs) (InsightResult, error) {
	return c.insight(ctx, "/insight/expense/budget", args)
}

// ExpenseByTag reports expenses per tag.
func (c *Client) ExpenseByTag(ctx context.Context, args PeriodArgs) (InsightResult, error) {
	return c.insight(ctx, "/insight/expense/tag", args)
}

// ExpenseNoCategory reports expenses that carry no category.
func (c *Client) ExpenseNoCategory(ctx context.Context, args PeriodArgs) (InsightResult, error) {
	return c.insight(ctx, "/insight/expense/no-category", args)
}

// ExpenseNoBudget reports expenses that carry no budget.
func (c *Client) ExpenseNoBudget(ctx context.Context, args PeriodArgs) (InsightResult, error) {
	return c.insight(ctx, "/insight/expense/no-budget", args)
}

// IncomeByCategory reports income per category.
func (c *Client) IncomeByCategory(ctx context.Context, args PeriodArgs) (InsightResult, error) {
	return c.insight(ctx, "/insight/income/category", args)
}

// insight calls one backend insight endpoint. These return a bare JSON
// array.
func (c *Client) insight(ctx context.Context, path string, args PeriodArgs) (InsightResult, error) {
	start, end := coerce.PeriodOrMonth(args.StartDate, args.EndDate, c.now())
	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)

	var entries []InsightEntry
	if err := c.api.Do(ctx, "GET", path, q, nil, &entries); err != nil {
		return InsightResult{}, err
	}
	out := InsightResult{StartDate: start, EndDate: end, Entries: entries, Count: len(entries)}
	if len(entries) == 0 {
		out.Message = results.NoneFound("insight entries")
	}
	return out, nil
}

// BasicSummary fetches the backend's basic summary figures (balance, spent,
// earned, bills, net worth) for a period.
func (c *Client) BasicSummary(ctx context.Context, args PeriodArgs) (BasicSummaryResult, error) {
	start, end := coerce.PeriodOrMonth(args.StartDate, args.EndDate, c.now())
	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)

	var figures map[string]BasicSummaryEntry
	if err := c.api.Do(ctx, "GET", "/summary/basic", q, nil, &figures); err != nil {
		return BasicSummaryResult{}, err
	}

	keys := make([]string, 0, len(figures))
	for k := range figures {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := BasicSummaryResult{StartDate: start, EndDate: end, Figures: make([]BasicSummaryEntry, 0, len(figures))}
	for _, k := range keys {
		out.Figures = append(out.Figures, figures[k])
	}
	return out, nil
}
