// Package search exposes the Firefly III search and autocomplete endpoints
// as MCP tool methods. Autocomplete endpoints return a bare JSON array
// rather than the usual data envelope.
package search

import (
	"context"
	"net/url"
	"strconv"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/format"
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// Client provides search tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a search client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// accountAttributes is the slice of the account record the search result
// surfaces.
type accountAttributes struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	CurrencyCode string `json:"currency_code,omitempty"`
	Active       bool   `json:"active"`
}

// SearchAll searches transactions.
func (c *Client) SearchAll(ctx context.Context, args SearchAllArgs) (SearchAllResult, error) {
	if coerce.Blank(args.Query) {
		return SearchAllResult{}, apierrors.NewRequiredError("query")
	}
	q := url.Values{}
	q.Set("query", args.Query)
	limit := args.Limit
	if limit <= 0 || limit > format.MaxRows {
		limit = format.MaxRows
	}
	q.Set("limit", strconv.Itoa(limit))

	res, err := firefly.List[transactions.Attributes](ctx, c.api, "/search/transactions", q)
	if err != nil {
		return SearchAllResult{}, err
	}
	return transactions.ListResultOf(res.Data), nil
}

// SearchAccounts searches accounts by name, IBAN, or number.
func (c *Client) SearchAccounts(ctx context.Context, args SearchAccountsArgs) (SearchAccountsResult, error) {
	if coerce.Blank(args.Query) {
		return SearchAccountsResult{}, apierrors.NewRequiredError("query")
	}
	q := url.Values{}
	q.Set("query", args.Query)
	q.Set("field", "all")
	if !coerce.Blank(args.Type) {
		q.Set("type", args.Type)
	}

	res, err := firefly.List[accountAttributes](ctx, c.api, "/search/accounts", q)
	if err != nil {
		return SearchAccountsResult{}, err
	}
	matches := make([]AccountMatch, 0, len(res.Data))
	for _, obj := range res.Data {
		matches = append(matches, AccountMatch{
			ID:           obj.ID,
			Name:         obj.Attributes.Name,
			Type:         obj.Attributes.Type,
			CurrencyCode: obj.Attributes.CurrencyCode,
			Active:       obj.Attributes.Active,
		})
	}
	matches, _ = format.Clip(matches)
	out := SearchAccountsResult{Accounts: matches, Count: len(matches)}
	if len(matches) == 0 {
		out.Message = results.NoneFound("accounts")
	}
	return out, nil
}

// AutocompleteAccounts suggests accounts for a partial name.
func (c *Client) AutocompleteAccounts(ctx context.Context, args AutocompleteArgs) (AutocompleteResult, error) {
	return c.autocomplete(ctx, "/autocomplete/accounts", args)
}

// AutocompleteBudgets suggests budgets for a partial name.
func (c *Client) AutocompleteBudgets(ctx context.Context, args AutocompleteArgs) (AutocompleteResult, error) {
	return c.autocomplete(ctx, "/autocomplete/budgets", args)
}

// AutocompleteCategories suggests categories for a partial name.
func (c *Client) AutocompleteCategories(ctx context.Context, args AutocompleteArgs) (AutocompleteResult, error) {
	return c.autocomplete(ctx, "/autocomplete/categories", args)
}

// AutocompleteTags suggests tags for a partial text.
func (c *Client) AutocompleteTags(ctx context.Context, args AutocompleteArgs) (AutocompleteResult, error) {
	return c.autocomplete(ctx, "/autocomplete/tags", args)
}

// AutocompleteCurrencies suggests currencies for a partial code or name.
func (c *Client) AutocompleteCurrencies(ctx context.Context, args AutocompleteArgs) (AutocompleteResult, error) {
	return c.autocomplete(ctx, "/autocomplete/currencies", args)
}

// AutocompleteTransactions suggests transaction descriptions for a partial
// text.
func (c *Client) AutocompleteTransactions(ctx context.Context, args AutocompleteArgs) (AutocompleteResult, error) {
	return c.autocomplete(ctx, "/autocomplete/transactions", args)
}

func (c *Client) autocomplete(ctx context.Context, path string, args AutocompleteArgs) (AutocompleteResult, error) {
	if coerce.Blank(args.Query) {
		return AutocompleteResult{}, apierrors.NewRequiredError("query")
	}
	q := url.Values{}
	q.Set("query", args.Query)
	limit := args.Limit
	if limit <= 0 || limit > format.MaxRows {
		limit = format.MaxRows
	}
	q.Set("limit", strconv.Itoa(limit))

	var items []Suggestion
	if err := c.api.Do(ctx, "GET", path, q, nil, &items); err != nil {
		return AutocompleteResult{}, err
	}
	items, _ = format.Clip(items)
	out := AutocompleteResult{Suggestions: items, Count: len(items)}
	if len(items) == 0 {
		out.Message = results.NoneFound("suggestions")
	}
	return out, nil
}
