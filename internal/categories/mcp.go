// Package categories exposes the Firefly III category endpoints as MCP tool
// methods.
package categories

import (
	"context"
	"net/url"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/format"
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// Client provides category tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a categories client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// List lists all categories.
func (c *Client) List(ctx context.Context, _ ListArgs) (ListResult, error) {
	res, err := firefly.List[Attributes](ctx, c.api, "/categories", nil)
	if err != nil {
		return ListResult{}, err
	}

	summaries := make([]Summary, 0, len(res.Data))
	for _, obj := range res.Data {
		s := Summary{ID: obj.ID, Name: obj.Attributes.Name}
		if len(obj.Attributes.Spent) > 0 {
			s.Spent = format.Amount(obj.Attributes.Spent[0].Sum)
		}
		summaries = append(summaries, s)
	}
	summaries, truncated := format.Clip(summaries)
	out := ListResult{Categories: summaries, Count: len(summaries), Truncated: truncated}
	if len(summaries) == 0 {
		out.Message = results.NoneFound("categories")
	}
	return out, nil
}

// Get fetches one category, optionally with spent and earned totals over a
// date range.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.CategoryID) {
		return GetResult{}, apierrors.NewRequiredError("category_id")
	}
	path := "/categories/" + url.PathEscape(args.CategoryID)
	q := url.Values{}
	if !coerce.Blank(args.StartDate) {
		q.Set("start", args.StartDate)
	}
	if !coerce.Blank(args.EndDate) {
		q.Set("end", args.EndDate)
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	res, err := firefly.Get[Attributes](ctx, c.api, path)
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Category: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Create creates a category.
func (c *Client) Create(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Name) {
		return CreateResult{}, apierrors.NewRequiredError("name")
	}
	res, err := firefly.Post[Attributes](ctx, c.api, "/categories", categoryRequest{Name: args.Name, Notes: args.Notes})
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Category: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update applies a partial update to a category.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.CategoryID) {
		return UpdateResult{}, apierrors.NewRequiredError("category_id")
	}
	if coerce.Blank(args.Name) && coerce.Blank(args.Notes) {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	res, err := firefly.Put[Attributes](ctx, c.api, "/categories/"+url.PathEscape(args.CategoryID), categoryRequest{Name: args.Name, Notes: args.Notes})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Category: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes a category. Its transactions survive uncategorized.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.CategoryID) {
		return DeleteResult{}, apierrors.NewRequiredError("category_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("category"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/categories/"+url.PathEscape(args.CategoryID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.CategoryID), nil
}

// ListTransactions lists the transactions of one category.
func (c *Client) ListTransactions(ctx context.Context, args ListTransactionsArgs) (ListTransactionsResult, error) {
	if coerce.Blank(args.CategoryID) {
		return ListTransactionsResult{}, apierrors.NewRequiredError("category_id")
	}
	q := url.Values{}
	if !coerce.Blank(args.StartDate) {
		q.Set("start", args.StartDate)
	}
	if !coerce.Blank(args.EndDate) {
		q.Set("end", args.EndDate)
	}
	res, err := firefly.List[transactions.Attributes](ctx, c.api, "/categories/"+url.PathEscape(args.CategoryID)+"/transactions", q)
	if err != nil {
		return ListTransactionsResult{}, err
	}
	return transactions.ListResultOf(res.Data), nil
}
