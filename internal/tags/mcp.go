// Package tags exposes the Firefly III tag endpoints as MCP tool methods.
// Tag endpoints are addressed by tag text or numeric ID interchangeably.
package tags

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

// Client provides tag tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a tags client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// List lists all tags.
func (c *Client) List(ctx context.Context, _ ListArgs) (ListResult, error) {
	res, err := firefly.List[Attributes](ctx, c.api, "/tags", nil)
	if err != nil {
		return ListResult{}, err
	}

	summaries := make([]Summary, 0, len(res.Data))
	for _, obj := range res.Data {
		summaries = append(summaries, Summary{ID: obj.ID, Tag: obj.Attributes.Tag, Description: obj.Attributes.Description})
	}
	summaries, truncated := format.Clip(summaries)
	out := ListResult{Tags: summaries, Count: len(summaries), Truncated: truncated}
	if len(summaries) == 0 {
		out.Message = results.NoneFound("tags")
	}
	return out, nil
}

// Get fetches one tag by text or ID.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.Tag) {
		return GetResult{}, apierrors.NewRequiredError("tag")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, "/tags/"+url.PathEscape(args.Tag))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Tag: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Create creates a tag.
func (c *Client) Create(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Tag) {
		return CreateResult{}, apierrors.NewRequiredError("tag")
	}
	res, err := firefly.Post[Attributes](ctx, c.api, "/tags", tagRequest{
		Tag:         args.Tag,
		Date:        args.Date,
		Description: args.Description,
	})
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Tag: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update applies a partial update to a tag.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.Tag) {
		return UpdateResult{}, apierrors.NewRequiredError("tag")
	}
	if coerce.Blank(args.NewTag) && coerce.Blank(args.Date) && coerce.Blank(args.Description) {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	res, err := firefly.Put[Attributes](ctx, c.api, "/tags/"+url.PathEscape(args.Tag), tagRequest{
		Tag:         args.NewTag,
		Date:        args.Date,
		Description: args.Description,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Tag: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes a tag from all transactions carrying it.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.Tag) {
		return DeleteResult{}, apierrors.NewRequiredError("tag")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("tag"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/tags/"+url.PathEscape(args.Tag)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.Tag), nil
}

// ListTransactions lists the transactions carrying one tag.
func (c *Client) ListTransactions(ctx context.Context, args ListTransactionsArgs) (ListTransactionsResult, error) {
	if coerce.Blank(args.Tag) {
		return ListTransactionsResult{}, apierrors.NewRequiredError("tag")
	}
	q := url.Values{}
	if !coerce.Blank(args.StartDate) {
		q.Set("start", args.StartDate)
	}
	if !coerce.Blank(args.EndDate) {
		q.Set("end", args.EndDate)
	}
	res, err := firefly.List[transactions.Attributes](ctx, c.api, "/tags/"+url.PathEscape(args.Tag)+"/transactions", q)
	if err != nil {
		return ListTransactionsResult{}, err
	}
	return transactions.ListResultOf(res.Data), nil
}
