// Package bills exposes the Firefly III bill endpoints as MCP tool methods.
package bills

import (
	"context"
	"net/url"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/format"
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/rules"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// Client provides bill tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a bills client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// List lists all bills.
func (c *Client) List(ctx context.Context, _ ListArgs) (ListResult, error) {
	res, err := firefly.List[Attributes](ctx, c.api, "/bills", nil)
	if err != nil {
		return ListResult{}, err
	}

	summaries := make([]Summary, 0, len(res.Data))
	for _, obj := range res.Data {
		summaries = append(summaries, Summary{
			ID:                obj.ID,
			Name:              obj.Attributes.Name,
			AmountMin:         format.Amount(obj.Attributes.AmountMin),
			AmountMax:         format.Amount(obj.Attributes.AmountMax),
			RepeatFreq:        obj.Attributes.RepeatFreq,
			NextExpectedMatch: obj.Attributes.NextExpectedMatch,
			Active:            obj.Attributes.Active,
		})
	}
	summaries, truncated := format.Clip(summaries)
	out := ListResult{Bills: summaries, Count: len(summaries), Truncated: truncated}
	if len(summaries) == 0 {
		out.Message = results.NoneFound("bills")
	}
	return out, nil
}

// Get fetches one bill by ID.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.BillID) {
		return GetResult{}, apierrors.NewRequiredError("bill_id")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, "/bills/"+url.PathEscape(args.BillID))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Bill: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Create creates a bill.
func (c *Client) Create(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Name) {
		return CreateResult{}, apierrors.NewRequiredError("name")
	}
	if coerce.Blank(args.AmountMin) {
		return CreateResult{}, apierrors.NewRequiredError("amount_min")
	}
	if coerce.Blank(args.AmountMax) {
		return CreateResult{}, apierrors.NewRequiredError("amount_max")
	}
	if coerce.Blank(args.Date) {
		return CreateResult{}, apierrors.NewRequiredError("date")
	}
	if coerce.Blank(args.RepeatFreq) {
		return CreateResult{}, apierrors.NewRequiredError("repeat_freq")
	}

	req := billRequest{
		Name:       args.Name,
		AmountMin:  args.AmountMin,
		AmountMax:  args.AmountMax,
		Date:       args.Date,
		RepeatFreq: args.RepeatFreq,
		Notes:      args.Notes,
	}
	if args.Skip > 0 {
		req.Skip = &args.Skip
	}
	res, err := firefly.Post[Attributes](ctx, c.api, "/bills", req)
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Bill: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update applies a partial update to a bill.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.BillID) {
		return UpdateResult{}, apierrors.NewRequiredError("bill_id")
	}
	if coerce.Blank(args.Name) && coerce.Blank(args.AmountMin) && coerce.Blank(args.AmountMax) &&
		coerce.Blank(args.Date) && coerce.Blank(args.RepeatFreq) && coerce.Blank(args.Notes) && args.Active == nil {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}

	res, err := firefly.Put[Attributes](ctx, c.api, "/bills/"+url.PathEscape(args.BillID), billRequest{
		Name:       args.Name,
		AmountMin:  args.AmountMin,
		AmountMax:  args.AmountMax,
		Date:       args.Date,
		RepeatFreq: args.RepeatFreq,
		Notes:      args.Notes,
		Active:     args.Active,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Bill: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes a bill. Its transactions survive unlinked.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.BillID) {
		return DeleteResult{}, apierrors.NewRequiredError("bill_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("bill"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/bills/"+url.PathEscape(args.BillID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.BillID), nil
}

// ListTransactions lists the transactions linked to one bill.
func (c *Client) ListTransactions(ctx context.Context, args ListTransactionsArgs) (ListTransactionsResult, error) {
	if coerce.Blank(args.BillID) {
		return ListTransactionsResult{}, apierrors.NewRequiredError("bill_id")
	}
	q := url.Values{}
	if !coerce.Blank(args.StartDate) {
		q.Set("start", args.StartDate)
	}
	if !coerce.Blank(args.EndDate) {
		q.Set("end", args.EndDate)
	}
	res, err := firefly.List[transactions.Attributes](ctx, c.api, "/bills/"+url.PathEscape(args.BillID)+"/transactions", q)
	if err != nil {
		return ListTransactionsResult{}, err
	}
	return transactions.ListResultOf(res.Data), nil
}

// ListRules lists the rules connected to one bill.
func (c *Client) ListRules(ctx context.Context, args ListRulesArgs) (ListRulesResult, error) {
	if coerce.Blank(args.BillID) {
		return ListRulesResult{}, apierrors.NewRequiredError("bill_id")
	}
	res, err := firefly.List[rules.Attributes](ctx, c.api, "/bills/"+url.PathEscape(args.BillID)+"/rules", nil)
	if err != nil {
		return ListRulesResult{}, err
	}
	return rules.ListResultOf(res.Data), nil
}
