// Package piggybanks exposes the Firefly III piggy bank endpoints as MCP
// tool methods.
package piggybanks

import (
	"context"
	"net/url"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/format"
	"github.com/akarpova/firefly-mcp-server/internal/results"
)

// Client provides piggy bank tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a piggy banks client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// List lists all piggy banks.
func (c *Client) List(ctx context.Context, _ ListArgs) (ListResult, error) {
	res, err := firefly.List[Attributes](ctx, c.api, "/piggy-banks", nil)
	if err != nil {
		return ListResult{}, err
	}
	return ListResultOf(res.Data), nil
}

// Get fetches one piggy bank by ID.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.PiggyBankID) {
		return GetResult{}, apierrors.NewRequiredError("piggy_bank_id")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, "/piggy-banks/"+url.PathEscape(args.PiggyBankID))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{PiggyBank: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Create creates a piggy bank attached to an asset account.
func (c *Client) Create(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Name) {
		return CreateResult{}, apierrors.NewRequiredError("name")
	}
	if coerce.Blank(args.AccountID) {
		return CreateResult{}, apierrors.NewRequiredError("account_id")
	}
	res, err := firefly.Post[Attributes](ctx, c.api, "/piggy-banks", createRequest{
		Name:          args.Name,
		AccountID:     args.AccountID,
		TargetAmount:  args.TargetAmount,
		CurrentAmount: args.CurrentAmount,
		StartDate:     args.StartDate,
		TargetDate:    args.TargetDate,
		Notes:         args.Notes,
	})
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{PiggyBank: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update applies a partial update to a piggy bank. Setting current_amount
// is how money is moved in or out.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.PiggyBankID) {
		return UpdateResult{}, apierrors.NewRequiredError("piggy_bank_id")
	}
	if coerce.Blank(args.Name) && coerce.Blank(args.TargetAmount) && coerce.Blank(args.CurrentAmount) &&
		coerce.Blank(args.TargetDate) && coerce.Blank(args.Notes) {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	res, err := firefly.Put[Attributes](ctx, c.api, "/piggy-banks/"+url.PathEscape(args.PiggyBankID), updateRequest{
		Name:          args.Name,
		TargetAmount:  args.TargetAmount,
		CurrentAmount: args.CurrentAmount,
		TargetDate:    args.TargetDate,
		Notes:         args.Notes,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{PiggyBank: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes a piggy bank. The underlying account is untouched.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.PiggyBankID) {
		return DeleteResult{}, apierrors.NewRequiredError("piggy_bank_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("piggy bank"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/piggy-banks/"+url.PathEscape(args.PiggyBankID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.PiggyBankID), nil
}

// ListEvents lists the saving and spending events of one piggy bank.
func (c *Client) ListEvents(ctx context.Context, args ListEventsArgs) (ListEventsResult, error) {
	if coerce.Blank(args.PiggyBankID) {
		return ListEventsResult{}, apierrors.NewRequiredError("piggy_bank_id")
	}
	res, err := firefly.List[EventAttributes](ctx, c.api, "/piggy-banks/"+url.PathEscape(args.PiggyBankID)+"/events", nil)
	if err != nil {
		return ListEventsResult{}, err
	}

	events := make([]Event, 0, len(res.Data))
	for _, obj := range res.Data {
		events = append(events, Event{
			ID:                 obj.ID,
			Date:               obj.Attributes.CreatedAt,
			Amount:             format.Amount(obj.Attributes.Amount),
			CurrencyCode:       obj.Attributes.CurrencyCode,
			TransactionGroupID: obj.Attributes.TransactionGroupID,
		})
	}
	events, truncated := format.Clip(events)
	out := ListEventsResult{Events: events, Count: len(events), Truncated: truncated}
	if len(events) == 0 {
		out.Message = results.NoneFound("piggy bank events")
	}
	return out, nil
}

// ListResultOf shapes piggy bank records into the shared list result. Shared
// with the packages that list piggy banks scoped to another entity.
func ListResultOf(data []firefly.Object[Attributes]) ListResult {
	summaries := make([]Summary, 0, len(data))
	for _, obj := range data {
		summaries = append(summaries, Summary{
			ID:            obj.ID,
			Name:          obj.Attributes.Name,
			AccountName:   obj.Attributes.AccountName,
			TargetAmount:  format.Amount(obj.Attributes.TargetAmount),
			CurrentAmount: format.Amount(obj.Attributes.CurrentAmount),
			Percentage:    obj.Attributes.Percentage,
			TargetDate:    obj.Attributes.TargetDate,
		})
	}
	summaries, truncated := format.Clip(summaries)
	out := ListResult{PiggyBanks: summaries, Count: len(summaries), Truncated: truncated}
	if len(summaries) == 0 {
		out.Message = results.NoneFound("piggy banks")
	}
	return out
}
