// Package accounts exposes the Firefly III account endpoints as MCP tool
// methods.
package accounts

import (
	"context"
	"net/url"
	"strings"

	"github.com/akarpova/firefly-mcp-server/internal/attachments"
	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/format"
	"github.com/akarpova/firefly-mcp-server/internal/piggybanks"
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// Client provides account tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates an accounts client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// List lists accounts with optional type and name-substring filters. The
// type filter is applied server side and the name filter client side.
func (c *Client) List(ctx context.Context, args ListArgs) (ListResult, error) {
	q := url.Values{}
	if !coerce.Blank(args.Type) {
		q.Set("type", args.Type)
	}
	res, err := firefly.List[Attributes](ctx, c.api, "/accounts", q)
	if err != nil {
		return ListResult{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(args.NameFilter))
	summaries := make([]Summary, 0, len(res.Data))
	for _, obj := range res.Data {
		if needle != "" && !strings.Contains(strings.ToLower(obj.Attributes.Name), needle) {
			continue
		}
		summaries = append(summaries, Summary{
			ID:           obj.ID,
			Name:         obj.Attributes.Name,
			Type:         obj.Attributes.Type,
			Balance:      format.Amount(obj.Attributes.CurrentBalance),
			CurrencyCode: obj.Attributes.CurrencyCode,
			Active:       obj.Attributes.Active,
		})
	}

	summaries, truncated := format.Clip(summaries)
	out := ListResult{Accounts: summaries, Count: len(summaries), Truncated: truncated}
	if len(summaries) == 0 {
		out.Message = results.NoneFound("accounts")
	}
	return out, nil
}

// Get fetches one account by ID.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.AccountID) {
		return GetResult{}, apierrors.NewRequiredError("account_id")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, "/accounts/"+url.PathEscape(args.AccountID))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Account: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Create creates an account.
func (c *Client) Create(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Name) {
		return CreateResult{}, apierrors.NewRequiredError("name")
	}
	if coerce.Blank(args.Type) {
		return CreateResult{}, apierrors.NewRequiredError("account_type")
	}

	res, err := firefly.Post[Attributes](ctx, c.api, "/accounts", createRequest{
		Name:               args.Name,
		Type:               args.Type,
		CurrencyCode:       args.CurrencyCode,
		OpeningBalance:     args.OpeningBalance,
		OpeningBalanceDate: args.OpeningBalanceDate,
		Notes:              args.Notes,
		LiabilityType:      args.LiabilityType,
		LiabilityDirection: args.LiabilityDirection,
	})
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Account: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update applies a partial update to an account.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.AccountID) {
		return UpdateResult{}, apierrors.NewRequiredError("account_id")
	}
	if coerce.Blank(args.Name) && coerce.Blank(args.Notes) && args.Active == nil {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}

	res, err := firefly.Put[Attributes](ctx, c.api, "/accounts/"+url.PathEscape(args.AccountID), updateRequest{
		Name:   args.Name,
		Notes:  args.Notes,
		Active: args.Active,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Account: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes an account. Deleting an account also removes its
// transactions on the backend.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.AccountID) {
		return DeleteResult{}, apierrors.NewRequiredError("account_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("account and its transactions"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/accounts/"+url.PathEscape(args.AccountID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.AccountID), nil
}

// ListTransactions lists the transactions of one account.
func (c *Client) ListTransactions(ctx context.Context, args ListTransactionsArgs) (ListTransactionsResult, error) {
	if coerce.Blank(args.AccountID) {
		return ListTransactionsResult{}, apierrors.NewRequiredError("account_id")
	}
	q := url.Values{}
	if !coerce.Blank(args.StartDate) {
		q.Set("start", args.StartDate)
	}
	if !coerce.Blank(args.EndDate) {
		q.Set("end", args.EndDate)
	}
	if !coerce.Blank(args.Type) {
		q.Set("type", args.Type)
	}
	res, err := firefly.List[transactions.Attributes](ctx, c.api, "/accounts/"+url.PathEscape(args.AccountID)+"/transactions", q)
	if err != nil {
		return ListTransactionsResult{}, err
	}
	return transactions.ListResultOf(res.Data), nil
}

// ListAttachments lists the attachments of one account.
func (c *Client) ListAttachments(ctx context.Context, args ScopedArgs) (attachments.ListResult, error) {
	if coerce.Blank(args.AccountID) {
		return attachments.ListResult{}, apierrors.NewRequiredError("account_id")
	}
	res, err := firefly.List[attachments.Attributes](ctx, c.api, "/accounts/"+url.PathEscape(args.AccountID)+"/attachments", nil)
	if err != nil {
		return attachments.ListResult{}, err
	}
	return attachments.ListResultOf(res.Data), nil
}

// ListPiggyBanks lists the piggy banks attached to one asset account.
func (c *Client) ListPiggyBanks(ctx context.Context, args ScopedArgs) (piggybanks.ListResult, error) {
	if coerce.Blank(args.AccountID) {
		return piggybanks.ListResult{}, apierrors.NewRequiredError("account_id")
	}
	res, err := firefly.List[piggybanks.Attributes](ctx, c.api, "/accounts/"+url.PathEscape(args.AccountID)+"/piggy-banks", nil)
	if err != nil {
		return piggybanks.ListResult{}, err
	}
	return piggybanks.ListResultOf(res.Data), nil
}
