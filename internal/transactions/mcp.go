// Package transactions exposes the Firefly III transaction endpoints as MCP
// tool methods.
package transactions

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/format"
	"github.com/akarpova/firefly-mcp-server/internal/results"
)

// Client provides transaction tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
	now func() time.Time
}

// NewClient creates a transactions client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api, now: time.Now}
}

// DefaultCounterAccount is used when a withdrawal or deposit omits the
// counter side.
const DefaultCounterAccount = "Cash account"

// List lists transactions with optional date range and type filters.
func (c *Client) List(ctx context.Context, args ListArgs) (ListResult, error) {
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
	limit := args.Limit
	if limit <= 0 || limit > format.MaxRows {
		limit = format.MaxRows
	}
	q.Set("limit", strconv.Itoa(limit))

	res, err := firefly.List[Attributes](ctx, c.api, "/transactions", q)
	if err != nil {
		return ListResult{}, err
	}
	return listResult(res.Data), nil
}

// Get fetches one transaction group by ID.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.TransactionID) {
		return GetResult{}, apierrors.NewRequiredError("transaction_id")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, "/transactions/"+url.PathEscape(args.TransactionID))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Transaction: detailOf(res.Data)}, nil
}

// CreateWithdrawal creates an expense transaction.
func (c *Client) CreateWithdrawal(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.SourceAccount) {
		return CreateResult{}, apierrors.NewRequiredError("source_account")
	}
	if coerce.Blank(args.DestinationAccount) {
		args.DestinationAccount = DefaultCounterAccount
	}
	return c.create(ctx, "withdrawal", args)
}

// CreateDeposit creates an income transaction.
func (c *Client) CreateDeposit(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.DestinationAccount) {
		return CreateResult{}, apierrors.NewRequiredError("destination_account")
	}
	if coerce.Blank(args.SourceAccount) {
		args.SourceAccount = DefaultCounterAccount
	}
	return c.create(ctx, "deposit", args)
}

// CreateTransfer creates a transfer between two asset accounts.
func (c *Client) CreateTransfer(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.SourceAccount) {
		return CreateResult{}, apierrors.NewRequiredError("source_account")
	}
	if coerce.Blank(args.DestinationAccount) {
		return CreateResult{}, apierrors.NewRequiredError("destination_account")
	}
	return c.create(ctx, "transfer", args)
}

func (c *Client) create(ctx context.Context, txType string, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Description) {
		return CreateResult{}, apierrors.NewRequiredError("description")
	}
	if coerce.Blank(args.Amount) {
		return CreateResult{}, apierrors.NewRequiredError("amount")
	}

	split := Split{
		Type:        txType,
		Date:        coerce.DateOrDefault(args.Date, c.now()),
		Amount:      args.Amount,
		Description: args.Description,
	}
	split.SourceID, split.SourceName = coerce.RouteRef(args.SourceAccount)
	split.DestinationID, split.DestinationName = coerce.RouteRef(args.DestinationAccount)
	if !coerce.Blank(args.Category) {
		split.CategoryName = args.Category
	}
	split.BudgetID, split.BudgetName = coerce.RouteRef(args.Budget)
	split.Tags = coerce.SplitList(args.Tags)
	if !coerce.Blank(args.Notes) {
		split.Notes = args.Notes
	}

	res, err := firefly.Post[Attributes](ctx, c.api, "/transactions", storeRequest{
		ErrorIfDuplicateHash: false,
		ApplyRules:           true,
		Transactions:         []Split{split},
	})
	if err != nil {
		return CreateResult{}, err
	}

	stored := res.Data.Attributes.Transactions
	out := CreateResult{ID: res.Data.ID, Type: txType}
	if len(stored) > 0 {
		out.Description = stored[0].Description
		out.Amount = format.Amount(stored[0].Amount)
		out.CurrencyCode = stored[0].CurrencyCode
		out.Date = stored[0].Date
	}
	return out, nil
}

// Update applies a partial update to a transaction group. The backend
// requires a full split on PUT, so the current record is fetched first and
// the supplied fields are merged into it.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.TransactionID) {
		return UpdateResult{}, apierrors.NewRequiredError("transaction_id")
	}
	if coerce.Blank(args.Description) && coerce.Blank(args.Amount) && coerce.Blank(args.Date) &&
		coerce.Blank(args.Category) && coerce.Blank(args.Budget) && coerce.Blank(args.Tags) && coerce.Blank(args.Notes) {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}

	path := "/transactions/" + url.PathEscape(args.TransactionID)
	current, err := firefly.Get[Attributes](ctx, c.api, path)
	if err != nil {
		return UpdateResult{}, err
	}
	if len(current.Data.Attributes.Transactions) == 0 {
		return UpdateResult{}, &apierrors.APIError{Status: 404, Message: "transaction has no splits"}
	}

	split := current.Data.Attributes.Transactions[0]
	if !coerce.Blank(args.Description) {
		split.Description = args.Description
	}
	if !coerce.Blank(args.Amount) {
		split.Amount = args.Amount
	}
	if !coerce.Blank(args.Date) {
		split.Date = args.Date
	}
	if !coerce.Blank(args.Category) {
		split.CategoryName = args.Category
	}
	if !coerce.Blank(args.Budget) {
		split.BudgetID, split.BudgetName = coerce.RouteRef(args.Budget)
	}
	if !coerce.Blank(args.Tags) {
		split.Tags = coerce.SplitList(args.Tags)
	}
	if !coerce.Blank(args.Notes) {
		split.Notes = args.Notes
	}

	res, err := firefly.Put[Attributes](ctx, c.api, path, updateRequest{Transactions: []Split{split}})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Transaction: detailOf(res.Data)}, nil
}

// Delete removes a transaction group.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.TransactionID) {
		return DeleteResult{}, apierrors.NewRequiredError("transaction_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("transaction"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/transactions/"+url.PathEscape(args.TransactionID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.TransactionID), nil
}

// DeleteJournal removes a single journal (split). Deleting the last journal
// of a group deletes the group.
func (c *Client) DeleteJournal(ctx context.Context, args DeleteJournalArgs) (DeleteResult, error) {
	if coerce.Blank(args.JournalID) {
		return DeleteResult{}, apierrors.NewRequiredError("journal_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("transaction journal"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/transaction-journals/"+url.PathEscape(args.JournalID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.JournalID), nil
}

// GetByJournal resolves a journal ID to its owning transaction group.
func (c *Client) GetByJournal(ctx context.Context, args GetByJournalArgs) (GetResult, error) {
	if coerce.Blank(args.JournalID) {
		return GetResult{}, apierrors.NewRequiredError("journal_id")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, "/transaction-journals/"+url.PathEscape(args.JournalID))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Transaction: detailOf(res.Data)}, nil
}

// RowsOf flattens transaction groups into display rows. Shared with the
// packages that list transactions scoped to another entity.
func RowsOf(data []firefly.Object[Attributes]) []Row {
	rows := make([]Row, 0, len(data))
	for _, obj := range data {
		for _, split := range obj.Attributes.Transactions {
			rows = append(rows, Row{
				ID:           obj.ID,
				Date:         split.Date,
				Type:         split.Type,
				Description:  split.Description,
				Amount:       format.Amount(split.Amount),
				CurrencyCode: split.CurrencyCode,
				SourceName:   split.SourceName,
				DestName:     split.DestinationName,
				CategoryName: split.CategoryName,
				BudgetName:   split.BudgetName,
			})
		}
	}
	return rows
}

// ListResultOf shapes transaction groups into the shared list result,
// applying the display row cap and the empty sentinel.
func ListResultOf(data []firefly.Object[Attributes]) ListResult {
	return listResult(data)
}

func listResult(data []firefly.Object[Attributes]) ListResult {
	rows, truncated := format.Clip(RowsOf(data))
	out := ListResult{Transactions: rows, Count: len(rows), Truncated: truncated}
	if len(rows) == 0 {
		out.Message = results.NoneFound("transactions")
	}
	return out
}

func detailOf(obj firefly.Object[Attributes]) Detail {
	return Detail{
		ID:         obj.ID,
		GroupTitle: obj.Attributes.GroupTitle,
		Splits:     obj.Attributes.Transactions,
	}
}
