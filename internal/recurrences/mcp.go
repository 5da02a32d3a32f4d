// Package recurrences exposes the Firefly III recurring transaction
// endpoints as MCP tool methods.
package recurrences

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
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// Client provides recurrence tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a recurrences client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// List lists all recurrences.
func (c *Client) List(ctx context.Context, _ ListArgs) (ListResult, error) {
	res, err := firefly.List[Attributes](ctx, c.api, "/recurrences", nil)
	if err != nil {
		return ListResult{}, err
	}

	summaries := make([]Summary, 0, len(res.Data))
	for _, obj := range res.Data {
		summaries = append(summaries, Summary{
			ID:        obj.ID,
			Title:     obj.Attributes.Title,
			Type:      obj.Attributes.Type,
			FirstDate: obj.Attributes.FirstDate,
			Active:    obj.Attributes.Active,
		})
	}
	summaries, truncated := format.Clip(summaries)
	out := ListResult{Recurrences: summaries, Count: len(summaries), Truncated: truncated}
	if len(summaries) == 0 {
		out.Message = results.NoneFound("recurrences")
	}
	return out, nil
}

// Get fetches one recurrence by ID.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.RecurrenceID) {
		return GetResult{}, apierrors.NewRequiredError("recurrence_id")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, "/recurrences/"+url.PathEscape(args.RecurrenceID))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Recurrence: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Create creates a recurring transaction. The repetition moment is derived
// from the first date: day of month for monthly, weekday for weekly, and
// month-day for yearly.
func (c *Client) Create(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Title) {
		return CreateResult{}, apierrors.NewRequiredError("title")
	}
	if coerce.Blank(args.Type) {
		return CreateResult{}, apierrors.NewRequiredError("transaction_type")
	}
	if coerce.Blank(args.Amount) {
		return CreateResult{}, apierrors.NewRequiredError("amount")
	}
	if coerce.Blank(args.FirstDate) {
		return CreateResult{}, apierrors.NewRequiredError("first_date")
	}
	if coerce.Blank(args.Frequency) {
		return CreateResult{}, apierrors.NewRequiredError("frequency")
	}
	moment, err := repetitionMoment(args.Frequency, args.FirstDate)
	if err != nil {
		return CreateResult{}, err
	}

	description := args.Description
	if coerce.Blank(description) {
		description = args.Title
	}
	tmpl := TemplateTransaction{Description: description, Amount: args.Amount}
	tmpl.SourceID, tmpl.SourceName = coerce.RouteRef(args.SourceAccount)
	tmpl.DestinationID, tmpl.DestinationName = coerce.RouteRef(args.DestinationAccount)
	if !coerce.Blank(args.Category) {
		tmpl.CategoryName = args.Category
	}
	tmpl.BudgetID, tmpl.BudgetName = coerce.RouteRef(args.Budget)

	res, err := firefly.Post[Attributes](ctx, c.api, "/recurrences", createRequest{
		Type:         args.Type,
		Title:        args.Title,
		Description:  args.Description,
		FirstDate:    args.FirstDate,
		RepeatUntil:  args.RepeatUntil,
		ApplyRules:   true,
		Active:       true,
		Repetitions:  []Repetition{{Type: args.Frequency, Moment: moment}},
		Transactions: []TemplateTransaction{tmpl},
	})
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Recurrence: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update applies a partial update to a recurrence.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.RecurrenceID) {
		return UpdateResult{}, apierrors.NewRequiredError("recurrence_id")
	}
	if coerce.Blank(args.Title) && coerce.Blank(args.Description) && coerce.Blank(args.FirstDate) &&
		coerce.Blank(args.RepeatUntil) && args.Active == nil {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	res, err := firefly.Put[Attributes](ctx, c.api, "/recurrences/"+url.PathEscape(args.RecurrenceID), updateRequest{
		Title:       args.Title,
		Description: args.Description,
		FirstDate:   args.FirstDate,
		RepeatUntil: args.RepeatUntil,
		Active:      args.Active,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Recurrence: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes a recurrence. Transactions it already created survive.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.RecurrenceID) {
		return DeleteResult{}, apierrors.NewRequiredError("recurrence_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("recurrence"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/recurrences/"+url.PathEscape(args.RecurrenceID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.RecurrenceID), nil
}

// ListTransactions lists the transactions a recurrence has created.
func (c *Client) ListTransactions(ctx context.Context, args ListTransactionsArgs) (ListTransactionsResult, error) {
	if coerce.Blank(args.RecurrenceID) {
		return ListTransactionsResult{}, apierrors.NewRequiredError("recurrence_id")
	}
	res, err := firefly.List[transactions.Attributes](ctx, c.api, "/recurrences/"+url.PathEscape(args.RecurrenceID)+"/transactions", nil)
	if err != nil {
		return ListTransactionsResult{}, err
	}
	return transactions.ListResultOf(res.Data), nil
}

func repetitionMoment(frequency, firstDate string) (string, error) {
	date, err := time.Parse(coerce.DateLayout, firstDate)
	if err != nil {
		return "", apierrors.NewValidationError("first_date", "must be formatted YYYY-MM-DD")
	}
	switch frequency {
	case "daily":
		return "", nil
	case "weekly":
		// Firefly counts Monday as 1.
		wd := int(date.Weekday())
		if wd == 0 {
			wd = 7
		}
		return strconv.Itoa(wd), nil
	case "monthly":
		return strconv.Itoa(date.Day()), nil
	case "yearly":
		return date.Format(coerce.DateLayout), nil
	default:
		return "", apierrors.NewValidationError("frequency", "must be daily, weekly, monthly, or yearly")
	}
}
