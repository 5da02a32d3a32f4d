// Package budgets exposes the Firefly III budget, budget limit, and
// available budget endpoints as MCP tool methods.
package budgets

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/format"
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// Client provides budget tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
	now func() time.Time
}

// NewClient creates a budgets client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api, now: time.Now}
}

// resolve turns a budget reference into the budget record. Numeric
// references fetch directly; names are matched case-insensitively against
// the budget list.
func (c *Client) resolve(ctx context.Context, ref string) (firefly.Object[Attributes], error) {
	if coerce.NumericID(ref) {
		res, err := firefly.Get[Attributes](ctx, c.api, "/budgets/"+url.PathEscape(ref))
		if err != nil {
			return firefly.Object[Attributes]{}, err
		}
		return res.Data, nil
	}

	list, err := firefly.List[Attributes](ctx, c.api, "/budgets", nil)
	if err != nil {
		return firefly.Object[Attributes]{}, err
	}
	for _, obj := range list.Data {
		if strings.EqualFold(obj.Attributes.Name, strings.TrimSpace(ref)) {
			return obj, nil
		}
	}
	return firefly.Object[Attributes]{}, apierrors.NewValidationError("budget", "no budget named "+strings.TrimSpace(ref))
}

// List lists budgets, optionally with spent totals over a date range.
func (c *Client) List(ctx context.Context, args ListArgs) (ListResult, error) {
	q := url.Values{}
	if !coerce.Blank(args.StartDate) {
		q.Set("start", args.StartDate)
	}
	if !coerce.Blank(args.EndDate) {
		q.Set("end", args.EndDate)
	}
	res, err := firefly.List[Attributes](ctx, c.api, "/budgets", q)
	if err != nil {
		return ListResult{}, err
	}

	summaries := make([]Summary, 0, len(res.Data))
	for _, obj := range res.Data {
		s := Summary{ID: obj.ID, Name: obj.Attributes.Name, Active: obj.Attributes.Active}
		if len(obj.Attributes.Spent) > 0 {
			s.Spent = format.Amount(obj.Attributes.Spent[0].Sum)
		}
		summaries = append(summaries, s)
	}
	summaries, truncated := format.Clip(summaries)
	out := ListResult{Budgets: summaries, Count: len(summaries), Truncated: truncated}
	if len(summaries) == 0 {
		out.Message = results.NoneFound("budgets")
	}
	return out, nil
}

// Get fetches one budget by ID or name.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.Budget) {
		return GetResult{}, apierrors.NewRequiredError("budget")
	}
	obj, err := c.resolve(ctx, args.Budget)
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Budget: detailOf(obj.ID, obj.Attributes)}, nil
}

// Create creates a budget.
func (c *Client) Create(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Name) {
		return CreateResult{}, apierrors.NewRequiredError("name")
	}
	res, err := firefly.Post[Attributes](ctx, c.api, "/budgets", budgetRequest{
		Name:             args.Name,
		Notes:            args.Notes,
		AutoBudgetType:   args.AutoBudgetType,
		AutoBudgetAmount: args.AutoBudgetAmount,
		AutoBudgetPeriod: args.AutoBudgetPeriod,
	})
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Budget: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update applies a partial update to a budget identified by ID or name.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.Budget) {
		return UpdateResult{}, apierrors.NewRequiredError("budget")
	}
	if coerce.Blank(args.Name) && coerce.Blank(args.Notes) && args.Active == nil {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	obj, err := c.resolve(ctx, args.Budget)
	if err != nil {
		return UpdateResult{}, err
	}
	res, err := firefly.Put[Attributes](ctx, c.api, "/budgets/"+url.PathEscape(obj.ID), budgetRequest{
		Name:   args.Name,
		Notes:  args.Notes,
		Active: args.Active,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Budget: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes a budget. Its transactions survive without a budget.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.BudgetID) {
		return DeleteResult{}, apierrors.NewRequiredError("budget_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("budget"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/budgets/"+url.PathEscape(args.BudgetID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.BudgetID), nil
}

// ListLimits lists the limits of one budget.
func (c *Client) ListLimits(ctx context.Context, args ListLimitsArgs) (ListLimitsResult, error) {
	if coerce.Blank(args.BudgetID) {
		return ListLimitsResult{}, apierrors.NewRequiredError("budget_id")
	}
	q := url.Values{}
	if !coerce.Blank(args.StartDate) {
		q.Set("start", args.StartDate)
	}
	if !coerce.Blank(args.EndDate) {
		q.Set("end", args.EndDate)
	}
	res, err := firefly.List[LimitAttributes](ctx, c.api, "/budgets/"+url.PathEscape(args.BudgetID)+"/limits", q)
	if err != nil {
		return ListLimitsResult{}, err
	}

	limits := make([]Limit, 0, len(res.Data))
	for _, obj := range res.Data {
		limits = append(limits, limitOf(obj.ID, obj.Attributes))
	}
	out := ListLimitsResult{Limits: limits, Count: len(limits)}
	if len(limits) == 0 {
		out.Message = results.NoneFound("budget limits")
	}
	return out, nil
}

// GetLimit fetches one budget limit.
func (c *Client) GetLimit(ctx context.Context, args GetLimitArgs) (GetLimitResult, error) {
	if coerce.Blank(args.BudgetID) {
		return GetLimitResult{}, apierrors.NewRequiredError("budget_id")
	}
	if coerce.Blank(args.LimitID) {
		return GetLimitResult{}, apierrors.NewRequiredError("limit_id")
	}
	res, err := firefly.Get[LimitAttributes](ctx, c.api, "/budgets/"+url.PathEscape(args.BudgetID)+"/limits/"+url.PathEscape(args.LimitID))
	if err != nil {
		return GetLimitResult{}, err
	}
	return GetLimitResult{Limit: limitOf(res.Data.ID, res.Data.Attributes)}, nil
}

// CreateLimit creates a budget limit. An unset period defaults to the
// current calendar month.
func (c *Client) CreateLimit(ctx context.Context, args CreateLimitArgs) (CreateLimitResult, error) {
	if coerce.Blank(args.BudgetID) {
		return CreateLimitResult{}, apierrors.NewRequiredError("budget_id")
	}
	if coerce.Blank(args.Amount) {
		return CreateLimitResult{}, apierrors.NewRequiredError("amount")
	}
	start, end := coerce.PeriodOrMonth(args.StartDate, args.EndDate, c.now())
	res, err := firefly.Post[LimitAttributes](ctx, c.api, "/budgets/"+url.PathEscape(args.BudgetID)+"/limits", limitRequest{
		Start:  start,
		End:    end,
		Amount: args.Amount,
	})
	if err != nil {
		return CreateLimitResult{}, err
	}
	return CreateLimitResult{Limit: limitOf(res.Data.ID, res.Data.Attributes)}, nil
}

// UpdateLimit updates a budget limit.
func (c *Client) UpdateLimit(ctx context.Context, args UpdateLimitArgs) (UpdateLimitResult, error) {
	if coerce.Blank(args.BudgetID) {
		return UpdateLimitResult{}, apierrors.NewRequiredError("budget_id")
	}
	if coerce.Blank(args.LimitID) {
		return UpdateLimitResult{}, apierrors.NewRequiredError("limit_id")
	}
	if coerce.Blank(args.Amount) && coerce.Blank(args.StartDate) && coerce.Blank(args.EndDate) {
		return UpdateLimitResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	res, err := firefly.Put[LimitAttributes](ctx, c.api, "/budgets/"+url.PathEscape(args.BudgetID)+"/limits/"+url.PathEscape(args.LimitID), limitRequest{
		Start:  args.StartDate,
		End:    args.EndDate,
		Amount: args.Amount,
	})
	if err != nil {
		return UpdateLimitResult{}, err
	}
	return UpdateLimitResult{Limit: limitOf(res.Data.ID, res.Data.Attributes)}, nil
}

// DeleteLimit removes a budget limit.
func (c *Client) DeleteLimit(ctx context.Context, args DeleteLimitArgs) (DeleteResult, error) {
	if coerce.Blank(args.BudgetID) {
		return DeleteResult{}, apierrors.NewRequiredError("budget_id")
	}
	if coerce.Blank(args.LimitID) {
		return DeleteResult{}, apierrors.NewRequiredError("limit_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("budget limit"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/budgets/"+url.PathEscape(args.BudgetID)+"/limits/"+url.PathEscape(args.LimitID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.LimitID), nil
}

// Spending reports what one budget spent over a period. An unset range
// defaults to the current calendar month.
func (c *Client) Spending(ctx context.Context, args SpendingArgs) (SpendingResult, error) {
	if coerce.Blank(args.Budget) {
		return SpendingResult{}, apierrors.NewRequiredError("budget")
	}
	start, end := coerce.PeriodOrMonth(args.StartDate, args.EndDate, c.now())

	obj, err := c.resolve(ctx, args.Budget)
	if err != nil {
		return SpendingResult{}, err
	}

	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)
	res, err := firefly.Get[Attributes](ctx, c.api, "/budgets/"+url.PathEscape(obj.ID)+"?"+q.Encode())
	if err != nil {
		return SpendingResult{}, err
	}

	spent := res.Data.Attributes.Spent
	if spent == nil {
		spent = []Spent{}
	}
	for i := range spent {
		spent[i].Sum = format.Amount(spent[i].Sum)
	}
	return SpendingResult{
		BudgetID:   res.Data.ID,
		BudgetName: res.Data.Attributes.Name,
		StartDate:  start,
		EndDate:    end,
		Spent:      spent,
	}, nil
}

// WithoutBudget lists transactions that carry no budget.
func (c *Client) WithoutBudget(ctx context.Context, args WithoutBudgetArgs) (WithoutBudgetResult, error) {
	q := url.Values{}
	if !coerce.Blank(args.StartDate) {
		q.Set("start", args.StartDate)
	}
	if !coerce.Blank(args.EndDate) {
		q.Set("end", args.EndDate)
	}
	res, err := firefly.List[transactions.Attributes](ctx, c.api, "/budgets/transactions-without-budget", q)
	if err != nil {
		return WithoutBudgetResult{}, err
	}
	return transactions.ListResultOf(res.Data), nil
}

// ListAvailable lists available budgets.
func (c *Client) ListAvailable(ctx context.Context, _ ListAvailableArgs) (ListAvailableResult, error) {
	res, err := firefly.List[AvailableAttributes](ctx, c.api, "/available-budgets", nil)
	if err != nil {
		return ListAvailableResult{}, err
	}
	available := make([]Available, 0, len(res.Data))
	for _, obj := range res.Data {
		available = append(available, availableOf(obj.ID, obj.Attributes))
	}
	out := ListAvailableResult{AvailableBudgets: available, Count: len(available)}
	if len(available) == 0 {
		out.Message = results.NoneFound("available budgets")
	}
	return out, nil
}

// GetAvailable fetches one available budget.
func (c *Client) GetAvailable(ctx context.Context, args GetAvailableArgs) (GetAvailableResult, error) {
	if coerce.Blank(args.AvailableBudgetID) {
		return GetAvailableResult{}, apierrors.NewRequiredError("available_budget_id")
	}
	res, err := firefly.Get[AvailableAttributes](ctx, c.api, "/available-budgets/"+url.PathEscape(args.AvailableBudgetID))
	if err != nil {
		return GetAvailableResult{}, err
	}
	return GetAvailableResult{AvailableBudget: availableOf(res.Data.ID, res.Data.Attributes)}, nil
}

// CreateAvailable creates an available budget for a period. An unset period
// defaults to the current calendar month.
func (c *Client) CreateAvailable(ctx context.Context, args CreateAvailableArgs) (CreateAvailableResult, error) {
	if coerce.Blank(args.Amount) {
		return CreateAvailableResult{}, apierrors.NewRequiredError("amount")
	}
	start, end := coerce.PeriodOrMonth(args.StartDate, args.EndDate, c.now())
	res, err := firefly.Post[AvailableAttributes](ctx, c.api, "/available-budgets", availableRequest{
		CurrencyCode: args.CurrencyCode,
		Amount:       args.Amount,
		Start:        start,
		End:          end,
	})
	if err != nil {
		return CreateAvailableResult{}, err
	}
	return CreateAvailableResult{AvailableBudget: availableOf(res.Data.ID, res.Data.Attributes)}, nil
}

// UpdateAvailable updates an available budget.
func (c *Client) UpdateAvailable(ctx context.Context, args UpdateAvailableArgs) (UpdateAvailableResult, error) {
	if coerce.Blank(args.AvailableBudgetID) {
		return UpdateAvailableResult{}, apierrors.NewRequiredError("available_budget_id")
	}
	if coerce.Blank(args.Amount) && coerce.Blank(args.StartDate) && coerce.Blank(args.EndDate) {
		return UpdateAvailableResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	res, err := firefly.Put[AvailableAttributes](ctx, c.api, "/available-budgets/"+url.PathEscape(args.AvailableBudgetID), availableRequest{
		Amount: args.Amount,
		Start:  args.StartDate,
		End:    args.EndDate,
	})
	if err != nil {
		return UpdateAvailableResult{}, err
	}
	return UpdateAvailableResult{AvailableBudget: availableOf(res.Data.ID, res.Data.Attributes)}, nil
}

// DeleteAvailable removes an available budget.
func (c *Client) DeleteAvailable(ctx context.Context, args DeleteAvailableArgs) (DeleteResult, error) {
	if coerce.Blank(args.AvailableBudgetID) {
		return DeleteResult{}, apierrors.NewRequiredError("available_budget_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("available budget"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/available-budgets/"+url.PathEscape(args.AvailableBudgetID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.AvailableBudgetID), nil
}
