package budgets

import (
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// ListArgs contains parameters for listing budgets.
type ListArgs struct {
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Include spent totals from this date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"Include spent totals up to this date (YYYY-MM-DD)"`
}

// ListResult is the result of listing budgets.
type ListResult struct {
	Budgets   []Summary `json:"budgets"`
	Count     int       `json:"count"`
	Truncated bool      `json:"truncated,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one budget.
type GetArgs struct {
	Budget string `json:"budget" jsonschema:"required" jsonschema_description:"Budget ID or name"`
}

// GetResult is the result of fetching one budget.
type GetResult struct {
	Budget Detail `json:"budget"`
}

// CreateArgs contains parameters for creating a budget.
type CreateArgs struct {
	Name             string `json:"name" jsonschema:"required" jsonschema_description:"Budget name"`
	Notes            string `json:"notes,omitempty" jsonschema_description:"Free-form notes"`
	AutoBudgetType   string `json:"auto_budget_type,omitempty" jsonschema_description:"Auto-budget type: reset, rollover, or none"`
	AutoBudgetAmount string `json:"auto_budget_amount,omitempty" jsonschema_description:"Auto-budget amount"`
	AutoBudgetPeriod string `json:"auto_budget_period,omitempty" jsonschema_description:"Auto-budget period, e.g. monthly"`
}

// CreateResult is the result of creating a budget.
type CreateResult struct {
	Budget Detail `json:"budget"`
}

// UpdateArgs contains parameters for a partial budget update. At least one
// optional field must be supplied.
type UpdateArgs struct {
	Budget string `json:"budget" jsonschema:"required" jsonschema_description:"Budget ID or name"`
	Name   string `json:"name,omitempty" jsonschema_description:"New budget name"`
	Notes  string `json:"notes,omitempty" jsonschema_description:"New notes"`
	Active *bool  `json:"active,omitempty" jsonschema_description:"Activate or deactivate the budget"`
}

// UpdateResult is the result of updating a budget.
type UpdateResult struct {
	Budget Detail `json:"budget"`
}

// DeleteArgs contains parameters for deleting a budget.
type DeleteArgs struct {
	BudgetID string `json:"budget_id" jsonschema:"required" jsonschema_description:"Numeric budget ID"`
	Confirm  bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// ListLimitsArgs contains parameters for listing the limits of one budget.
type ListLimitsArgs struct {
	BudgetID  string `json:"budget_id" jsonschema:"required" jsonschema_description:"Numeric budget ID"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"End date (YYYY-MM-DD)"`
}

// ListLimitsResult is the result of listing budget limits.
type ListLimitsResult struct {
	Limits  []Limit `json:"limits"`
	Count   int     `json:"count"`
	Message string  `json:"message,omitempty"`
}

// GetLimitArgs contains parameters for fetching one budget limit.
type GetLimitArgs struct {
	BudgetID string `json:"budget_id" jsonschema:"required" jsonschema_description:"Numeric budget ID"`
	LimitID  string `json:"limit_id" jsonschema:"required" jsonschema_description:"Numeric budget limit ID"`
}

// GetLimitResult is the result of fetching one budget limit.
type GetLimitResult struct {
	Limit Limit `json:"limit"`
}

// CreateLimitArgs contains parameters for creating a budget limit.
type CreateLimitArgs struct {
	BudgetID  string `json:"budget_id" jsonschema:"required" jsonschema_description:"Numeric budget ID"`
	Amount    string `json:"amount" jsonschema:"required" jsonschema_description:"Limit amount"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Limit start date (YYYY-MM-DD, default first of this month)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"Limit end date (YYYY-MM-DD, default last of this month)"`
}

// CreateLimitResult is the result of creating a budget limit.
type CreateLimitResult struct {
	Limit Limit `json:"limit"`
}

// UpdateLimitArgs contains parameters for updating a budget limit. At least
// one optional field must be supplied.
type UpdateLimitArgs struct {
	BudgetID  string `json:"budget_id" jsonschema:"required" jsonschema_description:"Numeric budget ID"`
	LimitID   string `json:"limit_id" jsonschema:"required" jsonschema_description:"Numeric budget limit ID"`
	Amount    string `json:"amount,omitempty" jsonschema_description:"New limit amount"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"New start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"New end date (YYYY-MM-DD)"`
}

// UpdateLimitResult is the result of updating a budget limit.
type UpdateLimitResult struct {
	Limit Limit `json:"limit"`
}

// DeleteLimitArgs contains parameters for deleting a budget limit.
type DeleteLimitArgs struct {
	BudgetID string `json:"budget_id" jsonschema:"required" jsonschema_description:"Numeric budget ID"`
	LimitID  string `json:"limit_id" jsonschema:"required" jsonschema_description:"Numeric budget limit ID"`
	Confirm  bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// SpendingArgs contains parameters for the budget spending report. An unset
// range defaults to the current calendar month.
type SpendingArgs struct {
	Budget    string `json:"budget" jsonschema:"required" jsonschema_description:"Budget ID or name"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"End date (YYYY-MM-DD)"`
}

// SpendingResult reports what a budget spent over a period.
type SpendingResult struct {
	BudgetID   string  `json:"budget_id"`
	BudgetName string  `json:"budget_name"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Spent      []Spent `json:"spent"`
}

// WithoutBudgetArgs contains parameters for listing transactions that carry
// no budget.
type WithoutBudgetArgs struct {
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"End date (YYYY-MM-DD)"`
}

// WithoutBudgetResult aliases the shared transaction list result.
type WithoutBudgetResult = transactions.ListResult

// ListAvailableArgs contains parameters for listing available budgets.
type ListAvailableArgs struct{}

// ListAvailableResult is the result of listing available budgets.
type ListAvailableResult struct {
	AvailableBudgets []Available `json:"available_budgets"`
	Count            int         `json:"count"`
	Message          string      `json:"message,omitempty"`
}

// GetAvailableArgs contains parameters for fetching one available budget.
type GetAvailableArgs struct {
	AvailableBudgetID string `json:"available_budget_id" jsonschema:"required" jsonschema_description:"Numeric available budget ID"`
}

// GetAvailableResult is the result of fetching one available budget.
type GetAvailableResult struct {
	AvailableBudget Available `json:"available_budget"`
}

// CreateAvailableArgs contains parameters for creating an available budget.
type CreateAvailableArgs struct {
	Amount       string `json:"amount" jsonschema:"required" jsonschema_description:"Available amount"`
	StartDate    string `json:"start_date,omitempty" jsonschema_description:"Period start (YYYY-MM-DD, default first of this month)"`
	EndDate      string `json:"end_date,omitempty" jsonschema_description:"Period end (YYYY-MM-DD, default last of this month)"`
	CurrencyCode string `json:"currency_code,omitempty" jsonschema_description:"ISO currency code"`
}

// CreateAvailableResult is the result of creating an available budget.
type CreateAvailableResult struct {
	AvailableBudget Available `json:"available_budget"`
}

// UpdateAvailableArgs contains parameters for updating an available budget.
// At least one optional field must be supplied.
type UpdateAvailableArgs struct {
	AvailableBudgetID string `json:"available_budget_id" jsonschema:"required" jsonschema_description:"Numeric available budget ID"`
	Amount            string `json:"amount,omitempty" jsonschema_description:"New amount"`
	StartDate         string `json:"start_date,omitempty" jsonschema_description:"New period start (YYYY-MM-DD)"`
	EndDate           string `json:"end_date,omitempty" jsonschema_description:"New period end (YYYY-MM-DD)"`
}

// UpdateAvailableResult is the result of updating an available budget.
type UpdateAvailableResult struct {
	AvailableBudget Available `json:"available_budget"`
}

// DeleteAvailableArgs contains parameters for deleting an available budget.
type DeleteAvailableArgs struct {
	AvailableBudgetID string `json:"available_budget_id" jsonschema:"required" jsonschema_description:"Numeric available budget ID"`
	Confirm           bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}
