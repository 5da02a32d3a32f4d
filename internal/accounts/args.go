package accounts

import (
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// ListArgs contains parameters for listing accounts.
type ListArgs struct {
	Type       string `json:"account_type,omitempty" jsonschema_description:"Filter by type: asset, expense, revenue, liability, or cash"`
	NameFilter string `json:"name_filter,omitempty" jsonschema_description:"Case-insensitive substring match on the account name"`
}

// ListResult is the result of listing accounts.
type ListResult struct {
	Accounts  []Summary `json:"accounts"`
	Count     int       `json:"count"`
	Truncated bool      `json:"truncated,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one account.
type GetArgs struct {
	AccountID string `json:"account_id" jsonschema:"required" jsonschema_description:"Numeric account ID"`
}

// GetResult is the result of fetching one account.
type GetResult struct {
	Account Detail `json:"account"`
}

// CreateArgs contains parameters for creating an account.
type CreateArgs struct {
	Name               string `json:"name" jsonschema:"required" jsonschema_description:"Account name"`
	Type               string `json:"account_type" jsonschema:"required" jsonschema_description:"Account type: asset, expense, revenue, or liability"`
	CurrencyCode       string `json:"currency_code,omitempty" jsonschema_description:"ISO currency code, e.g. EUR"`
	OpeningBalance     string `json:"opening_balance,omitempty" jsonschema_description:"Opening balance amount"`
	OpeningBalanceDate string `json:"opening_balance_date,omitempty" jsonschema_description:"Opening balance date (YYYY-MM-DD)"`
	Notes              string `json:"notes,omitempty" jsonschema_description:"Free-form notes"`
	LiabilityType      string `json:"liability_type,omitempty" jsonschema_description:"For liabilities: debt, loan, or mortgage"`
	LiabilityDirection string `json:"liability_direction,omitempty" jsonschema_description:"For liabilities: credit or debit"`
}

// CreateResult is the result of creating an account.
type CreateResult struct {
	Account Detail `json:"account"`
}

// UpdateArgs contains parameters for a partial account update. At least one
// optional field must be supplied.
type UpdateArgs struct {
	AccountID string `json:"account_id" jsonschema:"required" jsonschema_description:"Numeric account ID"`
	Name      string `json:"name,omitempty" jsonschema_description:"New account name"`
	Notes     string `json:"notes,omitempty" jsonschema_description:"New notes"`
	Active    *bool  `json:"active,omitempty" jsonschema_description:"Activate or deactivate the account"`
}

// UpdateResult is the result of updating an account.
type UpdateResult struct {
	Account Detail `json:"account"`
}

// DeleteArgs contains parameters for deleting an account.
type DeleteArgs struct {
	AccountID string `json:"account_id" jsonschema:"required" jsonschema_description:"Numeric account ID"`
	Confirm   bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// ListTransactionsArgs contains parameters for listing the transactions of
// one account.
type ListTransactionsArgs struct {
	AccountID string `json:"account_id" jsonschema:"required" jsonschema_description:"Numeric account ID"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"End date (YYYY-MM-DD)"`
	Type      string `json:"transaction_type,omitempty" jsonschema_description:"Filter by type: withdrawal, deposit, or transfer"`
}

// ListTransactionsResult aliases the shared transaction list result.
type ListTransactionsResult = transactions.ListResult

// ScopedArgs identifies the account whose related records are listed.
type ScopedArgs struct {
	AccountID string `json:"account_id" jsonschema:"required" jsonschema_description:"Numeric account ID"`
}
