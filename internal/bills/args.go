package bills

import (
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/rules"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// ListArgs contains parameters for listing bills.
type ListArgs struct{}

// ListResult is the result of listing bills.
type ListResult struct {
	Bills     []Summary `json:"bills"`
	Count     int       `json:"count"`
	Truncated bool      `json:"truncated,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one bill.
type GetArgs struct {
	BillID string `json:"bill_id" jsonschema:"required" jsonschema_description:"Numeric bill ID"`
}

// GetResult is the result of fetching one bill.
type GetResult struct {
	Bill Detail `json:"bill"`
}

// CreateArgs contains parameters for creating a bill.
type CreateArgs struct {
	Name       string `json:"name" jsonschema:"required" jsonschema_description:"Bill name"`
	AmountMin  string `json:"amount_min" jsonschema:"required" jsonschema_description:"Minimum expected amount"`
	AmountMax  string `json:"amount_max" jsonschema:"required" jsonschema_description:"Maximum expected amount"`
	Date       string `json:"date" jsonschema:"required" jsonschema_description:"First expected date (YYYY-MM-DD)"`
	RepeatFreq string `json:"repeat_freq" jsonschema:"required" jsonschema_description:"Repeat frequency: weekly, monthly, quarterly, half-year, or yearly"`
	Skip       int    `json:"skip,omitempty" jsonschema_description:"Number of periods to skip between occurrences"`
	Notes      string `json:"notes,omitempty" jsonschema_description:"Free-form notes"`
}

// CreateResult is the result of creating a bill.
type CreateResult struct {
	Bill Detail `json:"bill"`
}

// UpdateArgs contains parameters for a partial bill update. At least one
// optional field must be supplied.
type UpdateArgs struct {
	BillID     string `json:"bill_id" jsonschema:"required" jsonschema_description:"Numeric bill ID"`
	Name       string `json:"name,omitempty" jsonschema_description:"New bill name"`
	AmountMin  string `json:"amount_min,omitempty" jsonschema_description:"New minimum expected amount"`
	AmountMax  string `json:"amount_max,omitempty" jsonschema_description:"New maximum expected amount"`
	Date       string `json:"date,omitempty" jsonschema_description:"New expected date (YYYY-MM-DD)"`
	RepeatFreq string `json:"repeat_freq,omitempty" jsonschema_description:"New repeat frequency"`
	Notes      string `json:"notes,omitempty" jsonschema_description:"New notes"`
	Active     *bool  `json:"active,omitempty" jsonschema_description:"Activate or deactivate the bill"`
}

// UpdateResult is the result of updating a bill.
type UpdateResult struct {
	Bill Detail `json:"bill"`
}

// DeleteArgs contains parameters for deleting a bill.
type DeleteArgs struct {
	BillID  string `json:"bill_id" jsonschema:"required" jsonschema_description:"Numeric bill ID"`
	Confirm bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// ListTransactionsArgs contains parameters for listing the transactions
// linked to one bill.
type ListTransactionsArgs struct {
	BillID    string `json:"bill_id" jsonschema:"required" jsonschema_description:"Numeric bill ID"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"End date (YYYY-MM-DD)"`
}

// ListTransactionsResult aliases the shared transaction list result.
type ListTransactionsResult = transactions.ListResult

// ListRulesArgs contains parameters for listing the rules connected to one
// bill.
type ListRulesArgs struct {
	BillID string `json:"bill_id" jsonschema:"required" jsonschema_description:"Numeric bill ID"`
}

// ListRulesResult aliases the shared rule list result.
type ListRulesResult = rules.ListResult
