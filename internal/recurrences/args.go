package recurrences

import (
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// ListArgs contains parameters for listing recurrences.
type ListArgs struct{}

// ListResult is the result of listing recurrences.
type ListResult struct {
	Recurrences []Summary `json:"recurrences"`
	Count       int       `json:"count"`
	Truncated   bool      `json:"truncated,omitempty"`
	Message     string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one recurrence.
type GetArgs struct {
	RecurrenceID string `json:"recurrence_id" jsonschema:"required" jsonschema_description:"Numeric recurrence ID"`
}

// GetResult is the result of fetching one recurrence.
type GetResult struct {
	Recurrence Detail `json:"recurrence"`
}

// CreateArgs contains parameters for creating a recurring transaction.
type CreateArgs struct {
	Title              string `json:"title" jsonschema:"required" jsonschema_description:"Recurrence title"`
	Type               string `json:"transaction_type" jsonschema:"required" jsonschema_description:"Transaction type: withdrawal, deposit, or transfer"`
	Amount             string `json:"amount" jsonschema:"required" jsonschema_description:"Amount of each occurrence"`
	FirstDate          string `json:"first_date" jsonschema:"required" jsonschema_description:"First occurrence date (YYYY-MM-DD)"`
	Frequency          string `json:"frequency" jsonschema:"required" jsonschema_description:"Repetition frequency: daily, weekly, monthly, or yearly"`
	Description        string `json:"description,omitempty" jsonschema_description:"Transaction description (default: the title)"`
	SourceAccount      string `json:"source_account,omitempty" jsonschema_description:"Source account ID or name"`
	DestinationAccount string `json:"destination_account,omitempty" jsonschema_description:"Destination account ID or name"`
	Category           string `json:"category,omitempty" jsonschema_description:"Category name"`
	Budget             string `json:"budget,omitempty" jsonschema_description:"Budget ID or name"`
	RepeatUntil        string `json:"repeat_until,omitempty" jsonschema_description:"Last occurrence date (YYYY-MM-DD)"`
}

// CreateResult is the result of creating a recurrence.
type CreateResult struct {
	Recurrence Detail `json:"recurrence"`
}

// UpdateArgs contains parameters for a partial recurrence update. At least
// one optional field must be supplied.
type UpdateArgs struct {
	RecurrenceID string `json:"recurrence_id" jsonschema:"required" jsonschema_description:"Numeric recurrence ID"`
	Title        string `json:"title,omitempty" jsonschema_description:"New title"`
	Description  string `json:"description,omitempty" jsonschema_description:"New description"`
	FirstDate    string `json:"first_date,omitempty" jsonschema_description:"New first occurrence date (YYYY-MM-DD)"`
	RepeatUntil  string `json:"repeat_until,omitempty" jsonschema_description:"New last occurrence date (YYYY-MM-DD)"`
	Active       *bool  `json:"active,omitempty" jsonschema_description:"Activate or deactivate the recurrence"`
}

// UpdateResult is the result of updating a recurrence.
type UpdateResult struct {
	Recurrence Detail `json:"recurrence"`
}

// DeleteArgs contains parameters for deleting a recurrence.
type DeleteArgs struct {
	RecurrenceID string `json:"recurrence_id" jsonschema:"required" jsonschema_description:"Numeric recurrence ID"`
	Confirm      bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// ListTransactionsArgs contains parameters for listing the transactions a
// recurrence has created.
type ListTransactionsArgs struct {
	RecurrenceID string `json:"recurrence_id" jsonschema:"required" jsonschema_description:"Numeric recurrence ID"`
}

// ListTransactionsResult aliases the shared transaction list result.
type ListTransactionsResult = transactions.ListResult
