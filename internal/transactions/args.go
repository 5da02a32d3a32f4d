package transactions

import "github.com/akarpova/firefly-mcp-server/internal/results"

// ListArgs contains parameters for listing transactions.
type ListArgs struct {
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"End date (YYYY-MM-DD)"`
	Type      string `json:"transaction_type,omitempty" jsonschema_description:"Filter by type: withdrawal, deposit, or transfer"`
	Limit     int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results (default 50)"`
}

// ListResult is the result of listing transactions.
type ListResult struct {
	Transactions []Row  `json:"transactions"`
	Count        int    `json:"count"`
	Truncated    bool   `json:"truncated,omitempty"`
	Message      string `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one transaction group.
type GetArgs struct {
	TransactionID string `json:"transaction_id" jsonschema:"required" jsonschema_description:"Numeric transaction ID"`
}

// GetResult is the result of fetching one transaction group.
type GetResult struct {
	Transaction Detail `json:"transaction"`
}

// CreateArgs contains parameters shared by the withdrawal, deposit, and
// transfer create tools. Account references route to ID-keyed fields when
// numeric and name-keyed fields otherwise.
type CreateArgs struct {
	Description        string `json:"description" jsonschema:"required" jsonschema_description:"Transaction description"`
	Amount             string `json:"amount" jsonschema:"required" jsonschema_description:"Transaction amount"`
	SourceAccount      string `json:"source_account,omitempty" jsonschema_description:"Source account ID or name"`
	DestinationAccount string `json:"destination_account,omitempty" jsonschema_description:"Destination account ID or name"`
	Date               string `json:"date,omitempty" jsonschema_description:"Transaction date (YYYY-MM-DD, default today)"`
	Category           string `json:"category,omitempty" jsonschema_description:"Category name"`
	Budget             string `json:"budget,omitempty" jsonschema_description:"Budget ID or name"`
	Tags               string `json:"tags,omitempty" jsonschema_description:"Comma-separated tags"`
	Notes              string `json:"notes,omitempty" jsonschema_description:"Free-form notes"`
}

// CreateResult is the result of creating a transaction.
type CreateResult struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code,omitempty"`
	Date         string `json:"date"`
}

// UpdateArgs contains parameters for a partial transaction update. At least
// one optional field must be supplied.
type UpdateArgs struct {
	TransactionID string `json:"transaction_id" jsonschema:"required" jsonschema_description:"Numeric transaction ID"`
	Description   string `json:"description,omitempty" jsonschema_description:"New description"`
	Amount        string `json:"amount,omitempty" jsonschema_description:"New amount"`
	Date          string `json:"date,omitempty" jsonschema_description:"New date (YYYY-MM-DD)"`
	Category      string `json:"category,omitempty" jsonschema_description:"New category name"`
	Budget        string `json:"budget,omitempty" jsonschema_description:"New budget ID or name"`
	Tags          string `json:"tags,omitempty" jsonschema_description:"Comma-separated tags (replaces existing)"`
	Notes         string `json:"notes,omitempty" jsonschema_description:"New notes"`
}

// UpdateResult is the result of updating a transaction.
type UpdateResult struct {
	Transaction Detail `json:"transaction"`
}

// DeleteArgs contains parameters for deleting a transaction group.
type DeleteArgs struct {
	TransactionID string `json:"transaction_id" jsonschema:"required" jsonschema_description:"Numeric transaction ID"`
	Confirm       bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteJournalArgs contains parameters for deleting a single journal
// (split) from a group.
type DeleteJournalArgs struct {
	JournalID string `json:"journal_id" jsonschema:"required" jsonschema_description:"Numeric transaction journal ID"`
	Confirm   bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// GetByJournalArgs contains parameters for resolving a journal to its group.
type GetByJournalArgs struct {
	JournalID string `json:"journal_id" jsonschema:"required" jsonschema_description:"Numeric transaction journal ID"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion
