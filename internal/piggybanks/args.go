package piggybanks

import "github.com/akarpova/firefly-mcp-server/internal/results"

// ListArgs contains parameters for listing piggy banks.
type ListArgs struct{}

// ListResult is the result of listing piggy banks.
type ListResult struct {
	PiggyBanks []Summary `json:"piggy_banks"`
	Count      int       `json:"count"`
	Truncated  bool      `json:"truncated,omitempty"`
	Message    string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one piggy bank.
type GetArgs struct {
	PiggyBankID string `json:"piggy_bank_id" jsonschema:"required" jsonschema_description:"Numeric piggy bank ID"`
}

// GetResult is the result of fetching one piggy bank.
type GetResult struct {
	PiggyBank Detail `json:"piggy_bank"`
}

// CreateArgs contains parameters for creating a piggy bank.
type CreateArgs struct {
	Name          string `json:"name" jsonschema:"required" jsonschema_description:"Piggy bank name"`
	AccountID     string `json:"account_id" jsonschema:"required" jsonschema_description:"Asset account the piggy bank saves into"`
	TargetAmount  string `json:"target_amount,omitempty" jsonschema_description:"Savings target amount"`
	CurrentAmount string `json:"current_amount,omitempty" jsonschema_description:"Amount already saved"`
	StartDate     string `json:"start_date,omitempty" jsonschema_description:"Start date (YYYY-MM-DD)"`
	TargetDate    string `json:"target_date,omitempty" jsonschema_description:"Target date (YYYY-MM-DD)"`
	Notes         string `json:"notes,omitempty" jsonschema_description:"Free-form notes"`
}

// CreateResult is the result of creating a piggy bank.
type CreateResult struct {
	PiggyBank Detail `json:"piggy_bank"`
}

// UpdateArgs contains parameters for a partial piggy bank update. At least
// one optional field must be supplied.
type UpdateArgs struct {
	PiggyBankID   string `json:"piggy_bank_id" jsonschema:"required" jsonschema_description:"Numeric piggy bank ID"`
	Name          string `json:"name,omitempty" jsonschema_description:"New name"`
	TargetAmount  string `json:"target_amount,omitempty" jsonschema_description:"New target amount"`
	CurrentAmount string `json:"current_amount,omitempty" jsonschema_description:"New saved amount"`
	TargetDate    string `json:"target_date,omitempty" jsonschema_description:"New target date (YYYY-MM-DD)"`
	Notes         string `json:"notes,omitempty" jsonschema_description:"New notes"`
}

// UpdateResult is the result of updating a piggy bank.
type UpdateResult struct {
	PiggyBank Detail `json:"piggy_bank"`
}

// DeleteArgs contains parameters for deleting a piggy bank.
type DeleteArgs struct {
	PiggyBankID string `json:"piggy_bank_id" jsonschema:"required" jsonschema_description:"Numeric piggy bank ID"`
	Confirm     bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// ListEventsArgs contains parameters for listing piggy bank events.
type ListEventsArgs struct {
	PiggyBankID string `json:"piggy_bank_id" jsonschema:"required" jsonschema_description:"Numeric piggy bank ID"`
}

// ListEventsResult is the result of listing piggy bank events.
type ListEventsResult struct {
	Events    []Event `json:"events"`
	Count     int     `json:"count"`
	Truncated bool    `json:"truncated,omitempty"`
	Message   string  `json:"message,omitempty"`
}
