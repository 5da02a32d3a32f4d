package categories

import (
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// ListArgs contains parameters for listing categories.
type ListArgs struct{}

// ListResult is the result of listing categories.
type ListResult struct {
	Categories []Summary `json:"categories"`
	Count      int       `json:"count"`
	Truncated  bool      `json:"truncated,omitempty"`
	Message    string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one category.
type GetArgs struct {
	CategoryID string `json:"category_id" jsonschema:"required" jsonschema_description:"Numeric category ID"`
	StartDate  string `json:"start_date,omitempty" jsonschema_description:"Include spent/earned totals from this date (YYYY-MM-DD)"`
	EndDate    string `json:"end_date,omitempty" jsonschema_description:"Include spent/earned totals up to this date (YYYY-MM-DD)"`
}

// GetResult is the result of fetching one category.
type GetResult struct {
	Category Detail `json:"category"`
}

// CreateArgs contains parameters for creating a category.
type CreateArgs struct {
	Name  string `json:"name" jsonschema:"required" jsonschema_description:"Category name"`
	Notes string `json:"notes,omitempty" jsonschema_description:"Free-form notes"`
}

// CreateResult is the result of creating a category.
type CreateResult struct {
	Category Detail `json:"category"`
}

// UpdateArgs contains parameters for updating a category. At least one
// optional field must be supplied.
type UpdateArgs struct {
	CategoryID string `json:"category_id" jsonschema:"required" jsonschema_description:"Numeric category ID"`
	Name       string `json:"name,omitempty" jsonschema_description:"New category name"`
	Notes      string `json:"notes,omitempty" jsonschema_description:"New notes"`
}

// UpdateResult is the result of updating a category.
type UpdateResult struct {
	Category Detail `json:"category"`
}

// DeleteArgs contains parameters for deleting a category.
type DeleteArgs struct {
	CategoryID string `json:"category_id" jsonschema:"required" jsonschema_description:"Numeric category ID"`
	Confirm    bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// ListTransactionsArgs contains parameters for listing the transactions of
// one category.
type ListTransactionsArgs struct {
	CategoryID string `json:"category_id" jsonschema:"required" jsonschema_description:"Numeric category ID"`
	StartDate  string `json:"start_date,omitempty" jsonschema_description:"Start date (YYYY-MM-DD)"`
	EndDate    string `json:"end_date,omitempty" jsonschema_description:"End date (YYYY-MM-DD)"`
}

// ListTransactionsResult aliases the shared transaction list result.
type ListTransactionsResult = transactions.ListResult
