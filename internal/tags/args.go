package tags

import (
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// ListArgs contains parameters for listing tags.
type ListArgs struct{}

// ListResult is the result of listing tags.
type ListResult struct {
	Tags      []Summary `json:"tags"`
	Count     int       `json:"count"`
	Truncated bool      `json:"truncated,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one tag. The backend accepts
// either the numeric ID or the tag text.
type GetArgs struct {
	Tag string `json:"tag" jsonschema:"required" jsonschema_description:"Tag text or numeric tag ID"`
}

// GetResult is the result of fetching one tag.
type GetResult struct {
	Tag Detail `json:"tag"`
}

// CreateArgs contains parameters for creating a tag.
type CreateArgs struct {
	Tag         string `json:"tag" jsonschema:"required" jsonschema_description:"Tag text"`
	Date        string `json:"date,omitempty" jsonschema_description:"Date the tag applies to (YYYY-MM-DD)"`
	Description string `json:"description,omitempty" jsonschema_description:"Tag description"`
}

// CreateResult is the result of creating a tag.
type CreateResult struct {
	Tag Detail `json:"tag"`
}

// UpdateArgs contains parameters for updating a tag. At least one optional
// field must be supplied.
type UpdateArgs struct {
	Tag         string `json:"tag" jsonschema:"required" jsonschema_description:"Tag text or numeric tag ID"`
	NewTag      string `json:"new_tag,omitempty" jsonschema_description:"New tag text"`
	Date        string `json:"date,omitempty" jsonschema_description:"New date (YYYY-MM-DD)"`
	Description string `json:"description,omitempty" jsonschema_description:"New description"`
}

// UpdateResult is the result of updating a tag.
type UpdateResult struct {
	Tag Detail `json:"tag"`
}

// DeleteArgs contains parameters for deleting a tag.
type DeleteArgs struct {
	Tag     string `json:"tag" jsonschema:"required" jsonschema_description:"Tag text or numeric tag ID"`
	Confirm bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// ListTransactionsArgs contains parameters for listing the transactions
// carrying one tag.
type ListTransactionsArgs struct {
	Tag       string `json:"tag" jsonschema:"required" jsonschema_description:"Tag text or numeric tag ID"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"End date (YYYY-MM-DD)"`
}

// ListTransactionsResult aliases the shared transaction list result.
type ListTransactionsResult = transactions.ListResult
