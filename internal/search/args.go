package search

import "github.com/akarpova/firefly-mcp-server/internal/transactions"

// SearchAllArgs contains parameters for the transaction search.
type SearchAllArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"Search query, supports Firefly III search operators"`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results (default 50)"`
}

// SearchAllResult aliases the shared transaction list result.
type SearchAllResult = transactions.ListResult

// SearchAccountsArgs contains parameters for the account search.
type SearchAccountsArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"Search query matched against account names and numbers"`
	Type  string `json:"account_type,omitempty" jsonschema_description:"Restrict to one account type: asset, expense, revenue, or liability"`
}

// AccountMatch is one account search hit.
type AccountMatch struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	CurrencyCode string `json:"currency_code,omitempty"`
	Active       bool   `json:"active"`
}

// SearchAccountsResult is the result of the account search.
type SearchAccountsResult struct {
	Accounts []AccountMatch `json:"accounts"`
	Count    int            `json:"count"`
	Message  string         `json:"message,omitempty"`
}

// AutocompleteArgs contains parameters shared by the autocomplete tools.
type AutocompleteArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"Partial text to complete"`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum number of suggestions (default 50)"`
}

// Suggestion is one autocomplete hit. The name carries the display text; for
// currencies the code field is populated as well.
type Suggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// AutocompleteResult is the result of an autocomplete lookup.
type AutocompleteResult struct {
	Suggestions []Suggestion `json:"suggestions"`
	Count       int          `json:"count"`
	Message     string       `json:"message,omitempty"`
}
