package currencies

import "github.com/akarpova/firefly-mcp-server/internal/results"

// ListArgs contains parameters for listing currencies.
type ListArgs struct{}

// ListResult is the result of listing currencies.
type ListResult struct {
	Currencies []Summary `json:"currencies"`
	Count      int       `json:"count"`
	Message    string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one currency.
type GetArgs struct {
	Code string `json:"code" jsonschema:"required" jsonschema_description:"ISO currency code, e.g. EUR"`
}

// GetResult is the result of fetching one currency.
type GetResult struct {
	Currency Detail `json:"currency"`
}

// CreateArgs contains parameters for creating a custom currency.
type CreateArgs struct {
	Code          string `json:"code" jsonschema:"required" jsonschema_description:"Currency code, e.g. BTC"`
	Name          string `json:"name" jsonschema:"required" jsonschema_description:"Currency name"`
	Symbol        string `json:"symbol" jsonschema:"required" jsonschema_description:"Currency symbol"`
	DecimalPlaces int    `json:"decimal_places,omitempty" jsonschema_description:"Number of decimal places (default 2)"`
}

// CreateResult is the result of creating a currency.
type CreateResult struct {
	Currency Detail `json:"currency"`
}

// UpdateArgs contains parameters for updating a currency. At least one
// optional field must be supplied.
type UpdateArgs struct {
	Code   string `json:"code" jsonschema:"required" jsonschema_description:"ISO currency code of the currency to update"`
	Name   string `json:"name,omitempty" jsonschema_description:"New name"`
	Symbol string `json:"symbol,omitempty" jsonschema_description:"New symbol"`
}

// UpdateResult is the result of updating a currency.
type UpdateResult struct {
	Currency Detail `json:"currency"`
}

// DeleteArgs contains parameters for deleting a currency.
type DeleteArgs struct {
	Code    string `json:"code" jsonschema:"required" jsonschema_description:"ISO currency code"`
	Confirm bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// CodeArgs identifies a currency for enable, disable, and default tools.
type CodeArgs struct {
	Code string `json:"code" jsonschema:"required" jsonschema_description:"ISO currency code"`
}

// ToggleResult reports the new state of a currency.
type ToggleResult struct {
	Currency Detail `json:"currency"`
	Message  string `json:"message"`
}

// GetDefaultArgs contains parameters for fetching the default currency.
type GetDefaultArgs struct{}

// ListRatesArgs contains parameters for listing exchange rates.
type ListRatesArgs struct{}

// ListRatesResult is the result of listing exchange rates.
type ListRatesResult struct {
	Rates   []Rate `json:"rates"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// GetRateArgs contains parameters for fetching the rates of one currency
// pair.
type GetRateArgs struct {
	From string `json:"from" jsonschema:"required" jsonschema_description:"Source currency code"`
	To   string `json:"to" jsonschema:"required" jsonschema_description:"Target currency code"`
}

// GetRateResult is the result of fetching the rates of one currency pair.
type GetRateResult struct {
	Rates   []Rate `json:"rates"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// CreateRateArgs contains parameters for creating an exchange rate.
type CreateRateArgs struct {
	From string `json:"from" jsonschema:"required" jsonschema_description:"Source currency code"`
	To   string `json:"to" jsonschema:"required" jsonschema_description:"Target currency code"`
	Rate string `json:"rate" jsonschema:"required" jsonschema_description:"Exchange rate value"`
	Date string `json:"date,omitempty" jsonschema_description:"Rate date (YYYY-MM-DD, default today)"`
}

// CreateRateResult is the result of creating an exchange rate.
type CreateRateResult struct {
	Rate Rate `json:"rate"`
}

// UpdateRateArgs contains parameters for updating an exchange rate.
type UpdateRateArgs struct {
	RateID string `json:"rate_id" jsonschema:"required" jsonschema_description:"Numeric exchange rate ID"`
	Rate   string `json:"rate" jsonschema:"required" jsonschema_description:"New exchange rate value"`
}

// UpdateRateResult is the result of updating an exchange rate.
type UpdateRateResult struct {
	Rate Rate `json:"rate"`
}

// DeleteRateArgs contains parameters for deleting an exchange rate.
type DeleteRateArgs struct {
	RateID  string `json:"rate_id" jsonschema:"required" jsonschema_description:"Numeric exchange rate ID"`
	Confirm bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}
