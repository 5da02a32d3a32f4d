package charts

// OverviewArgs contains the period the overview charts cover. Unlike the
// summary tools, the chart endpoints demand an explicit range.
type OverviewArgs struct {
	StartDate string `json:"start_date" jsonschema:"required" jsonschema_description:"Chart start (YYYY-MM-DD)"`
	EndDate   string `json:"end_date" jsonschema:"required" jsonschema_description:"Chart end (YYYY-MM-DD)"`
}

// BalanceArgs adds an optional account scope to the period.
type BalanceArgs struct {
	StartDate string `json:"start_date" jsonschema:"required" jsonschema_description:"Chart start (YYYY-MM-DD)"`
	EndDate   string `json:"end_date" jsonschema:"required" jsonschema_description:"Chart end (YYYY-MM-DD)"`
	Accounts  string `json:"accounts,omitempty" jsonschema_description:"Comma-separated asset account IDs to chart"`
}

// Series is one chart line: a label plus date-keyed values.
type Series struct {
	Label        string             `json:"label"`
	CurrencyCode string             `json:"currency_code,omitempty"`
	Type         string             `json:"type,omitempty"`
	Entries      map[string]float64 `json:"entries"`
}

// ChartResult carries the series of one chart.
type ChartResult struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Series    []Series `json:"series"`
	Count     int      `json:"count"`
	Message   string   `json:"message,omitempty"`
}
