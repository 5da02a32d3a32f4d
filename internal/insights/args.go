package insights

// PeriodArgs is the date range shared by the summary tools. An unset range
// defaults to the current calendar month.
type PeriodArgs struct {
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Start date (YYYY-MM-DD, default first of this month)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"End date (YYYY-MM-DD, default last of this month)"`
}

// SummaryArgs extends the period with a caller-selected grouping key.
type SummaryArgs struct {
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Start date (YYYY-MM-DD, default first of this month)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"End date (YYYY-MM-DD, default last of this month)"`
	GroupBy   string `json:"group_by,omitempty" jsonschema_description:"Grouping key: category, budget, tag, or account (default category)"`
}

// SummaryResult is the grouped aggregate produced by the spending and
// income summaries.
type SummaryResult struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	GroupedBy string  `json:"grouped_by"`
	Groups    []Group `json:"groups"`
	Total     float64 `json:"total"`
	Message   string  `json:"message,omitempty"`
}

// NetFlowResult reports income against expenses over a period.
type NetFlowResult struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	Net       float64 `json:"net"`
}

// InsightEntry is one row of a backend insight report.
type InsightEntry struct {
	ID              string  `json:"id,omitempty"`
	Name            string  `json:"name,omitempty"`
	Difference      string  `json:"difference"`
	DifferenceFloat float64 `json:"difference_float"`
	CurrencyCode    string  `json:"currency_code,omitempty"`
}

// InsightResult is the result of a backend insight report.
type InsightResult struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Entries   []InsightEntry `json:"entries"`
	Count     int            `json:"count"`
	Message   string         `json:"message,omitempty"`
}

// BasicSummaryEntry is one figure of the backend's basic summary.
type BasicSummaryEntry struct {
	Key           string  `json:"key"`
	Title         string  `json:"title"`
	MonetaryValue float64 `json:"monetary_value"`
	CurrencyCode  string  `json:"currency_code,omitempty"`
	ValueParsed   string  `json:"value_parsed,omitempty"`
}

// BasicSummaryResult is the result of the basic summary.
type BasicSummaryResult struct {
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Figures   []BasicSummaryEntry `json:"figures"`
}
