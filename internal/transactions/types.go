package transactions

// Split is one leg of a Firefly III transaction group. Most groups carry a
// single split.
type Split struct {
	TransactionJournalID string   `json:"transaction_journal_id,omitempty"`
	Type                 string   `json:"type"`
	Date                 string   `json:"date"`
	Amount               string   `json:"amount"`
	Description          string   `json:"description"`
	CurrencyCode         string   `json:"currency_code,omitempty"`
	SourceID             string   `json:"source_id,omitempty"`
	SourceName           string   `json:"source_name,omitempty"`
	DestinationID        string   `json:"destination_id,omitempty"`
	DestinationName      string   `json:"destination_name,omitempty"`
	CategoryName         string   `json:"category_name,omitempty"`
	BudgetID             string   `json:"budget_id,omitempty"`
	BudgetName           string   `json:"budget_name,omitempty"`
	BillID               string   `json:"bill_id,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
	Notes                string   `json:"notes,omitempty"`
}

// Attributes mirrors the Firefly III transaction group record.
type Attributes struct {
	GroupTitle   string  `json:"group_title,omitempty"`
	Transactions []Split `json:"transactions"`
}

// storeRequest is the POST /transactions payload. Duplicate-hash detection
// is disabled and rules are applied, matching how transactions are entered
// interactively.
type storeRequest struct {
	ErrorIfDuplicateHash bool    `json:"error_if_duplicate_hash"`
	ApplyRules           bool    `json:"apply_rules"`
	Transactions         []Split `json:"transactions"`
}

// updateRequest is the PUT /transactions/{id} payload.
type updateRequest struct {
	Transactions []Split `json:"transactions"`
}

// Row is the compact transaction representation used in list results.
type Row struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code,omitempty"`
	SourceName   string `json:"source_name,omitempty"`
	DestName     string `json:"destination_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	BudgetName   string `json:"budget_name,omitempty"`
}

// Detail is the full transaction representation for get results.
type Detail struct {
	ID         string  `json:"id"`
	GroupTitle string  `json:"group_title,omitempty"`
	Splits     []Split `json:"splits"`
}
