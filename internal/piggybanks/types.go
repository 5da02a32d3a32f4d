package piggybanks

// Attributes mirrors the Firefly III piggy bank record.
type Attributes struct {
	Name          string  `json:"name"`
	AccountID     string  `json:"account_id,omitempty"`
	AccountName   string  `json:"account_name,omitempty"`
	CurrencyCode  string  `json:"currency_code,omitempty"`
	TargetAmount  string  `json:"target_amount,omitempty"`
	CurrentAmount string  `json:"current_amount,omitempty"`
	Percentage    float64 `json:"percentage,omitempty"`
	StartDate     string  `json:"start_date,omitempty"`
	TargetDate    string  `json:"target_date,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	Active        bool    `json:"active"`
}

// createRequest is the POST /piggy-banks payload.
type createRequest struct {
	Name          string `json:"name"`
	AccountID     string `json:"account_id"`
	TargetAmount  string `json:"target_amount,omitempty"`
	CurrentAmount string `json:"current_amount,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	TargetDate    string `json:"target_date,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// updateRequest is the PUT /piggy-banks/{id} payload; only supplied fields
// are sent.
type updateRequest struct {
	Name          string `json:"name,omitempty"`
	TargetAmount  string `json:"target_amount,omitempty"`
	CurrentAmount string `json:"current_amount,omitempty"`
	TargetDate    string `json:"target_date,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// EventAttributes mirrors one saving or spending event on a piggy bank.
type EventAttributes struct {
	CreatedAt          string `json:"created_at,omitempty"`
	Amount             string `json:"amount"`
	CurrencyCode       string `json:"currency_code,omitempty"`
	TransactionGroupID string `json:"transaction_group_id,omitempty"`
}

// Summary is the compact piggy bank representation used in list results.
type Summary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AccountName   string  `json:"account_name,omitempty"`
	TargetAmount  string  `json:"target_amount,omitempty"`
	CurrentAmount string  `json:"current_amount,omitempty"`
	Percentage    float64 `json:"percentage,omitempty"`
	TargetDate    string  `json:"target_date,omitempty"`
}

// Detail is the full piggy bank representation for get results.
type Detail struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AccountID     string  `json:"account_id,omitempty"`
	AccountName   string  `json:"account_name,omitempty"`
	CurrencyCode  string  `json:"currency_code,omitempty"`
	TargetAmount  string  `json:"target_amount,omitempty"`
	CurrentAmount string  `json:"current_amount,omitempty"`
	Percentage    float64 `json:"percentage,omitempty"`
	StartDate     string  `json:"start_date,omitempty"`
	TargetDate    string  `json:"target_date,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	Active        bool    `json:"active"`
}

// Event is one saving or spending event in list results.
type Event struct {
	ID                 string `json:"id"`
	Date               string `json:"date,omitempty"`
	Amount             string `json:"amount"`
	CurrencyCode       string `json:"currency_code,omitempty"`
	TransactionGroupID string `json:"transaction_group_id,omitempty"`
}

func detailOf(id string, a Attributes) Detail {
	return Detail{
		ID:            id,
		Name:          a.Name,
		AccountID:     a.AccountID,
		AccountName:   a.AccountName,
		CurrencyCode:  a.CurrencyCode,
		TargetAmount:  a.TargetAmount,
		CurrentAmount: a.CurrentAmount,
		Percentage:    a.Percentage,
		StartDate:     a.StartDate,
		TargetDate:    a.TargetDate,
		Notes:         a.Notes,
		Active:        a.Active,
	}
}
