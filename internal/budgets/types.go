package budgets

// Spent is one per-currency spent total reported on a budget record.
type Spent struct {
	Sum          string `json:"sum"`
	CurrencyCode string `json:"currency_code,omitempty"`
}

// Attributes mirrors the Firefly III budget record.
type Attributes struct {
	Name             string  `json:"name"`
	Active           bool    `json:"active"`
	Notes            string  `json:"notes,omitempty"`
	Order            int     `json:"order,omitempty"`
	AutoBudgetType   string  `json:"auto_budget_type,omitempty"`
	AutoBudgetAmount string  `json:"auto_budget_amount,omitempty"`
	AutoBudgetPeriod string  `json:"auto_budget_period,omitempty"`
	CurrencyCode     string  `json:"currency_code,omitempty"`
	Spent            []Spent `json:"spent,omitempty"`
}

// budgetRequest is the POST /budgets and PUT /budgets/{id} payload.
type budgetRequest struct {
	Name             string `json:"name,omitempty"`
	Notes            string `json:"notes,omitempty"`
	Active           *bool  `json:"active,omitempty"`
	AutoBudgetType   string `json:"auto_budget_type,omitempty"`
	AutoBudgetAmount string `json:"auto_budget_amount,omitempty"`
	AutoBudgetPeriod string `json:"auto_budget_period,omitempty"`
}

// LimitAttributes mirrors the Firefly III budget limit record.
type LimitAttributes struct {
	BudgetID     string `json:"budget_id,omitempty"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code,omitempty"`
	Spent        string `json:"spent,omitempty"`
}

// limitRequest is the POST and PUT payload for budget limits.
type limitRequest struct {
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
	Amount string `json:"amount,omitempty"`
}

// AvailableAttributes mirrors the Firefly III available budget record.
type AvailableAttributes struct {
	CurrencyCode string `json:"currency_code,omitempty"`
	Amount       string `json:"amount"`
	Start        string `json:"start"`
	End          string `json:"end"`
}

// availableRequest is the POST and PUT payload for available budgets.
type availableRequest struct {
	CurrencyCode string `json:"currency_code,omitempty"`
	Amount       string `json:"amount,omitempty"`
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
}

// Summary is the compact budget representation used in list results.
type Summary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
	Spent  string `json:"spent,omitempty"`
}

// Detail is the full budget representation for get results.
type Detail struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Active           bool    `json:"active"`
	Notes            string  `json:"notes,omitempty"`
	AutoBudgetType   string  `json:"auto_budget_type,omitempty"`
	AutoBudgetAmount string  `json:"auto_budget_amount,omitempty"`
	AutoBudgetPeriod string  `json:"auto_budget_period,omitempty"`
	CurrencyCode     string  `json:"currency_code,omitempty"`
	Spent            []Spent `json:"spent,omitempty"`
}

// Limit is the budget limit representation in results.
type Limit struct {
	ID           string `json:"id"`
	BudgetID     string `json:"budget_id,omitempty"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code,omitempty"`
	Spent        string `json:"spent,omitempty"`
}

// Available is the available budget representation in results.
type Available struct {
	ID           string `json:"id"`
	CurrencyCode string `json:"currency_code,omitempty"`
	Amount       string `json:"amount"`
	Start        string `json:"start"`
	End          string `json:"end"`
}

func detailOf(id string, a Attributes) Detail {
	return Detail{
		ID:               id,
		Name:             a.Name,
		Active:           a.Active,
		Notes:            a.Notes,
		AutoBudgetType:   a.AutoBudgetType,
		AutoBudgetAmount: a.AutoBudgetAmount,
		AutoBudgetPeriod: a.AutoBudgetPeriod,
		CurrencyCode:     a.CurrencyCode,
		Spent:            a.Spent,
	}
}

func limitOf(id string, a LimitAttributes) Limit {
	return Limit{
		ID:           id,
		BudgetID:     a.BudgetID,
		Start:        a.Start,
		End:          a.End,
		Amount:       a.Amount,
		CurrencyCode: a.CurrencyCode,
		Spent:        a.Spent,
	}
}

func availableOf(id string, a AvailableAttributes) Available {
	return Available{
		ID:           id,
		CurrencyCode: a.CurrencyCode,
		Amount:       a.Amount,
		Start:        a.Start,
		End:          a.End,
	}
}
