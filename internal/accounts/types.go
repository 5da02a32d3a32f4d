package accounts

// Attributes mirrors the Firefly III account record.
type Attributes struct {
	Name               string `json:"name"`
	Type               string `json:"type"`
	AccountRole        string `json:"account_role,omitempty"`
	CurrencyCode       string `json:"currency_code,omitempty"`
	CurrentBalance     string `json:"current_balance,omitempty"`
	CurrentBalanceDate string `json:"current_balance_date,omitempty"`
	OpeningBalance     string `json:"opening_balance,omitempty"`
	OpeningBalanceDate string `json:"opening_balance_date,omitempty"`
	IBAN               string `json:"iban,omitempty"`
	Notes              string `json:"notes,omitempty"`
	LiabilityType      string `json:"liability_type,omitempty"`
	LiabilityDirection string `json:"liability_direction,omitempty"`
	Active             bool   `json:"active"`
}

// createRequest is the POST /accounts payload. Optional fields are merged
// only when supplied.
type createRequest struct {
	Name               string `json:"name"`
	Type               string `json:"type"`
	CurrencyCode       string `json:"currency_code,omitempty"`
	OpeningBalance     string `json:"opening_balance,omitempty"`
	OpeningBalanceDate string `json:"opening_balance_date,omitempty"`
	Notes              string `json:"notes,omitempty"`
	LiabilityType      string `json:"liability_type,omitempty"`
	LiabilityDirection string `json:"liability_direction,omitempty"`
}

// updateRequest is the PUT /accounts/{id} payload; only supplied fields are
// sent (partial update).
type updateRequest struct {
	Name   string `json:"name,omitempty"`
	Notes  string `json:"notes,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// Summary is the compact account representation used in list results.
type Summary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Balance      string `json:"balance,omitempty"`
	CurrencyCode string `json:"currency_code,omitempty"`
	Active       bool   `json:"active"`
}

// Detail is the full account representation for get results.
type Detail struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Type               string `json:"type"`
	AccountRole        string `json:"account_role,omitempty"`
	CurrencyCode       string `json:"currency_code,omitempty"`
	CurrentBalance     string `json:"current_balance,omitempty"`
	OpeningBalance     string `json:"opening_balance,omitempty"`
	IBAN               string `json:"iban,omitempty"`
	Notes              string `json:"notes,omitempty"`
	LiabilityType      string `json:"liability_type,omitempty"`
	LiabilityDirection string `json:"liability_direction,omitempty"`
	Active             bool   `json:"active"`
}

func detailOf(id string, a Attributes) Detail {
	return Detail{
		ID:                 id,
		Name:               a.Name,
		Type:               a.Type,
		AccountRole:        a.AccountRole,
		CurrencyCode:       a.CurrencyCode,
		CurrentBalance:     a.CurrentBalance,
		OpeningBalance:     a.OpeningBalance,
		IBAN:               a.IBAN,
		Notes:              a.Notes,
		LiabilityType:      a.LiabilityType,
		LiabilityDirection: a.LiabilityDirection,
		Active:             a.Active,
	}
}
