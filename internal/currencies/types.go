package currencies

// Attributes mirrors the Firefly III currency record.
type Attributes struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol,omitempty"`
	DecimalPlaces int    `json:"decimal_places,omitempty"`
	Enabled       bool   `json:"enabled"`
	Default       bool   `json:"default"`
}

// currencyRequest is the POST /currencies and PUT /currencies/{code} payload.
type currencyRequest struct {
	Code          string `json:"code,omitempty"`
	Name          string `json:"name,omitempty"`
	Symbol        string `json:"symbol,omitempty"`
	DecimalPlaces *int   `json:"decimal_places,omitempty"`
	Enabled       *bool  `json:"enabled,omitempty"`
}

// RateAttributes mirrors one exchange rate record.
type RateAttributes struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	Rate string `json:"rate"`
	Date string `json:"date,omitempty"`
}

// rateRequest is the POST /exchange-rates and PUT /exchange-rates/{id}
// payload.
type rateRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	Rate string `json:"rate,omitempty"`
	Date string `json:"date,omitempty"`
}

// Summary is the compact currency representation used in list results.
type Summary struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol,omitempty"`
	Enabled bool   `json:"enabled"`
	Default bool   `json:"default"`
}

// Detail is the full currency representation for get results.
type Detail struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol,omitempty"`
	DecimalPlaces int    `json:"decimal_places,omitempty"`
	Enabled       bool   `json:"enabled"`
	Default       bool   `json:"default"`
}

// Rate is one exchange rate in results.
type Rate struct {
	ID   string `json:"id"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	Rate string `json:"rate"`
	Date string `json:"date,omitempty"`
}

func detailOf(id string, a Attributes) Detail {
	return Detail{
		ID:            id,
		Code:          a.Code,
		Name:          a.Name,
		Symbol:        a.Symbol,
		DecimalPlaces: a.DecimalPlaces,
		Enabled:       a.Enabled,
		Default:       a.Default,
	}
}

func rateOf(id string, a RateAttributes) Rate {
	return Rate{ID: id, From: a.From, To: a.To, Rate: a.Rate, Date: a.Date}
}
