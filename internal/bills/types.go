package bills

// Attributes mirrors the Firefly III bill record.
type Attributes struct {
	Name              string   `json:"name"`
	AmountMin         string   `json:"amount_min,omitempty"`
	AmountMax         string   `json:"amount_max,omitempty"`
	Date              string   `json:"date,omitempty"`
	RepeatFreq        string   `json:"repeat_freq,omitempty"`
	Skip              int      `json:"skip,omitempty"`
	CurrencyCode      string   `json:"currency_code,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	NextExpectedMatch string   `json:"next_expected_match,omitempty"`
	PayDates          []string `json:"pay_dates,omitempty"`
	Active            bool     `json:"active"`
}

// billRequest is the POST /bills and PUT /bills/{id} payload.
type billRequest struct {
	Name       string `json:"name,omitempty"`
	AmountMin  string `json:"amount_min,omitempty"`
	AmountMax  string `json:"amount_max,omitempty"`
	Date       string `json:"date,omitempty"`
	RepeatFreq string `json:"repeat_freq,omitempty"`
	Skip       *int   `json:"skip,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Active     *bool  `json:"active,omitempty"`
}

// Summary is the compact bill representation used in list results.
type Summary struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	AmountMin         string `json:"amount_min,omitempty"`
	AmountMax         string `json:"amount_max,omitempty"`
	RepeatFreq        string `json:"repeat_freq,omitempty"`
	NextExpectedMatch string `json:"next_expected_match,omitempty"`
	Active            bool   `json:"active"`
}

// Detail is the full bill representation for get results.
type Detail struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	AmountMin         string   `json:"amount_min,omitempty"`
	AmountMax         string   `json:"amount_max,omitempty"`
	Date              string   `json:"date,omitempty"`
	RepeatFreq        string   `json:"repeat_freq,omitempty"`
	Skip              int      `json:"skip,omitempty"`
	CurrencyCode      string   `json:"currency_code,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	NextExpectedMatch string   `json:"next_expected_match,omitempty"`
	PayDates          []string `json:"pay_dates,omitempty"`
	Active            bool     `json:"active"`
}

func detailOf(id string, a Attributes) Detail {
	return Detail{
		ID:                id,
		Name:              a.Name,
		AmountMin:         a.AmountMin,
		AmountMax:         a.AmountMax,
		Date:              a.Date,
		RepeatFreq:        a.RepeatFreq,
		Skip:              a.Skip,
		CurrencyCode:      a.CurrencyCode,
		Notes:             a.Notes,
		NextExpectedMatch: a.NextExpectedMatch,
		PayDates:          a.PayDates,
		Active:            a.Active,
	}
}
