package categories

// Total is one per-currency spent or earned figure, reported when a date
// range is requested.
type Total struct {
	Sum          string `json:"sum"`
	CurrencyCode string `json:"currency_code,omitempty"`
}

// Attributes mirrors the Firefly III category record.
type Attributes struct {
	Name   string  `json:"name"`
	Notes  string  `json:"notes,omitempty"`
	Spent  []Total `json:"spent,omitempty"`
	Earned []Total `json:"earned,omitempty"`
}

// categoryRequest is the POST /categories and PUT /categories/{id} payload.
type categoryRequest struct {
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Summary is the compact category representation used in list results.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Spent string `json:"spent,omitempty"`
}

// Detail is the full category representation for get results.
type Detail struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Notes  string  `json:"notes,omitempty"`
	Spent  []Total `json:"spent,omitempty"`
	Earned []Total `json:"earned,omitempty"`
}

func detailOf(id string, a Attributes) Detail {
	return Detail{ID: id, Name: a.Name, Notes: a.Notes, Spent: a.Spent, Earned: a.Earned}
}
