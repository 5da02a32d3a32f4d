package recurrences

// Repetition is one recurrence repetition pattern.
type Repetition struct {
	Type    string `json:"type"`
	Moment  string `json:"moment,omitempty"`
	Skip    int    `json:"skip,omitempty"`
	Weekend int    `json:"weekend,omitempty"`
}

// TemplateTransaction is the transaction a recurrence creates on each
// occurrence.
type TemplateTransaction struct {
	Description     string `json:"description"`
	Amount          string `json:"amount"`
	CurrencyCode    string `json:"currency_code,omitempty"`
	SourceID        string `json:"source_id,omitempty"`
	SourceName      string `json:"source_name,omitempty"`
	DestinationID   string `json:"destination_id,omitempty"`
	DestinationName string `json:"destination_name,omitempty"`
	CategoryName    string `json:"category_name,omitempty"`
	BudgetID        string `json:"budget_id,omitempty"`
	BudgetName      string `json:"budget_name,omitempty"`
}

// Attributes mirrors the Firefly III recurrence record.
type Attributes struct {
	Type            string                `json:"type"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	FirstDate       string                `json:"first_date,omitempty"`
	LatestDate      string                `json:"latest_date,omitempty"`
	RepeatUntil     string                `json:"repeat_until,omitempty"`
	NrOfRepetitions int                   `json:"nr_of_repetitions,omitempty"`
	ApplyRules      bool                  `json:"apply_rules,omitempty"`
	Active          bool                  `json:"active"`
	Repetitions     []Repetition          `json:"repetitions,omitempty"`
	Transactions    []TemplateTransaction `json:"transactions,omitempty"`
}

// createRequest is the POST /recurrences payload.
type createRequest struct {
	Type         string                `json:"type"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	FirstDate    string                `json:"first_date"`
	RepeatUntil  string                `json:"repeat_until,omitempty"`
	ApplyRules   bool                  `json:"apply_rules"`
	Active       bool                  `json:"active"`
	Repetitions  []Repetition          `json:"repetitions"`
	Transactions []TemplateTransaction `json:"transactions"`
}

// updateRequest is the PUT /recurrences/{id} payload; only supplied fields
// are sent.
type updateRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	FirstDate   string `json:"first_date,omitempty"`
	RepeatUntil string `json:"repeat_until,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

// Summary is the compact recurrence representation used in list results.
type Summary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	FirstDate string `json:"first_date,omitempty"`
	Active    bool   `json:"active"`
}

// Detail is the full recurrence representation for get results.
type Detail struct {
	ID              string                `json:"id"`
	Type            string                `json:"type"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	FirstDate       string                `json:"first_date,omitempty"`
	LatestDate      string                `json:"latest_date,omitempty"`
	RepeatUntil     string                `json:"repeat_until,omitempty"`
	NrOfRepetitions int                   `json:"nr_of_repetitions,omitempty"`
	Active          bool                  `json:"active"`
	Repetitions     []Repetition          `json:"repetitions,omitempty"`
	Transactions    []TemplateTransaction `json:"transactions,omitempty"`
}

func detailOf(id string, a Attributes) Detail {
	return Detail{
		ID:              id,
		Type:            a.Type,
		Title:           a.Title,
		Description:     a.Description,
		FirstDate:       a.FirstDate,
		LatestDate:      a.LatestDate,
		RepeatUntil:     a.RepeatUntil,
		NrOfRepetitions: a.NrOfRepetitions,
		Active:          a.Active,
		Repetitions:     a.Repetitions,
		Transactions:    a.Transactions,
	}
}
