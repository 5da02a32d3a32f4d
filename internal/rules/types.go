package rules

// GroupAttributes mirrors the Firefly III rule group record.
type GroupAttributes struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order,omitempty"`
	Active      bool   `json:"active"`
}

// groupRequest is the POST /rule-groups and PUT /rule-groups/{id} payload.
type groupRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

// Trigger is one rule trigger clause.
type Trigger struct {
	Type           string `json:"type"`
	Value          string `json:"value"`
	Active         bool   `json:"active"`
	StopProcessing bool   `json:"stop_processing,omitempty"`
}

// Action is one rule action clause.
type Action struct {
	Type           string `json:"type"`
	Value          string `json:"value,omitempty"`
	Active         bool   `json:"active"`
	StopProcessing bool   `json:"stop_processing,omitempty"`
}

// Attributes mirrors the Firefly III rule record.
type Attributes struct {
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	RuleGroupID    string    `json:"rule_group_id,omitempty"`
	Order          int       `json:"order,omitempty"`
	Trigger        string    `json:"trigger,omitempty"`
	Active         bool      `json:"active"`
	Strict         bool      `json:"strict,omitempty"`
	StopProcessing bool      `json:"stop_processing,omitempty"`
	Triggers       []Trigger `json:"triggers,omitempty"`
	Actions        []Action  `json:"actions,omitempty"`
}

// ruleRequest is the POST /rules and PUT /rules/{id} payload.
type ruleRequest struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	RuleGroupID string    `json:"rule_group_id,omitempty"`
	Trigger     string    `json:"trigger,omitempty"`
	Strict      *bool     `json:"strict,omitempty"`
	Active      *bool     `json:"active,omitempty"`
	Triggers    []Trigger `json:"triggers,omitempty"`
	Actions     []Action  `json:"actions,omitempty"`
}

// GroupSummary is the compact rule group representation in list results.
type GroupSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// GroupDetail is the full rule group representation for get results.
type GroupDetail struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order,omitempty"`
	Active      bool   `json:"active"`
}

// Summary is the compact rule representation used in list results.
type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	RuleGroupID string `json:"rule_group_id,omitempty"`
	Active      bool   `json:"active"`
}

// Detail is the full rule representation for get results.
type Detail struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	RuleGroupID    string    `json:"rule_group_id,omitempty"`
	Trigger        string    `json:"trigger,omitempty"`
	Active         bool      `json:"active"`
	Strict         bool      `json:"strict,omitempty"`
	StopProcessing bool      `json:"stop_processing,omitempty"`
	Triggers       []Trigger `json:"triggers,omitempty"`
	Actions        []Action  `json:"actions,omitempty"`
}

func groupDetailOf(id string, a GroupAttributes) GroupDetail {
	return GroupDetail{ID: id, Title: a.Title, Description: a.Description, Order: a.Order, Active: a.Active}
}

func detailOf(id string, a Attributes) Detail {
	return Detail{
		ID:             id,
		Title:          a.Title,
		Description:    a.Description,
		RuleGroupID:    a.RuleGroupID,
		Trigger:        a.Trigger,
		Active:         a.Active,
		Strict:         a.Strict,
		StopProcessing: a.StopProcessing,
		Triggers:       a.Triggers,
		Actions:        a.Actions,
	}
}
