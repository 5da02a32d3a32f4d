package webhooks

// Attributes mirrors the Firefly III webhook record.
type Attributes struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Trigger  string `json:"trigger"`
	Response string `json:"response"`
	Delivery string `json:"delivery"`
	Secret   string `json:"secret,omitempty"`
	Active   bool   `json:"active"`
}

// webhookRequest is the POST /webhooks and PUT /webhooks/{id} payload.
type webhookRequest struct {
	Title    string `json:"title,omitempty"`
	URL      string `json:"url,omitempty"`
	Trigger  string `json:"trigger,omitempty"`
	Response string `json:"response,omitempty"`
	Delivery string `json:"delivery,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

// MessageAttributes mirrors one queued webhook message.
type MessageAttributes struct {
	Sent    bool   `json:"sent"`
	Errored bool   `json:"errored"`
	UUID    string `json:"uuid,omitempty"`
	Message string `json:"message,omitempty"`
	SentAt  string `json:"created_at,omitempty"`
}

// AttemptAttributes mirrors one delivery attempt for a webhook message.
type AttemptAttributes struct {
	StatusCode int    `json:"status_code,omitempty"`
	Logs       string `json:"logs,omitempty"`
	Response   string `json:"response,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Summary is the compact webhook representation used in list results.
type Summary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Trigger string `json:"trigger"`
	Active  bool   `json:"active"`
}

// Detail is the full webhook representation for get results.
type Detail struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Trigger  string `json:"trigger"`
	Response string `json:"response"`
	Delivery string `json:"delivery"`
	Secret   string `json:"secret,omitempty"`
	Active   bool   `json:"active"`
}

// Message is one queued webhook message in results.
type Message struct {
	ID      string `json:"id"`
	Sent    bool   `json:"sent"`
	Errored bool   `json:"errored"`
	UUID    string `json:"uuid,omitempty"`
	Message string `json:"message,omitempty"`
	SentAt  string `json:"sent_at,omitempty"`
}

// Attempt is one delivery attempt in results.
type Attempt struct {
	ID         string `json:"id"`
	StatusCode int    `json:"status_code,omitempty"`
	Logs       string `json:"logs,omitempty"`
	Response   string `json:"response,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

func detailOf(id string, a Attributes) Detail {
	return Detail{
		ID:       id,
		Title:    a.Title,
		URL:      a.URL,
		Trigger:  a.Trigger,
		Response: a.Response,
		Delivery: a.Delivery,
		Secret:   a.Secret,
		Active:   a.Active,
	}
}

func messageOf(id string, a MessageAttributes) Message {
	return Message{ID: id, Sent: a.Sent, Errored: a.Errored, UUID: a.UUID, Message: a.Message, SentAt: a.SentAt}
}

func attemptOf(id string, a AttemptAttributes) Attempt {
	return Attempt{ID: id, StatusCode: a.StatusCode, Logs: a.Logs, Response: a.Response, CreatedAt: a.CreatedAt}
}
