package webhooks

import "github.com/akarpova/firefly-mcp-server/internal/results"

// ListArgs contains parameters for listing webhooks.
type ListArgs struct{}

// ListResult is the result of listing webhooks.
type ListResult struct {
	Webhooks []Summary `json:"webhooks"`
	Count    int       `json:"count"`
	Message  string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one webhook.
type GetArgs struct {
	WebhookID string `json:"webhook_id" jsonschema:"required" jsonschema_description:"Numeric webhook ID"`
}

// GetResult is the result of fetching one webhook.
type GetResult struct {
	Webhook Detail `json:"webhook"`
}

// CreateArgs contains parameters for creating a webhook.
type CreateArgs struct {
	Title    string `json:"title" jsonschema:"required" jsonschema_description:"Webhook title"`
	URL      string `json:"url" jsonschema:"required" jsonschema_description:"Delivery URL (must be https)"`
	Trigger  string `json:"trigger,omitempty" jsonschema_description:"Trigger: STORE_TRANSACTION (default), UPDATE_TRANSACTION, or DESTROY_TRANSACTION"`
	Response string `json:"response,omitempty" jsonschema_description:"Payload: TRANSACTIONS (default), ACCOUNTS, or NONE"`
	Delivery string `json:"delivery,omitempty" jsonschema_description:"Delivery format, JSON by default"`
}

// CreateResult is the result of creating a webhook.
type CreateResult struct {
	Webhook Detail `json:"webhook"`
}

// UpdateArgs contains parameters for a partial webhook update. At least one
// optional field must be supplied.
type UpdateArgs struct {
	WebhookID string `json:"webhook_id" jsonschema:"required" jsonschema_description:"Numeric webhook ID"`
	Title     string `json:"title,omitempty" jsonschema_description:"New title"`
	URL       string `json:"url,omitempty" jsonschema_description:"New delivery URL"`
	Trigger   string `json:"trigger,omitempty" jsonschema_description:"New trigger"`
	Response  string `json:"response,omitempty" jsonschema_description:"New payload type"`
	Active    *bool  `json:"active,omitempty" jsonschema_description:"Activate or deactivate the webhook"`
}

// UpdateResult is the result of updating a webhook.
type UpdateResult struct {
	Webhook Detail `json:"webhook"`
}

// DeleteArgs contains parameters for deleting a webhook.
type DeleteArgs struct {
	WebhookID string `json:"webhook_id" jsonschema:"required" jsonschema_description:"Numeric webhook ID"`
	Confirm   bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// SubmitArgs contains parameters for triggering a webhook delivery.
type SubmitArgs struct {
	WebhookID string `json:"webhook_id" jsonschema:"required" jsonschema_description:"Numeric webhook ID"`
}

// SubmitResult reports that the backend queued the webhook messages.
type SubmitResult struct {
	Submitted bool   `json:"submitted"`
	Message   string `json:"message"`
}

// ListMessagesArgs contains parameters for listing the messages of one
// webhook.
type ListMessagesArgs struct {
	WebhookID string `json:"webhook_id" jsonschema:"required" jsonschema_description:"Numeric webhook ID"`
}

// ListMessagesResult is the result of listing webhook messages.
type ListMessagesResult struct {
	Messages []Message `json:"messages"`
	Count    int       `json:"count"`
	Message  string    `json:"message,omitempty"`
}

// GetMessageArgs contains parameters for fetching one webhook message.
type GetMessageArgs struct {
	WebhookID string `json:"webhook_id" jsonschema:"required" jsonschema_description:"Numeric webhook ID"`
	MessageID string `json:"message_id" jsonschema:"required" jsonschema_description:"Numeric message ID"`
}

// GetMessageResult is the result of fetching one webhook message.
type GetMessageResult struct {
	WebhookMessage Message `json:"webhook_message"`
}

// DeleteMessageArgs contains parameters for deleting a webhook message.
type DeleteMessageArgs struct {
	WebhookID string `json:"webhook_id" jsonschema:"required" jsonschema_description:"Numeric webhook ID"`
	MessageID string `json:"message_id" jsonschema:"required" jsonschema_description:"Numeric message ID"`
	Confirm   bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// ListAttemptsArgs contains parameters for listing the delivery attempts of
// one webhook message.
type ListAttemptsArgs struct {
	WebhookID string `json:"webhook_id" jsonschema:"required" jsonschema_description:"Numeric webhook ID"`
	MessageID string `json:"message_id" jsonschema:"required" jsonschema_description:"Numeric message ID"`
}

// ListAttemptsResult is the result of listing delivery attempts.
type ListAttemptsResult struct {
	Attempts []Attempt `json:"attempts"`
	Count    int       `json:"count"`
	Message  string    `json:"message,omitempty"`
}

// GetAttemptArgs contains parameters for fetching one delivery attempt.
type GetAttemptArgs struct {
	WebhookID string `json:"webhook_id" jsonschema:"required" jsonschema_description:"Numeric webhook ID"`
	MessageID string `json:"message_id" jsonschema:"required" jsonschema_description:"Numeric message ID"`
	AttemptID string `json:"attempt_id" jsonschema:"required" jsonschema_description:"Numeric attempt ID"`
}

// GetAttemptResult is the result of fetching one delivery attempt.
type GetAttemptResult struct {
	Attempt Attempt `json:"attempt"`
}
