// Package webhooks exposes the Firefly III webhook endpoints as MCP tool
// methods.
package webhooks

import (
	"context"
	"net/url"
	"strings"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/results"
)

// Client provides webhook tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a webhooks client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// List lists all webhooks.
func (c *Client) List(ctx context.Context, _ ListArgs) (ListResult, error) {
	res, err := firefly.List[Attributes](ctx, c.api, "/webhooks", nil)
	if err != nil {
		return ListResult{}, err
	}
	hooks := make([]Summary, 0, len(res.Data))
	for _, obj := range res.Data {
		hooks = append(hooks, Summary{
			ID:      obj.ID,
			Title:   obj.Attributes.Title,
			URL:     obj.Attributes.URL,
			Trigger: obj.Attributes.Trigger,
			Active:  obj.Attributes.Active,
		})
	}
	out := ListResult{Webhooks: hooks, Count: len(hooks)}
	if len(hooks) == 0 {
		out.Message = results.NoneFound("webhooks")
	}
	return out, nil
}

// Get fetches one webhook by ID.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.WebhookID) {
		return GetResult{}, apierrors.NewRequiredError("webhook_id")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, "/webhooks/"+url.PathEscape(args.WebhookID))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Webhook: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Create creates a webhook. The backend requires an https delivery URL.
func (c *Client) Create(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Title) {
		return CreateResult{}, apierrors.NewRequiredError("title")
	}
	if coerce.Blank(args.URL) {
		return CreateResult{}, apierrors.NewRequiredError("url")
	}
	if !strings.HasPrefix(args.URL, "https://") {
		return CreateResult{}, apierrors.NewValidationError("url", "must start with https://")
	}

	req := webhookRequest{
		Title:    args.Title,
		URL:      args.URL,
		Trigger:  args.Trigger,
		Response: args.Response,
		Delivery: args.Delivery,
	}
	if req.Trigger == "" {
		req.Trigger = "STORE_TRANSACTION"
	}
	if req.Response == "" {
		req.Response = "TRANSACTIONS"
	}
	if req.Delivery == "" {
		req.Delivery = "JSON"
	}
	res, err := firefly.Post[Attributes](ctx, c.api, "/webhooks", req)
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Webhook: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update applies a partial update to a webhook.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.WebhookID) {
		return UpdateResult{}, apierrors.NewRequiredError("webhook_id")
	}
	if coerce.Blank(args.Title) && coerce.Blank(args.URL) && coerce.Blank(args.Trigger) &&
		coerce.Blank(args.Response) && args.Active == nil {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	if !coerce.Blank(args.URL) && !strings.HasPrefix(args.URL, "https://") {
		return UpdateResult{}, apierrors.NewValidationError("url", "must start with https://")
	}
	res, err := firefly.Put[Attributes](ctx, c.api, "/webhooks/"+url.PathEscape(args.WebhookID), webhookRequest{
		Title:    args.Title,
		URL:      args.URL,
		Trigger:  args.Trigger,
		Response: args.Response,
		Active:   args.Active,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Webhook: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes a webhook and its queued messages.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.WebhookID) {
		return DeleteResult{}, apierrors.NewRequiredError("webhook_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("webhook"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/webhooks/"+url.PathEscape(args.WebhookID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.WebhookID), nil
}

// Submit asks the backend to send the webhook's queued messages now.
func (c *Client) Submit(ctx context.Context, args SubmitArgs) (SubmitResult, error) {
	if coerce.Blank(args.WebhookID) {
		return SubmitResult{}, apierrors.NewRequiredError("webhook_id")
	}
	if err := c.api.Do(ctx, "POST", "/webhooks/"+url.PathEscape(args.WebhookID)+"/submit", nil, nil, nil); err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{Submitted: true, Message: "webhook " + args.WebhookID + " submitted"}, nil
}

// ListMessages lists the queued messages of one webhook.
func (c *Client) ListMessages(ctx context.Context, args ListMessagesArgs) (ListMessagesResult, error) {
	if coerce.Blank(args.WebhookID) {
		return ListMessagesResult{}, apierrors.NewRequiredError("webhook_id")
	}
	res, err := firefly.List[MessageAttributes](ctx, c.api, "/webhooks/"+url.PathEscape(args.WebhookID)+"/messages", nil)
	if err != nil {
		return ListMessagesResult{}, err
	}
	msgs := make([]Message, 0, len(res.Data))
	for _, obj := range res.Data {
		msgs = append(msgs, messageOf(obj.ID, obj.Attributes))
	}
	out := ListMessagesResult{Messages: msgs, Count: len(msgs)}
	if len(msgs) == 0 {
		out.Message = results.NoneFound("webhook messages")
	}
	return out, nil
}

// GetMessage fetches one webhook message.
func (c *Client) GetMessage(ctx context.Context, args GetMessageArgs) (GetMessageResult, error) {
	if coerce.Blank(args.WebhookID) {
		return GetMessageResult{}, apierrors.NewRequiredError("webhook_id")
	}
	if coerce.Blank(args.MessageID) {
		return GetMessageResult{}, apierrors.NewRequiredError("message_id")
	}
	res, err := firefly.Get[MessageAttributes](ctx, c.api, "/webhooks/"+url.PathEscape(args.WebhookID)+"/messages/"+url.PathEscape(args.MessageID))
	if err != nil {
		return GetMessageResult{}, err
	}
	return GetMessageResult{WebhookMessage: messageOf(res.Data.ID, res.Data.Attributes)}, nil
}

// DeleteMessage removes a queued webhook message.
func (c *Client) DeleteMessage(ctx context.Context, args DeleteMessageArgs) (DeleteResult, error) {
	if coerce.Blank(args.WebhookID) {
		return DeleteResult{}, apierrors.NewRequiredError("webhook_id")
	}
	if coerce.Blank(args.MessageID) {
		return DeleteResult{}, apierrors.NewRequiredError("message_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("webhook message"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/webhooks/"+url.PathEscape(args.WebhookID)+"/messages/"+url.PathEscape(args.MessageID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.MessageID), nil
}

// ListAttempts lists the failed delivery attempts of one webhook message.
func (c *Client) ListAttempts(ctx context.Context, args ListAttemptsArgs) (ListAttemptsResult, error) {
	if coerce.Blank(args.WebhookID) {
		return ListAttemptsResult{}, apierrors.NewRequiredError("webhook_id")
	}
	if coerce.Blank(args.MessageID) {
		return ListAttemptsResult{}, apierrors.NewRequiredError("message_id")
	}
	res, err := firefly.List[AttemptAttributes](ctx, c.api, "/webhooks/"+url.PathEscape(args.WebhookID)+"/messages/"+url.PathEscape(args.MessageID)+"/attempts", nil)
	if err != nil {
		return ListAttemptsResult{}, err
	}
	attempts := make([]Attempt, 0, len(res.Data))
	for _, obj := range res.Data {
		attempts = append(attempts, attemptOf(obj.ID, obj.Attributes))
	}
	out := ListAttemptsResult{Attempts: attempts, Count: len(attempts)}
	if len(attempts) == 0 {
		out.Message = results.NoneFound("delivery attempts")
	}
	return out, nil
}

// GetAttempt fetches one delivery attempt.
func (c *Client) GetAttempt(ctx context.Context, args GetAttemptArgs) (GetAttemptResult, error) {
	if coerce.Blank(args.WebhookID) {
		return GetAttemptResult{}, apierrors.NewRequiredError("webhook_id")
	}
	if coerce.Blank(args.MessageID) {
		return GetAttemptResult{}, apierrors.NewRequiredError("message_id")
	}
	if coerce.Blank(args.AttemptID) {
		return GetAttemptResult{}, apierrors.NewRequiredError("attempt_id")
	}
	res, err := firefly.Get[AttemptAttributes](ctx, c.api, "/webhooks/"+url.PathEscape(args.WebhookID)+"/messages/"+url.PathEscape(args.MessageID)+"/attempts/"+url.PathEscape(args.AttemptID))
	if err != nil {
		return GetAttemptResult{}, err
	}
	return GetAttemptResult{Attempt: attemptOf(res.Data.ID, res.Data.Attributes)}, nil
}
