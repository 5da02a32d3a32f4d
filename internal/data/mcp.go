// Package data exposes the Firefly III bulk export and bulk deletion
// endpoints as MCP tool methods.
package data

import (
	"context"
	"encoding/json"
	"net/url"
	"sort"
	"strings"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
)

// destroyable lists the object classes DELETE /data/destroy accepts.
var destroyable = map[string]bool{
	"accounts":         true,
	"asset_accounts":   true,
	"bills":            true,
	"budgets":          true,
	"categories":       true,
	"deposits":         true,
	"expense_accounts": true,
	"liabilities":      true,
	"object_groups":    true,
	"piggy_banks":      true,
	"recurring":        true,
	"revenue_accounts": true,
	"rules":            true,
	"tags":             true,
	"transactions":     true,
	"transfers":        true,
	"withdrawals":      true,
}

// Client provides data tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a data client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// export fetches one CSV export. The export endpoints answer with a CSV
// attachment rather than a JSON:API envelope, so the raw round trip is
// used instead of the typed helpers.
func (c *Client) export(ctx context.Context, kind string, query url.Values) (ExportResult, error) {
	path := "/v1/data/export/" + kind + "?type=csv"
	if encoded := query.Encode(); encoded != "" {
		path += "&" + encoded
	}
	raw, _, err := c.api.DoRaw(ctx, "GET", path, nil)
	if err != nil {
		return ExportResult{}, err
	}
	out := ExportResult{Kind: kind, CSV: string(raw)}
	if strings.TrimSpace(out.CSV) == "" {
		out.Message = "The export is empty."
	}
	return out, nil
}

// ExportAccounts exports all accounts as CSV.
func (c *Client) ExportAccounts(ctx context.Context, _ ExportArgs) (ExportResult, error) {
	return c.export(ctx, "accounts", nil)
}

// ExportTransactions exports transactions as CSV, optionally limited by
// date range and account IDs.
func (c *Client) ExportTransactions(ctx context.Context, args ExportTransactionsArgs) (ExportResult, error) {
	query := url.Values{}
	if !coerce.Blank(args.StartDate) {
		query.Set("start", args.StartDate)
	}
	if !coerce.Blank(args.EndDate) {
		query.Set("end", args.EndDate)
	}
	if accounts := coerce.SplitList(args.Accounts); len(accounts) > 0 {
		query.Set("accounts", strings.Join(accounts, ","))
	}
	return c.export(ctx, "transactions", query)
}

// ExportBills exports all bills as CSV.
func (c *Client) ExportBills(ctx context.Context, _ ExportArgs) (ExportResult, error) {
	return c.export(ctx, "bills", nil)
}

// ExportBudgets exports all budgets as CSV.
func (c *Client) ExportBudgets(ctx context.Context, _ ExportArgs) (ExportResult, error) {
	return c.export(ctx, "budgets", nil)
}

// ExportCategories exports all categories as CSV.
func (c *Client) ExportCategories(ctx context.Context, _ ExportArgs) (ExportResult, error) {
	return c.export(ctx, "categories", nil)
}

// ExportPiggyBanks exports all piggy banks as CSV.
func (c *Client) ExportPiggyBanks(ctx context.Context, _ ExportArgs) (ExportResult, error) {
	return c.export(ctx, "piggy-banks", nil)
}

// ExportRecurring exports all recurring transactions as CSV.
func (c *Client) ExportRecurring(ctx context.Context, _ ExportArgs) (ExportResult, error) {
	return c.export(ctx, "recurring", nil)
}

// ExportRules exports all rules as CSV.
func (c *Client) ExportRules(ctx context.Context, _ ExportArgs) (ExportResult, error) {
	return c.export(ctx, "rules", nil)
}

// ExportTags exports all tags as CSV.
func (c *Client) ExportTags(ctx context.Context, _ ExportArgs) (ExportResult, error) {
	return c.export(ctx, "tags", nil)
}

// BulkUpdateTransactions applies one change to every transaction matching a
// query. The query must be a JSON literal pairing a where clause with the
// new values and is validated before any backend call.
func (c *Client) BulkUpdateTransactions(ctx context.Context, args BulkUpdateArgs) (BulkUpdateResult, error) {
	if coerce.Blank(args.Query) {
		return BulkUpdateResult{}, apierrors.NewRequiredError("query")
	}
	if !json.Valid([]byte(args.Query)) {
		return BulkUpdateResult{}, &apierrors.MalformedJSONError{Field: "query"}
	}
	q := url.Values{}
	q.Set("query", args.Query)
	if err := c.api.Do(ctx, "POST", "/data/bulk/transactions", q, nil, nil); err != nil {
		return BulkUpdateResult{}, err
	}
	return BulkUpdateResult{Applied: true}, nil
}

// DestroyData removes every record of one object class.
func (c *Client) DestroyData(ctx context.Context, args DestroyArgs) (DestroyResult, error) {
	if coerce.Blank(args.Objects) {
		return DestroyResult{}, apierrors.NewRequiredError("objects")
	}
	objects := strings.ToLower(strings.TrimSpace(args.Objects))
	if !destroyable[objects] {
		return DestroyResult{}, apierrors.NewValidationError("objects", "must be one of: "+strings.Join(destroyableKinds(), ", "))
	}
	if !args.Confirm {
		return DestroyResult{
			Warning: "This deletes ALL " + objects + ". Call again with confirm set to true to proceed.",
		}, nil
	}
	if err := c.api.Do(ctx, "DELETE", "/data/destroy?objects="+url.QueryEscape(objects), nil, nil, nil); err != nil {
		return DestroyResult{}, err
	}
	return DestroyResult{Destroyed: true, Objects: objects}, nil
}

// PurgeData permanently erases soft-deleted records. Both gates must be
// set; a purge cannot be rolled back.
func (c *Client) PurgeData(ctx context.Context, args PurgeArgs) (PurgeResult, error) {
	if !args.Confirm || !args.AcknowledgeIrreversible {
		return PurgeResult{
			Warning: "Purging permanently erases soft-deleted records and cannot be undone. " +
				"Call again with both confirm and acknowledge_irreversible set to true to proceed.",
		}, nil
	}
	if err := c.api.Do(ctx, "DELETE", "/data/purge", nil, nil, nil); err != nil {
		return PurgeResult{}, err
	}
	return PurgeResult{Purged: true}, nil
}

func destroyableKinds() []string {
	kinds := make([]string, 0, len(destroyable))
	for kind := range destroyable {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
