// Package rules exposes the Firefly III rule group and rule endpoints as
// MCP tool methods. Trigger and action clauses cross the tool boundary as
// JSON strings and are validated locally before any backend call.
package rules

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// Client provides rule tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a rules client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// ListGroups lists rule groups.
func (c *Client) ListGroups(ctx context.Context, _ ListGroupsArgs) (ListGroupsResult, error) {
	res, err := firefly.List[GroupAttributes](ctx, c.api, "/rule-groups", nil)
	if err != nil {
		return ListGroupsResult{}, err
	}
	groups := make([]GroupSummary, 0, len(res.Data))
	for _, obj := range res.Data {
		groups = append(groups, GroupSummary{
			ID:          obj.ID,
			Title:       obj.Attributes.Title,
			Description: obj.Attributes.Description,
			Active:      obj.Attributes.Active,
		})
	}
	out := ListGroupsResult{RuleGroups: groups, Count: len(groups)}
	if len(groups) == 0 {
		out.Message = results.NoneFound("rule groups")
	}
	return out, nil
}

// GetGroup fetches one rule group by ID.
func (c *Client) GetGroup(ctx context.Context, args GetGroupArgs) (GetGroupResult, error) {
	if coerce.Blank(args.GroupID) {
		return GetGroupResult{}, apierrors.NewRequiredError("group_id")
	}
	res, err := firefly.Get[GroupAttributes](ctx, c.api, "/rule-groups/"+url.PathEscape(args.GroupID))
	if err != nil {
		return GetGroupResult{}, err
	}
	return GetGroupResult{RuleGroup: groupDetailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// CreateGroup creates a rule group.
func (c *Client) CreateGroup(ctx context.Context, args CreateGroupArgs) (CreateGroupResult, error) {
	if coerce.Blank(args.Title) {
		return CreateGroupResult{}, apierrors.NewRequiredError("title")
	}
	res, err := firefly.Post[GroupAttributes](ctx, c.api, "/rule-groups", groupRequest{
		Title:       args.Title,
		Description: args.Description,
	})
	if err != nil {
		return CreateGroupResult{}, err
	}
	return CreateGroupResult{RuleGroup: groupDetailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// UpdateGroup applies a partial update to a rule group.
func (c *Client) UpdateGroup(ctx context.Context, args UpdateGroupArgs) (UpdateGroupResult, error) {
	if coerce.Blank(args.GroupID) {
		return UpdateGroupResult{}, apierrors.NewRequiredError("group_id")
	}
	if coerce.Blank(args.Title) && coerce.Blank(args.Description) && args.Active == nil {
		return UpdateGroupResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	res, err := firefly.Put[GroupAttributes](ctx, c.api, "/rule-groups/"+url.PathEscape(args.GroupID), groupRequest{
		Title:       args.Title,
		Description: args.Description,
		Active:      args.Active,
	})
	if err != nil {
		return UpdateGroupResult{}, err
	}
	return UpdateGroupResult{RuleGroup: groupDetailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// DeleteGroup removes a rule group and the rules in it.
func (c *Client) DeleteGroup(ctx context.Context, args DeleteGroupArgs) (DeleteResult, error) {
	if coerce.Blank(args.GroupID) {
		return DeleteResult{}, apierrors.NewRequiredError("group_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("rule group and its rules"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/rule-groups/"+url.PathEscape(args.GroupID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.GroupID), nil
}

// FireGroup applies every rule in a group to existing transactions.
func (c *Client) FireGroup(ctx context.Context, args FireGroupArgs) (FireResult, error) {
	if coerce.Blank(args.GroupID) {
		return FireResult{}, apierrors.NewRequiredError("group_id")
	}
	path := "/rule-groups/" + url.PathEscape(args.GroupID) + "/trigger"
	if q := rangeQuery(args.StartDate, args.EndDate, args.Accounts); q != "" {
		path += "?" + q
	}
	if err := c.api.Do(ctx, "POST", path, nil, nil, nil); err != nil {
		return FireResult{}, err
	}
	return FireResult{Fired: true, Message: "rule group " + args.GroupID + " applied"}, nil
}

// TestGroup dry-runs every rule in a group and lists the transactions that
// would match.
func (c *Client) TestGroup(ctx context.Context, args TestGroupArgs) (TestResult, error) {
	if coerce.Blank(args.GroupID) {
		return TestResult{}, apierrors.NewRequiredError("group_id")
	}
	path := "/rule-groups/" + url.PathEscape(args.GroupID) + "/test"
	if q := rangeQuery(args.StartDate, args.EndDate, ""); q != "" {
		path += "?" + q
	}
	res, err := firefly.List[transactions.Attributes](ctx, c.api, path, nil)
	if err != nil {
		return TestResult{}, err
	}
	return transactions.ListResultOf(res.Data), nil
}

// List lists rules across all groups.
func (c *Client) List(ctx context.Context, _ ListArgs) (ListResult, error) {
	res, err := firefly.List[Attributes](ctx, c.api, "/rules", nil)
	if err != nil {
		return ListResult{}, err
	}
	return ListResultOf(res.Data), nil
}

// Get fetches one rule by ID.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.RuleID) {
		return GetResult{}, apierrors.NewRequiredError("rule_id")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, "/rules/"+url.PathEscape(args.RuleID))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Rule: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Create creates a rule from JSON-encoded trigger and action clauses.
func (c *Client) Create(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Title) {
		return CreateResult{}, apierrors.NewRequiredError("title")
	}
	if coerce.Blank(args.GroupID) {
		return CreateResult{}, apierrors.NewRequiredError("group_id")
	}
	triggers, err := parseClauses[Trigger]("triggers_json", args.TriggersJSON, true)
	if err != nil {
		return CreateResult{}, err
	}
	actions, err := parseClauses[Action]("actions_json", args.ActionsJSON, true)
	if err != nil {
		return CreateResult{}, err
	}

	req := ruleRequest{
		Title:       args.Title,
		Description: args.Description,
		RuleGroupID: args.GroupID,
		Trigger:     args.Trigger,
		Strict:      args.Strict,
		Triggers:    triggers,
		Actions:     actions,
	}
	if req.Trigger == "" {
		req.Trigger = "store-journal"
	}
	res, err := firefly.Post[Attributes](ctx, c.api, "/rules", req)
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Rule: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update applies a partial update to a rule. Supplied clause lists replace
// the existing ones wholesale.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.RuleID) {
		return UpdateResult{}, apierrors.NewRequiredError("rule_id")
	}
	if coerce.Blank(args.Title) && coerce.Blank(args.Description) &&
		coerce.Blank(args.TriggersJSON) && coerce.Blank(args.ActionsJSON) && args.Active == nil {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	triggers, err := parseClauses[Trigger]("triggers_json", args.TriggersJSON, false)
	if err != nil {
		return UpdateResult{}, err
	}
	actions, err := parseClauses[Action]("actions_json", args.ActionsJSON, false)
	if err != nil {
		return UpdateResult{}, err
	}

	res, err := firefly.Put[Attributes](ctx, c.api, "/rules/"+url.PathEscape(args.RuleID), ruleRequest{
		Title:       args.Title,
		Description: args.Description,
		Active:      args.Active,
		Triggers:    triggers,
		Actions:     actions,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Rule: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes a rule.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.RuleID) {
		return DeleteResult{}, apierrors.NewRequiredError("rule_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("rule"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/rules/"+url.PathEscape(args.RuleID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.RuleID), nil
}

// Test dry-runs one rule and lists the transactions that would match.
func (c *Client) Test(ctx context.Context, args TestArgs) (TestResult, error) {
	if coerce.Blank(args.RuleID) {
		return TestResult{}, apierrors.NewRequiredError("rule_id")
	}
	path := "/rules/" + url.PathEscape(args.RuleID) + "/test"
	if q := rangeQuery(args.StartDate, args.EndDate, ""); q != "" {
		path += "?" + q
	}
	res, err := firefly.List[transactions.Attributes](ctx, c.api, path, nil)
	if err != nil {
		return TestResult{}, err
	}
	return transactions.ListResultOf(res.Data), nil
}

// Trigger applies one rule to existing transactions.
func (c *Client) Trigger(ctx context.Context, args TriggerArgs) (FireResult, error) {
	if coerce.Blank(args.RuleID) {
		return FireResult{}, apierrors.NewRequiredError("rule_id")
	}
	path := "/rules/" + url.PathEscape(args.RuleID) + "/trigger"
	if q := rangeQuery(args.StartDate, args.EndDate, args.Accounts); q != "" {
		path += "?" + q
	}
	if err := c.api.Do(ctx, "POST", path, nil, nil, nil); err != nil {
		return FireResult{}, err
	}
	return FireResult{Fired: true, Message: "rule " + args.RuleID + " applied"}, nil
}

// ListResultOf shapes rule records into the shared list result. Shared with
// the packages that list rules scoped to another entity.
func ListResultOf(data []firefly.Object[Attributes]) ListResult {
	rules := make([]Summary, 0, len(data))
	for _, obj := range data {
		rules = append(rules, Summary{
			ID:          obj.ID,
			Title:       obj.Attributes.Title,
			RuleGroupID: obj.Attributes.RuleGroupID,
			Active:      obj.Attributes.Active,
		})
	}
	out := ListResult{Rules: rules, Count: len(rules)}
	if len(rules) == 0 {
		out.Message = results.NoneFound("rules")
	}
	return out
}

// parseClauses decodes a JSON array of trigger or action clauses. A blank
// string is an absent list unless the field is required; anything else must
// decode to a non-empty array.
func parseClauses[T any](field, raw string, required bool) ([]T, error) {
	if coerce.Blank(raw) {
		if required {
			return nil, apierrors.NewRequiredError(field)
		}
		return nil, nil
	}
	var clauses []T
	if err := json.Unmarshal([]byte(raw), &clauses); err != nil {
		return nil, &apierrors.MalformedJSONError{Field: field}
	}
	if len(clauses) == 0 {
		return nil, apierrors.NewValidationError(field, "must contain at least one entry")
	}
	return clauses, nil
}

func rangeQuery(start, end, accounts string) string {
	q := url.Values{}
	if !coerce.Blank(start) {
		q.Set("start", start)
	}
	if !coerce.Blank(end) {
		q.Set("end", end)
	}
	for _, id := range coerce.SplitList(accounts) {
		q.Add("accounts[]", id)
	}
	return q.Encode()
}
