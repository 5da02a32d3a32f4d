package rules

import (
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
)

// ListGroupsArgs contains parameters for listing rule groups.
type ListGroupsArgs struct{}

// ListGroupsResult is the result of listing rule groups.
type ListGroupsResult struct {
	RuleGroups []GroupSummary `json:"rule_groups"`
	Count      int            `json:"count"`
	Message    string         `json:"message,omitempty"`
}

// GetGroupArgs contains parameters for fetching one rule group.
type GetGroupArgs struct {
	GroupID string `json:"group_id" jsonschema:"required" jsonschema_description:"Numeric rule group ID"`
}

// GetGroupResult is the result of fetching one rule group.
type GetGroupResult struct {
	RuleGroup GroupDetail `json:"rule_group"`
}

// CreateGroupArgs contains parameters for creating a rule group.
type CreateGroupArgs struct {
	Title       string `json:"title" jsonschema:"required" jsonschema_description:"Rule group title"`
	Description string `json:"description,omitempty" jsonschema_description:"Rule group description"`
}

// CreateGroupResult is the result of creating a rule group.
type CreateGroupResult struct {
	RuleGroup GroupDetail `json:"rule_group"`
}

// UpdateGroupArgs contains parameters for updating a rule group. At least
// one optional field must be supplied.
type UpdateGroupArgs struct {
	GroupID     string `json:"group_id" jsonschema:"required" jsonschema_description:"Numeric rule group ID"`
	Title       string `json:"title,omitempty" jsonschema_description:"New title"`
	Description string `json:"description,omitempty" jsonschema_description:"New description"`
	Active      *bool  `json:"active,omitempty" jsonschema_description:"Activate or deactivate the group"`
}

// UpdateGroupResult is the result of updating a rule group.
type UpdateGroupResult struct {
	RuleGroup GroupDetail `json:"rule_group"`
}

// DeleteGroupArgs contains parameters for deleting a rule group.
type DeleteGroupArgs struct {
	GroupID string `json:"group_id" jsonschema:"required" jsonschema_description:"Numeric rule group ID"`
	Confirm bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// FireGroupArgs contains parameters for applying all rules in a group to
// existing transactions.
type FireGroupArgs struct {
	GroupID   string `json:"group_id" jsonschema:"required" jsonschema_description:"Numeric rule group ID"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Only apply to transactions from this date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"Only apply to transactions up to this date (YYYY-MM-DD)"`
	Accounts  string `json:"accounts,omitempty" jsonschema_description:"Comma-separated numeric account IDs to restrict the run"`
}

// FireResult reports that a rule run was accepted by the backend.
type FireResult struct {
	Fired   bool   `json:"fired"`
	Message string `json:"message"`
}

// TestGroupArgs contains parameters for a dry run of all rules in a group.
type TestGroupArgs struct {
	GroupID   string `json:"group_id" jsonschema:"required" jsonschema_description:"Numeric rule group ID"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Only match transactions from this date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"Only match transactions up to this date (YYYY-MM-DD)"`
}

// TestResult lists the transactions a rule or group would match.
type TestResult = transactions.ListResult

// ListArgs contains parameters for listing rules.
type ListArgs struct{}

// ListResult is the result of listing rules.
type ListResult struct {
	Rules   []Summary `json:"rules"`
	Count   int       `json:"count"`
	Message string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one rule.
type GetArgs struct {
	RuleID string `json:"rule_id" jsonschema:"required" jsonschema_description:"Numeric rule ID"`
}

// GetResult is the result of fetching one rule.
type GetResult struct {
	Rule Detail `json:"rule"`
}

// CreateArgs contains parameters for creating a rule. Triggers and actions
// arrive as JSON-encoded arrays of clause objects.
type CreateArgs struct {
	Title        string `json:"title" jsonschema:"required" jsonschema_description:"Rule title"`
	GroupID      string `json:"group_id" jsonschema:"required" jsonschema_description:"Numeric rule group ID"`
	TriggersJSON string `json:"triggers_json" jsonschema:"required" jsonschema_description:"JSON array of trigger clauses, e.g. [{\"type\":\"description_contains\",\"value\":\"coffee\"}]"`
	ActionsJSON  string `json:"actions_json" jsonschema:"required" jsonschema_description:"JSON array of action clauses, e.g. [{\"type\":\"set_category\",\"value\":\"Coffee\"}]"`
	Description  string `json:"description,omitempty" jsonschema_description:"Rule description"`
	Trigger      string `json:"trigger,omitempty" jsonschema_description:"Fire moment: store-journal (default) or update-journal"`
	Strict       *bool  `json:"strict,omitempty" jsonschema_description:"All triggers must match (default true)"`
}

// CreateResult is the result of creating a rule.
type CreateResult struct {
	Rule Detail `json:"rule"`
}

// UpdateArgs contains parameters for updating a rule. At least one optional
// field must be supplied.
type UpdateArgs struct {
	RuleID       string `json:"rule_id" jsonschema:"required" jsonschema_description:"Numeric rule ID"`
	Title        string `json:"title,omitempty" jsonschema_description:"New title"`
	Description  string `json:"description,omitempty" jsonschema_description:"New description"`
	TriggersJSON string `json:"triggers_json,omitempty" jsonschema_description:"Replacement JSON array of trigger clauses"`
	ActionsJSON  string `json:"actions_json,omitempty" jsonschema_description:"Replacement JSON array of action clauses"`
	Active       *bool  `json:"active,omitempty" jsonschema_description:"Activate or deactivate the rule"`
}

// UpdateResult is the result of updating a rule.
type UpdateResult struct {
	Rule Detail `json:"rule"`
}

// DeleteArgs contains parameters for deleting a rule.
type DeleteArgs struct {
	RuleID  string `json:"rule_id" jsonschema:"required" jsonschema_description:"Numeric rule ID"`
	Confirm bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// TestArgs contains parameters for a dry run of one rule.
type TestArgs struct {
	RuleID    string `json:"rule_id" jsonschema:"required" jsonschema_description:"Numeric rule ID"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Only match transactions from this date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"Only match transactions up to this date (YYYY-MM-DD)"`
}

// TriggerArgs contains parameters for applying one rule to existing
// transactions.
type TriggerArgs struct {
	RuleID    string `json:"rule_id" jsonschema:"required" jsonschema_description:"Numeric rule ID"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Only apply to transactions from this date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"Only apply to transactions up to this date (YYYY-MM-DD)"`
	Accounts  string `json:"accounts,omitempty" jsonschema_description:"Comma-separated numeric account IDs to restrict the run"`
}
