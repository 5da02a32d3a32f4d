package objectgroups

import "github.com/akarpova/firefly-mcp-server/internal/results"

// ListArgs contains parameters for listing object groups.
type ListArgs struct{}

// ListResult is the result of listing object groups.
type ListResult struct {
	ObjectGroups []Summary `json:"object_groups"`
	Count        int       `json:"count"`
	Truncated    bool      `json:"truncated,omitempty"`
	Message      string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one object group.
type GetArgs struct {
	ObjectGroupID string `json:"object_group_id" jsonschema:"required" jsonschema_description:"Numeric object group ID"`
}

// GetResult is the result of fetching one object group.
type GetResult struct {
	ObjectGroup Detail `json:"object_group"`
}

// UpdateArgs contains parameters for updating an object group.
type UpdateArgs struct {
	ObjectGroupID string `json:"object_group_id" jsonschema:"required" jsonschema_description:"Numeric object group ID"`
	Title         string `json:"title" jsonschema:"required" jsonschema_description:"New title"`
	Order         int    `json:"order,omitempty" jsonschema_description:"New sort position (1-based)"`
}

// UpdateResult is the result of updating an object group.
type UpdateResult struct {
	ObjectGroup Detail `json:"object_group"`
}

// DeleteArgs contains parameters for deleting an object group.
type DeleteArgs struct {
	ObjectGroupID string `json:"object_group_id" jsonschema:"required" jsonschema_description:"Numeric object group ID"`
	Confirm       bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion
