// Package objectgroups exposes the Firefly III object group endpoints as MCP
// tool methods. Object groups order bills and piggy banks on the dashboard.
// The backend creates them implicitly when a bill or piggy bank names one,
// so only list, get, update, and delete are exposed.
package objectgroups

import (
	"context"
	"net/url"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/format"
	"github.com/akarpova/firefly-mcp-server/internal/results"
)

// Client provides object group tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates an object groups client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// List lists all object groups.
func (c *Client) List(ctx context.Context, _ ListArgs) (ListResult, error) {
	res, err := firefly.List[Attributes](ctx, c.api, "/object-groups", nil)
	if err != nil {
		return ListResult{}, err
	}
	summaries := make([]Summary, 0, len(res.Data))
	for _, obj := range res.Data {
		summaries = append(summaries, Summary{ID: obj.ID, Title: obj.Attributes.Title, Order: obj.Attributes.Order})
	}
	summaries, truncated := format.Clip(summaries)
	out := ListResult{ObjectGroups: summaries, Count: len(summaries), Truncated: truncated}
	if len(summaries) == 0 {
		out.Message = results.NoneFound("object groups")
	}
	return out, nil
}

// Get fetches one object group by ID.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.ObjectGroupID) {
		return GetResult{}, apierrors.NewRequiredError("object_group_id")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, "/object-groups/"+url.PathEscape(args.ObjectGroupID))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{ObjectGroup: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update changes an object group's title or sort position.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.ObjectGroupID) {
		return UpdateResult{}, apierrors.NewRequiredError("object_group_id")
	}
	if coerce.Blank(args.Title) {
		return UpdateResult{}, apierrors.NewRequiredError("title")
	}
	res, err := firefly.Put[Attributes](ctx, c.api, "/object-groups/"+url.PathEscape(args.ObjectGroupID), updateRequest{
		Title: args.Title,
		Order: args.Order,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{ObjectGroup: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes an object group. Bills and piggy banks in it are detached,
// not deleted.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.ObjectGroupID) {
		return DeleteResult{}, apierrors.NewRequiredError("object_group_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("object group"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/object-groups/"+url.PathEscape(args.ObjectGroupID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.ObjectGroupID), nil
}
