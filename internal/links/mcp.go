// Package links exposes the Firefly III link type and transaction link
// endpoints as MCP tool methods.
package links

import (
	"context"
	"net/url"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/results"
)

// Client provides link tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates a links client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// ListTypes lists link types.
func (c *Client) ListTypes(ctx context.Context, _ ListTypesArgs) (ListTypesResult, error) {
	res, err := firefly.List[TypeAttributes](ctx, c.api, "/link-types", nil)
	if err != nil {
		return ListTypesResult{}, err
	}
	types := make([]LinkType, 0, len(res.Data))
	for _, obj := range res.Data {
		types = append(types, typeOf(obj.ID, obj.Attributes))
	}
	out := ListTypesResult{LinkTypes: types, Count: len(types)}
	if len(types) == 0 {
		out.Message = results.NoneFound("link types")
	}
	return out, nil
}

// GetType fetches one link type by ID.
func (c *Client) GetType(ctx context.Context, args GetTypeArgs) (GetTypeResult, error) {
	if coerce.Blank(args.LinkTypeID) {
		return GetTypeResult{}, apierrors.NewRequiredError("link_type_id")
	}
	res, err := firefly.Get[TypeAttributes](ctx, c.api, "/link-types/"+url.PathEscape(args.LinkTypeID))
	if err != nil {
		return GetTypeResult{}, err
	}
	return GetTypeResult{LinkType: typeOf(res.Data.ID, res.Data.Attributes)}, nil
}

// CreateType creates a link type.
func (c *Client) CreateType(ctx context.Context, args CreateTypeArgs) (CreateTypeResult, error) {
	if coerce.Blank(args.Name) {
		return CreateTypeResult{}, apierrors.NewRequiredError("name")
	}
	if coerce.Blank(args.Inward) {
		return CreateTypeResult{}, apierrors.NewRequiredError("inward")
	}
	if coerce.Blank(args.Outward) {
		return CreateTypeResult{}, apierrors.NewRequiredError("outward")
	}
	res, err := firefly.Post[TypeAttributes](ctx, c.api, "/link-types", typeRequest{
		Name:    args.Name,
		Inward:  args.Inward,
		Outward: args.Outward,
	})
	if err != nil {
		return CreateTypeResult{}, err
	}
	return CreateTypeResult{LinkType: typeOf(res.Data.ID, res.Data.Attributes)}, nil
}

// UpdateType applies a partial update to a link type.
func (c *Client) UpdateType(ctx context.Context, args UpdateTypeArgs) (UpdateTypeResult, error) {
	if coerce.Blank(args.LinkTypeID) {
		return UpdateTypeResult{}, apierrors.NewRequiredError("link_type_id")
	}
	if coerce.Blank(args.Name) && coerce.Blank(args.Inward) && coerce.Blank(args.Outward) {
		return UpdateTypeResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	res, err := firefly.Put[TypeAttributes](ctx, c.api, "/link-types/"+url.PathEscape(args.LinkTypeID), typeRequest{
		Name:    args.Name,
		Inward:  args.Inward,
		Outward: args.Outward,
	})
	if err != nil {
		return UpdateTypeResult{}, err
	}
	return UpdateTypeResult{LinkType: typeOf(res.Data.ID, res.Data.Attributes)}, nil
}

// DeleteType removes a link type and the links using it.
func (c *Client) DeleteType(ctx context.Context, args DeleteTypeArgs) (DeleteResult, error) {
	if coerce.Blank(args.LinkTypeID) {
		return DeleteResult{}, apierrors.NewRequiredError("link_type_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("link type and its links"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/link-types/"+url.PathEscape(args.LinkTypeID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.LinkTypeID), nil
}

// ListLinks lists transaction links, optionally restricted to one type.
func (c *Client) ListLinks(ctx context.Context, args ListLinksArgs) (ListLinksResult, error) {
	q := url.Values{}
	if !coerce.Blank(args.LinkTypeID) {
		q.Set("link_type_id", args.LinkTypeID)
	}
	res, err := firefly.List[LinkAttributes](ctx, c.api, "/transaction-links", q)
	if err != nil {
		return ListLinksResult{}, err
	}
	linksOut := make([]Link, 0, len(res.Data))
	for _, obj := range res.Data {
		linksOut = append(linksOut, linkOf(obj.ID, obj.Attributes))
	}
	out := ListLinksResult{Links: linksOut, Count: len(linksOut)}
	if len(linksOut) == 0 {
		out.Message = results.NoneFound("transaction links")
	}
	return out, nil
}

// GetLink fetches one transaction link by ID.
func (c *Client) GetLink(ctx context.Context, args GetLinkArgs) (GetLinkResult, error) {
	if coerce.Blank(args.LinkID) {
		return GetLinkResult{}, apierrors.NewRequiredError("link_id")
	}
	res, err := firefly.Get[LinkAttributes](ctx, c.api, "/transaction-links/"+url.PathEscape(args.LinkID))
	if err != nil {
		return GetLinkResult{}, err
	}
	return GetLinkResult{Link: linkOf(res.Data.ID, res.Data.Attributes)}, nil
}

// CreateLink links two transaction journals.
func (c *Client) CreateLink(ctx context.Context, args CreateLinkArgs) (CreateLinkResult, error) {
	if coerce.Blank(args.LinkTypeID) {
		return CreateLinkResult{}, apierrors.NewRequiredError("link_type_id")
	}
	if coerce.Blank(args.InwardID) {
		return CreateLinkResult{}, apierrors.NewRequiredError("inward_id")
	}
	if coerce.Blank(args.OutwardID) {
		return CreateLinkResult{}, apierrors.NewRequiredError("outward_id")
	}
	res, err := firefly.Post[LinkAttributes](ctx, c.api, "/transaction-links", linkRequest{
		LinkTypeID: args.LinkTypeID,
		InwardID:   args.InwardID,
		OutwardID:  args.OutwardID,
		Notes:      args.Notes,
	})
	if err != nil {
		return CreateLinkResult{}, err
	}
	return CreateLinkResult{Link: linkOf(res.Data.ID, res.Data.Attributes)}, nil
}

// UpdateLink applies a partial update to a transaction link.
func (c *Client) UpdateLink(ctx context.Context, args UpdateLinkArgs) (UpdateLinkResult, error) {
	if coerce.Blank(args.LinkID) {
		return UpdateLinkResult{}, apierrors.NewRequiredError("link_id")
	}
	if coerce.Blank(args.LinkTypeID) && coerce.Blank(args.InwardID) && coerce.Blank(args.OutwardID) && coerce.Blank(args.Notes) {
		return UpdateLinkResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	res, err := firefly.Put[LinkAttributes](ctx, c.api, "/transaction-links/"+url.PathEscape(args.LinkID), linkRequest{
		LinkTypeID: args.LinkTypeID,
		InwardID:   args.InwardID,
		OutwardID:  args.OutwardID,
		Notes:      args.Notes,
	})
	if err != nil {
		return UpdateLinkResult{}, err
	}
	return UpdateLinkResult{Link: linkOf(res.Data.ID, res.Data.Attributes)}, nil
}

// DeleteLink removes a transaction link. The journals survive.
func (c *Client) DeleteLink(ctx context.Context, args DeleteLinkArgs) (DeleteResult, error) {
	if coerce.Blank(args.LinkID) {
		return DeleteResult{}, apierrors.NewRequiredError("link_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("transaction link"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/transaction-links/"+url.PathEscape(args.LinkID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.LinkID), nil
}
