package links

import "github.com/akarpova/firefly-mcp-server/internal/results"

// ListTypesArgs contains parameters for listing link types.
type ListTypesArgs struct{}

// ListTypesResult is the result of listing link types.
type ListTypesResult struct {
	LinkTypes []LinkType `json:"link_types"`
	Count     int        `json:"count"`
	Message   string     `json:"message,omitempty"`
}

// GetTypeArgs contains parameters for fetching one link type.
type GetTypeArgs struct {
	LinkTypeID string `json:"link_type_id" jsonschema:"required" jsonschema_description:"Numeric link type ID"`
}

// GetTypeResult is the result of fetching one link type.
type GetTypeResult struct {
	LinkType LinkType `json:"link_type"`
}

// CreateTypeArgs contains parameters for creating a link type.
type CreateTypeArgs struct {
	Name    string `json:"name" jsonschema:"required" jsonschema_description:"Link type name"`
	Inward  string `json:"inward" jsonschema:"required" jsonschema_description:"Inward description, e.g. 'is paid by'"`
	Outward string `json:"outward" jsonschema:"required" jsonschema_description:"Outward description, e.g. 'pays for'"`
}

// CreateTypeResult is the result of creating a link type.
type CreateTypeResult struct {
	LinkType LinkType `json:"link_type"`
}

// UpdateTypeArgs contains parameters for updating a link type. At least one
// optional field must be supplied. Built-in link types are not editable.
type UpdateTypeArgs struct {
	LinkTypeID string `json:"link_type_id" jsonschema:"required" jsonschema_description:"Numeric link type ID"`
	Name       string `json:"name,omitempty" jsonschema_description:"New name"`
	Inward     string `json:"inward,omitempty" jsonschema_description:"New inward description"`
	Outward    string `json:"outward,omitempty" jsonschema_description:"New outward description"`
}

// UpdateTypeResult is the result of updating a link type.
type UpdateTypeResult struct {
	LinkType LinkType `json:"link_type"`
}

// DeleteTypeArgs contains parameters for deleting a link type.
type DeleteTypeArgs struct {
	LinkTypeID string `json:"link_type_id" jsonschema:"required" jsonschema_description:"Numeric link type ID"`
	Confirm    bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// ListLinksArgs contains parameters for listing transaction links.
type ListLinksArgs struct {
	LinkTypeID string `json:"link_type_id,omitempty" jsonschema_description:"Restrict to one link type"`
}

// ListLinksResult is the result of listing transaction links.
type ListLinksResult struct {
	Links   []Link `json:"links"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// GetLinkArgs contains parameters for fetching one transaction link.
type GetLinkArgs struct {
	LinkID string `json:"link_id" jsonschema:"required" jsonschema_description:"Numeric transaction link ID"`
}

// GetLinkResult is the result of fetching one transaction link.
type GetLinkResult struct {
	Link Link `json:"link"`
}

// CreateLinkArgs contains parameters for linking two transaction journals.
type CreateLinkArgs struct {
	LinkTypeID string `json:"link_type_id" jsonschema:"required" jsonschema_description:"Numeric link type ID"`
	InwardID   string `json:"inward_id" jsonschema:"required" jsonschema_description:"Inward transaction journal ID"`
	OutwardID  string `json:"outward_id" jsonschema:"required" jsonschema_description:"Outward transaction journal ID"`
	Notes      string `json:"notes,omitempty" jsonschema_description:"Free-form notes"`
}

// CreateLinkResult is the result of creating a transaction link.
type CreateLinkResult struct {
	Link Link `json:"link"`
}

// UpdateLinkArgs contains parameters for updating a transaction link. At
// least one optional field must be supplied.
type UpdateLinkArgs struct {
	LinkID     string `json:"link_id" jsonschema:"required" jsonschema_description:"Numeric transaction link ID"`
	LinkTypeID string `json:"link_type_id,omitempty" jsonschema_description:"New link type ID"`
	InwardID   string `json:"inward_id,omitempty" jsonschema_description:"New inward journal ID"`
	OutwardID  string `json:"outward_id,omitempty" jsonschema_description:"New outward journal ID"`
	Notes      string `json:"notes,omitempty" jsonschema_description:"New notes"`
}

// UpdateLinkResult is the result of updating a transaction link.
type UpdateLinkResult struct {
	Link Link `json:"link"`
}

// DeleteLinkArgs contains parameters for deleting a transaction link.
type DeleteLinkArgs struct {
	LinkID  string `json:"link_id" jsonschema:"required" jsonschema_description:"Numeric transaction link ID"`
	Confirm bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}
