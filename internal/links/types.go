package links

// TypeAttributes mirrors the Firefly III link type record.
type TypeAttributes struct {
	Name     string `json:"name"`
	Inward   string `json:"inward"`
	Outward  string `json:"outward"`
	Editable bool   `json:"editable,omitempty"`
}

// typeRequest is the POST /link-types and PUT /link-types/{id} payload.
type typeRequest struct {
	Name    string `json:"name,omitempty"`
	Inward  string `json:"inward,omitempty"`
	Outward string `json:"outward,omitempty"`
}

// LinkAttributes mirrors the Firefly III transaction link record. Inward and
// outward refer to transaction journal IDs.
type LinkAttributes struct {
	LinkTypeID string `json:"link_type_id"`
	InwardID   string `json:"inward_id"`
	OutwardID  string `json:"outward_id"`
	Notes      string `json:"notes,omitempty"`
}

// linkRequest is the POST /transaction-links and PUT /transaction-links/{id}
// payload.
type linkRequest struct {
	LinkTypeID string `json:"link_type_id,omitempty"`
	InwardID   string `json:"inward_id,omitempty"`
	OutwardID  string `json:"outward_id,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// LinkType is the link type representation in results.
type LinkType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Inward   string `json:"inward"`
	Outward  string `json:"outward"`
	Editable bool   `json:"editable,omitempty"`
}

// Link is the transaction link representation in results.
type Link struct {
	ID         string `json:"id"`
	LinkTypeID string `json:"link_type_id"`
	InwardID   string `json:"inward_id"`
	OutwardID  string `json:"outward_id"`
	Notes      string `json:"notes,omitempty"`
}

func typeOf(id string, a TypeAttributes) LinkType {
	return LinkType{ID: id, Name: a.Name, Inward: a.Inward, Outward: a.Outward, Editable: a.Editable}
}

func linkOf(id string, a LinkAttributes) Link {
	return Link{ID: id, LinkTypeID: a.LinkTypeID, InwardID: a.InwardID, OutwardID: a.OutwardID, Notes: a.Notes}
}
