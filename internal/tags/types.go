package tags

// Attributes mirrors the Firefly III tag record.
type Attributes struct {
	Tag         string `json:"tag"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// tagRequest is the POST /tags and PUT /tags/{tag} payload.
type tagRequest struct {
	Tag         string `json:"tag,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Summary is the compact tag representation used in list results.
type Summary struct {
	ID          string `json:"id"`
	Tag         string `json:"tag"`
	Description string `json:"description,omitempty"`
}

// Detail is the full tag representation for get results.
type Detail struct {
	ID          string `json:"id"`
	Tag         string `json:"tag"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

func detailOf(id string, a Attributes) Detail {
	return Detail{ID: id, Tag: a.Tag, Date: a.Date, Description: a.Description}
}
