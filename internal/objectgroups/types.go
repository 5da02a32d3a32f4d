package objectgroups

// Attributes mirrors the Firefly III object group record.
type Attributes struct {
	Title     string `json:"title"`
	Order     int    `json:"order,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// updateRequest is the PUT /object-groups/{id} payload.
type updateRequest struct {
	Title string `json:"title"`
	Order int    `json:"order,omitempty"`
}

// Summary is the compact object group representation used in list results.
type Summary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order,omitempty"`
}

// Detail is the full object group representation for get and update results.
type Detail struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Order     int    `json:"order,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func detailOf(id string, a Attributes) Detail {
	return Detail{
		ID:        id,
		Title:     a.Title,
		Order:     a.Order,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
