package attachments

// Attributes mirrors the Firefly III attachment record. The binary content
// itself is never transferred; download_url points at it.
type Attributes struct {
	Filename       string `json:"filename"`
	Title          string `json:"title,omitempty"`
	Notes          string `json:"notes,omitempty"`
	AttachableType string `json:"attachable_type,omitempty"`
	AttachableID   string `json:"attachable_id,omitempty"`
	MIME           string `json:"mime,omitempty"`
	Size           int64  `json:"size,omitempty"`
	DownloadURL    string `json:"download_url,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// createRequest is the POST /attachments payload.
type createRequest struct {
	Filename       string `json:"filename"`
	AttachableType string `json:"attachable_type"`
	AttachableID   string `json:"attachable_id"`
	Title          string `json:"title,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// updateRequest is the PUT /attachments/{id} payload.
type updateRequest struct {
	Filename string `json:"filename,omitempty"`
	Title    string `json:"title,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Summary is the compact attachment representation used in list results.
type Summary struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
	MIME     string `json:"mime,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// Detail is the full attachment representation for get results.
type Detail struct {
	ID             string `json:"id"`
	Filename       string `json:"filename"`
	Title          string `json:"title,omitempty"`
	Notes          string `json:"notes,omitempty"`
	AttachableType string `json:"attachable_type,omitempty"`
	AttachableID   string `json:"attachable_id,omitempty"`
	MIME           string `json:"mime,omitempty"`
	Size           int64  `json:"size,omitempty"`
	DownloadURL    string `json:"download_url,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

func detailOf(id string, a Attributes) Detail {
	return Detail{
		ID:             id,
		Filename:       a.Filename,
		Title:          a.Title,
		Notes:          a.Notes,
		AttachableType: a.AttachableType,
		AttachableID:   a.AttachableID,
		MIME:           a.MIME,
		Size:           a.Size,
		DownloadURL:    a.DownloadURL,
		CreatedAt:      a.CreatedAt,
	}
}
