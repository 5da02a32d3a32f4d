package attachments

import "github.com/akarpova/firefly-mcp-server/internal/results"

// ListArgs contains parameters for listing attachments.
type ListArgs struct{}

// ListResult is the result of listing attachments.
type ListResult struct {
	Attachments []Summary `json:"attachments"`
	Count       int       `json:"count"`
	Truncated   bool      `json:"truncated,omitempty"`
	Message     string    `json:"message,omitempty"`
}

// GetArgs contains parameters for fetching one attachment.
type GetArgs struct {
	AttachmentID string `json:"attachment_id" jsonschema:"required" jsonschema_description:"Numeric attachment ID"`
}

// GetResult is the result of fetching one attachment.
type GetResult struct {
	Attachment Detail `json:"attachment"`
}

// CreateArgs contains parameters for registering a new attachment.
type CreateArgs struct {
	Filename       string `json:"filename" jsonschema:"required" jsonschema_description:"Filename of the attachment"`
	AttachableType string `json:"attachable_type" jsonschema:"required" jsonschema_description:"Object type to attach to: TransactionJournal, Bill, Account, PiggyBank, Budget, or Tag"`
	AttachableID   string `json:"attachable_id" jsonschema:"required" jsonschema_description:"Numeric ID of the object to attach to"`
	Title          string `json:"title,omitempty" jsonschema_description:"Title"`
	Notes          string `json:"notes,omitempty" jsonschema_description:"Notes"`
}

// CreateResult is the result of registering an attachment.
type CreateResult struct {
	Attachment Detail `json:"attachment"`
}

// UpdateArgs contains parameters for updating attachment metadata. At least
// one optional field must be supplied.
type UpdateArgs struct {
	AttachmentID string `json:"attachment_id" jsonschema:"required" jsonschema_description:"Numeric attachment ID"`
	Filename     string `json:"filename,omitempty" jsonschema_description:"New filename"`
	Title        string `json:"title,omitempty" jsonschema_description:"New title"`
	Notes        string `json:"notes,omitempty" jsonschema_description:"New notes"`
}

// UpdateResult is the result of updating an attachment.
type UpdateResult struct {
	Attachment Detail `json:"attachment"`
}

// DeleteArgs contains parameters for deleting an attachment.
type DeleteArgs struct {
	AttachmentID string `json:"attachment_id" jsonschema:"required" jsonschema_description:"Numeric attachment ID"`
	Confirm      bool   `json:"confirm,omitempty" jsonschema_description:"Must be true to authorize deletion"`
}

// DeleteResult aliases the shared deletion outcome.
type DeleteResult = results.Deletion

// DownloadArgs contains parameters for downloading an attachment's file.
type DownloadArgs struct {
	AttachmentID string `json:"attachment_id" jsonschema:"required" jsonschema_description:"Numeric attachment ID"`
}

// DownloadResult carries the downloaded file, base64-encoded.
type DownloadResult struct {
	AttachmentID  string `json:"attachment_id"`
	Size          int64  `json:"size"`
	ContentBase64 string `json:"content_base64"`
}
