// Package attachments exposes the Firefly III attachment endpoints as MCP
// tool methods. Metadata is managed and stored files can be downloaded;
// uploading binary content is out of scope.
package attachments

import (
	"context"
	"encoding/base64"
	"net/url"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/format"
	"github.com/akarpova/firefly-mcp-server/internal/results"
)

// Client provides attachment tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
}

// NewClient creates an attachments client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api}
}

// List lists all attachments.
func (c *Client) List(ctx context.Context, _ ListArgs) (ListResult, error) {
	res, err := firefly.List[Attributes](ctx, c.api, "/attachments", nil)
	if err != nil {
		return ListResult{}, err
	}
	return ListResultOf(res.Data), nil
}

// Get fetches one attachment by ID.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.AttachmentID) {
		return GetResult{}, apierrors.NewRequiredError("attachment_id")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, "/attachments/"+url.PathEscape(args.AttachmentID))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Attachment: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Create registers a new attachment on an existing object. The record holds
// metadata only; the file content itself is uploaded separately.
func (c *Client) Create(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Filename) {
		return CreateResult{}, apierrors.NewRequiredError("filename")
	}
	if coerce.Blank(args.AttachableType) {
		return CreateResult{}, apierrors.NewRequiredError("attachable_type")
	}
	if coerce.Blank(args.AttachableID) {
		return CreateResult{}, apierrors.NewRequiredError("attachable_id")
	}
	res, err := firefly.Post[Attributes](ctx, c.api, "/attachments", createRequest{
		Filename:       args.Filename,
		AttachableType: args.AttachableType,
		AttachableID:   args.AttachableID,
		Title:          args.Title,
		Notes:          args.Notes,
	})
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Attachment: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update changes attachment metadata.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.AttachmentID) {
		return UpdateResult{}, apierrors.NewRequiredError("attachment_id")
	}
	if coerce.Blank(args.Filename) && coerce.Blank(args.Title) && coerce.Blank(args.Notes) {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	res, err := firefly.Put[Attributes](ctx, c.api, "/attachments/"+url.PathEscape(args.AttachmentID), updateRequest{
		Filename: args.Filename,
		Title:    args.Title,
		Notes:    args.Notes,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Attachment: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes an attachment and its stored file.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.AttachmentID) {
		return DeleteResult{}, apierrors.NewRequiredError("attachment_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("attachment"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/attachments/"+url.PathEscape(args.AttachmentID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.AttachmentID), nil
}

// Download fetches an attachment's stored file. The bytes come back
// base64-encoded so binary content survives the JSON result.
func (c *Client) Download(ctx context.Context, args DownloadArgs) (DownloadResult, error) {
	if coerce.Blank(args.AttachmentID) {
		return DownloadResult{}, apierrors.NewRequiredError("attachment_id")
	}
	raw, _, err := c.api.DoRaw(ctx, "GET", "/v1/attachments/"+url.PathEscape(args.AttachmentID)+"/download", nil)
	if err != nil {
		return DownloadResult{}, err
	}
	return DownloadResult{
		AttachmentID:  args.AttachmentID,
		Size:          int64(len(raw)),
		ContentBase64: base64.StdEncoding.EncodeToString(raw),
	}, nil
}

// ListResultOf shapes attachment records into the shared list result. Shared
// with the packages that list attachments scoped to another entity.
func ListResultOf(data []firefly.Object[Attributes]) ListResult {
	summaries := make([]Summary, 0, len(data))
	for _, obj := range data {
		summaries = append(summaries, Summary{
			ID:       obj.ID,
			Filename: obj.Attributes.Filename,
			Title:    obj.Attributes.Title,
			MIME:     obj.Attributes.MIME,
			Size:     obj.Attributes.Size,
		})
	}
	summaries, truncated := format.Clip(summaries)
	out := ListResult{Attachments: summaries, Count: len(summaries), Truncated: truncated}
	if len(summaries) == 0 {
		out.Message = results.NoneFound("attachments")
	}
	return out
}
