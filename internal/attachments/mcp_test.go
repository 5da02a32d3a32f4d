package attachments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
)

func newStub(t *testing.T, handler http.HandlerFunc) (*atomic.Int32, *Client) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	api := firefly.NewClient(
		firefly.WithHTTPClient(srv.Client()),
		firefly.WithConfig(&firefly.Config{BaseURL: srv.URL + "/api", Token: "t"}),
	)
	return &calls, NewClient(api)
}

func TestCreateRequiresAttachable(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	tests := []CreateArgs{
		{AttachableType: "Bill", AttachableID: "1"},
		{Filename: "receipt.pdf", AttachableID: "1"},
		{Filename: "receipt.pdf", AttachableType: "Bill"},
	}
	for _, args := range tests {
		if _, err := client.Create(context.Background(), args); !apierrors.IsValidation(err) {
			t.Errorf("Create(%+v): expected ValidationError, got %v", args, err)
		}
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestCreateSendsPayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody createRequest
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"data": {"id": "12", "attributes": {"filename": "receipt.pdf", "title": "March receipt", "attachable_type": "TransactionJournal", "attachable_id": "99"}}}`))
	})

	res, err := client.Create(context.Background(), CreateArgs{
		Filename:       "receipt.pdf",
		AttachableType: "TransactionJournal",
		AttachableID:   "99",
		Title:          "March receipt",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/v1/attachments" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotBody.Filename != "receipt.pdf" || gotBody.AttachableType != "TransactionJournal" || gotBody.AttachableID != "99" {
		t.Errorf("body = %+v", gotBody)
	}
	if res.Attachment.ID != "12" || res.Attachment.Filename != "receipt.pdf" {
		t.Errorf("result = %+v", res)
	}
}

func TestDownloadRequiresID(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Download(context.Background(), DownloadArgs{})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestDownloadEncodesContent(t *testing.T) {
	content := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xFF}
	var gotPath string
	_, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(content)
	})

	res, err := client.Download(context.Background(), DownloadArgs{AttachmentID: "12"})
	if err != nil {
		t.Fatalf("Download error: %v", err)
	}
	if gotPath != "/api/v1/attachments/12/download" {
		t.Errorf("path = %q", gotPath)
	}
	if res.Size != int64(len(content)) {
		t.Errorf("size = %d, want %d", res.Size, len(content))
	}
	decoded, err := base64.StdEncoding.DecodeString(res.ContentBase64)
	if err != nil {
		t.Fatalf("content is not valid base64: %v", err)
	}
	if string(decoded) != string(content) {
		t.Errorf("decoded = %v, want %v", decoded, content)
	}
}

func TestUpdateNeedsAtLeastOneField(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Update(context.Background(), UpdateArgs{AttachmentID: "12"})
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	calls, client := newStub(t, func(w http.ResponseWriter, r *http.Request) {})

	res, err := client.Delete(context.Background(), DeleteArgs{AttachmentID: "12"})
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if res.Deleted || res.Warning == "" {
		t.Errorf("unconfirmed delete = %+v", res)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0", calls.Load())
	}
}
