package upload

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mockmart/catalog-api/internal/api"
	filesvc "github.com/mockmart/catalog-api/internal/service/file"
)

func multipartBody(t *testing.T, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="files"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestUploadStoresFileAndMetadata(t *testing.T) {
	dir := t.TempDir()
	svc := filesvc.NewMockFileService()
	handler := NewHandler(dir, svc)

	payload := []byte("\x89PNG fake image bytes")
	body, contentType := multipartBody(t, "logo.png", "image/png", payload)

	req := httptest.NewRequest(http.MethodPost, "/files/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var out Response
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(out.Files) != 1 {
		t.Fatalf("expected one uploaded file, got %d", len(out.Files))
	}
	f := out.Files[0]
	if f.ID == "" || f.ContentType != "image/png" || f.Size != int64(len(payload)) {
		t.Fatalf("unexpected upload metadata: %+v", f)
	}
	if !strings.HasPrefix(f.URL, StaticPrefix) || !strings.HasSuffix(f.Filename, ".png") {
		t.Fatalf("expected static URL and png filename, got %+v", f)
	}

	// The response is the bare files object, not the envelope.
	var raw map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &raw); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if _, hasMeta := raw["meta"]; hasMeta {
		t.Fatal("upload response must not carry the envelope")
	}

	stored, err := os.ReadFile(filepath.Join(dir, f.Filename))
	if err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	if !bytes.Equal(stored, payload) {
		t.Fatal("stored bytes differ from upload")
	}

	if _, err := svc.Get(req.Context(), f.ID); err != nil {
		t.Fatalf("expected metadata registered: %v", err)
	}
}

func TestUploadRejectsMissingFilesField(t *testing.T) {
	dir := t.TempDir()
	handler := NewHandler(dir, filesvc.NewMockFileService())

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("other", "value"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/files/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
	var errBody api.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if errBody.Message != "validation.error" {
		t.Fatalf("expected validation.error, got %q", errBody.Message)
	}
	found := false
	for _, d := range errBody.Errors {
		if d.Field == "files" && d.Message == "Field required" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected {files, Field required}, got %+v", errBody.Errors)
	}
}

func TestUploadRejectsUnsupportedContentType(t *testing.T) {
	dir := t.TempDir()
	handler := NewHandler(dir, filesvc.NewMockFileService())

	body, contentType := multipartBody(t, "notes.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/files/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected nothing stored, got %d entries", len(entries))
	}
}

func TestStaticServesUploadedFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pic.jpg"), []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, StaticPrefix+"pic.jpg", nil)
	resp := httptest.NewRecorder()
	Static(dir).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	got, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(got) != "jpeg bytes" {
		t.Fatalf("expected stored bytes, got %q", got)
	}
}
