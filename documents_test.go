package zeroentropy

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

func TestDocuments_Add(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/documents/add-document" {
			t.Errorf("path = %s, want /documents/add-document", r.URL.Path)
		}
		body := decodeBody(t, r)
		if body["collection_name"] != "docs" {
			t.Errorf("collection_name = %v, want docs", body["collection_name"])
		}
		if body["path"] != "notes/a.txt" {
			t.Errorf("path = %v, want notes/a.txt", body["path"])
		}
		if body["overwrite"] != true {
			t.Errorf("overwrite = %v, want true", body["overwrite"])
		}

		content, ok := body["content"].(map[string]interface{})
		if !ok {
			t.Fatalf("content = %v, want object", body["content"])
		}
		if content["type"] != "text" || content["text"] != "hello" {
			t.Errorf("content = %v, want text variant", content)
		}

		metadata, ok := body["metadata"].(map[string]interface{})
		if !ok {
			t.Fatalf("metadata = %v, want object", body["metadata"])
		}
		if metadata["category"] != "news" {
			t.Errorf("metadata.category = %v, want news", metadata["category"])
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "document queued"})
	}))

	err := client.Documents.Add(context.Background(), AddDocumentParams{
		Collection: "docs",
		Path:       "notes/a.txt",
		Content:    TextContent("hello"),
		Metadata:   Metadata{"category": String("news")},
		Overwrite:  true,
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
}

func TestDocuments_Add_OmitsOptionalFields(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		if _, present := body["metadata"]; present {
			t.Error("metadata sent despite being empty")
		}
		if _, present := body["overwrite"]; present {
			t.Error("overwrite sent despite being false")
		}
		w.Write([]byte(`{"message": "ok"}`))
	}))

	err := client.Documents.Add(context.Background(), AddDocumentParams{
		Collection: "docs",
		Path:       "notes/a.txt",
		Content:    TextContent("hello"),
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
}

func TestDocuments_Add_Validation(t *testing.T) {
	var hits int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))

	tests := []struct {
		name   string
		params AddDocumentParams
	}{
		{"empty collection", AddDocumentParams{Path: "a.txt", Content: TextContent("x")}},
		{"empty path", AddDocumentParams{Collection: "docs", Content: TextContent("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.Documents.Add(context.Background(), tt.params); err == nil {
				t.Error("Add() succeeded, want validation error")
			}
		})
	}

	if got := atomic.LoadInt32(&hits); got != 0 {
		t.Errorf("server hits = %d, want 0", got)
	}
}

func TestDocuments_Add_Conflict(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": "document already exists"}`))
	}))

	err := client.Documents.Add(context.Background(), AddDocumentParams{
		Collection: "docs",
		Path:       "notes/a.txt",
		Content:    TextContent("hello"),
	})
	if !errors.Is(err, ErrDocumentAlreadyExists) {
		t.Errorf("Add() error = %v, want ErrDocumentAlreadyExists", err)
	}
}

func TestDocuments_AddText(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		content := body["content"].(map[string]interface{})
		if content["type"] != "text" || content["text"] != "quick note" {
			t.Errorf("content = %v, want text variant", content)
		}
		w.Write([]byte(`{"message": "ok"}`))
	}))

	err := client.Documents.AddText(context.Background(), "docs", "notes/quick.txt", "quick note")
	if err != nil {
		t.Fatalf("AddText() error = %v", err)
	}
}

func TestDocuments_AddFile(t *testing.T) {
	raw := []byte("%PDF-1.4 fake pdf bytes")
	dir := t.TempDir()
	filename := filepath.Join(dir, "report.pdf")
	if err := os.WriteFile(filename, raw, 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		content := body["content"].(map[string]interface{})
		if content["type"] != "auto" {
			t.Errorf("content type = %v, want auto", content["type"])
		}
		if content["base64_data"] != base64.StdEncoding.EncodeToString(raw) {
			t.Errorf("base64_data does not round-trip the file bytes")
		}
		w.Write([]byte(`{"message": "ok"}`))
	}))

	err := client.Documents.AddFile(context.Background(), "docs", "reports/q3.pdf", filename)
	if err != nil {
		t.Fatalf("AddFile() error = %v", err)
	}
}

func TestDocuments_AddFile_MissingFile(t *testing.T) {
	var hits int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))

	err := client.Documents.AddFile(context.Background(), "docs", "x.pdf", "/nonexistent/file.pdf")
	if err == nil || !strings.Contains(err.Error(), "read file") {
		t.Errorf("AddFile() error = %v, want read file failure", err)
	}
	if got := atomic.LoadInt32(&hits); got != 0 {
		t.Errorf("server hits = %d, want 0", got)
	}
}

func TestDocuments_Update(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/documents/update-document" {
			t.Errorf("path = %s, want /documents/update-document", r.URL.Path)
		}
		body := decodeBody(t, r)
		if body["index_status"] != "not_parsed" {
			t.Errorf("index_status = %v, want not_parsed", body["index_status"])
		}
		metadata := body["metadata"].(map[string]interface{})
		if metadata["reviewed"] != "yes" {
			t.Errorf("metadata.reviewed = %v, want yes", metadata["reviewed"])
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "updated"})
	}))

	err := client.Documents.Update(context.Background(), UpdateDocumentParams{
		Collection:  "docs",
		Path:        "notes/a.txt",
		Metadata:    Metadata{"reviewed": String("yes")},
		IndexStatus: IndexStatusNotParsed,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
}

func TestDocuments_Delete(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/documents/delete-document" {
			t.Errorf("path = %s, want /documents/delete-document", r.URL.Path)
		}
		body := decodeBody(t, r)
		if body["collection_name"] != "docs" || body["path"] != "notes/a.txt" {
			t.Errorf("body = %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
	}))

	if err := client.Documents.Delete(context.Background(), "docs", "notes/a.txt"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestDocuments_Delete_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "document not found"}`))
	}))

	err := client.Documents.Delete(context.Background(), "docs", "ghost.txt")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("Delete() error = %v, want ErrDocumentNotFound", err)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false, want true")
	}
}

func TestDocuments_GetInfo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/documents/get-document-info" {
			t.Errorf("path = %s, want /documents/get-document-info", r.URL.Path)
		}
		body := decodeBody(t, r)
		if body["include_content"] != true {
			t.Errorf("include_content = %v, want true", body["include_content"])
		}

		w.Write([]byte(`{
			"document": {
				"path": "notes/a.txt",
				"index_status": "indexed",
				"content": {"type": "text", "text": "parsed"}
			}
		}`))
	}))

	info, err := client.Documents.GetInfo(context.Background(), GetDocumentInfoParams{
		Collection:     "docs",
		Path:           "notes/a.txt",
		IncludeContent: true,
	})
	if err != nil {
		t.Fatalf("GetInfo() error = %v", err)
	}
	if info.Path != "notes/a.txt" {
		t.Errorf("Path = %s, want notes/a.txt", info.Path)
	}
	if info.IndexStatus != IndexStatusIndexed {
		t.Errorf("IndexStatus = %s, want indexed", info.IndexStatus)
	}
	if info.Content == nil || info.Content.Text() != "parsed" {
		t.Errorf("Content = %+v, want parsed text", info.Content)
	}
}

func TestDocuments_GetInfoList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/documents/get-document-info-list" {
			t.Errorf("path = %s, want /documents/get-document-info-list", r.URL.Path)
		}
		body := decodeBody(t, r)
		if body["limit"] != float64(2) {
			t.Errorf("limit = %v, want 2", body["limit"])
		}
		if body["path_gt"] != "notes/a.txt" {
			t.Errorf("path_gt = %v, want notes/a.txt", body["path_gt"])
		}

		w.Write([]byte(`{
			"documents": [
				{"path": "notes/b.txt", "index_status": "indexed"},
				{"path": "notes/c.txt", "index_status": "parsing"}
			]
		}`))
	}))

	docs, err := client.Documents.GetInfoList(context.Background(), GetDocumentInfoListParams{
		Collection: "docs",
		Limit:      2,
		PathGt:     "notes/a.txt",
	})
	if err != nil {
		t.Fatalf("GetInfoList() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("GetInfoList() returned %d documents, want 2", len(docs))
	}
	if docs[0].Path != "notes/b.txt" {
		t.Errorf("docs[0].Path = %s, want notes/b.txt", docs[0].Path)
	}
	if docs[1].IndexStatus != IndexStatusParsing {
		t.Errorf("docs[1].IndexStatus = %s, want parsing", docs[1].IndexStatus)
	}
}

func TestDocuments_GetPageInfo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/documents/get-page-info" {
			t.Errorf("path = %s, want /documents/get-page-info", r.URL.Path)
		}
		data := decodeBody(t, r)
		// Page zero must be serialized, not omitted.
		if v, present := data["page_number"]; !present || v != float64(0) {
			t.Errorf("page_number = %v (present=%v), want 0", v, present)
		}

		w.Write([]byte(`{
			"page": {"path": "reports/q3.pdf", "page_number": 0, "content": "first page text"}
		}`))
	}))

	page, err := client.Documents.GetPageInfo(context.Background(), GetPageInfoParams{
		Collection:     "docs",
		Path:           "reports/q3.pdf",
		PageNumber:     0,
		IncludeContent: true,
	})
	if err != nil {
		t.Fatalf("GetPageInfo() error = %v", err)
	}
	if page.PageNumber != 0 {
		t.Errorf("PageNumber = %d, want 0", page.PageNumber)
	}
	if page.Content == nil || *page.Content != "first page text" {
		t.Errorf("Content = %v, want first page text", page.Content)
	}
}

func TestDocuments_GetPageInfo_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "page not found"}`))
	}))

	_, err := client.Documents.GetPageInfo(context.Background(), GetPageInfoParams{
		Collection: "docs",
		Path:       "reports/q3.pdf",
		PageNumber: 99,
	})
	if !errors.Is(err, ErrPageNotFound) {
		t.Errorf("GetPageInfo() error = %v, want ErrPageNotFound", err)
	}
}

func TestDocuments_GetPageInfo_NegativePage(t *testing.T) {
	var hits int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))

	_, err := client.Documents.GetPageInfo(context.Background(), GetPageInfoParams{
		Collection: "docs",
		Path:       "reports/q3.pdf",
		PageNumber: -1,
	})
	if err == nil {
		t.Error("GetPageInfo() succeeded with negative page, want error")
	}
	if got := atomic.LoadInt32(&hits); got != 0 {
		t.Errorf("server hits = %d, want 0", got)
	}
}
