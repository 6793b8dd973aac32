package zeroentropy

import (
	"context"
	"fmt"
	"os"

	"github.com/zeroentropy/client-go/internal/api"
	"github.com/zeroentropy/client-go/internal/apierrors"
)

// DocumentsService ingests, updates and inspects documents within a
// collection.
type DocumentsService struct {
	api *api.Client
}

// AddDocumentParams are the parameters for Add.
type AddDocumentParams struct {
	// Collection is the target collection name.
	Collection string `json:"collection_name"`
	// Path uniquely identifies the document within the collection.
	Path string `json:"path"`
	// Content is the document body; see TextContent and AutoContent.
	Content Content `json:"content"`
	// Metadata is attached to the document and filterable at query time.
	Metadata Metadata `json:"metadata,omitempty"`
	// Overwrite replaces an existing document at the same path instead
	// of failing with ErrDocumentAlreadyExists.
	Overwrite bool `json:"overwrite,omitempty"`
}

// Add submits a document for parsing and indexing. The call returns once
// the document is accepted; indexing proceeds asynchronously and can be
// observed with GetInfo or WaitUntilIndexed.
func (s *DocumentsService) Add(ctx context.Context, params AddDocumentParams) error {
	if params.Collection == "" {
		return fmt.Errorf("collection name must not be empty")
	}
	if params.Path == "" {
		return fmt.Errorf("document path must not be empty")
	}

	err := s.api.Post(ctx, "/documents/add-document", params, nil)
	return apierrors.WithResource(err, apierrors.ResourceDocument)
}

// AddText submits a plain-text document. It is shorthand for Add with
// TextContent.
func (s *DocumentsService) AddText(ctx context.Context, collection, path, text string) error {
	return s.Add(ctx, AddDocumentParams{
		Collection: collection,
		Path:       path,
		Content:    TextContent(text),
	})
}

// AddFile reads the named file and submits its contents for server-side
// format detection. Use this for PDFs and other binary formats.
func (s *DocumentsService) AddFile(ctx context.Context, collection, path, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	return s.Add(ctx, AddDocumentParams{
		Collection: collection,
		Path:       path,
		Content:    AutoContentBytes(data),
	})
}

// UpdateDocumentParams are the parameters for Update. Zero-valued fields
// are left unchanged on the server.
type UpdateDocumentParams struct {
	Collection string `json:"collection_name"`
	Path       string `json:"path"`
	// Metadata replaces the document's metadata.
	Metadata Metadata `json:"metadata,omitempty"`
	// IndexStatus forces the document into a new indexing state, which
	// can requeue a failed document.
	IndexStatus IndexStatus `json:"index_status,omitempty"`
}

// Update modifies a stored document's metadata or index status.
func (s *DocumentsService) Update(ctx context.Context, params UpdateDocumentParams) error {
	if params.Collection == "" {
		return fmt.Errorf("collection name must not be empty")
	}
	if params.Path == "" {
		return fmt.Errorf("document path must not be empty")
	}

	err := s.api.Post(ctx, "/documents/update-document", params, nil)
	return apierrors.WithResource(err, apierrors.ResourceDocument)
}

// Delete removes a document. Deleting a path that does not exist fails
// with ErrDocumentNotFound.
func (s *DocumentsService) Delete(ctx context.Context, collection, path string) error {
	if collection == "" {
		return fmt.Errorf("collection name must not be empty")
	}
	if path == "" {
		return fmt.Errorf("document path must not be empty")
	}

	body := struct {
		CollectionName string `json:"collection_name"`
		Path           string `json:"path"`
	}{collection, path}

	err := s.api.Post(ctx, "/documents/delete-document", body, nil)
	return apierrors.WithResource(err, apierrors.ResourceDocument)
}

// GetDocumentInfoParams are the parameters for GetInfo.
type GetDocumentInfoParams struct {
	Collection string `json:"collection_name"`
	Path       string `json:"path"`
	// IncludeContent requests the parsed document text.
	IncludeContent bool `json:"include_content,omitempty"`
}

// GetInfo returns a document's metadata and indexing state.
func (s *DocumentsService) GetInfo(ctx context.Context, params GetDocumentInfoParams) (*DocumentInfo, error) {
	if params.Collection == "" {
		return nil, fmt.Errorf("collection name must not be empty")
	}
	if params.Path == "" {
		return nil, fmt.Errorf("document path must not be empty")
	}

	var out struct {
		Document DocumentInfo `json:"document"`
	}
	if err := s.api.Post(ctx, "/documents/get-document-info", params, &out); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceDocument)
	}
	return &out.Document, nil
}

// GetDocumentInfoListParams are the parameters for GetInfoList.
type GetDocumentInfoListParams struct {
	Collection string `json:"collection_name"`
	// Limit caps the page size. The server default is 1024.
	Limit int `json:"limit,omitempty"`
	// PathGt returns only documents with paths strictly greater than
	// this value. Pass the last path of the previous page to paginate.
	PathGt string `json:"path_gt,omitempty"`
}

// GetInfoList returns document descriptions ordered by path. Paginate by
// passing the last returned path as PathGt on the next call; an empty
// result means the listing is complete.
func (s *DocumentsService) GetInfoList(ctx context.Context, params GetDocumentInfoListParams) ([]DocumentInfo, error) {
	if params.Collection == "" {
		return nil, fmt.Errorf("collection name must not be empty")
	}

	var out struct {
		Documents []DocumentInfo `json:"documents"`
	}
	if err := s.api.Post(ctx, "/documents/get-document-info-list", params, &out); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceDocument)
	}
	return out.Documents, nil
}

// GetPageInfoParams are the parameters for GetPageInfo. PageNumber is
// zero-based.
type GetPageInfoParams struct {
	Collection string `json:"collection_name"`
	Path       string `json:"path"`
	PageNumber int    `json:"page_number"`
	// IncludeContent requests the page text.
	IncludeContent bool `json:"include_content,omitempty"`
}

// GetPageInfo returns one page of a parsed document. Requesting a page
// beyond the document's page count fails with ErrPageNotFound.
func (s *DocumentsService) GetPageInfo(ctx context.Context, params GetPageInfoParams) (*PageInfo, error) {
	if params.Collection == "" {
		return nil, fmt.Errorf("collection name must not be empty")
	}
	if params.Path == "" {
		return nil, fmt.Errorf("document path must not be empty")
	}
	if params.PageNumber < 0 {
		return nil, fmt.Errorf("page number must be non-negative, got %d", params.PageNumber)
	}

	var out struct {
		Page PageInfo `json:"page"`
	}
	if err := s.api.Post(ctx, "/documents/get-page-info", params, &out); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourcePage)
	}
	return &out.Page, nil
}
