package zeroentropy

import (
	"context"
	"fmt"

	"github.com/zeroentropy/client-go/internal/api"
	"github.com/zeroentropy/client-go/internal/apierrors"
)

// QueriesService runs semantic searches against a collection.
type QueriesService struct {
	api *api.Client
}

// TopDocumentsParams are the parameters for TopDocuments.
type TopDocumentsParams struct {
	// Collection is the collection to search.
	Collection string `json:"collection_name"`
	// Query is the natural-language query.
	Query string `json:"query"`
	// K is the number of results to return, at least 1.
	K int `json:"k"`
	// Filter restricts results by document metadata.
	Filter Filter `json:"filter,omitempty"`
	// IncludeMetadata attaches document metadata to each result.
	IncludeMetadata bool `json:"include_metadata,omitempty"`
	// LatencyMode trades latency against quality.
	LatencyMode LatencyMode `json:"latency_mode,omitempty"`
	// Reranker names a reranker model applied to the results.
	Reranker string `json:"reranker,omitempty"`
}

// TopDocuments returns the K documents most relevant to the query,
// ordered by descending score.
func (s *QueriesService) TopDocuments(ctx context.Context, params TopDocumentsParams) ([]DocumentResult, error) {
	if err := validateQuery(params.Collection, params.Query, params.K); err != nil {
		return nil, err
	}

	var out struct {
		Results []DocumentResult `json:"results"`
	}
	if err := s.api.Post(ctx, "/queries/top-documents", params, &out); err != nil {
		// The only entity a query can miss is its collection.
		return nil, apierrors.WithResource(err, apierrors.ResourceCollection)
	}
	return out.Results, nil
}

// TopPagesParams are the parameters for TopPages.
type TopPagesParams struct {
	Collection string `json:"collection_name"`
	Query      string `json:"query"`
	K          int    `json:"k"`
	Filter     Filter `json:"filter,omitempty"`
	// IncludeContent attaches the page text to each result.
	IncludeContent bool        `json:"include_content,omitempty"`
	LatencyMode    LatencyMode `json:"latency_mode,omitempty"`
}

// TopPages returns the K pages most relevant to the query, ordered by
// descending score.
func (s *QueriesService) TopPages(ctx context.Context, params TopPagesParams) ([]PageResult, error) {
	if err := validateQuery(params.Collection, params.Query, params.K); err != nil {
		return nil, err
	}

	var out struct {
		Results []PageResult `json:"results"`
	}
	if err := s.api.Post(ctx, "/queries/top-pages", params, &out); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceCollection)
	}
	return out.Results, nil
}

// TopSnippetsParams are the parameters for TopSnippets.
type TopSnippetsParams struct {
	Collection string `json:"collection_name"`
	Query      string `json:"query"`
	K          int    `json:"k"`
	Filter     Filter `json:"filter,omitempty"`
	// IncludeDocumentMetadata attaches the owning document's metadata to
	// each snippet.
	IncludeDocumentMetadata bool `json:"include_document_metadata,omitempty"`
	// PreciseResponses returns longer snippets, around 2000 characters
	// instead of 200.
	PreciseResponses bool `json:"precise_responses,omitempty"`
	// Reranker names a reranker model applied to the results.
	Reranker string `json:"reranker,omitempty"`
}

// TopSnippets returns the K text snippets most relevant to the query,
// ordered by descending score.
func (s *QueriesService) TopSnippets(ctx context.Context, params TopSnippetsParams) ([]SnippetResult, error) {
	if err := validateQuery(params.Collection, params.Query, params.K); err != nil {
		return nil, err
	}

	var out struct {
		Results []SnippetResult `json:"results"`
	}
	if err := s.api.Post(ctx, "/queries/top-snippets", params, &out); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceCollection)
	}
	return out.Results, nil
}

func validateQuery(collection, query string, k int) error {
	if collection == "" {
		return fmt.Errorf("collection name must not be empty")
	}
	if query == "" {
		return fmt.Errorf("query must not be empty")
	}
	if k < 1 {
		return fmt.Errorf("k must be at least 1, got %d", k)
	}
	return nil
}
