package zeroentropy

import (
	"context"
	"fmt"

	"github.com/zeroentropy/client-go/internal/api"
)

// ModelsService exposes model operations that do not touch stored
// collections.
type ModelsService struct {
	api *api.Client
}

// RerankParams are the parameters for Rerank.
type RerankParams struct {
	// Query is the query to rank documents against.
	Query string `json:"query"`
	// Documents are the candidates to rerank.
	Documents []RerankDocument `json:"documents"`
	// Model names the reranker model. Empty selects the server default.
	Model string `json:"model_id,omitempty"`
	// TopK truncates the results. Zero returns all documents.
	TopK int `json:"top_k,omitempty"`
}

// Rerank reorders candidate documents by relevance to a query. Results
// come back ordered by descending score, each carrying the index of the
// document in the request.
func (s *ModelsService) Rerank(ctx context.Context, params RerankParams) ([]RerankResult, error) {
	if params.Query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}
	if len(params.Documents) == 0 {
		return nil, fmt.Errorf("documents must not be empty")
	}

	var out struct {
		Results []RerankResult `json:"results"`
	}
	if err := s.api.Post(ctx, "/models/rerank", params, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}
