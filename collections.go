package zeroentropy

import (
	"context"
	"fmt"

	"github.com/zeroentropy/client-go/internal/api"
	"github.com/zeroentropy/client-go/internal/apierrors"
)

// CollectionsService manages the account's named collections.
type CollectionsService struct {
	api *api.Client
}

// Add creates a collection. Adding a name that already exists fails with
// ErrCollectionAlreadyExists.
func (s *CollectionsService) Add(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("collection name must not be empty")
	}

	body := struct {
		CollectionName string `json:"collection_name"`
	}{name}

	err := s.api.Post(ctx, "/collections/add-collection", body, nil)
	return apierrors.WithResource(err, apierrors.ResourceCollection)
}

// List returns the names of all collections.
func (s *CollectionsService) List(ctx context.Context) ([]string, error) {
	var out struct {
		Collections []string `json:"collections"`
	}

	err := s.api.Post(ctx, "/collections/get-collection-list", struct{}{}, &out)
	if err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceCollection)
	}
	return out.Collections, nil
}

// Delete removes a collection and every document in it. Deleting a name
// that does not exist fails with ErrCollectionNotFound.
func (s *CollectionsService) Delete(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("collection name must not be empty")
	}

	body := struct {
		CollectionName string `json:"collection_name"`
	}{name}

	err := s.api.Post(ctx, "/collections/delete-collection", body, nil)
	return apierrors.WithResource(err, apierrors.ResourceCollection)
}
