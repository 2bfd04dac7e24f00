package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flintapp/flint-cli/internal/models"
)

// createCollectionResponse carries the id of the newly created collection.
type createCollectionResponse struct {
	CollectionID string `json:"collectionId"`
}

// CreateCollection submits a finalized draft payload. Returns the created
// collection id. Creation is not idempotent; callers submit exactly once.
func (c *Client) CreateCollection(ctx context.Context, req models.CreateCollectionRequest) (string, error) {
	var resp createCollectionResponse
	if err := c.doRequest(ctx, http.MethodPost, "/collections", req, &resp); err != nil {
		return "", err
	}
	return resp.CollectionID, nil
}

// ListCollections fetches one page of the collection listing.
// An empty cursor requests the first page; size defaults to 10.
func (c *Client) ListCollections(ctx context.Context, cursor string, size int) (*models.CollectionPage, error) {
	if size <= 0 {
		size = 10
	}

	params := url.Values{}
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	params.Set("size", strconv.Itoa(size))

	var page models.CollectionPage
	if err := c.doRequest(ctx, http.MethodGet, "/collections?"+params.Encode(), nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetCollection fetches a single collection by id.
func (c *Client) GetCollection(ctx context.Context, collectionID string) (*models.Collection, error) {
	var collection models.Collection
	if err := c.doRequest(ctx, http.MethodGet, "/collections/"+url.PathEscape(collectionID), nil, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}
