package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flintapp/flint-cli/internal/models"
)

// contentSearchItem is the backend's search result shape. The catalog keys
// items by numeric id; the client re-keys them as opaque strings.
type contentSearchItem struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	PosterURL string `json:"posterUrl"`
	Year      int    `json:"year"`
}

type contentSearchResponse struct {
	Contents []contentSearchItem `json:"contents"`
}

// SearchContents performs a catalog keyword search and maps the results to
// [models.ContentRef]. Calls are throttled by the client's rate limiter so
// keystroke-driven searches cannot hammer the backend.
func (c *Client) SearchContents(ctx context.Context, keyword string) ([]models.ContentRef, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	params.Set("keyword", keyword)

	var resp contentSearchResponse
	if err := c.doRequest(ctx, http.MethodGet, "/search/contents?"+params.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	contents := make([]models.ContentRef, 0, len(resp.Contents))
	for _, item := range resp.Contents {
		contents = append(contents, models.ContentRef{
			ContentID: strconv.Itoa(item.ID),
			Title:     item.Title,
			ImageURL:  item.PosterURL,
			Year:      item.Year,
			Author:    item.Author,
		})
	}

	return contents, nil
}
