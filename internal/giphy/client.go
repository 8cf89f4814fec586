// Package giphy implements the client for the Giphy search endpoint.
package giphy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gifgrip/internal/config"
	"gifgrip/internal/domain"
)

const searchPath = "/v1/gifs/search"

// Searcher is the interface the UI depends on for issuing searches
type Searcher interface {
	Search(ctx context.Context, query string, rating domain.Rating) ([]domain.ResultItem, error)
}

// Client talks to the Giphy REST API
type Client struct {
	baseURL string
	apiKey  string
	limit   int
	lang    string
	httpc   *http.Client
}

// NewClient creates a client from the application configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limit:   cfg.Limit,
		lang:    cfg.Lang,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithHTTP creates a client with an explicit HTTP client, used by tests
func NewClientWithHTTP(cfg *config.Config, httpc *http.Client) *Client {
	c := NewClient(cfg)
	if httpc != nil {
		c.httpc = httpc
	}
	return c
}

// Search issues a single GET against the search endpoint. One call, one
// request: no retries and no internal caching. The query is expected to be
// trimmed by the caller; it is passed through verbatim.
func (c *Client) Search(ctx context.Context, query string, rating domain.Rating) ([]domain.ResultItem, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(c.limit))
	q.Set("rating", string(rating))
	q.Set("lang", c.lang)

	reqURL := c.baseURL + searchPath + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search failed: %s", resp.Status)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	// A missing or empty data field is a valid empty result set
	items := make([]domain.ResultItem, 0, len(body.Data))
	for _, g := range body.Data {
		items = append(items, domain.ResultItem{
			ID:       g.ID,
			Title:    g.Title,
			PageURL:  g.URL,
			Thumb:    g.Images.FixedWidth.toDomain(),
			Original: g.Images.Original.toDomain(),
		})
	}

	return items, nil
}

// Wire format. Giphy sends image dimensions as strings.

type searchResponse struct {
	Data []gifObject `json:"data"`
}

type gifObject struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	URL    string   `json:"url"`
	Images imageSet `json:"images"`
}

type imageSet struct {
	FixedWidth imageFile `json:"fixed_width"`
	Original   imageFile `json:"original"`
}

type imageFile struct {
	URL    string `json:"url"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

func (f imageFile) toDomain() domain.ImageFile {
	w, _ := strconv.Atoi(f.Width)
	h, _ := strconv.Atoi(f.Height)
	return domain.ImageFile{URL: f.URL, Width: w, Height: h}
}
