/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/suparena/moviecatalog/errors"
)

// DefaultBaseURL is the production TMDB API endpoint.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Genre is one entry of the upstream genre list.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FindResult is one movie matched by an external-id lookup.
type FindResult struct {
	ID         int    `json:"id"`
	Overview   string `json:"overview"`
	GenreIDs   []int  `json:"genre_ids"`
	PosterPath string `json:"poster_path"`
}

type genresResponse struct {
	Genres []Genre `json:"genres"`
}

type findResponse struct {
	MovieResults []FindResult `json:"movie_results"`
}

type providerEntry struct {
	ProviderName string `json:"provider_name"`
}

type regionProviders struct {
	Flatrate []providerEntry `json:"flatrate"`
}

type providersResponse struct {
	Results map[string]regionProviders `json:"results"`
}

// Client talks to the TMDB HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a TMDB client. The API key is required.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.NewValidationError("apiKey", "must not be empty")
	}

	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Genres fetches the full movie genre list.
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var resp genresResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, errors.NewUpstreamError("genre list", err)
	}
	if resp.Genres == nil {
		return nil, errors.NewUpstreamError("genre list", fmt.Errorf("malformed payload: no genres field"))
	}
	return resp.Genres, nil
}

// FindByIMDBID looks a movie up by its IMDB code. A miss returns an empty
// slice, not an error.
func (c *Client) FindByIMDBID(ctx context.Context, code string) ([]FindResult, error) {
	query := url.Values{"external_source": {"imdb_id"}}
	var resp findResponse
	if err := c.get(ctx, "/find/"+url.PathEscape(code), query, &resp); err != nil {
		return nil, errors.NewUpstreamError("find", err)
	}
	return resp.MovieResults, nil
}

// WatchProviders returns the raw US flatrate provider names for a TMDB movie
// id. Callers normalize and dedup the names.
func (c *Client) WatchProviders(ctx context.Context, tmdbID int) ([]string, error) {
	var resp providersResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/watch/providers", tmdbID), nil, &resp); err != nil {
		return nil, errors.NewUpstreamError("watch providers", err)
	}

	us, ok := resp.Results["US"]
	if !ok {
		return nil, nil
	}

	names := make([]string, 0, len(us.Flatrate))
	for _, p := range us.Flatrate {
		names = append(names, p.ProviderName)
	}
	return names, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
