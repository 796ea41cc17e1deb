/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/moviecatalog/movie"
)

type stubSearcher struct {
	movies   []movie.Movie
	err      error
	lastRaw  map[string]string
	searches int
}

func (s *stubSearcher) Search(ctx context.Context, rawQuery map[string]string) ([]movie.Movie, error) {
	s.searches++
	s.lastRaw = rawQuery
	return s.movies, s.err
}

func newTestServer(searcher MovieSearcher) http.Handler {
	return NewServer(searcher, "test", zerolog.Nop()).Router()
}

func TestHandleMovies(t *testing.T) {
	t.Run("ReturnsCatalogMatches", func(t *testing.T) {
		searcher := &stubSearcher{movies: []movie.Movie{
			{Code: "tt0133093", Title: "The Matrix", Year: 1999},
		}}
		rec := httptest.NewRecorder()
		newTestServer(searcher).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got []movie.Movie
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "The Matrix", got[0].Title)
	})

	t.Run("ForwardsQueryParameters", func(t *testing.T) {
		searcher := &stubSearcher{}
		req := httptest.NewRequest(http.MethodGet, "/movies?searchText=matrix&rating=7.5&genres=Action,Sci-Fi", nil)
		newTestServer(searcher).ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, map[string]string{
			"searchText": "matrix",
			"rating":     "7.5",
			"genres":     "Action,Sci-Fi",
		}, searcher.lastRaw)
	})

	t.Run("StoreFailureYieldsEmptyArray", func(t *testing.T) {
		searcher := &stubSearcher{err: fmt.Errorf("table not found")}
		rec := httptest.NewRecorder()
		newTestServer(searcher).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("NoMatchesYieldsEmptyArrayNotNull", func(t *testing.T) {
		searcher := &stubSearcher{}
		rec := httptest.NewRecorder()
		newTestServer(searcher).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("CORSPreflightAllowed", func(t *testing.T) {
		searcher := &stubSearcher{}
		req := httptest.NewRequest(http.MethodOptions, "/movies", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		newTestServer(searcher).ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Zero(t, searcher.searches)
	})
}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(&stubSearcher{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}
