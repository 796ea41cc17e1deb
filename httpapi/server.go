/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package httpapi exposes the catalog search surface over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/suparena/moviecatalog/movie"
)

// MovieSearcher is the search surface the API depends on.
type MovieSearcher interface {
	Search(ctx context.Context, rawQuery map[string]string) ([]movie.Movie, error)
}

// Server routes catalog requests to the searcher.
type Server struct {
	searcher MovieSearcher
	version  string
	log      zerolog.Logger
}

// NewServer constructs a Server.
func NewServer(searcher MovieSearcher, version string, log zerolog.Logger) *Server {
	return &Server{searcher: searcher, version: version, log: log}
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/movies", s.handleMovies)
	r.Get("/healthz", s.handleHealthz)

	return r
}

// handleMovies always answers 200 with a JSON array. A store failure is
// logged and surfaces as an empty result, matching the public contract.
func (s *Server) handleMovies(w http.ResponseWriter, r *http.Request) {
	rawQuery := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			rawQuery[key] = values[0]
		}
	}

	movies, err := s.searcher.Search(r.Context(), rawQuery)
	if err != nil {
		s.log.Error().Err(err).Msg("catalog search failed")
		movies = nil
	}
	if movies == nil {
		movies = []movie.Movie{}
	}

	writeJSON(w, http.StatusOK, movies)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
