/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package enrich

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/suparena/moviecatalog/movie"
	"github.com/suparena/moviecatalog/tmdb"
)

// Enricher augments single records with external metadata. Every failure is
// isolated to the record being enriched: a miss or a lookup error degrades to
// the unenriched fallback and never aborts sibling records.
type Enricher struct {
	client MetadataClient
	log    zerolog.Logger
}

// NewEnricher creates an Enricher.
func NewEnricher(client MetadataClient, log zerolog.Logger) *Enricher {
	return &Enricher{client: client, log: log}
}

// Enrich looks the record up by its external code and merges the first match.
// genres maps genre ids to display names; unresolved ids are dropped.
func (e *Enricher) Enrich(ctx context.Context, rec movie.Record, genres map[int]string) movie.Movie {
	results, err := e.client.FindByIMDBID(ctx, rec.Code)
	if err != nil {
		e.log.Warn().Err(err).Str("code", rec.Code).Msg("metadata lookup failed, keeping record unenriched")
		return movie.FromRecord(rec)
	}
	if len(results) == 0 {
		e.log.Info().Str("code", rec.Code).Str("title", rec.Title).Msg("no metadata match for record")
		return movie.FromRecord(rec)
	}

	// Only the first match is used; additional matches are discarded.
	match := results[0]

	enriched := movie.FromRecord(rec)
	enriched.TmdbID = match.ID
	enriched.Genres = mapGenres(match.GenreIDs, genres)

	// Raw values take precedence; upstream fills gaps only.
	if enriched.Description == "" {
		enriched.Description = match.Overview
	}
	if enriched.Image == "" {
		enriched.Image = match.PosterPath
	}

	providers, err := e.client.WatchProviders(ctx, match.ID)
	if err != nil {
		e.log.Warn().Err(err).Str("code", rec.Code).Int("tmdbId", match.ID).Msg("provider lookup failed")
	} else {
		enriched.Providers = tmdb.NormalizeProviderNames(providers)
	}

	return enriched
}

func mapGenres(ids []int, genres map[int]string) []string {
	var names []string
	for _, id := range ids {
		if name, ok := genres[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
