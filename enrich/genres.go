/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package enrich

import (
	"context"
	"sync"

	"github.com/suparena/moviecatalog/tmdb"
)

// MetadataClient is the provider surface consumed by the enrichment pipeline.
// *tmdb.Client implements it.
type MetadataClient interface {
	Genres(ctx context.Context) ([]tmdb.Genre, error)
	FindByIMDBID(ctx context.Context, code string) ([]tmdb.FindResult, error)
	WatchProviders(ctx context.Context, tmdbID int) ([]string, error)
}

// GenreCache resolves genre ids to display names with a single upstream call,
// memoized for the lifetime of one enrichment run.
type GenreCache struct {
	client MetadataClient

	once   sync.Once
	genres map[int]string
	err    error
}

// NewGenreCache creates a cache bound to one pipeline run.
func NewGenreCache(client MetadataClient) *GenreCache {
	return &GenreCache{client: client}
}

// Resolve returns the id-to-name mapping. The upstream call happens at most
// once; a failure is fatal to the run and is returned on every subsequent
// call as well.
func (g *GenreCache) Resolve(ctx context.Context) (map[int]string, error) {
	g.once.Do(func() {
		genres, err := g.client.Genres(ctx)
		if err != nil {
			g.err = err
			return
		}

		mapping := make(map[int]string, len(genres))
		for _, genre := range genres {
			mapping[genre.ID] = genre.Name
		}
		g.genres = mapping
	})

	return g.genres, g.err
}
