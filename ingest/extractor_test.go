/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/moviecatalog/catalog"
	"github.com/suparena/moviecatalog/datastore/mock"
	"github.com/suparena/moviecatalog/enrich"
	"github.com/suparena/moviecatalog/errors"
	"github.com/suparena/moviecatalog/movie"
	"github.com/suparena/moviecatalog/storagemodels"
	"github.com/suparena/moviecatalog/tmdb"
)

type fakeObjects struct {
	body []byte
	err  error
}

func (f *fakeObjects) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.body))}, nil
}

type fakePipeline struct {
	movies []movie.Movie
	err    error
	got    []movie.Record
}

func (f *fakePipeline) Process(ctx context.Context, records []movie.Record) ([]movie.Movie, error) {
	f.got = records
	return f.movies, f.err
}

type fakeSaver struct {
	saved []movie.Movie
	err   error
}

func (f *fakeSaver) Save(ctx context.Context, movies []movie.Movie) error {
	f.saved = movies
	return f.err
}

// emptyMetadata is a metadata provider with no matches at all.
type emptyMetadata struct{}

func (emptyMetadata) Genres(ctx context.Context) ([]tmdb.Genre, error) {
	return []tmdb.Genre{}, nil
}

func (emptyMetadata) FindByIMDBID(ctx context.Context, code string) ([]tmdb.FindResult, error) {
	return nil, nil
}

func (emptyMetadata) WatchProviders(ctx context.Context, tmdbID int) ([]string, error) {
	return nil, nil
}

func TestHandleObject(t *testing.T) {
	ctx := context.Background()
	ev := Event{Bucket: "arrivals", Key: "records.json"}

	t.Run("FetchParseEnrichPersist", func(t *testing.T) {
		objects := &fakeObjects{body: []byte(`[{"code":"tt001","title":"A","year":2020}]`)}
		pipeline := &fakePipeline{movies: []movie.Movie{{Code: "tt001", Title: "A", Year: 2020}}}
		saver := &fakeSaver{}
		extractor := NewExtractor(objects, pipeline, saver, zerolog.Nop())

		require.NoError(t, extractor.HandleObject(ctx, ev))
		require.Len(t, pipeline.got, 1)
		assert.Equal(t, "tt001", pipeline.got[0].Code)
		require.Len(t, saver.saved, 1)
		assert.Equal(t, "tt001", saver.saved[0].Code)
	})

	t.Run("FetchFailureAbortsRun", func(t *testing.T) {
		objects := &fakeObjects{err: fmt.Errorf("no such key")}
		saver := &fakeSaver{}
		extractor := NewExtractor(objects, &fakePipeline{}, saver, zerolog.Nop())

		err := extractor.HandleObject(ctx, ev)
		assert.True(t, errors.IsObjectBodyMissing(err))
		assert.Nil(t, saver.saved)
	})

	t.Run("EmptyBodyAbortsRun", func(t *testing.T) {
		extractor := NewExtractor(&fakeObjects{}, &fakePipeline{}, &fakeSaver{}, zerolog.Nop())

		err := extractor.HandleObject(ctx, ev)
		assert.True(t, errors.IsObjectBodyMissing(err))
	})

	t.Run("MalformedBodyAbortsRun", func(t *testing.T) {
		objects := &fakeObjects{body: []byte(`{"not":"an array"}`)}
		extractor := NewExtractor(objects, &fakePipeline{}, &fakeSaver{}, zerolog.Nop())

		err := extractor.HandleObject(ctx, ev)
		assert.True(t, errors.IsObjectBodyMissing(err))
	})

	t.Run("EmptyArrayAbortsRun", func(t *testing.T) {
		objects := &fakeObjects{body: []byte(`[]`)}
		extractor := NewExtractor(objects, &fakePipeline{}, &fakeSaver{}, zerolog.Nop())

		err := extractor.HandleObject(ctx, ev)
		assert.True(t, errors.IsObjectBodyMissing(err))
	})

	t.Run("PipelineErrorPropagates", func(t *testing.T) {
		objects := &fakeObjects{body: []byte(`[{"code":"tt001"}]`)}
		pipeline := &fakePipeline{err: errors.NewUpstreamError("genre list", fmt.Errorf("boom"))}
		saver := &fakeSaver{}
		extractor := NewExtractor(objects, pipeline, saver, zerolog.Nop())

		err := extractor.HandleObject(ctx, ev)
		assert.True(t, errors.IsUpstreamUnavailable(err))
		assert.Nil(t, saver.saved)
	})

	t.Run("SaverErrorPropagates", func(t *testing.T) {
		objects := &fakeObjects{body: []byte(`[{"code":"tt001"}]`)}
		pipeline := &fakePipeline{movies: []movie.Movie{{Code: "tt001"}}}
		saver := &fakeSaver{err: errors.NewPersistenceError(8, 1, nil)}
		extractor := NewExtractor(objects, pipeline, saver, zerolog.Nop())

		err := extractor.HandleObject(ctx, ev)
		assert.True(t, errors.IsPersistenceFatal(err))
	})
}

// TestIngestionEndToEnd wires the real pipeline, saver and searcher over a
// fake provider and an in-memory store: a record with no metadata match is
// still persisted and comes back from a title search.
func TestIngestionEndToEnd(t *testing.T) {
	ctx := context.Background()

	store := mock.New[movie.Movie]().WithGetKeyFunc(func(m movie.Movie) string { return m.Code })
	store.WithQueryPageFunc(func(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryPage[movie.Movie], error) {
		// Apply the contains(title) filter clause the way the real store would.
		needle := ""
		if params.FilterExpression != nil {
			if v, ok := params.ExpressionAttributeValues[":v0"].(*types.AttributeValueMemberS); ok {
				needle = v.Value
			}
		}
		var items []movie.Movie
		for _, m := range store.All() {
			if needle == "" || strings.Contains(m.Title, needle) {
				items = append(items, m)
			}
		}
		return &storagemodels.QueryPage[movie.Movie]{Items: items}, nil
	})

	pipeline := enrich.NewPipeline(emptyMetadata{}, zerolog.Nop())
	saver := catalog.NewSaver(store, zerolog.Nop(),
		catalog.WithRateInterval(0), catalog.WithBackoffBase(time.Millisecond))
	searcher := catalog.NewSearcher(store, zerolog.Nop())

	objects := &fakeObjects{body: []byte(
		`[{"code":"tt0000001","title":"Obscure Short","year":1894,"rating":5.4,"votes":120}]`)}
	extractor := NewExtractor(objects, pipeline, saver, zerolog.Nop())

	require.NoError(t, extractor.HandleObject(ctx, Event{Bucket: "arrivals", Key: "batch.json"}))

	// The unmatched record persisted without enrichment fields.
	stored := store.All()
	require.Len(t, stored, 1)
	assert.Empty(t, stored[0].Genres)
	assert.Zero(t, stored[0].TmdbID)
	require.NotNil(t, stored[0].IngestedAt)

	// And it is reachable through a title search.
	found, err := searcher.Search(ctx, map[string]string{"searchText": "Obscure"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "tt0000001", found[0].Code)

	// A non-matching search excludes it.
	none, err := searcher.Search(ctx, map[string]string{"searchText": "Matrix"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
