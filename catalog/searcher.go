/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/suparena/moviecatalog/datastore"
	"github.com/suparena/moviecatalog/datastore/ddb"
	"github.com/suparena/moviecatalog/filter"
	"github.com/suparena/moviecatalog/movie"
	"github.com/suparena/moviecatalog/storagemodels"
)

// Searcher executes filtered catalog queries, following pagination until the
// partition is exhausted.
type Searcher struct {
	store datastore.PageQuerier[movie.Movie]
	log   zerolog.Logger
}

// NewSearcher constructs a Searcher over the given page querier.
func NewSearcher(store datastore.PageQuerier[movie.Movie], log zerolog.Logger) *Searcher {
	return &Searcher{store: store, log: log}
}

// Search parses rawQuery into a filter, compiles it to a store expression and
// returns every matching movie in storage order. An empty query returns the
// whole catalog.
func (s *Searcher) Search(ctx context.Context, rawQuery map[string]string) ([]movie.Movie, error) {
	tree := filter.Compile(filter.Parse(rawQuery))

	expr, names, values, err := ddb.BuildFilterExpression(tree)
	if err != nil {
		return nil, err
	}

	params := &storagemodels.QueryParams{
		KeyConditionExpression:   "#pk = :pk",
		ExpressionAttributeNames: map[string]string{"#pk": "pk"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: MoviePartition},
		},
	}
	if expr != "" {
		params.FilterExpression = &expr
		for k, v := range names {
			params.ExpressionAttributeNames[k] = v
		}
		for k, v := range values {
			params.ExpressionAttributeValues[k] = v
		}
	}

	var all []movie.Movie
	pages := 0
	for {
		page, err := s.store.QueryPage(ctx, params)
		if err != nil {
			return nil, err
		}
		pages++
		all = append(all, page.Items...)
		if !page.HasMore() {
			break
		}
		params.ExclusiveStartKey = page.LastEvaluatedKey
	}

	s.log.Debug().
		Int("pages", pages).
		Int("matches", len(all)).
		Msg("catalog search complete")
	return all, nil
}
