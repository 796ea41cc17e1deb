/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package moviecatalog

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/suparena/moviecatalog/catalog"
	"github.com/suparena/moviecatalog/config"
	"github.com/suparena/moviecatalog/datastore/ddb"
	"github.com/suparena/moviecatalog/enrich"
	"github.com/suparena/moviecatalog/ingest"
	"github.com/suparena/moviecatalog/movie"
	"github.com/suparena/moviecatalog/tmdb"
)

// System bundles the wired catalog components. Construct one per process.
type System struct {
	Store     *ddb.DynamodbDataStore[movie.Movie]
	Saver     *catalog.Saver
	Searcher  *catalog.Searcher
	Pipeline  *enrich.Pipeline
	Extractor *ingest.Extractor
	TMDB      *tmdb.Client
}

// NewSystem builds every layer from configuration: AWS clients, the movie
// store, the enrichment pipeline and the ingestion extractor.
func NewSystem(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*System, error) {
	ddbClient, err := ddb.NewDynamoDBClient(ctx, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("building DynamoDB client: %w", err)
	}

	store, err := catalog.NewMovieStore(ddbClient, cfg.TableName)
	if err != nil {
		return nil, fmt.Errorf("building movie store: %w", err)
	}

	tmdbClient, err := tmdb.NewClient(cfg.TMDBAPIKey)
	if err != nil {
		return nil, fmt.Errorf("building TMDB client: %w", err)
	}

	s3Client, err := newS3Client(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("building S3 client: %w", err)
	}

	pipeline := enrich.NewPipeline(tmdbClient, log)
	saver := catalog.NewSaver(store, log)
	searcher := catalog.NewSearcher(store, log)
	extractor := ingest.NewExtractor(s3Client, pipeline, saver, log)

	return &System{
		Store:     store,
		Saver:     saver,
		Searcher:  searcher,
		Pipeline:  pipeline,
		Extractor: extractor,
		TMDB:      tmdbClient,
	}, nil
}

func newS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKey != "" && cfg.AWSSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}
