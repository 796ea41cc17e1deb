/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package enrich

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/suparena/moviecatalog/movie"
)

// DefaultBatchSize caps upstream concurrency: at most this many records are
// enriched in flight at once.
const DefaultBatchSize = 20

// Pipeline fans raw records out to the Enricher in bounded-size concurrent
// batches. Batch N+1 does not start until every task of batch N has settled.
type Pipeline struct {
	enricher  *Enricher
	client    MetadataClient
	batchSize int
	log       zerolog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithBatchSize overrides the enrichment batch size.
func WithBatchSize(size int) PipelineOption {
	return func(p *Pipeline) {
		if size > 0 {
			p.batchSize = size
		}
	}
}

// NewPipeline creates an enrichment pipeline.
func NewPipeline(client MetadataClient, log zerolog.Logger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		enricher:  NewEnricher(client, log),
		client:    client,
		batchSize: DefaultBatchSize,
		log:       log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process enriches all records. The output is length-preserving and keeps
// the input order: each concurrent task writes only its own index, and the
// batch settles before the next one starts. The genre mapping is resolved
// once, before any batch; its failure is fatal to the run.
func (p *Pipeline) Process(ctx context.Context, records []movie.Record) ([]movie.Movie, error) {
	genres, err := NewGenreCache(p.client).Resolve(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]movie.Movie, len(records))

	for start := 0; start < len(records); start += p.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := start + p.batchSize
		if end > len(records) {
			end = len(records)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				out[i] = p.enricher.Enrich(gctx, records[i], genres)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		p.log.Debug().Int("from", start).Int("to", end).Msg("enrichment batch settled")
	}

	return out, nil
}
