/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package moviecatalog assembles a movie-catalog service around DynamoDB and
the TMDB metadata API.

The module covers the full catalog lifecycle:
  - Ingestion: an arrival object in S3 holds a JSON array of raw records;
    the ingest package fetches and parses it.
  - Enrichment: the enrich package resolves each record against TMDB in
    bounded concurrent batches, attaching genres, watch providers and
    descriptive metadata. Records without a match pass through unchanged.
  - Persistence: the catalog package bulk-writes enriched movies in chunks
    with throttle-aware retry into a single DynamoDB partition.
  - Search: a filter expression compiled from HTTP query parameters drives
    a paginated query over the partition, served by the httpapi package.

The root package wires these layers into a runnable System:

	cfg, _ := config.Load()
	sys, _ := moviecatalog.NewSystem(ctx, cfg, log)
	_ = sys.Extractor.HandleObject(ctx, ingest.Event{Bucket: b, Key: k})
*/
package moviecatalog
