/*
Package enrich augments raw catalog records with metadata from the external
movie-information provider.

The pipeline resolves the genre id-to-name mapping once per run, then
processes records in fixed-size concurrent batches (20 by default), waiting
for each batch to settle before the next starts. That bounds the load put on
the upstream provider.

Failure handling is deliberately asymmetric: a genre-list failure aborts the
whole run, while a per-record lookup failure or miss degrades that single
record to its unenriched form and leaves its siblings untouched.

	pipeline := enrich.NewPipeline(tmdbClient, logger)
	movies, err := pipeline.Process(ctx, records)
	// len(movies) == len(records), always
*/
package enrich
