/*
Package tmdb is the client for the external movie-information provider.

Three operations are consumed by the enrichment pipeline:

	genres, err := client.Genres(ctx)              // one call per run
	matches, err := client.FindByIMDBID(ctx, code) // first element used
	names, err := client.WatchProviders(ctx, id)   // US flatrate only

A find miss is an empty slice, not an error. All calls honor the request
context; the default HTTP client carries a 15 second timeout.

NormalizeProviderNames cleans the raw streaming-provider display names
(strips channel/add-on qualifiers) and deduplicates them in first-seen order.
*/
package tmdb
