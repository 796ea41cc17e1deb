/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package catalog holds the movie-catalog persistence workflows: chunked bulk
// upserts with throttle-aware retry, and the paginated search executor that
// turns a raw HTTP query into a filtered scan of the movie partition.
package catalog
