/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"github.com/suparena/moviecatalog/errors"
)

// DefaultChunkSize matches the store's bulk-write ceiling.
const DefaultChunkSize = 25

// Chunk splits items into consecutive slices of at most size elements. The
// last chunk may be shorter. A size of zero or less is rejected.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, errors.NewValidationError("size", "chunk size must be positive")
	}
	if len(items) == 0 {
		return nil, nil
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks, nil
}
