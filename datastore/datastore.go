/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/moviecatalog/storagemodels"
)

// DataStore is the full persistence surface for entity type T.
type DataStore[T any] interface {
	GetOne(ctx context.Context, key string) (*T, error)

	Put(ctx context.Context, entity T) error

	BatchPut(ctx context.Context, entities []T) (*storagemodels.BulkWriteResult[T], error)

	QueryPage(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryPage[T], error)

	Delete(ctx context.Context, key string) error
}

// BatchWriter is the narrow surface needed by the bulk-persistence loop.
type BatchWriter[T any] interface {
	BatchPut(ctx context.Context, entities []T) (*storagemodels.BulkWriteResult[T], error)
}

// PageQuerier is the narrow surface needed by the paginated query executor.
type PageQuerier[T any] interface {
	QueryPage(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryPage[T], error)
}
