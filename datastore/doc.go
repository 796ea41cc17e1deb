/*
Package datastore defines the core interfaces for the movie catalog's
persistence layer.

The main interface is DataStore[T], which provides generic operations for any
entity type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    BatchPut(ctx context.Context, entities []T) (*storagemodels.BulkWriteResult[T], error)
	    QueryPage(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryPage[T], error)
	    Delete(ctx context.Context, key string) error
	}

BatchWriter and PageQuerier are narrow facets of the same surface: the
persistence loop depends only on BatchPut, the search executor only on
QueryPage. Keeping the facets small keeps both paths mockable.

Implementations:
  - ddb: DynamoDB implementation with support for single-table design
  - mock: In-memory mock implementation for testing

The package uses Go generics to ensure type safety at compile time while
maintaining flexibility for different storage backends.
*/
package datastore
