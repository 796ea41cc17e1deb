/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"github.com/suparena/moviecatalog/datastore/ddb"
	"github.com/suparena/moviecatalog/movie"
)

// MoviePartition is the fixed partition key value shared by every catalog
// record. The table is a single-partition catalog keyed by IMDb code.
const MoviePartition = "MOVIE"

// MovieKeySchema returns the key schema for catalog records: a constant
// partition value and the record's code as sort key.
func MovieKeySchema() ddb.KeySchema {
	return ddb.KeySchema{
		PartitionKey: "pk",
		SortKey:      "code",
		IndexMap: map[string]string{
			"pk":   MoviePartition,
			"code": "{code}",
		},
	}
}

// NewMovieStore constructs a DynamoDB-backed store for movie records.
func NewMovieStore(client ddb.DynamoDBAPI, tableName string) (*ddb.DynamodbDataStore[movie.Movie], error) {
	return ddb.NewDynamodbDataStore[movie.Movie](client, tableName, MovieKeySchema())
}
