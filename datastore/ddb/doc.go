/*
Package ddb provides the DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design with an explicit key schema per store
  - Macro-based key expansion (e.g. "{code}")
  - Bulk writes with typed extraction of rejected items
  - Page-at-a-time queries with continuation tokens
  - Predicate-tree translation into filter expressions

Key Schema:
Key attributes are described by macro patterns expanded against the entity.
The movie catalog stores every movie under one fixed logical partition with
the IMDB code as the sort key:

	keys := ddb.KeySchema{
	    PartitionKey: "pk",
	    SortKey:      "code",
	    IndexMap: map[string]string{
	        "pk":   "MOVIE",
	        "code": "{code}",
	    },
	}
	store, err := ddb.NewDynamodbDataStore[movie.Movie](client, tableName, keys)

Bulk Writes:
BatchPut submits one chunk and reports the rejected subset typed:

	result, err := store.BatchPut(ctx, chunk)
	// result.Rejected must be resubmitted by the caller

Filter Expressions:
BuildFilterExpression turns a compiled filter.Tree into the expression string
and placeholder maps that QueryPage passes through to DynamoDB.
*/
package ddb
