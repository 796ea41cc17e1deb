/*
Package storagemodels defines the data structures shared by the movie
catalog's persistence layer and its callers.

Key Types:

QueryParams:
Parameters for querying the datastore:

	params := &storagemodels.QueryParams{
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "MOVIE"},
	    },
	    FilterExpression: aws.String("contains(#title, :v0)"),
	}

QueryPage:
One page of typed results plus the continuation token. Callers loop until
HasMore() reports false:

	for {
	    page, err := store.QueryPage(ctx, params)
	    ...
	    if !page.HasMore() {
	        break
	    }
	    params.ExclusiveStartKey = page.LastEvaluatedKey
	}

BulkWriteResult:
Typed outcome of a bulk write. Rejected holds the items the store did not
persist; the persistence loop resubmits exactly that subset.
*/
package storagemodels
