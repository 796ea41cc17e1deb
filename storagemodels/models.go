/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryParams defines parameters for a DynamoDB Query operation.
type QueryParams struct {
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional server-side filter expression.
	FilterExpression *string
	// ExpressionAttributeNames maps placeholder names to attribute names.
	ExpressionAttributeNames map[string]string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit defines an optional limit per query page.
	Limit *int32
	// ExclusiveStartKey is the continuation token from the previous page.
	ExclusiveStartKey map[string]types.AttributeValue
	// ScanIndexForward specifies the order for index traversal.
	// If true (default), traversal is in ascending order.
	ScanIndexForward *bool
}

// QueryPage is one page of typed query results. A non-nil LastEvaluatedKey
// means more results remain and the caller should issue the next query with
// it as ExclusiveStartKey.
type QueryPage[T any] struct {
	Items            []T
	LastEvaluatedKey map[string]types.AttributeValue
}

// HasMore reports whether the store signalled a continuation token.
func (p *QueryPage[T]) HasMore() bool {
	return len(p.LastEvaluatedKey) > 0
}

// BulkWriteResult is the typed outcome of one bulk-write attempt. Rejected
// holds exactly the items the store failed to persist for this table; they
// must be resubmitted by the caller.
type BulkWriteResult[T any] struct {
	Accepted int
	Rejected []T
}
