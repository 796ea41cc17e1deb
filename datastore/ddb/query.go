/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/moviecatalog/storagemodels"
)

// QueryPage performs one query page against the DynamoDB table using the
// provided parameters and returns the typed items together with the
// continuation token. The store's own table name is always used, never one
// carried in the params.
func (d *DynamodbDataStore[T]) QueryPage(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryPage[T], error) {
	input := &sdk.QueryInput{
		TableName:                 &d.tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeNames:  params.ExpressionAttributeNames,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
		ScanIndexForward:          params.ScanIndexForward,
	}

	out, err := d.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	items := make([]T, 0, len(out.Items))
	for _, raw := range out.Items {
		var item T
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		items = append(items, item)
	}

	return &storagemodels.QueryPage[T]{
		Items:            items,
		LastEvaluatedKey: out.LastEvaluatedKey,
	}, nil
}
