/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/moviecatalog/errors"
	"github.com/suparena/moviecatalog/storagemodels"
)

// MaxBatchWriteItems is DynamoDB's per-call BatchWriteItem limit.
const MaxBatchWriteItems = 25

// BatchPut submits up to MaxBatchWriteItems entities in a single bulk write.
// The store may persist only a subset; the items it rejected for this table
// come back typed in BulkWriteResult.Rejected and must be resubmitted by the
// caller. A rejected subset is not an error. A failed submit is: throttling
// failures are wrapped with errors.ErrPersistenceThrottled so the caller's
// retry policy can distinguish them.
func (d *DynamodbDataStore[T]) BatchPut(ctx context.Context, entities []T) (*storagemodels.BulkWriteResult[T], error) {
	if len(entities) == 0 {
		return &storagemodels.BulkWriteResult[T]{}, nil
	}
	if len(entities) > MaxBatchWriteItems {
		return nil, errors.NewValidationError("entities",
			fmt.Sprintf("at most %d items per bulk write, got %d", MaxBatchWriteItems, len(entities)))
	}

	writes := make([]types.WriteRequest, 0, len(entities))
	for _, entity := range entities {
		av, err := d.marshalWithKeys(entity)
		if err != nil {
			return nil, err
		}
		writes = append(writes, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}

	out, err := d.client.BatchWriteItem(ctx, &sdk.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{
			d.tableName: writes,
		},
	})
	if err != nil {
		if isThrottleError(err) {
			return nil, fmt.Errorf("batch write throttled: %w", stderrors.Join(errors.ErrPersistenceThrottled, err))
		}
		return nil, fmt.Errorf("batch write failed: %w", err)
	}

	rejected, err := d.extractUnprocessed(out)
	if err != nil {
		return nil, err
	}

	return &storagemodels.BulkWriteResult[T]{
		Accepted: len(entities) - len(rejected),
		Rejected: rejected,
	}, nil
}

// extractUnprocessed pulls exactly the put requests the store rejected for
// this table and converts them back into typed entities.
func (d *DynamodbDataStore[T]) extractUnprocessed(out *sdk.BatchWriteItemOutput) ([]T, error) {
	if out == nil {
		return nil, nil
	}

	requests, ok := out.UnprocessedItems[d.tableName]
	if !ok || len(requests) == 0 {
		return nil, nil
	}

	var rejected []T
	for _, req := range requests {
		if req.PutRequest == nil || req.PutRequest.Item == nil {
			continue
		}
		var entity T
		if err := attributevalue.UnmarshalMap(req.PutRequest.Item, &entity); err != nil {
			return nil, fmt.Errorf("failed to unmarshal unprocessed item: %w", err)
		}
		rejected = append(rejected, entity)
	}
	return rejected, nil
}

// isThrottleError determines if a DynamoDB error is a throughput rejection.
func isThrottleError(err error) bool {
	var throughput *types.ProvisionedThroughputExceededException
	if stderrors.As(err, &throughput) {
		return true
	}
	var requestLimit *types.RequestLimitExceeded
	if stderrors.As(err, &requestLimit) {
		return true
	}

	if awsErr, ok := err.(interface{ IsThrottle() bool }); ok {
		return awsErr.IsThrottle()
	}

	return false
}
