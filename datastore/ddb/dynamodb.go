/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/moviecatalog/errors"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
// Declared as an interface so tests can substitute a fake client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	BatchWriteItem(ctx context.Context, params *sdk.BatchWriteItemInput, optFns ...func(*sdk.Options)) (*sdk.BatchWriteItemOutput, error)
}

// KeySchema describes how entity fields map onto the table's key attributes.
// IndexMap values are macro patterns expanded against the entity, e.g.
//
//	KeySchema{
//	    PartitionKey: "pk",
//	    SortKey:      "code",
//	    IndexMap: map[string]string{
//	        "pk":   "MOVIE",    // static partition value
//	        "code": "{code}",   // taken from the entity's code attribute
//	    },
//	}
type KeySchema struct {
	PartitionKey string
	SortKey      string
	IndexMap     map[string]string
}

func (k KeySchema) validate() error {
	if k.PartitionKey == "" || k.SortKey == "" {
		return errors.NewValidationError("keySchema", "partition and sort key names are required")
	}
	if _, ok := k.IndexMap[k.PartitionKey]; !ok {
		return errors.ErrNoIndexMap
	}
	if _, ok := k.IndexMap[k.SortKey]; !ok {
		return errors.ErrNoIndexMap
	}
	return nil
}

// DynamodbDataStore implements datastore.DataStore[T] by using AWS DynamoDB
// as the underlying data store.
type DynamodbDataStore[T any] struct {
	client    DynamoDBAPI
	tableName string
	keys      KeySchema
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros fills the key-attribute patterns with values taken from the
// marshaled entity.
func expandMacros(indexMap map[string]string, keysInput any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(keysInput)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keysInput: %w", err)
	}

	res := make(map[string]string, len(indexMap))

	for fieldName, template := range indexMap {
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			// macro is something like "{code}"
			key := strings.Trim(macro, "{}")

			val, ok := av[key]
			if !ok {
				return ""
			}

			switch tv := val.(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				// NULL, binary and set members carry no usable key text
				return ""
			}
		})
		res[fieldName] = expanded
	}

	return res, nil
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are
// optional; when empty the default provider chain is used.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(awsRegion),
	}
	if awsAccessKey != "" && awsSecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T.
// The key schema is passed explicitly; the store keeps no ambient state.
func NewDynamodbDataStore[T any](client DynamoDBAPI, tableName string, keys KeySchema) (*DynamodbDataStore[T], error) {
	if tableName == "" {
		return nil, errors.NewValidationError("tableName", "must not be empty")
	}
	if err := keys.validate(); err != nil {
		return nil, err
	}

	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
		keys:      keys,
	}, nil
}

// TableName returns the table this store writes to.
func (d *DynamodbDataStore[T]) TableName() string {
	return d.tableName
}

// GetOne retrieves a single item from DynamoDB using a string key.
// It returns a pointer to the item of type T, or nil if no item is found.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	expanded := expandStringKey(d.keys.IndexMap, key)

	keyMap, err := d.buildKeyFromExpanded(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		// Not found: return nil, nil
		return nil, nil
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores the given 'entity' in the underlying data store, using the key
// schema macros to populate partition/sort key attributes.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	av, err := d.marshalWithKeys(entity)
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes an item from DynamoDB using a string key.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	expanded := expandStringKey(d.keys.IndexMap, key)

	keyMap, err := d.buildKeyFromExpanded(expanded)
	if err != nil {
		return fmt.Errorf("failed to build key for Delete: %w", err)
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

// marshalWithKeys marshals the entity and overlays the expanded key
// attributes onto the attribute map.
func (d *DynamodbDataStore[T]) marshalWithKeys(entity T) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, err := expandMacros(d.keys.IndexMap, entity)
	if err != nil {
		return nil, err
	}

	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}
	return av, nil
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded index map.
// It requires non-empty values for both key attributes.
func (d *DynamodbDataStore[T]) buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded[d.keys.PartitionKey]
	sk, okSK := expanded[d.keys.SortKey]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded index map missing valid %s or %s", d.keys.PartitionKey, d.keys.SortKey)
	}

	return map[string]types.AttributeValue{
		d.keys.PartitionKey: &types.AttributeValueMemberS{Value: pk},
		d.keys.SortKey:      &types.AttributeValueMemberS{Value: sk},
	}, nil
}

// expandStringKey replaces macro patterns in the indexMap values with the
// provided key. Static patterns (no macro) keep their literal value.
func expandStringKey(indexMap map[string]string, key string) map[string]string {
	expanded := make(map[string]string, len(indexMap))
	for field, template := range indexMap {
		expanded[field] = macroPattern.ReplaceAllString(template, key)
	}
	return expanded
}
