/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DataStore
// interface for testing.
package mock

import (
	"context"
	"sync"

	"github.com/suparena/moviecatalog/storagemodels"
)

// DataStore is a mock implementation of datastore.DataStore[T] for testing.
// Entities live in an in-memory map keyed by a caller-supplied key function.
// BatchPut and QueryPage behavior can be overridden per test to exercise
// rejection and pagination paths.
type DataStore[T any] struct {
	mu           sync.RWMutex
	data         map[string]T
	order        []string
	getKeyFunc   func(entity T) string
	batchPutFunc func(ctx context.Context, entities []T) (*storagemodels.BulkWriteResult[T], error)
	queryFunc    func(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryPage[T], error)
	putError     error
	deleteError  error

	batchCalls int
	queryCalls int
}

// New creates a new mock DataStore.
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[string]T),
	}
}

// WithGetKeyFunc sets the function used to extract keys from entities.
func (m *DataStore[T]) WithGetKeyFunc(f func(T) string) *DataStore[T] {
	m.getKeyFunc = f
	return m
}

// WithBatchPutFunc overrides BatchPut for testing rejection behavior.
func (m *DataStore[T]) WithBatchPutFunc(f func(ctx context.Context, entities []T) (*storagemodels.BulkWriteResult[T], error)) *DataStore[T] {
	m.batchPutFunc = f
	return m
}

// WithQueryPageFunc overrides QueryPage for testing pagination behavior.
func (m *DataStore[T]) WithQueryPageFunc(f func(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryPage[T], error)) *DataStore[T] {
	m.queryFunc = f
	return m
}

// WithPutError makes Put fail with the given error.
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// BatchCalls reports how many times BatchPut was invoked.
func (m *DataStore[T]) BatchCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.batchCalls
}

// QueryCalls reports how many times QueryPage was invoked.
func (m *DataStore[T]) QueryCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.queryCalls
}

// All returns every stored entity in insertion order.
func (m *DataStore[T]) All() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.data[k])
	}
	return out
}

func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.data[key]; ok {
		return &v, nil
	}
	return nil, nil
}

func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	if m.putError != nil {
		return m.putError
	}
	m.store(entity)
	return nil
}

func (m *DataStore[T]) BatchPut(ctx context.Context, entities []T) (*storagemodels.BulkWriteResult[T], error) {
	m.mu.Lock()
	m.batchCalls++
	m.mu.Unlock()

	if m.batchPutFunc != nil {
		result, err := m.batchPutFunc(ctx, entities)
		if err != nil {
			return nil, err
		}
		// Persist the accepted subset so end-to-end tests can query it back.
		rejected := make(map[string]bool, len(result.Rejected))
		for _, r := range result.Rejected {
			rejected[m.key(r)] = true
		}
		for _, e := range entities {
			if !rejected[m.key(e)] {
				m.store(e)
			}
		}
		return result, nil
	}

	for _, e := range entities {
		m.store(e)
	}
	return &storagemodels.BulkWriteResult[T]{Accepted: len(entities)}, nil
}

func (m *DataStore[T]) QueryPage(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryPage[T], error) {
	m.mu.Lock()
	m.queryCalls++
	m.mu.Unlock()

	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}

	// Default: a single page holding everything.
	return &storagemodels.QueryPage[T]{Items: m.All()}, nil
}

func (m *DataStore[T]) Delete(ctx context.Context, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *DataStore[T]) store(entity T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.key(entity)
	if _, exists := m.data[k]; !exists {
		m.order = append(m.order, k)
	}
	m.data[k] = entity
}

func (m *DataStore[T]) key(entity T) string {
	if m.getKeyFunc != nil {
		return m.getKeyFunc(entity)
	}
	return ""
}
