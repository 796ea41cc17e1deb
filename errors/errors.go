/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrUpstreamUnavailable is returned when the metadata provider cannot be
	// reached or returns a malformed payload. Fatal to the whole ingestion run.
	ErrUpstreamUnavailable = errors.New("metadata provider unavailable")

	// ErrObjectBodyMissing is returned when an arrival object has no usable body.
	// It aborts the single run without persisting anything.
	ErrObjectBodyMissing = errors.New("object body missing or malformed")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrPersistenceThrottled indicates the store rejected part of a bulk write.
	// Recoverable: the rejected subset is resubmitted.
	ErrPersistenceThrottled = errors.New("persistence throttled")

	// ErrPersistenceFatal indicates a bulk write could not be completed within
	// the retry budget.
	ErrPersistenceFatal = errors.New("persistence failed")

	// ErrNoIndexMap is returned when no index map is found for a type
	ErrNoIndexMap = errors.New("no index map found for type")
)

// UpstreamError represents a failed call to the external metadata provider
type UpstreamError struct {
	Operation string
	Cause     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Operation, e.Cause)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// ObjectBodyError represents a missing or unparseable arrival payload
type ObjectBodyError struct {
	Bucket string
	Key    string
	Reason string
}

func (e *ObjectBodyError) Error() string {
	return fmt.Sprintf("object %q in bucket %q unusable: %s", e.Key, e.Bucket, e.Reason)
}

func (e *ObjectBodyError) Is(target error) bool {
	return target == ErrObjectBodyMissing
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// PersistenceError represents an exhausted or escalated bulk-write failure
type PersistenceError struct {
	Attempts  int
	Remaining int
	Cause     error
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bulk write failed after %d attempts with %d items unresolved: %v",
			e.Attempts, e.Remaining, e.Cause)
	}
	return fmt.Sprintf("bulk write failed after %d attempts with %d items unresolved",
		e.Attempts, e.Remaining)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistenceFatal
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// Helper functions for creating errors

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(operation string, cause error) error {
	return &UpstreamError{Operation: operation, Cause: cause}
}

// NewObjectBodyError creates a new ObjectBodyError
func NewObjectBodyError(bucket, key, reason string) error {
	return &ObjectBodyError{Bucket: bucket, Key: key, Reason: reason}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(attempts, remaining int, cause error) error {
	return &PersistenceError{Attempts: attempts, Remaining: remaining, Cause: cause}
}

// IsUpstreamUnavailable checks if an error is an upstream availability error
func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}

// IsObjectBodyMissing checks if an error is a missing arrival payload error
func IsObjectBodyMissing(err error) bool {
	return errors.Is(err, ErrObjectBodyMissing)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsPersistenceFatal checks if an error is a fatal persistence error
func IsPersistenceFatal(err error) bool {
	return errors.Is(err, ErrPersistenceFatal)
}
