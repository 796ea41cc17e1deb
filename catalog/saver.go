/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/suparena/moviecatalog/datastore"
	"github.com/suparena/moviecatalog/errors"
	"github.com/suparena/moviecatalog/movie"
)

const (
	// DefaultMaxAttempts bounds the resubmission loop for a single chunk.
	DefaultMaxAttempts = 8

	// DefaultRateInterval is the minimum spacing between bulk submits.
	DefaultRateInterval = time.Second

	// DefaultBackoffBase is the first retry delay; it doubles per attempt.
	DefaultBackoffBase = time.Second

	// maxConsecutiveFailures is how many non-throttle submit errors in a row
	// the loop tolerates before escalating.
	maxConsecutiveFailures = 3
)

// Saver persists enriched movies in bounded chunks, resubmitting rejected
// items with exponential backoff until they are accepted or the attempt
// budget runs out.
type Saver struct {
	store       datastore.BatchWriter[movie.Movie]
	limiter     *rate.Limiter
	chunkSize   int
	maxAttempts int
	backoffBase time.Duration
	now         func() time.Time
	log         zerolog.Logger
}

// SaverOption customizes a Saver.
type SaverOption func(*Saver)

// WithChunkSize overrides the bulk chunk size.
func WithChunkSize(size int) SaverOption {
	return func(s *Saver) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithRateInterval overrides the minimum spacing between submits. An interval
// of zero disables pacing.
func WithRateInterval(interval time.Duration) SaverOption {
	return func(s *Saver) {
		s.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

// WithMaxAttempts overrides the per-chunk attempt budget.
func WithMaxAttempts(attempts int) SaverOption {
	return func(s *Saver) {
		if attempts > 0 {
			s.maxAttempts = attempts
		}
	}
}

// WithBackoffBase overrides the initial retry delay.
func WithBackoffBase(base time.Duration) SaverOption {
	return func(s *Saver) {
		s.backoffBase = base
	}
}

// NewSaver constructs a Saver over the given batch writer.
func NewSaver(store datastore.BatchWriter[movie.Movie], log zerolog.Logger, opts ...SaverOption) *Saver {
	s := &Saver{
		store:       store,
		limiter:     rate.NewLimiter(rate.Every(DefaultRateInterval), 1),
		chunkSize:   DefaultChunkSize,
		maxAttempts: DefaultMaxAttempts,
		backoffBase: DefaultBackoffBase,
		now:         time.Now,
		log:         log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save stamps every movie with the ingestion time and writes the set in
// sequential chunks. It returns nil only when every item was accepted.
func (s *Saver) Save(ctx context.Context, movies []movie.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	stamp := strfmt.DateTime(s.now().UTC())
	stamped := make([]movie.Movie, len(movies))
	for i, m := range movies {
		m.IngestedAt = &stamp
		stamped[i] = m
	}

	chunks, err := Chunk(stamped, s.chunkSize)
	if err != nil {
		return err
	}

	for i, chunk := range chunks {
		if err := s.saveChunk(ctx, chunk); err != nil {
			return fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}
		s.log.Debug().
			Int("chunk", i+1).
			Int("chunks", len(chunks)).
			Int("items", len(chunk)).
			Msg("chunk persisted")
	}
	return nil
}

// saveChunk submits one chunk, resubmitting only the rejected subset until
// everything is accepted or the budget is exhausted.
func (s *Saver) saveChunk(ctx context.Context, pending []movie.Movie) error {
	backoff := s.backoffBase
	consecutiveFailures := 0
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		result, err := s.store.BatchPut(ctx, pending)
		if err != nil {
			lastErr = err
			if stderrors.Is(err, errors.ErrPersistenceThrottled) {
				consecutiveFailures = 0
				s.log.Warn().
					Err(err).
					Int("attempt", attempt).
					Int("pending", len(pending)).
					Msg("bulk write throttled, backing off")
			} else {
				consecutiveFailures++
				s.log.Error().
					Err(err).
					Int("attempt", attempt).
					Int("consecutive", consecutiveFailures).
					Msg("bulk write failed")
				if consecutiveFailures >= maxConsecutiveFailures {
					return errors.NewPersistenceError(attempt, len(pending), err)
				}
			}
			if err := sleepCtx(ctx, backoff); err != nil {
				return err
			}
			backoff *= 2
			continue
		}

		consecutiveFailures = 0
		if len(result.Rejected) == 0 {
			return nil
		}

		s.log.Warn().
			Int("attempt", attempt).
			Int("accepted", result.Accepted).
			Int("rejected", len(result.Rejected)).
			Msg("resubmitting rejected items")
		pending = result.Rejected

		if err := sleepCtx(ctx, backoff); err != nil {
			return err
		}
		backoff *= 2
	}

	return errors.NewPersistenceError(s.maxAttempts, len(pending), lastErr)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
