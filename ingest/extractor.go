/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package ingest turns an object-storage arrival into persisted catalog
// entries: fetch the object, parse its records, enrich them and bulk-write
// the result.
package ingest

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/suparena/moviecatalog/errors"
	"github.com/suparena/moviecatalog/movie"
)

// Event identifies an arrived object.
type Event struct {
	Bucket string
	Key    string
}

// ObjectGetter is the S3 surface the extractor needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// RecordProcessor enriches raw records into movies.
type RecordProcessor interface {
	Process(ctx context.Context, records []movie.Record) ([]movie.Movie, error)
}

// MovieSaver persists enriched movies.
type MovieSaver interface {
	Save(ctx context.Context, movies []movie.Movie) error
}

// Extractor drives one ingestion run per arrival event.
type Extractor struct {
	objects  ObjectGetter
	pipeline RecordProcessor
	saver    MovieSaver
	log      zerolog.Logger
}

// NewExtractor constructs an Extractor.
func NewExtractor(objects ObjectGetter, pipeline RecordProcessor, saver MovieSaver, log zerolog.Logger) *Extractor {
	return &Extractor{objects: objects, pipeline: pipeline, saver: saver, log: log}
}

// HandleObject runs the full ingestion for one arrival: fetch, parse, enrich,
// persist. An unusable body aborts the run before anything is written.
func (e *Extractor) HandleObject(ctx context.Context, ev Event) error {
	e.log.Info().Str("bucket", ev.Bucket).Str("key", ev.Key).Msg("ingestion run started")

	out, err := e.objects.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ev.Bucket),
		Key:    aws.String(ev.Key),
	})
	if err != nil {
		return errors.NewObjectBodyError(ev.Bucket, ev.Key, err.Error())
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return errors.NewObjectBodyError(ev.Bucket, ev.Key, err.Error())
	}

	records, err := movie.ParseRecords(body)
	if err != nil {
		e.log.Error().Err(err).Str("key", ev.Key).Msg("arrival payload unusable")
		return errors.NewObjectBodyError(ev.Bucket, ev.Key, err.Error())
	}
	if len(records) == 0 {
		return errors.NewObjectBodyError(ev.Bucket, ev.Key, "payload holds no records")
	}

	movies, err := e.pipeline.Process(ctx, records)
	if err != nil {
		return err
	}

	if err := e.saver.Save(ctx, movies); err != nil {
		return err
	}

	e.log.Info().
		Str("key", ev.Key).
		Int("records", len(records)).
		Msg("ingestion run complete")
	return nil
}
