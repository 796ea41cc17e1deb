/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package movie defines the catalog's domain model.
package movie

import (
	"encoding/json"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/moviecatalog/errors"
)

// Record is an unenriched catalog entry as ingested from the source file.
// Code is the externally supplied IMDB identifier (e.g. "tt0133093").
type Record struct {
	Code        string  `json:"code"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	Votes       int     `json:"votes"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// Movie is a Record augmented with metadata fetched from the external
// provider. All enrichment fields are optional; a record that found no match
// upstream persists with them unset.
type Movie struct {
	Code        string   `json:"code"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Rating      float64  `json:"rating"`
	Votes       int      `json:"votes"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Providers   []string `json:"providers,omitempty"`
	TmdbID      int      `json:"tmdbId,omitempty"`

	// IngestedAt is stamped by the persistence layer.
	IngestedAt *strfmt.DateTime `json:"ingestedAt,omitempty"`
}

// FromRecord converts a raw record into an unenriched Movie. Used as the
// fallback when the external provider has no match for the record's code.
func FromRecord(r Record) Movie {
	return Movie{
		Code:        r.Code,
		Title:       r.Title,
		Year:        r.Year,
		Rating:      r.Rating,
		Votes:       r.Votes,
		Description: r.Description,
		Image:       r.Image,
	}
}

// ParseRecords decodes an arrival payload into its records. The payload is a
// JSON array; an empty or unparseable body is reported as ErrInvalidInput so
// the caller can abort the run without persisting.
func ParseRecords(body []byte) ([]Record, error) {
	if len(body) == 0 {
		return nil, errors.NewValidationError("body", "empty payload")
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.NewValidationError("body", err.Error())
	}
	return records, nil
}
