/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package movie

import (
	"testing"

	stderrors "errors"

	"github.com/suparena/moviecatalog/errors"
)

func TestParseRecords(t *testing.T) {
	t.Run("ValidPayload", func(t *testing.T) {
		body := []byte(`[{"code":"tt001","title":"X","year":2020,"rating":7.5,"votes":100}]`)

		records, err := ParseRecords(body)
		if err != nil {
			t.Fatalf("ParseRecords failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("Expected 1 record, got %d", len(records))
		}
		if records[0].Code != "tt001" || records[0].Year != 2020 {
			t.Errorf("Unexpected record: %+v", records[0])
		}
	})

	t.Run("EmptyBody", func(t *testing.T) {
		_, err := ParseRecords(nil)
		if !stderrors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("MalformedBody", func(t *testing.T) {
		_, err := ParseRecords([]byte(`{"not":"an array"`))
		if !stderrors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestFromRecord(t *testing.T) {
	r := Record{
		Code:        "tt002",
		Title:       "Y",
		Year:        1999,
		Rating:      8.1,
		Votes:       5000,
		Description: "a description",
		Image:       "/poster.jpg",
	}

	m := FromRecord(r)

	if m.Code != r.Code || m.Title != r.Title || m.Year != r.Year {
		t.Errorf("Base fields not carried over: %+v", m)
	}
	if m.Description != r.Description || m.Image != r.Image {
		t.Errorf("Optional fields not carried over: %+v", m)
	}
	if m.Genres != nil || m.Providers != nil || m.TmdbID != 0 {
		t.Errorf("Fallback movie must not gain enrichment fields: %+v", m)
	}
}
