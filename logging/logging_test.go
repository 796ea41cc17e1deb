/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("EmitsStructuredJSON", func(t *testing.T) {
		var buf bytes.Buffer
		log := New("info", &buf)
		log.Info().Str("component", "test").Msg("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["message"])
		assert.Equal(t, "test", entry["component"])
		assert.NotEmpty(t, entry["time"])
	})

	t.Run("LevelFiltersOutput", func(t *testing.T) {
		var buf bytes.Buffer
		log := New("error", &buf)
		log.Info().Msg("dropped")
		assert.Zero(t, buf.Len())

		log.Error().Msg("kept")
		assert.NotZero(t, buf.Len())
	})

	t.Run("UnknownLevelDefaultsToInfo", func(t *testing.T) {
		assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
	})
}
