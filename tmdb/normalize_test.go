/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProviderNames(t *testing.T) {
	t.Run("StripsKnownSuffixes", func(t *testing.T) {
		got := NormalizeProviderNames([]string{
			"AMC+ Amazon Channel",
			"Paramount Plus Apple TV Channel",
			"Netflix Standard with Ads",
		})

		assert.Equal(t, []string{"AMC+", "Paramount Plus", "Netflix"}, got)
	})

	t.Run("DeduplicatesAfterStripping", func(t *testing.T) {
		got := NormalizeProviderNames([]string{
			"AMC+",
			"AMC+ Amazon Channel",
			"Netflix",
			"Netflix with Ads",
			"Netflix Standard with Ads",
		})

		assert.Equal(t, []string{"AMC+", "Netflix"}, got)
	})

	t.Run("FirstSeenOrderIsDeterministic", func(t *testing.T) {
		input := []string{"Hulu", "Max", "Hulu", "Disney Plus"}

		first := NormalizeProviderNames(input)
		second := NormalizeProviderNames(input)

		assert.Equal(t, []string{"Hulu", "Max", "Disney Plus"}, first)
		assert.Equal(t, first, second)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, NormalizeProviderNames(nil))
	})

	t.Run("BlankNamesDropped", func(t *testing.T) {
		got := NormalizeProviderNames([]string{"", "  ", "Hulu"})

		assert.Equal(t, []string{"Hulu"}, got)
	})
}
