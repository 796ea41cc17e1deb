/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tmdb

import "strings"

// knownSuffixes are non-semantic qualifiers the upstream appends to provider
// display names. Longer suffixes come first so partial overlaps strip fully.
var knownSuffixes = []string{
	" Standard with Ads",
	" with Ads",
	" Amazon Channel",
	" Apple TV Channel",
	" Roku Premium Channel",
}

// NormalizeProviderNames strips known suffix noise from provider display
// names and deduplicates by exact equality. Output keeps first-seen order so
// identical input yields identical output.
func NormalizeProviderNames(rawNames []string) []string {
	seen := make(map[string]bool, len(rawNames))
	out := make([]string, 0, len(rawNames))

	for _, raw := range rawNames {
		name := cleanProviderName(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func cleanProviderName(name string) string {
	for _, suffix := range knownSuffixes {
		name = strings.TrimSuffix(name, suffix)
	}
	return strings.TrimSpace(name)
}
