/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"math"
	"strconv"
	"strings"
)

// Op is a predicate operator.
type Op string

const (
	// OpContains is a substring (or list membership) match.
	OpContains Op = "contains"
	// OpBetween is an inclusive numeric range match.
	OpBetween Op = "between"
	// OpGTE is a greater-or-equal threshold match.
	OpGTE Op = "gte"
)

// Predicate is one (attribute, operator, value) condition.
// Value holds a string for OpContains, a [2]int for OpBetween and a float64
// for OpGTE.
type Predicate struct {
	Attr  string
	Op    Op
	Value any
}

// Group is a set of predicates combined with OR.
type Group []Predicate

// Tree is an ordered sequence of groups combined with AND. An empty tree
// matches everything.
type Tree []Group

// Filter is the strongly-typed form of a raw search query. Zero values mean
// "no constraint"; YearRange uses a pointer to distinguish absent from a
// literal range.
type Filter struct {
	SearchText string
	YearRange  *[2]int
	Rating     float64
	Votes      int
	Genres     []string
	Providers  []string
}

// Parse converts a raw query map into a Filter. Parsing is total: an
// unparseable or absent field never produces an error, it produces an absent
// constraint.
func Parse(query map[string]string) Filter {
	f := Filter{
		SearchText: query["searchText"],
		Genres:     splitList(query["genres"]),
		Providers:  splitList(query["providers"]),
	}

	if lo, hi, ok := parseYearRange(query["yearRange"]); ok {
		f.YearRange = &[2]int{lo, hi}
	}

	if v, err := strconv.ParseFloat(query["rating"], 64); err == nil && v != 0 && !math.IsNaN(v) {
		f.Rating = v
	}

	if v, err := strconv.Atoi(query["votes"]); err == nil && v != 0 {
		f.Votes = v
	}

	return f
}

// Compile turns a Filter into its predicate tree. Each present field yields
// one AND-ed group; genres and providers yield OR-groups with one contains
// predicate per requested value.
func Compile(f Filter) Tree {
	var tree Tree

	if f.SearchText != "" {
		tree = append(tree, Group{{Attr: "title", Op: OpContains, Value: f.SearchText}})
	}

	if f.YearRange != nil {
		tree = append(tree, Group{{Attr: "year", Op: OpBetween, Value: *f.YearRange}})
	}

	if f.Rating != 0 {
		tree = append(tree, Group{{Attr: "rating", Op: OpGTE, Value: f.Rating}})
	}

	if f.Votes != 0 {
		tree = append(tree, Group{{Attr: "votes", Op: OpGTE, Value: float64(f.Votes)}})
	}

	if len(f.Genres) > 0 {
		tree = append(tree, containsGroup("genres", f.Genres))
	}

	if len(f.Providers) > 0 {
		tree = append(tree, containsGroup("providers", f.Providers))
	}

	return tree
}

func containsGroup(attr string, values []string) Group {
	group := make(Group, 0, len(values))
	for _, v := range values {
		group = append(group, Predicate{Attr: attr, Op: OpContains, Value: v})
	}
	return group
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseYearRange(raw string) (int, int, bool) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
