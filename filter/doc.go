/*
Package filter compiles raw search queries into predicate trees.

A raw query is a loosely-typed map of string parameters. Parse maps it to a
strongly-typed Filter without ever failing; fields that cannot be parsed are
treated as absent constraints rather than request errors. Compile then turns
the Filter into a Tree: an ordered AND of groups, where each group is an OR
of (attribute, operator, value) predicates.

	tree := filter.Compile(filter.Parse(map[string]string{
	    "searchText": "matrix",
	    "genres":     "Action,Sci-Fi",
	}))

The tree is storage-agnostic. The datastore/ddb package translates it into a
DynamoDB filter expression.
*/
package filter
