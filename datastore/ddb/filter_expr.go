/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/moviecatalog/errors"
	"github.com/suparena/moviecatalog/filter"
)

// BuildFilterExpression translates a compiled predicate tree into a DynamoDB
// filter expression with #name/:value placeholders. Groups are AND-combined;
// predicates inside one group are OR-combined and parenthesized. An empty
// tree yields an empty expression (no server-side filtering).
func BuildFilterExpression(tree filter.Tree) (string,
	map[string]string,
	map[string]types.AttributeValue,
	error) {

	if len(tree) == 0 {
		return "", nil, nil, nil
	}

	exprAttrNames := make(map[string]string)
	exprAttrValues := make(map[string]types.AttributeValue)
	groupClauses := make([]string, 0, len(tree))

	i := 0
	for _, group := range tree {
		clauses := make([]string, 0, len(group))
		for _, p := range group {
			placeholderName := fmt.Sprintf("#f%d", i)
			exprAttrNames[placeholderName] = p.Attr

			clause, err := predicateClause(p, placeholderName, i, exprAttrValues)
			if err != nil {
				return "", nil, nil, err
			}
			clauses = append(clauses, clause)
			i++
		}

		if len(clauses) == 1 {
			groupClauses = append(groupClauses, clauses[0])
		} else {
			groupClauses = append(groupClauses, "("+strings.Join(clauses, " OR ")+")")
		}
	}

	return strings.Join(groupClauses, " AND "), exprAttrNames, exprAttrValues, nil
}

func predicateClause(p filter.Predicate, placeholderName string, i int, exprAttrValues map[string]types.AttributeValue) (string, error) {
	switch p.Op {
	case filter.OpContains:
		val, ok := p.Value.(string)
		if !ok {
			return "", errors.NewValidationError(p.Attr, "contains predicate requires a string value")
		}
		placeholderValue := fmt.Sprintf(":v%d", i)
		exprAttrValues[placeholderValue] = &types.AttributeValueMemberS{Value: val}
		return fmt.Sprintf("contains(%s, %s)", placeholderName, placeholderValue), nil

	case filter.OpBetween:
		bounds, ok := p.Value.([2]int)
		if !ok {
			return "", errors.NewValidationError(p.Attr, "between predicate requires a two-element range")
		}
		loPlaceholder := fmt.Sprintf(":v%dlo", i)
		hiPlaceholder := fmt.Sprintf(":v%dhi", i)
		exprAttrValues[loPlaceholder] = &types.AttributeValueMemberN{Value: strconv.Itoa(bounds[0])}
		exprAttrValues[hiPlaceholder] = &types.AttributeValueMemberN{Value: strconv.Itoa(bounds[1])}
		return fmt.Sprintf("%s BETWEEN %s AND %s", placeholderName, loPlaceholder, hiPlaceholder), nil

	case filter.OpGTE:
		val, ok := p.Value.(float64)
		if !ok {
			return "", errors.NewValidationError(p.Attr, "gte predicate requires a numeric value")
		}
		placeholderValue := fmt.Sprintf(":v%d", i)
		exprAttrValues[placeholderValue] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(val, 'f', -1, 64)}
		return fmt.Sprintf("%s >= %s", placeholderName, placeholderValue), nil

	default:
		return "", errors.NewValidationError(p.Attr, fmt.Sprintf("unhandled predicate operator %q", p.Op))
	}
}
