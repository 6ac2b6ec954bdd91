// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package insight

import (
	"fmt"
	"math"
)

// transformRows implements the TRANSFORMATIONS stage: partition the matched
// records by their values at the GROUP columns and emit one row per group
// holding the group-key columns plus one column per APPLY rule. Groups are
// emitted in first-seen order, so the output is deterministic before any
// ORDER is applied.
func transformRows[R Record](q *Query, records []R) ([]Row, error) {
	const op = "insight.transformRows"
	t := q.Transformations

	// materialize the group columns plus every aggregate argument column
	need := make([]string, 0, len(t.Group)+len(t.Apply))
	seen := make(map[string]bool, len(t.Group)+len(t.Apply))
	for _, col := range t.Group {
		if !seen[col] {
			seen[col] = true
			need = append(need, col)
		}
	}
	for _, rule := range t.Apply {
		if !seen[rule.Column] {
			seen[rule.Column] = true
			need = append(need, rule.Column)
		}
	}
	base, err := materializeRows(records, need)
	if err != nil {
		return nil, err
	}

	var groupOrder []string
	groups := make(map[string][]Row)
	for _, row := range base {
		key, err := row.tupleKey(t.Group)
		if err != nil {
			return nil, err
		}
		if _, ok := groups[key]; !ok {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], row)
	}

	out := make([]Row, 0, len(groupOrder))
	for _, key := range groupOrder {
		members := groups[key]
		row := NewRow()
		for _, col := range t.Group {
			v, _ := members[0].Get(col)
			row.Set(col, v)
		}
		for _, rule := range t.Apply {
			v, err := applyAggregate(rule, members)
			if err != nil {
				return nil, err
			}
			row.Set(rule.Name, v)
		}
		out = append(out, row)
	}

	// with transformations present, COLUMNS may only name grouped or
	// computed columns
	allowed := make(map[string]bool, len(t.Group)+len(t.Apply))
	for _, col := range t.Group {
		allowed[col] = true
	}
	for _, rule := range t.Apply {
		allowed[rule.Name] = true
	}
	for _, col := range q.Options.Columns {
		if !allowed[col] {
			return nil, fmt.Errorf("%s: %w %q: not grouped and not computed by APPLY", op, ErrFieldNotFound, col)
		}
	}
	return out, nil
}

// applyAggregate computes one aggregate column over the rows of a group.
func applyAggregate(rule ApplyRule, rows []Row) (Value, error) {
	if rule.Op == countOp {
		return NewNum(float32(len(rows)))
	}
	nums, err := numericColumn(rule, rows)
	if err != nil {
		return Value{}, err
	}
	switch rule.Op {
	case avgOp:
		// accumulated as a running sum of value/n, not sum-then-divide
		n := float32(len(nums))
		var acc float32
		for _, v := range nums {
			acc += v / n
		}
		return NewNum(roundTwo(acc))
	case sumOp:
		var sum float32
		for _, v := range nums {
			sum += v
		}
		return NewNum(roundTwo(sum))
	case maxOp:
		best := float32(math.Inf(-1))
		for _, v := range nums {
			if v > best {
				best = v
			}
		}
		return NewNum(roundTwo(best))
	default:
		best := float32(math.Inf(1))
		for _, v := range nums {
			if v < best {
				best = v
			}
		}
		return NewNum(roundTwo(best))
	}
}

// numericColumn extracts the aggregate argument column from every group row,
// requiring each value to be numeric.
func numericColumn(rule ApplyRule, rows []Row) ([]float32, error) {
	const op = "insight.numericColumn"
	out := make([]float32, 0, len(rows))
	for _, row := range rows {
		v, ok := row.Get(rule.Column)
		if !ok {
			return nil, fmt.Errorf("%s: %w %q", op, ErrFieldNotFound, rule.Column)
		}
		n, isNum := v.Num()
		if !isNum {
			return nil, fmt.Errorf("%s: %w: invalid operation %s for %q", op, ErrTypeMismatch, rule.Op, rule.Column)
		}
		out = append(out, n)
	}
	return out, nil
}

// roundTwo rounds a numeric aggregate output to two decimal places.
func roundTwo(n float32) float32 {
	return float32(math.Round(float64(n)*100) / 100)
}
