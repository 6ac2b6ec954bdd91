// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package insight

import (
	"fmt"
	"sort"
)

// maxResultRows is the post-filter result cap. A query whose filter passes
// more than this many records fails with ErrResultTooLarge instead of
// returning a truncated result.
const maxResultRows = 5000

// Execute runs a query against a dataset: filter, project, optionally group
// and aggregate, optionally order. The dataset is scanned in stored order and
// the output is deterministic for a given query and dataset.
func Execute[R Record](q *Query, records []R, opt ...Option) ([]Row, error) {
	const op = "insight.Execute"
	if q == nil {
		return nil, fmt.Errorf("%s: %w: missing query", op, ErrInvalidParameter)
	}
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}

	pred := func(rec R) (bool, error) { return true, nil }
	if q.Where != nil {
		pred = compileFilter[R](q.Where)
	}

	matched := make([]R, 0)
	for i := range records {
		ok, err := pred(records[i])
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		matched = append(matched, records[i])
		// one past the cap proves overflow without scanning the rest
		if len(matched) > opts.withResultLimit {
			return nil, fmt.Errorf("%s: %w", op, ErrResultTooLarge)
		}
	}

	var rows []Row
	switch {
	case q.Transformations != nil:
		rows, err = transformRows(q, matched)
	default:
		rows, err = materializeRows(matched, q.Options.Columns)
	}
	if err != nil {
		return nil, err
	}

	if q.Options.Order != nil {
		if err := sortRows(rows, q.Options.Order); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// materializeRows projects records into rows holding exactly the requested
// columns.
func materializeRows[R Record](records []R, columns []string) ([]Row, error) {
	rows := make([]Row, 0, len(records))
	for i := range records {
		row := NewRow()
		for _, col := range columns {
			v, err := records[i].Get(col)
			if err != nil {
				return nil, err
			}
			row.Set(col, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sortRows orders rows in place: stable, comparing the sort keys in array
// order and short-circuiting on the first inequality. DOWN reverses every
// comparison. Every row must contain every sort key.
func sortRows(rows []Row, ord *Order) error {
	const op = "insight.sortRows"
	for _, key := range ord.Keys {
		for i := range rows {
			if _, ok := rows[i].Get(key); !ok {
				return fmt.Errorf("%s: %w: order column %q missing from result rows", op, ErrInvalidOrder, key)
			}
		}
	}
	var sortErr error
	sort.SliceStable(rows, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		for _, key := range ord.Keys {
			a, _ := rows[i].Get(key)
			b, _ := rows[j].Get(key)
			c, err := a.Compare(b)
			if err != nil {
				sortErr = err
				return false
			}
			if c == 0 {
				continue
			}
			if ord.Dir == orderDescending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return sortErr
}
