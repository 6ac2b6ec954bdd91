// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package insight

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Row is a result row: a mapping from column name to Value whose iteration
// order is always sorted by column name, which keeps grouping keys and test
// comparisons deterministic.
type Row struct {
	cols map[string]Value
}

// NewRow returns an empty row.
func NewRow() Row {
	return Row{cols: make(map[string]Value)}
}

// Set stores a column value, replacing any previous value for the column.
func (r Row) Set(column string, v Value) {
	r.cols[column] = v
}

// Get returns the value for a column and whether the column is present.
func (r Row) Get(column string) (Value, bool) {
	v, ok := r.cols[column]
	return v, ok
}

// Len returns the number of columns in the row.
func (r Row) Len() int {
	return len(r.cols)
}

// Columns returns the row's column names in sorted order.
func (r Row) Columns() []string {
	keys := maps.Keys(r.cols)
	slices.Sort(keys)
	return keys
}

// Equal reports whether two rows hold the same columns with equal values.
func (r Row) Equal(o Row) bool {
	if len(r.cols) != len(o.cols) {
		return false
	}
	for col, v := range r.cols {
		ov, ok := o.cols[col]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// tupleKey encodes the row's values at the given columns into a string usable
// as a deterministic grouping key. Every column must be present in the row.
func (r Row) tupleKey(columns []string) (string, error) {
	const op = "insight.(Row).tupleKey"
	var buf bytes.Buffer
	for _, col := range columns {
		v, ok := r.cols[col]
		if !ok {
			return "", fmt.Errorf("%s: %w %q", op, ErrFieldNotFound, col)
		}
		fmt.Fprintf(&buf, "%d:%q;", v.kind, v.String())
	}
	return buf.String(), nil
}

// MarshalJSON encodes the row as a JSON object with keys in sorted order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.Columns() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := NewStr(col).MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := r.cols[col].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
