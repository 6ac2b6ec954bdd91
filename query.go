// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package insight

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Query is the deserialized form of the JSON query language. WHERE is
// optional (absent means match-all), OPTIONS is required, TRANSFORMATIONS is
// optional. Unknown top-level keys fail deserialization.
type Query struct {
	Where           *Filter
	Options         Options
	Transformations *Transformations
}

// Options names the projected columns and an optional order.
type Options struct {
	Columns []string
	Order   *Order
}

// Transformations declares grouping columns and the aggregate columns
// computed per group.
type Transformations struct {
	Group []string
	Apply []ApplyRule
}

// ApplyRule is one aggregate: it writes column Name, computed by applying Op
// to Column over each group.
type ApplyRule struct {
	Name   string
	Op     aggregateOp
	Column string
}

type aggregateOp string

const (
	countOp aggregateOp = "COUNT"
	avgOp   aggregateOp = "AVG"
	sumOp   aggregateOp = "SUM"
	maxOp   aggregateOp = "MAX"
	minOp   aggregateOp = "MIN"
)

func newAggregateOp(s string) (aggregateOp, error) {
	const op = "insight.newAggregateOp"
	switch s {
	case
		string(countOp),
		string(avgOp),
		string(sumOp),
		string(maxOp),
		string(minOp):
		return aggregateOp(s), nil
	default:
		return "", fmt.Errorf("%s: %w: invalid aggregate operator %q", op, ErrInvalidQuery, s)
	}
}

type orderDirection string

const (
	orderAscending  orderDirection = "UP"
	orderDescending orderDirection = "DOWN"
)

func newOrderDirection(s string) (orderDirection, error) {
	const op = "insight.newOrderDirection"
	switch s {
	case
		string(orderAscending),
		string(orderDescending):
		return orderDirection(s), nil
	default:
		return "", fmt.Errorf("%s: %w: dir must be UP or DOWN, got %q", op, ErrInvalidOrder, s)
	}
}

// Order is a sort specification: one or more keys, ascending (UP) or
// descending (DOWN). The JSON form is either a bare column name (ascending)
// or {"dir": ..., "keys": [...]}.
type Order struct {
	Dir  orderDirection
	Keys []string
}

// ParseQuery deserializes and validates a JSON query.
func ParseQuery(data []byte) (*Query, error) {
	const op = "insight.ParseQuery"
	var q Query
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, wrapParseErr(op, err)
	}
	return &q, nil
}

// wrapParseErr tags decode failures with ErrInvalidQuery, leaving errors that
// already carry one of the engine's sentinels untouched.
func wrapParseErr(op string, err error) error {
	switch {
	case errors.Is(err, ErrInvalidQuery),
		errors.Is(err, ErrInvalidOrder):
		return err
	default:
		return fmt.Errorf("%s: %w: %v", op, ErrInvalidQuery, err)
	}
}

// UnmarshalJSON rejects unknown top-level keys and requires OPTIONS.
func (q *Query) UnmarshalJSON(data []byte) error {
	const op = "insight.(Query).UnmarshalJSON"
	type rawQuery struct {
		Where           *Filter          `json:"WHERE"`
		Options         *Options         `json:"OPTIONS"`
		Transformations *Transformations `json:"TRANSFORMATIONS"`
	}
	var raw rawQuery
	if err := decodeStrict(data, &raw); err != nil {
		return wrapParseErr(op, err)
	}
	if raw.Options == nil {
		return fmt.Errorf("%s: %w: missing OPTIONS", op, ErrInvalidQuery)
	}
	q.Where = raw.Where
	q.Options = *raw.Options
	q.Transformations = raw.Transformations
	return nil
}

// UnmarshalJSON requires a non-empty COLUMNS list and rejects unknown keys.
func (o *Options) UnmarshalJSON(data []byte) error {
	const op = "insight.(Options).UnmarshalJSON"
	type rawOptions struct {
		Columns []string `json:"COLUMNS"`
		Order   *Order   `json:"ORDER"`
	}
	var raw rawOptions
	if err := decodeStrict(data, &raw); err != nil {
		return wrapParseErr(op, err)
	}
	if len(raw.Columns) == 0 {
		return fmt.Errorf("%s: %w: COLUMNS must not be empty", op, ErrInvalidQuery)
	}
	o.Columns = raw.Columns
	o.Order = raw.Order
	return nil
}

// UnmarshalJSON accepts the bare-string and {dir, keys} order forms.
func (o *Order) UnmarshalJSON(data []byte) error {
	const op = "insight.(Order).UnmarshalJSON"
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		o.Dir = orderAscending
		o.Keys = []string{single}
		return nil
	}
	type rawOrder struct {
		Dir  string   `json:"dir"`
		Keys []string `json:"keys"`
	}
	var raw rawOrder
	if err := decodeStrict(data, &raw); err != nil {
		return wrapParseErr(op, err)
	}
	dir, err := newOrderDirection(raw.Dir)
	if err != nil {
		return err
	}
	if len(raw.Keys) == 0 {
		return fmt.Errorf("%s: %w: keys must not be empty", op, ErrInvalidQuery)
	}
	o.Dir = dir
	o.Keys = raw.Keys
	return nil
}

// UnmarshalJSON requires a non-empty GROUP and distinct APPLY output names.
func (t *Transformations) UnmarshalJSON(data []byte) error {
	const op = "insight.(Transformations).UnmarshalJSON"
	type rawTransformations struct {
		Group []string    `json:"GROUP"`
		Apply []ApplyRule `json:"APPLY"`
	}
	var raw rawTransformations
	if err := decodeStrict(data, &raw); err != nil {
		return wrapParseErr(op, err)
	}
	if len(raw.Group) == 0 {
		return fmt.Errorf("%s: %w: GROUP must not be empty", op, ErrInvalidQuery)
	}
	seen := make(map[string]bool, len(raw.Apply))
	for _, rule := range raw.Apply {
		if seen[rule.Name] {
			return fmt.Errorf("%s: %w: duplicate APPLY output name %q", op, ErrInvalidQuery, rule.Name)
		}
		seen[rule.Name] = true
	}
	t.Group = raw.Group
	t.Apply = raw.Apply
	return nil
}

// UnmarshalJSON decodes the {outName: {OP: column}} apply-rule form.
func (a *ApplyRule) UnmarshalJSON(data []byte) error {
	var outer kvPair[kvPair[string]]
	if err := json.Unmarshal(data, &outer); err != nil {
		return err
	}
	aggOp, err := newAggregateOp(outer.Value.Key)
	if err != nil {
		return err
	}
	a.Name = outer.Key
	a.Op = aggOp
	a.Column = outer.Value.Value
	return nil
}

// kvPair decodes a JSON object that must contain exactly one entry.
type kvPair[T any] struct {
	Key   string
	Value T
}

func (p *kvPair[T]) UnmarshalJSON(data []byte) error {
	const op = "insight.kvPair.UnmarshalJSON"
	var m map[string]T
	if err := json.Unmarshal(data, &m); err != nil {
		return wrapParseErr(op, err)
	}
	if len(m) != 1 {
		return fmt.Errorf("%s: %w: expected exactly 1 entry, got %d", op, ErrInvalidQuery, len(m))
	}
	for k, v := range m {
		p.Key = k
		p.Value = v
	}
	return nil
}

// decodeStrict decodes into v, failing on any key v does not declare.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
