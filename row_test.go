// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowColumns(t *testing.T) {
	t.Parallel()
	row := NewRow()
	row.Set("sections_dept", NewStr("cpsc"))
	avg, err := NewNum(98)
	require.NoError(t, err)
	row.Set("sections_avg", avg)
	// iteration order is sorted regardless of insertion order
	assert.Equal(t, []string{"sections_avg", "sections_dept"}, row.Columns())
	assert.Equal(t, 2, row.Len())
}

func TestRowEqual(t *testing.T) {
	t.Parallel()
	a := NewRow()
	a.Set("sections_dept", NewStr("cpsc"))
	b := NewRow()
	b.Set("sections_dept", NewStr("cpsc"))
	assert.True(t, a.Equal(b))

	b.Set("sections_id", NewStr("310"))
	assert.False(t, a.Equal(b))

	c := NewRow()
	c.Set("sections_dept", NewStr("math"))
	assert.False(t, a.Equal(c))
}

func Test_tupleKey(t *testing.T) {
	t.Parallel()
	t.Run("deterministic", func(t *testing.T) {
		row := NewRow()
		row.Set("sections_dept", NewStr("cpsc"))
		seats, err := NewNum(50)
		require.NoError(t, err)
		row.Set("sections_avg", seats)

		first, err := row.tupleKey([]string{"sections_dept", "sections_avg"})
		require.NoError(t, err)
		second, err := row.tupleKey([]string{"sections_dept", "sections_avg"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
	t.Run("distinguishes-variants", func(t *testing.T) {
		a := NewRow()
		a.Set("col", NewStr("90"))
		b := NewRow()
		ninety, err := NewNum(90)
		require.NoError(t, err)
		b.Set("col", ninety)

		aKey, err := a.tupleKey([]string{"col"})
		require.NoError(t, err)
		bKey, err := b.tupleKey([]string{"col"})
		require.NoError(t, err)
		assert.NotEqual(t, aKey, bKey)
	})
	t.Run("err-missing-column", func(t *testing.T) {
		row := NewRow()
		_, err := row.tupleKey([]string{"sections_dept"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFieldNotFound)
		assert.ErrorContains(t, err, `"sections_dept"`)
	})
}

func TestRowMarshalJSON(t *testing.T) {
	t.Parallel()
	row := NewRow()
	row.Set("sections_dept", NewStr("cpsc"))
	avg, err := NewNum(98.5)
	require.NoError(t, err)
	row.Set("sections_avg", avg)

	got, err := row.MarshalJSON()
	require.NoError(t, err)
	// keys appear in sorted order
	assert.Equal(t, `{"sections_avg":98.5,"sections_dept":"cpsc"}`, string(got))
}
