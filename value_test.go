// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package insight_test

import (
	"math"
	"testing"

	"github.com/hashicorp/insight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNum(t *testing.T) {
	t.Parallel()
	t.Run("success", func(t *testing.T) {
		v, err := insight.NewNum(97.5)
		require.NoError(t, err)
		n, ok := v.Num()
		require.True(t, ok)
		assert.Equal(t, float32(97.5), n)
		assert.True(t, v.IsNum())
		assert.False(t, v.IsStr())
	})
	t.Run("err-nan", func(t *testing.T) {
		_, err := insight.NewNum(float32(math.NaN()))
		require.Error(t, err)
		assert.ErrorIs(t, err, insight.ErrInvalidParameter)
		assert.ErrorContains(t, err, "NaN is not a valid value")
	})
}

func TestValueEqual(t *testing.T) {
	t.Parallel()
	num := func(f float32) insight.Value {
		v, err := insight.NewNum(f)
		require.NoError(t, err)
		return v
	}
	tests := []struct {
		name string
		a    insight.Value
		b    insight.Value
		want bool
	}{
		{
			name: "equal-numbers",
			a:    num(90),
			b:    num(90),
			want: true,
		},
		{
			name: "unequal-numbers",
			a:    num(90),
			b:    num(90.5),
			want: false,
		},
		{
			name: "equal-strings",
			a:    insight.NewStr("cpsc"),
			b:    insight.NewStr("cpsc"),
			want: true,
		},
		{
			name: "unequal-strings",
			a:    insight.NewStr("cpsc"),
			b:    insight.NewStr("math"),
			want: false,
		},
		{
			name: "never-equal-across-variants",
			a:    num(90),
			b:    insight.NewStr("90"),
			want: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
		})
	}
}

func TestValueCompare(t *testing.T) {
	t.Parallel()
	num := func(f float32) insight.Value {
		v, err := insight.NewNum(f)
		require.NoError(t, err)
		return v
	}
	tests := []struct {
		name            string
		a               insight.Value
		b               insight.Value
		want            int
		wantErrIs       error
		wantErrContains string
	}{
		{
			name: "numbers-less",
			a:    num(70),
			b:    num(90),
			want: -1,
		},
		{
			name: "numbers-greater",
			a:    num(90),
			b:    num(70),
			want: 1,
		},
		{
			name: "numbers-equal",
			a:    num(90),
			b:    num(90),
			want: 0,
		},
		{
			name: "strings-lexicographic",
			a:    insight.NewStr("adhe"),
			b:    insight.NewStr("biol"),
			want: -1,
		},
		{
			name:            "err-mixed-variants",
			a:               num(90),
			b:               insight.NewStr("cpsc"),
			wantErrIs:       insight.ErrTypeMismatch,
			wantErrContains: "cannot order number against string",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Compare(tc.b)
			if tc.wantErrIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErrIs)
				assert.ErrorContains(t, err, tc.wantErrContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValueMarshalJSON(t *testing.T) {
	t.Parallel()
	t.Run("number", func(t *testing.T) {
		v, err := insight.NewNum(98)
		require.NoError(t, err)
		got, err := v.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, "98", string(got))
	})
	t.Run("string", func(t *testing.T) {
		got, err := insight.NewStr("cpsc").MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `"cpsc"`, string(got))
	})
}
