package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad test literal %q", s)
	return v
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "whole", input: "1", want: "1000000000000000000"},
		{name: "fraction", input: "1.01", want: "1010000000000000000"},
		{name: "leading dot", input: ".5", want: "500000000000000000"},
		{name: "trailing dot", input: "2.", want: "2000000000000000000"},
		{name: "zero", input: "0.0", want: "0"},
		{name: "smallest unit", input: "0.000000000000000001", want: "1"},
		{name: "floors past 18 decimals", input: "0.0000000000000000019", want: "1"},
		{name: "floors to zero", input: "0.0000000000000000009", want: "0"},
		{name: "spaces trimmed", input: "  3.25 ", want: "3250000000000000000"},
		{name: "empty", input: "", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "letters", input: "1e18", wantErr: true},
		{name: "two dots", input: "1.2.3", wantErr: true},
		{name: "lone dot", input: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnits(tt.input, TokenDecimals)
			if tt.wantErr {
				require.Error(t, err)
				var verr ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"1", "0.000000000000000001"},
		{"1000000000000000000", "1"},
		{"1010000000000000000", "1.01"},
		{"123456789000000000000", "123.456789"},
		{"-500000000000000000", "-0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUnits(mustBig(t, tt.input), TokenDecimals))
		})
	}

	assert.Equal(t, "0", FormatUnits(nil, TokenDecimals))
}

func TestFormatThenParseIsIdentity(t *testing.T) {
	values := []string{"0", "1", "999", "1000000000000000000", "1010000000000000001", "340282366920938463463374607431768211455"}
	for _, s := range values {
		v := mustBig(t, s)
		parsed, err := ParseUnits(FormatUnits(v, TokenDecimals), TokenDecimals)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(parsed), "round trip of %s", s)
	}
}
