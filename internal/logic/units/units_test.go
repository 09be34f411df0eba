package units_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kguard/internal/logic/units"
)

func TestParseCPU(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    int64
		wantErr bool
	}{
		{name: "nanocores", give: "5000000n", want: 5},
		{name: "nanocores truncated", give: "1999999n", want: 1},
		{name: "nanocores below one millicore", give: "999n", want: 0},
		{name: "millicores", give: "250m", want: 250},
		{name: "whole cores", give: "2", want: 2000},
		{name: "zero", give: "0", want: 0},
		{name: "microcores unsupported", give: "250u", wantErr: true},
		{name: "kilo unsupported", give: "1k", wantErr: true},
		{name: "binary suffix", give: "1Ki", wantErr: true},
		{name: "empty", give: "", wantErr: true},
		{name: "non numeric", give: "abc", wantErr: true},
		{name: "negative", give: "-5m", wantErr: true},
		{name: "decimal", give: "0.5", wantErr: true},
		{name: "overflow", give: "9223372036854775807", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := units.ParseCPU(tt.give)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, units.ErrUnitParse)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMemory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    int64
		wantErr bool
	}{
		{name: "plain bytes", give: "1048576", want: 1},
		{name: "plain bytes truncated", give: "2097151", want: 1},
		{name: "kibibytes", give: "2048Ki", want: 2},
		{name: "kibibytes truncated", give: "1023Ki", want: 0},
		{name: "mebibytes", give: "300Mi", want: 300},
		{name: "gibibytes", give: "1Gi", want: 1024},
		{name: "unknown binary suffix", give: "1Xi", wantErr: true},
		{name: "tebibytes unsupported", give: "1Ti", wantErr: true},
		{name: "decimal suffix unsupported", give: "1M", wantErr: true},
		{name: "non numeric", give: "lots", wantErr: true},
		{name: "negative", give: "-1Mi", wantErr: true},
		{name: "empty", give: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := units.ParseMemory(tt.give)
			if tt.wantErr {
				require.ErrorIs(t, err, units.ErrUnitParse)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnitParseError(t *testing.T) {
	t.Parallel()

	_, err := units.ParseMemory("12Xi")

	var parseErr *units.UnitParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "12Xi", parseErr.Raw)
	assert.Contains(t, parseErr.Error(), "Xi")
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		giveValue int64
		giveQuota int64
		want      float64
		wantErr   bool
	}{
		{name: "quarter", giveValue: 250, giveQuota: 1000, want: 25},
		{name: "rounded to one decimal", giveValue: 1, giveQuota: 3, want: 33.3},
		{name: "rounded up", giveValue: 2, giveQuota: 3, want: 66.7},
		{name: "clamped high", giveValue: 3000, giveQuota: 1000, want: 100},
		{name: "clamped low", giveValue: -5, giveQuota: 1000, want: 0},
		{name: "zero quota", giveValue: 10, giveQuota: 0, wantErr: true},
		{name: "negative quota", giveValue: 10, giveQuota: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := units.Percent(tt.giveValue, tt.giveQuota)
			if tt.wantErr {
				require.ErrorIs(t, err, units.ErrInvalidQuota)

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}
