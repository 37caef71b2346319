package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckAddOverflow(t *testing.T) {
	tests := []struct {
		name    string
		a, b    uint64
		wantErr bool
	}{
		{name: "no overflow - small numbers", a: 10, b: 20, wantErr: false},
		{name: "no overflow - one zero", a: 0, b: math.MaxUint64, wantErr: false},
		{name: "no overflow - exact max", a: math.MaxUint64 - 1, b: 1, wantErr: false},
		{name: "overflow - max plus one", a: math.MaxUint64, b: 1, wantErr: true},
		{name: "overflow - large numbers", a: math.MaxUint64 / 2, b: math.MaxUint64/2 + 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAddOverflow(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSafeAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b    uint64
		want    uint64
		wantErr bool
	}{
		{name: "offset plus size", a: 64, b: 10, want: 74, wantErr: false},
		{name: "zero plus zero", a: 0, b: 0, want: 0, wantErr: false},
		{name: "overflow", a: math.MaxUint64, b: 1, want: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeAdd(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCount(t *testing.T) {
	require.NoError(t, ValidateCount(10, 100, "fileCount"))
	require.NoError(t, ValidateCount(100, 100, "fileCount"))

	err := ValidateCount(101, 100, "fileCount")
	require.Error(t, err)
	require.Contains(t, err.Error(), "fileCount")
}

func TestValidateBufferSize(t *testing.T) {
	require.NoError(t, ValidateBufferSize(0, 1000, "metadata"))
	require.NoError(t, ValidateBufferSize(1000, 1000, "metadata"))

	err := ValidateBufferSize(1001, 1000, "metadata")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exceeds maximum")
}
