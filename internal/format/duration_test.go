package format

import (
	"math/big"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "0µs"},
		{42 * time.Microsecond, "42µs"},
		{999 * time.Microsecond, "999µs"},
		{time.Millisecond, "1ms"},
		{850 * time.Millisecond, "850ms"},
		{time.Second, "1s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.000000"},
		{1500 * time.Millisecond, "1.500000"},
		{123456 * time.Microsecond, "0.123456"},
		{time.Hour, "3600.000000"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.d); got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestGroupInt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{129, "129"},
		{100_000_000, "100,000,000"},
		{-1234567, "-1,234,567"},
	}
	for _, tt := range tests {
		if got := GroupInt(tt.n); got != tt.want {
			t.Errorf("GroupInt(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestGroupBig(t *testing.T) {
	t.Parallel()
	if got := GroupBig(nil); got != "0" {
		t.Errorf("GroupBig(nil) = %q, want 0", got)
	}
	n, _ := new(big.Int).SetString("279209790387276", 10)
	if got := GroupBig(n); got != "279,209,790,387,276" {
		t.Errorf("GroupBig = %q", got)
	}
}
