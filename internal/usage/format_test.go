package usage

import (
	"math"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0.0bytes"},
		{1, "1.0bytes"},
		{1023, "1023.0bytes"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{1024 * 1024, "1.0MB"},
		{1024 * 1024 * 1024, "1.0GB"},
		{1024 * 1024 * 1024 * 1024 * 5, "5.0TB"},
		{1024 * 1024 * 1024 * 1024 * 1024 * 3, "3072.0TB"},
		{-1023, "-1023.0bytes"},
		{-1024, "-1.0KB"},
		{-1024 * 1024 * 2, "-2.0MB"},
	}

	for _, test := range tests {
		result := FormatBytes(test.input)
		if result != test.expected {
			t.Errorf("FormatBytes(%v) = %s; expected %s", test.input, result, test.expected)
		}
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{123, "123"},
		{1234, "1,234"},
		{1234567, "1,234,567"},
		{-9876, "-9,876"},
	}

	for _, test := range tests {
		result := FormatCount(test.input)
		if result != test.expected {
			t.Errorf("FormatCount(%d) = %s; expected %s", test.input, result, test.expected)
		}
	}
}

func TestFormatCounter(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{0, "0"},
		{1234, "1,234"},
		{9007199254740993, "9,007,199,254,740,993"},
		{math.MaxInt64, "9,223,372,036,854,775,807"},
		{9223372036854775808, "9,223,372,036,854,775,808"},
		{math.MaxUint64, "18,446,744,073,709,551,615"},
	}

	for _, test := range tests {
		result := FormatCounter(test.input)
		if result != test.expected {
			t.Errorf("FormatCounter(%d) = %s; expected %s", test.input, result, test.expected)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	tests := []struct {
		ratio    float64
		ok       bool
		expected string
	}{
		{0.5, true, "50.00%"},
		{0.1234, true, "12.34%"},
		{0, true, "0.00%"},
		{-0.25, true, "-25.00%"},
		{0, false, Unavailable},
		{math.NaN(), false, Unavailable},
	}

	for _, test := range tests {
		result := FormatRatio(test.ratio, test.ok)
		if result != test.expected {
			t.Errorf("FormatRatio(%v, %v) = %s; expected %s", test.ratio, test.ok, result, test.expected)
		}
	}
}
