package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLAK(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "LAK 0.00"},
		{"no grouping", 500, "LAK 500.00"},
		{"one separator", 2500, "LAK 2,500.00"},
		{"million", 1000000, "LAK 1,000,000.00"},
		{"fraction", 1234.5, "LAK 1,234.50"},
		{"exact boundary", 999, "LAK 999.00"},
		{"boundary crossed", 1000, "LAK 1,000.00"},
		{"negative", -1234.5, "LAK -1,234.50"},
		{"two decimal rounding", 2.005, "LAK 2.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLAK(tt.amount))
		})
	}
}

func TestFormatLAKDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, "LAK 1,234,567.89", FormatLAK(1234567.89))
	}
}
