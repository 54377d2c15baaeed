package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBudget(t *testing.T) {
	cases := []struct {
		input    string
		expected float64
	}{
		{"$50,000", 50000},
		{"$125,000", 125000},
		{"1000", 1000},
		{"1000.50", 1000.50},
		{" $2,500.75 ", 2500.75},
		{"", 0},
		{"abc", 0},
		{"$", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ParseBudget(tc.input), "input=%q", tc.input)
	}
}
