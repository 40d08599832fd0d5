package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{raw: "12.5", want: 12.5},
		{raw: " 3 ", want: 3},
		{raw: "1.25%", want: 1.25},
		{raw: "", want: 0},
		{raw: "abc", want: 0},
		{raw: "NaN", want: 0},
		{raw: "Inf", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.raw))
		})
	}
}

func TestParseRatio(t *testing.T) {
	assert.Nil(t, ParseRatio(""))
	assert.Nil(t, ParseRatio("x"))

	value := ParseRatio("0")
	if assert.NotNil(t, value) {
		assert.Zero(t, *value)
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.234))
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.236))
	assert.Zero(t, RoundWithTwoDecimalPlace(0))
}
