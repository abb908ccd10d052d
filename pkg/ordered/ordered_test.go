package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparisonMatchers(t *testing.T) {
	tests := []struct {
		name   string
		m      *ComparisonMatcher[float64]
		value  float64
		passed bool
	}{
		{"greater", BeGreaterThan(10.98), 12.5, true},
		{"not greater", BeGreaterThan(14.98), 12.5, false},
		{"greater or equal", BeGreaterThanEqualTo(12.59), 12.59, true},
		{"less", BeLessThan(9.98), 6.98, true},
		{"not less", BeLessThan(6.98), 6.98, false},
		{"less or equal", BeLessThanEqualTo(12.59), 12.59, true},
		{"not less or equal", BeLessThanEqualTo(1.0), 12.59, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.passed, tt.m.Test(tt.value).Passed())
		})
	}
}

func TestComparisonMatcher_Messages(t *testing.T) {
	r := BeGreaterThan(10).Test(3)

	assert.Equal(t, "3 should be greater than 10", r.FailureMessage())
	assert.Equal(t, "3 should not be greater than 10", r.NegatedFailureMessage())
	assert.Equal(t, "be less than or equal to 2", BeLessThanEqualTo(2).String())
	assert.Equal(t, "unknown", Comparison(99).String())
}

func TestComparisonMatcher_Strings(t *testing.T) {
	assert.True(t, BeLessThan("b").Test("a").Passed())
	assert.False(t, BeGreaterThan("b").Test("a").Passed())
}
