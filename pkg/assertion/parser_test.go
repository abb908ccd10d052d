package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssertionString_TypeAndValue(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedType string
		expectedVal  any
	}{
		{
			name:         "contains with value",
			input:        "contains:func",
			expectedType: "contains",
			expectedVal:  "func",
		},
		{
			name:         "count with numeric value",
			input:        "min_count:100",
			expectedType: "min_count",
			expectedVal:  "100",
		},
		{
			name:         "not_empty without value",
			input:        "not_empty",
			expectedType: "not_empty",
			expectedVal:  nil,
		},
		{
			name:         "value with colons",
			input:        "contains:http://example.com",
			expectedType: "contains",
			expectedVal:  "http://example.com",
		},
		{
			name:         "empty value after colon",
			input:        "contains:",
			expectedType: "contains",
			expectedVal:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, val := ParseAssertionString(tt.input)
			assert.Equal(t, tt.expectedType, typ)
			assert.Equal(t, tt.expectedVal, val)
		})
	}
}

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		input    string
		expected Definition
	}{
		{
			input:    "not_empty",
			expected: Definition{Type: "not_empty", Target: "body"},
		},
		{
			input:    "!contains:beta",
			expected: Definition{Type: "contains", Target: "body", Value: "beta", Not: true},
		},
		{
			input:    "contains_any:go, rust",
			expected: Definition{Type: "contains_any", Target: "body", Values: []any{"go", "rust"}},
		},
		{
			input:    "in_range:1,5",
			expected: Definition{Type: "in_range", Target: "body", Values: []any{"1", "5"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDefinition("body", tt.input))
		})
	}
}

func TestParseDefinition_Evaluates(t *testing.T) {
	e := NewEngine()

	assert.True(t, e.Evaluate(ParseDefinition("n", "in_range:1,5"), 3).Passed)
	assert.True(t, e.Evaluate(ParseDefinition("n", "greater_than:2"), 3).Passed)
	assert.True(t, e.Evaluate(ParseDefinition("s", "!contains:beta"), "alpha").Passed)
	assert.False(t, e.Evaluate(ParseDefinition("s", "contains_all:a,z"), "abc").Passed)
}

func TestDefinition_String(t *testing.T) {
	assert.Equal(t, "not_empty", Definition{Type: "not_empty"}.String())
	assert.Equal(t, `not contains "x"`, Definition{Type: "contains", Value: "x", Not: true}.String())
	assert.Equal(t, "in_range [1 5]", Definition{Type: "in_range", Values: []any{1, 5}}.String())
	assert.Equal(t,
		`any_of(equal 0, all_of(prefix "a"))`,
		Definition{AnyOf: []Definition{
			{Type: "equal", Value: 0},
			{AllOf: []Definition{{Type: "prefix", Value: "a"}}},
		}}.String(),
	)
}
