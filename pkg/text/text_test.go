package text

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.matchers/internal/mtest"
	"digital.vasic.matchers/pkg/matcher"
)

func TestTextMatchers(t *testing.T) {
	tests := []struct {
		name   string
		m      matcher.Matcher[string]
		value  string
		passed bool
	}{
		{"empty", BeEmpty(), "", true},
		{"not empty", BeEmpty(), "x", false},
		{"blank", BeBlank(), " \t\n", true},
		{"contain", Contain("goal"), "goalkeeper", true},
		{"contain missing", Contain("keeper"), "goal", false},
		{"contain ignoring case", ContainIgnoringCase("GOAL"), "goalkeeper", true},
		{"contain all", ContainAllOf("goal", "keeper"), "goalkeeper", true},
		{"contain all missing", ContainAllOf("goal", "post"), "goalkeeper", false},
		{"contain any", ContainAnyOf("post", "keeper"), "goalkeeper", true},
		{"contain any none", ContainAnyOf(), "goalkeeper", false},
		{"prefix", HavePrefix("goal"), "goalkeeper", true},
		{"suffix", HaveSuffix("goal"), "goalkeeper", false},
		{"length runes", HaveLength(4), "café", true},
		{"equal fold", BeEqualIgnoringCase("Assert"), "aSSERT", true},
		{"regex", MatchRegex(`^\d{3}$`), "123", true},
		{"regex miss", MatchRegex(`^\d{3}$`), "12a", false},
		{"invalid regex", MatchRegex(`(`), "(", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.passed, tt.m.Test(tt.value).Passed())
		})
	}
}

func TestTextMatchers_Messages(t *testing.T) {
	r := HavePrefix("x").Test("abc")

	assert.Equal(t, `"abc" should have prefix "x"`, r.FailureMessage())
	assert.Equal(t, `"abc" should not have prefix "x"`, r.NegatedFailureMessage())
}

func TestMatchRegex_InvalidPatternMessage(t *testing.T) {
	r := MatchRegex(`(`).Test("x")

	assert.Contains(t, r.FailureMessage(), "pattern is invalid")
}

func TestText_Dispatch(t *testing.T) {
	rt := &mtest.Recorder{}

	matcher.Expect[string](rt, "junit").
		Should(HaveLength(5)).
		ShouldNot(BeBlank()).
		Should(matcher.Any(HavePrefix("x"), HaveSuffix("unit")))

	assert.False(t, rt.Failed())
}
