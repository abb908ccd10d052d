package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/internal/mtest"
	"digital.vasic.matchers/pkg/matcher"
)

var frameworks = []string{"junit", "assert4j", "catch2"}

func TestContain(t *testing.T) {
	assert.True(t, Contain("assert4j").Test(frameworks).Passed())

	r := Contain("catch").Test(frameworks)
	assert.False(t, r.Passed())
	assert.Equal(t, "[junit assert4j catch2] should contain catch", r.FailureMessage())
}

func TestContain_ShouldAndShouldNot(t *testing.T) {
	pos, neg := &mtest.Recorder{}, &mtest.Recorder{}

	matcher.Should(pos, frameworks, Contain("catch"))
	matcher.ShouldNot(neg, frameworks, Contain("catch"))

	assert.True(t, pos.Failed())
	assert.False(t, neg.Failed())
}

func TestShouldNotContain_FailsWhenPresent(t *testing.T) {
	rt := &mtest.Recorder{}

	matcher.ShouldNot(rt, frameworks, Contain("catch2"))

	assert.Equal(t,
		"assertion failed: [junit assert4j catch2] should not contain catch2",
		rt.LastFailure())
}

func TestContainAll(t *testing.T) {
	assert.True(t, ContainAll("junit", "catch2").Test(frameworks).Passed())

	r := ContainAll("junit", "gtest", "xunit").Test(frameworks)
	require.False(t, r.Passed())
	assert.Equal(t,
		"[junit assert4j catch2] should contain all of [junit gtest xunit] but was missing [gtest xunit]",
		r.FailureMessage())
}

func TestContainAny(t *testing.T) {
	assert.True(t, ContainAny("gtest", "catch2").Test(frameworks).Passed())
	assert.False(t, ContainAny("gtest", "xunit").Test(frameworks).Passed())
}

func TestContainAllAny_NoElements(t *testing.T) {
	assert.True(t, ContainAll[string]().Test(frameworks).Passed())
	assert.False(t, ContainAny[string]().Test(frameworks).Passed())
}

func TestBeEmpty(t *testing.T) {
	var empty []int

	pos, neg := &mtest.Recorder{}, &mtest.Recorder{}
	matcher.Should(pos, empty, BeEmpty[int]())
	matcher.ShouldNot(neg, empty, BeEmpty[int]())

	assert.False(t, pos.Failed())
	require.True(t, neg.Failed())
	assert.Equal(t, "assertion failed: [] should not be empty", neg.LastFailure())
}

func TestHaveDuplicates(t *testing.T) {
	assert.False(t, HaveDuplicates[string]().Test(frameworks).Passed())

	r := HaveDuplicates[int]().Test([]int{1, 2, 1})
	assert.True(t, r.Passed())
	assert.Equal(t, "[1 2 1] should not have duplicates but 1 was repeated", r.NegatedFailureMessage())
}

func TestHaveDuplicates_UncomparableElements(t *testing.T) {
	values := []any{[]int{1}, []int{1}}

	var r matcher.Result
	require.NotPanics(t, func() { r = HaveDuplicates[any]().Test(values) })
	assert.False(t, r.Passed())
	assert.Equal(t, "[[1] [1]] should have duplicates", r.FailureMessage())

	mixed := []any{[]int{1}, "go", map[string]int{}, "go"}
	require.NotPanics(t, func() { r = HaveDuplicates[any]().Test(mixed) })
	assert.True(t, r.Passed())
	assert.Contains(t, r.NegatedFailureMessage(), "but go was repeated")
}

func TestContain_UncomparableElements(t *testing.T) {
	values := []any{[]int{1}, "go"}

	var r matcher.Result
	require.NotPanics(t, func() { r = Contain[any]([]int{1}).Test(values) })
	assert.False(t, r.Passed())
	assert.True(t, Contain[any]("go").Test(values).Passed())
}
