package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapMatchers(t *testing.T) {
	m := map[string]int{"junit": 5, "catch": 2}

	assert.True(t, ContainKey[string, int]("junit").Test(m).Passed())
	assert.False(t, ContainKey[string, int]("gtest").Test(m).Passed())

	assert.True(t, ContainValue[string](2).Test(m).Passed())
	assert.False(t, ContainValue[string](3).Test(m).Passed())

	assert.True(t, ContainEntry("catch", 2).Test(m).Passed())
	assert.False(t, ContainEntry("catch", 5).Test(m).Passed())
	assert.False(t, ContainEntry("gtest", 0).Test(m).Passed())

	assert.True(t, HaveMapSize[string, int](2).Test(m).Passed())
	assert.False(t, HaveMapSize[string, int](0).Test(m).Passed())
}

func TestContainKey_Message(t *testing.T) {
	r := ContainKey[string, int]("b").Test(map[string]int{"a": 1})

	assert.Equal(t, "map[a:1] should contain key b", r.FailureMessage())
	assert.Equal(t, "map[a:1] should not contain key b", r.NegatedFailureMessage())
}
