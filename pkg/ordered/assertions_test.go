package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/internal/mtest"
)

func TestThat_ChainPasses(t *testing.T) {
	rt := &mtest.Recorder{}

	That(rt, 12.5).
		ShouldBeGreaterThan(10.98).
		ShouldBeGreaterThanEqualTo(12.5).
		ShouldBeLessThan(13).
		ShouldBeLessThanEqualTo(12.5).
		ShouldNotBeGreaterThan(14.98).
		ShouldNotBeGreaterThanEqualTo(12.51).
		ShouldNotBeLessThan(12.5).
		ShouldNotBeLessThanEqualTo(12.49).
		ShouldBeInInclusiveRange(12.5, 12.5).
		ShouldNotBeInInclusiveRange(1, 2).
		ShouldBeInExclusiveRange(12, 13).
		ShouldNotBeInExclusiveRange(1, 12.5)

	assert.Empty(t, rt.Failures())
}

func TestThat_RangeScenario(t *testing.T) {
	rt := &mtest.Recorder{}

	That(rt, 9.98).ShouldBeInInclusiveRange(8.90, 9.99)
	assert.False(t, rt.Failed())

	That(rt, 9.98).ShouldBeInExclusiveRange(8.90, 9.98)
	require.True(t, rt.Failed())
	assert.Equal(t, "assertion failed: 9.98 should be in range [8.9, 9.98)", rt.LastFailure())
}

func TestThat_ShouldNotFailure(t *testing.T) {
	rt := &mtest.Recorder{}

	That(rt, 5).ShouldNotBeGreaterThan(1)

	assert.Equal(t, "assertion failed: 5 should not be greater than 1", rt.LastFailure())
}
