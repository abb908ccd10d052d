package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/internal/mtest"
)

func TestShould_Passes(t *testing.T) {
	rt := &mtest.Recorder{}

	ok := Should(rt, 4, isEven())

	assert.True(t, ok)
	assert.False(t, rt.Failed())
	assert.Positive(t, rt.HelperCalls())
}

func TestShould_FailsWithFailureMessage(t *testing.T) {
	rt := &mtest.Recorder{}

	ok := Should(rt, 3, isEven())

	assert.False(t, ok)
	require.Len(t, rt.Failures(), 1)
	assert.Equal(t, "assertion failed: 3 should be even", rt.LastFailure())
}

func TestShouldNot_Passes(t *testing.T) {
	rt := &mtest.Recorder{}

	assert.True(t, ShouldNot(rt, 3, isEven()))
	assert.False(t, rt.Failed())
}

func TestShouldNot_FailsWithNegatedMessage(t *testing.T) {
	rt := &mtest.Recorder{}

	ok := ShouldNot(rt, 4, isEven())

	assert.False(t, ok)
	require.Len(t, rt.Failures(), 1)
	assert.Equal(t, "assertion failed: 4 should not be even", rt.LastFailure())
}

func TestShould_ShouldNot_AreComplements(t *testing.T) {
	for v := -5; v <= 5; v++ {
		pos, neg := &mtest.Recorder{}, &mtest.Recorder{}
		Should(pos, v, isEven())
		ShouldNot(neg, v, isEven())

		assert.NotEqual(t, pos.Failed(), neg.Failed(),
			"exactly one polarity must fail for %d", v)
	}
}

func TestMatcher_IsDeterministic(t *testing.T) {
	m := All(isEven(), isPositive())

	first := m.Test(-3)
	second := m.Test(-3)

	assert.Equal(t, first, second)
}

func TestCheck_ReturnsAssertionError(t *testing.T) {
	err := Check(3, isEven(), Positive)

	require.Error(t, err)
	assert.True(t, IsAssertionError(err))

	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, Positive, ae.Polarity)
	assert.Equal(t, "3 should be even", ae.Message)
	assert.Equal(t, "assertion failed: 3 should be even", ae.Error())

	assert.NoError(t, Check(3, isEven(), Negative))
}

func TestPanicking_PanicsWithAssertionError(t *testing.T) {
	defer func() {
		rec := recover()
		ae, ok := rec.(*AssertionError)
		require.True(t, ok, "expected *AssertionError, got %T", rec)
		assert.Equal(t, Negative, ae.Polarity)
		assert.Equal(t, "4 should not be even", ae.Message)
	}()

	ShouldNot(Panicking(), 4, isEven())
	t.Fatal("ShouldNot did not panic")
}

func TestPanicking_PassDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Should(Panicking(), 4, isEven())
	})
}

func TestSubject_Chains(t *testing.T) {
	rt := &mtest.Recorder{}

	s := Expect(rt, 4).
		Should(isEven()).
		Should(isPositive()).
		ShouldNot(Not(isEven()))

	assert.Equal(t, 4, s.Value())
	assert.False(t, rt.Failed())
}

func TestSubject_RecordsEachFailure(t *testing.T) {
	rt := &mtest.Recorder{}

	Expect(rt, -3).Should(isEven()).Should(isPositive())

	assert.Equal(t, []string{
		"assertion failed: -3 should be even",
		"assertion failed: -3 should be positive",
	}, rt.Failures())
}
