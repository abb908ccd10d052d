package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeSortedAscending(t *testing.T) {
	m := BeSortedAscending[int]()

	assert.True(t, m.Test(nil).Passed())
	assert.True(t, m.Test([]int{1}).Passed())
	assert.True(t, m.Test([]int{1, 1, 2, 5}).Passed())

	r := m.Test([]int{1, 3, 2})
	assert.False(t, r.Passed())
	assert.Equal(t, "[1 3 2] should be sorted ascending but 3 came before 2", r.FailureMessage())
}

func TestBeSortedDescending(t *testing.T) {
	m := BeSortedDescending[string]()

	assert.True(t, m.Test([]string{"c", "b", "b", "a"}).Passed())
	assert.False(t, m.Test([]string{"a", "b"}).Passed())
}
