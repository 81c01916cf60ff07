package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwindRunsInReverse(t *testing.T) {
	var order []int
	var u Unwind
	u.Add(func() { order = append(order, 1) })
	u.Add(func() { order = append(order, 2) })
	u.Add(func() { order = append(order, 3) })

	u.Unwind()

	assert.Equal(t, []int{3, 2, 1}, order)
	assert.Empty(t, u)
}

func TestUnwindDiscard(t *testing.T) {
	called := false
	var u Unwind
	u.Add(func() { called = true })

	u.Discard()
	u.Unwind()

	assert.False(t, called)
}
