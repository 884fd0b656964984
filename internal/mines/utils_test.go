package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCelltodo(t *testing.T) {
	std := newCelltodo(8)
	assert.True(t, std.empty())

	std.add(3)
	std.add(0)
	std.add(7)
	assert.Equal(t, 3, std.pop())

	std.add(5)
	var got []int
	for !std.empty() {
		got = append(got, std.pop())
	}
	assert.Equal(t, []int{0, 7, 5}, got)

	std.add(3)
	assert.False(t, std.empty())
	assert.Equal(t, 3, std.pop())
	assert.True(t, std.empty())
}
