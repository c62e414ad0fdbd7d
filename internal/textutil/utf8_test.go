package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExpectedLength(t *testing.T) {
	cases := []struct {
		b    byte
		want int
	}{
		{'a', 1},
		{0xC2, 2},
		{0xE2, 3},
		{0xF0, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, GetExpectedLength(c.b))
	}
}

func TestSplitLinesAndGetLine(t *testing.T) {
	s := "one\ntwo\nthree"
	lines := SplitLines(s)
	require.Equal(t, []string{"one", "two", "three"}, lines)

	line, err := GetLine(s, 1)
	require.NoError(t, err)
	assert.Equal(t, "two", line)

	_, err = GetLine(s, 5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestMoveIndexToDirectionWordBoundary(t *testing.T) {
	s := "hello world"
	// From the end, moving left should land at the start of "world".
	assert.Equal(t, 6, MoveIndexToDirection(s, len(s), -1))
	// From the start, moving right should land just past "hello".
	assert.Equal(t, 5, MoveIndexToDirection(s, 0, 1))
}

func TestMoveIndexToDirectionMonotonic(t *testing.T) {
	s := "one two three"
	i := 0
	for n := 0; n < 10; n++ {
		next := MoveIndexToDirection(s, i, 1)
		assert.GreaterOrEqual(t, next, i)
		i = next
	}
	// idempotent at end of string
	assert.Equal(t, len(s), MoveIndexToDirection(s, len(s), 1))
}

func TestIndexToLineColumn(t *testing.T) {
	s := "echo hi\nworld"
	line, col := IndexToLineColumn(s, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = IndexToLineColumn(s, 8) // 'w' of world
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}
