package ansiseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsArrow(t *testing.T) {
	assert.True(t, IsArrow("[A"))
	assert.True(t, IsArrow("[1;5C"))
	assert.False(t, IsArrow("[H"))
	assert.False(t, IsArrow("[3~"))
}

func TestModifiers(t *testing.T) {
	assert.True(t, IsCtrlPressed("[1;5C"))
	assert.True(t, IsCtrlPressed("[1;6C"))
	assert.False(t, IsCtrlPressed("[1;2C"))

	assert.True(t, IsShiftPressed("[1;2C"))
	assert.True(t, IsShiftPressed("[1;6C"))
	assert.False(t, IsShiftPressed("[1;5C"))
}

func TestIsHomeEnd(t *testing.T) {
	assert.Equal(t, -1, IsHomeEnd("[H"))
	assert.Equal(t, -1, IsHomeEnd("[1~"))
	assert.Equal(t, 1, IsHomeEnd("[F"))
	assert.Equal(t, 1, IsHomeEnd("[4~"))
	assert.Equal(t, 0, IsHomeEnd("[A"))
}

func TestCursorEscapes(t *testing.T) {
	assert.Equal(t, "\x1b[3D", CursorLeft(3))
	assert.Equal(t, "", CursorLeft(0))
	assert.Equal(t, "\x1b[38;2;255;0;0m", SGRForeground(255, 0, 0))
}
