package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	assert.True(t, System.Valid())
	assert.True(t, User.Valid())
	assert.True(t, Assistant.Valid())
	assert.True(t, Tool.Valid())
}

func TestValid_Unknown(t *testing.T) {
	assert.False(t, Role("narrator").Valid())
	assert.False(t, Role("").Valid())
}

func TestString(t *testing.T) {
	assert.Equal(t, "assistant", Assistant.String())
}
