package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueTypes(t *testing.T) {
	assert.Equal(t, IntType, NewInt(5).Type())
	assert.Equal(t, FloatType, NewFloat(1.5).Type())
	assert.Equal(t, BoolType, NewBool(true).Type())
	assert.Equal(t, StringType, NewString("x").Type())
}

func TestStringRendering(t *testing.T) {
	assert.Equal(t, "5", NewInt(5).String())
	assert.Equal(t, "true", NewBool(true).String())
	assert.Equal(t, "false", NewBool(false).String())
	assert.Equal(t, "hello", NewString("hello").String())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(NewInt(5), NewInt(5)))
	assert.False(t, Equal(NewInt(5), NewInt(6)))
	assert.True(t, Equal(NewString("a"), NewString("a")))
}

func TestLess(t *testing.T) {
	assert.True(t, Less(NewInt(1), NewInt(2)))
	assert.True(t, Less(NewString("a"), NewString("b")))
	assert.False(t, Less(NewFloat(2.0), NewFloat(1.0)))
}
