package scope

import (
	"testing"

	"github.com/amaji/lumen/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareAndLookup(t *testing.T) {
	f := NewCallFrame("main")
	require.True(t, f.Declare("x", objects.NewInt(5)))
	v, ok := f.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, objects.NewInt(5), v)
}

func TestRedeclareInSameScopeFails(t *testing.T) {
	f := NewCallFrame("main")
	f.Declare("x", objects.NewInt(1))
	assert.False(t, f.Declare("x", objects.NewInt(2)))
}

func TestInnerScopeShadowsAndUnwinds(t *testing.T) {
	f := NewCallFrame("main")
	f.Declare("x", objects.NewInt(1))
	f.PushScope()
	assert.True(t, f.Declare("x", objects.NewInt(2)))
	v, _ := f.Lookup("x")
	assert.Equal(t, objects.NewInt(2), v)
	f.PopScope()
	v, _ = f.Lookup("x")
	assert.Equal(t, objects.NewInt(1), v)
}

func TestAssignUpdatesOuterBindingFromInnerBlock(t *testing.T) {
	f := NewCallFrame("main")
	f.Declare("x", objects.NewInt(1))
	f.PushScope()
	assert.True(t, f.Assign("x", objects.NewInt(9)))
	f.PopScope()
	v, _ := f.Lookup("x")
	assert.Equal(t, objects.NewInt(9), v)
}

func TestAssignMissingReportsFalse(t *testing.T) {
	f := NewCallFrame("main")
	assert.False(t, f.Assign("never_declared", objects.NewInt(1)))
}

func TestExceptionAttributeBinding(t *testing.T) {
	f := NewCallFrame("main")
	f.BindExceptionAttrs("e", map[string]objects.Value{
		"message": objects.NewString("boom"),
	})
	v, ok := f.Attribute("e", "message")
	require.True(t, ok)
	assert.Equal(t, objects.NewString("boom"), v)

	_, ok = f.Attribute("e", "missing")
	assert.False(t, ok)
}
