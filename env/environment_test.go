package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocket-lang/rocket/value"
)

func TestEnvironment_DefineAndLookup(t *testing.T) {
	e := New(nil)
	e.Define("x", value.Int{V: 10})

	v, ok := e.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Int{V: 10}, v)

	_, ok = e.Lookup("missing")
	assert.False(t, ok)
}

func TestEnvironment_ChildSeesParentBindings(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Int{V: 1})

	child := New(parent)
	v, ok := child.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Int{V: 1}, v)
}

func TestEnvironment_ShadowingDoesNotMutateParent(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Int{V: 1})

	child := New(parent)
	child.Define("x", value.Int{V: 2})

	childVal, _ := child.Lookup("x")
	parentVal, _ := parent.Lookup("x")
	assert.Equal(t, value.Int{V: 2}, childVal)
	assert.Equal(t, value.Int{V: 1}, parentVal)
}

func TestEnvironment_AssignUpdatesDefiningFrame(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Int{V: 1})

	child := New(parent)
	ok := child.Assign("x", value.Int{V: 99})
	require.True(t, ok)

	parentVal, _ := parent.Lookup("x")
	assert.Equal(t, value.Int{V: 99}, parentVal)
}

func TestEnvironment_AssignUndefinedFails(t *testing.T) {
	e := New(nil)
	ok := e.Assign("nope", value.Int{V: 1})
	assert.False(t, ok)
}

func TestEnvironment_SatisfiesValueEnvInterface(t *testing.T) {
	var _ value.Env = New(nil)
}
