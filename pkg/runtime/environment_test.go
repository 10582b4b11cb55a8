package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", NewInt(1))

	val, ok := env.Get("x")
	require.True(t, ok)
	assert.True(t, Equal(NewInt(1), val))

	_, ok = env.Get("missing")
	assert.False(t, ok)
}

func TestDefineShadowsInSameScope(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", NewInt(1))
	env.Define("x", NewInt(2))

	val, ok := env.Get("x")
	require.True(t, ok)
	assert.True(t, Equal(NewInt(2), val))
}

func TestGetWalksOutward(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("x", NewInt(1))
	root.Define("y", NewInt(2))

	child := NewEnvironment(root)
	child.Define("x", NewInt(10))

	val, ok := child.Get("x")
	require.True(t, ok)
	assert.True(t, Equal(NewInt(10), val), "inner binding wins")

	val, ok = child.Get("y")
	require.True(t, ok)
	assert.True(t, Equal(NewInt(2), val), "outer binding reachable")

	// Lookups never leak inward.
	_, ok = root.Get("z")
	assert.False(t, ok)
	assert.Same(t, root, child.Parent())
}

func TestSharedFrameMutationIsVisible(t *testing.T) {
	// A closure capturing a frame observes bindings inserted after capture.
	// This is the property that makes Let-bound recursion work.
	frame := NewEnvironment(nil)
	captured := &ClosureValue{Env: frame}

	frame.Define("self", captured)

	val, ok := captured.Env.Get("self")
	require.True(t, ok)
	assert.Same(t, captured, val)
}

func TestNamesSorted(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("b", NewInt(2))
	env.Define("a", NewInt(1))
	env.Define("c", NewInt(3))
	assert.Equal(t, []string{"a", "b", "c"}, env.Names())
}
