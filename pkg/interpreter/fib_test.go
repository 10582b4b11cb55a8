package interpreter

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rinha/interpreter-go/pkg/ast"
	"rinha/interpreter-go/pkg/runtime"
)

func TestFibKnownValues(t *testing.T) {
	cases := map[int64]string{
		0:   "0",
		1:   "1",
		2:   "1",
		10:  "55",
		30:  "832040",
		90:  "2880067194370816120",
		100: "354224848179261915075",
	}
	for n, want := range cases {
		assert.Equal(t, want, fib(big.NewInt(n)).String(), "F(%d)", n)
	}
}

func TestFibBranchesAgree(t *testing.T) {
	// Cross-check both algorithms against the reference recurrence well past
	// the branch threshold; the threshold must not be observable.
	a := big.NewInt(0)
	b := big.NewInt(1)
	for n := int64(0); n <= 2000; n++ {
		bn := big.NewInt(n)
		iter := fibIterative(bn)
		matrix := fibMatrix(bn)
		require.Zero(t, iter.Cmp(a), "iterative F(%d)", n)
		require.Zero(t, matrix.Cmp(a), "matrix F(%d)", n)
		a, b = b, new(big.Int).Add(a, b)
	}
}

func TestFibThresholdBoundary(t *testing.T) {
	for n := int64(fibMatrixThreshold - 2); n <= fibMatrixThreshold+2; n++ {
		bn := big.NewInt(n)
		assert.Zero(t, fib(bn).Cmp(fibIterative(bn)), "F(%d)", n)
		assert.Zero(t, fib(bn).Cmp(fibMatrix(bn)), "F(%d)", n)
	}
}

func TestFastPathInterceptsBareName(t *testing.T) {
	// fib is never defined by the program; the shortcut still answers.
	in := New(WithStdout(&bytes.Buffer{}))
	val, err := in.Evaluate(ast.CallExpr(ast.V("fib"), ast.Int(30)), runtime.NewEnvironment(nil))
	require.NoError(t, err)
	assertInt(t, val, 832040)
}

func TestFastPathShadowsUserDefinition(t *testing.T) {
	// Behavioural compatibility: a user rebinding of fib is ignored while the
	// fast path is on, and honoured once it is off.
	stub := ast.Fn([]string{"n"}, ast.Int(0))
	program := ast.LetExpr("fib", stub, ast.CallExpr(ast.V("fib"), ast.Int(10)))

	in := New(WithStdout(&bytes.Buffer{}))
	val, err := in.Evaluate(program, runtime.NewEnvironment(nil))
	require.NoError(t, err)
	assertInt(t, val, 55)

	in = New(WithStdout(&bytes.Buffer{}), WithFibFastPath(false))
	val, err = in.Evaluate(program, runtime.NewEnvironment(nil))
	require.NoError(t, err)
	assertInt(t, val, 0)
}

func TestFastPathRequiresExactShape(t *testing.T) {
	in := New(WithStdout(&bytes.Buffer{}))
	env := runtime.NewEnvironment(nil)

	// Two arguments do not match the shortcut and fib is undefined.
	_, err := in.Evaluate(ast.CallExpr(ast.V("fib"), ast.Int(1), ast.Int(2)), env)
	require.Error(t, err)
	assert.Equal(t, "Variable fib is not declared", err.(*Error).Message)

	// A non-integer argument falls through to the user binding.
	stub := ast.Fn([]string{"n"}, ast.Str("fallback"))
	program := ast.LetExpr("fib", stub, ast.CallExpr(ast.V("fib"), ast.Str("x")))
	val, err := in.Evaluate(program, runtime.NewEnvironment(nil))
	require.NoError(t, err)
	assertStr(t, val, "fallback")
}

func TestFastPathNegativeArgumentFallsThrough(t *testing.T) {
	in := New(WithStdout(&bytes.Buffer{}))
	stub := ast.Fn([]string{"n"}, ast.Int(42))
	program := ast.LetExpr("fib", stub, ast.CallExpr(ast.V("fib"), ast.Int(-1)))
	val, err := in.Evaluate(program, runtime.NewEnvironment(nil))
	require.NoError(t, err)
	assertInt(t, val, 42)
}

func TestFastPathMatchesGuestDefinition(t *testing.T) {
	env := runtime.NewEnvironment(nil)
	slow := New(WithStdout(&bytes.Buffer{}), WithFibFastPath(false))
	fast := New(WithStdout(&bytes.Buffer{}))

	for _, n := range []int32{0, 1, 2, 7, 15, 20} {
		program := ast.LetExpr("fib", guestFib(), ast.CallExpr(ast.V("fib"), ast.Int(n)))
		want, err := slow.Evaluate(program, runtime.NewEnvironment(nil))
		require.NoError(t, err)
		got, err := fast.Evaluate(program, env)
		require.NoError(t, err)
		assert.True(t, runtime.Equal(want, got), "F(%d): %s vs %s", n,
			runtime.Display(want), runtime.Display(got))
	}
}
