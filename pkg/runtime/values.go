package runtime

import (
	"fmt"
	"math/big"

	"rinha/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindStr
	KindTuple
	KindClosure
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindStr:
		return "str"
	case KindTuple:
		return "tuple"
	case KindClosure:
		return "closure"
	case KindVoid:
		return "void"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

// IntValue holds an unbounded integer. Literals enter as int32 from the wire
// encoding but arithmetic (and the Fibonacci fast path) exceeds word range.
type IntValue struct {
	Val *big.Int
}

func (v IntValue) Kind() Kind { return KindInt }

// NewInt wraps a machine integer.
func NewInt(n int64) IntValue {
	return IntValue{Val: big.NewInt(n)}
}

type StrValue struct {
	Val string
}

func (v StrValue) Kind() Kind { return KindStr }

// VoidValue is the result of Print. It displays as nothing.
type VoidValue struct{}

func (VoidValue) Kind() Kind { return KindVoid }

//-----------------------------------------------------------------------------
// Tuples and closures
//-----------------------------------------------------------------------------

// TupleValue pairs two independently owned values; the language imposes no
// homogeneity constraint on the components.
type TupleValue struct {
	First  Value
	Second Value
}

func (v TupleValue) Kind() Kind { return KindTuple }

// ClosureValue pairs a function body with the environment active at its
// definition. Env is a shared mutable frame, never a snapshot: a Let that
// binds the closure inserts the binding into that same frame, which is what
// lets the body call itself by name.
type ClosureValue struct {
	Parameters []string
	Body       ast.Term
	Env        *Environment
}

func (v *ClosureValue) Kind() Kind { return KindClosure }

//-----------------------------------------------------------------------------
// Structural equality and display
//-----------------------------------------------------------------------------

// Equal reports structural equality. Values of different kinds are unequal,
// not an error. Closures compare by identity of their captured parts.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case BoolValue:
		return x.Val == b.(BoolValue).Val
	case IntValue:
		return x.Val.Cmp(b.(IntValue).Val) == 0
	case StrValue:
		return x.Val == b.(StrValue).Val
	case TupleValue:
		y := b.(TupleValue)
		return Equal(x.First, y.First) && Equal(x.Second, y.Second)
	case *ClosureValue:
		y := b.(*ClosureValue)
		return x == y || (x.Env == y.Env && x.Body == y.Body && len(x.Parameters) == len(y.Parameters))
	case VoidValue:
		return true
	default:
		return false
	}
}

// Display renders a value the way Print writes it.
func Display(v Value) string {
	switch x := v.(type) {
	case BoolValue:
		if x.Val {
			return "true"
		}
		return "false"
	case IntValue:
		return x.Val.String()
	case StrValue:
		return x.Val
	case TupleValue:
		return fmt.Sprintf("(%s, %s)", Display(x.First), Display(x.Second))
	case *ClosureValue:
		return "<#closure>"
	case VoidValue:
		return ""
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}
