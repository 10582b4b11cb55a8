package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProgram = `{
  "name": "sum.rinha",
  "expression": {
    "kind": "Let",
    "name": { "text": "add", "location": { "start": 4, "end": 7, "filename": "sum.rinha" } },
    "value": {
      "kind": "Function",
      "parameters": [
        { "text": "a", "location": { "start": 13, "end": 14, "filename": "sum.rinha" } },
        { "text": "b", "location": { "start": 16, "end": 17, "filename": "sum.rinha" } }
      ],
      "value": {
        "kind": "Binary",
        "lhs": { "kind": "Var", "text": "a", "location": { "start": 22, "end": 23, "filename": "sum.rinha" } },
        "op": "Add",
        "rhs": { "kind": "Var", "text": "b", "location": { "start": 26, "end": 27, "filename": "sum.rinha" } },
        "location": { "start": 22, "end": 27, "filename": "sum.rinha" }
      },
      "location": { "start": 10, "end": 27, "filename": "sum.rinha" }
    },
    "next": {
      "kind": "Print",
      "value": {
        "kind": "Call",
        "callee": { "kind": "Var", "text": "add", "location": { "start": 35, "end": 38, "filename": "sum.rinha" } },
        "arguments": [
          { "kind": "Int", "value": 1, "location": { "start": 39, "end": 40, "filename": "sum.rinha" } },
          { "kind": "Int", "value": 2, "location": { "start": 42, "end": 43, "filename": "sum.rinha" } }
        ],
        "location": { "start": 35, "end": 44, "filename": "sum.rinha" }
      },
      "location": { "start": 29, "end": 45, "filename": "sum.rinha" }
    },
    "location": { "start": 0, "end": 45, "filename": "sum.rinha" }
  },
  "location": { "start": 0, "end": 45, "filename": "sum.rinha" }
}`

func TestDecodeFile(t *testing.T) {
	file, err := DecodeFile([]byte(sampleProgram))
	require.NoError(t, err)
	assert.Equal(t, "sum.rinha", file.Name)
	assert.Equal(t, Location{Start: 0, End: 45, Filename: "sum.rinha"}, file.Loc)

	let, ok := file.Expression.(*Let)
	require.True(t, ok, "expression is %T", file.Expression)
	assert.Equal(t, "add", let.Name.Text)
	assert.Equal(t, KindLet, let.TermKind())

	fn, ok := let.Value.(*Function)
	require.True(t, ok, "let value is %T", let.Value)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "a", fn.Parameters[0].Text)
	assert.Equal(t, "b", fn.Parameters[1].Text)

	bin, ok := fn.Value.(*Binary)
	require.True(t, ok, "function body is %T", fn.Value)
	assert.Equal(t, OpAdd, bin.Op)
	assert.Equal(t, Location{Start: 22, End: 27, Filename: "sum.rinha"}, bin.TermLocation())

	printTerm, ok := let.Next.(*Print)
	require.True(t, ok, "let next is %T", let.Next)
	call, ok := printTerm.Value.(*Call)
	require.True(t, ok, "print value is %T", printTerm.Value)
	require.Len(t, call.Arguments, 2)
	lit, ok := call.Arguments[1].(*IntLit)
	require.True(t, ok, "argument is %T", call.Arguments[1])
	assert.Equal(t, int32(2), lit.Value)
}

func TestDecodeTermAllKinds(t *testing.T) {
	loc := `"location": { "start": 0, "end": 1, "filename": "t" }`
	cases := map[string]TermKind{
		`{"kind": "Bool", "value": true, ` + loc + `}`:  KindBool,
		`{"kind": "Int", "value": -3, ` + loc + `}`:     KindInt,
		`{"kind": "Str", "value": "s", ` + loc + `}`:    KindStr,
		`{"kind": "Var", "text": "x", ` + loc + `}`:     KindVar,
		`{"kind": "Tuple", "first": {"kind": "Int", "value": 1, ` + loc + `}, "second": {"kind": "Int", "value": 2, ` + loc + `}, ` + loc + `}`: KindTuple,
		`{"kind": "First", "value": {"kind": "Var", "text": "t", ` + loc + `}, ` + loc + `}`:  KindFirst,
		`{"kind": "Second", "value": {"kind": "Var", "text": "t", ` + loc + `}, ` + loc + `}`: KindSecond,
		`{"kind": "If", "condition": {"kind": "Bool", "value": true, ` + loc + `}, "then": {"kind": "Int", "value": 1, ` + loc + `}, "otherwise": {"kind": "Int", "value": 2, ` + loc + `}, ` + loc + `}`: KindIf,
	}
	for src, kind := range cases {
		term, err := DecodeTerm([]byte(src))
		require.NoError(t, err, src)
		assert.Equal(t, kind, term.TermKind())
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	_, err := DecodeTerm([]byte(`{"kind": "While", "location": { "start": 0, "end": 1, "filename": "t" }}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown term kind "While"`)
}

func TestDecodeRejectsUnknownOperator(t *testing.T) {
	src := `{"kind": "Binary",
	  "lhs": {"kind": "Int", "value": 1, "location": { "start": 0, "end": 1, "filename": "t" }},
	  "op": "Xor",
	  "rhs": {"kind": "Int", "value": 2, "location": { "start": 0, "end": 1, "filename": "t" }},
	  "location": { "start": 0, "end": 1, "filename": "t" }}`
	_, err := DecodeTerm([]byte(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown operator "Xor"`)
}

func TestDecodeRejectsBadIntegers(t *testing.T) {
	loc := `"location": { "start": 0, "end": 1, "filename": "t" }`
	for _, src := range []string{
		`{"kind": "Int", "value": 1.5, ` + loc + `}`,
		`{"kind": "Int", "value": 3000000000, ` + loc + `}`,
		`{"kind": "Int", "value": "7", ` + loc + `}`,
	} {
		_, err := DecodeTerm([]byte(src))
		assert.Error(t, err, src)
	}
}

func TestDecodeRejectsMissingPieces(t *testing.T) {
	_, err := DecodeFile([]byte(`{"name": "x", "location": { "start": 0, "end": 0, "filename": "x" }}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing expression")

	_, err = DecodeTerm([]byte(`{"kind": "Bool", "value": true}`))
	require.Error(t, err)

	_, err = DecodeTerm([]byte(`{"kind": "Let", "name": { "text": "x", "location": { "start": 0, "end": 1, "filename": "t" } }, "location": { "start": 0, "end": 1, "filename": "t" }}`))
	require.Error(t, err)
}

func TestDecodeNotJSON(t *testing.T) {
	_, err := DecodeFile([]byte("let x = 1;"))
	assert.Error(t, err)
	_, err = DecodeTerm([]byte("{"))
	assert.Error(t, err)
}
