package ast

// Location records the byte span a node was parsed from. It is produced by
// the external parser and carried unchanged onto every term and every
// evaluation error.
type Location struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Filename string `json:"filename"`
}

type TermKind string

const (
	KindBool     TermKind = "Bool"
	KindInt      TermKind = "Int"
	KindStr      TermKind = "Str"
	KindVar      TermKind = "Var"
	KindFunction TermKind = "Function"
	KindCall     TermKind = "Call"
	KindLet      TermKind = "Let"
	KindIf       TermKind = "If"
	KindBinary   TermKind = "Binary"
	KindPrint    TermKind = "Print"
	KindFirst    TermKind = "First"
	KindSecond   TermKind = "Second"
	KindTuple    TermKind = "Tuple"
)

// Term is one node of the rinha AST. Terms are immutable after decoding;
// the evaluator only reads them and may share them between closures.
type Term interface {
	TermKind() TermKind
	TermLocation() Location
	isTerm()
}

type termImpl struct {
	Kind TermKind `json:"kind"`
	Loc  Location `json:"location"`
}

func newTermImpl(kind TermKind, loc Location) termImpl {
	return termImpl{Kind: kind, Loc: loc}
}

func (t termImpl) TermKind() TermKind     { return t.Kind }
func (t termImpl) TermLocation() Location { return t.Loc }
func (termImpl) isTerm()                  {}

//-----------------------------------------------------------------------------
// Literals
//-----------------------------------------------------------------------------

type BoolLit struct {
	termImpl
	Value bool `json:"value"`
}

func NewBoolLit(value bool, loc Location) *BoolLit {
	return &BoolLit{termImpl: newTermImpl(KindBool, loc), Value: value}
}

// IntLit carries the fixed-width integer from the wire encoding. The runtime
// widens it to an unbounded integer on evaluation.
type IntLit struct {
	termImpl
	Value int32 `json:"value"`
}

func NewIntLit(value int32, loc Location) *IntLit {
	return &IntLit{termImpl: newTermImpl(KindInt, loc), Value: value}
}

type StrLit struct {
	termImpl
	Value string `json:"value"`
}

func NewStrLit(value string, loc Location) *StrLit {
	return &StrLit{termImpl: newTermImpl(KindStr, loc), Value: value}
}

//-----------------------------------------------------------------------------
// Names and functions
//-----------------------------------------------------------------------------

type Var struct {
	termImpl
	Text string `json:"text"`
}

func NewVar(text string, loc Location) *Var {
	return &Var{termImpl: newTermImpl(KindVar, loc), Text: text}
}

// Parameter is a named function parameter. It is not itself a term.
type Parameter struct {
	Text string   `json:"text"`
	Loc  Location `json:"location"`
}

type Function struct {
	termImpl
	Parameters []Parameter `json:"parameters"`
	Value      Term        `json:"value"`
}

func NewFunction(parameters []Parameter, value Term, loc Location) *Function {
	return &Function{termImpl: newTermImpl(KindFunction, loc), Parameters: parameters, Value: value}
}

type Call struct {
	termImpl
	Callee    Term   `json:"callee"`
	Arguments []Term `json:"arguments"`
}

func NewCall(callee Term, arguments []Term, loc Location) *Call {
	return &Call{termImpl: newTermImpl(KindCall, loc), Callee: callee, Arguments: arguments}
}

//-----------------------------------------------------------------------------
// Binding and control flow
//-----------------------------------------------------------------------------

type Let struct {
	termImpl
	Name  Parameter `json:"name"`
	Value Term      `json:"value"`
	Next  Term      `json:"next"`
}

func NewLet(name Parameter, value, next Term, loc Location) *Let {
	return &Let{termImpl: newTermImpl(KindLet, loc), Name: name, Value: value, Next: next}
}

type If struct {
	termImpl
	Condition Term `json:"condition"`
	Then      Term `json:"then"`
	Otherwise Term `json:"otherwise"`
}

func NewIf(condition, then, otherwise Term, loc Location) *If {
	return &If{termImpl: newTermImpl(KindIf, loc), Condition: condition, Then: then, Otherwise: otherwise}
}

//-----------------------------------------------------------------------------
// Operators
//-----------------------------------------------------------------------------

type BinaryOp string

const (
	OpAdd BinaryOp = "Add"
	OpSub BinaryOp = "Sub"
	OpMul BinaryOp = "Mul"
	OpDiv BinaryOp = "Div"
	OpRem BinaryOp = "Rem"
	OpEq  BinaryOp = "Eq"
	OpNeq BinaryOp = "Neq"
	OpLt  BinaryOp = "Lt"
	OpGt  BinaryOp = "Gt"
	OpLte BinaryOp = "Lte"
	OpGte BinaryOp = "Gte"
	OpAnd BinaryOp = "And"
	OpOr  BinaryOp = "Or"
)

type Binary struct {
	termImpl
	LHS Term     `json:"lhs"`
	Op  BinaryOp `json:"op"`
	RHS Term     `json:"rhs"`
}

func NewBinary(lhs Term, op BinaryOp, rhs Term, loc Location) *Binary {
	return &Binary{termImpl: newTermImpl(KindBinary, loc), LHS: lhs, Op: op, RHS: rhs}
}

//-----------------------------------------------------------------------------
// Builtins
//-----------------------------------------------------------------------------

type Print struct {
	termImpl
	Value Term `json:"value"`
}

func NewPrint(value Term, loc Location) *Print {
	return &Print{termImpl: newTermImpl(KindPrint, loc), Value: value}
}

type First struct {
	termImpl
	Value Term `json:"value"`
}

func NewFirst(value Term, loc Location) *First {
	return &First{termImpl: newTermImpl(KindFirst, loc), Value: value}
}

type Second struct {
	termImpl
	Value Term `json:"value"`
}

func NewSecond(value Term, loc Location) *Second {
	return &Second{termImpl: newTermImpl(KindSecond, loc), Value: value}
}

type Tuple struct {
	termImpl
	First  Term `json:"first"`
	Second Term `json:"second"`
}

func NewTuple(first, second Term, loc Location) *Tuple {
	return &Tuple{termImpl: newTermImpl(KindTuple, loc), First: first, Second: second}
}

// File is the root of a decoded program document.
type File struct {
	Name       string   `json:"name"`
	Expression Term     `json:"expression"`
	Loc        Location `json:"location"`
}
