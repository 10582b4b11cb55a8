package ast

// Terse constructors for building terms in code. Locations are zeroed; the
// decoder is the only producer of real spans.

func Bool(value bool) *BoolLit {
	return NewBoolLit(value, Location{})
}

func Int(value int32) *IntLit {
	return NewIntLit(value, Location{})
}

func Str(value string) *StrLit {
	return NewStrLit(value, Location{})
}

func V(name string) *Var {
	return NewVar(name, Location{})
}

func Fn(params []string, body Term) *Function {
	parameters := make([]Parameter, 0, len(params))
	for _, p := range params {
		parameters = append(parameters, Parameter{Text: p})
	}
	return NewFunction(parameters, body, Location{})
}

func CallExpr(callee Term, args ...Term) *Call {
	return NewCall(callee, args, Location{})
}

func LetExpr(name string, value, next Term) *Let {
	return NewLet(Parameter{Text: name}, value, next, Location{})
}

func IfExpr(condition, then, otherwise Term) *If {
	return NewIf(condition, then, otherwise, Location{})
}

func Bin(op BinaryOp, lhs, rhs Term) *Binary {
	return NewBinary(lhs, op, rhs, Location{})
}

func PrintExpr(value Term) *Print {
	return NewPrint(value, Location{})
}

func FirstOf(value Term) *First {
	return NewFirst(value, Location{})
}

func SecondOf(value Term) *Second {
	return NewSecond(value, Location{})
}

func Pair(first, second Term) *Tuple {
	return NewTuple(first, second, Location{})
}
