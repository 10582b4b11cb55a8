package ast

import (
	"encoding/json"
	"fmt"
	"math"
)

// DecodeFile parses a whole program document: {"name", "expression", "location"}.
func DecodeFile(data []byte) (*File, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	name, _ := raw["name"].(string)
	exprRaw, ok := raw["expression"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode program: missing expression node")
	}
	expr, err := decodeTerm(exprRaw)
	if err != nil {
		return nil, err
	}
	loc, err := decodeLocation(raw["location"])
	if err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	return &File{Name: name, Expression: expr, Loc: loc}, nil
}

// DecodeTerm parses a single term node from JSON.
func DecodeTerm(data []byte) (Term, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode term: %w", err)
	}
	return decodeTerm(raw)
}

func decodeTerm(node map[string]any) (Term, error) {
	kind, _ := node["kind"].(string)
	loc, err := decodeLocation(node["location"])
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}

	switch TermKind(kind) {
	case KindBool:
		value, ok := node["value"].(bool)
		if !ok {
			return nil, fmt.Errorf("decode Bool: value is %T, want bool", node["value"])
		}
		return NewBoolLit(value, loc), nil
	case KindInt:
		value, err := decodeInt32(node["value"])
		if err != nil {
			return nil, fmt.Errorf("decode Int: %w", err)
		}
		return NewIntLit(value, loc), nil
	case KindStr:
		value, ok := node["value"].(string)
		if !ok {
			return nil, fmt.Errorf("decode Str: value is %T, want string", node["value"])
		}
		return NewStrLit(value, loc), nil
	case KindVar:
		text, ok := node["text"].(string)
		if !ok {
			return nil, fmt.Errorf("decode Var: text is %T, want string", node["text"])
		}
		return NewVar(text, loc), nil
	case KindFunction:
		paramsRaw, _ := node["parameters"].([]any)
		params := make([]Parameter, 0, len(paramsRaw))
		for _, raw := range paramsRaw {
			param, err := decodeParameter(raw)
			if err != nil {
				return nil, fmt.Errorf("decode Function: %w", err)
			}
			params = append(params, param)
		}
		body, err := decodeChild(node, "value")
		if err != nil {
			return nil, fmt.Errorf("decode Function: %w", err)
		}
		return NewFunction(params, body, loc), nil
	case KindCall:
		callee, err := decodeChild(node, "callee")
		if err != nil {
			return nil, fmt.Errorf("decode Call: %w", err)
		}
		argsRaw, _ := node["arguments"].([]any)
		args := make([]Term, 0, len(argsRaw))
		for _, raw := range argsRaw {
			child, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("decode Call: argument is %T, want object", raw)
			}
			arg, err := decodeTerm(child)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return NewCall(callee, args, loc), nil
	case KindLet:
		name, err := decodeParameter(node["name"])
		if err != nil {
			return nil, fmt.Errorf("decode Let: %w", err)
		}
		value, err := decodeChild(node, "value")
		if err != nil {
			return nil, fmt.Errorf("decode Let: %w", err)
		}
		next, err := decodeChild(node, "next")
		if err != nil {
			return nil, fmt.Errorf("decode Let: %w", err)
		}
		return NewLet(name, value, next, loc), nil
	case KindIf:
		condition, err := decodeChild(node, "condition")
		if err != nil {
			return nil, fmt.Errorf("decode If: %w", err)
		}
		then, err := decodeChild(node, "then")
		if err != nil {
			return nil, fmt.Errorf("decode If: %w", err)
		}
		otherwise, err := decodeChild(node, "otherwise")
		if err != nil {
			return nil, fmt.Errorf("decode If: %w", err)
		}
		return NewIf(condition, then, otherwise, loc), nil
	case KindBinary:
		lhs, err := decodeChild(node, "lhs")
		if err != nil {
			return nil, fmt.Errorf("decode Binary: %w", err)
		}
		rhs, err := decodeChild(node, "rhs")
		if err != nil {
			return nil, fmt.Errorf("decode Binary: %w", err)
		}
		opName, _ := node["op"].(string)
		op, err := decodeBinaryOp(opName)
		if err != nil {
			return nil, err
		}
		return NewBinary(lhs, op, rhs, loc), nil
	case KindPrint:
		value, err := decodeChild(node, "value")
		if err != nil {
			return nil, fmt.Errorf("decode Print: %w", err)
		}
		return NewPrint(value, loc), nil
	case KindFirst:
		value, err := decodeChild(node, "value")
		if err != nil {
			return nil, fmt.Errorf("decode First: %w", err)
		}
		return NewFirst(value, loc), nil
	case KindSecond:
		value, err := decodeChild(node, "value")
		if err != nil {
			return nil, fmt.Errorf("decode Second: %w", err)
		}
		return NewSecond(value, loc), nil
	case KindTuple:
		first, err := decodeChild(node, "first")
		if err != nil {
			return nil, fmt.Errorf("decode Tuple: %w", err)
		}
		second, err := decodeChild(node, "second")
		if err != nil {
			return nil, fmt.Errorf("decode Tuple: %w", err)
		}
		return NewTuple(first, second, loc), nil
	default:
		return nil, fmt.Errorf("decode: unknown term kind %q", kind)
	}
}

func decodeChild(node map[string]any, field string) (Term, error) {
	child, ok := node[field].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field %q is %T, want object", field, node[field])
	}
	return decodeTerm(child)
}

func decodeParameter(raw any) (Parameter, error) {
	node, ok := raw.(map[string]any)
	if !ok {
		return Parameter{}, fmt.Errorf("parameter is %T, want object", raw)
	}
	text, ok := node["text"].(string)
	if !ok {
		return Parameter{}, fmt.Errorf("parameter text is %T, want string", node["text"])
	}
	loc, err := decodeLocation(node["location"])
	if err != nil {
		return Parameter{}, err
	}
	return Parameter{Text: text, Loc: loc}, nil
}

func decodeLocation(raw any) (Location, error) {
	node, ok := raw.(map[string]any)
	if !ok {
		return Location{}, fmt.Errorf("location is %T, want object", raw)
	}
	start, err := decodeOffset(node["start"])
	if err != nil {
		return Location{}, fmt.Errorf("location start: %w", err)
	}
	end, err := decodeOffset(node["end"])
	if err != nil {
		return Location{}, fmt.Errorf("location end: %w", err)
	}
	filename, _ := node["filename"].(string)
	return Location{Start: start, End: end, Filename: filename}, nil
}

func decodeOffset(raw any) (int, error) {
	num, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("offset is %T, want number", raw)
	}
	if num < 0 || num != math.Trunc(num) {
		return 0, fmt.Errorf("offset %v is not a byte position", num)
	}
	return int(num), nil
}

func decodeInt32(raw any) (int32, error) {
	num, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("value is %T, want number", raw)
	}
	if num != math.Trunc(num) {
		return 0, fmt.Errorf("value %v is not an integer", num)
	}
	if num < math.MinInt32 || num > math.MaxInt32 {
		return 0, fmt.Errorf("value %v overflows the wire integer range", num)
	}
	return int32(num), nil
}

func decodeBinaryOp(name string) (BinaryOp, error) {
	switch op := BinaryOp(name); op {
	case OpAdd, OpSub, OpMul, OpDiv, OpRem, OpEq, OpNeq, OpLt, OpGt, OpLte, OpGte, OpAnd, OpOr:
		return op, nil
	default:
		return "", fmt.Errorf("decode Binary: unknown operator %q", name)
	}
}
