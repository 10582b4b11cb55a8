package interpreter

import (
	"fmt"

	"rinha/interpreter-go/pkg/ast"
)

// Error is a located evaluation failure. It is constructed once at the point
// of detection with the most local relevant span and propagates unchanged to
// the caller; nothing inside the evaluator recovers or rewraps it.
type Error struct {
	Loc     ast.Location
	Message string
}

func newError(message string, loc ast.Location) *Error {
	return &Error{Loc: loc, Message: message}
}

// Error renders the diagnostic contract consumed by tooling:
// <filename>:<start>:<end>: <message>.
func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Loc.Filename, e.Loc.Start, e.Loc.End, e.Message)
}
