package slate

import (
	"errors"
	"fmt"
)

// Failure classes surfaced by the evaluator. Errors wrap one of these
// sentinels so callers can classify them with errors.Is.
var (
	// ErrUndefinedVariable indicates an identifier with no binding in
	// the environment.
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrSlotNotFound indicates a slot lookup that failed everywhere in
	// the prototype chain.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrProtoCycle indicates a cyclic prototype chain detected during
	// slot lookup.
	ErrProtoCycle = errors.New("cycle in prototype chain")
	// ErrNoMethod indicates a message whose name resolved to no slot on
	// the receiver.
	ErrNoMethod = errors.New("no such method")
	// ErrNotCallable indicates a message whose slot holds a plain value
	// rather than a method.
	ErrNotCallable = errors.New("slot is not callable")
	// ErrDivideByZero indicates division or modulo by a zero-valued
	// Number.
	ErrDivideByZero = errors.New("division by zero")
	// ErrBooleanRequired indicates a control-flow message sent to a
	// receiver without a boolean value.
	ErrBooleanRequired = errors.New("can only be sent to Boolean objects")
	// ErrBlockRequired indicates a control-flow message without its
	// single block argument.
	ErrBlockRequired = errors.New("expects a block argument")
)

// A SyntaxError reports a lexical or grammatical failure along with the
// position that triggered it.
type SyntaxError struct {
	Line, Col int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Col, e.Msg)
}
