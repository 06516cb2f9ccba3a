package slate

import (
	"errors"
	"fmt"
	"strings"
)

// Interp evaluates programs against a single global environment. One
// Interp is one session: the prototypes and bindings persist across
// Eval calls, so a REPL and a test can inspect state between programs.
// An Interp must not be used from more than one goroutine at a time.
type Interp struct {
	Runtime *Runtime
	Env     *Environment
}

// NewInterp creates a session with fresh prototypes and an environment
// seeded with them.
func NewInterp() *Interp {
	rt := NewRuntime()
	return &Interp{Runtime: rt, Env: NewEnvironment(rt)}
}

// Eval parses and evaluates source, returning the final statement's
// value, or nil for an empty program. A return statement unwinds to
// here; break and continue outside a loop are errors.
func (in *Interp) Eval(source string) (Value, error) {
	prog, err := Parse(source)
	if err != nil {
		return nil, err
	}
	var result Value
	for _, stmt := range prog.Statements {
		v, stop, err := in.eval(stmt)
		if err != nil {
			return nil, err
		}
		switch stop {
		case NoStop:
			result = v
		case ReturnStop:
			// The top level is the only return boundary for now.
			return v, nil
		case BreakStop:
			return nil, errors.New("'break' outside of a loop")
		case ContinueStop:
			return nil, errors.New("'continue' outside of a loop")
		}
	}
	return result, nil
}

// eval evaluates a single node, producing a value and the completion
// that tells enclosing constructs how evaluation ended.
func (in *Interp) eval(node Node) (Value, Stop, error) {
	switch n := node.(type) {
	case *Literal:
		v, err := in.evalLiteral(n)
		return v, NoStop, err
	case *Identifier:
		v, err := in.Env.Get(n.Name)
		return v, NoStop, err
	case *Assignment:
		return in.evalAssignment(n)
	case *MessageSend:
		return in.evalMessageSend(n)
	case *Block:
		return in.evalBlock(n)
	case *Return:
		v, stop, err := in.eval(n.Value)
		if err != nil || stop != NoStop {
			return v, stop, err
		}
		return v, ReturnStop, nil
	case *Break:
		return nil, BreakStop, nil
	case *Continue:
		return nil, ContinueStop, nil
	}
	return nil, NoStop, fmt.Errorf("cannot evaluate %T", node)
}

// evalLiteral boxes a literal into a fresh instance of its prototype.
func (in *Interp) evalLiteral(n *Literal) (Value, error) {
	switch n.Kind {
	case NumberLiteral:
		return in.Runtime.NewNumber(n.Value), nil
	case StringLiteral:
		return in.Runtime.NewString(n.Value.(string)), nil
	case BooleanLiteral:
		return in.Runtime.NewBoolean(n.Value.(bool)), nil
	}
	return nil, fmt.Errorf("unknown literal kind %v", n.Kind)
}

// evalAssignment evaluates the right-hand side and binds it. A compound
// name is a slot assignment on a named object; assigning to a value
// slot unwraps a boxed right-hand side opportunistically, so the slot
// ends up holding the raw host value when one is available.
func (in *Interp) evalAssignment(n *Assignment) (Value, Stop, error) {
	v, stop, err := in.eval(n.Value)
	if err != nil || stop != NoStop {
		return v, stop, err
	}
	name, slot, isSlot := strings.Cut(n.Name, " ")
	if !isSlot {
		in.Env.Set(n.Name, v)
		return v, NoStop, nil
	}
	target, err := in.Env.Get(name)
	if err != nil {
		return nil, NoStop, err
	}
	recv, ok := target.(*Object)
	if !ok {
		return nil, NoStop, fmt.Errorf("cannot set slot %q on %s", slot, FormatValue(target))
	}
	if slot == "value" {
		if vo, ok := v.(*Object); ok {
			raw, gerr := vo.GetSlot("value")
			switch {
			case gerr == nil:
				recv.SetSlot(slot, raw)
				return v, NoStop, nil
			case !errors.Is(gerr, ErrSlotNotFound):
				return nil, NoStop, gerr
			}
			// No value slot to unwrap; store the boxed value.
		}
	}
	recv.SetSlot(slot, v)
	return v, NoStop, nil
}

// evalMessageSend evaluates the receiver and dispatches the message.
// The three control-flow names are handled by the evaluator itself;
// everything else resolves through the receiver's slots.
func (in *Interp) evalMessageSend(n *MessageSend) (Value, Stop, error) {
	recv, stop, err := in.eval(n.Receiver)
	if err != nil || stop != NoStop {
		return recv, stop, err
	}
	if isControlFlow(n.Message) {
		block, err := controlBlock(n.Message, n.Args)
		if err != nil {
			return nil, NoStop, err
		}
		switch n.Message {
		case "ifTrue":
			return in.evalIfTrue(recv, block)
		case "ifFalse":
			return in.evalIfFalse(recv, block)
		default:
			return in.evalWhileTrue(n.Receiver, recv, block)
		}
	}
	obj, ok := recv.(*Object)
	if !ok {
		return nil, NoStop, fmt.Errorf("%w %q on %s", ErrNoMethod, n.Message, FormatValue(recv))
	}
	slotv, err := obj.GetSlot(n.Message)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return nil, NoStop, fmt.Errorf("%w %q", ErrNoMethod, n.Message)
		}
		return nil, NoStop, err
	}
	m, ok := slotv.(*Method)
	if !ok {
		return nil, NoStop, fmt.Errorf("%w: %q", ErrNotCallable, n.Message)
	}
	args := make([]Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, stop, err := in.eval(a)
		if err != nil || stop != NoStop {
			return v, stop, err
		}
		args = append(args, v)
	}
	switch m.Kind {
	case NativeMethod:
		v, err := m.Fn(in.Runtime, obj, args)
		return v, NoStop, err
	}
	return nil, NoStop, fmt.Errorf("unsupported method kind %v for %q", m.Kind, n.Message)
}

// evalBlock evaluates statements in order; the block's value is the
// last statement's. A non-normal completion skips the remaining
// statements and propagates.
func (in *Interp) evalBlock(b *Block) (Value, Stop, error) {
	var result Value
	for _, stmt := range b.Statements {
		v, stop, err := in.eval(stmt)
		if err != nil {
			return nil, NoStop, err
		}
		if stop != NoStop {
			return v, stop, nil
		}
		result = v
	}
	return result, NoStop, nil
}
