package slate

import (
	"errors"
	"fmt"
)

// Stop represents the reason evaluation of a node ended. Every
// evaluation step returns one; control constructs match on it and
// decide whether to absorb it or pass it along.
type Stop int

const (
	// NoStop indicates normal completion.
	NoStop Stop = iota
	// ContinueStop should be interpreted by loops as a signal to
	// restart the loop immediately.
	ContinueStop
	// BreakStop should be interpreted by loops as a signal to exit.
	BreakStop
	// ReturnStop unwinds to the nearest return boundary, carrying the
	// return value. The top level is the only such boundary for now.
	ReturnStop
)

var stopNames = [...]string{"normal", "continue", "break", "return"}

func (s Stop) String() string {
	if s < NoStop || s > ReturnStop {
		return fmt.Sprintf("Stop(%d)", int(s))
	}
	return stopNames[s]
}

// isControlFlow reports whether a message is handled by the evaluator
// itself rather than by slot lookup.
func isControlFlow(msg string) bool {
	switch msg {
	case "ifTrue", "ifFalse", "whileTrue":
		return true
	}
	return false
}

// controlBlock validates the single block argument every control-flow
// message requires.
func controlBlock(msg string, args []Node) (*Block, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("'%s' %w", msg, ErrBlockRequired)
	}
	b, ok := args[0].(*Block)
	if !ok {
		return nil, fmt.Errorf("'%s' %w", msg, ErrBlockRequired)
	}
	return b, nil
}

// boolValue classifies a receiver as boolean-like: an object whose
// value slot, found anywhere on its chain, holds a host bool. A missing
// value slot is simply not boolean; a cyclic chain is an error.
func boolValue(v Value) (cond, isBool bool, err error) {
	o, ok := v.(*Object)
	if !ok {
		return false, false, nil
	}
	raw, err := o.GetSlot("value")
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return false, false, nil
		}
		return false, false, err
	}
	b, ok := raw.(bool)
	return b, ok, nil
}

// evalIfTrue executes the block if the boolean receiver is true and
// produces no value otherwise.
func (in *Interp) evalIfTrue(recv Value, block *Block) (Value, Stop, error) {
	cond, isBool, err := boolValue(recv)
	if err != nil {
		return nil, NoStop, err
	}
	if !isBool {
		return nil, NoStop, fmt.Errorf("'ifTrue' %w", ErrBooleanRequired)
	}
	if cond {
		return in.evalBlock(block)
	}
	return nil, NoStop, nil
}

// evalIfFalse has three cases. A boolean receiver is the standalone
// form. A no-value receiver means a chained ifTrue did not fire, so
// this block runs. Any other receiver means the ifTrue branch fired;
// its result passes through untouched.
func (in *Interp) evalIfFalse(recv Value, block *Block) (Value, Stop, error) {
	cond, isBool, err := boolValue(recv)
	if err != nil {
		return nil, NoStop, err
	}
	switch {
	case isBool:
		if !cond {
			return in.evalBlock(block)
		}
		return nil, NoStop, nil
	case recv == nil:
		return in.evalBlock(block)
	default:
		return recv, NoStop, nil
	}
}

// evalWhileTrue loops the block while the condition holds. The receiver
// expression, not its already-computed value, is re-evaluated before
// each iteration to obtain a fresh condition. The loop absorbs Break
// and Continue; Return and errors pass through.
func (in *Interp) evalWhileTrue(recvNode Node, recv Value, block *Block) (Value, Stop, error) {
	_, isBool, err := boolValue(recv)
	if err != nil {
		return nil, NoStop, err
	}
	if !isBool {
		return nil, NoStop, fmt.Errorf("'whileTrue' %w", ErrBooleanRequired)
	}
	var result Value
	for {
		c, stop, err := in.eval(recvNode)
		if err != nil {
			return nil, NoStop, err
		}
		if stop != NoStop {
			return c, stop, nil
		}
		cond, isBool, err := boolValue(c)
		if err != nil {
			return nil, NoStop, err
		}
		if !isBool {
			return nil, NoStop, fmt.Errorf("'whileTrue' condition %w", ErrBooleanRequired)
		}
		if !cond {
			return result, NoStop, nil
		}
		v, stop, err := in.evalBlock(block)
		if err != nil {
			return nil, NoStop, err
		}
		switch stop {
		case NoStop:
			result = v
		case ContinueStop:
			// Skip the rest of the body; the condition decides next.
		case BreakStop:
			return result, NoStop, nil
		case ReturnStop:
			return v, ReturnStop, nil
		}
	}
}
