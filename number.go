package slate

import (
	"fmt"
	"math"
)

// initNumber installs the arithmetic and comparison methods on the
// Number prototype. Each takes the receiver and one Number argument,
// computes on the host values, and returns a freshly boxed Number or
// Boolean.
func (rt *Runtime) initNumber() {
	rt.Number = rt.Object.Clone()
	rt.Number.SetSlots(Slots{
		"+":  native(numberAdd),
		"-":  native(numberSub),
		"*":  native(numberMul),
		"/":  native(numberDiv),
		"%":  native(numberMod),
		"<":  native(numberLess),
		"<=": native(numberLessOrEqual),
		"==": native(numberEqual),
		">=": native(numberGreaterOrEqual),
		">":  native(numberGreater),
	})
}

// hostNum extracts a host number from a value slot's contents.
func hostNum(v Value) (f float64, isInt, ok bool) {
	switch v := v.(type) {
	case int64:
		return float64(v), true, true
	case float64:
		return v, false, true
	}
	return 0, false, false
}

// numOperands reads the receiver's and the single argument's value
// slots for a binary Number method. isInt reports whether both operands
// are integers, which decides the result representation for the
// operators that preserve integers.
func numOperands(op string, self *Object, args []Value) (x, y float64, isInt bool, err error) {
	if len(args) != 1 {
		return 0, 0, false, fmt.Errorf("'%s' requires one Number argument", op)
	}
	xv, err := self.GetSlot("value")
	if err != nil {
		return 0, 0, false, err
	}
	other, ok := args[0].(*Object)
	if !ok {
		return 0, 0, false, fmt.Errorf("'%s' requires a Number argument", op)
	}
	yv, err := other.GetSlot("value")
	if err != nil {
		return 0, 0, false, err
	}
	x, xi, ok := hostNum(xv)
	if !ok {
		return 0, 0, false, fmt.Errorf("'%s' requires a Number receiver", op)
	}
	y, yi, ok := hostNum(yv)
	if !ok {
		return 0, 0, false, fmt.Errorf("'%s' requires a Number argument", op)
	}
	return x, y, xi && yi, nil
}

// numResult boxes an arithmetic result back into the host
// representation the operands had.
func numResult(x float64, isInt bool) Value {
	if isInt {
		return int64(x)
	}
	return x
}

func numberAdd(rt *Runtime, self *Object, args []Value) (Value, error) {
	x, y, isInt, err := numOperands("+", self, args)
	if err != nil {
		return nil, err
	}
	return rt.NewNumber(numResult(x+y, isInt)), nil
}

func numberSub(rt *Runtime, self *Object, args []Value) (Value, error) {
	x, y, isInt, err := numOperands("-", self, args)
	if err != nil {
		return nil, err
	}
	return rt.NewNumber(numResult(x-y, isInt)), nil
}

func numberMul(rt *Runtime, self *Object, args []Value) (Value, error) {
	x, y, isInt, err := numOperands("*", self, args)
	if err != nil {
		return nil, err
	}
	return rt.NewNumber(numResult(x*y, isInt)), nil
}

// numberDiv is true division: the result is always a float, even for
// two integer operands.
func numberDiv(rt *Runtime, self *Object, args []Value) (Value, error) {
	x, y, _, err := numOperands("/", self, args)
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, fmt.Errorf("'/': %w", ErrDivideByZero)
	}
	return rt.NewNumber(x / y), nil
}

// numberMod is floored modulo: the result takes the divisor's sign.
func numberMod(rt *Runtime, self *Object, args []Value) (Value, error) {
	x, y, isInt, err := numOperands("%", self, args)
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, fmt.Errorf("'%%': %w", ErrDivideByZero)
	}
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return rt.NewNumber(numResult(r, isInt)), nil
}

func numberLess(rt *Runtime, self *Object, args []Value) (Value, error) {
	x, y, _, err := numOperands("<", self, args)
	if err != nil {
		return nil, err
	}
	return rt.NewBoolean(x < y), nil
}

func numberLessOrEqual(rt *Runtime, self *Object, args []Value) (Value, error) {
	x, y, _, err := numOperands("<=", self, args)
	if err != nil {
		return nil, err
	}
	return rt.NewBoolean(x <= y), nil
}

func numberEqual(rt *Runtime, self *Object, args []Value) (Value, error) {
	x, y, _, err := numOperands("==", self, args)
	if err != nil {
		return nil, err
	}
	return rt.NewBoolean(x == y), nil
}

func numberGreaterOrEqual(rt *Runtime, self *Object, args []Value) (Value, error) {
	x, y, _, err := numOperands(">=", self, args)
	if err != nil {
		return nil, err
	}
	return rt.NewBoolean(x >= y), nil
}

func numberGreater(rt *Runtime, self *Object, args []Value) (Value, error) {
	x, y, _, err := numOperands(">", self, args)
	if err != nil {
		return nil, err
	}
	return rt.NewBoolean(x > y), nil
}
