package slate

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"
)

// A NativeFn is the Go implementation of a built-in method. self is the
// receiver the message resolved against and args are the evaluated
// message arguments.
type NativeFn func(rt *Runtime, self *Object, args []Value) (Value, error)

// MethodKind discriminates the callable forms a slot can hold. The
// union is closed: dispatch switches on the kind and rejects anything
// it does not know.
type MethodKind int

const (
	// NativeMethod is a method implemented in Go.
	NativeMethod MethodKind = iota
	// BlockMethod is reserved for user-defined method bodies, which the
	// language does not have syntax for yet.
	BlockMethod
)

// A Method is a callable slot value. Kind selects the arm that is
// valid.
type Method struct {
	Kind MethodKind
	Fn   NativeFn // valid when Kind is NativeMethod
	// A BlockMethod's body will live here once methods gain syntax.
}

func native(fn NativeFn) *Method {
	return &Method{Kind: NativeMethod, Fn: fn}
}

// Runtime owns the built-in prototypes and the output writer for the
// print primitive. Construct one per interpreter session with
// NewRuntime; there are no package-level singletons, so independent
// sessions never share state.
type Runtime struct {
	Object  *Object
	Number  *Object
	Boolean *Object
	String  *Object

	// Stdout receives print output. Defaults to os.Stdout.
	Stdout io.Writer
}

// NewRuntime seeds the four built-in prototypes.
func NewRuntime() *Runtime {
	rt := &Runtime{Stdout: os.Stdout}
	rt.initObject()
	rt.initNumber()
	rt.Boolean = rt.Object.Clone()
	rt.String = rt.Object.Clone()
	return rt
}

// initObject sets up the root prototype with the slots every object
// inherits.
func (rt *Runtime) initObject() {
	rt.Object = NewObject(nil)
	rt.Object.SetSlots(Slots{
		"clone": native(objectClone),
		"print": native(objectPrint),
	})
}

func objectClone(rt *Runtime, self *Object, args []Value) (Value, error) {
	return self.Clone(), nil
}

// objectPrint writes the receiver's rendering followed by a newline and
// returns the receiver for chaining.
func objectPrint(rt *Runtime, self *Object, args []Value) (Value, error) {
	fmt.Fprintln(rt.Stdout, FormatValue(self))
	return self, nil
}

// FormatValue renders a value the way print does: an object shows its
// own value slot if it has one and an opaque identity marker otherwise;
// raw host primitives render directly.
func FormatValue(v Value) string {
	switch v := v.(type) {
	case nil:
		return "none"
	case *Object:
		if raw, ok := v.GetLocalSlot("value"); ok {
			return FormatValue(raw)
		}
		return fmt.Sprintf("<Object #%d>", v.UniqueID())
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case *Method:
		return "<method>"
	}
	return fmt.Sprintf("%v", v)
}

// NewNumber boxes a host number, which must be an int64 or a float64.
func (rt *Runtime) NewNumber(value Value) *Object {
	n := rt.Number.Clone()
	n.SetSlot("value", value)
	return n
}

// NewBoolean boxes a host bool.
func (rt *Runtime) NewBoolean(value bool) *Object {
	b := rt.Boolean.Clone()
	b.SetSlot("value", value)
	return b
}

// NewString boxes a host string. String instances additionally carry
// their length, in runes, set at boxing time.
func (rt *Runtime) NewString(value string) *Object {
	s := rt.String.Clone()
	s.SetSlot("value", value)
	s.SetSlot("length", int64(utf8.RuneCountInString(value)))
	return s
}
