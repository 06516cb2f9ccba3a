package slate

import (
	"fmt"
	"sync/atomic"

	"github.com/zephyrtronium/contains"
)

// A Value is anything a slot, an environment binding, or an evaluation
// can produce: an *Object, a raw host primitive (int64, float64, bool,
// or string), or a *Method. nil is the no-value sentinel.
type Value = interface{}

// Slots is a set of named bindings on an object.
type Slots map[string]Value

// An Object is a slot holder with an optional prototype to delegate
// lookups to. Every runtime value program code can see is an Object;
// primitives are boxed into one with their host value in the value
// slot. Objects are created by NewObject, Clone, or the Runtime's
// boxing constructors.
type Object struct {
	slots Slots
	proto *Object

	// id is the object's unique ID, used for cycle detection during
	// prototype-chain traversal.
	id uintptr
}

// objcounter is the global counter for object IDs. All accesses to this
// must be atomic.
var objcounter uintptr

// nextObject increments the object counter and returns its value as a
// unique ID for a new object.
func nextObject() uintptr {
	return atomic.AddUintptr(&objcounter, 1)
}

// NewObject creates an object with empty slots and the given prototype,
// which may be nil for a root object.
func NewObject(proto *Object) *Object {
	return &Object{slots: Slots{}, proto: proto, id: nextObject()}
}

// Clone returns a new object with empty slots and o as its prototype.
func (o *Object) Clone() *Object {
	return NewObject(o)
}

// Proto returns the object's prototype, or nil for a root object.
func (o *Object) Proto() *Object {
	return o.proto
}

// UniqueID returns the object's unique ID.
func (o *Object) UniqueID() uintptr {
	return o.id
}

// GetSlot looks a slot up on o, then along its prototype chain. The
// traversal keeps a visited set, so a cyclic chain reports ErrProtoCycle
// instead of looping.
func (o *Object) GetSlot(name string) (Value, error) {
	seen := contains.Set{}
	for cur := o; cur != nil; cur = cur.proto {
		if !seen.Add(cur.id) {
			return nil, fmt.Errorf("%w while looking up %q", ErrProtoCycle, name)
		}
		if v, ok := cur.slots[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSlotNotFound, name)
}

// GetLocalSlot checks only o's own slots.
func (o *Object) GetLocalSlot(name string) (Value, bool) {
	v, ok := o.slots[name]
	return v, ok
}

// SetSlot sets a slot on o itself, never on a prototype, overwriting
// any existing value.
func (o *Object) SetSlot(name string, value Value) {
	o.slots[name] = value
}

// SetSlots sets the values of multiple slots on o.
func (o *Object) SetSlots(slots Slots) {
	for name, value := range slots {
		o.slots[name] = value
	}
}
