package slate

import (
	"errors"
	"testing"
)

// TestCloneEmpty tests that a clone starts with no slots of its own and
// the receiver as its prototype.
func TestCloneEmpty(t *testing.T) {
	parent := NewObject(nil)
	parent.SetSlot("x", int64(1))
	child := parent.Clone()
	if child.Proto() != parent {
		t.Error("clone's prototype is not the receiver")
	}
	if _, ok := child.GetLocalSlot("x"); ok {
		t.Error("clone copied the receiver's slots")
	}
}

// TestGetSlotDelegates tests lookup along a multi-level chain.
func TestGetSlotDelegates(t *testing.T) {
	grand := NewObject(nil)
	grand.SetSlot("a", int64(1))
	parent := grand.Clone()
	parent.SetSlot("b", int64(2))
	child := parent.Clone()
	child.SetSlot("c", int64(3))
	for name, want := range map[string]int64{"a": 1, "b": 2, "c": 3} {
		v, err := child.GetSlot(name)
		if err != nil {
			t.Fatalf("GetSlot(%q): %v", name, err)
		}
		if v != want {
			t.Errorf("GetSlot(%q) = %v, wanted %d", name, v, want)
		}
	}
}

// TestGetSlotMissing tests that a miss anywhere on the chain reports
// ErrSlotNotFound.
func TestGetSlotMissing(t *testing.T) {
	o := NewObject(nil).Clone()
	if _, err := o.GetSlot("nope"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("GetSlot on a missing slot gave %v, wanted ErrSlotNotFound", err)
	}
}

// TestSetSlotShadows tests that setting a slot never writes through to a
// prototype.
func TestSetSlotShadows(t *testing.T) {
	parent := NewObject(nil)
	parent.SetSlot("x", int64(1))
	child := parent.Clone()
	child.SetSlot("x", int64(2))
	if v, _ := child.GetSlot("x"); v != int64(2) {
		t.Errorf("child sees x = %v, wanted 2", v)
	}
	if v, _ := parent.GetSlot("x"); v != int64(1) {
		t.Errorf("parent sees x = %v after shadowing, wanted 1", v)
	}
}

// TestSetSlotOverwrites tests in-place replacement of an existing slot.
func TestSetSlotOverwrites(t *testing.T) {
	o := NewObject(nil)
	o.SetSlot("x", int64(1))
	o.SetSlot("x", "two")
	if v, _ := o.GetSlot("x"); v != "two" {
		t.Errorf("x = %v after overwrite, wanted \"two\"", v)
	}
}

// TestGetSlotCycle tests that a cyclic prototype chain is detected
// rather than looped.
func TestGetSlotCycle(t *testing.T) {
	a := NewObject(nil)
	b := a.Clone()
	a.proto = b
	if _, err := b.GetSlot("nope"); !errors.Is(err, ErrProtoCycle) {
		t.Errorf("lookup on a cyclic chain gave %v, wanted ErrProtoCycle", err)
	}
	// A self-cycle is the degenerate case.
	c := NewObject(nil)
	c.proto = c
	if _, err := c.GetSlot("nope"); !errors.Is(err, ErrProtoCycle) {
		t.Errorf("lookup on a self-cycle gave %v, wanted ErrProtoCycle", err)
	}
}

// TestGetSlotFoundBeforeCycle tests that a slot present early in a
// cyclic chain is still found.
func TestGetSlotFoundBeforeCycle(t *testing.T) {
	a := NewObject(nil)
	b := a.Clone()
	a.proto = b
	b.SetSlot("x", int64(7))
	v, err := b.GetSlot("x")
	if err != nil {
		t.Fatalf("GetSlot on a cyclic chain with the slot present: %v", err)
	}
	if v != int64(7) {
		t.Errorf("x = %v, wanted 7", v)
	}
}

// TestUniqueIDs tests that distinct objects get distinct IDs.
func TestUniqueIDs(t *testing.T) {
	seen := map[uintptr]bool{}
	o := NewObject(nil)
	for i := 0; i < 100; i++ {
		o = o.Clone()
		if seen[o.UniqueID()] {
			t.Fatalf("duplicate object ID %d", o.UniqueID())
		}
		seen[o.UniqueID()] = true
	}
}
