// SPDX-License-Identifier: Unlicense OR MIT

package glbuf

import (
	"fmt"

	"gioui.org/glbuf/driver"
)

// Slot identifies a binding slot: one per buffer target, and one for
// vertex arrays.
type Slot uint16

// VertexArraySlot is the slot of the bound vertex array.
const VertexArraySlot Slot = 0x100

// BufferSlot returns the slot of a buffer target.
func BufferSlot(t driver.BufferTarget) Slot {
	return Slot(t)
}

func (s Slot) String() string {
	if s == VertexArraySlot {
		return "vertex array"
	}
	return driver.BufferTarget(s).String()
}

// Observer tracks the object bound to every slot. It is only
// consulted and updated when contract checking is enabled.
type Observer interface {
	// Bind records obj as bound to s. Object 0 means no binding.
	Bind(s Slot, obj driver.Object)
	// Bound returns the object bound to s, or 0.
	Bound(s Slot) driver.Object
}

// Registry is an in-memory Observer. It is not safe for concurrent
// use.
type Registry struct {
	slots map[Slot]driver.Object
}

var observer Observer = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{slots: make(map[Slot]driver.Object)}
}

func (r *Registry) Bind(s Slot, obj driver.Object) {
	if obj == 0 {
		delete(r.slots, s)
		return
	}
	r.slots[s] = obj
}

func (r *Registry) Bound(s Slot) driver.Object {
	return r.slots[s]
}

// Reset forgets every binding.
func (r *Registry) Reset() {
	for s := range r.slots {
		delete(r.slots, s)
	}
}

func (r *Registry) String() string {
	return fmt.Sprintf("registry%v", r.slots)
}

// SetObserver replaces the process wide observer and returns the
// previous one. A nil observer installs a fresh Registry.
func SetObserver(o Observer) Observer {
	if o == nil {
		o = NewRegistry()
	}
	prev := observer
	observer = o
	return prev
}

// record notes a binding when contract checking is enabled.
func record(s Slot, obj driver.Object) {
	if contractsEnabled {
		observer.Bind(s, obj)
	}
}

// forget clears s if obj is bound there.
func forget(s Slot, obj driver.Object) {
	if contractsEnabled && observer.Bound(s) == obj {
		observer.Bind(s, 0)
	}
}

func isBound(s Slot, obj driver.Object) bool {
	return observer.Bound(s) == obj
}
