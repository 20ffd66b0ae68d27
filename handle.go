// SPDX-License-Identifier: Unlicense OR MIT

package glbuf

import "gioui.org/glbuf/driver"

// handle is an optional driver object. The zero handle is absent.
type handle struct {
	obj   driver.Object
	valid bool
}

func someHandle(obj driver.Object) handle {
	return handle{obj: obj, valid: true}
}

func (h handle) get() (driver.Object, bool) {
	return h.obj, h.valid
}

// take returns h and leaves it absent.
func (h *handle) take() handle {
	old := *h
	*h = handle{}
	return old
}
