// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/textiletwin/twin/factory"

// Selection is the scene-wide selection slot. It is either
// [NoSelection] or [Selected]; at most one machine is selected.
type Selection interface {
	isSelection()
}

// NoSelection is the initial selection, with no machine selected.
type NoSelection struct{}

// Selected holds the one selected machine.
type Selected struct {
	Machine factory.Machine
}

func (NoSelection) isSelection() {}
func (Selected) isSelection()    {}

// Click returns the selection after clicking on the given machine,
// which replaces any previous selection.
func Click(_ Selection, m factory.Machine) Selection {
	return Selected{Machine: m}
}

// Dismiss returns the selection after dismissing the detail panel.
// Dismissing [NoSelection] is a no-op.
func Dismiss(_ Selection) Selection {
	return NoSelection{}
}

// SelectedMachine returns the selected machine and true,
// or false if nothing is selected.
func SelectedMachine(s Selection) (factory.Machine, bool) {
	if sel, ok := s.(Selected); ok {
		return sel.Machine, true
	}
	return factory.Machine{}, false
}
