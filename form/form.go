// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package form provides a minimal form model that binds named values
// to controls such as a date picker. Controls participate via the
// Control interface: the form pushes values into a control with SetValue
// and the control reports user changes via the callbacks registered with
// OnValueChanged and OnInteracted. The value recorded for a field is
// always the value reported by its control.
package form

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownField is returned when a field name has not been bound.
var ErrUnknownField = errors.New("unknown field")

// Control is implemented by controls that can be bound to a form field.
type Control interface {
	// SetValue pushes a value into the control. Controls must ignore
	// values they cannot interpret.
	SetValue(v any)
	// Value returns the control's current value, nil if it has none.
	Value() any
	// OnValueChanged registers the function the control calls when
	// the user changes its value.
	OnValueChanged(fn func(any))
	// OnInteracted registers the function the control calls when
	// the user interacts with it.
	OnInteracted(fn func())
}

// Disabler is optionally implemented by controls that can be disabled.
type Disabler interface {
	SetDisabled(bool)
}

// Clearer is optionally implemented by controls whose value can be
// removed. It is used when a nil value is pushed into a field.
type Clearer interface {
	Clear()
}

type field struct {
	control  Control
	initial  any
	value    any
	touched  bool
	dirty    bool
	disabled bool
}

// Form represents a set of named fields, each bound to a Control.
// A Form is not safe for concurrent use.
type Form struct {
	fields   map[string]*field
	order    []string
	onChange []func(name string, value any)
}

// New returns a new, empty, Form.
func New() *Form {
	return &Form{fields: map[string]*field{}}
}

// Bind binds the control to the named field, replacing any existing
// binding. The initial value is pushed into the control and is restored
// by Reset.
func (f *Form) Bind(name string, c Control, initial any) {
	fd := &field{control: c, initial: initial}
	if _, ok := f.fields[name]; !ok {
		f.order = append(f.order, name)
	}
	f.fields[name] = fd
	c.OnValueChanged(func(v any) {
		fd.value = v
		fd.dirty = true
		for _, fn := range f.onChange {
			fn(name, v)
		}
	})
	c.OnInteracted(func() {
		fd.touched = true
	})
	if initial != nil {
		c.SetValue(initial)
	}
	fd.value = c.Value()
}

// push pushes v into the field's control and records the value that
// the control ends up with, which is unchanged if v was rejected.
func (fd *field) push(v any) {
	if v == nil {
		if c, ok := fd.control.(Clearer); ok {
			c.Clear()
		}
	} else {
		fd.control.SetValue(v)
	}
	fd.value = fd.control.Value()
}

func (f *Form) field(name string) (*field, error) {
	fd, ok := f.fields[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownField)
	}
	return fd, nil
}

// Set pushes a value into the named field's control. The field is not
// marked as dirty or touched since the change did not come from the user.
// A nil value clears controls that implement Clearer. Values that the
// control ignores leave the field's value unchanged.
func (f *Form) Set(name string, v any) error {
	fd, err := f.field(name)
	if err != nil {
		return err
	}
	fd.push(v)
	return nil
}

// Value returns the current value of the named field.
func (f *Form) Value(name string) (any, error) {
	fd, err := f.field(name)
	if err != nil {
		return nil, err
	}
	return fd.value, nil
}

// Values returns the current values of all fields.
func (f *Form) Values() map[string]any {
	values := make(map[string]any, len(f.fields))
	for name, fd := range f.fields {
		values[name] = fd.value
	}
	return values
}

// Names returns the names of the bound fields in the order in which
// they were first bound.
func (f *Form) Names() []string {
	return slices.Clone(f.order)
}

// Touched returns true if the user has interacted with the named field.
func (f *Form) Touched(name string) bool {
	fd, err := f.field(name)
	return err == nil && fd.touched
}

// Dirty returns true if the user has changed the named field's value.
func (f *Form) Dirty(name string) bool {
	fd, err := f.field(name)
	return err == nil && fd.dirty
}

// Disable disables, or enables, the named field. Controls that do not
// implement Disabler are recorded as disabled but are otherwise
// unaffected.
func (f *Form) Disable(name string, disabled bool) error {
	fd, err := f.field(name)
	if err != nil {
		return err
	}
	fd.disabled = disabled
	if d, ok := fd.control.(Disabler); ok {
		d.SetDisabled(disabled)
	}
	return nil
}

// Disabled returns true if the named field is disabled.
func (f *Form) Disabled(name string) bool {
	fd, err := f.field(name)
	return err == nil && fd.disabled
}

// Reset restores every field to its initial value and clears the
// touched and dirty state.
func (f *Form) Reset() {
	for _, name := range slices.Sorted(maps.Keys(f.fields)) {
		fd := f.fields[name]
		fd.touched, fd.dirty = false, false
		fd.push(fd.initial)
	}
}

// OnChange registers a function that is called whenever a control
// reports a changed value.
func (f *Form) OnChange(fn func(name string, value any)) {
	f.onChange = append(f.onChange, fn)
}
