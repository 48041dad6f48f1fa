// Package form holds named field values for interactive widgets, in the
// manner of a small form-state library: each widget binds to one Field,
// reads its current value and writes new values back.
package form

import (
	"maps"
	"sync"
)

// Meta is the bookkeeping a Form keeps alongside a field value.
type Meta struct {
	Touched bool
	Error   string
	Initial string
}

// Field is a single bound value of a Form.
type Field interface {
	Name() string
	Value() string
	SetValue(v string)
	Meta() Meta
}

type entry struct {
	value   string
	meta    Meta
	version uint64
}

// Form is an in-memory set of named fields. It is safe for concurrent use.
type Form struct {
	mu     sync.Mutex
	fields map[string]*entry
}

// New returns a Form whose fields start at (and reset to) initial.
func New(initial map[string]string) *Form {
	f := &Form{fields: make(map[string]*entry, len(initial))}
	for name, v := range initial {
		f.fields[name] = &entry{value: v, meta: Meta{Initial: v}}
	}
	return f
}

// Field returns the binding for name, creating an empty field if needed.
func (f *Form) Field(name string) Field {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entryLocked(name)
	return &binding{form: f, name: name}
}

// Values returns a snapshot of every field value.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fields))
	for name, e := range f.fields {
		out[name] = e.value
	}
	return out
}

// Value returns the current value of name.
func (f *Form) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.fields[name]; ok {
		return e.value
	}
	return ""
}

// Set assigns a value programmatically. Unlike a write through a Field
// binding it does not mark the field touched.
func (f *Form) Set(name, v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setLocked(name, v)
}

// SetError records a validation message for name. An empty message clears it.
func (f *Form) SetError(name, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entryLocked(name).meta.Error = msg
}

// Reset restores every field to its initial value and clears touched and
// error state.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for name, e := range f.fields {
		f.setLocked(name, e.meta.Initial)
		e.meta.Touched = false
		e.meta.Error = ""
	}
}

// Version returns a counter that increases every time the value of name
// changes.
func (f *Form) Version(name string) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.fields[name]; ok {
		return e.version
	}
	return 0
}

// Names returns the field names in no particular order.
func (f *Form) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.fields))
	for name := range maps.Keys(f.fields) {
		names = append(names, name)
	}
	return names
}

func (f *Form) entryLocked(name string) *entry {
	e, ok := f.fields[name]
	if !ok {
		e = &entry{}
		f.fields[name] = e
	}
	return e
}

func (f *Form) setLocked(name, v string) {
	e := f.entryLocked(name)
	if e.value == v {
		return
	}
	e.value = v
	e.version++
}

type binding struct {
	form *Form
	name string
}

func (b *binding) Name() string { return b.name }

func (b *binding) Value() string { return b.form.Value(b.name) }

func (b *binding) SetValue(v string) {
	b.form.mu.Lock()
	defer b.form.mu.Unlock()
	b.form.setLocked(b.name, v)
	b.form.entryLocked(b.name).meta.Touched = true
}

func (b *binding) Meta() Meta {
	b.form.mu.Lock()
	defer b.form.mu.Unlock()
	return b.form.entryLocked(b.name).meta
}
