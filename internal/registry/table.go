package registry

import (
	"iter"

	"github.com/mpyw/knownsafe/annotation"
)

// Accumulator collects entries keyed by type name, preserving first-insertion
// order. A repeated key replaces the value at its original position.
//
// The zero value is ready to use. An Accumulator must not be shared between
// goroutines.
type Accumulator struct {
	order   []string
	entries map[string]annotation.Info
}

// Put stores info under name and reports whether it replaced an existing entry.
func (a *Accumulator) Put(name string, info annotation.Info) (replaced bool) {
	if a.entries == nil {
		a.entries = make(map[string]annotation.Info)
	}

	if _, replaced = a.entries[name]; !replaced {
		a.order = append(a.order, name)
	}
	a.entries[name] = info

	return replaced
}

// Len returns the number of distinct names.
func (a *Accumulator) Len() int {
	return len(a.order)
}

// Freeze returns an immutable snapshot and resets the accumulator.
func (a *Accumulator) Freeze() *Table {
	t := &Table{order: a.order, entries: a.entries}
	if t.entries == nil {
		t.entries = make(map[string]annotation.Info)
	}
	a.order, a.entries = nil, nil

	return t
}

// Table is a frozen, insertion-ordered mapping from type name to metadata.
// It is safe for concurrent use.
type Table struct {
	order   []string
	entries map[string]annotation.Info
}

// Lookup returns the entry for name.
func (t *Table) Lookup(name string) (annotation.Info, bool) {
	info, ok := t.entries[name]
	return info, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.order)
}

// All iterates entries in insertion order.
func (t *Table) All() iter.Seq2[string, annotation.Info] {
	return func(yield func(string, annotation.Info) bool) {
		for _, name := range t.order {
			if !yield(name, t.entries[name]) {
				return
			}
		}
	}
}
