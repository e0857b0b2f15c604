// Package annotation describes the thread-safety classification of one named type.
package annotation

import (
	"slices"
	"strings"
)

// Info is the thread-safety metadata of a single type.
//
// ContainerOf lists the type parameters the type's safety is conditional on:
// the type is safe only if every type argument substituted for them is safe.
// An empty list means the type is unconditionally safe.
//
// Info is immutable; the zero value has an empty type name and no parameters.
type Info struct {
	typeName    string
	containerOf []string
}

// New creates an Info. No validation is performed.
func New(typeName string, containerOf ...string) Info {
	return Info{
		typeName:    typeName,
		containerOf: slices.Clone(containerOf),
	}
}

// TypeName returns the qualified type name (e.g. "sync/atomic.Pointer").
func (i Info) TypeName() string {
	return i.typeName
}

// ContainerOf returns a copy of the container-of type parameter names,
// in the order they were declared for the entry.
func (i Info) ContainerOf() []string {
	return slices.Clone(i.containerOf)
}

// IsContainer reports whether the type's safety depends on its type arguments.
func (i Info) IsContainer() bool {
	return len(i.containerOf) > 0
}

// Equal reports whether both values describe the same type with the same
// container-of parameters in the same order.
func (i Info) Equal(other Info) bool {
	return i.typeName == other.typeName && slices.Equal(i.containerOf, other.containerOf)
}

// String returns "name" or "name[containerOf...]".
func (i Info) String() string {
	if len(i.containerOf) == 0 {
		return i.typeName
	}
	return i.typeName + "[" + strings.Join(i.containerOf, ", ") + "]"
}
