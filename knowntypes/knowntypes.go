package knowntypes

import (
	"go/types"
	"iter"
	"maps"
	"slices"

	"github.com/mpyw/knownsafe/annotation"
	"github.com/mpyw/knownsafe/internal/typeutil"
)

// KnownTypes holds the frozen safe-type mapping and unsafe-type set.
type KnownTypes struct {
	safe   SafeTypes
	unsafe NameSet
}

// New copies safe and unsafe into a new KnownTypes. Later pairs in safe
// replace earlier pairs with the same name.
func New(safe iter.Seq2[string, annotation.Info], unsafe []string) *KnownTypes {
	k := &KnownTypes{
		safe:   SafeTypes{entries: make(map[string]annotation.Info)},
		unsafe: NameSet{names: make(map[string]struct{}, len(unsafe))},
	}

	for name, info := range safe {
		k.safe.entries[name] = info
	}
	for _, name := range unsafe {
		k.unsafe.names[name] = struct{}{}
	}

	return k
}

// SafeTypes returns the types known to be thread-safe or immutable.
func (k *KnownTypes) SafeTypes() SafeTypes {
	return k.safe
}

// UnsafeTypes returns the names of types known to be mutable.
func (k *KnownTypes) UnsafeTypes() NameSet {
	return k.unsafe
}

// SafeTypes is a read-only view of a name to metadata mapping.
type SafeTypes struct {
	entries map[string]annotation.Info
}

// Lookup returns the metadata for name.
func (s SafeTypes) Lookup(name string) (annotation.Info, bool) {
	info, ok := s.entries[name]
	return info, ok
}

// Len returns the number of entries.
func (s SafeTypes) Len() int {
	return len(s.entries)
}

// Names returns all names in lexical order.
func (s SafeTypes) Names() []string {
	return slices.Sorted(maps.Keys(s.entries))
}

// All iterates entries in lexical order of their names.
func (s SafeTypes) All() iter.Seq2[string, annotation.Info] {
	return func(yield func(string, annotation.Info) bool) {
		for _, name := range s.Names() {
			if !yield(name, s.entries[name]) {
				return
			}
		}
	}
}

// NameSet is a read-only set of type names.
type NameSet struct {
	names map[string]struct{}
}

// Contains reports whether name is in the set.
func (n NameSet) Contains(name string) bool {
	_, ok := n.names[name]
	return ok
}

// Len returns the number of names.
func (n NameSet) Len() int {
	return len(n.names)
}

// Names returns all names in lexical order.
func (n NameSet) Names() []string {
	return slices.Sorted(maps.Keys(n.names))
}

// NameOf returns the registry key for t: the qualified name of the named type
// t denotes, looking through pointers, aliases and instantiation.
// Unnamed and predeclared types report false.
func NameOf(t types.Type) (string, bool) {
	return typeutil.NameOf(t)
}
