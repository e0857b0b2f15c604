package typeutil

import (
	"go/types"
	"strings"
)

// UnwrapPointer returns the element type if t is a pointer, otherwise returns t.
func UnwrapPointer(t types.Type) types.Type {
	if ptr, ok := t.(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}

// QualifiedName returns "pkg/path.Name" for a type name.
// Predeclared types (no package) yield the bare name.
func QualifiedName(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Path() + "." + obj.Name()
}

// NameOf returns the registry key of a named type.
// It handles pointer types, aliases and generic instantiations automatically:
// *atomic.Pointer[int] yields "sync/atomic.Pointer".
func NameOf(t types.Type) (string, bool) {
	t = types.Unalias(UnwrapPointer(types.Unalias(t)))

	named, ok := t.(*types.Named)
	if !ok {
		return "", false
	}

	obj := named.Origin().Obj()
	if obj == nil || obj.Pkg() == nil {
		return "", false
	}

	return QualifiedName(obj), true
}

// Split splits "pkg/path.Name" at its last dot.
// It reports false when either part would be empty.
func Split(name string) (pkgPath, typeName string, ok bool) {
	lastDot := strings.LastIndex(name, ".")
	if lastDot <= 0 || lastDot == len(name)-1 {
		return "", "", false
	}

	// A dot followed by a slash belongs to the package path
	// (e.g. "github.com/pkg" has no type name).
	if strings.Contains(name[lastDot:], "/") {
		return "", "", false
	}

	return name[:lastDot], name[lastDot+1:], true
}
