package registry

import (
	"go/types"
	"slices"

	"github.com/mpyw/knownsafe/internal/typeutil"
)

// Generic is a type whose declared type parameters are known.
type Generic interface {
	// QualifiedName returns the registry key, e.g. "sync/atomic.Pointer".
	QualifiedName() string
	// TypeParamNames returns the declared type parameter names in declaration order.
	TypeParamNames() []string
}

// Declared is a hand-maintained declaration of a type and its type parameters.
type Declared struct {
	Name       string
	TypeParams []string
}

// QualifiedName implements Generic.
func (d Declared) QualifiedName() string {
	return d.Name
}

// TypeParamNames implements Generic.
func (d Declared) TypeParamNames() []string {
	return slices.Clone(d.TypeParams)
}

// TypeOf adapts a type-checked type name to Generic.
func TypeOf(obj *types.TypeName) Generic {
	return typeName{obj: obj}
}

type typeName struct {
	obj *types.TypeName
}

func (t typeName) QualifiedName() string {
	return typeutil.QualifiedName(t.obj)
}

func (t typeName) TypeParamNames() []string {
	var params *types.TypeParamList

	switch typ := t.obj.Type().(type) {
	case *types.Named:
		params = typ.TypeParams()
	case *types.Alias:
		params = typ.TypeParams()
	}

	names := make([]string, 0, params.Len())
	for i := range params.Len() {
		names = append(names, params.At(i).Obj().Name())
	}

	return names
}
