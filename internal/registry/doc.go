// Package registry builds the table of well-known type classifications.
//
// # Overview
//
// The registry maps qualified type names to [annotation.Info] values. It is
// assembled once at analyzer startup and frozen; nothing mutates it afterwards.
//
// # Qualified Names
//
// Keys have the form "import/path.TypeName":
//
//	sync.Mutex
//	sync/atomic.Pointer
//	github.com/redis/go-redis/v9.Client
//
// Generic types are keyed by their generic (origin) name. Type arguments never
// appear in a key.
//
// # Builder
//
// Entries are accumulated by a [Builder]:
//
//	table, err := registry.NewBuilder().
//	    AddType(registry.Declared{Name: "sync.Mutex"}).
//	    AddType(registry.Declared{Name: "sync/atomic.Pointer", TypeParams: []string{"T"}}, "T").
//	    Add("golang.org/x/sync/errgroup.Group").
//	    Build()
//
// Two insertion paths exist:
//
//   - [Builder.AddType] takes a [Generic], i.e. something that knows the type's
//     declared type parameters. The container-of names must be a subset of them.
//   - [Builder.Add] takes a bare name and is trusted. It is used for types that
//     cannot be resolved when the registry is built (third-party packages).
//
// # Override Order
//
// Insertion order is significant. A second insertion for the same name replaces
// the first one entirely (last wins). Fields are never merged:
//
//	b.Add("p.T", "A")
//	b.Add("p.T")      // p.T now has no container-of parameters
//
// # Catalog Defects
//
// A container-of name that is not a declared type parameter is a defect of the
// catalog itself. The builder records a [*CatalogDefectError] and ignores every
// later insertion; [Builder.Build] returns the error:
//
//	for sync/atomic.Pointer, please update the type parameter(s) from [V] to [T]
//
// # Generic Sources
//
// [Declared] is a hand-maintained declaration, checked against the real
// standard library by the catalog's tests. [TypeOf] adapts a live
// *types.TypeName, so analyzers can validate against what the type checker sees.
//
// # Freezing
//
// [Builder.Build] returns an immutable [Table]. Using the builder afterwards
// panics with [ErrBuilderFrozen].
package registry
