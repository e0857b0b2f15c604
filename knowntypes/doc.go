// Package knowntypes exposes the assembled registry of well-known types.
//
// # Overview
//
// [KnownTypes] answers two questions for a qualified type name:
//
//   - Is it known to be thread-safe (or immutable)? See [KnownTypes.SafeTypes].
//   - Is it known to be mutable? See [KnownTypes.UnsafeTypes].
//
// A miss is not a verdict. A name absent from both means "no a-priori
// judgment"; the caller decides from annotations or structure.
//
// # Obtaining KnownTypes
//
// Analyzers depend on the knownsafe analyzer and read its result:
//
//	var Analyzer = &analysis.Analyzer{
//	    Requires: []*analysis.Analyzer{knownsafe.Analyzer},
//	    ...
//	}
//
//	known := pass.ResultOf[knownsafe.Analyzer].(*knowntypes.KnownTypes)
//
// # Querying
//
//	name, ok := knowntypes.NameOf(typ)   // *atomic.Pointer[int] -> "sync/atomic.Pointer"
//	if !ok {
//	    return
//	}
//	if info, ok := known.SafeTypes().Lookup(name); ok {
//	    for _, param := range info.ContainerOf() {
//	        // the type argument bound to param must itself be safe
//	    }
//	}
//	if known.UnsafeTypes().Contains(name) {
//	    // known mutable
//	}
//
// # Concurrency
//
// KnownTypes is frozen on construction. Any number of goroutines may query it.
package knowntypes
