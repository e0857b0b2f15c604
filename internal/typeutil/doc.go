// Package typeutil provides type naming utilities for knownsafe.
//
// # Overview
//
// The registry is keyed by qualified type names. This package converts between
// go/types objects and those keys.
//
// # Qualified Names
//
// Use [QualifiedName] for a *types.TypeName:
//
//	QualifiedName(mutexObj)   // "sync.Mutex"
//
// Use [NameOf] for an arbitrary types.Type:
//
//	NameOf(sync.Mutex)               // "sync.Mutex", true
//	NameOf(*sync.Mutex)              // "sync.Mutex", true
//	NameOf(atomic.Pointer[int])      // "sync/atomic.Pointer", true
//	NameOf([]int)                    // "", false
//
// Generic instantiations map to their origin type and aliases are resolved to
// the aliased type before lookup.
//
// # Splitting
//
// [Split] separates a key into package path and type name:
//
//	Split("github.com/redis/go-redis/v9.Client")
//	// "github.com/redis/go-redis/v9", "Client", true
package typeutil
