package extension

import "sync/atomic"

type Recorder struct{}

type Money struct{ cents int64 }

type Ring struct{ buf []byte }

type Other struct{}

var (
	rec   Recorder            // want `extension\.Recorder is known thread-safe`
	money Money               // want `extension\.Money is known thread-safe`
	ring  *Ring               // want `extension\.Ring is known mutable`
	ptr   atomic.Pointer[int] // want `sync/atomic\.Pointer is known thread-safe, container of T`
	other Other
)
