package builtin

import (
	"bytes"
	"context"
	"math/big"
	"net/netip"
	"sync"
	"sync/atomic"
	"time"
	"unique"
)

type Local struct{}

type Mu = sync.Mutex

var (
	mu      sync.Mutex          // want `sync\.Mutex is known thread-safe`
	rw      *sync.RWMutex       // want `sync\.RWMutex is known thread-safe`
	aliased Mu                  // want `sync\.Mutex is known thread-safe`
	counter atomic.Int64        // want `sync/atomic\.Int64 is known thread-safe`
	ptr     atomic.Pointer[int] // want `sync/atomic\.Pointer is known thread-safe, container of T`
	ctx     context.Context     // want `context\.Context is known thread-safe`

	when   time.Time              // want `time\.Time is known thread-safe`
	addr   netip.Addr             // want `netip\.Addr is known thread-safe`
	handle unique.Handle[string] // want `unique\.Handle is known thread-safe, container of T`

	buf bytes.Buffer // want `bytes\.Buffer is known mutable`
	n   *big.Int     // want `math/big\.Int is known mutable`

	local   Local
	count   int
	entries []sync.Mutex
)
