// Stub package for testing
package pool

// Pool runs tasks on a bounded set of goroutines.
type Pool struct{}

// New creates a new Pool.
func New() *Pool { return &Pool{} }

// ResultPool collects the results of its tasks.
type ResultPool[T any] struct{ results []T }

// NewWithResults creates a ResultPool.
func NewWithResults[T any]() *ResultPool[T] { return &ResultPool[T]{} }

// Stream is not registered as thread-safe.
type Stream struct{}
