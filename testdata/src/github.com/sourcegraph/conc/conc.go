// Stub package for testing
package conc

// WaitGroup is a safer version of sync.WaitGroup.
type WaitGroup struct{}

// Go spawns f in a new goroutine.
func (wg *WaitGroup) Go(f func()) {}

// Wait blocks until all spawned goroutines exit.
func (wg *WaitGroup) Wait() {}
