package thirdparty

import (
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
)

var (
	wg      conc.WaitGroup          // want `github\.com/sourcegraph/conc\.WaitGroup is known thread-safe`
	workers *pool.Pool              // want `github\.com/sourcegraph/conc/pool\.Pool is known thread-safe`
	results *pool.ResultPool[error] // want `github\.com/sourcegraph/conc/pool\.ResultPool is known thread-safe, container of T`
	stream  pool.Stream
)
