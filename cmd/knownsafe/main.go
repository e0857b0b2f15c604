// Command knownsafe validates the known-types registry and its configuration.
//
// It assembles the registry exactly as dependent analyzers would and exits
// non-zero when the catalog or the user configuration is invalid.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/knownsafe"
)

func main() {
	singlechecker.Main(knownsafe.Analyzer)
}
