// Package assemble merges the mutability knowledge base, user extensions and
// the fixed catalog into the frozen known-types registry.
package assemble

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/mpyw/knownsafe/annotation"
	"github.com/mpyw/knownsafe/internal/catalog"
	"github.com/mpyw/knownsafe/internal/registry"
	"github.com/mpyw/knownsafe/knowntypes"
)

// Mutability is the knowledge base the registry starts from.
type Mutability interface {
	// KnownImmutable iterates deeply immutable types in a deterministic order.
	KnownImmutable() iter.Seq2[string, annotation.Info]
	// KnownMutable returns the names of types known to be mutable.
	KnownMutable() []string
}

// Assembler configures one assembly.
type Assembler struct {
	// Mutability supplies the immutable sub-table and the unsafe set.
	Mutability Mutability

	// Extensions are user-supplied thread-safe type names, registered with
	// no container-of parameters.
	Extensions []string

	// Catalog registers the fixed catalog. Defaults to catalog.Register.
	Catalog func(b *registry.Builder)

	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Assemble builds the registry. Precedence, lowest first:
//
//  1. immutable types from Mutability
//  2. Extensions
//  3. the fixed catalog
//
// The unsafe set is Mutability.KnownMutable, unchanged. A catalog defect
// aborts the assembly; no partial registry is returned.
func (a *Assembler) Assemble() (*knowntypes.KnownTypes, error) {
	logger := a.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	register := a.Catalog
	if register == nil {
		register = catalog.Register
	}

	var acc registry.Accumulator
	for name, info := range a.Mutability.KnownImmutable() {
		acc.Put(name, info)
	}
	immutableCount := acc.Len()

	b := registry.NewBuilder().AddNames(a.Extensions)
	register(b)

	table, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid known thread-safe types: %w", err)
	}

	for _, name := range a.Extensions {
		if info, ok := table.Lookup(name); ok && info.IsContainer() {
			logger.Debug("catalog entry shadows extension",
				zap.String("type", name),
				zap.Stringer("info", info))
		}
	}

	for name, info := range table.All() {
		if acc.Put(name, info) {
			logger.Debug("thread-safe entry overrides immutable entry",
				zap.String("type", name),
				zap.Stringer("info", info))
		}
	}

	unsafe := a.Mutability.KnownMutable()

	logger.Debug("assembled known types",
		zap.Int("immutable", immutableCount),
		zap.Int("threadSafe", table.Len()),
		zap.Int("extensions", len(a.Extensions)),
		zap.Int("safe", acc.Len()),
		zap.Int("unsafe", len(unsafe)))

	return knowntypes.New(acc.Freeze().All(), unsafe), nil
}
