// Package mutability provides the well-known mutability knowledge base:
// types known to be deeply immutable and types known to be mutable.
package mutability

import (
	"iter"
	"slices"

	"github.com/mpyw/knownsafe/annotation"
	"github.com/mpyw/knownsafe/internal/registry"
)

// immutableStd lists standard library types whose values cannot change after
// construction.
var immutableStd = []struct {
	Type        registry.Declared
	ContainerOf []string
}{
	{Type: registry.Declared{Name: "time.Time"}},
	{Type: registry.Declared{Name: "time.Duration"}},
	{Type: registry.Declared{Name: "time.Month"}},
	{Type: registry.Declared{Name: "time.Weekday"}},
	{Type: registry.Declared{Name: "time.Location"}},
	{Type: registry.Declared{Name: "net/netip.Addr"}},
	{Type: registry.Declared{Name: "net/netip.AddrPort"}},
	{Type: registry.Declared{Name: "net/netip.Prefix"}},
	{Type: registry.Declared{Name: "log/slog.Value"}},
	{Type: registry.Declared{Name: "log/slog.Attr"}},
	{Type: registry.Declared{Name: "log/slog.Level"}},
	{Type: registry.Declared{Name: "reflect.Type"}},
	{Type: registry.Declared{Name: "go/token.Pos"}},
	{Type: registry.Declared{Name: "go/token.Token"}},
	{Type: registry.Declared{Name: "encoding/json.Number"}},
	{Type: registry.Declared{Name: "hash/maphash.Seed"}},
	{Type: registry.Declared{Name: "unique.Handle", TypeParams: []string{"T"}}, ContainerOf: []string{"T"}},
}

// immutableModules lists third-party immutable value types.
var immutableModules = []string{
	"github.com/google/uuid.UUID",
	"github.com/shopspring/decimal.Decimal",
	"golang.org/x/text/language.Tag",
}

// mutable lists types known to be unsafe to share without synchronization.
var mutable = []string{
	"bytes.Buffer",
	"bytes.Reader",
	"strings.Builder",
	"strings.Reader",
	"bufio.Reader",
	"bufio.Writer",
	"bufio.Scanner",
	"math/big.Int",
	"math/big.Float",
	"math/big.Rat",
	"math/rand.Rand",
	"math/rand/v2.Rand",
	"container/list.List",
	"container/ring.Ring",
	"net/url.URL",
	"net/url.Values",
	"net/http.Header",
	"net/http.Request",
	"text/tabwriter.Writer",
	"encoding/json.Decoder",
	"encoding/json.Encoder",
	"hash/maphash.Hash",
	"hash.Hash",
}

// KnowledgeBase is an immutable set of mutability facts.
// It is safe for concurrent use.
type KnowledgeBase struct {
	immutable *registry.Table
	mutable   []string
}

// Default returns the built-in knowledge base.
func Default() (*KnowledgeBase, error) {
	return New(nil, nil)
}

// New returns the built-in knowledge base extended with extra immutable and
// mutable type names. Extra immutable names are registered before the
// built-in ones, so a built-in entry wins on collision. Duplicate mutable names
// are collapsed.
func New(extraImmutable, extraMutable []string) (*KnowledgeBase, error) {
	b := registry.NewBuilder().AddNames(extraImmutable)
	for _, e := range immutableStd {
		b.AddType(e.Type, e.ContainerOf...)
	}
	b.AddNames(immutableModules)

	table, err := b.Build()
	if err != nil {
		return nil, err
	}

	set := make([]string, 0, len(mutable)+len(extraMutable))
	for _, name := range slices.Concat(mutable, extraMutable) {
		if !slices.Contains(set, name) {
			set = append(set, name)
		}
	}

	return &KnowledgeBase{immutable: table, mutable: set}, nil
}

// KnownImmutable iterates immutable types in registration order.
func (kb *KnowledgeBase) KnownImmutable() iter.Seq2[string, annotation.Info] {
	return kb.immutable.All()
}

// KnownMutable returns the names of known-mutable types.
func (kb *KnowledgeBase) KnownMutable() []string {
	return slices.Clone(kb.mutable)
}
