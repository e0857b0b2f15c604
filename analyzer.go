// Package knownsafe provides a go/analysis based analyzer exposing the registry
// of well-known thread-safe, immutable and mutable types to other analyzers.
package knownsafe

import (
	"errors"
	"flag"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/knownsafe/internal/assemble"
	"github.com/mpyw/knownsafe/internal/config"
	"github.com/mpyw/knownsafe/internal/mutability"
	"github.com/mpyw/knownsafe/knowntypes"
)

// Flags for the analyzer.
var (
	knownThreadSafe string
	knownImmutable  string
	knownMutable    string
	configPath      string
	logAssembly     bool
)

func init() {
	Analyzer.Flags.StringVar(&knownThreadSafe, "known-thread-safe", "",
		"comma-separated list of types to treat as thread-safe (e.g., github.com/example/telemetry.Recorder)")
	Analyzer.Flags.StringVar(&knownImmutable, "known-immutable", "",
		"comma-separated list of types to treat as immutable")
	Analyzer.Flags.StringVar(&knownMutable, "known-mutable", "",
		"comma-separated list of types to treat as mutable")
	Analyzer.Flags.StringVar(&configPath, "known-types-config", "",
		"path to a YAML file with threadSafe, immutable and mutable type lists")
	Analyzer.Flags.BoolVar(&logAssembly, "log-assembly", false,
		"log registry assembly to stderr")
}

// Analyzer assembles the known-types registry. It reports nothing; its result
// is a *knowntypes.KnownTypes for analyzers that require it.
var Analyzer = &analysis.Analyzer{
	Name:       "knownsafe",
	Doc:        "provides the registry of well-known thread-safe and mutable types",
	Run:        run,
	ResultType: reflect.TypeOf((*knowntypes.KnownTypes)(nil)),
	Flags:      flag.FlagSet{},
}

var ErrNoResult = errors.New("knownsafe analyzer result not found")

// Result returns the registry computed for pass. The calling analyzer must
// list Analyzer in its Requires.
func Result(pass *analysis.Pass) (*knowntypes.KnownTypes, error) {
	known, ok := pass.ResultOf[Analyzer].(*knowntypes.KnownTypes)
	if !ok || known == nil {
		return nil, ErrNoResult
	}

	return known, nil
}

func run(_ *analysis.Pass) (any, error) {
	return load(currentSettings())
}

// settings is the configuration an assembly depends on.
type settings struct {
	threadSafe string
	immutable  string
	mutable    string
	configPath string
	log        bool
}

func currentSettings() settings {
	return settings{
		threadSafe: knownThreadSafe,
		immutable:  knownImmutable,
		mutable:    knownMutable,
		configPath: configPath,
		log:        logAssembly,
	}
}

type assembly struct {
	known *knowntypes.KnownTypes
	err   error
}

// assemblies memoizes one registry per configuration. Drivers run passes
// concurrently, and the registry must be built once per process.
var assemblies = struct {
	sync.Mutex
	done map[settings]assembly
}{done: make(map[settings]assembly)}

func load(s settings) (*knowntypes.KnownTypes, error) {
	assemblies.Lock()
	defer assemblies.Unlock()

	if a, ok := assemblies.done[s]; ok {
		return a.known, a.err
	}

	known, err := build(s)
	assemblies.done[s] = assembly{known: known, err: err}

	return known, err
}

// build assembles the registry for s. File entries precede flag entries.
func build(s settings) (*knowntypes.KnownTypes, error) {
	cfg := config.Config{
		ThreadSafe: config.ParseList(s.threadSafe),
		Immutable:  config.ParseList(s.immutable),
		Mutable:    config.ParseList(s.mutable),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("knownsafe flags: %w", err)
	}

	if s.configPath != "" {
		file, err := config.Load(s.configPath)
		if err != nil {
			return nil, err
		}
		cfg = file.Merge(cfg)
	}

	logger := zap.NewNop()
	if s.log {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
		defer func() { _ = l.Sync() }()
		logger = l.Named("knownsafe")
	}

	kb, err := mutability.New(cfg.Immutable, cfg.Mutable)
	if err != nil {
		return nil, fmt.Errorf("invalid known immutable types: %w", err)
	}

	a := &assemble.Assembler{
		Mutability: kb,
		Extensions: cfg.ThreadSafe,
		Logger:     logger,
	}

	return a.Assemble()
}
