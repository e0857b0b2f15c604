package catalog

import (
	"github.com/mpyw/knownsafe/internal/registry"
)

// stdEntry is a standard library type with its declared type parameters.
type stdEntry struct {
	Type        registry.Declared
	ContainerOf []string
}

// moduleEntry is a third-party type that cannot be resolved at assembly time.
type moduleEntry struct {
	Name        string
	ContainerOf []string
}

// std lists standard library types documented as safe for concurrent use.
var std = []stdEntry{
	// sync
	{Type: registry.Declared{Name: "sync.Mutex"}},
	{Type: registry.Declared{Name: "sync.RWMutex"}},
	{Type: registry.Declared{Name: "sync.Locker"}},
	{Type: registry.Declared{Name: "sync.WaitGroup"}},
	{Type: registry.Declared{Name: "sync.Once"}},
	{Type: registry.Declared{Name: "sync.Cond"}},
	{Type: registry.Declared{Name: "sync.Map"}},
	{Type: registry.Declared{Name: "sync.Pool"}},

	// sync/atomic
	{Type: registry.Declared{Name: "sync/atomic.Bool"}},
	{Type: registry.Declared{Name: "sync/atomic.Int32"}},
	{Type: registry.Declared{Name: "sync/atomic.Int64"}},
	{Type: registry.Declared{Name: "sync/atomic.Uint32"}},
	{Type: registry.Declared{Name: "sync/atomic.Uint64"}},
	{Type: registry.Declared{Name: "sync/atomic.Uintptr"}},
	{Type: registry.Declared{Name: "sync/atomic.Value"}},
	{Type: registry.Declared{Name: "sync/atomic.Pointer", TypeParams: []string{"T"}}, ContainerOf: []string{"T"}},

	// weak references, Go 1.24+
	{Type: registry.Declared{Name: "weak.Pointer", TypeParams: []string{"T"}}, ContainerOf: []string{"T"}},

	// context
	{Type: registry.Declared{Name: "context.Context"}},

	// logging
	{Type: registry.Declared{Name: "log.Logger"}},
	{Type: registry.Declared{Name: "log/slog.Logger"}},

	// networking
	{Type: registry.Declared{Name: "net.Conn"}},
	{Type: registry.Declared{Name: "net/http.Client"}},
	{Type: registry.Declared{Name: "net/http.Transport"}},
	{Type: registry.Declared{Name: "net/http.ServeMux"}},

	// database/sql
	{Type: registry.Declared{Name: "database/sql.DB"}},
	{Type: registry.Declared{Name: "database/sql.Stmt"}},

	// expvar
	{Type: registry.Declared{Name: "expvar.Int"}},
	{Type: registry.Declared{Name: "expvar.Float"}},
	{Type: registry.Declared{Name: "expvar.Map"}},
	{Type: registry.Declared{Name: "expvar.String"}},

	// misc
	{Type: registry.Declared{Name: "regexp.Regexp"}},
	{Type: registry.Declared{Name: "go/token.FileSet"}},
}

// modules lists third-party types documented as safe for concurrent use.
var modules = []moduleEntry{
	// golang.org/x
	{Name: "golang.org/x/sync/errgroup.Group"},
	{Name: "golang.org/x/sync/semaphore.Weighted"},
	{Name: "golang.org/x/sync/singleflight.Group"},
	{Name: "golang.org/x/sync/syncmap.Map"},
	{Name: "golang.org/x/time/rate.Limiter"},
	{Name: "golang.org/x/time/rate.Sometimes"},

	// github.com/sourcegraph/conc
	{Name: "github.com/sourcegraph/conc.WaitGroup"},
	{Name: "github.com/sourcegraph/conc/pool.Pool"},
	{Name: "github.com/sourcegraph/conc/pool.ContextPool"},
	{Name: "github.com/sourcegraph/conc/pool.ErrorPool"},
	{Name: "github.com/sourcegraph/conc/pool.ResultPool", ContainerOf: []string{"T"}},
	{Name: "github.com/sourcegraph/conc/pool.ResultContextPool", ContainerOf: []string{"T"}},
	{Name: "github.com/sourcegraph/conc/pool.ResultErrorPool", ContainerOf: []string{"T"}},

	// go.uber.org/atomic
	{Name: "go.uber.org/atomic.Bool"},
	{Name: "go.uber.org/atomic.Duration"},
	{Name: "go.uber.org/atomic.Error"},
	{Name: "go.uber.org/atomic.Float32"},
	{Name: "go.uber.org/atomic.Float64"},
	{Name: "go.uber.org/atomic.Int32"},
	{Name: "go.uber.org/atomic.Int64"},
	{Name: "go.uber.org/atomic.String"},
	{Name: "go.uber.org/atomic.Time"},
	{Name: "go.uber.org/atomic.Uint32"},
	{Name: "go.uber.org/atomic.Uint64"},
	{Name: "go.uber.org/atomic.Uintptr"},
	{Name: "go.uber.org/atomic.Value"},
	{Name: "go.uber.org/atomic.Pointer", ContainerOf: []string{"T"}},

	// go.uber.org/zap
	{Name: "go.uber.org/zap.Logger"},
	{Name: "go.uber.org/zap.SugaredLogger"},
	{Name: "go.uber.org/zap.AtomicLevel"},

	// caches
	{Name: "github.com/hashicorp/golang-lru.Cache"},
	{Name: "github.com/hashicorp/golang-lru.ARCCache"},
	{Name: "github.com/hashicorp/golang-lru.TwoQueueCache"},
	{Name: "github.com/hashicorp/golang-lru/v2.Cache", ContainerOf: []string{"K", "V"}},
	{Name: "github.com/hashicorp/golang-lru/v2.TwoQueueCache", ContainerOf: []string{"K", "V"}},
	{Name: "github.com/hashicorp/golang-lru/v2/expirable.LRU", ContainerOf: []string{"K", "V"}},
	{Name: "github.com/dgraph-io/ristretto/v2.Cache", ContainerOf: []string{"K", "V"}},
	{Name: "github.com/patrickmn/go-cache.Cache"},
	{Name: "github.com/puzpuzpuz/xsync/v3.MapOf", ContainerOf: []string{"K", "V"}},
	{Name: "github.com/puzpuzpuz/xsync/v3.Counter"},
	{Name: "github.com/puzpuzpuz/xsync/v3.RBMutex"},

	// clients
	{Name: "github.com/redis/go-redis/v9.Client"},
	{Name: "github.com/redis/go-redis/v9.ClusterClient"},
	{Name: "github.com/redis/go-redis/v9.Ring"},
	{Name: "github.com/redis/go-redis/v9.UniversalClient"},
	{Name: "github.com/jackc/pgx/v5/pgxpool.Pool"},
	{Name: "google.golang.org/grpc.ClientConn"},
	{Name: "cloud.google.com/go/storage.Client"},
	{Name: "github.com/aws/aws-sdk-go-v2/service/s3.Client"},

	// metrics
	{Name: "github.com/prometheus/client_golang/prometheus.Counter"},
	{Name: "github.com/prometheus/client_golang/prometheus.CounterVec"},
	{Name: "github.com/prometheus/client_golang/prometheus.Gauge"},
	{Name: "github.com/prometheus/client_golang/prometheus.GaugeVec"},
	{Name: "github.com/prometheus/client_golang/prometheus.Histogram"},
	{Name: "github.com/prometheus/client_golang/prometheus.HistogramVec"},
	{Name: "github.com/prometheus/client_golang/prometheus.Registry"},
}

// Register adds every catalog entry to b, standard library entries first.
func Register(b *registry.Builder) {
	for _, e := range std {
		b.AddType(e.Type, e.ContainerOf...)
	}

	for _, e := range modules {
		b.Add(e.Name, e.ContainerOf...)
	}
}

// Len returns the number of catalog entries.
func Len() int {
	return len(std) + len(modules)
}
