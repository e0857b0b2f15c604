package knownsafe

import (
	"errors"
	"testing"

	"github.com/mpyw/knownsafe/internal/config"
)

func TestLoadMemoizes(t *testing.T) {
	s := settings{threadSafe: "example.com/memo.Type"}

	first, err := load(s)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	second, err := load(s)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if first != second {
		t.Error("load() assembled twice for identical settings")
	}

	other, err := load(settings{threadSafe: "example.com/memo.Other"})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if other == first {
		t.Error("load() shared a registry between different settings")
	}
	if _, ok := other.SafeTypes().Lookup("example.com/memo.Type"); ok {
		t.Error("registry for other settings contains example.com/memo.Type")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		s       settings
		wantErr error
	}{
		{
			name:    "invalid flag entry",
			s:       settings{mutable: "bytes.Buffer,Buffer"},
			wantErr: config.ErrInvalidTypeName,
		},
		{
			name:    "invalid config entry",
			s:       settings{configPath: "testdata/config/invalid.yaml"},
			wantErr: config.ErrInvalidTypeName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			known, err := load(tt.s)
			if known != nil {
				t.Error("load() returned a registry")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("load() error = %v, want %v", err, tt.wantErr)
			}

			// Failures are memoized too.
			if _, again := load(tt.s); again != err {
				t.Errorf("second load() error = %v, want identical %v", again, err)
			}
		})
	}
}

func TestLoadMissingConfig(t *testing.T) {
	if _, err := load(settings{configPath: "testdata/config/missing.yaml"}); err == nil {
		t.Error("load() with a missing config file succeeded")
	}
}

func TestLoadWithLogging(t *testing.T) {
	known, err := load(settings{log: true})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if _, ok := known.SafeTypes().Lookup("sync.Mutex"); !ok {
		t.Error("sync.Mutex missing")
	}
}
