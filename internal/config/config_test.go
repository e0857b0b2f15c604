package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "single name",
			input: "github.com/example/pkg.Type",
			want:  []string{"github.com/example/pkg.Type"},
		},
		{
			name:  "multiple names keep order",
			input: "pkg2.Type2,pkg1.Type1",
			want:  []string{"pkg2.Type2", "pkg1.Type1"},
		},
		{
			name:  "with spaces",
			input: " pkg1.Type1 , pkg2.Type2 ",
			want:  []string{"pkg1.Type1", "pkg2.Type2"},
		},
		{
			name:  "empty parts are skipped",
			input: "pkg.Type,,other.Type,",
			want:  []string{"pkg.Type", "other.Type"},
		},
		{
			name:  "duplicates are kept",
			input: "pkg.Type,pkg.Type",
			want:  []string{"pkg.Type", "pkg.Type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseList(tt.input), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParseList(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Config
		wantErr bool
	}{
		{
			name:  "empty document",
			input: "",
			want:  Config{},
		},
		{
			name: "all keys",
			input: `threadSafe:
  - github.com/example/telemetry.Recorder
immutable:
  - github.com/example/money.Amount
mutable:
  - github.com/example/buffer.Ring
  - bytes.Buffer
`,
			want: Config{
				ThreadSafe: []string{"github.com/example/telemetry.Recorder"},
				Immutable:  []string{"github.com/example/money.Amount"},
				Mutable:    []string{"github.com/example/buffer.Ring", "bytes.Buffer"},
			},
		},
		{
			name:    "unknown key",
			input:   "threadsafe: [sync.Mutex]\n",
			wantErr: true,
		},
		{
			name:    "not a list",
			input:   "threadSafe: sync.Mutex\n",
			wantErr: true,
		},
		{
			name:    "unqualified name",
			input:   "immutable: [Amount]\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	err := Config{Mutable: []string{"bytes.Buffer", "github.com/example"}}.Validate()
	if !errors.Is(err, ErrInvalidTypeName) {
		t.Fatalf("Validate() error = %v, want %v", err, ErrInvalidTypeName)
	}

	want := `mutable: invalid qualified type name: "github.com/example"`
	if err.Error() != want {
		t.Errorf("Validate() error = %q, want %q", err.Error(), want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "knownsafe.yaml")
	if err := os.WriteFile(path, []byte("threadSafe: [example.com/a.T]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]string{"example.com/a.T"}, cfg.ThreadSafe); diff != "" {
		t.Errorf("ThreadSafe mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestMerge(t *testing.T) {
	file := Config{ThreadSafe: []string{"a.A"}, Mutable: []string{"m.M"}}
	flags := Config{ThreadSafe: []string{"b.B"}, Immutable: []string{"i.I"}}

	want := Config{
		ThreadSafe: []string{"a.A", "b.B"},
		Immutable:  []string{"i.I"},
		Mutable:    []string{"m.M"},
	}
	if diff := cmp.Diff(want, file.Merge(flags), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}
