package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mpyw/knownsafe/internal/typeutil"
)

// ErrInvalidTypeName is returned for an entry that is not "import/path.TypeName".
var ErrInvalidTypeName = errors.New("invalid qualified type name")

// Config lists user-supplied type classifications.
type Config struct {
	ThreadSafe []string `yaml:"threadSafe"`
	Immutable  []string `yaml:"immutable"`
	Mutable    []string `yaml:"mutable"`
}

// ParseList parses a comma-separated list of type names.
func ParseList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		names = append(names, part)
	}

	return names
}

// Load reads a YAML settings file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses YAML settings and validates every entry.
// An empty document yields an empty Config.
func Decode(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every entry is a qualified type name.
func (c Config) Validate() error {
	for _, list := range []struct {
		key   string
		names []string
	}{
		{"threadSafe", c.ThreadSafe},
		{"immutable", c.Immutable},
		{"mutable", c.Mutable},
	} {
		for _, name := range list.names {
			if _, _, ok := typeutil.Split(name); !ok {
				return fmt.Errorf("%s: %w: %q", list.key, ErrInvalidTypeName, name)
			}
		}
	}

	return nil
}

// Merge returns c with other's entries appended to each list.
func (c Config) Merge(other Config) Config {
	return Config{
		ThreadSafe: slices.Concat(c.ThreadSafe, other.ThreadSafe),
		Immutable:  slices.Concat(c.Immutable, other.Immutable),
		Mutable:    slices.Concat(c.Mutable, other.Mutable),
	}
}
