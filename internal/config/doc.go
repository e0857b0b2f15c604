// Package config parses knownsafe configuration.
//
// # Overview
//
// Configuration comes from two places, both optional:
//
//   - analyzer flags holding comma-separated type names
//   - a YAML settings file given with -config
//
// # Flag Lists
//
// Use [ParseList] for a flag value:
//
//	config.ParseList(" example.com/a.T , example.com/b.U,,")
//	// []string{"example.com/a.T", "example.com/b.U"}
//
// Whitespace is trimmed and empty items are dropped. Order is preserved,
// since it decides which entry wins when a name is repeated.
//
// # Settings File
//
//	threadSafe:
//	  - github.com/example/telemetry.Recorder
//	immutable:
//	  - github.com/example/money.Amount
//	mutable:
//	  - github.com/example/buffer.Ring
//
// Unknown keys are rejected. Every entry must be a qualified type name
// ("import/path.TypeName").
//
// # Merging
//
// [Config.Merge] appends lists, so flag entries placed after file entries are
// registered later.
package config
