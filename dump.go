package envkit

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Declaration records one accessor call: what was asked for and what came back.
type Declaration struct {
	Key         string    // Variable name
	Kind        Kind      // Accessor kind
	Required    bool      // Whether absence is an error
	Default     string    // Rendered default; meaningful only when HasDefault
	HasDefault  bool      // Whether an optional call carried a value default
	Constraints []string  // e.g., "min_length=1", "choices=a|b"
	Value       string    // Rendered result; meaningful only when Set
	Set         bool      // Whether the call produced a value
	Source      string    // Source name, or "default" when the default was used
	Err         *KeyError // Failure, if any
}

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpConfig holds options for DumpContract.
type dumpConfig struct {
	withSources bool   // Include source attribution for each variable
	asJSON      bool   // Output as JSON instead of text format
	asYAML      bool   // Output as YAML instead of text format
	indent      string // Indentation for JSON/YAML output (default: "  ")
}

// WithSources includes source attribution for each variable in the output.
func WithSources() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withSources = true
	}
}

// AsJSON outputs the contract as JSON instead of text format.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
		cfg.asYAML = false
	}
}

// AsYAML outputs the contract as YAML instead of text format.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asYAML = true
		cfg.asJSON = false
	}
}

// WithIndent sets the indentation for JSON and YAML output.
// Default is two spaces ("  "). YAML uses the indent's length.
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// DumpContract writes the declared variables and their effective values.
// Values are written as read; nothing is redacted.
// Returns an error if encoding or writing fails.
func DumpContract(w io.Writer, decls []Declaration, opts ...DumpOption) error {
	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	switch {
	case config.asJSON:
		return dumpAsJSON(w, decls, config)
	case config.asYAML:
		return dumpAsYAML(w, decls, config)
	default:
		return dumpAsText(w, decls, config)
	}
}

// dumpAsText outputs one "KEY: value" line per declaration.
func dumpAsText(w io.Writer, decls []Declaration, config dumpConfig) error {
	for _, d := range decls {
		line := fmt.Sprintf("%s: %s", d.Key, displayValue(d))
		if config.withSources && d.Source != "" {
			line += fmt.Sprintf(" (source: %s)", d.Source)
		}
		line += "\n"

		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}
	return nil
}

func dumpAsJSON(w io.Writer, decls []Declaration, config dumpConfig) error {
	entries := contractEntries(decls, config)

	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(entries, "", config.indent)
	} else {
		data, err = json.Marshal(entries)
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func dumpAsYAML(w io.Writer, decls []Declaration, config dumpConfig) error {
	enc := yaml.NewEncoder(w)
	if n := len(config.indent); n > 0 {
		enc.SetIndent(n)
	}
	if err := enc.Encode(contractEntries(decls, config)); err != nil {
		return fmt.Errorf("yaml encode error: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml encode error: %w", err)
	}
	return nil
}

// contractEntry is the structured form of a Declaration for JSON and YAML.
type contractEntry struct {
	Key         string   `json:"key" yaml:"key"`
	Kind        Kind     `json:"kind" yaml:"kind"`
	Required    bool     `json:"required" yaml:"required"`
	Default     *string  `json:"default,omitempty" yaml:"default,omitempty"`
	Constraints []string `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Value       *string  `json:"value,omitempty" yaml:"value,omitempty"`
	Source      string   `json:"source,omitempty" yaml:"source,omitempty"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func contractEntries(decls []Declaration, config dumpConfig) []contractEntry {
	entries := make([]contractEntry, 0, len(decls))
	for _, d := range decls {
		entry := contractEntry{
			Key:         d.Key,
			Kind:        d.Kind,
			Required:    d.Required,
			Constraints: d.Constraints,
		}
		if d.HasDefault {
			def := d.Default
			entry.Default = &def
		}
		if d.Set {
			val := d.Value
			entry.Value = &val
		}
		if config.withSources {
			entry.Source = d.Source
		}
		if d.Err != nil {
			entry.Error = d.Err.Code + ": " + d.Err.Message
		}
		entries = append(entries, entry)
	}
	return entries
}

// displayValue renders a declaration's outcome for text output.
// Strings are quoted so empty and whitespace values stay visible.
func displayValue(d Declaration) string {
	switch {
	case d.Err != nil:
		return fmt.Sprintf("<error: %s>", d.Err.Code)
	case !d.Set:
		return "<unset>"
	case d.Kind == KindText || d.Kind == KindLiteral:
		return strconv.Quote(d.Value)
	default:
		return d.Value
	}
}

