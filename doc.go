// Package envkit provides typed, validated access to environment variables.
//
// Quick Start:
//
//	src := sourceenv.New(sourceenv.Options{Prefix: "APP_"})
//
//	port, err := envkit.Int(src, "PORT", envkit.Between(1, 65535))
//	host, err := envkit.Text(src, "HOST", envkit.Default("localhost"))
//	debug, err := envkit.Bool(src, "DEBUG", envkit.NotRequired[bool]())
//
// Every accessor runs the same pipeline: look the key up, return the default
// verbatim when it is unset and optional, trim whitespace, parse, check bounds.
// Failures are *KeyError values matching ErrMissingKey, ErrInvalidFormat, or
// ErrOutOfRange via errors.Is.
//
// Use a Collector to read a whole configuration contract and report every
// failure at once, and DumpContract to print what was declared and read.
//
// See example_test.go for detailed usage.
package envkit
