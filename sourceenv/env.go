package sourceenv

import (
	"os"

	"github.com/Azhovan/envkit"
)

// Options configures environment variable source behavior.
type Options struct {
	// Prefix is prepended to every key before lookup.
	// Empty = keys are looked up as given.
	Prefix string
}

type envSource struct {
	opts Options
}

// New creates an environment variable source.
func New(opts Options) envkit.Source {
	return &envSource{opts: opts}
}

// Lookup reads Prefix+key from the process environment.
// A variable set to "" is reported as found.
func (e *envSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(e.opts.Prefix + key)
}

// Name returns "env", or "env:<prefix>" when a prefix is configured.
func (e *envSource) Name() string {
	if e.opts.Prefix == "" {
		return "env"
	}
	return "env:" + e.opts.Prefix
}
