// Package sourcemap provides an in-memory variable source.
//
// It is meant for tests and for programs that assemble variables themselves:
//
//	src := sourcemap.New(map[string]string{"PORT": "8080"})
//	src.Set("DEBUG", "on")
//	src.Unset("PORT")
package sourcemap

import "sync"

// Source is a mutable in-memory variable source. Safe for concurrent use.
type Source struct {
	mu   sync.RWMutex
	name string
	vars map[string]string
}

// New creates a Source holding a copy of vars. A nil map yields an empty source.
func New(vars map[string]string) *Source {
	s := &Source{
		name: "map",
		vars: make(map[string]string, len(vars)),
	}
	for k, v := range vars {
		s.vars[k] = v
	}
	return s
}

// Named sets the name reported by Name and returns s.
func (s *Source) Named(name string) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	return s
}

// Lookup returns the value stored under key.
func (s *Source) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[key]
	return v, ok
}

// Set stores value under key. An empty value is still present.
func (s *Source) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[key] = value
}

// Unset removes key so that Lookup reports it as absent.
func (s *Source) Unset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.vars, key)
}

// Name returns the source name ("map" unless changed with Named).
func (s *Source) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}
