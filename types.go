package envkit

// Source provides raw variable values (process environment, in-memory maps, files).
// Lookup is exact-string: no prefixing, case folding, or normalization happens here.
type Source interface {
	// Lookup returns the current value for key and whether it was found.
	// A variable set to the empty string is found; an unset one is not.
	Lookup(key string) (value string, found bool)
	// Name identifies the source in contract dumps (e.g., "env", "file:app.yaml").
	Name() string
}

// LookupFunc is a function adapter for the Source interface.
//
//	src := envkit.LookupFunc(os.LookupEnv)
type LookupFunc func(key string) (string, bool)

func (f LookupFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// Name returns "func".
func (f LookupFunc) Name() string {
	return "func"
}

// Optional distinguishes "not set" from "zero value".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}

// Kind names the target type of an accessor.
type Kind string

// Accessor kinds.
const (
	KindText    Kind = "text"
	KindInt     Kind = "integer"
	KindBool    Kind = "boolean"
	KindEnum    Kind = "enum"
	KindLiteral Kind = "literal"
)
