package envkit

import (
	"github.com/Azhovan/envkit/internal/normalize"
)

// sourceDefault is the Declaration.Source of values taken from a default.
const sourceDefault = "default"

// parser converts a trimmed raw value into the target kind.
// It returns a *KeyError without Key; the pipeline fills it in.
type parser[T any] func(s string) (T, *KeyError)

// checker validates a parsed value against a bound.
type checker[T any] func(v T) *KeyError

// pipeline is the per-kind parameterization of the accessor algorithm:
// lookup, resolve absence, trim, parse, check, return.
type pipeline[T any] struct {
	kind    Kind
	parse   parser[T]
	checks  []checker[T]
	format  func(T) string // Renders values for declarations
	details []string       // Kind-specific constraints beyond the request's bounds
}

// run executes one accessor call. The first failing stage short-circuits the rest.
// The returned Declaration describes the call regardless of outcome.
func (p pipeline[T]) run(src Source, req *request[T]) (Optional[T], Declaration, error) {
	decl := Declaration{
		Key:         req.key,
		Kind:        p.kind,
		Required:    req.required,
		Constraints: append(req.constraints(p.kind), p.details...),
		Source:      src.Name(),
	}
	if !req.required {
		decl.Default, decl.HasDefault = p.render(req.def)
	}

	result, fromDefault, err := p.eval(src, req)
	if fromDefault {
		decl.Source = sourceDefault
	}
	if err != nil {
		decl.Err = err
		return None[T](), decl, err
	}

	decl.Value, decl.Set = p.render(result)
	return result, decl, nil
}

// eval reports whether the result came from the default rather than the source.
func (p pipeline[T]) eval(src Source, req *request[T]) (Optional[T], bool, *KeyError) {
	raw, found := src.Lookup(req.key)
	if !found {
		if req.required {
			return None[T](), false, missingKey(req.key)
		}
		// The default is trusted verbatim: no trimming, no validation.
		return req.def, true, nil
	}

	value, kerr := p.parse(normalize.Value(raw))
	if kerr != nil {
		kerr.Key = req.key
		return None[T](), false, kerr
	}

	for _, check := range p.checks {
		if kerr := check(value); kerr != nil {
			kerr.Key = req.key
			return None[T](), false, kerr
		}
	}

	return Some(value), false, nil
}

func (p pipeline[T]) render(o Optional[T]) (string, bool) {
	v, ok := o.Get()
	if !ok {
		return "", false
	}
	return p.format(v), true
}
