package envkit

import (
	"fmt"
	"strconv"
)

// Option configures a single accessor call using the functional options pattern.
// Options are typed by the accessor's result, so MinLength only applies to Text
// and MinValue only to Int.
type Option[T any] func(*request[T])

// request holds everything one accessor call needs. Built, consumed, and discarded per call.
type request[T any] struct {
	key           string
	required      bool
	def           Optional[T]
	minLength     Optional[int]
	maxLength     Optional[int]
	minValue      Optional[int64]
	maxValue      Optional[int64]
	caseSensitive bool
}

func newRequest[T any](key string, opts []Option[T]) *request[T] {
	req := &request[T]{
		key:           key,
		required:      true,
		caseSensitive: true,
	}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

// Default makes the variable optional and returns v verbatim when it is unset.
func Default[T any](v T) Option[T] {
	return func(r *request[T]) {
		r.required = false
		r.def = Some(v)
	}
}

// NotRequired makes the variable optional with no default: an unset variable yields None.
func NotRequired[T any]() Option[T] {
	return func(r *request[T]) {
		r.required = false
		r.def = None[T]()
	}
}

// MinLength sets an inclusive lower bound on the character count of a text value.
// Only Text honors it; Literal and Enum[string] ignore it and leave it out of Declaration.Constraints.
func MinLength(n int) Option[string] {
	return func(r *request[string]) {
		r.minLength = Some(n)
	}
}

// MaxLength sets an inclusive upper bound on the character count of a text value.
// Only Text honors it; Literal and Enum[string] ignore it and leave it out of Declaration.Constraints.
func MaxLength(n int) Option[string] {
	return func(r *request[string]) {
		r.maxLength = Some(n)
	}
}

// MinValue sets an inclusive lower bound on an integer value.
func MinValue(n int64) Option[int64] {
	return func(r *request[int64]) {
		r.minValue = Some(n)
	}
}

// MaxValue sets an inclusive upper bound on an integer value.
func MaxValue(n int64) Option[int64] {
	return func(r *request[int64]) {
		r.maxValue = Some(n)
	}
}

// Between sets both inclusive integer bounds.
func Between(lo, hi int64) Option[int64] {
	return func(r *request[int64]) {
		r.minValue = Some(lo)
		r.maxValue = Some(hi)
	}
}

// CaseSensitive controls enum symbol matching (default: true).
// When false, both the value and the canonical names are lowercased before comparison.
// Only Enum honors it. Text, Int, Bool, and Literal ignore it; Literal matching is always exact.
func CaseSensitive[T any](sensitive bool) Option[T] {
	return func(r *request[T]) {
		r.caseSensitive = sensitive
	}
}

// constraints renders the bounds that apply to kind, in declaration-dump form.
func (r *request[T]) constraints(kind Kind) []string {
	var out []string
	switch kind {
	case KindText:
		if n, ok := r.minLength.Get(); ok {
			out = append(out, "min_length="+strconv.Itoa(n))
		}
		if n, ok := r.maxLength.Get(); ok {
			out = append(out, "max_length="+strconv.Itoa(n))
		}
	case KindInt:
		if n, ok := r.minValue.Get(); ok {
			out = append(out, "min_value="+strconv.FormatInt(n, 10))
		}
		if n, ok := r.maxValue.Get(); ok {
			out = append(out, "max_value="+strconv.FormatInt(n, 10))
		}
	case KindEnum:
		out = append(out, fmt.Sprintf("case_sensitive=%t", r.caseSensitive))
	}
	return out
}
