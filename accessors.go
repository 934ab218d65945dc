package envkit

import (
	"strconv"
	"strings"

	"github.com/Azhovan/envkit/internal/normalize"
)

// Tokens accepted by Bool, compared case-insensitively.
var (
	truthy = []string{"true", "1", "yes", "on"}
	falsy  = []string{"false", "0", "no", "off"}
)

// Text reads key as a string. The trimmed value is bounded by MinLength and MaxLength.
// An empty string is a present value, subject to MinLength like any other.
func Text(src Source, key string, opts ...Option[string]) (Optional[string], error) {
	req := newRequest(key, opts)
	v, _, err := textPipeline(req).run(src, req)
	return v, err
}

// Int reads key as a base-10 signed 64-bit integer bounded by MinValue and MaxValue.
func Int(src Source, key string, opts ...Option[int64]) (Optional[int64], error) {
	req := newRequest(key, opts)
	v, _, err := intPipeline(req).run(src, req)
	return v, err
}

// Bool reads key as a boolean. Accepted tokens (any case): true, 1, yes, on, false, 0, no, off.
func Bool(src Source, key string, opts ...Option[bool]) (Optional[bool], error) {
	v, _, err := boolPipeline().run(src, newRequest(key, opts))
	return v, err
}

// Enum reads key as one of the symbols, matched by canonical name.
// Matching is case-sensitive unless CaseSensitive[T](false) is given.
func Enum[T comparable](src Source, key string, symbols Symbols[T], opts ...Option[T]) (Optional[T], error) {
	req := newRequest(key, opts)
	v, _, err := enumPipeline(symbols, req).run(src, req)
	return v, err
}

// Literal reads key as one of choices. Membership is exact and always case-sensitive;
// CaseSensitive and the length options have no effect here.
func Literal(src Source, key string, choices []string, opts ...Option[string]) (Optional[string], error) {
	v, _, err := literalPipeline(choices).run(src, newRequest(key, opts))
	return v, err
}

func identity(s string) string { return s }

func textPipeline(req *request[string]) pipeline[string] {
	return pipeline[string]{
		kind: KindText,
		parse: func(s string) (string, *KeyError) {
			return s, nil
		},
		checks: []checker[string]{
			func(s string) *KeyError {
				n := normalize.Length(s)
				if lo, ok := req.minLength.Get(); ok && n < lo {
					return outOfRange("length %d is below minimum %d", n, lo)
				}
				if hi, ok := req.maxLength.Get(); ok && n > hi {
					return outOfRange("length %d exceeds maximum %d", n, hi)
				}
				return nil
			},
		},
		format: identity,
	}
}

func intPipeline(req *request[int64]) pipeline[int64] {
	return pipeline[int64]{
		kind: KindInt,
		parse: func(s string) (int64, *KeyError) {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return 0, invalidFormat(err, "must be a base-10 integer, got %q", s)
			}
			return n, nil
		},
		checks: []checker[int64]{
			func(n int64) *KeyError {
				if lo, ok := req.minValue.Get(); ok && n < lo {
					return outOfRange("value %d is below minimum %d", n, lo)
				}
				if hi, ok := req.maxValue.Get(); ok && n > hi {
					return outOfRange("value %d exceeds maximum %d", n, hi)
				}
				return nil
			},
		},
		format: func(n int64) string {
			return strconv.FormatInt(n, 10)
		},
	}
}

func boolPipeline() pipeline[bool] {
	return pipeline[bool]{
		kind: KindBool,
		parse: func(s string) (bool, *KeyError) {
			token := strings.ToLower(s)
			for _, t := range truthy {
				if token == t {
					return true, nil
				}
			}
			for _, f := range falsy {
				if token == f {
					return false, nil
				}
			}
			return false, invalidFormat(nil, "must be one of true, 1, yes, on, false, 0, no, off, got %q", s)
		},
		format: strconv.FormatBool,
	}
}

func enumPipeline[T comparable](symbols Symbols[T], req *request[T]) pipeline[T] {
	return pipeline[T]{
		kind: KindEnum,
		parse: func(s string) (T, *KeyError) {
			if v, ok := symbols.match(s, req.caseSensitive); ok {
				return v, nil
			}
			var zero T
			return zero, invalidFormat(nil, "value %q must be one of: %s", s, strings.Join(symbols.Names(), ", "))
		},
		format:  symbols.nameOf,
		details: []string{"symbols=" + strings.Join(symbols.Names(), "|")},
	}
}

func literalPipeline(choices []string) pipeline[string] {
	return pipeline[string]{
		kind: KindLiteral,
		parse: func(s string) (string, *KeyError) {
			for _, c := range choices {
				if s == c {
					return s, nil
				}
			}
			return "", invalidFormat(nil, "value %q must be one of: %s", s, strings.Join(choices, ", "))
		},
		format:  identity,
		details: []string{"choices=" + strings.Join(choices, "|")},
	}
}
