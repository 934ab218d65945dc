package envkit

import (
	"fmt"

	"github.com/Azhovan/envkit/internal/normalize"
)

// Symbol pairs a canonical name with the value it stands for.
type Symbol[T any] struct {
	Name  string
	Value T
}

// Symbols is a closed, ordered set of named values accepted by Enum.
// When several names fold to the same string, the first declared wins.
type Symbols[T comparable] []Symbol[T]

// SymbolsOf builds a symbol set whose canonical names come from String().
//
//	type Color int
//	func (c Color) String() string { ... } // "RED", "GREEN", "BLUE"
//	colors := envkit.SymbolsOf(Red, Green, Blue)
func SymbolsOf[T interface {
	comparable
	fmt.Stringer
}](values ...T) Symbols[T] {
	set := make(Symbols[T], 0, len(values))
	for _, v := range values {
		set = append(set, Symbol[T]{Name: v.String(), Value: v})
	}
	return set
}

// Names returns the canonical names in declaration order.
func (s Symbols[T]) Names() []string {
	names := make([]string, len(s))
	for i, sym := range s {
		names[i] = sym.Name
	}
	return names
}

func (s Symbols[T]) match(name string, caseSensitive bool) (T, bool) {
	want := normalize.Fold(name, caseSensitive)
	for _, sym := range s {
		if normalize.Fold(sym.Name, caseSensitive) == want {
			return sym.Value, true
		}
	}
	var zero T
	return zero, false
}

// nameOf renders v by its canonical name, falling back to fmt for values outside the set.
func (s Symbols[T]) nameOf(v T) string {
	for _, sym := range s {
		if sym.Value == v {
			return sym.Name
		}
	}
	return fmt.Sprint(v)
}
