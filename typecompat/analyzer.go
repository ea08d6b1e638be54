// Package typecompat decides how an Either of two payload types has to be
// stored.
//
// A payload can be stored as itself and recovered by a type assertion when no
// value of one side could ever pass the assertion for the other side. Otherwise
// the payload is wrapped in a per-side box. The decision is a pure function of
// the two types; Resolve memoizes it for the life of the process.
package typecompat

import (
	"fmt"
	"reflect"
)

// Strategy is the storage strategy of an Either instantiation.
type Strategy uint8

const (
	// DirectTag stores the payload itself and recovers its side from its
	// runtime type.
	DirectTag Strategy = iota + 1
	// Boxed wraps the payload in a small marker recording its side.
	Boxed
)

func (s Strategy) String() string {
	switch s {
	case DirectTag:
		return "DirectTag"
	case Boxed:
		return "Boxed"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Verdict is the outcome of analyzing a pair of types.
type Verdict struct {
	Strategy Strategy
	Reason   string
}

// Analyze decides the storage strategy for the pair (a, b).
func Analyze(a, b reflect.Type) Verdict {
	if a == b {
		return Verdict{Strategy: Boxed, Reason: fmt.Sprintf("both sides are %s", a)}
	}
	if ok, why := HasPossibleConversion(a, b); ok {
		return Verdict{Strategy: Boxed, Reason: why}
	}
	if ok, why := HasPossibleConversion(b, a); ok {
		return Verdict{Strategy: Boxed, Reason: why}
	}
	if name, ok := conflictingMethod(a, b); ok && a.Kind() == reflect.Interface && b.Kind() == reflect.Interface {
		return Verdict{
			Strategy: DirectTag,
			Reason:   fmt.Sprintf("%s and %s declare %s with different signatures", a, b, name),
		}
	}
	return Verdict{
		Strategy: DirectTag,
		Reason:   fmt.Sprintf("no %s value can be taken for %s, nor the reverse", a, b),
	}
}

// MutuallyNonConvertible reports whether values of a and b can never be
// mistaken for one another once stored in an interface.
func MutuallyNonConvertible(a, b reflect.Type) bool {
	return Analyze(a, b).Strategy == DirectTag
}

// HasPossibleConversion reports whether a value held in a variable of type src
// could satisfy the type assertion x.(to), and why.
func HasPossibleConversion(src, to reflect.Type) (bool, string) {
	if src == to {
		return true, fmt.Sprintf("both sides are %s", src)
	}

	srcIface := src.Kind() == reflect.Interface
	toIface := to.Kind() == reflect.Interface

	switch {
	case !srcIface && !toIface:
		// Assertions to a concrete type match the exact dynamic type only.
		return false, ""
	case srcIface && !toIface:
		if to.Implements(src) {
			return true, fmt.Sprintf("%s implements %s", to, src)
		}
		return false, ""
	case !srcIface && toIface:
		if src.Implements(to) {
			return true, fmt.Sprintf("%s implements %s", src, to)
		}
		return false, ""
	}

	if _, ok := conflictingMethod(src, to); ok {
		return false, ""
	}
	return true, fmt.Sprintf("a dynamic type may implement both %s and %s", src, to)
}

// conflictingMethod finds a method both interfaces declare with different
// signatures. No type can implement both such interfaces.
func conflictingMethod(a, b reflect.Type) (string, bool) {
	for i := 0; i < a.NumMethod(); i++ {
		m := a.Method(i)
		other, ok := b.MethodByName(m.Name)
		if !ok || other.PkgPath != m.PkgPath {
			continue
		}
		if other.Type != m.Type {
			return m.Name, true
		}
	}
	return "", false
}
