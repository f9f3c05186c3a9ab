package magnitude

import (
	"errors"
	"fmt"
)

// ErrUndefined is returned by Add and Sub when the operation mixes two
// infinite operands, for which no meaningful result exists.
var ErrUndefined = errors.New("magnitude: arithmetic on two infinite operands is undefined")

// Number is the set of built-in numeric types a Magnitude can wrap.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// kind discriminates the three Magnitude variants.
type kind uint8

const (
	kindFinite kind = iota
	kindPosInf
	kindNegInf
)

// Magnitude is a tagged numeric value: Finite(T), PosInf or NegInf.
// The zero value is Finite(0).
type Magnitude[T Number] struct {
	k kind
	v T
}

// Finite wraps a finite value of T.
func Finite[T Number](v T) Magnitude[T] {
	return Magnitude[T]{k: kindFinite, v: v}
}

// PosInf returns the positive-infinite Magnitude, which exceeds every
// finite value. It models "no edge" and "unreachable".
func PosInf[T Number]() Magnitude[T] {
	return Magnitude[T]{k: kindPosInf}
}

// NegInf returns the negative-infinite Magnitude, which is exceeded by
// every finite value.
func NegInf[T Number]() Magnitude[T] {
	return Magnitude[T]{k: kindNegInf}
}

// IsFinite reports whether m holds a finite value.
func (m Magnitude[T]) IsFinite() bool { return m.k == kindFinite }

// IsPosInf reports whether m is positive infinity.
func (m Magnitude[T]) IsPosInf() bool { return m.k == kindPosInf }

// IsNegInf reports whether m is negative infinity.
func (m Magnitude[T]) IsNegInf() bool { return m.k == kindNegInf }

// Value returns the finite payload and true, or the zero value and false
// when m is infinite.
func (m Magnitude[T]) Value() (T, bool) {
	if m.k != kindFinite {
		var zero T
		return zero, false
	}

	return m.v, true
}

// MustValue returns the finite payload and panics when m is infinite.
// Use only where finiteness was already established.
func (m Magnitude[T]) MustValue() T {
	if m.k != kindFinite {
		panic(fmt.Sprintf("magnitude: MustValue on %s", m))
	}

	return m.v
}

// Cmp compares m against other under the total order
// NegInf < every finite value < PosInf, finite values numerically.
// It returns -1, 0 or +1.
func (m Magnitude[T]) Cmp(other Magnitude[T]) int {
	if m.k != kindFinite || other.k != kindFinite {
		// rank: NegInf=-1, Finite=0, PosInf=+1
		return cmpInt(m.rank(), other.rank())
	}
	switch {
	case m.v < other.v:
		return -1
	case m.v > other.v:
		return 1
	default:
		return 0
	}
}

// Less reports whether m sorts strictly before other.
func (m Magnitude[T]) Less(other Magnitude[T]) bool { return m.Cmp(other) < 0 }

// Equal reports whether m and other are the same variant with equal payloads.
func (m Magnitude[T]) Equal(other Magnitude[T]) bool { return m.Cmp(other) == 0 }

// Add returns m + other.
//
// Rules:
//   - Finite + Finite  = Finite sum
//   - Infinite + Finite = that infinity (and symmetrically)
//   - Infinite + Infinite = ErrUndefined, regardless of signs
func (m Magnitude[T]) Add(other Magnitude[T]) (Magnitude[T], error) {
	switch {
	case m.k == kindFinite && other.k == kindFinite:
		return Finite(m.v + other.v), nil
	case m.k == kindFinite:
		return other, nil
	case other.k == kindFinite:
		return m, nil
	default:
		return Magnitude[T]{}, fmt.Errorf("%w: %s + %s", ErrUndefined, m, other)
	}
}

// Sub returns m - other, under the same rules as Add with the sign of the
// subtrahend's infinity flipped.
func (m Magnitude[T]) Sub(other Magnitude[T]) (Magnitude[T], error) {
	switch {
	case m.k == kindFinite && other.k == kindFinite:
		return Finite(m.v - other.v), nil
	case m.k == kindFinite && other.k == kindPosInf:
		return NegInf[T](), nil
	case m.k == kindFinite && other.k == kindNegInf:
		return PosInf[T](), nil
	case other.k == kindFinite:
		return m, nil
	default:
		return Magnitude[T]{}, fmt.Errorf("%w: %s - %s", ErrUndefined, m, other)
	}
}

// Min returns the smaller of m and other under the total order.
func (m Magnitude[T]) Min(other Magnitude[T]) Magnitude[T] {
	if other.Less(m) {
		return other
	}

	return m
}

// String renders the Magnitude for diagnostics: the payload for finite
// values, "+inf" or "-inf" otherwise.
func (m Magnitude[T]) String() string {
	switch m.k {
	case kindPosInf:
		return "+inf"
	case kindNegInf:
		return "-inf"
	default:
		return fmt.Sprintf("%v", m.v)
	}
}

// rank orders the variants for infinite comparisons.
func (m Magnitude[T]) rank() int {
	switch m.k {
	case kindNegInf:
		return -1
	case kindPosInf:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
