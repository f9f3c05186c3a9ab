// Package magnitude_test validates the total order and arithmetic of
// Magnitude values, including the undefined infinite combinations.
package magnitude_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grava/magnitude"
)

func TestMagnitude_ZeroValueIsFiniteZero(t *testing.T) {
	var m magnitude.Magnitude[int]
	if !m.IsFinite() {
		t.Fatalf("zero value should be finite, got %s", m)
	}
	if v := m.MustValue(); v != 0 {
		t.Fatalf("zero value payload = %d, want 0", v)
	}
}

func TestMagnitude_TotalOrder(t *testing.T) {
	// NegInf < -3 < 0 < 7 < PosInf, pairwise.
	asc := []magnitude.Magnitude[int]{
		magnitude.NegInf[int](),
		magnitude.Finite(-3),
		magnitude.Finite(0),
		magnitude.Finite(7),
		magnitude.PosInf[int](),
	}
	for i := range asc {
		for j := range asc {
			got := asc[i].Cmp(asc[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Fatalf("Cmp(%s, %s) = %d, want %d", asc[i], asc[j], got, want)
			}
		}
	}
}

func TestMagnitude_InfinitiesCompareEqualToThemselves(t *testing.T) {
	if !magnitude.PosInf[float64]().Equal(magnitude.PosInf[float64]()) {
		t.Fatal("PosInf should equal PosInf")
	}
	if !magnitude.NegInf[float64]().Equal(magnitude.NegInf[float64]()) {
		t.Fatal("NegInf should equal NegInf")
	}
}

func TestMagnitude_Value(t *testing.T) {
	if v, ok := magnitude.Finite(42).Value(); !ok || v != 42 {
		t.Fatalf("Finite(42).Value() = %d, %v", v, ok)
	}
	if _, ok := magnitude.PosInf[int]().Value(); ok {
		t.Fatal("PosInf.Value() should report no payload")
	}
}

func TestMagnitude_MustValuePanicsOnInfinite(t *testing.T) {
	require.Panics(t, func() { magnitude.NegInf[int]().MustValue() })
}

func TestMagnitude_Add(t *testing.T) {
	sum, err := magnitude.Finite(2).Add(magnitude.Finite(3))
	require.NoError(t, err)
	require.Equal(t, magnitude.Finite(5), sum)

	// An infinity absorbs a finite operand from either side.
	sum, err = magnitude.PosInf[int]().Add(magnitude.Finite(10))
	require.NoError(t, err)
	require.True(t, sum.IsPosInf())

	sum, err = magnitude.Finite(10).Add(magnitude.NegInf[int]())
	require.NoError(t, err)
	require.True(t, sum.IsNegInf())
}

func TestMagnitude_AddTwoInfinitesUndefined(t *testing.T) {
	pairs := [][2]magnitude.Magnitude[int]{
		{magnitude.PosInf[int](), magnitude.PosInf[int]()},
		{magnitude.PosInf[int](), magnitude.NegInf[int]()},
		{magnitude.NegInf[int](), magnitude.PosInf[int]()},
		{magnitude.NegInf[int](), magnitude.NegInf[int]()},
	}
	for _, p := range pairs {
		if _, err := p[0].Add(p[1]); !errors.Is(err, magnitude.ErrUndefined) {
			t.Fatalf("%s + %s: want ErrUndefined, got %v", p[0], p[1], err)
		}
	}
}

func TestMagnitude_Sub(t *testing.T) {
	d, err := magnitude.Finite(2).Sub(magnitude.Finite(5))
	require.NoError(t, err)
	require.Equal(t, magnitude.Finite(-3), d)

	// Subtracting an infinity from a finite value flips its sign.
	d, err = magnitude.Finite(0).Sub(magnitude.PosInf[int]())
	require.NoError(t, err)
	require.True(t, d.IsNegInf())

	d, err = magnitude.NegInf[int]().Sub(magnitude.Finite(1))
	require.NoError(t, err)
	require.True(t, d.IsNegInf())

	_, err = magnitude.NegInf[int]().Sub(magnitude.NegInf[int]())
	require.ErrorIs(t, err, magnitude.ErrUndefined)
}

func TestMagnitude_Min(t *testing.T) {
	a, b := magnitude.Finite(4.5), magnitude.Finite(1.5)
	require.Equal(t, b, a.Min(b))
	require.Equal(t, b, b.Min(a))
	require.Equal(t, magnitude.NegInf[float64](), b.Min(magnitude.NegInf[float64]()))
	require.Equal(t, b, b.Min(magnitude.PosInf[float64]()))
}

func TestMagnitude_String(t *testing.T) {
	if s := magnitude.Finite(9).String(); s != "9" {
		t.Fatalf("String() = %q, want %q", s, "9")
	}
	if s := magnitude.PosInf[int]().String(); s != "+inf" {
		t.Fatalf("String() = %q, want %q", s, "+inf")
	}
	if s := magnitude.NegInf[int]().String(); s != "-inf" {
		t.Fatalf("String() = %q, want %q", s, "-inf")
	}
}
