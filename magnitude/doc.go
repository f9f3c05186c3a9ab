// Package magnitude provides a tagged numeric value that is either a finite
// number or one of two infinities, used throughout grava as the unit of edge
// weight and of algorithm results (distances).
//
// What
//
//   - Magnitude[T] wraps any numeric type T and is exactly one of:
//   - Finite(v): an ordinary value of T
//   - PosInf:    greater than every finite value ("no edge" / "unreachable")
//   - NegInf:    smaller than every finite value
//   - Total ordering via Cmp / Less / Equal, consistent with numeric
//     comparison of the finite payloads.
//   - Add / Sub perform sentinel-aware arithmetic and fail fast with
//     ErrUndefined on any infinite±infinite combination rather than
//     producing a silently wrong finite result.
//
// Why
//
//	Distance tables need a value that is strictly larger than any real
//	distance before relaxation, and shortest-path results need to report
//	"unreachable" without overloading a magic finite number. Encoding the
//	infinities in the type keeps both concerns explicit and checkable.
//
// Usage
//
//	d := magnitude.PosInf[int]()          // unreachable until relaxed
//	w := magnitude.Finite(7)              // a finite weight
//	sum, err := d.Add(w)                  // PosInf; err == nil
//	if sum.Less(d) { ... }                // total order over all three kinds
//
// Complexity: all operations are O(1).
package magnitude
