// SPDX-License-Identifier: MIT
package decimal

import (
	"math"
	"math/big"
)

// scale6 is 10^6, the denominator used by every six-decimal quantization.
var scale6 = big.NewInt(1_000_000)

// Round6 quantizes x to exactly six decimal places using half-away-from-zero
// rounding computed in exact rational arithmetic, and returns the nearest
// representable float64 to that exact decimal value.
//
// Round6 never rounds the raw float64 bit pattern directly: x is first
// converted to an exact big.Rat (its precise binary value), scaled by 10^6,
// rounded to the nearest integer away from zero on ties, and converted back.
// This guarantees the same result regardless of host language or hardware,
// which native math.Round on float64 cannot.
func Round6(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrNotFinite
	}
	if x == 0 {
		return 0, nil
	}

	r := new(big.Rat).SetFloat64(x)
	if r == nil {
		return 0, ErrNotFinite
	}
	return RoundRat6(r), nil
}

// RoundRat6 quantizes an exact rational to six decimal places using
// half-away-from-zero rounding and returns the nearest float64.
//
// Use this directly (instead of Round6) whenever the value already exists
// as an exact big.Rat — e.g. the hypergeometric and binomial primitives in
// package probcore — so the quantization never round-trips through a binary
// float64 before being rounded.
func RoundRat6(r *big.Rat) float64 {
	num := new(big.Int).Mul(r.Num(), scale6)
	den := r.Denom()

	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 {
		// Half-away-from-zero: compare |2*rem| against |den|.
		twice := new(big.Int).Abs(rem)
		twice.Lsh(twice, 1)
		cmp := twice.Cmp(new(big.Int).Abs(den))
		if cmp > 0 || (cmp == 0) {
			if num.Sign() >= 0 {
				q.Add(q, big.NewInt(1))
			} else {
				q.Sub(q, big.NewInt(1))
			}
		}
	}

	out := new(big.Rat).SetFrac(q, scale6)
	f, _ := out.Float64()
	return f
}

// Clamp restricts x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampRat restricts an exact rational to the closed interval [lo, hi].
func ClampRat(r *big.Rat, lo, hi *big.Rat) *big.Rat {
	if r.Cmp(lo) < 0 {
		return new(big.Rat).Set(lo)
	}
	if r.Cmp(hi) > 0 {
		return new(big.Rat).Set(hi)
	}
	return r
}

// FloorInt returns floor(x) as an int, after clamping x into [lo, hi].
// Used wherever the spec requires K_int = floor(clamp(effective_K, 0, N)).
func FloorInt(x, lo, hi float64) int {
	clamped := Clamp(x, lo, hi)
	return int(math.Floor(clamped))
}
