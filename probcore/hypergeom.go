// SPDX-License-Identifier: MIT
package probcore

import (
	"math/big"

	"github.com/deckforge/sufficiency/decimal"
)

// HypergeomPGE1 returns P(X >= 1) for a hypergeometric draw of n cards
// without replacement from a population of N with K successes:
//
//	P(X>=1) = 1 - C(N-K, n) / C(N, n)
//
// The result is computed as an exact rational and rendered via six-decimal
// half-away-from-zero rounding, then clamped to [0.0, 1.0]. Domain
// constraints: 0 <= K <= N, 0 <= n <= N; violating either returns
// ErrInvalidInput.
func HypergeomPGE1(N, K, n int) (float64, error) {
	if N < 0 || K < 0 || K > N || n < 0 || n > N {
		return 0, ErrInvalidInput
	}

	total := Comb(N, n)
	if total.Sign() == 0 {
		// C(N,n) == 0 only when n > N, already excluded above; defensive only.
		return 0, ErrInternal
	}
	miss := Comb(N-K, n)

	p := new(big.Rat).SetFrac(miss, total)
	one := big.NewRat(1, 1)
	p.Sub(one, p)

	zero := big.NewRat(0, 1)
	p = decimal.ClampRat(p, zero, one)

	return decimal.RoundRat6(p), nil
}

// HypergeomPGEX returns P(X >= x) for the same hypergeometric model:
//
//	P(X>=x) = sum_{i=x}^{min(K,n)} C(K,i) * C(N-K,n-i) / C(N,n)
//
// with the special cases x == 0 => 1.0 and x > min(K,n) => 0.0. Domain
// constraints: 0 <= K <= N, 0 <= n <= N, 0 <= x <= n.
func HypergeomPGEX(N, K, n, x int) (float64, error) {
	if N < 0 || K < 0 || K > N || n < 0 || n > N || x < 0 || x > n {
		return 0, ErrInvalidInput
	}
	if x == 0 {
		return 1.0, nil
	}
	upper := K
	if n < upper {
		upper = n
	}
	if x > upper {
		return 0.0, nil
	}

	total := Comb(N, n)
	if total.Sign() == 0 {
		return 0, ErrInternal
	}

	sumNum := new(big.Int)
	for i := x; i <= upper; i++ {
		term := new(big.Int).Mul(Comb(K, i), Comb(N-K, n-i))
		sumNum.Add(sumNum, term)
	}

	p := new(big.Rat).SetFrac(sumNum, total)
	zero := big.NewRat(0, 1)
	one := big.NewRat(1, 1)
	p = decimal.ClampRat(p, zero, one)

	return decimal.RoundRat6(p), nil
}
