// SPDX-License-Identifier: MIT
// errors.go — sentinel errors for the decimal package.
//
// Only sentinel variables are exposed; callers MUST use errors.Is to branch
// on semantics. Sentinels are never wrapped with formatted strings at the
// definition site.

package decimal

import "errors"

var (
	// ErrNotFinite is returned when a value is NaN or ±Inf and therefore has
	// no exact rational representation.
	ErrNotFinite = errors.New("decimal: value is not finite")
)
