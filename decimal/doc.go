// SPDX-License-Identifier: MIT
// Package decimal provides exact, language-independent rounding for the
// sufficiency pipeline.
//
// Every floating-point value the pipeline emits must be rounded to exactly
// six decimal places using half-away-from-zero quantization computed in
// exact rational arithmetic — never native binary floating-point rounding,
// since a single ulp of drift would break build_hash_v1 byte-equality
// across repeated runs or independent implementations.
//
// Round6 (for a float64) and RoundRat6 (for a value already held as an exact
// big.Rat) are the entry points layer packages call before writing a float
// field into a LayerPayload.
package decimal
