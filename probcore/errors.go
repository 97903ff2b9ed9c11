// SPDX-License-Identifier: MIT
// errors.go — sentinel errors for package probcore.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is to branch on semantics.
//   - Sentinels are never wrapped with a formatted string at definition
//     site; callers wrap with fmt.Errorf("...: %w", err) if context helps.

package probcore

import "errors"

var (
	// ErrInvalidInput is returned when a domain constraint on N, K, n, or x
	// is violated, or when a supplied value is not an integer (spec.md
	// §4.6 explicitly rejects booleans disguised as integers). Surfaced to
	// callers as PROBABILITY_MATH_CORE_V1_INVALID_INPUT.
	ErrInvalidInput = errors.New("probcore: invalid input")

	// ErrInternal is returned when an internally-impossible state is
	// reached (e.g. a negative intermediate numerator that validation
	// should have already excluded). Surfaced to callers as
	// PROBABILITY_MATH_CORE_V1_INTERNAL_ERROR.
	ErrInternal = errors.New("probcore: internal impossibility")

	// ErrKIntPolicyViolation is returned by the thin layer wrapper when a
	// substitution bucket's K_int does not equal
	// floor(clamp(effective_K, 0, N)). Surfaced as
	// PROBABILITY_MATH_K_INT_POLICY_VIOLATION.
	ErrKIntPolicyViolation = errors.New("probcore: K_int policy violation")
)
