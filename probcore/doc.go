// SPDX-License-Identifier: MIT
// Package probcore implements the deterministic integer combinatorics and
// hypergeometric primitives that every downstream probability layer builds
// on (layer 6, ProbabilityMathCore).
//
// All intermediate values use math/big so that N=99-sized binomial
// coefficients (up to 29 decimal digits) never lose precision, and every
// probability is reduced to an exact rational before being quantized to six
// decimals by package decimal. Domain constraints are enforced strictly:
// violations are reported as sentinel errors, never panics, so that calling
// layers can translate them into the PROBABILITY_MATH_CORE_V1_* codes
// spec.md §4.6 requires.
package probcore

// Version pins this layer's compiled version for
// result.pipeline_versions.probability_math_core_version. ProbabilityMathCore
// has no LayerPayload of its own — layers 7, 9, and 11 call its functions
// directly and surface its errors as their own codes — so this constant
// exists solely for the pipeline version pin.
const Version = "probability_math_core_v1"

// CodeKIntPolicyViolation is the code a calling layer appends to its own
// Codes list when ValidateKIntPolicy fails for one of its buckets.
const CodeKIntPolicyViolation = "PROBABILITY_MATH_K_INT_POLICY_VIOLATION"
