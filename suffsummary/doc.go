// SPDX-License-Identifier: MIT
// Package suffsummary implements layer 12, SufficiencySummary: the upstream
// readiness gate, the profile_thresholds_v1 resolver, and the six
// fixed-order domain verdicts folded into one aggregate PASS/WARN/FAIL/SKIP
// status (spec.md §4.12).
//
// Pure control flow over already-computed upstream payloads and loaded
// threshold tables — no numeric algorithm of its own to ground beyond the
// fixed SKIP > FAIL > WARN > PASS composition order.
package suffsummary
