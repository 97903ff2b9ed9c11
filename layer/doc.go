// SPDX-License-Identifier: MIT
// Package layer defines the shared LayerPayload envelope every pipeline
// layer emits: a version pin, a closed-vocabulary status, an optional
// reason code for SKIP, and a sorted, deduplicated set of status codes
// drawn from that layer's closed code set (spec.md §3, §7).
//
// Each layer package defines its own payload type embedding Meta, so the
// envelope fields are flattened to the top level of the layer's JSON
// object rather than nested under a "body" key.
package layer
