// SPDX-License-Identifier: MIT
// Package pipeline drives the thirteen-layer sufficiency computation end to
// end: Driver.Run wires each layer's Evaluate/SelectModel/Transform call in
// dependency order and assembles the final BuildResult envelope, including
// its two content hashes (package buildhash).
//
// The layer dependency graph is a compile-time-fixed DAG (LayerDAG).
// topologicalOrder walks it the way dfs.TopologicalSort walks a core.Graph
// in the teacher package: white/gray/black coloring, post-order recording
// (dependencies first, so no reversal is needed), ErrCycleDetected on a
// back-edge. Driver.Run's literal sequence
// of Evaluate/SelectModel/Transform calls already follows a valid
// topological order of LayerDAG by construction, so topologicalOrder has no
// caller in Run itself; it is an invariant the DAG must satisfy, checked
// directly by pipeline_test.go rather than recomputed on every run.
package pipeline
