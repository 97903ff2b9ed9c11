// SPDX-License-Identifier: MIT
package pipeline

import (
	"errors"
	"sort"
)

// ErrCycleDetected mirrors dfs.ErrCycleDetected: LayerDAG is a compile-time
// literal, so this has no real runtime path, but topologicalOrder is kept
// general (and exercised by pipeline_test.go) rather than special-cased to
// the one DAG shipped today.
var ErrCycleDetected = errors.New("pipeline: cycle detected in layer DAG")

const (
	white = 0
	gray  = 1
	black = 2
)

// topologicalOrder walks nodes depth-first, the way dfs.TopologicalSort
// walks a core.Graph: white/gray/black vertex coloring and post-order
// recording. Edges point from a node to its dependencies, so the post-order
// already lists every dependency before its dependents and is returned
// without reversal. Vertices are visited in name-ascending order so the
// result is deterministic regardless of slice order.
func topologicalOrder(nodes []LayerNode) ([]string, error) {
	byName := make(map[string]LayerNode, len(nodes))
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		byName[n.Name] = n
		names = append(names, n.Name)
	}
	sort.Strings(names)

	state := make(map[string]int, len(nodes))
	order := make([]string, 0, len(nodes))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case gray:
			return ErrCycleDetected
		case black:
			return nil
		}
		state[name] = gray
		deps := append([]string{}, byName[name].DependsOn...)
		sort.Strings(deps)
		for _, d := range deps {
			if err := visit(d); err != nil {
				return err
			}
		}
		state[name] = black
		order = append(order, name)
		return nil
	}

	for _, name := range names {
		if state[name] == white {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}
	return order, nil
}

// ExportedTopologicalOrderForTest exposes the internal topologicalOrder for
// black-box tests. It forwards the call without modifying arguments or
// logic.
func ExportedTopologicalOrderForTest(nodes []LayerNode) ([]string, error) {
	return topologicalOrder(nodes)
}
