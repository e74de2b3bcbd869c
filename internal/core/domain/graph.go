// Package domain contains the core domain models for the target dependency graph.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph represents the static, acyclic prerequisite graph of build targets.
// Targets keep the order they were added in; that order drives "all"
// expansion and tie-breaking between independent targets.
type Graph struct {
	targets  map[InternedString]Target
	declared []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		targets: make(map[InternedString]Target),
	}
}

// AddTarget adds a target to the graph.
// It returns an error if a target with the same name already exists.
func (g *Graph) AddTarget(t Target) error {
	if _, exists := g.targets[t.Name]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target", t.Name.String())
	}
	g.targets[t.Name] = t
	g.declared = append(g.declared, t.Name)
	return nil
}

// Get returns the target with the given name.
func (g *Graph) Get(name InternedString) (Target, bool) {
	t, ok := g.targets[name]
	return t, ok
}

// TargetCount returns the number of targets in the graph.
func (g *Graph) TargetCount() int {
	return len(g.targets)
}

// Validate checks for cycles and dangling prerequisites with a depth-first
// search over every declared target.
func (g *Graph) Validate() error {
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		target, exists := g.targets[u]
		if !exists {
			return zerr.With(ErrMissingPrerequisite, "prerequisite", u.String())
		}

		for _, pre := range target.Prerequisites {
			if visited[pre] == 1 {
				return g.buildCycleError(path, pre)
			}
			if visited[pre] == 0 {
				if err := visit(pre); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	for _, name := range g.declared {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error carrying the cycle path as metadata.
func (g *Graph) buildCycleError(path []InternedString, pre InternedString) error {
	cyclePath := ""
	startIdx := 0
	for i, node := range path {
		if node == pre {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += pre.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Walk returns an iterator that yields targets in declaration order.
// Prerequisite ordering is the runner's concern; the walk only fixes the
// order ties are broken in.
func (g *Graph) Walk() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range g.declared {
			if !yield(g.targets[name]) {
				return
			}
		}
	}
}
