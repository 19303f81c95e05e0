package graph

import "testing"

func TestIsSimplePathTrueOnChain(t *testing.T) {
	g := buildDirected(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	if !IsSimplePath(g) {
		t.Error("expected a linear chain to be a simple path")
	}
}

func TestIsSimplePathFalseOnBranch(t *testing.T) {
	g := buildDirected(t, 3, [][2]int{{0, 1}, {0, 2}})
	if IsSimplePath(g) {
		t.Error("expected a branching node to disqualify the simple path")
	}
}

func TestIsSimplePathFalseOnMultipleRoots(t *testing.T) {
	g := buildDirected(t, 4, [][2]int{{0, 1}, {2, 3}})
	if IsSimplePath(g) {
		t.Error("expected two disjoint chains to not be a single simple path")
	}
}

func TestIsSimplePathFalseOnCycle(t *testing.T) {
	g := buildDirected(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	if IsSimplePath(g) {
		t.Error("expected a cycle (no root) to not be a simple path")
	}
}
