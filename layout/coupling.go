// Package layout: the hardware coupling graph (immutable input).
package layout

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qopt/matrix"
)

// CouplingGraph describes hardware qubit adjacency: nodes are physical
// qubits, edges unordered adjacent pairs. Provided externally (device
// description), treated as immutable once constructed.
type CouplingGraph struct {
	nodes []PhysicalID                              // ascending
	adj   map[PhysicalID]map[PhysicalID]struct{} // symmetric adjacency
}

// NewCoupling builds a CouplingGraph from an undirected edge list.
// Node ids are inferred from the edges; isolated hardware qubits are
// invisible to the layout engine by construction.
//
// Errors: ErrNoEdges, ErrSelfLoop, ErrNegativeNode.
// Complexity: O(E log E) (node sort) time, O(V+E) memory.
func NewCoupling(edges [][2]PhysicalID) (*CouplingGraph, error) {
	// Stage 1: Validate.
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	// Stage 2: Ingest edges symmetrically, de-duplicating as we go.
	g := &CouplingGraph{adj: make(map[PhysicalID]map[PhysicalID]struct{})}
	var a, b PhysicalID
	for _, e := range edges {
		a, b = e[0], e[1]
		if a < 0 || b < 0 {
			return nil, fmt.Errorf("NewCoupling(%d,%d): %w", a, b, ErrNegativeNode)
		}
		if a == b {
			return nil, fmt.Errorf("NewCoupling(%d,%d): %w", a, b, ErrSelfLoop)
		}
		g.link(a, b)
		g.link(b, a)
	}

	// Stage 3: Freeze the sorted node list.
	g.nodes = make([]PhysicalID, 0, len(g.adj))
	for n := range g.adj {
		g.nodes = append(g.nodes, n)
	}
	sort.Slice(g.nodes, func(i, j int) bool { return g.nodes[i] < g.nodes[j] })

	return g, nil
}

// link records the directed half of an undirected edge.
func (g *CouplingGraph) link(from, to PhysicalID) {
	m, ok := g.adj[from]
	if !ok {
		m = make(map[PhysicalID]struct{})
		g.adj[from] = m
	}
	m[to] = struct{}{}
}

// Order returns the number of physical nodes. Complexity: O(1).
func (g *CouplingGraph) Order() int { return len(g.nodes) }

// Nodes returns the physical node ids in ascending order.
// The returned slice is a copy. Complexity: O(V).
func (g *CouplingGraph) Nodes() []PhysicalID {
	return append([]PhysicalID(nil), g.nodes...)
}

// Degree returns the number of neighbours of p (0 for unknown nodes).
// Complexity: O(1).
func (g *CouplingGraph) Degree(p PhysicalID) int { return len(g.adj[p]) }

// HasEdge reports whether a and b are adjacent on hardware.
// Complexity: O(1).
func (g *CouplingGraph) HasEdge(a, b PhysicalID) bool {
	_, ok := g.adj[a][b]

	return ok
}

// internalEdges counts edges of the subgraph induced by set.
// Complexity: O(|set|·avg-degree).
func (g *CouplingGraph) internalEdges(set map[PhysicalID]struct{}) int {
	count := 0
	for a := range set {
		for b := range g.adj[a] {
			if _, ok := set[b]; ok && a < b {
				count++
			}
		}
	}

	return count
}

// adjacencyAmong builds the 0/1 adjacency matrix of the subgraph induced
// by the given node order; row/column i corresponds to order[i].
// Complexity: O(k²), k = len(order).
func (g *CouplingGraph) adjacencyAmong(order []PhysicalID) (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(order), len(order))
	if err != nil {
		return nil, err
	}
	for i, a := range order {
		for j, b := range order {
			if j > i && g.HasEdge(a, b) {
				if err = m.Set(i, j, 1); err != nil {
					return nil, err
				}
				if err = m.Set(j, i, 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}
