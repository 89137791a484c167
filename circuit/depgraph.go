// Package circuit: per-qubit dependency graph over a Circuit's operations.
//
// The graph is an arena: nodes are the circuit's operations indexed by
// NodeID in program order, and each node carries explicit next/prev
// links per touched qubit ("wires"). Edges encode "same-qubit,
// must-execute-before" ordering. Removal splices the wire — the
// predecessor and successor on each touched qubit become directly
// connected — so a rewrite pass never performs live pointer surgery.
package circuit

import "fmt"

// DepGraph is a derived, mutable view of a Circuit's ordering structure.
// It is not safe for concurrent use and must not outlive mutations made
// to the circuit by other means.
type DepGraph struct {
	c       *Circuit
	nodes   []*Operation        // arena; NodeID indexes into this slice
	removed []bool              // tombstones
	next    []map[QubitID]NodeID // per node: following operation on each wire
	prev    []map[QubitID]NodeID // per node: preceding operation on each wire
	head    map[QubitID]NodeID   // first live operation per wire
	tail    map[QubitID]NodeID   // last live operation per wire
	live    int                  // count of non-removed nodes
}

// NewDepGraph builds the wire structure for c in one program-order scan.
// Returns ErrNilCircuit for a nil circuit.
// Complexity: O(n) time and memory, n = c.Len().
func NewDepGraph(c *Circuit) (*DepGraph, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}

	// Stage 1: Allocate the arena.
	n := len(c.ops)
	g := &DepGraph{
		c:       c,
		nodes:   c.ops,
		removed: make([]bool, n),
		next:    make([]map[QubitID]NodeID, n),
		prev:    make([]map[QubitID]NodeID, n),
		head:    make(map[QubitID]NodeID),
		tail:    make(map[QubitID]NodeID),
		live:    n,
	}

	// Stage 2: Thread each operation onto the wires of its qubits.
	var (
		id   NodeID
		q    QubitID
		last NodeID
		ok   bool
	)
	for i, op := range c.ops {
		id = NodeID(i)
		g.next[i] = make(map[QubitID]NodeID, len(op.Qubits))
		g.prev[i] = make(map[QubitID]NodeID, len(op.Qubits))
		for _, q = range op.Qubits {
			if last, ok = g.tail[q]; ok {
				g.next[last][q] = id
				g.prev[i][q] = last
			} else {
				g.head[q] = id
				g.prev[i][q] = NoNode
			}
			g.next[i][q] = NoNode
			g.tail[q] = id
		}
	}

	return g, nil
}

// Op returns the operation stored at id.
// Errors: ErrUnknownNode, ErrNodeRemoved.
// Complexity: O(1).
func (g *DepGraph) Op(id NodeID) (*Operation, error) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, fmt.Errorf("Op(%d): %w", id, ErrUnknownNode)
	}
	if g.removed[id] {
		return nil, fmt.Errorf("Op(%d): %w", id, ErrNodeRemoved)
	}

	return g.nodes[id], nil
}

// Removed reports whether id has been spliced out. Out-of-range ids
// report true (they are not live). Complexity: O(1).
func (g *DepGraph) Removed(id NodeID) bool {
	return id < 0 || int(id) >= len(g.nodes) || g.removed[id]
}

// Len returns the number of live nodes. Complexity: O(1).
func (g *DepGraph) Len() int { return g.live }

// Remove splices node id out of every wire it sits on: on each touched
// qubit the predecessor and successor become directly linked.
// Errors: ErrUnknownNode, ErrNodeRemoved.
// Complexity: O(1) — at most two wires, one relink each.
func (g *DepGraph) Remove(id NodeID) error {
	// Stage 1: Validate.
	if id < 0 || int(id) >= len(g.nodes) {
		return fmt.Errorf("Remove(%d): %w", id, ErrUnknownNode)
	}
	if g.removed[id] {
		return fmt.Errorf("Remove(%d): %w", id, ErrNodeRemoved)
	}

	// Stage 2: Relink each wire.
	var p, n NodeID
	for _, q := range g.nodes[id].Qubits {
		p = g.prev[id][q]
		n = g.next[id][q]
		if p == NoNode {
			if n == NoNode {
				// wire is now empty
				delete(g.head, q)
				delete(g.tail, q)
			} else {
				g.head[q] = n
				g.prev[n][q] = NoNode
			}
		} else {
			g.next[p][q] = n
			if n == NoNode {
				g.tail[q] = p
			} else {
				g.prev[n][q] = p
			}
		}
	}

	// Stage 3: Tombstone.
	g.removed[id] = true
	g.live--

	return nil
}

// NextOn returns the following live node on qubit q after id, or NoNode.
// Complexity: O(1).
func (g *DepGraph) NextOn(id NodeID, q QubitID) NodeID {
	if g.Removed(id) {
		return NoNode
	}
	n, ok := g.next[id][q]
	if !ok {
		return NoNode
	}

	return n
}

// Topological returns the live node ids in a valid execution order.
// Because ids are assigned in program order and removal never reorders,
// ascending id order is such an order.
// Complexity: O(n) time, O(live) memory.
func (g *DepGraph) Topological() []NodeID {
	out := make([]NodeID, 0, g.live)
	for i := range g.nodes {
		if !g.removed[i] {
			out = append(out, NodeID(i))
		}
	}

	return out
}

// Rebuild writes the surviving operations back into the underlying
// circuit in topological order, completing a pass's in-place mutation.
// Complexity: O(n).
func (g *DepGraph) Rebuild() {
	ops := make([]*Operation, 0, g.live)
	for i, op := range g.nodes {
		if !g.removed[i] {
			ops = append(ops, op)
		}
	}
	g.c.setOperations(ops)
}
