// Package layout: greedy connected-subgraph selection on the coupling graph.
package layout

import (
	"fmt"
	"math/rand"
)

// growSubgraph extracts a connected candidate set of exactly size nodes
// from cg, maximizing internal edge count at every step.
//
// Growth starts at the node of maximum degree (first such node in
// ascending id order). Each round shuffles the not-yet-included nodes
// and adds the one whose inclusion yields the most internal edges; a
// node adding no edge is never chosen, so growth that stalls below the
// requested size means the device region around the seed is too sparse
// and is surfaced as ErrInsufficientConnectivity, never padded.
//
// The returned slice preserves growth order; callers use it as the row
// order of the hardware adjacency matrix.
//
// Errors: ErrCircuitTooLarge, ErrInsufficientConnectivity.
// Complexity: O(size·M·deg) with M coupling nodes.
func growSubgraph(cg *CouplingGraph, size int, rng *rand.Rand) ([]PhysicalID, error) {
	// Stage 1: Validate the request against the device.
	if size > cg.Order() {
		return nil, fmt.Errorf("growSubgraph: need %d of %d nodes: %w", size, cg.Order(), ErrCircuitTooLarge)
	}

	// Stage 2: Seed with the highest-degree node.
	var (
		seed    PhysicalID
		bestDeg = -1
	)
	for _, n := range cg.nodes { // ascending, so ties pick the smallest id
		if d := cg.Degree(n); d > bestDeg {
			bestDeg = d
			seed = n
		}
	}

	chosen := map[PhysicalID]struct{}{seed: {}}
	order := []PhysicalID{seed}

	// Stage 3: Grow greedily until the set reaches size or stalls.
	var (
		candidates []PhysicalID
		bestNode   PhysicalID
		bestEdges  int
		found      bool
	)
	for len(order) < size {
		// re-collect and re-shuffle candidates each round: the shuffle is
		// the tie-break among equally connective nodes
		candidates = candidates[:0]
		for _, n := range cg.nodes {
			if _, ok := chosen[n]; !ok {
				candidates = append(candidates, n)
			}
		}
		shufflePhysicals(candidates, rng)

		// a candidate must add at least one edge over the current count
		bestEdges = cg.internalEdges(chosen)
		found = false
		for _, n := range candidates {
			chosen[n] = struct{}{}
			if e := cg.internalEdges(chosen); e > bestEdges {
				bestEdges = e
				bestNode = n
				found = true
			}
			delete(chosen, n)
		}
		if !found {
			// no candidate improves connectivity: degenerate region
			return nil, fmt.Errorf("growSubgraph: stalled at %d of %d nodes: %w", len(order), size, ErrInsufficientConnectivity)
		}

		chosen[bestNode] = struct{}{}
		order = append(order, bestNode)
	}

	return order, nil
}
