// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license.

package cuckoo

// verify recomputes the L edges named by proof, checks that both
// partitions are exactly 2-regular, then walks the implied cycle and
// accepts iff the walk returns to its start after exactly L edges.
//
// This is a total function: every failure class collapses to false, never
// a panic. The state machine runs INPUT_CHECK -> KEY_DERIVE -> EDGE_HASH ->
// DEGREE_CHECK -> WALK -> ACCEPT|REJECT, any step's failure short-circuits
// straight to REJECT.
func verify(k keys, n, e, l uint64, proof []uint32) bool {
	// INPUT_CHECK
	if uint64(len(proof)) != l {
		return false
	}
	for _, idx := range proof {
		if uint64(idx) >= e {
			return false
		}
	}

	// EDGE_HASH
	half := n / 2
	type uv struct{ u, v uint64 }

	edges := make([]uv, len(proof))
	byLeft := make(map[uint64][]uint64, len(proof))
	byRight := make(map[uint64][]uint64, len(proof))

	for i, idx := range proof {
		u, v := edge(k, half, uint64(idx))
		edges[i] = uv{u, v}
		byLeft[u] = append(byLeft[u], v)
		byRight[v] = append(byRight[v], u)
	}

	// DEGREE_CHECK: every vertex touched must have degree exactly 2 on its
	// own partition, a necessary condition for a disjoint union of even
	// cycles covering exactly L edges.
	for _, vs := range byLeft {
		if len(vs) != 2 {
			return false
		}
	}
	for _, us := range byRight {
		if len(us) != 2 {
			return false
		}
	}

	// WALK
	start := edges[0].u
	curU, curV := edges[0].u, edges[0].v
	walked := uint64(0)

	for {
		nextV := other(byLeft[curU], curV)
		nextU := other(byRight[nextV], curU)
		curU, curV = nextU, nextV
		walked += 2

		if curU == start {
			break
		}

		// Defensive bound: a well-formed degree-2 graph closes within l steps.
		if walked > 2*l {
			return false
		}
	}

	// ACCEPT|REJECT
	return walked == l
}

// other returns the element of a two-element list that isn't x.
func other(list []uint64, x uint64) uint64 {
	if list[0] == x {
		return list[1]
	}
	return list[0]
}
