// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license.

package cuckoo

// solve streams edge indices 0..E-1 over a union-find / linked-forest graph
// and returns the edge indices of the first cycle of exactly length L, or
// ok == false if the scan exhausts E without finding one.
//
// Internal vertex ids double up both partitions into [0, N): a left vertex
// u becomes 2*u (even), a right vertex v becomes 2*v+1 (odd). Vertex id 0
// doubles as the union-find "no parent" sentinel, so the edge where u == 0
// is skipped.
func solve(k keys, n, e, l uint64) ([]uint32, bool) {
	half := n / 2
	parent := make([]uint64, n)

	for i := uint64(0); i < e; i++ {
		u, v := edge(k, half, i)
		U := 2 * u
		V := 2*v + 1

		if U == 0 {
			continue
		}

		pathU := path(parent, U)
		pathV := path(parent, V)

		if pathU[len(pathU)-1] == pathV[len(pathV)-1] {
			c := commonSuffixLen(pathU, pathV)
			cycleLen := uint64(len(pathU)-c) + uint64(len(pathV)-c) + 1

			if cycleLen == l {
				seq := reconstructCycle(pathU, pathV, c, U)
				proof := edgesForCycle(k, half, e, l, seq)
				return proof, true
			}

			// Wrong cycle length: drop this closing edge and keep scanning.
			continue
		}

		union(parent, pathU, pathV, U, V)
	}

	return nil, false
}

// path walks start -> parent[start] -> ... until it reaches a vertex whose
// parent is 0 (the sentinel), returning the full chain including the root.
func path(parent []uint64, start uint64) []uint64 {
	chain := []uint64{start}
	for parent[start] != 0 {
		start = parent[start]
		chain = append(chain, start)
	}
	return chain
}

// commonSuffixLen returns the length of the common suffix of a and b,
// comparing from the ends inward. Since both chains terminate at their
// component's root, a non-zero suffix means a and b share an ancestor.
func commonSuffixLen(a, b []uint64) int {
	i, j := len(a)-1, len(b)-1
	c := 0
	for i >= 0 && j >= 0 && a[i] == b[j] {
		c++
		i--
		j--
	}
	return c
}

// union joins the two trees by comparing path lengths (not tree sizes): the
// shorter of pathU/pathV is reversed and its endpoint hung under the other
// endpoint, so both new endpoints remain reachable by walking parent
// pointers up to the unified root.
func union(parent []uint64, pathU, pathV []uint64, U, V uint64) {
	if len(pathU) < len(pathV) {
		reverseChain(parent, pathU)
		parent[U] = V
	} else {
		reverseChain(parent, pathV)
		parent[V] = U
	}
}

// reverseChain sets parent[b] = a for every consecutive pair (a, b) in
// chain, flipping the direction of the path so it can be re-rooted.
func reverseChain(parent []uint64, chain []uint64) {
	for i := 0; i+1 < len(chain); i++ {
		a, b := chain[i], chain[i+1]
		parent[b] = a
	}
}

// reconstructCycle assembles the internal-vertex sequence V0..Vk around the
// cycle that closes when edge (U, V) unions two paths meeting after a
// common suffix of length c: U's path down to (and including) the meeting
// vertex, then pathV's non-shared prefix reversed, then U again to close
// the loop.
func reconstructCycle(pathU, pathV []uint64, c int, U uint64) []uint64 {
	k := len(pathU) - c + 1
	seq := make([]uint64, 0, k+len(pathV)-c+1)
	seq = append(seq, pathU[:k]...)

	reversed := make([]uint64, len(pathV))
	for i, x := range pathV {
		reversed[len(pathV)-1-i] = x
	}
	seq = append(seq, reversed[c:]...)
	seq = append(seq, U)

	return seq
}

// edgesForCycle rescans edge indices 0..E-1 and, for each consecutive pair
// in seq still unresolved, records the first index whose edge matches (in
// either orientation). Because the scan and the removals are both strictly
// ascending, the result is naturally sorted.
func edgesForCycle(k keys, half, e, l uint64, seq []uint64) []uint32 {
	type step struct{ a, b uint64 }

	steps := make([]step, 0, len(seq)-1)
	for i := 0; i+1 < len(seq); i++ {
		steps = append(steps, step{seq[i], seq[i+1]})
	}

	proof := make([]uint32, 0, l)
	for n := uint64(0); n < e && uint64(len(proof)) < l; n++ {
		u, v := edge(k, half, n)
		U, V := 2*u, 2*v+1

		for i, st := range steps {
			if st.a == 0 && st.b == 0 {
				continue // already matched: internal vertex id 0 never occurs in a real step
			}
			if (st.a == U && st.b == V) || (st.a == V && st.b == U) {
				proof = append(proof, uint32(n))
				steps[i] = step{0, 0}
				break
			}
		}
	}

	return proof
}
