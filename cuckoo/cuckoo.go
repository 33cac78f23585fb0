// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license.

// Package cuckoo implements the Cuckoo Cycle proof-of-work primitive: a
// deterministic edge-generation function over a keyed bipartite graph, a
// union-find based solver that searches for a fixed-length cycle, and a
// cheap verifier for a claimed cycle.
package cuckoo

import "github.com/sirupsen/logrus"

// Cuckoo is an immutable Cuckoo Cycle instance for a fixed graph size, edge
// count and target cycle length. A *Cuckoo is safe for concurrent use by
// multiple goroutines calling Solve/Verify on disjoint messages; it holds
// no mutable state of its own.
type Cuckoo struct {
	n uint64 // max_vertex, total vertex count (N/2 left + N/2 right)
	e uint64 // max_edge, edge indices live in [0, e)
	l uint64 // cycle_length, the required cycle length
}

// New returns a Cuckoo instance for the given graph size n, edge count e
// and target cycle length l. n must be even and non-zero; e must be
// non-zero; l must be even and at least 4.
func New(n, e, l uint64) (*Cuckoo, error) {
	if n == 0 || n%2 != 0 {
		return nil, ErrInvalidVertexCount
	}
	if e == 0 {
		return nil, ErrInvalidEdgeCount
	}
	if l < 4 || l%2 != 0 {
		return nil, ErrInvalidCycleLength
	}

	return &Cuckoo{n: n, e: e, l: l}, nil
}

// Solve searches for the first cycle of exactly Cuckoo.l edges in the
// bipartite graph keyed by message, streaming edge indices 0..e-1 in
// ascending order. It returns the cycle as an ascending, distinct sequence
// of edge indices, or ok == false if none was found. The result is a pure
// function of (message, n, e, l); apart from its debug log lines Solve does
// no I/O and touches no shared state, and a failed search is a normal
// outcome, not an error.
func (c *Cuckoo) Solve(message []byte) (proof []uint32, ok bool) {
	tag := shortID(message)
	logrus.Debugf("cuckoo: solve start tag=%s n=%d e=%d l=%d", tag, c.n, c.e, c.l)

	k := deriveKeys(message)
	proof, ok = solve(k, c.n, c.e, c.l)

	logrus.Debugf("cuckoo: solve done tag=%s ok=%v edges=%d", tag, ok, len(proof))
	return proof, ok
}

// Verify reports whether proof is a valid L-cycle for message under this
// instance's parameters. Verify never panics: every failure mode collapses
// to a false return.
func (c *Cuckoo) Verify(message []byte, proof []uint32) bool {
	tag := shortID(message)
	logrus.Debugf("cuckoo: verify start tag=%s n=%d e=%d l=%d", tag, c.n, c.e, c.l)

	k := deriveKeys(message)
	ok := verify(k, c.n, c.e, c.l, proof)

	logrus.Debugf("cuckoo: verify done tag=%s proof_len=%d ok=%v", tag, len(proof), ok)
	return ok
}
