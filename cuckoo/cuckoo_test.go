// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license.

package cuckoo

import (
	"errors"
	"reflect"
	"testing"
)

func referenceMessage(tailByte byte) []byte {
	msg := make([]byte, 80)
	msg[76] = tailByte
	return msg
}

func TestReferenceVectors(t *testing.T) {
	c, err := New(16, 8, 6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		name string
		tail byte
		want []uint32
	}{
		{"vector1", 0x1c, []uint32{0, 1, 2, 4, 5, 6}},
		{"vector2", 0x36, []uint32{0, 1, 2, 3, 4, 7}},
		{"vector3", 0xf6, []uint32{0, 1, 2, 4, 5, 7}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := referenceMessage(tc.tail)

			proof, ok := c.Solve(msg)
			if !ok {
				t.Fatalf("Solve returned no proof")
			}
			if !reflect.DeepEqual(proof, tc.want) {
				t.Errorf("Solve proof = %v, want %v", proof, tc.want)
			}
			if !c.Verify(msg, proof) {
				t.Errorf("Verify rejected the solver's own proof")
			}
		})
	}
}

func TestCrossMessageProofRejected(t *testing.T) {
	c, err := New(16, 8, 6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// The proof for the 0x36 message must not verify against the 0x1c
	// message, even though both are well-formed 6-cycles under N=16/E=8.
	msg1 := referenceMessage(0x1c)
	vector2Proof := []uint32{0, 1, 2, 3, 4, 7}

	if c.Verify(msg1, vector2Proof) {
		t.Error("Verify accepted a proof produced for a different message")
	}
}

func TestVerifyRejectsWrongLength(t *testing.T) {
	c, _ := New(16, 8, 6)
	msg := referenceMessage(0x1c)

	if c.Verify(msg, []uint32{0, 1, 2, 4, 5}) {
		t.Error("Verify accepted a proof shorter than L")
	}
	if c.Verify(msg, []uint32{0, 1, 2, 4, 5, 6, 7}) {
		t.Error("Verify accepted a proof longer than L")
	}
	if c.Verify(msg, nil) {
		t.Error("Verify accepted an empty proof")
	}
}

func TestVerifyRejectsOutOfRangeIndex(t *testing.T) {
	c, _ := New(16, 8, 6)
	msg := referenceMessage(0x1c)

	if c.Verify(msg, []uint32{0, 1, 2, 4, 5, 8}) {
		t.Error("Verify accepted an index equal to E")
	}
}

func TestVerifyRejectsDuplicateEdge(t *testing.T) {
	c, _ := New(16, 8, 6)
	msg := referenceMessage(0x1c)

	// Replacing one distinct index of a valid cycle with a duplicate of
	// another breaks 2-regularity: some vertex now has degree 3 (the
	// duplicated edge's endpoints) while another has degree 1 (the edge
	// that got displaced).
	if c.Verify(msg, []uint32{0, 0, 1, 2, 4, 5}) {
		t.Error("Verify accepted a proof with a duplicate edge index")
	}
}

func TestVerifyOrderIndependent(t *testing.T) {
	c, _ := New(16, 8, 6)
	msg := referenceMessage(0x1c)

	proof := []uint32{0, 1, 2, 4, 5, 6}
	permuted := []uint32{6, 4, 5, 2, 1, 0}

	if !c.Verify(msg, proof) {
		t.Fatalf("Verify rejected the canonical ascending proof")
	}
	if !c.Verify(msg, permuted) {
		t.Errorf("Verify rejected a permutation of a valid proof")
	}
}

func TestSolveVerifyInvariant(t *testing.T) {
	c, err := New(16, 8, 6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for tail := 0; tail < 64; tail++ {
		msg := referenceMessage(byte(tail))

		proof, ok := c.Solve(msg)
		if !ok {
			continue
		}

		if len(proof) != 6 {
			t.Errorf("tail=%d: proof length = %d, want 6", tail, len(proof))
		}
		for i := 1; i < len(proof); i++ {
			if proof[i] <= proof[i-1] {
				t.Errorf("tail=%d: proof not strictly ascending: %v", tail, proof)
				break
			}
		}
		if !c.Verify(msg, proof) {
			t.Errorf("tail=%d: Verify rejected Solve's own proof %v", tail, proof)
		}
	}
}

func TestNewRejectsInvalidParams(t *testing.T) {
	cases := []struct {
		n, e, l uint64
		wantErr error
	}{
		{15, 8, 6, ErrInvalidVertexCount},
		{0, 8, 6, ErrInvalidVertexCount},
		{16, 0, 6, ErrInvalidEdgeCount},
		{16, 8, 3, ErrInvalidCycleLength},
		{16, 8, 5, ErrInvalidCycleLength},
	}

	for _, tc := range cases {
		if _, err := New(tc.n, tc.e, tc.l); !errors.Is(err, tc.wantErr) {
			t.Errorf("New(%d, %d, %d) err = %v, want %v", tc.n, tc.e, tc.l, err, tc.wantErr)
		}
	}

	if _, err := New(16, 8, 6); err != nil {
		t.Errorf("New(16, 8, 6) returned unexpected error: %v", err)
	}
}
