// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license.

package cuckoo

// sipHash24 is the Cuckoo-specific four-key SipHash-2-4: the state is
// seeded directly from four independent 64-bit keys (v0..v3), not from the
// classic two-key constructor's XOR-expanded constants. Do not substitute a
// standard two-key SipHash library here; it produces different output.
type sipHash24 struct {
	v [4]uint64
}

// newSipHash24 returns a fresh hasher state seeded from k. Each edge() call
// constructs a new state; there is no accumulation across calls.
func newSipHash24(k keys) sipHash24 {
	return sipHash24{v: [4]uint64(k)}
}

// sum64 folds the four lanes into the final 64-bit digest.
func (h *sipHash24) sum64() uint64 {
	return h.v[0] ^ h.v[1] ^ h.v[2] ^ h.v[3]
}

// write64 hashes a single 64-bit little-endian word: two compression
// rounds, then four finalization rounds, per SipHash-2-4.
func (h *sipHash24) write64(nonce uint64) {
	h.v[3] ^= nonce

	round := func() {
		h.v[0] += h.v[1]
		h.v[1] = h.v[1]<<13 | h.v[1]>>(64-13)
		h.v[1] ^= h.v[0]
		h.v[0] = h.v[0]<<32 | h.v[0]>>(64-32)

		h.v[2] += h.v[3]
		h.v[3] = h.v[3]<<16 | h.v[3]>>(64-16)
		h.v[3] ^= h.v[2]

		h.v[0] += h.v[3]
		h.v[3] = h.v[3]<<21 | h.v[3]>>(64-21)
		h.v[3] ^= h.v[0]

		h.v[2] += h.v[1]
		h.v[1] = h.v[1]<<17 | h.v[1]>>(64-17)
		h.v[1] ^= h.v[2]
		h.v[2] = h.v[2]<<32 | h.v[2]>>(64-32)
	}

	round()
	round()

	h.v[0] ^= nonce
	h.v[2] ^= 0xff

	round()
	round()
	round()
	round()
}

// siphash24 computes a single SipHash-2-4 digest using key set k over the
// 64-bit word nonce.
func siphash24(k keys, nonce uint64) uint64 {
	h := newSipHash24(k)
	h.write64(nonce)
	return h.sum64()
}

// edge returns the (u, v) pair for edge index i: u is the left-partition
// vertex, v the right-partition vertex, both reduced mod half = N/2.
func edge(k keys, half uint64, i uint64) (u, v uint64) {
	u = siphash24(k, 2*i) % half
	v = siphash24(k, 2*i+1) % half
	return u, v
}
