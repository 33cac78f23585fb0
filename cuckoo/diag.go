// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license.

package cuckoo

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2b"
)

// shortID returns a 6-byte hex correlation tag for message, for use in log
// lines only. It is computed with the classic two-key SipHash-2-4
// (github.com/dchest/siphash), keyed from the first 16 bytes of message's
// Blake2b-256 digest. Separate construction from the four-key domain
// SipHash in siphash.go; not used to derive graph edges.
func shortID(message []byte) string {
	sum := blake2b.Sum256(message)
	k0 := binary.LittleEndian.Uint64(sum[0:8])
	k1 := binary.LittleEndian.Uint64(sum[8:16])

	h := siphash.Hash(k0, k1, message)

	var tag [8]byte
	binary.LittleEndian.PutUint64(tag[:], h)

	return hex.EncodeToString(tag[:6])
}
