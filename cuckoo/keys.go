// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license.

package cuckoo

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// keys are the four 64-bit SipHash lanes derived from a message. They seed
// the edge oracle's SipHash-2-4 state directly (v0..v3), unlike the classic
// two-key SipHash constructor.
type keys [4]uint64

// deriveKeys hashes message with Blake2b-256 and splits the digest into four
// little-endian uint64 words.
func deriveKeys(message []byte) keys {
	sum := blake2b.Sum256(message)

	return keys{
		binary.LittleEndian.Uint64(sum[0:8]),
		binary.LittleEndian.Uint64(sum[8:16]),
		binary.LittleEndian.Uint64(sum[16:24]),
		binary.LittleEndian.Uint64(sum[24:32]),
	}
}
