//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements a single-shot SHA-1 hash as defined in RFC
// 3174. The message is hashed in one call from a fully buffered byte
// slice; there is no incremental interface.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"encoding/binary"
)

// The size of a SHA-1 checksum in bytes.
const Size = 20

// The blocksize of SHA-1 in bytes.
const BlockSize = 64

// MaxLength is the largest supported message length in bytes.
const MaxLength = 1<<32 - 1

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// State holds the five chaining registers H0..H4.
type State [5]uint32

// Init is the initial chaining state.
var Init = State{init0, init1, init2, init3, init4}

// Bytes returns the state as a big-endian digest.
func (s State) Bytes() [Size]byte {
	var digest [Size]byte

	binary.BigEndian.PutUint32(digest[0:], s[0])
	binary.BigEndian.PutUint32(digest[4:], s[1])
	binary.BigEndian.PutUint32(digest[8:], s[2])
	binary.BigEndian.PutUint32(digest[12:], s[3])
	binary.BigEndian.PutUint32(digest[16:], s[4])

	return digest
}

// Sum returns the SHA-1 checksum of the data. The length of data must
// not exceed MaxLength.
func Sum(data []byte) [Size]byte {
	var tail [tailSize]byte

	body, final := pad(data, &tail)

	state := Init
	for len(body) >= BlockSize {
		state = Block(body[:BlockSize], state)
		body = body[BlockSize:]
	}
	for len(final) >= BlockSize {
		state = Block(final[:BlockSize], state)
		final = final[BlockSize:]
	}

	return state.Bytes()
}

// Blocks returns the number of compression function calls Sum makes
// for a message of length bytes.
func Blocks(length int) int {
	return (length + markerSize + lengthPad + BlockSize - 1) / BlockSize
}
