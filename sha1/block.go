//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"math/bits"
)

const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// Block runs the SHA-1 compression function over one 64-byte block
// and returns the advanced state.
func Block(block []byte, state State) State {
	if len(block) != BlockSize {
		panic("sha1: invalid block size")
	}

	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = d ^ (b & (c ^ d))
			k = _K0
		case i < 40:
			f = b ^ c ^ d
			k = _K1
		case i < 60:
			f = (b & c) + (d & (b ^ c))
			k = _K2
		default:
			f = b ^ c ^ d
			k = _K3
		}
		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e

	return state
}
