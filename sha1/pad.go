//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

const (
	// The tail always spans two blocks.
	tailSize = 2 * BlockSize

	markerSize = 1

	// The padding reserves 8 bytes for the bit length but only the
	// low 5 are written. The upper 3 bytes are always zero for
	// messages shorter than 2^37 bytes, a superset of the 32-bit
	// length domain.
	lengthPad  = 8
	lengthSize = 5
)

// Pad splits data into the full blocks that are hashed directly from
// the caller's buffer and the padded tail. The tail holds the trailing
// message bytes, the 0x80 marker, zero fill and the 5-byte big-endian
// bit length. The body is a subslice of data and the tail is newly
// allocated; len(body)+len(tail) is a multiple of BlockSize.
func Pad(data []byte) (body, tail []byte) {
	buf := new([tailSize]byte)
	return pad(data, buf)
}

// pad fills buf with the tail of data and returns the body and the
// part of buf that must be hashed after it.
func pad(data []byte, buf *[tailSize]byte) (body, tail []byte) {
	length := len(data)

	// The tail covers padded offsets [end, end+tailSize) and ends at
	// the padded message end.
	end := (length+markerSize+lengthPad+BlockSize-1)&^(BlockSize-1) -
		tailSize

	var start int
	if end < 0 {
		// Short message: the first tail block would lie before the
		// message start.
		start = -end
	}
	n := copy(buf[start:], data[end+start:])
	buf[start+n] = 0x80

	putLength(buf[tailSize-lengthSize:], uint64(length))

	if end < 0 {
		return data[:0], buf[start:]
	}
	return data[:end], buf[:]
}

// putLength stores the bit length of a length byte message into the
// lengthSize bytes of buf in big-endian order.
func putLength(buf []byte, length uint64) {
	_ = buf[lengthSize-1]

	// Length in bits.
	bits := length << 3
	for i := 0; i < lengthSize; i++ {
		buf[lengthSize-1-i] = byte(bits >> (8 * i))
	}
}
