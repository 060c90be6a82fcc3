package eval

import "math/bits"

// popLSB clears and returns the index of the least-significant set bit.
func popLSB(bb *uint64) int {
	sq := bits.TrailingZeros64(*bb)
	*bb &= *bb - 1
	return sq
}

// fileMask returns the bitboard of every square on the given file (0..7).
func fileMask(file int) uint64 {
	const aFile = 0x0101010101010101
	return aFile << uint(file)
}
