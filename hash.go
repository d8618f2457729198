package humanid

import (
	"crypto/md5"
	"encoding/binary"
)

// Hash32 reduces the MD5 digest of data to 32 bits. The 128-bit digest is read
// as a big-endian integer, its high 64 bits are XORed into the low 64 bits, and
// the result is folded the same way once more.
func Hash32(data []byte) uint32 {
	sum := md5.Sum(data)
	folded := binary.BigEndian.Uint64(sum[:8]) ^ binary.BigEndian.Uint64(sum[8:])
	return uint32(folded>>32) ^ uint32(folded)
}

// split treats h as a base-n number: the two lowest digits select words and
// the remaining quotient is the base number.
func split(h uint32, n int) (index1, index2 int, number uint64) {
	size := uint64(n)
	rest := uint64(h)
	index1 = int(rest % size)
	rest /= size
	index2 = int(rest % size)
	number = rest / size
	return index1, index2, number
}
