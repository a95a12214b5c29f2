package cryptor

// gfMul multiplies two bytes as polynomials over GF(2), then reduces the
// 16-bit product modulo the given 9-bit irreducible polynomial. This is
// the one routine AES's MixColumns/key-schedule and Twofish's MDS/RS
// matrices all reduce to, parameterized only by which polynomial they
// reduce against: 0x11B for AES, 0x169 for Twofish's MDS matrix, 0x14D
// for Twofish's RS matrix.
func gfMul(a, b byte, modulus uint16) byte {
	var res uint16
	a1, b1 := uint16(a), uint16(b)

	for i := 0; i < 8; i++ {
		res ^= a1 * (b1 & (1 << uint(i)))
	}

	for bitlen(res) >= bitlen(modulus) {
		shift := bitlen(res) - bitlen(modulus)
		res ^= modulus << shift
	}

	return byte(res)
}

// bitlen returns floor(log2(x)) for x > 0, and 0 for x == 0 — the same
// shift-count approach the source uses in place of a bits.Len call, kept
// here because the reduction loop's termination condition depends on
// this exact "degree of the polynomial" notion rather than bit-width.
func bitlen(x uint16) uint16 {
	var res uint16
	for x > 1 {
		x >>= 1
		res++
	}
	return res
}
