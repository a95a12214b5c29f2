package cryptor

import "math/bits"

// Twofish implements the AES-finalist block cipher (Schneier et al.),
// generalized here to 128/192/256-bit keys the same way the key
// schedule below already does: everything hinges on k = len(key)/8,
// and the h-function's round count grows with k.

var twofishMDS = [16]byte{
	0x01, 0xef, 0x5b, 0x5b, 0x5b, 0xef, 0xef, 0x01, 0xef, 0x5b, 0x01, 0xef, 0xef, 0x01, 0xef, 0x5b,
}

var twofishRS = [32]byte{
	0x01, 0xA4, 0x55, 0x87, 0x5A, 0x58, 0xDB, 0x9E, 0xA4, 0x56, 0x82, 0xF3, 0x1E, 0xC6, 0x68, 0xE5,
	0x02, 0xA1, 0xFC, 0xC1, 0x47, 0xAE, 0x3D, 0x19, 0xA4, 0x55, 0x87, 0x5A, 0x58, 0xDB, 0x9E, 0x03,
}

var q0Tables = [4][16]byte{
	{0x8, 0x1, 0x7, 0xd, 0x6, 0xf, 0x3, 0x2, 0x0, 0xb, 0x5, 0x9, 0xe, 0xc, 0xa, 0x4},
	{0xe, 0xc, 0xb, 0x8, 0x1, 0x2, 0x3, 0x5, 0xf, 0x4, 0xa, 0x6, 0x7, 0x0, 0x9, 0xd},
	{0xb, 0xa, 0x5, 0xe, 0x6, 0xd, 0x9, 0x0, 0xc, 0x8, 0xf, 0x3, 0x2, 0x4, 0x7, 0x1},
	{0xd, 0x7, 0xf, 0x4, 0x1, 0x2, 0x6, 0xe, 0x9, 0xb, 0x3, 0x0, 0x8, 0x5, 0xc, 0xa},
}

var q1Tables = [4][16]byte{
	{0x2, 0x8, 0xb, 0xd, 0xf, 0x7, 0x6, 0xe, 0x3, 0x1, 0x9, 0x4, 0x0, 0xa, 0xc, 0x5},
	{0x1, 0xe, 0x2, 0xb, 0x4, 0xc, 0x3, 0x7, 0x6, 0xd, 0xa, 0x5, 0xf, 0x9, 0x0, 0x8},
	{0x4, 0xc, 0x7, 0x5, 0x1, 0x6, 0x9, 0xa, 0x0, 0xe, 0xd, 0x8, 0x2, 0xb, 0x3, 0xf},
	{0xb, 0x9, 0x5, 0x1, 0xc, 0x3, 0xd, 0xe, 0x6, 0x4, 0x7, 0xf, 0x2, 0x0, 0x8, 0xa},
}

// ror41 rotates a 4-bit value right by one bit.
func ror41(x byte) byte {
	return ((x & 1) << 3) | (x >> 1)
}

func twofishQPerm(x byte, t [4][16]byte) byte {
	a0 := x >> 4
	b0 := x & 0xf

	a1 := a0 ^ b0
	b1 := a0 ^ ror41(b0) ^ ((a0 << 3) & 0xf)

	a2 := t[0][a1]
	b2 := t[1][b1]

	a3 := a2 ^ b2
	b3 := a2 ^ ror41(b2) ^ ((a2 << 3) & 0xf)

	a4 := t[2][a3]
	b4 := t[3][b3]

	return (b4 << 4) | a4
}

func twofishQ0(x byte) byte { return twofishQPerm(x, q0Tables) }
func twofishQ1(x byte) byte { return twofishQPerm(x, q1Tables) }

func tfWordToBytes(x uint32) [4]byte {
	return [4]byte{byte(x), byte(x >> 8), byte(x >> 16), byte(x >> 24)}
}

func tfBytesToWord(b [4]byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// twofishMulRS folds an 8-byte key chunk into one S-box word via the
// Reed-Solomon matrix, over GF(2^8) modulo x^8+x^6+x^3+x^2+1 (0x14d).
func twofishMulRS(input [8]byte) uint32 {
	var res [4]byte
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			res[i] ^= gfMul(input[j], twofishRS[(i<<3)+j], 0x14d)
		}
	}
	return tfBytesToWord(res)
}

// twofishH is the core diffusion function: four q-box passes keyed by
// up to four key words, followed by an MDS mix over GF(2^8) modulo
// x^8+x^6+x^5+x^3+1 (0x169).
func twofishH(x uint32, l []uint32) uint32 {
	k := len(l)
	xb := tfWordToBytes(x)

	inner := [4]byte{xb[0], xb[1], xb[2], xb[3]}

	if k == 4 {
		lb := tfWordToBytes(l[3])
		inner = [4]byte{
			twofishQ1(inner[0]) ^ lb[0],
			twofishQ0(inner[1]) ^ lb[1],
			twofishQ0(inner[2]) ^ lb[2],
			twofishQ1(inner[3]) ^ lb[3],
		}
	}
	if k >= 3 {
		lb := tfWordToBytes(l[2])
		inner = [4]byte{
			twofishQ1(inner[0]) ^ lb[0],
			twofishQ1(inner[1]) ^ lb[1],
			twofishQ0(inner[2]) ^ lb[2],
			twofishQ0(inner[3]) ^ lb[3],
		}
	}

	lb := tfWordToBytes(l[1])
	inner = [4]byte{
		twofishQ0(inner[0]) ^ lb[0],
		twofishQ1(inner[1]) ^ lb[1],
		twofishQ0(inner[2]) ^ lb[2],
		twofishQ1(inner[3]) ^ lb[3],
	}

	lb = tfWordToBytes(l[0])
	inner = [4]byte{
		twofishQ0(inner[0]) ^ lb[0],
		twofishQ0(inner[1]) ^ lb[1],
		twofishQ1(inner[2]) ^ lb[2],
		twofishQ1(inner[3]) ^ lb[3],
	}

	y := [4]byte{twofishQ1(inner[0]), twofishQ0(inner[1]), twofishQ1(inner[2]), twofishQ0(inner[3])}

	var res [4]byte
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			res[i] ^= gfMul(y[j], twofishMDS[(i<<2)+j], 0x169)
		}
	}
	return tfBytesToWord(res)
}

// Twofish holds an expanded 40-word round-key schedule and the
// key-dependent S-box vector used by the h-function during each round.
type Twofish struct {
	s []uint32
	k [40]uint32
}

// NewTwofish builds a Twofish instance from a 16, 24, or 32-byte key.
func NewTwofish(key []byte) (*Twofish, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, NewValidationError("key", len(key), "Twofish key must be 16, 24, or 32 bytes")
	}

	k := len(key) >> 3
	var mE, mO []uint32
	var s []uint32

	for i := 0; i < k<<1; i++ {
		var pos [4]byte
		copy(pos[:], key[i<<2:(i<<2)+4])
		w := tfBytesToWord(pos)
		if i&1 == 0 {
			mE = append(mE, w)
		} else {
			mO = append(mO, w)
		}
	}

	for i := 0; i < k; i++ {
		var pos [8]byte
		copy(pos[:], key[i<<3:(i<<3)+8])
		s = append(s, twofishMulRS(pos))
	}
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	const rho = 0x01010101

	var sched [40]uint32
	for i := uint32(0); i < 20; i++ {
		aI := twofishH(i*rho*2, mE)
		bI := bits.RotateLeft32(twofishH((2*i+1)*rho, mO), 8)
		sched[i*2] = aI + bI
		sched[i*2+1] = bits.RotateLeft32(aI+bI*2, 9)
	}

	return &Twofish{s: s, k: sched}, nil
}

// Zeroize clears the round-key schedule and the key-dependent S
// vector. The instance is unusable afterwards.
func (t *Twofish) Zeroize() {
	for i := range t.s {
		t.s[i] = 0
	}
	for i := range t.k {
		t.k[i] = 0
	}
}

func (t *Twofish) g(x uint32) uint32 {
	return twofishH(x, t.s)
}

func (t *Twofish) f(r0, r1 uint32, round int) (uint32, uint32) {
	t0 := t.g(r0)
	t1 := t.g(bits.RotateLeft32(r1, 8))

	return t0 + t1 + t.k[2*round+8], t0 + t1<<1 + t.k[2*round+9]
}

func twofishToBlock(block []byte) [4]uint32 {
	var p [4]uint32
	for i := 0; i < 4; i++ {
		var w [4]byte
		copy(w[:], block[i<<2:(i<<2)+4])
		p[i] = tfBytesToWord(w)
	}
	return p
}

func twofishFromBlock(p [4]uint32) [16]byte {
	var out [16]byte
	for i := 0; i < 4; i++ {
		w := tfWordToBytes(p[i])
		copy(out[i<<2:(i<<2)+4], w[:])
	}
	return out
}

// EncryptBlock encrypts a single 16-byte block in place.
func (t *Twofish) EncryptBlock(block []byte) {
	input := twofishToBlock(block)

	for n := range input {
		input[n] ^= t.k[n]
	}

	for r := 0; r < 16; r++ {
		f0, f1 := t.f(input[0], input[1], r)

		r0 := bits.RotateLeft32(input[2]^f0, -1)
		r1 := bits.RotateLeft32(input[3], 1) ^ f1

		input[0], input[1], input[2], input[3] = r0, r1, input[0], input[1]
	}

	var c [4]uint32
	for i := 0; i < 4; i++ {
		c[i] = input[(i+2)&3] ^ t.k[i+4]
	}
	input = c

	out := twofishFromBlock(input)
	copy(block, out[:])
}

// DecryptBlock decrypts a single 16-byte block in place.
func (t *Twofish) DecryptBlock(block []byte) {
	input := twofishToBlock(block)

	var c [4]uint32
	for n := 0; n < 4; n++ {
		c[(n+2)&3] = input[n] ^ t.k[n+4]
	}
	input = c

	for r := 15; r >= 0; r-- {
		f0, f1 := t.f(input[2], input[3], r)

		r2 := bits.RotateLeft32(input[0], 1) ^ f0
		r3 := bits.RotateLeft32(input[1]^f1, -1)

		input[0], input[1], input[2], input[3] = input[2], input[3], r2, r3
	}

	for n := range input {
		input[n] ^= t.k[n]
	}

	out := twofishFromBlock(input)
	copy(block, out[:])
}

// BlockSize returns the Twofish block size in bytes: always 16.
func (t *Twofish) BlockSize() int { return 16 }
