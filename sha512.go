package cryptor

import "math/bits"

// HashAlg selects one of the four SHA-512 family members defined by
// FIPS 180-4: they share one compression function and differ only in
// initial vector and truncation length.
type HashAlg int

const (
	SHA384 HashAlg = iota
	SHA512
	SHA512_224
	SHA512_256
)

func (h HashAlg) String() string {
	switch h {
	case SHA384:
		return "SHA-384"
	case SHA512:
		return "SHA-512"
	case SHA512_224:
		return "SHA-512/224"
	case SHA512_256:
		return "SHA-512/256"
	default:
		return "unknown hash algorithm"
	}
}

// Size returns the digest length in bytes.
func (h HashAlg) Size() int {
	switch h {
	case SHA384:
		return 48
	case SHA512:
		return 64
	case SHA512_224:
		return 28
	case SHA512_256:
		return 32
	default:
		return 0
	}
}

// BlockSize returns the input block size in bytes used by the
// compression function: 128 bytes for every member of this family.
func (h HashAlg) BlockSize() int { return 128 }

func (h HashAlg) iv() [8]uint64 {
	switch h {
	case SHA384:
		return [8]uint64{
			0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
			0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
		}
	case SHA512:
		return [8]uint64{
			0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
			0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
		}
	case SHA512_224:
		return [8]uint64{
			0x8C3D37C819544DA2, 0x73E1996689DCD4D6, 0x1DFAB7AE32FF9C82, 0x679DD514582F9FCF,
			0x0F6D2B697BD44DA8, 0x77E36F7304C48942, 0x3F9D85A86A1D36C8, 0x1112E6AD91D692A1,
		}
	case SHA512_256:
		return [8]uint64{
			0x22312194FC2BF72C, 0x9F555FA3C84C64C2, 0x2393B86B6F53B151, 0x963877195940EABD,
			0x96283EE2A88EFFE3, 0xBE5E1E2553863992, 0x2B0199FC2C85B8AA, 0x0EB72DDC81C52CA2,
		}
	default:
		return [8]uint64{}
	}
}

var sha512K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

func sha512Ch(x, y, z uint64) uint64  { return (x & y) ^ (^x & z) }
func sha512Maj(x, y, z uint64) uint64 { return (x & y) ^ (x & z) ^ (z & y) }

func sha512Sum0(x uint64) uint64 {
	return bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^ bits.RotateLeft64(x, -39)
}

func sha512Sum1(x uint64) uint64 {
	return bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^ bits.RotateLeft64(x, -41)
}

func sha512Sigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7)
}

func sha512Sigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6)
}

// sha512Pad applies FIPS 180-4 Merkle-Damgard padding: an 0x80 bit,
// zeros out to 112 mod 128 bytes, and the original bit length as a
// 128-bit big-endian integer (the high 64 bits are always zero here,
// since no realistic message reaches 2^64 bits).
func sha512Pad(data []byte) []byte {
	bitLen := uint64(len(data)) * 8

	padded := make([]byte, len(data), len(data)+256)
	copy(padded, data)
	padded = append(padded, 0x80)

	for len(padded)%128 != 112 {
		padded = append(padded, 0)
	}

	var lenBytes [16]byte
	for i := 0; i < 8; i++ {
		lenBytes[15-i] = byte(bitLen >> (8 * uint(i)))
	}
	padded = append(padded, lenBytes[:]...)

	return padded
}

// sha512Compute runs the FIPS 180-4 compression function over every
// 128-byte block of the padded message, folding into iv.
func sha512Compute(data []byte, iv [8]uint64) [8]uint64 {
	padded := sha512Pad(data)

	var w [80]uint64

	for block := 0; block < len(padded); block += 128 {
		var m [16]uint64
		for i := 0; i < 16; i++ {
			m[i] = beUint64(padded[block+i*8 : block+i*8+8])
		}

		a, b, c, d, e, f, g, h := iv[0], iv[1], iv[2], iv[3], iv[4], iv[5], iv[6], iv[7]

		for t := 0; t < 80; t++ {
			if t < 16 {
				w[t] = m[t]
			} else {
				w[t] = sha512Sigma1(w[t-2]) + w[t-7] + sha512Sigma0(w[t-15]) + w[t-16]
			}

			t1 := h + sha512Sum1(e) + sha512Ch(e, f, g) + sha512K[t] + w[t]
			t2 := sha512Sum0(a) + sha512Maj(a, b, c)

			h = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		iv[0] += a
		iv[1] += b
		iv[2] += c
		iv[3] += d
		iv[4] += e
		iv[5] += f
		iv[6] += g
		iv[7] += h
	}

	return iv
}

func beUint64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}

func putBeUint64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

// Sum computes the digest of data under the chosen SHA-512 family
// member, truncated to h.Size() bytes.
func (h HashAlg) Sum(data []byte) []byte {
	state := sha512Compute(data, h.iv())

	var full [64]byte
	for i, word := range state {
		putBeUint64(full[i*8:i*8+8], word)
	}

	out := make([]byte, h.Size())
	copy(out, full[:h.Size()])
	return out
}
