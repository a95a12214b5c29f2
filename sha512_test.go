package cryptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// twoBlockMessage reproduces the standard 112-byte two-block SHA-512
// test message: for i in ['a'..'n'], append the 8 bytes i..i+7.
func twoBlockMessage() []byte {
	var msg []byte
	for i := byte(0x61); i < 0x6f; i++ {
		for j := byte(0); j < 8; j++ {
			msg = append(msg, i+j)
		}
	}
	return msg
}

func TestSHA512Abc(t *testing.T) {
	want := []byte{
		0xdd, 0xaf, 0x35, 0xa1, 0x93, 0x61, 0x7a, 0xba, 0xcc, 0x41, 0x73, 0x49, 0xae, 0x20,
		0x41, 0x31, 0x12, 0xe6, 0xfa, 0x4e, 0x89, 0xa9, 0x7e, 0xa2, 0x0a, 0x9e, 0xee, 0xe6,
		0x4b, 0x55, 0xd3, 0x9a, 0x21, 0x92, 0x99, 0x2a, 0x27, 0x4f, 0xc1, 0xa8, 0x36, 0xba,
		0x3c, 0x23, 0xa3, 0xfe, 0xeb, 0xbd, 0x45, 0x4d, 0x44, 0x23, 0x64, 0x3c, 0xe8, 0x0e,
		0x2a, 0x9a, 0xc9, 0x4f, 0xa5, 0x4c, 0xa4, 0x9f,
	}
	assert.Equal(t, want, SHA512.Sum([]byte("abc")))
}

func TestSHA512MultiBlock(t *testing.T) {
	want := []byte{
		0x8E, 0x95, 0x9B, 0x75, 0xDA, 0xE3, 0x13, 0xDA, 0x8C, 0xF4, 0xF7, 0x28, 0x14, 0xFC,
		0x14, 0x3F, 0x8F, 0x77, 0x79, 0xC6, 0xEB, 0x9F, 0x7F, 0xA1, 0x72, 0x99, 0xAE, 0xAD,
		0xB6, 0x88, 0x90, 0x18, 0x50, 0x1D, 0x28, 0x9E, 0x49, 0x00, 0xF7, 0xE4, 0x33, 0x1B,
		0x99, 0xDE, 0xC4, 0xB5, 0x43, 0x3A, 0xC7, 0xD3, 0x29, 0xEE, 0xB6, 0xDD, 0x26, 0x54,
		0x5E, 0x96, 0xE5, 0x5B, 0x87, 0x4B, 0xE9, 0x09,
	}
	assert.Equal(t, want, SHA512.Sum(twoBlockMessage()))
}

func TestSHA384Abc(t *testing.T) {
	want := []byte{
		0xCB, 0x00, 0x75, 0x3F, 0x45, 0xA3, 0x5E, 0x8B, 0xB5, 0xA0, 0x3D, 0x69, 0x9A, 0xC6,
		0x50, 0x07, 0x27, 0x2C, 0x32, 0xAB, 0x0E, 0xDE, 0xD1, 0x63, 0x1A, 0x8B, 0x60, 0x5A,
		0x43, 0xFF, 0x5B, 0xED, 0x80, 0x86, 0x07, 0x2B, 0xA1, 0xE7, 0xCC, 0x23, 0x58, 0xBA,
		0xEC, 0xA1, 0x34, 0xC8, 0x25, 0xA7,
	}
	assert.Equal(t, want, SHA384.Sum([]byte("abc")))
}

func TestSHA384MultiBlock(t *testing.T) {
	want := []byte{
		0x09, 0x33, 0x0C, 0x33, 0xF7, 0x11, 0x47, 0xE8, 0x3D, 0x19, 0x2F, 0xC7, 0x82, 0xCD,
		0x1B, 0x47, 0x53, 0x11, 0x1B, 0x17, 0x3B, 0x3B, 0x05, 0xD2, 0x2F, 0xA0, 0x80, 0x86,
		0xE3, 0xB0, 0xF7, 0x12, 0xFC, 0xC7, 0xC7, 0x1A, 0x55, 0x7E, 0x2D, 0xB9, 0x66, 0xC3,
		0xE9, 0xFA, 0x91, 0x74, 0x60, 0x39,
	}
	assert.Equal(t, want, SHA384.Sum(twoBlockMessage()))
}

func TestSHA512_224Abc(t *testing.T) {
	want := []byte{
		0x46, 0x34, 0x27, 0x0F, 0x70, 0x7B, 0x6A, 0x54, 0xDA, 0xAE, 0x75, 0x30, 0x46, 0x08,
		0x42, 0xE2, 0x0E, 0x37, 0xED, 0x26, 0x5C, 0xEE, 0xE9, 0xA4, 0x3E, 0x89, 0x24, 0xAA,
	}
	assert.Equal(t, want, SHA512_224.Sum([]byte("abc")))
}

func TestSHA512_224MultiBlock(t *testing.T) {
	want := []byte{
		0x23, 0xFE, 0xC5, 0xBB, 0x94, 0xD6, 0x0B, 0x23, 0x30, 0x81, 0x92, 0x64, 0x0B, 0x0C,
		0x45, 0x33, 0x35, 0xD6, 0x64, 0x73, 0x4F, 0xE4, 0x0E, 0x72, 0x68, 0x67, 0x4A, 0xF9,
	}
	assert.Equal(t, want, SHA512_224.Sum(twoBlockMessage()))
}

func TestSHA512_256Abc(t *testing.T) {
	want := []byte{
		0x53, 0x04, 0x8E, 0x26, 0x81, 0x94, 0x1E, 0xF9, 0x9B, 0x2E, 0x29, 0xB7, 0x6B, 0x4C,
		0x7D, 0xAB, 0xE4, 0xC2, 0xD0, 0xC6, 0x34, 0xFC, 0x6D, 0x46, 0xE0, 0xE2, 0xF1, 0x31,
		0x07, 0xE7, 0xAF, 0x23,
	}
	assert.Equal(t, want, SHA512_256.Sum([]byte("abc")))
}

func TestSHA512_256MultiBlock(t *testing.T) {
	want := []byte{
		0x39, 0x28, 0xE1, 0x84, 0xFB, 0x86, 0x90, 0xF8, 0x40, 0xDA, 0x39, 0x88, 0x12, 0x1D,
		0x31, 0xBE, 0x65, 0xCB, 0x9D, 0x3E, 0xF8, 0x3E, 0xE6, 0x14, 0x6F, 0xEA, 0xC8, 0x61,
		0xE1, 0x9B, 0x56, 0x3A,
	}
	assert.Equal(t, want, SHA512_256.Sum(twoBlockMessage()))
}

func TestHashAlgSizesAndBlockSize(t *testing.T) {
	cases := []struct {
		alg  HashAlg
		size int
	}{
		{SHA384, 48},
		{SHA512, 64},
		{SHA512_224, 28},
		{SHA512_256, 32},
	}
	for _, c := range cases {
		assert.Equalf(t, c.size, c.alg.Size(), "%s.Size()", c.alg)
		assert.Equalf(t, 128, c.alg.BlockSize(), "%s.BlockSize()", c.alg)
	}
}
