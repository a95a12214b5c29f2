package cryptor

import (
	"math/big"

	"github.com/google/uuid"
)

// rsaFingerprintNamespace scopes keypair fingerprints to this module so
// they never collide with UUIDs minted for unrelated purposes.
var rsaFingerprintNamespace = uuid.NameSpaceOID

// RSA is a textbook (unpadded) RSA keypair: n = p*q with p, q chosen
// so that p-1 and q-1 carry no small factor, e fixed at 65535, and d
// the modular inverse of e mod phi(n).
type RSA struct {
	e, d, n *big.Int
	size    int
}

var rsaPublicExponent = big.NewInt(65535)

// NewRSAKeyPair generates a size-bit RSA keypair. It splits size into
// two prime sizes biased slightly toward the first factor (s1 =
// size/2 + 3, s2 = size - s1), generates RSA-safe primes for each, and
// generates a fresh pair if 65535 is not invertible mod phi(n). Since
// 65535 = 3*5*17*257 and RSA-safe primes keep those factors out of
// p-1 and q-1, that retry is never taken.
func NewRSAKeyPair(size int) (*RSA, error) {
	s1 := size/2 + 3
	s2 := size - s1

	for {
		p1 := RSASafePrime(s1)
		p2 := RSASafePrime(s2)

		phi := new(big.Int).Mul(
			new(big.Int).Sub(p1, big.NewInt(1)),
			new(big.Int).Sub(p2, big.NewInt(1)),
		)

		d, err := ModInverse(rsaPublicExponent, phi)
		if err != nil {
			continue
		}

		n := new(big.Int).Mul(p1, p2)
		return &RSA{e: rsaPublicExponent, d: d, n: n, size: size}, nil
	}
}

// BlockSize returns the number of bits a plaintext block is allowed to
// occupy: one less than the modulus size, so that every block value
// is guaranteed smaller than n.
func (r *RSA) BlockSize() int {
	return r.size - 1
}

func (r *RSA) blockBytes() int {
	return r.BlockSize() / 8
}

// EncryptBlock raises data to the e-th power mod n.
func (r *RSA) EncryptBlock(data *big.Int) *big.Int {
	return new(big.Int).Exp(data, r.e, r.n)
}

// DecryptBlock raises data to the d-th power mod n.
func (r *RSA) DecryptBlock(data *big.Int) *big.Int {
	return new(big.Int).Exp(data, r.d, r.n)
}

// Encrypt splits plaintext into blockBytes()-sized big-endian chunks
// (the last chunk may be shorter) and encrypts each independently.
// There is no padding scheme: a plaintext block that begins with one
// or more zero bytes loses them on decrypt, since a big-endian integer
// carries no record of leading zeros.
func (r *RSA) Encrypt(plaintext []byte) ([]*big.Int, error) {
	minLen := r.size >> 7
	if len(plaintext) <= minLen {
		return nil, NewRSAInputTooShortError(r.size, len(plaintext))
	}

	bb := r.blockBytes()
	out := make([]*big.Int, 0, (len(plaintext)+bb-1)/bb)

	for i := 0; i < len(plaintext); i += bb {
		end := i + bb
		if end > len(plaintext) {
			end = len(plaintext)
		}
		num := new(big.Int).SetBytes(plaintext[i:end])
		out = append(out, r.EncryptBlock(num))
	}

	return out, nil
}

// Decrypt decrypts each block and concatenates their big-endian byte
// representations.
func (r *RSA) Decrypt(blocks []*big.Int) []byte {
	var out []byte
	for _, b := range blocks {
		out = append(out, r.DecryptBlock(b).Bytes()...)
	}
	return out
}

// Fingerprint derives a deterministic UUIDv5 identifying this keypair
// from its public modulus, suitable for logging or key-rotation
// bookkeeping without exposing n itself.
func (r *RSA) Fingerprint() uuid.UUID {
	return uuid.NewSHA1(rsaFingerprintNamespace, r.n.Bytes())
}
