package cryptor

import "fmt"

// CipherSuite selects which block-cipher primitive backs a Cipher.
type CipherSuite uint8

const (
	CipherAES CipherSuite = iota
	CipherTwofish
)

// String returns the lowercase name used on the command line.
func (c CipherSuite) String() string {
	switch c {
	case CipherAES:
		return "aes"
	case CipherTwofish:
		return "twofish"
	default:
		return "unknown"
	}
}

// NewPrimitive constructs the block-cipher primitive for this suite
// from key, which must be a size the chosen primitive accepts (16,
// 24, or 32 bytes for both AES and Twofish).
func (c CipherSuite) NewPrimitive(key []byte) (BlockCipherPrimitive, error) {
	switch c {
	case CipherAES:
		return NewAES(key)
	case CipherTwofish:
		return NewTwofish(key)
	default:
		return nil, NewValidationError("cipher", c, "unsupported cipher suite")
	}
}

// ParseCipherSuite maps a command-line cipher name to a CipherSuite.
func ParseCipherSuite(name string) (CipherSuite, error) {
	switch name {
	case "aes":
		return CipherAES, nil
	case "twofish":
		return CipherTwofish, nil
	default:
		return 0, NewValidationError("cipher", name, "must be one of: aes, twofish")
	}
}

// PBKDF2Config holds the password-based key derivation parameters used
// to turn a password into a cipher key.
type PBKDF2Config struct {
	Iterations int
	DKLenBits  int
	Salt       []byte
}

// Validate checks that the configuration can produce a usable key.
func (c PBKDF2Config) Validate() error {
	if c.Iterations < 1 {
		return NewValidationError("iterations", c.Iterations, "must be at least 1")
	}
	if c.DKLenBits < 8 {
		return NewValidationError("dklenBits", c.DKLenBits, "must be at least 8")
	}
	if len(c.Salt) == 0 {
		return NewValidationError("salt", len(c.Salt), "must not be empty")
	}
	return nil
}

// DeriveKey runs PBKDF2 over password under this configuration.
func (c PBKDF2Config) DeriveKey(password []byte) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return PBKDF2(password, c.Salt, c.Iterations, c.DKLenBits), nil
}

// RSAKeyConfig describes an RSA modulus size and checks it against a
// minimum. NewRSAKeyPair does not consult it.
type RSAKeyConfig struct {
	SizeBits int
}

// Validate rejects modulus sizes too small to carry the s1 = size/2+3
// bias NewRSAKeyPair relies on to split size between its two primes.
func (c RSAKeyConfig) Validate() error {
	if c.SizeBits < 16 {
		return NewValidationError("sizeBits", c.SizeBits, "must be at least 16")
	}
	return nil
}

// String reports the configuration for logging.
func (c RSAKeyConfig) String() string {
	return fmt.Sprintf("RSA-%d", c.SizeBits)
}
