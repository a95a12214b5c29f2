package cryptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCipherSuite(t *testing.T) {
	suite, err := ParseCipherSuite("aes")
	require.NoError(t, err)
	assert.Equal(t, CipherAES, suite)

	suite, err = ParseCipherSuite("twofish")
	require.NoError(t, err)
	assert.Equal(t, CipherTwofish, suite)

	_, err = ParseCipherSuite("blowfish")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCipherSuiteString(t *testing.T) {
	assert.Equal(t, "aes", CipherAES.String())
	assert.Equal(t, "twofish", CipherTwofish.String())
}

func TestCipherSuiteNewPrimitive(t *testing.T) {
	key := sequentialBytes(16)

	aesPrim, err := CipherAES.NewPrimitive(key)
	require.NoError(t, err)
	assert.Equal(t, 16, aesPrim.BlockSize())

	tfPrim, err := CipherTwofish.NewPrimitive(key)
	require.NoError(t, err)
	assert.Equal(t, 16, tfPrim.BlockSize())
}

func TestPBKDF2ConfigValidate(t *testing.T) {
	valid := PBKDF2Config{Iterations: 1000, DKLenBits: 256, Salt: sequentialBytes(16)}
	assert.NoError(t, valid.Validate())

	cases := []PBKDF2Config{
		{Iterations: 0, DKLenBits: 256, Salt: sequentialBytes(16)},
		{Iterations: 1000, DKLenBits: 0, Salt: sequentialBytes(16)},
		{Iterations: 1000, DKLenBits: 256, Salt: nil},
	}
	for i, c := range cases {
		err := c.Validate()
		if assert.Errorf(t, err, "case %d", i) {
			assert.Truef(t, IsValidationError(err), "case %d", i)
		}
	}
}

func TestPBKDF2ConfigDeriveKey(t *testing.T) {
	cfg := PBKDF2Config{Iterations: 100, DKLenBits: 256, Salt: sequentialBytes(16)}
	key, err := cfg.DeriveKey([]byte("password"))
	require.NoError(t, err)
	assert.Len(t, key, 32)

	want := PBKDF2([]byte("password"), cfg.Salt, cfg.Iterations, cfg.DKLenBits)
	assert.Equal(t, want, key)
}

func TestPBKDF2ConfigDeriveKeyPropagatesValidationError(t *testing.T) {
	cfg := PBKDF2Config{Iterations: 0, DKLenBits: 256, Salt: sequentialBytes(16)}
	_, err := cfg.DeriveKey([]byte("password"))
	assert.True(t, IsValidationError(err))
}

func TestRSAKeyConfigValidate(t *testing.T) {
	assert.NoError(t, (RSAKeyConfig{SizeBits: 128}).Validate())

	err := (RSAKeyConfig{SizeBits: 8}).Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestRSAKeyConfigString(t *testing.T) {
	assert.Equal(t, "RSA-256", (RSAKeyConfig{SizeBits: 256}).String())
}
