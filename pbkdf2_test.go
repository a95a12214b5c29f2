package cryptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPBKDF2OutputLength(t *testing.T) {
	salt := sequentialBytes(16)
	key := PBKDF2([]byte("hunter10"), salt, 1000, 256)
	assert.Len(t, key, 32)
}

func TestPBKDF2NonMultipleOf256Bits(t *testing.T) {
	salt := sequentialBytes(16)
	key := PBKDF2([]byte("hunter10"), salt, 1000, 100)
	assert.Len(t, key, 13)
}

func TestPBKDF2Deterministic(t *testing.T) {
	salt := sequentialBytes(16)
	a := PBKDF2([]byte("password"), salt, 1000, 256)
	b := PBKDF2([]byte("password"), salt, 1000, 256)
	assert.Equal(t, a, b)
}

func TestPBKDF2SensitiveToInputs(t *testing.T) {
	salt := sequentialBytes(16)
	base := PBKDF2([]byte("password"), salt, 1000, 256)

	diffPassword := PBKDF2([]byte("password!"), salt, 1000, 256)
	assert.NotEqual(t, base, diffPassword)

	otherSalt := sequentialBytes(16)
	otherSalt[0] ^= 1
	diffSalt := PBKDF2([]byte("password"), otherSalt, 1000, 256)
	assert.NotEqual(t, base, diffSalt)

	diffIter := PBKDF2([]byte("password"), salt, 1001, 256)
	assert.NotEqual(t, base, diffIter)
}

func TestPBKDF2FirstBlockMatchesSingleRound(t *testing.T) {
	password := []byte("password")
	salt := sequentialBytes(16)

	got := PBKDF2(password, salt, 1, 256)
	want := pbkdf2Round(password, salt, 1, 1)
	assert.Equal(t, want, got)
}

func TestPBKDF2MultiBlockConcatenatesRounds(t *testing.T) {
	password := []byte("password")
	salt := sequentialBytes(16)

	got := PBKDF2(password, salt, 5, 512)
	assert.Len(t, got, 64)

	block1 := pbkdf2Round(password, salt, 5, 1)
	block2 := pbkdf2Round(password, salt, 5, 2)
	assert.Equal(t, block1, got[:32])
	assert.Equal(t, block2, got[32:])
}
