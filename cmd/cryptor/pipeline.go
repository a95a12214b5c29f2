package main

import (
	"fmt"
	"io"
	"os"

	"cryptor"
)

// pbkdf2Salt and cbcIV are the CLI's fixed, non-secret parameters:
// the salt counts down from 15 to 0, the IV counts up from 0 to 15.
// Neither is a secret; both must match between encrypt and decrypt
// for the pipeline to round-trip.
var (
	pbkdf2Salt = []byte{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	cbcIV      = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
)

const (
	pbkdf2Iterations = 10000
	pbkdf2DKLenBits  = 256
)

func readInput() ([]byte, error) {
	if inputPath == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(inputPath)
}

func writeOutput(data []byte) error {
	if outputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputPath, data, 0o600)
}

// deriveKey runs PBKDF2(password, salt=[15..0], iters=10000, dklen=256
// bits) to produce the 256-bit cipher key.
func deriveKey(password string) []byte {
	return cryptor.PBKDF2([]byte(password), pbkdf2Salt, pbkdf2Iterations, pbkdf2DKLenBits)
}

// buildCipher constructs the CBC-mode cipher facade for the named
// primitive over the derived key.
func buildCipher(name string, key []byte) (*cryptor.Cipher, error) {
	suite, err := cryptor.ParseCipherSuite(name)
	if err != nil {
		return nil, err
	}
	primitive, err := suite.NewPrimitive(key)
	if err != nil {
		return nil, err
	}
	return cryptor.NewCipher(primitive, cryptor.CBC), nil
}

// encryptPipeline runs the encrypt path: plaintext ->
// PBKDF2 key -> CBC-encrypt -> Hamming-encode.
func encryptPipeline(id string, plaintext []byte) ([]byte, error) {
	logStage(id, "deriving key", "iterations", pbkdf2Iterations)
	key := deriveKey(password)

	c, err := buildCipher(cipherName, key)
	if err != nil {
		return nil, err
	}
	defer c.Zeroize()

	logStage(id, "encrypting", "cipher", cipherName, "bytes", len(plaintext))
	if err := c.Encrypt(cbcIV, &plaintext); err != nil {
		return nil, fmt.Errorf("cryptor: encrypt: %w", err)
	}

	logStage(id, "hamming-encoding", "bytes", len(plaintext))
	return cryptor.HammingEncode(plaintext), nil
}

// decryptPipeline runs the decrypt path: Hamming-decode -> truncate
// to a block-size multiple -> CBC-decrypt. The Hamming decoder may
// emit trailing zero-bit padding that isn't a multiple of the block
// size; it must be truncated away before decrypting.
func decryptPipeline(id string, framed []byte) ([]byte, error) {
	logStage(id, "hamming-decoding", "bytes", len(framed))
	decoder := cryptor.NewHammingDecoder(cryptor.StrictTwoBitPolicy)
	decoded, err := decoder.Decode(framed)
	if err != nil {
		return nil, fmt.Errorf("cryptor: hamming decode: %w", err)
	}

	key := deriveKey(password)
	c, err := buildCipher(cipherName, key)
	if err != nil {
		return nil, err
	}
	defer c.Zeroize()

	bs := 16
	decoded = decoded[:len(decoded)-(len(decoded)%bs)]

	logStage(id, "decrypting", "cipher", cipherName, "bytes", len(decoded))
	if err := c.Decrypt(cbcIV, &decoded); err != nil {
		return nil, fmt.Errorf("cryptor: decrypt: %w", err)
	}
	return decoded, nil
}
