package cryptor

// BlockCipherPrimitive is the contract AES and Twofish both satisfy:
// encrypt/decrypt exactly one block in place, plus the cipher's block
// size. Cipher builds CBC/ECB framing and padding on top of this.
type BlockCipherPrimitive interface {
	EncryptBlock(block []byte)
	DecryptBlock(block []byte)
	BlockSize() int
}

// Mode selects the block-cipher chaining mode.
type Mode int

const (
	CBC Mode = iota
	// ECB encrypts every block independently, so equal plaintext
	// blocks produce equal ciphertext blocks. Unsafe for general use;
	// provided for test compatibility only.
	ECB
)

func (m Mode) String() string {
	switch m {
	case CBC:
		return "CBC"
	case ECB:
		return "ECB"
	default:
		return "unknown mode"
	}
}

// Cipher wraps a block-cipher primitive with a chaining mode and
// padding, presenting one encrypt/decrypt facade regardless of which
// primitive or mode is underneath.
type Cipher struct {
	primitive BlockCipherPrimitive
	mode      Mode
}

// NewCipher builds a Cipher over the given primitive and mode.
func NewCipher(primitive BlockCipherPrimitive, mode Mode) *Cipher {
	return &Cipher{primitive: primitive, mode: mode}
}

// SetMode switches the cipher between CBC and ECB. The underlying key
// schedule is untouched; only mode dispatch changes.
func (c *Cipher) SetMode(mode Mode) { c.mode = mode }

// Mode reports the currently selected chaining mode.
func (c *Cipher) Mode() Mode { return c.mode }

// Zeroize clears the underlying primitive's key material when the
// primitive supports zeroization. The cipher is unusable afterwards.
func (c *Cipher) Zeroize() {
	if z, ok := c.primitive.(interface{ Zeroize() }); ok {
		z.Zeroize()
	}
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putLeUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// pad appends 0x80, zeros, and a 4-byte little-endian trailer giving
// the total pad length (including the 0x80 byte and the trailer
// itself), choosing the smallest pad length in [5, bs+4] that brings
// the total length to a multiple of bs.
func pad(data []byte, bs int) []byte {
	for padLen := 5; padLen <= bs+4; padLen++ {
		if (len(data)+padLen)%bs == 0 {
			out := make([]byte, len(data)+padLen)
			copy(out, data)
			out[len(data)] = 0x80
			putLeUint32(out[len(out)-4:], uint32(padLen))
			return out
		}
	}
	// Unreachable: padLen ranges over bs consecutive integers, so one
	// of them is always divisible by bs.
	panic("cryptor: no valid pad length found")
}

// stripPadding reads the 4-byte little-endian trailer and removes that
// many trailing bytes.
func stripPadding(data []byte, bs int) ([]byte, error) {
	if len(data) < 4 {
		return nil, NewPaddingError(0, len(data))
	}
	declared := int(leUint32(data[len(data)-4:]))
	if declared > len(data) || declared < 5 {
		return nil, NewPaddingError(declared, len(data))
	}
	return data[:len(data)-declared], nil
}

// Encrypt pads and encrypts the buffer in place under the configured
// mode, growing *buf by the padding amount.
func (c *Cipher) Encrypt(iv []byte, buf *[]byte) error {
	bs := c.primitive.BlockSize()

	if c.mode == CBC && len(iv) != bs {
		return NewBadIVError(bs, len(iv))
	}

	*buf = pad(*buf, bs)
	data := *buf

	switch c.mode {
	case CBC:
		prev := make([]byte, bs)
		copy(prev, iv)
		for i := 0; i < len(data); i += bs {
			block := data[i : i+bs]
			for j := 0; j < bs; j++ {
				block[j] ^= prev[j]
			}
			c.primitive.EncryptBlock(block)
			copy(prev, block)
		}
	case ECB:
		for i := 0; i < len(data); i += bs {
			c.primitive.EncryptBlock(data[i : i+bs])
		}
	}

	return nil
}

// Decrypt decrypts the buffer in place under the configured mode and
// strips padding, shrinking *buf by the declared pad amount. On a
// padding error the buffer is left in its decrypted, unstripped state.
func (c *Cipher) Decrypt(iv []byte, buf *[]byte) error {
	bs := c.primitive.BlockSize()

	data := *buf
	if len(data)%bs != 0 {
		return NewBadBlockLengthError(bs, len(data))
	}
	if c.mode == CBC && len(iv) != bs {
		return NewBadIVError(bs, len(iv))
	}

	switch c.mode {
	case CBC:
		prev := make([]byte, bs)
		copy(prev, iv)
		for i := 0; i < len(data); i += bs {
			block := data[i : i+bs]
			saved := make([]byte, bs)
			copy(saved, block)

			c.primitive.DecryptBlock(block)
			for j := 0; j < bs; j++ {
				block[j] ^= prev[j]
			}
			prev = saved
		}
	case ECB:
		for i := 0; i < len(data); i += bs {
			c.primitive.DecryptBlock(data[i : i+bs])
		}
	}

	stripped, err := stripPadding(data, bs)
	if err != nil {
		return err
	}
	*buf = stripped
	return nil
}
