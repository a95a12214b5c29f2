package cryptor

import "strconv"

// PBKDF2 derives a key from a password and salt per RFC 8018 §5.2,
// using HMAC-SHA-512 as the underlying PRF with a fixed 32-byte tag
// per round. dklen is interpreted in bits; output is truncated to
// ceil(dklen/8) bytes, matching this design's test vectors.
//
// Each output block's first PRF call folds in the block index as a
// decimal ASCII string appended to the salt (salt || "1", salt ||
// "2", ...), 1-based. This mirrors the hash-based construction of the
// index suffix but corrects two divergences a naive port of that
// construction would carry over: the index is 1-based here (RFC
// 8018's U_1 uses INT(i) with i starting at 1, not 0), and every
// block folds in all of U_1 through U_c, not just U_2 onward.
func PBKDF2(password, salt []byte, iterations, dklenBits int) []byte {
	blocks := dklenBits / 256
	if dklenBits%256 != 0 {
		blocks++
	}

	outLen := (dklenBits + 7) / 8
	res := make([]byte, 0, blocks*32)

	for i := 1; i <= blocks; i++ {
		res = append(res, pbkdf2Round(password, salt, iterations, i)...)
	}

	if len(res) > outLen {
		res = res[:outLen]
	}
	return res
}

// pbkdf2Round computes one 32-byte output block T_i = U_1 ^ U_2 ^ ...
// ^ U_count for the given 1-based block index.
func pbkdf2Round(password, salt []byte, count, blockIndex int) []byte {
	hm := NewHMAC(SHA512)

	k := make([]byte, 0, len(salt)+8)
	k = append(k, salt...)
	k = append(k, []byte(strconv.Itoa(blockIndex))...)

	u, _ := hm.Tag(password, k, 32)

	result := make([]byte, 32)
	copy(result, u)

	prev := u
	for i := 1; i < count; i++ {
		next, _ := hm.Tag(password, prev, 32)
		for j := range result {
			result[j] ^= next[j]
		}
		prev = next
	}

	return result
}
