package rfb

import (
	"crypto/des"
	"fmt"
)

// mirrorBits reverses the bit order of a single byte. RFC 6143 doesn't
// call this out clearly, but every conformant VNC server expects the
// DES key bytes bit-mirrored before use, a quirk inherited from the
// original DES-based VNC authentication scheme's byte-order handling.
func mirrorBits(b byte) byte {
	var out byte
	for i := 0; i < 8; i++ {
		out <<= 1
		out |= b & 1
		b >>= 1
	}
	return out
}

// DESKeyFromPassword derives the 8-byte DES key RFB's VNC auth uses
// from a password: the first 8 bytes of its UTF-8 encoding, NUL-padded
// to length 8, then bit-mirrored byte by byte.
func DESKeyFromPassword(password string) [8]byte {
	var key [8]byte
	copy(key[:], password)
	for i, b := range key {
		key[i] = mirrorBits(b)
	}
	return key
}

// EncryptChallenge encrypts a 16-byte VNC auth challenge as two
// independent 8-byte ECB blocks using the given password-derived DES
// key.
func EncryptChallenge(key [8]byte, challenge [16]byte) ([16]byte, error) {
	block, err := des.NewCipher(key[:])
	if err != nil {
		return [16]byte{}, fmt.Errorf("rfb: build DES cipher: %w", err)
	}
	var out [16]byte
	block.Encrypt(out[:8], challenge[:8])
	block.Encrypt(out[8:], challenge[8:])
	return out, nil
}
