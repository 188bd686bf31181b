package rfb

import (
	"fmt"
	"io"
)

// ReadExact reads exactly n bytes from r, wrapping any short read or
// closed-stream error so callers can recognize it as a transport
// failure rather than a malformed message.
func ReadExact(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("rfb: read %d bytes: %w", n, err)
	}
	return buf, nil
}

// ReadUint reads n bytes (n must be 1, 2, or 4) from r and decodes them
// as a big-endian unsigned integer.
func ReadUint(r io.Reader, n int) (uint32, error) {
	buf, err := ReadExact(r, n)
	if err != nil {
		return 0, err
	}
	var v uint32
	for _, b := range buf {
		v = v<<8 | uint32(b)
	}
	return v, nil
}

// PutUint16 appends the big-endian encoding of v to buf.
func PutUint16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

// PutUint32 appends the big-endian encoding of v to buf.
func PutUint32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
