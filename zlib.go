package pyvnc

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// zlibStream is the session's persistent zlib decoder. RFB's zlib
// encoding uses one continuous zlib stream for the entire connection:
// the 2-byte zlib header only appears once, at the very first
// compressed rectangle, so the zlib.Reader must be created lazily and
// then reused verbatim for every later rectangle and every later
// Capture call. Resetting it between updates corrupts decoding.
//
// The pattern — feed compressed bytes into a growing buffer, wrap a
// single zlib.Reader around that buffer, and read decompressed output
// from it on demand — is the standard way to frame a VNC zlib stream
// over Go's compress/zlib.
type zlibStream struct {
	buf bytes.Buffer
	r   io.ReadCloser
}

// decompress appends compressed to the stream's input buffer and
// returns exactly n bytes of decompressed output.
func (z *zlibStream) decompress(compressed []byte, n int) ([]byte, error) {
	z.buf.Write(compressed)
	if z.r == nil {
		r, err := zlib.NewReader(&z.buf)
		if err != nil {
			return nil, fmt.Errorf("pyvnc: open zlib stream: %w", err)
		}
		z.r = r
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(z.r, out); err != nil {
		return nil, fmt.Errorf("pyvnc: read zlib stream: %w", err)
	}
	return out, nil
}
