// Package rfb implements the wire-level message types of the RFB
// (Remote Framebuffer) protocol, version 3.8, as used by VNC. Types in
// this package know how to read and write their own bytes on a
// connection; they hold no session state (no socket, no decoder, no
// cursor position) — that belongs to the caller.
package rfb

import "fmt"

// PixelFormat is the 16-byte wire record RFB uses to describe how a
// pixel's bytes map to red/green/blue channels. This client only ever
// sends one of the four 32-bpp true-colour variants in Formats; the
// server's own PixelFormat (received in ServerInit) is parsed but never
// driven by, since SetPixelFormat always overrides it.
type PixelFormat struct {
	BitsPerPixel uint8
	Depth        uint8
	BigEndian    bool
	TrueColor    bool

	RedMax     uint16
	GreenMax   uint16
	BlueMax    uint16
	RedShift   uint8
	GreenShift uint8
	BlueShift  uint8
}

// Formats holds the four canonical 32-bpp pixel formats this client
// supports, keyed by the logical channel-order name a caller picks in
// SessionConfig. The byte layouts are fixed wire constants, not derived
// from the struct fields above, so they are stored and written as
// literal byte arrays rather than built field-by-field.
var Formats = map[string][16]byte{
	"bgra": {0x20, 0x18, 0x00, 0x01, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x10, 0x08, 0x00, 0x00, 0x00, 0x00},
	"rgba": {0x20, 0x18, 0x00, 0x01, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0x08, 0x10, 0x00, 0x00, 0x00},
	"argb": {0x20, 0x18, 0x01, 0x01, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x10, 0x08, 0x00, 0x00, 0x00, 0x00},
	"abgr": {0x20, 0x18, 0x01, 0x01, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0x08, 0x10, 0x00, 0x00, 0x00},
}

// FormatBytes returns the 16-byte wire record for a logical pixel
// format name, or an error if the name isn't one of the four this
// client supports.
func FormatBytes(name string) ([16]byte, error) {
	buf, ok := Formats[name]
	if !ok {
		return [16]byte{}, fmt.Errorf("rfb: unsupported pixel format %q", name)
	}
	return buf, nil
}

// ParsePixelFormat decodes a 16-byte wire record into a PixelFormat.
// buf must contain at least 16 bytes.
func ParsePixelFormat(buf []byte) PixelFormat {
	return PixelFormat{
		BitsPerPixel: buf[0],
		Depth:        buf[1],
		BigEndian:    buf[2] != 0,
		TrueColor:    buf[3] != 0,
		RedMax:       uint16(buf[4])<<8 | uint16(buf[5]),
		GreenMax:     uint16(buf[6])<<8 | uint16(buf[7]),
		BlueMax:      uint16(buf[8])<<8 | uint16(buf[9]),
		RedShift:     buf[10],
		GreenShift:   buf[11],
		BlueShift:    buf[12],
	}
}
