package rfb

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// Message type bytes, client → server.
const (
	MsgSetPixelFormat           = 0
	MsgSetEncodings             = 2
	MsgFramebufferUpdateRequest = 3
	MsgKeyEvent                 = 4
	MsgPointerEvent             = 5
)

// Message type bytes, server → client.
const (
	MsgFramebufferUpdate = 0
	MsgServerCutText     = 2
)

// Encoding type values. Hextile, Tight, TRLE and friends are
// deliberately absent: this client only ever decodes these two, and
// advertises only zlib (every server supports Raw without it being
// listed).
const (
	EncodingRaw  = int32(0)
	EncodingZlib = int32(6)
)

// Security types, as sent during SECURITY_NEGOTIATION.
const (
	SecurityNone  = 1
	SecurityVNC   = 2
	SecurityApple = 33
)

// ProtocolVersionHeader is the literal 12-byte handshake line this
// client always sends, regardless of what the server advertised: it
// unconditionally declares 3.8.
var ProtocolVersionHeader = []byte("RFB 003.008\n")

// ProtocolVersionPrefix is the prefix every RFB ProtocolVersion message
// must start with; anything else means the peer isn't an RFB server.
var ProtocolVersionPrefix = []byte("RFB ")

// WriteClientInit writes the ClientInit message: one byte, the shared
// flag. This client always shares (other clients may remain connected).
func WriteClientInit(w io.Writer) error {
	_, err := w.Write([]byte{1})
	return err
}

// ServerInit holds the parsed ServerInit message.
type ServerInit struct {
	Width, Height uint16
	PixelFormat   PixelFormat
	Name          string
}

// ReadServerInit reads and parses a ServerInit message body (the server
// never re-sends this after the initial handshake).
func ReadServerInit(r io.Reader) (ServerInit, error) {
	buf, err := ReadExact(r, 2+2+16+4)
	if err != nil {
		return ServerInit{}, fmt.Errorf("rfb: read ServerInit header: %w", err)
	}
	width := uint16(buf[0])<<8 | uint16(buf[1])
	height := uint16(buf[2])<<8 | uint16(buf[3])
	pf := ParsePixelFormat(buf[4:20])
	nameLen := uint32(buf[20])<<24 | uint32(buf[21])<<16 | uint32(buf[22])<<8 | uint32(buf[23])
	name, err := ReadExact(r, int(nameLen))
	if err != nil {
		return ServerInit{}, fmt.Errorf("rfb: read ServerInit desktop name: %w", err)
	}
	return ServerInit{Width: width, Height: height, PixelFormat: pf, Name: string(name)}, nil
}

// WriteSetPixelFormat writes the SetPixelFormat message with the given
// 16-byte pixel format record.
func WriteSetPixelFormat(w io.Writer, format [16]byte) error {
	buf := make([]byte, 0, 20)
	buf = append(buf, MsgSetPixelFormat, 0, 0, 0)
	buf = append(buf, format[:]...)
	_, err := w.Write(buf)
	return err
}

// WriteSetEncodings writes the SetEncodings message advertising the
// given list of encoding type values, in order.
func WriteSetEncodings(w io.Writer, encodings []int32) error {
	buf := make([]byte, 0, 4+4*len(encodings))
	buf = append(buf, MsgSetEncodings, 0)
	buf = PutUint16(buf, uint16(len(encodings)))
	for _, enc := range encodings {
		buf = PutUint32(buf, uint32(enc))
	}
	_, err := w.Write(buf)
	return err
}

// WriteFramebufferUpdateRequest writes a FramebufferUpdateRequest for
// the given region. incremental is always false for this client: every
// Capture asks for a full repaint of its region rather than tracking
// server-side damage between requests.
func WriteFramebufferUpdateRequest(w io.Writer, x, y, width, height uint16) error {
	buf := make([]byte, 0, 10)
	buf = append(buf, MsgFramebufferUpdateRequest, 0)
	buf = PutUint16(buf, x)
	buf = PutUint16(buf, y)
	buf = PutUint16(buf, width)
	buf = PutUint16(buf, height)
	_, err := w.Write(buf)
	return err
}

// WriteKeyEvent writes a KeyEvent message.
func WriteKeyEvent(w io.Writer, down bool, keysym uint32) error {
	buf := make([]byte, 0, 8)
	buf = append(buf, MsgKeyEvent, boolByte(down), 0, 0)
	buf = PutUint32(buf, keysym)
	_, err := w.Write(buf)
	return err
}

// WritePointerEvent writes a PointerEvent message.
func WritePointerEvent(w io.Writer, buttons uint8, x, y uint16) error {
	buf := make([]byte, 0, 6)
	buf = append(buf, MsgPointerEvent, buttons)
	buf = PutUint16(buf, x)
	buf = PutUint16(buf, y)
	_, err := w.Write(buf)
	return err
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// RectHeader is the 12-byte header preceding every FramebufferUpdate
// rectangle's pixel payload.
type RectHeader struct {
	X, Y, Width, Height uint16
	Encoding            int32
}

// ReadRectHeader reads one rectangle header.
func ReadRectHeader(r io.Reader) (RectHeader, error) {
	buf, err := ReadExact(r, 12)
	if err != nil {
		return RectHeader{}, fmt.Errorf("rfb: read rectangle header: %w", err)
	}
	return RectHeader{
		X:        uint16(buf[0])<<8 | uint16(buf[1]),
		Y:        uint16(buf[2])<<8 | uint16(buf[3]),
		Width:    uint16(buf[4])<<8 | uint16(buf[5]),
		Height:   uint16(buf[6])<<8 | uint16(buf[7]),
		Encoding: int32(uint32(buf[8])<<24 | uint32(buf[9])<<16 | uint32(buf[10])<<8 | uint32(buf[11])),
	}, nil
}

// DecodeCutText converts RFB clipboard bytes (always ISO-8859-1 on the
// wire) to a UTF-8 string for diagnostic logging. This client never
// acts on clipboard contents — ServerCutText is always discarded — so
// decoding failures are reported but never fatal to the caller.
func DecodeCutText(latin1 []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(latin1)
	if err != nil {
		return "", fmt.Errorf("rfb: decode cut text: %w", err)
	}
	return string(out), nil
}
