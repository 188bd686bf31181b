package pyvnc

import (
	"fmt"

	"github.com/regulad/pyvnc/rfb"
)

// Capture requests the given region (the full framebuffer if region
// is nil) and returns its pixels once every cell has been written at
// least once. If relative is true, region is first converted from the
// resolution-independent coordinate space via the coordinate mapper.
func (s *Session) Capture(region Rectangler, relative bool) (*PixelBuffer, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rect := s.rect
	if region != nil {
		rect = resolveRect(region)
		if relative {
			rect = convertRelativeRect(rect, s.rect.Width, s.rect.Height)
		}
	}

	if err := rfb.WriteFramebufferUpdateRequest(s.conn,
		uint16(rect.X), uint16(rect.Y), uint16(rect.Width), uint16(rect.Height)); err != nil {
		s.poison()
		return nil, fmt.Errorf("pyvnc: write FramebufferUpdateRequest: %w", err)
	}

	buf := newPixelBuffer(s.rect.Width, s.rect.Height)

	for {
		msgType, err := rfb.ReadUint(s.r, 1)
		if err != nil {
			s.poison()
			return nil, fmt.Errorf("pyvnc: read message type: %w", err)
		}

		switch byte(msgType) {
		case rfb.MsgServerCutText:
			if err := s.drainCutText(); err != nil {
				s.poison()
				return nil, err
			}

		case rfb.MsgFramebufferUpdate:
			if err := s.readFramebufferUpdate(buf); err != nil {
				s.poison()
				return nil, err
			}
			if buf.allOpaque(rect) {
				return buf.Sub(rect), nil
			}

		default:
			s.poison()
			return nil, &UnknownMessageTypeError{Type: byte(msgType)}
		}
	}
}

// drainCutText reads and discards a ServerCutText message, decoding it
// only to hand off to the configured logger — this client never acts
// on clipboard contents, but the message still has to be consumed so
// the rectangle loop doesn't desynchronize.
func (s *Session) drainCutText() error {
	if _, err := rfb.ReadExact(s.r, 3); err != nil { // padding
		return fmt.Errorf("pyvnc: read ServerCutText padding: %w", err)
	}
	length, err := rfb.ReadUint(s.r, 4)
	if err != nil {
		return fmt.Errorf("pyvnc: read ServerCutText length: %w", err)
	}
	text, err := rfb.ReadExact(s.r, int(length))
	if err != nil {
		return fmt.Errorf("pyvnc: read ServerCutText body: %w", err)
	}
	if s.logger != nil {
		decoded, err := rfb.DecodeCutText(text)
		if err != nil {
			s.logf("pyvnc: discarding undecodable ServerCutText (%d bytes): %v", len(text), err)
		} else {
			s.logf("pyvnc: discarding ServerCutText: %q", truncate(decoded, 120))
		}
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// readFramebufferUpdate reads one FramebufferUpdate message's
// rectangles and writes them into buf.
func (s *Session) readFramebufferUpdate(buf *PixelBuffer) error {
	if _, err := rfb.ReadExact(s.r, 1); err != nil { // padding
		return fmt.Errorf("pyvnc: read FramebufferUpdate padding: %w", err)
	}
	count, err := rfb.ReadUint(s.r, 2)
	if err != nil {
		return fmt.Errorf("pyvnc: read rectangle count: %w", err)
	}

	for i := uint32(0); i < count; i++ {
		header, err := rfb.ReadRectHeader(s.r)
		if err != nil {
			return err
		}

		pixels, err := s.readRectPixels(header)
		if err != nil {
			return err
		}

		if err := buf.writeRect(int(header.X), int(header.Y), int(header.Width), int(header.Height),
			s.formatName, pixels); err != nil {
			return err
		}
	}
	return nil
}

// readRectPixels reads and, if necessary, decompresses one rectangle's
// pixel payload, returning width*height*4 raw bytes in the session's
// chosen pixel format.
func (s *Session) readRectPixels(header rfb.RectHeader) ([]byte, error) {
	n := int(header.Width) * int(header.Height) * 4
	switch header.Encoding {
	case rfb.EncodingRaw:
		return rfb.ReadExact(s.r, n)

	case rfb.EncodingZlib:
		length, err := rfb.ReadUint(s.r, 4)
		if err != nil {
			return nil, fmt.Errorf("pyvnc: read zlib rectangle length: %w", err)
		}
		compressed, err := rfb.ReadExact(s.r, int(length))
		if err != nil {
			return nil, fmt.Errorf("pyvnc: read zlib rectangle data: %w", err)
		}
		fresh := s.zlib.r == nil
		pixels, err := s.zlib.decompress(compressed, n)
		if fresh && s.zlib.r != nil {
			s.logf("pyvnc: initialized session zlib stream")
		}
		return pixels, err

	default:
		return nil, &UnsupportedEncodingError{Encoding: header.Encoding}
	}
}
