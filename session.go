package pyvnc

import (
	"bufio"
	"context"
	"fmt"
	"net"
)

// Session is a live, authenticated connection to an RFB server. It is
// not safe for concurrent use: exactly one goroutine may read and
// write the underlying stream at any instant.
type Session struct {
	conn   net.Conn
	r      *bufio.Reader
	logger interface {
		Printf(format string, v ...interface{})
	}

	rect       Rect // framebuffer origin (always 0,0) and dimensions
	format     [16]byte
	formatName string

	pointer Point
	buttons uint8

	zlib *zlibStream

	closed bool
}

// Connect dials host:port, runs the RFB 3.8 handshake and session
// initialization, and returns a ready-to-use Session. ctx only bounds
// the initial dial; it has no effect once Connect returns.
func Connect(ctx context.Context, config SessionConfig) (*Session, error) {
	config = config.withDefaults()

	format, err := config.pixelFormatBytes()
	if err != nil {
		return nil, err
	}

	dialer := net.Dialer{Timeout: config.Timeout}
	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("pyvnc: dial %s: %w", addr, err)
	}

	s := &Session{
		conn:       conn,
		r:          bufio.NewReader(conn),
		format:     format,
		formatName: config.PixelFormat,
		zlib:       &zlibStream{},
	}
	if config.Logger != nil {
		s.logger = config.Logger
	}

	if err := s.handshake(config); err != nil {
		conn.Close()
		return nil, err
	}
	if err := s.initSession(config, format); err != nil {
		conn.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the underlying connection. After Close, every public
// method that talks to the server returns ErrSessionClosed; calling
// Close again is a no-op that returns nil.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}

// poison marks the session unusable after an error that may have left
// the wire desynchronized, and closes the connection. A Session that
// fails partway through a multi-message exchange can't be trusted to
// resume cleanly, so any further use returns ErrSessionClosed.
func (s *Session) poison() {
	if s.closed {
		return
	}
	s.closed = true
	s.conn.Close()
}

func (s *Session) checkOpen() error {
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}

func (s *Session) write(buf []byte) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if _, err := s.conn.Write(buf); err != nil {
		s.poison()
		return fmt.Errorf("pyvnc: write: %w", err)
	}
	return nil
}

func (s *Session) logf(format string, v ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, v...)
	}
}

// FramebufferRect returns the server's full framebuffer region, as
// reported by ServerInit.
func (s *Session) FramebufferRect() Rect {
	return s.rect
}

// RelativeResolution returns the resolution-independent coordinate
// space's dimensions for this session's framebuffer. Both components
// are positive multiples of 100, at most 99900, making it easy to do
// mental-math automation ("click at 50% across, 25% down") without
// knowing the server's actual pixel resolution.
func (s *Session) RelativeResolution() Point {
	return relativeResolution(s.rect.Width, s.rect.Height)
}
