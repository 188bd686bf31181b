package pyvnc

import (
	"fmt"

	"github.com/regulad/pyvnc/rfb"
)

// initSession runs ClientInit/ServerInit/SetPixelFormat/SetEncodings.
// By the time it returns, s.rect holds the server's framebuffer
// dimensions and the client has committed to format.
func (s *Session) initSession(config SessionConfig, format [16]byte) error {
	if err := rfb.WriteClientInit(s.conn); err != nil {
		return fmt.Errorf("pyvnc: write ClientInit: %w", err)
	}

	init, err := rfb.ReadServerInit(s.r)
	if err != nil {
		return fmt.Errorf("pyvnc: read ServerInit: %w", err)
	}
	s.rect = Rect{X: 0, Y: 0, Width: int(init.Width), Height: int(init.Height)}

	if err := rfb.WriteSetPixelFormat(s.conn, format); err != nil {
		return fmt.Errorf("pyvnc: write SetPixelFormat: %w", err)
	}
	if err := rfb.WriteSetEncodings(s.conn, []int32{rfb.EncodingZlib}); err != nil {
		return fmt.Errorf("pyvnc: write SetEncodings: %w", err)
	}
	return nil
}
