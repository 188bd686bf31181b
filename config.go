package pyvnc

import (
	"log"
	"time"

	"github.com/regulad/pyvnc/rfb"
)

// SessionConfig configures a Connect call. The zero value is usable
// directly: Connect fills in the documented default for any zero
// field.
type SessionConfig struct {
	// Host to dial. Defaults to "localhost".
	Host string
	// Port to dial. Defaults to 5900.
	Port int
	// Timeout bounds only the initial TCP connect; it has no effect on
	// steady-state reads. Defaults to 5 seconds.
	Timeout time.Duration
	// PixelFormat selects one of "rgba", "bgra", "argb", "abgr".
	// Defaults to "rgba".
	PixelFormat string
	// Password is required iff the server selects VNC authentication.
	Password string

	// Logger, if non-nil, receives one line per discarded
	// ServerCutText message and one line when the session's zlib
	// decoder is initialized. Nil means silent — this package
	// never logs protocol traffic unless asked to.
	Logger *log.Logger
}

func (c SessionConfig) withDefaults() SessionConfig {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5900
	}
	if c.Timeout == 0 {
		c.Timeout = 5 * time.Second
	}
	if c.PixelFormat == "" {
		c.PixelFormat = "rgba"
	}
	return c
}

func (c SessionConfig) pixelFormatBytes() ([16]byte, error) {
	return rfb.FormatBytes(c.PixelFormat)
}
