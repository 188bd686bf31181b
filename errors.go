package pyvnc

import (
	"errors"
	"fmt"
)

// Sentinel errors, usable with errors.Is, for failure modes that don't
// need to carry extra detail.
var (
	// ErrNotRFBServer is returned when the peer's handshake prefix
	// doesn't start with "RFB ".
	ErrNotRFBServer = errors.New("pyvnc: not an RFB server")

	// ErrAuthFailed is returned when the server's SecurityResult
	// reports status 1 (authentication failed, no reason given).
	ErrAuthFailed = errors.New("pyvnc: VNC authentication failed")

	// ErrAuthFailedTooManyAttempts is returned for SecurityResult
	// status 2.
	ErrAuthFailedTooManyAttempts = errors.New("pyvnc: VNC authentication failed (too many attempts)")

	// ErrPasswordRequired is returned when the server selected VNC
	// authentication but SessionConfig.Password was empty.
	ErrPasswordRequired = errors.New("pyvnc: server requires a password")

	// ErrSessionClosed is returned by the public Session methods that
	// talk to the server (all but Close itself) once Close has been called (or the Session has poisoned itself after
	// a failed operation).
	ErrSessionClosed = errors.New("pyvnc: session is closed")
)

// HandshakeRejectedError is returned when the server offers zero
// security types along with a reason string.
type HandshakeRejectedError struct {
	Reason string
}

func (e *HandshakeRejectedError) Error() string {
	return "pyvnc: handshake rejected: " + e.Reason
}

// UnsupportedAuthError is returned when none of the server's offered
// security types overlap with what this client supports.
type UnsupportedAuthError struct {
	Types []byte
}

func (e *UnsupportedAuthError) Error() string {
	for _, t := range e.Types {
		if t == 33 {
			return "pyvnc: Apple Remote Desktop authentication is not supported"
		}
	}
	return "pyvnc: unsupported authentication types offered by server"
}

// AuthFailedReasonError is returned for a SecurityResult status outside
// {0, 1, 2}, which carries a length-prefixed reason string.
type AuthFailedReasonError struct {
	Reason string
}

func (e *AuthFailedReasonError) Error() string {
	return "pyvnc: VNC authentication failed: " + e.Reason
}

// UnsupportedEncodingError is returned when a rectangle header
// advertises an encoding this client doesn't implement.
type UnsupportedEncodingError struct {
	Encoding int32
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("pyvnc: unsupported encoding type %d", e.Encoding)
}

// UnknownMessageTypeError is returned when a server→client message
// arrives with a type byte this client doesn't recognize.
type UnknownMessageTypeError struct {
	Type byte
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("pyvnc: unknown server message type %d", e.Type)
}

// UnknownKeyError is returned when a symbolic key name doesn't resolve
// through the keysym table.
type UnknownKeyError struct {
	Name string
}

func (e *UnknownKeyError) Error() string {
	return "pyvnc: unknown key name " + e.Name
}
