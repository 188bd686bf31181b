package pyvnc

import (
	"bytes"
	"fmt"

	"github.com/regulad/pyvnc/rfb"
)

// handshake runs version exchange, security negotiation, the chosen
// auth scheme, and the security result check, in that order. It
// assumes s.conn and s.r are already set up and closes nothing on
// error — the caller (Connect) is responsible for tearing the
// connection down.
func (s *Session) handshake(config SessionConfig) error {
	if err := s.versionExchange(); err != nil {
		return err
	}
	securityType, err := s.negotiateSecurity()
	if err != nil {
		return err
	}
	switch securityType {
	case rfb.SecurityVNC:
		if err := s.vncAuth(config.Password); err != nil {
			return err
		}
	case rfb.SecurityNone:
		// No client bytes in this phase under 3.8.
	}
	return s.securityResult()
}

func (s *Session) versionExchange() error {
	buf, err := rfb.ReadExact(s.r, 12)
	if err != nil {
		return fmt.Errorf("pyvnc: read ProtocolVersion: %w", err)
	}
	if !bytes.Equal(buf[:4], rfb.ProtocolVersionPrefix) {
		return ErrNotRFBServer
	}
	if _, err := s.conn.Write(rfb.ProtocolVersionHeader); err != nil {
		return fmt.Errorf("pyvnc: write ProtocolVersion: %w", err)
	}
	return nil
}

func (s *Session) negotiateSecurity() (byte, error) {
	count, err := rfb.ReadUint(s.r, 1)
	if err != nil {
		return 0, fmt.Errorf("pyvnc: read security type count: %w", err)
	}
	if count == 0 {
		length, err := rfb.ReadUint(s.r, 4)
		if err != nil {
			return 0, fmt.Errorf("pyvnc: read rejection length: %w", err)
		}
		reason, err := rfb.ReadExact(s.r, int(length))
		if err != nil {
			return 0, fmt.Errorf("pyvnc: read rejection reason: %w", err)
		}
		return 0, &HandshakeRejectedError{Reason: string(reason)}
	}

	types, err := rfb.ReadExact(s.r, int(count))
	if err != nil {
		return 0, fmt.Errorf("pyvnc: read security types: %w", err)
	}

	var chosen byte
	switch {
	case bytes.IndexByte(types, rfb.SecurityVNC) >= 0:
		chosen = rfb.SecurityVNC
	case bytes.IndexByte(types, rfb.SecurityNone) >= 0:
		chosen = rfb.SecurityNone
	default:
		return 0, &UnsupportedAuthError{Types: types}
	}

	if _, err := s.conn.Write([]byte{chosen}); err != nil {
		return 0, fmt.Errorf("pyvnc: write chosen security type: %w", err)
	}
	return chosen, nil
}

func (s *Session) vncAuth(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	challengeBuf, err := rfb.ReadExact(s.r, 16)
	if err != nil {
		return fmt.Errorf("pyvnc: read VNC auth challenge: %w", err)
	}
	var challenge [16]byte
	copy(challenge[:], challengeBuf)

	key := rfb.DESKeyFromPassword(password)
	response, err := rfb.EncryptChallenge(key, challenge)
	if err != nil {
		return err
	}
	if _, err := s.conn.Write(response[:]); err != nil {
		return fmt.Errorf("pyvnc: write VNC auth response: %w", err)
	}
	return nil
}

func (s *Session) securityResult() error {
	status, err := rfb.ReadUint(s.r, 4)
	if err != nil {
		return fmt.Errorf("pyvnc: read SecurityResult: %w", err)
	}
	switch status {
	case 0:
		return nil
	case 1:
		return ErrAuthFailed
	case 2:
		return ErrAuthFailedTooManyAttempts
	default:
		length, err := rfb.ReadUint(s.r, 4)
		if err != nil {
			return fmt.Errorf("pyvnc: read SecurityResult reason length: %w", err)
		}
		reason, err := rfb.ReadExact(s.r, int(length))
		if err != nil {
			return fmt.Errorf("pyvnc: read SecurityResult reason: %w", err)
		}
		return &AuthFailedReasonError{Reason: string(reason)}
	}
}
