package pyvnc

import (
	"fmt"

	"github.com/regulad/pyvnc/keysym"
	"github.com/regulad/pyvnc/rfb"
)

// Mouse button bit positions, matching PointerEvent's button-mask byte.
const (
	MouseButtonLeft       = 0
	MouseButtonMiddle     = 1
	MouseButtonRight      = 2
	MouseButtonScrollUp   = 3
	MouseButtonScrollDown = 4
)

// HoldKey presses every key in keys, in order, then returns a release
// function that releases them in reverse order. The release function
// is idempotent-safe to call from a defer so a held key is never left
// down if the caller's work panics or returns early:
//
//	release, err := sess.HoldKey("Control_L", "c")
//	if err != nil { return err }
//	defer release()
func (s *Session) HoldKey(keys ...string) (release func(), err error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	codes := make([]uint32, len(keys))
	for i, name := range keys {
		code, ok := keysym.Lookup(name)
		if !ok {
			return nil, &UnknownKeyError{Name: name}
		}
		codes[i] = code
	}

	pressed := 0
	for _, code := range codes {
		if err := s.writeKeyEvent(true, code); err != nil {
			s.releaseKeys(codes[:pressed])
			return nil, err
		}
		pressed++
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		s.releaseKeys(codes)
	}, nil
}

// releaseKeys sends KeyEvent(down=false) for each code in reverse
// order, best-effort: a failure partway through still attempts the
// remaining releases before poisoning the session, since leaving a key
// physically held down on the remote side is worse than a noisy error.
func (s *Session) releaseKeys(codes []uint32) {
	if err := s.checkOpen(); err != nil {
		s.logf("pyvnc: error releasing held key(s): %v", err)
		return
	}
	var firstErr error
	for i := len(codes) - 1; i >= 0; i-- {
		if err := rfb.WriteKeyEvent(s.conn, false, codes[i]); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("pyvnc: write KeyEvent: %w", err)
		}
	}
	if firstErr != nil {
		s.poison()
		s.logf("pyvnc: error releasing held key(s): %v", firstErr)
	}
}

func (s *Session) writeKeyEvent(down bool, keysym uint32) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := rfb.WriteKeyEvent(s.conn, down, keysym); err != nil {
		s.poison()
		return fmt.Errorf("pyvnc: write KeyEvent: %w", err)
	}
	return nil
}

// Press holds and releases every key in keys together, in one group —
// all pressed in order, then all released in reverse order. Useful for
// chords like Press("Control_L", "c").
func (s *Session) Press(keys ...string) error {
	release, err := s.HoldKey(keys...)
	if err != nil {
		return err
	}
	release()
	return nil
}

// Write presses and releases each rune of text in turn, one key at a
// time, resolving each through the single-character keysym lookup.
func (s *Session) Write(text string) error {
	for _, r := range text {
		if err := s.Press(string(r)); err != nil {
			return err
		}
	}
	return nil
}

// HoldMouse presses the given mouse button and returns a release
// function that lifts it. Move the pointer while holding it down to
// perform a drag:
//
//	release, err := sess.HoldMouse(pyvnc.MouseButtonLeft)
//	if err != nil { return err }
//	defer release()
//	sess.Move(target, false)
func (s *Session) HoldMouse(button int) (release func(), err error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	mask := uint8(1) << uint(button)
	s.buttons |= mask
	if err := s.writePointerEvent(); err != nil {
		s.buttons &^= mask
		return nil, err
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		s.buttons &^= mask
		if err := s.writePointerEvent(); err != nil {
			s.logf("pyvnc: error releasing mouse button: %v", err)
		}
	}, nil
}

func (s *Session) writePointerEvent() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := rfb.WritePointerEvent(s.conn, s.buttons, uint16(s.pointer.X), uint16(s.pointer.Y)); err != nil {
		s.poison()
		return fmt.Errorf("pyvnc: write PointerEvent: %w", err)
	}
	return nil
}

// Move repositions the pointer to point without changing button state.
// If relative is true, point is first converted from the
// resolution-independent coordinate space.
func (s *Session) Move(point Pointer, relative bool) error {
	p := resolvePoint(point)
	if relative {
		p = convertRelativePoint(p, s.rect.Width, s.rect.Height)
	}
	s.pointer = p
	return s.writePointerEvent()
}

// Click presses and releases button at the pointer's current position.
func (s *Session) Click(button int) error {
	release, err := s.HoldMouse(button)
	if err != nil {
		return err
	}
	release()
	return nil
}

// DoubleClick clicks button twice in succession at the current
// position.
func (s *Session) DoubleClick(button int) error {
	if err := s.Click(button); err != nil {
		return err
	}
	return s.Click(button)
}

// ClickAt moves to point, then clicks button.
func (s *Session) ClickAt(point Pointer, button int, relative bool) error {
	if err := s.Move(point, relative); err != nil {
		return err
	}
	return s.Click(button)
}

// DoubleClickAt moves to point, then double-clicks button.
func (s *Session) DoubleClickAt(point Pointer, button int, relative bool) error {
	if err := s.Move(point, relative); err != nil {
		return err
	}
	return s.DoubleClick(button)
}

// ScrollUp clicks the scroll-up wheel button repeat times.
func (s *Session) ScrollUp(repeat int) error {
	for i := 0; i < repeat; i++ {
		if err := s.Click(MouseButtonScrollUp); err != nil {
			return err
		}
	}
	return nil
}

// ScrollDown clicks the scroll-down wheel button repeat times.
func (s *Session) ScrollDown(repeat int) error {
	for i := 0; i < repeat; i++ {
		if err := s.Click(MouseButtonScrollDown); err != nil {
			return err
		}
	}
	return nil
}
