package pyvnc

import (
	"errors"
	"net"
	"testing"
	"time"
)

// collectKeyEvents reads n KeyEvent messages (8 bytes each) and returns
// their (down, keysym) pairs in wire order.
func collectKeyEvents(t *testing.T, conn net.Conn, n int) []struct {
	down   bool
	keysym uint32
} {
	t.Helper()
	out := make([]struct {
		down   bool
		keysym uint32
	}, n)
	for i := 0; i < n; i++ {
		buf := readExactlyT(t, conn, 8)
		out[i].down = buf[1] != 0
		out[i].keysym = uint32(buf[4])<<24 | uint32(buf[5])<<16 | uint32(buf[6])<<8 | uint32(buf[7])
	}
	return out
}

func TestHoldKeyReleasesInReverseOrder(t *testing.T) {
	done := make(chan struct{})
	addr := startFakeServer(t, func(conn net.Conn) {
		serveVersionAndSecurity(t, conn, 1)
		conn.Write([]byte{0, 0, 0, 0})
		serveSessionInit(t, conn, 4, 4)

		events := collectKeyEvents(t, conn, 4)
		wantKeysym := []uint32{0xffe3, 'a', 'a', 0xffe3} // Control_L down, a down, a up, Control_L up
		wantDown := []bool{true, true, false, false}
		for i, ev := range events {
			if ev.down != wantDown[i] || ev.keysym != wantKeysym[i] {
				t.Errorf("event %d: got (down=%v, keysym=%#x), want (down=%v, keysym=%#x)",
					i, ev.down, ev.keysym, wantDown[i], wantKeysym[i])
			}
		}
		close(done)
	})

	sess, err := dialTestSession(t, addr, "")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer sess.Close()

	release, err := sess.HoldKey("Control_L", "a")
	if err != nil {
		t.Fatalf("HoldKey: %v", err)
	}
	release()
	release() // must be safe to call twice
	<-done
}

func TestHoldMouseSymmetry(t *testing.T) {
	var gotMasks []uint8
	done := make(chan struct{})
	addr := startFakeServer(t, func(conn net.Conn) {
		serveVersionAndSecurity(t, conn, 1)
		conn.Write([]byte{0, 0, 0, 0})
		serveSessionInit(t, conn, 4, 4)

		for i := 0; i < 2; i++ {
			buf := readExactlyT(t, conn, 6)
			gotMasks = append(gotMasks, buf[1])
		}
		close(done)
	})

	sess, err := dialTestSession(t, addr, "")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer sess.Close()

	release, err := sess.HoldMouse(MouseButtonLeft)
	if err != nil {
		t.Fatalf("HoldMouse: %v", err)
	}
	release()
	<-done

	if len(gotMasks) != 2 || gotMasks[0] != 1<<MouseButtonLeft || gotMasks[1] != 0 {
		t.Errorf("got button masks %v, want [1, 0]", gotMasks)
	}
}

func TestHoldKeyUnknownKeyNamePressesNothing(t *testing.T) {
	noEvents := make(chan struct{})
	addr := startFakeServer(t, func(conn net.Conn) {
		serveVersionAndSecurity(t, conn, 1)
		conn.Write([]byte{0, 0, 0, 0})
		serveSessionInit(t, conn, 4, 4)

		// Every key name is resolved before anything is pressed, so an
		// unknown name among them must produce zero KeyEvent messages.
		buf := make([]byte, 8)
		conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
		n, err := conn.Read(buf)
		if err == nil && n > 0 {
			t.Errorf("expected no KeyEvent to be written, got %d bytes", n)
		}
		close(noEvents)
	})

	sess, err := dialTestSession(t, addr, "")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer sess.Close()

	_, err = sess.HoldKey("a", "NotAKey")
	var unknown *UnknownKeyError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want *UnknownKeyError", err)
	}
	<-noEvents
}

func TestMoveRelativeConvertsCoordinates(t *testing.T) {
	done := make(chan struct{})
	addr := startFakeServer(t, func(conn net.Conn) {
		serveVersionAndSecurity(t, conn, 1)
		conn.Write([]byte{0, 0, 0, 0})
		serveSessionInit(t, conn, 1000, 1000)

		buf := readExactlyT(t, conn, 6)
		x := uint16(buf[2])<<8 | uint16(buf[3])
		y := uint16(buf[4])<<8 | uint16(buf[5])
		if x != 500 || y != 500 {
			t.Errorf("got (%d, %d), want (500, 500) for the midpoint of a 1000x1000 framebuffer", x, y)
		}
		close(done)
	})

	sess, err := dialTestSession(t, addr, "")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer sess.Close()

	// Relative (rel.X/2, rel.Y/2) should land on the framebuffer's centre.
	rel := sess.RelativeResolution()
	if err := sess.Move(Point{X: rel.X / 2, Y: rel.Y / 2}, true); err != nil {
		t.Fatalf("Move: %v", err)
	}
	<-done
}
