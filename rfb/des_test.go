package rfb

import "testing"

func TestDESKeyFromPassword(t *testing.T) {
	// Independently verified by hand-deriving the bit-mirror of each of
	// "password"'s first 8 bytes; some VNC documentation quotes a
	// different 8-byte value for this password, but it does not survive
	// re-deriving the mirror bit by bit.
	want := [8]byte{0x0E, 0x86, 0xCE, 0xCE, 0xEE, 0xF6, 0x4E, 0x26}
	got := DESKeyFromPassword("password")
	if got != want {
		t.Errorf("DESKeyFromPassword(%q) = % X, want % X", "password", got, want)
	}
}

func TestDESKeyFromPasswordPadding(t *testing.T) {
	got := DESKeyFromPassword("ab")
	// "ab" + six NUL bytes, each bit-mirrored; NUL mirrors to NUL.
	if got[2] != 0 || got[7] != 0 {
		t.Errorf("expected NUL padding to mirror to NUL, got % X", got)
	}
}

func TestDESKeyFromPasswordTruncation(t *testing.T) {
	long := DESKeyFromPassword("a-very-long-password-indeed")
	short := DESKeyFromPassword("a-very-long-password-indeed"[:8])
	if long != short {
		t.Errorf("expected only first 8 bytes of password to matter, got %X vs %X", long, short)
	}
}

func TestMirrorBitsInvolution(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if mirrorBits(mirrorBits(b)) != b {
			t.Fatalf("mirrorBits is not an involution at %d", i)
		}
	}
}
