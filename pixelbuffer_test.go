package pyvnc

import (
	"image/color"
	"testing"
)

func TestChannelOffsetsSpellFormatName(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
	}{
		{"rgba", 0, 1, 2},
		{"bgra", 2, 1, 0},
		{"argb", 1, 2, 3},
		{"abgr", 3, 2, 1},
	}
	for _, test := range tests {
		r, g, b, err := channelOffsets(test.name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", test.name, err)
		}
		if r != test.r || g != test.g || b != test.b {
			t.Errorf("%s: got (%d, %d, %d), want (%d, %d, %d)", test.name, r, g, b, test.r, test.g, test.b)
		}
	}
}

func TestChannelOffsetsUnknown(t *testing.T) {
	if _, _, _, err := channelOffsets("rgbx"); err == nil {
		t.Error("expected an error for an unknown pixel format name")
	}
}

func TestWriteRectDecodesBGRA(t *testing.T) {
	buf := newPixelBuffer(2, 2)
	// One bgra pixel per cell: [B, G, R, pad].
	data := []byte{
		0x10, 0x20, 0x30, 0x00, 0x40, 0x50, 0x60, 0x00,
		0x70, 0x80, 0x90, 0x00, 0xA0, 0xB0, 0xC0, 0x00,
	}
	if err := buf.writeRect(0, 0, 2, 2, "bgra", data); err != nil {
		t.Fatalf("writeRect: %v", err)
	}
	want := color.NRGBA{R: 0x30, G: 0x20, B: 0x10, A: 255}
	if got := buf.img.NRGBAAt(0, 0); got != want {
		t.Errorf("(0,0): got %+v, want %+v", got, want)
	}
	want = color.NRGBA{R: 0xC0, G: 0xB0, B: 0xA0, A: 255}
	if got := buf.img.NRGBAAt(1, 1); got != want {
		t.Errorf("(1,1): got %+v, want %+v", got, want)
	}
}

func TestWriteRectTooShort(t *testing.T) {
	buf := newPixelBuffer(2, 2)
	if err := buf.writeRect(0, 0, 2, 2, "rgba", make([]byte, 4)); err == nil {
		t.Error("expected an error for undersized pixel data")
	}
}

func TestAllOpaqueTracksWrites(t *testing.T) {
	buf := newPixelBuffer(4, 4)
	rect := Rect{X: 0, Y: 0, Width: 4, Height: 4}
	if buf.allOpaque(rect) {
		t.Fatal("a fresh buffer should not be all-opaque")
	}

	data := make([]byte, 4*4*4)
	if err := buf.writeRect(0, 0, 4, 4, "rgba", data); err != nil {
		t.Fatalf("writeRect: %v", err)
	}
	if !buf.allOpaque(rect) {
		t.Error("a fully-written rect should be all-opaque")
	}
}

func TestAllOpaqueToleratesOverlap(t *testing.T) {
	buf := newPixelBuffer(4, 4)
	rect := Rect{X: 0, Y: 0, Width: 4, Height: 4}

	if err := buf.writeRect(0, 0, 3, 4, "rgba", make([]byte, 3*4*4)); err != nil {
		t.Fatalf("writeRect: %v", err)
	}
	if buf.allOpaque(rect) {
		t.Fatal("right-hand column not yet written, should not be complete")
	}

	// A second, overlapping rectangle covers the remainder.
	if err := buf.writeRect(1, 0, 3, 4, "rgba", make([]byte, 3*4*4)); err != nil {
		t.Fatalf("writeRect: %v", err)
	}
	if !buf.allOpaque(rect) {
		t.Error("overlapping rectangles together covering the full rect should be complete")
	}
}

func TestSubCrops(t *testing.T) {
	buf := newPixelBuffer(4, 4)
	data := make([]byte, 4*4*4)
	for i := range data {
		data[i] = byte(i)
	}
	if err := buf.writeRect(0, 0, 4, 4, "rgba", data); err != nil {
		t.Fatalf("writeRect: %v", err)
	}

	sub := buf.Sub(Rect{X: 1, Y: 1, Width: 2, Height: 2})
	if sub.Bounds().Dx() != 2 || sub.Bounds().Dy() != 2 {
		t.Fatalf("expected a 2x2 sub-buffer, got bounds %v", sub.Bounds())
	}
	if sub.img.NRGBAAt(0, 0) != buf.img.NRGBAAt(1, 1) {
		t.Error("Sub(0,0) should match the source buffer's (1,1)")
	}
}
