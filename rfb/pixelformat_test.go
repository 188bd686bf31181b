package rfb

import (
	"bytes"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		want []byte
	}{
		{"bgra", []byte{0x20, 0x18, 0x00, 0x01, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x10, 0x08, 0x00, 0x00, 0x00, 0x00}},
		{"rgba", []byte{0x20, 0x18, 0x00, 0x01, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0x08, 0x10, 0x00, 0x00, 0x00}},
		{"argb", []byte{0x20, 0x18, 0x01, 0x01, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x10, 0x08, 0x00, 0x00, 0x00, 0x00}},
		{"abgr", []byte{0x20, 0x18, 0x01, 0x01, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0x08, 0x10, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		got, err := FormatBytes(tt.name)
		if err != nil {
			t.Fatalf("FormatBytes(%q): %v", tt.name, err)
		}
		if !bytes.Equal(got[:], tt.want) {
			t.Errorf("FormatBytes(%q) = % X, want % X", tt.name, got, tt.want)
		}
	}
}

func TestFormatBytesUnknown(t *testing.T) {
	if _, err := FormatBytes("cmyk"); err == nil {
		t.Error("expected an error for an unsupported pixel format name")
	}
}

func TestParsePixelFormatRoundTrip(t *testing.T) {
	buf, _ := FormatBytes("rgba")
	pf := ParsePixelFormat(buf[:])
	if pf.BitsPerPixel != 32 || pf.Depth != 24 || !pf.TrueColor {
		t.Errorf("unexpected parse: %+v", pf)
	}
	if pf.RedMax != 0xFF || pf.GreenMax != 0xFF || pf.BlueMax != 0xFF {
		t.Errorf("unexpected channel maxima: %+v", pf)
	}
}
