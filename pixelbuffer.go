package pyvnc

import (
	"fmt"
	"image"
	"image/color"
)

// PixelBuffer holds a captured region as a 2-D grid of RGBA cells. It
// wraps an *image.NRGBA so it satisfies image.Image directly (handy
// for encoding PNGs, or for Thumbnail's use of
// github.com/nfnt/resize). Alpha is repurposed during the capture that
// produces a PixelBuffer: it's 0 until a cell has been written by at
// least one rectangle, then forced to 255 — true server-sent alpha is
// never preserved.
type PixelBuffer struct {
	img *image.NRGBA
}

func newPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// ColorModel, Bounds, and At implement image.Image, so a *PixelBuffer
// can be passed directly to anything that consumes images (PNG
// encoders, github.com/nfnt/resize, ...).
func (b *PixelBuffer) ColorModel() color.Model { return b.img.ColorModel() }

// Bounds returns the buffer's pixel bounds.
func (b *PixelBuffer) Bounds() image.Rectangle { return b.img.Bounds() }

// At returns the color of the cell at (x, y), matching image.Image.
func (b *PixelBuffer) At(x, y int) color.Color { return b.img.NRGBAAt(x, y) }

// Image returns the underlying image.Image view of the buffer, for
// encoding (PNG, etc.) or further processing.
func (b *PixelBuffer) Image() image.Image { return b.img }

// Sub returns the pixels within rect as a new, independent PixelBuffer
// sized exactly to rect. Capture always allocates a full
// framebuffer-sized buffer internally, since a server is free to write
// rectangles outside the requested region, and crops to the caller's
// request with Sub before returning.
func (b *PixelBuffer) Sub(rect Rect) *PixelBuffer {
	sub := newPixelBuffer(rect.Width, rect.Height)
	src := b.img
	for y := 0; y < rect.Height; y++ {
		for x := 0; x < rect.Width; x++ {
			sub.img.SetNRGBA(x, y, src.NRGBAAt(rect.X+x, rect.Y+y))
		}
	}
	return sub
}

// allOpaque reports whether every cell within rect has alpha == 255,
// i.e. has been written at least once. A single counter can't
// tolerate overlapping or out-of-request rectangles, but this O(region)
// per-cell mark can.
func (b *PixelBuffer) allOpaque(rect Rect) bool {
	for y := 0; y < rect.Height; y++ {
		for x := 0; x < rect.Width; x++ {
			if b.img.NRGBAAt(rect.X+x, rect.Y+y).A != 255 {
				return false
			}
		}
	}
	return true
}

// writeRect decodes width*height raw 4-byte pixels (already in the
// session's chosen wire pixel format) and writes them into the
// buffer at (x, y), then marks every written cell opaque.
//
// pixelFormatName determines which byte of each 4-byte pixel holds
// red, green, and blue: the four formats this client supports lay
// their channels out in literally the order their name spells (e.g.
// "bgra" pixels are wire bytes [B, G, R, pad], "argb" pixels are
// [pad, R, G, B]) — the unused byte (the 4th for rgba/bgra, the 1st
// for argb/abgr) is never alpha data the server controls, so it's
// discarded rather than trusted.
func (b *PixelBuffer) writeRect(x, y, width, height int, pixelFormatName string, data []byte) error {
	ri, gi, bi, err := channelOffsets(pixelFormatName)
	if err != nil {
		return err
	}
	if len(data) < width*height*4 {
		return fmt.Errorf("pyvnc: rectangle pixel data too short: got %d bytes, want %d", len(data), width*height*4)
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			px := data[(row*width+col)*4:]
			b.img.SetNRGBA(x+col, y+row, color.NRGBA{R: px[ri], G: px[gi], B: px[bi], A: 255})
		}
	}
	return nil
}

// channelOffsets returns the byte offset of the red, green, and blue
// channel within one 4-byte pixel for a given pixel format name.
func channelOffsets(name string) (r, g, b int, err error) {
	switch name {
	case "rgba":
		return 0, 1, 2, nil
	case "bgra":
		return 2, 1, 0, nil
	case "argb":
		return 1, 2, 3, nil
	case "abgr":
		return 3, 2, 1, nil
	default:
		return 0, 0, 0, fmt.Errorf("pyvnc: unsupported pixel format %q", name)
	}
}
