package pyvnc

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail returns a downscaled copy of the buffer that fits within
// maxWidth x maxHeight, preserving aspect ratio. A zero maxWidth or
// maxHeight leaves that dimension unconstrained. Uses Lanczos3
// resampling, which holds up well when shrinking screenshots down for
// a preview strip or a quick visual diff.
func (b *PixelBuffer) Thumbnail(maxWidth, maxHeight uint) image.Image {
	bounds := b.img.Bounds()
	w, h := uint(bounds.Dx()), uint(bounds.Dy())
	if w == 0 || h == 0 {
		return b.img
	}

	targetW, targetH := fitWithinBounds(w, h, maxWidth, maxHeight)
	return resize.Resize(targetW, targetH, b.img, resize.Lanczos3)
}

// fitWithinBounds scales (w, h) down to fit within (maxW, maxH) while
// preserving aspect ratio, never scaling up. A zero max leaves that
// axis unconstrained.
func fitWithinBounds(w, h, maxW, maxH uint) (uint, uint) {
	scale := 1.0
	if maxW != 0 && w > maxW {
		s := float64(maxW) / float64(w)
		if s < scale {
			scale = s
		}
	}
	if maxH != 0 && h > maxH {
		s := float64(maxH) / float64(h)
		if s < scale {
			scale = s
		}
	}
	if scale >= 1.0 {
		return w, h
	}
	targetW := uint(float64(w) * scale)
	targetH := uint(float64(h) * scale)
	if targetW == 0 {
		targetW = 1
	}
	if targetH == 0 {
		targetH = 1
	}
	return targetW, targetH
}
