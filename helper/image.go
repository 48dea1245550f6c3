package helper

import (
	"golang.org/x/image/draw"
	"image"
	"slices"
)

// RegionEqual reports whether every pixel of img equals the pixel of src
// at the same offset from origin, alpha included.
func RegionEqual(src image.Image, origin image.Point, img image.Image) bool {
	bounds := img.Bounds()
	srcBounds := src.Bounds()

	if !bounds.Sub(bounds.Min).Add(origin).In(srcBounds) {
		return false
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sx := origin.X + x - bounds.Min.X
			sy := origin.Y + y - bounds.Min.Y
			r1, g1, b1, a1 := src.At(sx, sy).RGBA()
			r2, g2, b2, a2 := img.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				return false
			}
		}
	}

	return true
}

// Clone copies rect of src into a new image with its origin at (0, 0).
// Pix backed stdlib images are copied row by row so the pixel type and the
// exact bytes survive, anything else is widened to RGBA64.
func Clone(src image.Image, rect image.Rectangle) image.Image {
	rect = rect.Intersect(src.Bounds())
	bounds := image.Rect(0, 0, rect.Dx(), rect.Dy())
	width, height := rect.Dx(), rect.Dy()

	switch s := src.(type) {
	case *image.Paletted:
		dst := image.NewPaletted(bounds, slices.Clone(s.Palette))
		copyRows(dst.Pix, dst.Stride, s.Pix, s.Stride, s.PixOffset(rect.Min.X, rect.Min.Y), width, height)
		return dst
	case *image.NRGBA:
		dst := image.NewNRGBA(bounds)
		copyRows(dst.Pix, dst.Stride, s.Pix, s.Stride, s.PixOffset(rect.Min.X, rect.Min.Y), width*4, height)
		return dst
	case *image.NRGBA64:
		dst := image.NewNRGBA64(bounds)
		copyRows(dst.Pix, dst.Stride, s.Pix, s.Stride, s.PixOffset(rect.Min.X, rect.Min.Y), width*8, height)
		return dst
	case *image.RGBA:
		dst := image.NewRGBA(bounds)
		copyRows(dst.Pix, dst.Stride, s.Pix, s.Stride, s.PixOffset(rect.Min.X, rect.Min.Y), width*4, height)
		return dst
	case *image.Gray:
		dst := image.NewGray(bounds)
		copyRows(dst.Pix, dst.Stride, s.Pix, s.Stride, s.PixOffset(rect.Min.X, rect.Min.Y), width, height)
		return dst
	case *image.Gray16:
		dst := image.NewGray16(bounds)
		copyRows(dst.Pix, dst.Stride, s.Pix, s.Stride, s.PixOffset(rect.Min.X, rect.Min.Y), width*2, height)
		return dst
	}

	dst := image.NewRGBA64(bounds)
	draw.Copy(dst, image.Point{}, src, rect, draw.Src, nil)
	return dst
}

func copyRows(dst []uint8, dstStride int, src []uint8, srcStride, offset, rowLen, rows int) {
	for y := 0; y < rows; y++ {
		copy(dst[y*dstStride:y*dstStride+rowLen], src[offset+y*srcStride:offset+y*srcStride+rowLen])
	}
}
