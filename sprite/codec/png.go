package codec

import (
	"image"
	"image/png"
	"io"
)

var _ Encoder = (*PNGEncoder)(nil)

type PNGEncoder struct {
	CompressionLevel png.CompressionLevel
}

func (e *PNGEncoder) Ext() string {
	return ".png"
}

// Encode writes frame as PNG. The output carries no timestamp or other
// ancillary chunk, so equal frames always encode to equal bytes.
func (e *PNGEncoder) Encode(w io.Writer, frame image.Image) error {
	encoder := &png.Encoder{CompressionLevel: e.CompressionLevel}
	return encoder.Encode(w, frame)
}
