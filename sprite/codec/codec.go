package codec

import (
	"image"
	"io"
)

type Encoder interface {
	// Ext is the file extension written frames get, dot included
	Ext() string
	Encode(w io.Writer, frame image.Image) error
}
