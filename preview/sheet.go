package preview

import (
	"errors"
	"github.com/allape/spritecut/sprite"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"image"
	"image/color"
	"sync"
)

const LabelHeight = 20

var loadFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// Sheet
// lays the frames out in their grid cells with the file name of each frame
// printed in a band below it
func Sheet(frames []sprite.Frame, prefix, ext string) (image.Image, error) {
	if len(frames) == 0 {
		return nil, errors.New("no frames")
	}

	font, err := loadFont()
	if err != nil {
		return nil, err
	}

	size := frames[0].Image.Bounds().Size()
	cellHeight := size.Y + LabelHeight

	dc := gg.NewContext(size.X*sprite.Columns, cellHeight*sprite.Rows)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 10}))
	dc.SetColor(color.Black)

	for _, frame := range frames {
		x := frame.Column * size.X
		y := frame.Row * cellHeight
		dc.DrawImage(frame.Image, x, y)
		dc.DrawStringAnchored(
			frame.FileName(prefix, ext),
			float64(x)+float64(size.X)/2, float64(y+size.Y)+LabelHeight/2,
			0.5, 0.5,
		)
	}

	return dc.Image(), nil
}
