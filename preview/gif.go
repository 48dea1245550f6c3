package preview

import (
	"github.com/allape/spritecut/sprite"
	"golang.org/x/image/draw"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"math"
)

// Palette is full transparency followed by the first 255 Plan9 colors
var Palette = append(color.Palette{color.Transparent}, palette.Plan9[:255]...)

// Delay converts the duration of one animation cycle in seconds into the
// per frame GIF delay in 100ths of a second.
func Delay(speed float64) int {
	delay := int(math.Round(speed * 100 / sprite.Columns))
	if delay < 1 {
		return 1
	}
	return delay
}

// Animation builds a looping GIF, every frame dithered into Palette
func Animation(frames []image.Image, delay int) *gif.GIF {
	anim := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		bounds := frame.Bounds()
		paletted := image.NewPaletted(image.Rect(0, 0, bounds.Dx(), bounds.Dy()), Palette)
		draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), frame, bounds.Min)

		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	return anim
}
